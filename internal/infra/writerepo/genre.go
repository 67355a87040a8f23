package writerepo

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/usecase/commands"

	"github.com/google/uuid"
)

type GenreRepository struct{}

func NewGenreRepository() *GenreRepository {
	return &GenreRepository{}
}

func (r *GenreRepository) Create(ctx context.Context, dbtx db.DBTX, row commands.GenreRow) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx,
		`INSERT INTO genres (id, title) VALUES ($1, $2) RETURNING id`,
		row.ID, row.Title,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create genre", err)
	}

	return id, nil
}

func (r *GenreRepository) Update(ctx context.Context, dbtx db.DBTX, row commands.GenreRow) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE genres SET title = $2, updated_at = now() WHERE id = $1`,
		row.ID, row.Title,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update genre", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("genre not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *GenreRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete genre", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("genre not found", nil, infra.KindNotFound)
	}

	return nil
}
