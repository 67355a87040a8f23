package writerepo

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/usecase/commands"

	"github.com/google/uuid"
)

type AuthorRepository struct{}

func NewAuthorRepository() *AuthorRepository {
	return &AuthorRepository{}
}

const insertAuthorSQL = `
INSERT INTO authors (id, first_name, last_name, avatar)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *AuthorRepository) Create(ctx context.Context, dbtx db.DBTX, row commands.AuthorRow) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertAuthorSQL, row.ID, row.FirstName, row.LastName, row.Avatar).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create author", err)
	}

	return id, nil
}

const updateAuthorSQL = `
UPDATE authors
SET first_name = $2, last_name = $3, avatar = $4, updated_at = now()
WHERE id = $1`

func (r *AuthorRepository) Update(ctx context.Context, dbtx db.DBTX, row commands.AuthorRow) error {
	tag, err := dbtx.Exec(ctx, updateAuthorSQL, row.ID, row.FirstName, row.LastName, row.Avatar)
	if err != nil {
		return infra.WrapRepoErr("failed to update author", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("author not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *AuthorRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete author", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("author not found", nil, infra.KindNotFound)
	}

	return nil
}
