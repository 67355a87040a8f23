package writerepo

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookRepository struct{}

func NewBookRepository() *BookRepository {
	return &BookRepository{}
}

const insertBookSQL = `
INSERT INTO books (id, title, price, pages, author_id, genre_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *BookRepository) Create(ctx context.Context, dbtx db.DBTX, row commands.BookRow) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertBookSQL,
		row.ID, row.Title, row.Price, row.Pages, row.AuthorID, row.GenreID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create book", err)
	}

	return id, nil
}

const updateBookSQL = `
UPDATE books
SET title = $2, price = $3, pages = $4, author_id = $5, genre_id = $6, updated_at = now()
WHERE id = $1`

func (r *BookRepository) Update(ctx context.Context, dbtx db.DBTX, row commands.BookRow) error {
	tag, err := dbtx.Exec(ctx, updateBookSQL,
		row.ID, row.Title, row.Price, row.Pages, row.AuthorID, row.GenreID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}

	return nil
}
