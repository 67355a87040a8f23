package readstore

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type BookReadStore struct {
	db db.DBTX
}

func NewBookReadStore(dbtx db.DBTX) *BookReadStore {
	return &BookReadStore{db: dbtx}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("books").
		Select("id", "title", "price", "pages", "author_id", "genre_id").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book query", err)
	}

	var v queries.BookView
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&v.ID, &v.Title, &v.Price, &v.Pages, &v.AuthorID, &v.GenreID); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by id", err)
	}

	return &v, nil
}

// List orders by price, cheapest first, matching the catalog browsing UX.
func (r *BookReadStore) List(ctx context.Context, limit, offset uint) ([]*queries.BookView, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("books").
		Select("id", "title", "price", "pages", "author_id", "genre_id").
		Order(goqu.C("price").Asc(), goqu.C("id").Asc()).
		Limit(limit).
		Offset(offset).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build book list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	var result []*queries.BookView
	for rows.Next() {
		var v queries.BookView
		if scanErr := rows.Scan(&v.ID, &v.Title, &v.Price, &v.Pages, &v.AuthorID, &v.GenreID); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", scanErr)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}

	return result, nil
}
