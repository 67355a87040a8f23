package readstore

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type AuthorReadStore struct {
	db db.DBTX
}

func NewAuthorReadStore(dbtx db.DBTX) *AuthorReadStore {
	return &AuthorReadStore{db: dbtx}
}

func (r *AuthorReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorView, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("authors").
		Select("id", "first_name", "last_name", "avatar").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build author query", err)
	}

	var v queries.AuthorView
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Avatar); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("author not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find author by id", err)
	}

	return &v, nil
}

func (r *AuthorReadStore) List(ctx context.Context, limit, offset uint) ([]*queries.AuthorView, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("authors").
		Select("id", "first_name", "last_name", "avatar").
		Order(goqu.C("last_name").Asc(), goqu.C("first_name").Asc()).
		Limit(limit).
		Offset(offset).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build author list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list authors", err)
	}
	defer rows.Close()

	var result []*queries.AuthorView
	for rows.Next() {
		var v queries.AuthorView
		if scanErr := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Avatar); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan author row", scanErr)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read author rows", err)
	}

	return result, nil
}
