package readstore

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type GenreReadStore struct {
	db db.DBTX
}

func NewGenreReadStore(dbtx db.DBTX) *GenreReadStore {
	return &GenreReadStore{db: dbtx}
}

func (r *GenreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GenreView, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("genres").
		Select("id", "title").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build genre query", err)
	}

	var v queries.GenreView
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&v.ID, &v.Title); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("genre not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find genre by id", err)
	}

	return &v, nil
}

func (r *GenreReadStore) List(ctx context.Context, limit, offset uint) ([]*queries.GenreView, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("genres").
		Select("id", "title").
		Order(goqu.C("title").Asc()).
		Limit(limit).
		Offset(offset).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build genre list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list genres", err)
	}
	defer rows.Close()

	var result []*queries.GenreView
	for rows.Next() {
		var v queries.GenreView
		if scanErr := rows.Scan(&v.ID, &v.Title); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan genre row", scanErr)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read genre rows", err)
	}

	return result, nil
}
