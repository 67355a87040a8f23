package readstore

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("users").
		Select("id", "email", "first_name", "last_name", "avatar", "role", "is_active").
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build user query", err)
	}

	var v queries.AuthorizedUserView
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&v.ID, &v.Email, &v.FirstName, &v.LastName, &v.Avatar, &v.Role, &v.IsActive); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}

	return &v, nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	sql, args, err := goqu.Dialect(dialect).
		From("users").
		Select("id", "email", "first_name", "last_name", "avatar", "role", "is_active", "password_hash").
		Where(goqu.C("email").Eq(email)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to build user query", err)
	}

	var (
		v    queries.AuthorizedUserView
		hash string
	)
	row := r.db.QueryRow(ctx, sql, args...)
	if err := row.Scan(&v.ID, &v.Email, &v.FirstName, &v.LastName, &v.Avatar, &v.Role, &v.IsActive, &hash); err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, hash, nil
}
