package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports_mock.go -package=queriesmock

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filters ReservationFilters, limit, offset uint) ([]*ReservationView, error)
}

type BookReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, limit, offset uint) ([]*BookView, error)
}

type AuthorReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorView, error)
	List(ctx context.Context, limit, offset uint) ([]*AuthorView, error)
}

type GenreReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*GenreView, error)
	List(ctx context.Context, limit, offset uint) ([]*GenreView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}
