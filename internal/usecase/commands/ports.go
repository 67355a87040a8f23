package commands

import (
	"context"

	"book-catalog/internal/domain/reservation"
	"book-catalog/internal/domain/user"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// Write-side ports. Every method takes a DBTX so a command can run its
// reads and writes on the same transaction.

type BookRow struct {
	ID       uuid.UUID
	Title    string
	Price    int32
	Pages    int32
	AuthorID uuid.UUID
	GenreID  uuid.UUID
}

type AuthorRow struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Avatar    *string
}

type GenreRow struct {
	ID    uuid.UUID
	Title string
}

type ReservationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindConflictsForUpdate(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID, period reservation.DateRange) ([]*reservation.Reservation, error)
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	SaveState(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error
	CloseOverdue(ctx context.Context, dbtx db.DBTX, asOf dateonly.Date) ([]uuid.UUID, error)
}

type BookRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, row BookRow) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, row BookRow) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type AuthorRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, row AuthorRow) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, row AuthorRow) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type GenreRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, row GenreRow) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, row GenreRow) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error)
}

// Read-side ports the commands use to hand back fresh views after a write.

type ReservationViewFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type BookViewFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error)
}

type AuthorViewFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorView, error)
}

type GenreViewFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.GenreView, error)
}

type UserViewFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error)
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
}
