package queries

import (
	"book-catalog/internal/pkg/dateonly"

	"github.com/google/uuid"
)

// PageSize is the fixed page size for listing endpoints.
const PageSize = 50

// Read models (DTOs for the read side)

type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    *string   `json:"avatar,omitempty"`
}

type BookSummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Pages    int32     `json:"pages"`
	Price    int32     `json:"price"`
	AuthorID uuid.UUID `json:"author_id"`
	GenreID  uuid.UUID `json:"genre_id"`
}

type ReservationView struct {
	ID         uuid.UUID     `json:"id"`
	BeginDate  dateonly.Date `json:"begin_date"`
	EndDate    dateonly.Date `json:"end_date"`
	OnHands    bool          `json:"on_hands"`
	IsReturned bool          `json:"is_returned"`
	User       UserSummary   `json:"user"`
	Book       BookSummary   `json:"book"`
}

type BookView struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Price    int32     `json:"price"`
	Pages    int32     `json:"pages"`
	AuthorID uuid.UUID `json:"author_id"`
	GenreID  uuid.UUID `json:"genre_id"`
}

type AuthorView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    *string   `json:"avatar,omitempty"`
}

type GenreView struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    *string   `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

// ReservationFilters narrows the reservation listing. A filter date
// matches reservations whose [begin_date, end_date] contains it.
type ReservationFilters struct {
	BookTitle  *string
	StartDate  *dateonly.Date
	EndDate    *dateonly.Date
	OnHands    *bool
	IsReturned *bool
}
