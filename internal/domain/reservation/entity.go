package reservation

import (
	"errors"
	"time"

	"book-catalog/internal/pkg/dateonly"

	"github.com/google/uuid"
)

var (
	ErrAlreadyReturned = errors.New("reservation already returned")
	ErrNotOnHands      = errors.New("reservation is not on hands")
)

// Reservation of a single book for an inclusive date range.
//
// Possession states are mutually exclusive: a reservation is either on
// hands or returned, never both. NewReservation is the only way a fresh
// row comes into existence, so no default-constructed record can reach
// storage in an inconsistent state.
type Reservation struct {
	id         uuid.UUID
	userID     uuid.UUID
	bookID     uuid.UUID
	period     DateRange
	onHands    bool
	isReturned bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(userID, bookID uuid.UUID, period DateRange) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		userID:     userID,
		bookID:     bookID,
		period:     period,
		onHands:    true,
		isReturned: false,
	}
}

func Reconstruct(
	id, userID, bookID uuid.UUID,
	period DateRange,
	onHands, isReturned bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		userID:     userID,
		bookID:     bookID,
		period:     period,
		onHands:    onHands,
		isReturned: isReturned,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Return transitions on-hands -> returned. The transition is terminal;
// a second call reports ErrAlreadyReturned so callers can distinguish it
// from an unknown id. Overdue reservations may still be returned here:
// closing late beats holding the row for the sweeper.
func (r *Reservation) Return() error {
	if r.isReturned {
		return ErrAlreadyReturned
	}
	if !r.onHands {
		return ErrNotOnHands
	}
	r.onHands = false
	r.isReturned = true
	return nil
}

func (r *Reservation) IsOverdue(asOf dateonly.Date) bool {
	return !r.isReturned && !r.period.End().After(asOf)
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) BookID() uuid.UUID    { return r.bookID }
func (r *Reservation) Period() DateRange    { return r.period }
func (r *Reservation) OnHands() bool        { return r.onHands }
func (r *Reservation) IsReturned() bool     { return r.isReturned }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
