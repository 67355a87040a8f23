package queries

import (
	"context"

	"book-catalog/internal/domain/reservation"
	"book-catalog/internal/infra"
	"book-catalog/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExclusiveStateFilters   = errs.New("on_hands and is_returned filters are mutually exclusive")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filters ReservationFilters, page uint) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// List returns one fixed-size page. Asking for a book simultaneously on
// hands and returned contradicts the possession invariant, so that
// filter combination is rejected up front instead of returning an empty
// page.
func (q *reservationQueriesImpl) List(ctx context.Context, filters ReservationFilters, page uint) ([]*ReservationView, error) {
	state := reservation.StateFilter{OnHands: filters.OnHands, IsReturned: filters.IsReturned}
	if err := state.Validate(); err != nil {
		return nil, errs.Mark(err, ErrExclusiveStateFilters)
	}

	views, err := q.store.List(ctx, filters, PageSize, page*PageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return views, nil
}
