package commands

import (
	"context"
	"errors"

	"book-catalog/internal/domain/reservation"
	reqdto "book-catalog/internal/handler/dto/request"
	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/errs"
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidReservationPeriod = errs.New("begin date must not be after end date")
	ErrBookAlreadyReserved      = errs.New("book already reserved for requested window")
	ErrReservationNotFound      = errs.New("reservation not found")
	ErrReservationReturned      = errs.New("reservation already returned")
	ErrBookNotFound             = errs.New("book not found")
	ErrDatabaseOperationFailed  = errs.New("database operation failed")
)

type ReservationCommands interface {
	Request(ctx context.Context, userID uuid.UUID, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Return(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	runner db.TxRunner
	repo   ReservationRepository
	views  ReservationViewFinder
}

func NewReservationCommands(runner db.TxRunner, repo ReservationRepository, views ReservationViewFinder) ReservationCommands {
	return &reservationCommandsImpl{runner: runner, repo: repo, views: views}
}

// Request books a reservation for the caller. The conflict check and the
// insert run in one transaction: FindConflictsForUpdate locks every
// overlapping on-hand row of the book, so two simultaneous requests for
// the same window serialize and the loser sees the winner's row.
func (c *reservationCommandsImpl) Request(ctx context.Context, userID uuid.UUID, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	period, err := req.ToPeriod()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservationPeriod)
	}

	res := reservation.NewReservation(userID, req.BookID, period)

	var id uuid.UUID
	err = c.runner.InTx(ctx, func(tx db.DBTX) error {
		existing, err := c.repo.FindConflictsForUpdate(ctx, tx, req.BookID, period)
		if err != nil {
			return err
		}
		if err := reservation.CanReserve(existing, period); err != nil {
			return err
		}
		id, err = c.repo.Create(ctx, tx, res)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrBookAlreadyReserved):
			return nil, errs.Mark(err, ErrBookAlreadyReserved)
		case infra.IsKind(err, infra.KindConflict):
			// Exclusion constraint backstop fired before our check did.
			return nil, errs.Mark(err, ErrBookAlreadyReserved)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrBookNotFound)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

// Return closes a reservation. Outcomes are distinguishable for the
// handler: unknown id and already-returned are separate errors. Overdue
// reservations may still be returned manually; the sweep catches the
// rest.
func (c *reservationCommandsImpl) Return(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	err := c.runner.InTx(ctx, func(tx db.DBTX) error {
		res, err := c.repo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := res.Return(); err != nil {
			return err
		}
		return c.repo.SaveState(ctx, tx, res)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrReservationNotFound)
		case errors.Is(err, reservation.ErrAlreadyReturned),
			errors.Is(err, reservation.ErrNotOnHands):
			return nil, errs.Mark(err, ErrReservationReturned)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}
