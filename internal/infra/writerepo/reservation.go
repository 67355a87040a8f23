package writerepo

import (
	"context"
	"time"

	"book-catalog/internal/domain/reservation"
	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/dateonly"

	"github.com/google/uuid"
)

// ReservationRepository owns all mutations of reservation rows. The
// reservations table carries a gist exclusion constraint on
// (book_id, daterange) for on-hand rows, so even a write that slips past
// the in-transaction conflict check cannot produce an overlap.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const insertReservationSQL = `
INSERT INTO reservations (id, user_id, book_id, begin_date, end_date, on_hands, is_returned)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertReservationSQL,
		res.ID(),
		res.UserID(),
		res.BookID(),
		res.Period().Begin().Time,
		res.Period().End().Time,
		res.OnHands(),
		res.IsReturned(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

const conflictingReservationsSQL = `
SELECT id, user_id, book_id, begin_date, end_date, on_hands, is_returned, created_at, updated_at
FROM reservations
WHERE book_id = $1
  AND on_hands
  AND begin_date <= $3
  AND end_date >= $2
FOR UPDATE`

// FindConflictsForUpdate locks every on-hand reservation of the book that
// overlaps the requested range. Must run inside the same transaction as
// the subsequent insert; the row locks serialize concurrent requests for
// the same book.
func (r *ReservationRepository) FindConflictsForUpdate(ctx context.Context, dbtx db.DBTX, bookID uuid.UUID, period reservation.DateRange) ([]*reservation.Reservation, error) {
	rows, err := dbtx.Query(ctx, conflictingReservationsSQL, bookID, period.Begin().Time, period.End().Time)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query conflicting reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, scanErr := scanReservation(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

const reservationForUpdateSQL = `
SELECT id, user_id, book_id, begin_date, end_date, on_hands, is_returned, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := scanReservation(dbtx.QueryRow(ctx, reservationForUpdateSQL, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation for update", err)
	}

	return res, nil
}

const updateReservationStateSQL = `
UPDATE reservations
SET on_hands = $2, is_returned = $3, updated_at = now()
WHERE id = $1`

// SaveState persists the possession flags after a domain transition.
func (r *ReservationRepository) SaveState(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	tag, err := dbtx.Exec(ctx, updateReservationStateSQL, res.ID(), res.OnHands(), res.IsReturned())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

const closeOverdueSQL = `
UPDATE reservations
SET on_hands = false, is_returned = true, updated_at = now()
WHERE end_date <= $1 AND NOT is_returned
RETURNING id`

// CloseOverdue force-closes every overdue unreturned reservation in one
// statement. Both possession flags flip together; a sweep must never
// leave a row both returned and on hands.
func (r *ReservationRepository) CloseOverdue(ctx context.Context, dbtx db.DBTX, asOf dateonly.Date) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, closeOverdueSQL, asOf.Time)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to close overdue reservations", err)
	}
	defer rows.Close()

	var closed []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan closed reservation id", scanErr)
		}
		closed = append(closed, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read closed reservation ids", err)
	}

	return closed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, userID, bookID   uuid.UUID
		beginDate, endDate   time.Time
		onHands, isReturned  bool
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &userID, &bookID, &beginDate, &endDate, &onHands, &isReturned, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	period, err := reservation.NewDateRange(dateonly.FromTime(beginDate), dateonly.FromTime(endDate))
	if err != nil {
		// Unreachable while the begin_date <= end_date CHECK holds.
		return nil, err
	}

	return reservation.Reconstruct(id, userID, bookID, period, onHands, isReturned, createdAt, updatedAt), nil
}
