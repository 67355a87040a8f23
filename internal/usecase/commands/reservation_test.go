//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"book-catalog/internal/domain/reservation"
	reqdto "book-catalog/internal/handler/dto/request"
	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"
	commandsmock "book-catalog/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// inlineRunner executes the transactional closure directly so the
// command's orchestration runs against mocks.
type inlineRunner struct {
	calls int
}

func (r *inlineRunner) InTx(_ context.Context, fn func(tx db.DBTX) error) error {
	r.calls++
	return fn(nil)
}

type reservationMocks struct {
	runner *inlineRunner
	repo   *commandsmock.MockReservationRepository
	views  *commandsmock.MockReservationViewFinder
}

func newReservationCommands(t *testing.T) (commands.ReservationCommands, reservationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reservationMocks{
		runner: &inlineRunner{},
		repo:   commandsmock.NewMockReservationRepository(ctrl),
		views:  commandsmock.NewMockReservationViewFinder(ctrl),
	}
	return commands.NewReservationCommands(m.runner, m.repo, m.views), m
}

func mustRange(t *testing.T, begin, end dateonly.Date) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(begin, end)
	require.NoError(t, err)
	return r
}

func onHandsReservation(t *testing.T, bookID uuid.UUID, period reservation.DateRange) *reservation.Reservation {
	t.Helper()
	return reservation.Reconstruct(
		uuid.New(), uuid.New(), bookID,
		period,
		true, false,
		time.Now(), time.Now(),
	)
}

func TestReservationCommandsRequest(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	req := reqdto.CreateReservationRequest{
		BookID:    uuid.New(),
		BeginDate: dateonly.New(2026, time.September, 1),
		EndDate:   dateonly.New(2026, time.September, 10),
	}

	t.Run("free window books the reservation", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		var created *reservation.Reservation
		id := uuid.New()
		view := &queries.ReservationView{ID: id, OnHands: true}

		m.repo.EXPECT().
			FindConflictsForUpdate(gomock.Any(), gomock.Any(), req.BookID, gomock.Any()).
			Return(nil, nil)
		m.repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
				created = res
				return id, nil
			})
		m.views.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		result, err := cmds.Request(ctx, userID, req)
		require.NoError(t, err)
		assert.Equal(t, view, result)
		assert.Equal(t, 1, m.runner.calls)

		require.NotNil(t, created)
		assert.Equal(t, userID, created.UserID())
		assert.Equal(t, req.BookID, created.BookID())
		assert.True(t, created.OnHands())
		assert.False(t, created.IsReturned())
	})

	t.Run("overlapping on-hands reservation blocks without an insert", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		blocking := onHandsReservation(t, req.BookID,
			mustRange(t, dateonly.New(2026, time.September, 5), dateonly.New(2026, time.September, 15)))
		m.repo.EXPECT().
			FindConflictsForUpdate(gomock.Any(), gomock.Any(), req.BookID, gomock.Any()).
			Return([]*reservation.Reservation{blocking}, nil)

		_, err := cmds.Request(ctx, userID, req)
		assert.ErrorIs(t, err, commands.ErrBookAlreadyReserved)
	})

	t.Run("exclusion constraint maps to the same conflict error", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		m.repo.EXPECT().
			FindConflictsForUpdate(gomock.Any(), gomock.Any(), req.BookID, gomock.Any()).
			Return(nil, nil)
		m.repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("overlap", nil, infra.KindConflict))

		_, err := cmds.Request(ctx, userID, req)
		assert.ErrorIs(t, err, commands.ErrBookAlreadyReserved)
	})

	t.Run("unknown book", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		m.repo.EXPECT().
			FindConflictsForUpdate(gomock.Any(), gomock.Any(), req.BookID, gomock.Any()).
			Return(nil, nil)
		m.repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("no such book", nil, infra.KindForeignKeyViolated))

		_, err := cmds.Request(ctx, userID, req)
		assert.ErrorIs(t, err, commands.ErrBookNotFound)
	})

	t.Run("reversed period never opens a transaction", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		bad := req
		bad.BeginDate = dateonly.New(2026, time.September, 20)

		_, err := cmds.Request(ctx, userID, bad)
		assert.ErrorIs(t, err, commands.ErrInvalidReservationPeriod)
		assert.Zero(t, m.runner.calls)
	})
}

func TestReservationCommandsReturn(t *testing.T) {
	ctx := context.Background()
	period := reservation.DateRange{}

	t.Run("closes an on-hands reservation, both flags persisted", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		res := onHandsReservation(t, uuid.New(), period)
		id := res.ID()
		view := &queries.ReservationView{ID: id, IsReturned: true}

		m.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(res, nil)
		m.repo.EXPECT().
			SaveState(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, saved *reservation.Reservation) error {
				assert.False(t, saved.OnHands())
				assert.True(t, saved.IsReturned())
				return nil
			})
		m.views.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		result, err := cmds.Return(ctx, id)
		require.NoError(t, err)
		assert.True(t, result.IsReturned)
	})

	t.Run("overdue reservation may still be returned manually", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		overdue := onHandsReservation(t, uuid.New(),
			mustRange(t, dateonly.New(2020, time.January, 1), dateonly.New(2020, time.January, 5)))
		id := overdue.ID()

		m.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(overdue, nil)
		m.repo.EXPECT().SaveState(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.views.EXPECT().FindByID(gomock.Any(), id).
			Return(&queries.ReservationView{ID: id, IsReturned: true}, nil)

		_, err := cmds.Return(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		id := uuid.New()
		m.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound))

		_, err := cmds.Return(ctx, id)
		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("second return is rejected without a write", func(t *testing.T) {
		cmds, m := newReservationCommands(t)

		returned := reservation.Reconstruct(
			uuid.New(), uuid.New(), uuid.New(),
			period,
			false, true,
			time.Now(), time.Now(),
		)
		m.repo.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), returned.ID()).Return(returned, nil)

		_, err := cmds.Return(ctx, returned.ID())
		assert.ErrorIs(t, err, commands.ErrReservationReturned)
	})
}
