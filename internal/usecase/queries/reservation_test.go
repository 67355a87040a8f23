//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/queries"
	queriesmock "book-catalog/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func boolPtr(v bool) *bool { return &v }

func sampleView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        uuid.New(),
		BeginDate: dateonly.New(2026, time.March, 10),
		EndDate:   dateonly.New(2026, time.March, 20),
		OnHands:   true,
	}
}

func TestReservationQueriesList(t *testing.T) {
	ctx := context.Background()

	t.Run("passes fixed page size and computed offset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		want := []*queries.ReservationView{sampleView()}
		store.EXPECT().
			List(gomock.Any(), queries.ReservationFilters{}, uint(queries.PageSize), uint(2*queries.PageSize)).
			Return(want, nil)

		got, err := q.List(ctx, queries.ReservationFilters{}, 2)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(want, got))
	})

	t.Run("rejects contradictory state filters without touching the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		filters := queries.ReservationFilters{
			OnHands:    boolPtr(true),
			IsReturned: boolPtr(true),
		}

		_, err := q.List(ctx, filters, 0)
		assert.ErrorIs(t, err, queries.ErrExclusiveStateFilters)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		store.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := q.List(ctx, queries.ReservationFilters{}, 0)
		assert.ErrorIs(t, err, queries.ErrDatabaseOperationFailed)
	})
}

func TestReservationQueriesGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		want := sampleView()
		store.EXPECT().FindByID(gomock.Any(), want.ID).Return(want, nil)

		got, err := q.Get(ctx, want.ID)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(want, got))
	})
}
