//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"book-catalog/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func returnedReservation(t *testing.T, begin, end int) *reservation.Reservation {
	t.Helper()
	res := reservation.Reconstruct(
		uuid.New(), uuid.New(), uuid.New(),
		mustRange(t, begin, end),
		false, true,
		time.Now(), time.Now(),
	)
	return res
}

func TestCanReserve(t *testing.T) {
	t.Run("no existing reservations", func(t *testing.T) {
		err := reservation.CanReserve(nil, mustRange(t, 10, 20))
		assert.NoError(t, err)
	})

	t.Run("overlapping on-hand reservation blocks", func(t *testing.T) {
		existing := []*reservation.Reservation{newReservation(t, 15, 25)}

		err := reservation.CanReserve(existing, mustRange(t, 10, 20))
		assert.ErrorIs(t, err, reservation.ErrBookAlreadyReserved)
	})

	t.Run("boundary day counts as overlap", func(t *testing.T) {
		existing := []*reservation.Reservation{newReservation(t, 1, 10)}

		err := reservation.CanReserve(existing, mustRange(t, 10, 20))
		assert.ErrorIs(t, err, reservation.ErrBookAlreadyReserved)
	})

	t.Run("returned reservation does not block", func(t *testing.T) {
		existing := []*reservation.Reservation{returnedReservation(t, 10, 20)}

		err := reservation.CanReserve(existing, mustRange(t, 10, 20))
		assert.NoError(t, err)
	})

	t.Run("disjoint on-hand reservation does not block", func(t *testing.T) {
		existing := []*reservation.Reservation{newReservation(t, 1, 9)}

		err := reservation.CanReserve(existing, mustRange(t, 10, 20))
		assert.NoError(t, err)
	})
}

func TestStateFilterValidate(t *testing.T) {
	boolPtr := func(v bool) *bool { return &v }

	tests := []struct {
		name       string
		onHands    *bool
		isReturned *bool
		wantErr    bool
	}{
		{name: "no filters", onHands: nil, isReturned: nil, wantErr: false},
		{name: "on hands only", onHands: boolPtr(true), isReturned: nil, wantErr: false},
		{name: "returned only", onHands: nil, isReturned: boolPtr(true), wantErr: false},
		{name: "both false", onHands: boolPtr(false), isReturned: boolPtr(false), wantErr: false},
		{name: "on hands true, returned false", onHands: boolPtr(true), isReturned: boolPtr(false), wantErr: false},
		{name: "both true is contradictory", onHands: boolPtr(true), isReturned: boolPtr(true), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := reservation.StateFilter{OnHands: tt.onHands, IsReturned: tt.isReturned}
			err := f.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, reservation.ErrExclusiveStateFilters)
				return
			}
			assert.NoError(t, err)
		})
	}
}
