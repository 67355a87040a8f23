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

func newReservation(t *testing.T, begin, end int) *reservation.Reservation {
	t.Helper()
	return reservation.NewReservation(uuid.New(), uuid.New(), mustRange(t, begin, end))
}

func TestNewReservation(t *testing.T) {
	res := newReservation(t, 10, 20)

	assert.True(t, res.OnHands())
	assert.False(t, res.IsReturned())
	assert.NotEqual(t, uuid.Nil, res.ID())
}

func TestReservationReturn(t *testing.T) {
	t.Run("on-hand reservation closes", func(t *testing.T) {
		res := newReservation(t, 10, 20)

		require.NoError(t, res.Return())
		assert.False(t, res.OnHands())
		assert.True(t, res.IsReturned())
	})

	t.Run("second return reports already returned", func(t *testing.T) {
		res := newReservation(t, 10, 20)
		require.NoError(t, res.Return())

		assert.ErrorIs(t, res.Return(), reservation.ErrAlreadyReturned)
	})

	t.Run("overdue reservation may still be returned", func(t *testing.T) {
		res := newReservation(t, 1, 2)
		require.True(t, res.IsOverdue(date(15)))

		require.NoError(t, res.Return())
		assert.True(t, res.IsReturned())
	})

	t.Run("reconstructed off-hands unreturned row is rejected", func(t *testing.T) {
		res := reservation.Reconstruct(
			uuid.New(), uuid.New(), uuid.New(),
			mustRange(t, 10, 20),
			false, false,
			time.Now(), time.Now(),
		)

		assert.ErrorIs(t, res.Return(), reservation.ErrNotOnHands)
	})
}

func TestReservationIsOverdue(t *testing.T) {
	res := newReservation(t, 10, 20)

	assert.False(t, res.IsOverdue(date(19)), "before end date")
	assert.True(t, res.IsOverdue(date(20)), "on end date")
	assert.True(t, res.IsOverdue(date(25)), "past end date")

	require.NoError(t, res.Return())
	assert.False(t, res.IsOverdue(date(25)), "returned rows are never overdue")
}
