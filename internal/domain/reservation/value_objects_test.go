//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"book-catalog/internal/domain/reservation"
	"book-catalog/internal/pkg/dateonly"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) dateonly.Date {
	return dateonly.New(2026, time.March, day)
}

func mustRange(t *testing.T, begin, end int) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(date(begin), date(end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("single day range is valid", func(t *testing.T) {
		r, err := reservation.NewDateRange(date(5), date(5))
		require.NoError(t, err)
		assert.Equal(t, 1, r.Days())
	})

	t.Run("begin after end is rejected", func(t *testing.T) {
		_, err := reservation.NewDateRange(date(6), date(5))
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, 10, 20)

	tests := []struct {
		name    string
		begin   int
		end     int
		overlap bool
	}{
		{name: "identical ranges", begin: 10, end: 20, overlap: true},
		{name: "contained range", begin: 12, end: 18, overlap: true},
		{name: "containing range", begin: 5, end: 25, overlap: true},
		{name: "partial overlap at start", begin: 5, end: 10, overlap: true},
		{name: "partial overlap at end", begin: 20, end: 25, overlap: true},
		{name: "touching start boundary", begin: 1, end: 10, overlap: true},
		{name: "touching end boundary", begin: 20, end: 28, overlap: true},
		{name: "disjoint before", begin: 1, end: 9, overlap: false},
		{name: "disjoint after", begin: 21, end: 28, overlap: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustRange(t, tt.begin, tt.end)
			assert.Equal(t, tt.overlap, base.Overlaps(other))
			assert.Equal(t, tt.overlap, other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r := mustRange(t, 10, 20)

	assert.True(t, r.Contains(date(10)))
	assert.True(t, r.Contains(date(15)))
	assert.True(t, r.Contains(date(20)))
	assert.False(t, r.Contains(date(9)))
	assert.False(t, r.Contains(date(21)))
}
