package reservation

import (
	"errors"

	"book-catalog/internal/pkg/dateonly"
)

var ErrInvalidDateRange = errors.New("begin date must not be after end date")

// DateRange is an inclusive [begin, end] span of calendar days.
type DateRange struct {
	begin dateonly.Date
	end   dateonly.Date
}

func NewDateRange(begin, end dateonly.Date) (DateRange, error) {
	if begin.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{begin: begin, end: end}, nil
}

func (r DateRange) Begin() dateonly.Date { return r.begin }
func (r DateRange) End() dateonly.Date   { return r.end }

// Overlaps is the full symmetric interval test. Both bounds are inclusive,
// so ranges sharing a single day overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.begin.After(other.end) && !other.begin.After(r.end)
}

func (r DateRange) Contains(d dateonly.Date) bool {
	return !d.Before(r.begin) && !d.After(r.end)
}

func (r DateRange) Days() int {
	return int(r.end.Sub(r.begin.Time).Hours()/24) + 1
}
