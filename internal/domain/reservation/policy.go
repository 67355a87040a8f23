package reservation

import "errors"

var (
	ErrBookAlreadyReserved   = errors.New("book already reserved for requested window")
	ErrExclusiveStateFilters = errors.New("a book cannot be on hands and returned at the same moment")
)

// CanReserve decides whether a new booking is allowed given the on-hand
// reservations already overlapping the requested range for the same book.
// Pure decision: callers fetch the candidate set, this only judges it.
func CanReserve(existing []*Reservation, requested DateRange) error {
	for _, r := range existing {
		if !r.OnHands() {
			continue
		}
		if r.Period().Overlaps(requested) {
			return ErrBookAlreadyReserved
		}
	}
	return nil
}

// StateFilter is the optional possession/return filter pair used by
// listing queries. Both true at once is contradictory by the possession
// invariant and must be rejected, not silently ignored.
type StateFilter struct {
	OnHands    *bool
	IsReturned *bool
}

func (f StateFilter) Validate() error {
	if f.OnHands != nil && *f.OnHands && f.IsReturned != nil && *f.IsReturned {
		return ErrExclusiveStateFilters
	}
	return nil
}
