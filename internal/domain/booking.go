package domain

import "time"

// Booking is one confirmed reservation of a single room unit for the inclusive
// date interval [DateFrom, DateTo]. Price is the per-night snapshot taken from
// the room at admission time; the row is never mutated afterwards.
type Booking struct {
	ID       int64
	Ref      string
	UserID   int64
	RoomID   int64
	DateFrom time.Time
	DateTo   time.Time
	Price    int
}

// TotalCost is price-per-night times the number of nights.
func (b Booking) TotalCost() int {
	nights := int(b.DateTo.Sub(b.DateFrom).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return b.Price * nights
}

// Overlaps reports whether [b.DateFrom, b.DateTo] shares at least one day with
// [from, to]. Boundaries are inclusive: a stay ending on the query's first day
// still occupies the unit (no same-day turnover).
func (b Booking) Overlaps(from, to time.Time) bool {
	return !b.DateFrom.After(to) && !b.DateTo.Before(from)
}

type BookingAdd struct {
	Ref      string
	UserID   int64
	RoomID   int64
	DateFrom time.Time
	DateTo   time.Time
}
