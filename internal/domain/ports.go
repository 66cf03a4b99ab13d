package domain

import (
	"context"
	"time"
)

type HotelRepository interface {
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	// ListHotelsByIDs applies the filter to the given id set only; callers pass
	// the ids that survived availability resolution. An empty id set yields an
	// empty result without touching storage.
	ListHotelsByIDs(ctx context.Context, ids []int64, f HotelsFilter) ([]Hotel, error)
	CreateHotel(ctx context.Context, h HotelAdd) (Hotel, error)
	UpdateHotel(ctx context.Context, id int64, u HotelUpdate) error
	DeleteHotel(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetRoom(ctx context.Context, hotelID, roomID int64) (Room, error)
	// ListRooms returns every room, or the rooms of one hotel when hotelID is
	// non-nil. Ordered by id ascending.
	ListRooms(ctx context.Context, hotelID *int64) ([]Room, error)
	CreateRoom(ctx context.Context, r RoomAdd) (Room, error)
	UpdateRoom(ctx context.Context, hotelID, roomID int64, u RoomUpdate) error
	DeleteRoom(ctx context.Context, hotelID, roomID int64) error
}

type FacilityRepository interface {
	ListFacilities(ctx context.Context) ([]Facility, error)
	CreateFacility(ctx context.Context, title string) (Facility, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (UserWithPassword, error)
	GetUser(ctx context.Context, id int64) (User, error)
}

// BookingLedger is the append-only reservation store. OverlapCounts is the
// single aggregate read the capacity resolver is built on; Admit is the
// transactional check-then-insert write path.
type BookingLedger interface {
	// OverlapCounts returns, per room, how many bookings overlap [from, to]
	// under inclusive boundary semantics. roomIDs nil means all rooms. Rooms
	// with no overlapping bookings are simply absent from the map.
	OverlapCounts(ctx context.Context, roomIDs []int64, from, to time.Time) (map[int64]int, error)

	// Admit re-checks remaining capacity for the target room and inserts the
	// booking in one atomic unit of work, serialized against concurrent
	// admissions for the same room. Returns ErrCapacityExceeded when no unit
	// is left, ErrNotFound for an unknown room. All-or-nothing.
	Admit(ctx context.Context, b BookingAdd) (Booking, error)

	GetBooking(ctx context.Context, id int64) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListUserBookings(ctx context.Context, userID int64) ([]Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
