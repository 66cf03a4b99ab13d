package app_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"stayhub/internal/domain"
)

// ---- fakes ----

// fakeStore is an in-memory stand-in for the MySQL repo. Admit holds the
// mutex across check and insert, mirroring the row-lock transaction of the
// real ledger.
type fakeStore struct {
	mu       sync.Mutex
	hotels   map[int64]domain.Hotel
	rooms    map[int64]domain.Room
	bookings map[int64]domain.Booking
	nextID   int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels:   map[int64]domain.Hotel{},
		rooms:    map[int64]domain.Room{},
		bookings: map[int64]domain.Booking{},
	}
}

func (f *fakeStore) id() int64 { f.nextID++; return f.nextID }

func (f *fakeStore) addHotel(title, location string) domain.Hotel {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := domain.Hotel{ID: f.id(), Title: title, Location: location}
	f.hotels[h.ID] = h
	return h
}

func (f *fakeStore) addRoom(hotelID int64, title string, price, quantity int) domain.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := domain.Room{ID: f.id(), HotelID: hotelID, Title: title, Price: price, Quantity: quantity}
	f.rooms[r.ID] = r
	return r
}

// HotelRepository

func (f *fakeStore) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (f *fakeStore) ListHotelsByIDs(ctx context.Context, ids []int64, flt domain.HotelsFilter) ([]domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matches := func(field string, p *string) bool {
		if p == nil || strings.TrimSpace(*p) == "" {
			return true
		}
		return strings.Contains(strings.ToLower(field), strings.ToLower(strings.TrimSpace(*p)))
	}
	out := []domain.Hotel{}
	for _, id := range ids {
		h, ok := f.hotels[id]
		if !ok {
			continue
		}
		if matches(h.Location, flt.Location) && matches(h.Title, flt.Title) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if flt.Offset >= len(out) {
		return []domain.Hotel{}, nil
	}
	out = out[flt.Offset:]
	if len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f *fakeStore) CreateHotel(ctx context.Context, h domain.HotelAdd) (domain.Hotel, error) {
	return f.addHotel(h.Title, h.Location), nil
}

func (f *fakeStore) UpdateHotel(ctx context.Context, id int64, u domain.HotelUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hotels[id]
	if !ok {
		return domain.ErrNotFound
	}
	if u.Title != nil {
		h.Title = *u.Title
	}
	if u.Location != nil {
		h.Location = *u.Location
	}
	f.hotels[id] = h
	return nil
}

func (f *fakeStore) DeleteHotel(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.hotels[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.hotels, id)
	return nil
}

// RoomRepository

func (f *fakeStore) GetRoom(ctx context.Context, hotelID, roomID int64) (domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok || r.HotelID != hotelID {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeStore) ListRooms(ctx context.Context, hotelID *int64) ([]domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Room{}
	for _, r := range f.rooms {
		if hotelID == nil || r.HotelID == *hotelID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CreateRoom(ctx context.Context, r domain.RoomAdd) (domain.Room, error) {
	return f.addRoom(r.HotelID, r.Title, r.Price, r.Quantity), nil
}

func (f *fakeStore) UpdateRoom(ctx context.Context, hotelID, roomID int64, u domain.RoomUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok || r.HotelID != hotelID {
		return domain.ErrNotFound
	}
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.Quantity != nil {
		r.Quantity = *u.Quantity
	}
	f.rooms[roomID] = r
	return nil
}

func (f *fakeStore) DeleteRoom(ctx context.Context, hotelID, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok || r.HotelID != hotelID {
		return domain.ErrNotFound
	}
	delete(f.rooms, r.ID)
	return nil
}

// BookingLedger

func (f *fakeStore) OverlapCounts(ctx context.Context, roomIDs []int64, from, to time.Time) (map[int64]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overlapCountsLocked(roomIDs, from, to), nil
}

func (f *fakeStore) overlapCountsLocked(roomIDs []int64, from, to time.Time) map[int64]int {
	scope := map[int64]bool{}
	for _, id := range roomIDs {
		scope[id] = true
	}
	out := map[int64]int{}
	for _, b := range f.bookings {
		if len(scope) > 0 && !scope[b.RoomID] {
			continue
		}
		if b.Overlaps(from, to) {
			out[b.RoomID]++
		}
	}
	return out
}

func (f *fakeStore) Admit(ctx context.Context, add domain.BookingAdd) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[add.RoomID]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	booked := f.overlapCountsLocked([]int64{add.RoomID}, add.DateFrom, add.DateTo)[add.RoomID]
	if r.Quantity-booked <= 0 {
		return domain.Booking{}, domain.ErrCapacityExceeded
	}
	b := domain.Booking{
		ID: f.id(), Ref: add.Ref, UserID: add.UserID, RoomID: add.RoomID,
		DateFrom: add.DateFrom, DateTo: add.DateTo, Price: r.Price,
	}
	f.bookings[b.ID] = b
	return b, nil
}

func (f *fakeStore) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeStore) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []domain.Booking{}
	for _, b := range f.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	all, _ := f.ListBookings(ctx)
	out := []domain.Booking{}
	for _, b := range all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteBooking(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

// fakeCache is a map-backed stand-in for the redis adapter.
type fakeCache struct {
	mu    sync.Mutex
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.Hotel:
		*d = v.(domain.Hotel)
	case *domain.Room:
		*d = v.(domain.Room)
	case *[]domain.Facility:
		*d = v.([]domain.Facility)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}

// ---- helpers ----

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }
