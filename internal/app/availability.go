package app

import (
	"context"
	"sort"
	"time"

	"stayhub/internal/domain"
)

// AvailabilityService answers "which rooms still have a free unit for these
// dates". It is read-only: one grouped overlap-count over the booking ledger,
// joined in-process against room quantities. Results are never cached — a
// stale count could mask a concurrent admission.
type AvailabilityService struct {
	hotels domain.HotelRepository
	rooms  domain.RoomRepository
	ledger domain.BookingLedger
}

func NewAvailabilityService(h domain.HotelRepository, r domain.RoomRepository, l domain.BookingLedger) *AvailabilityService {
	return &AvailabilityService{hotels: h, rooms: r, ledger: l}
}

func validateRange(from, to time.Time) error {
	if !from.Before(to) {
		return domain.ErrInvalidRange
	}
	return nil
}

func validatePage(limit, offset int) error {
	if limit <= 0 || offset < 0 {
		return domain.ErrInvalidPagination
	}
	return nil
}

// RemainingCapacity computes quantity minus overlapping-booking count for each
// candidate room. Rooms absent from the ledger count as zero booked, never as
// unknown.
func (s *AvailabilityService) RemainingCapacity(ctx context.Context, rooms []domain.Room, from, to time.Time) (map[int64]int, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return map[int64]int{}, nil
	}

	ids := make([]int64, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	booked, err := s.ledger.OverlapCounts(ctx, ids, from, to)
	if err != nil {
		return nil, err
	}

	remaining := make(map[int64]int, len(rooms))
	for _, r := range rooms {
		remaining[r.ID] = r.Quantity - booked[r.ID]
	}
	return remaining, nil
}

// FindAvailableRooms returns the rooms of hotelID that have at least one
// unreserved unit for [from, to], ordered by id ascending.
func (s *AvailabilityService) FindAvailableRooms(ctx context.Context, hotelID int64, from, to time.Time) ([]domain.Room, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if _, err := s.hotels.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListRooms(ctx, &hotelID)
	if err != nil {
		return nil, err
	}
	remaining, err := s.RemainingCapacity(ctx, rooms, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if remaining[r.ID] > 0 {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// FindAvailableHotels projects the bookable rooms across all hotels onto their
// owning hotels, applies the optional title/location filters and paginates.
// An empty page is a valid answer, not an error.
func (s *AvailabilityService) FindAvailableHotels(ctx context.Context, from, to time.Time, f domain.HotelsFilter) ([]domain.Hotel, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if err := validatePage(f.Limit, f.Offset); err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListRooms(ctx, nil)
	if err != nil {
		return nil, err
	}
	remaining, err := s.RemainingCapacity(ctx, rooms, from, to)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{})
	var hotelIDs []int64
	for _, r := range rooms {
		if remaining[r.ID] <= 0 {
			continue
		}
		if _, ok := seen[r.HotelID]; ok {
			continue
		}
		seen[r.HotelID] = struct{}{}
		hotelIDs = append(hotelIDs, r.HotelID)
	}
	if len(hotelIDs) == 0 {
		return []domain.Hotel{}, nil
	}
	sort.Slice(hotelIDs, func(i, j int) bool { return hotelIDs[i] < hotelIDs[j] })

	return s.hotels.ListHotelsByIDs(ctx, hotelIDs, f)
}
