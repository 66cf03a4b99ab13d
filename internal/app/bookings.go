package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stayhub/internal/domain"
)

// BookingService owns the write path of the ledger. Capacity is re-verified
// inside the ledger's transaction, so two concurrent Book calls for the last
// unit cannot both succeed.
type BookingService struct {
	rooms  domain.RoomRepository
	ledger domain.BookingLedger
}

func NewBookingService(r domain.RoomRepository, l domain.BookingLedger) *BookingService {
	return &BookingService{rooms: r, ledger: l}
}

// Book admits a reservation of one unit of roomID for [from, to] on behalf of
// userID. Once admission starts it runs to completion even if the caller goes
// away; abandoning the unit of work mid-transaction would risk a partial write.
func (s *BookingService) Book(ctx context.Context, userID, roomID int64, from, to time.Time) (domain.Booking, error) {
	if err := validateRange(from, to); err != nil {
		return domain.Booking{}, err
	}

	return s.ledger.Admit(context.WithoutCancel(ctx), domain.BookingAdd{
		Ref:      uuid.NewString(),
		UserID:   userID,
		RoomID:   roomID,
		DateFrom: from,
		DateTo:   to,
	})
}

// Cancel removes a booking owned by userID. Unknown ids surface ErrNotFound,
// foreign bookings ErrForbidden.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID int64) error {
	b, err := s.ledger.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return domain.ErrForbidden
	}
	return s.ledger.DeleteBooking(ctx, bookingID)
}

func (s *BookingService) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return s.ledger.ListBookings(ctx)
}

func (s *BookingService) ListMine(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.ledger.ListUserBookings(ctx, userID)
}
