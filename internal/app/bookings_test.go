package app_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

func bookingFixture() (*fakeStore, *app.BookingService) {
	st := newFakeStore()
	return st, app.NewBookingService(st, st)
}

func TestBook_SnapshotsRoomPrice(t *testing.T) {
	st, svc := bookingFixture()
	h := st.addHotel("Sea Breeze", "Sochi")
	r := st.addRoom(h.ID, "Double", 90, 2)

	b, err := svc.Book(context.Background(), 1, r.ID, day(t, "2024-08-01"), day(t, "2024-08-05"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.Price != 90 {
		t.Fatalf("price snapshot = %d, want 90", b.Price)
	}
	if b.TotalCost() != 90*4 {
		t.Fatalf("total cost = %d, want %d", b.TotalCost(), 90*4)
	}
	if b.Ref == "" {
		t.Fatalf("expected a booking ref")
	}
}

func TestBook_InvalidRange(t *testing.T) {
	st, svc := bookingFixture()
	h := st.addHotel("Sea Breeze", "Sochi")
	r := st.addRoom(h.ID, "Double", 90, 2)

	d := day(t, "2024-08-01")
	if _, err := svc.Book(context.Background(), 1, r.ID, d, d); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
	if _, err := svc.Book(context.Background(), 1, r.ID, day(t, "2024-08-05"), day(t, "2024-08-01")); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestBook_UnknownRoom(t *testing.T) {
	_, svc := bookingFixture()
	if _, err := svc.Book(context.Background(), 1, 404, day(t, "2024-08-01"), day(t, "2024-08-05")); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestBook_LastUnitRace(t *testing.T) {
	st, svc := bookingFixture()
	h := st.addHotel("Sea Breeze", "Sochi")
	r := st.addRoom(h.ID, "Double", 90, 1)
	ctx := context.Background()

	// A: [08-01, 08-05], B: overlapping [08-03, 08-07], one unit. At most one
	// may win, regardless of interleaving.
	var wins, losses atomic.Int64
	var wg sync.WaitGroup
	ranges := [][2]string{{"2024-08-01", "2024-08-05"}, {"2024-08-03", "2024-08-07"}}
	for _, iv := range ranges {
		wg.Add(1)
		go func(fromS, toS string) {
			defer wg.Done()
			_, err := svc.Book(ctx, 1, r.ID, day(t, fromS), day(t, toS))
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, domain.ErrCapacityExceeded):
				losses.Add(1)
			default:
				t.Errorf("unexpected err: %v", err)
			}
		}(iv[0], iv[1])
	}
	wg.Wait()

	if wins.Load() != 1 || losses.Load() != 1 {
		t.Fatalf("wins=%d losses=%d, want exactly one of each", wins.Load(), losses.Load())
	}
	left, _ := st.ListBookings(ctx)
	if len(left) != 1 {
		t.Fatalf("ledger rows = %d, want 1", len(left))
	}
}

func TestBook_QuantityTwoThenCancel(t *testing.T) {
	st, svc := bookingFixture()
	h := st.addHotel("Sea Breeze", "Sochi")
	r := st.addRoom(h.ID, "Double", 90, 2)
	ctx := context.Background()
	from, to := day(t, "2024-08-01"), day(t, "2024-08-05")

	first, err := svc.Book(ctx, 1, r.ID, from, to)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := svc.Book(ctx, 2, r.ID, from, to); err != nil {
		t.Fatalf("second: %v", err)
	}

	// both units taken now
	if _, err := svc.Book(ctx, 3, r.ID, day(t, "2024-08-03"), day(t, "2024-08-07")); !errors.Is(err, domain.ErrCapacityExceeded) {
		t.Fatalf("third: err = %v, want ErrCapacityExceeded", err)
	}

	// freeing one unit lets the third attempt through
	if err := svc.Cancel(ctx, 1, first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Book(ctx, 3, r.ID, day(t, "2024-08-03"), day(t, "2024-08-07")); err != nil {
		t.Fatalf("retry after cancel: %v", err)
	}
}

func TestBook_CapacityInvariantUnderConcurrency(t *testing.T) {
	st, svc := bookingFixture()
	h := st.addHotel("Sea Breeze", "Sochi")
	const quantity = 3
	r := st.addRoom(h.ID, "Double", 90, quantity)
	ctx := context.Background()
	from, to := day(t, "2024-08-01"), day(t, "2024-08-05")

	var wg sync.WaitGroup
	var wins atomic.Int64
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			if _, err := svc.Book(ctx, uid, r.ID, from, to); err == nil {
				wins.Add(1)
			}
		}(int64(i + 1))
	}
	wg.Wait()

	if wins.Load() != quantity {
		t.Fatalf("admitted %d bookings for quantity %d", wins.Load(), quantity)
	}
	counts, _ := st.OverlapCounts(ctx, []int64{r.ID}, from, to)
	if counts[r.ID] > quantity {
		t.Fatalf("overlap count %d exceeds quantity %d", counts[r.ID], quantity)
	}
}

func TestCancel_OwnershipAndNotFound(t *testing.T) {
	st, svc := bookingFixture()
	h := st.addHotel("Sea Breeze", "Sochi")
	r := st.addRoom(h.ID, "Double", 90, 2)
	ctx := context.Background()

	b, err := svc.Book(ctx, 1, r.ID, day(t, "2024-08-01"), day(t, "2024-08-05"))
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if err := svc.Cancel(ctx, 2, b.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("foreign cancel: err = %v, want ErrForbidden", err)
	}
	if err := svc.Cancel(ctx, 1, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("unknown id: err = %v, want ErrNotFound", err)
	}
	if err := svc.Cancel(ctx, 1, b.ID); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}
}

func TestListMine_FiltersByUser(t *testing.T) {
	st, svc := bookingFixture()
	h := st.addHotel("Sea Breeze", "Sochi")
	r := st.addRoom(h.ID, "Double", 90, 5)
	ctx := context.Background()

	if _, err := svc.Book(ctx, 1, r.ID, day(t, "2024-08-01"), day(t, "2024-08-05")); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := svc.Book(ctx, 2, r.ID, day(t, "2024-08-01"), day(t, "2024-08-05")); err != nil {
		t.Fatalf("book: %v", err)
	}

	mine, err := svc.ListMine(ctx, 1)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != 1 {
		t.Fatalf("unexpected bookings: %+v", mine)
	}
	all, _ := svc.ListAll(ctx)
	if len(all) != 2 {
		t.Fatalf("all = %d, want 2", len(all))
	}
}
