package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

func TestGetHotel_CacheMissThenHit(t *testing.T) {
	st := newFakeStore()
	cache := &fakeCache{}
	svc := app.NewHotelService(st, cache, 10*time.Minute)
	h := st.addHotel("Sea Breeze", "Sochi")

	// miss populates the cache
	got, err := svc.Get(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Title != "Sea Breeze" {
		t.Fatalf("unexpected hotel: %+v", got)
	}

	// mutate the store to prove the second read is served from cache
	st.hotels[h.ID] = domain.Hotel{ID: h.ID, Title: "SHOULD NOT SEE THIS", Location: "Sochi"}

	got2, err := svc.Get(context.Background(), h.ID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got2.Title != "Sea Breeze" {
		t.Fatalf("expected cached title, got %s", got2.Title)
	}
}

func TestUpdateHotel_InvalidatesCacheAndSurfacesNotFound(t *testing.T) {
	st := newFakeStore()
	cache := &fakeCache{}
	svc := app.NewHotelService(st, cache, 10*time.Minute)
	h := st.addHotel("Sea Breeze", "Sochi")
	ctx := context.Background()

	if _, err := svc.Get(ctx, h.ID); err != nil { // warm cache
		t.Fatalf("err: %v", err)
	}
	if err := svc.Update(ctx, h.ID, domain.HotelUpdate{Title: ptr("Sea Breeze Resort")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := svc.Get(ctx, h.ID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got.Title != "Sea Breeze Resort" {
		t.Fatalf("stale read after update: %+v", got)
	}

	// missing id is an explicit NotFound, never a silent no-op
	if err := svc.Update(ctx, 404, domain.HotelUpdate{Title: ptr("X")}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPatchHotel_PartialUpdateKeepsOtherFields(t *testing.T) {
	st := newFakeStore()
	svc := app.NewHotelService(st, &fakeCache{}, 10*time.Minute)
	h := st.addHotel("Sea Breeze", "Sochi")
	ctx := context.Background()

	if err := svc.Update(ctx, h.ID, domain.HotelUpdate{Location: ptr("Adler")}); err != nil {
		t.Fatalf("patch: %v", err)
	}
	got, _ := svc.Get(ctx, h.ID)
	if got.Title != "Sea Breeze" || got.Location != "Adler" {
		t.Fatalf("partial update touched the wrong fields: %+v", got)
	}
}
