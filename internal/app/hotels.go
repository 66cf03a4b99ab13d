package app

import (
	"context"
	"fmt"
	"time"

	"stayhub/internal/domain"
)

// HotelService is thin CRUD plumbing around the hotel repository with a
// read-through cache on single-hotel lookups.
type HotelService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewHotelService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *HotelService {
	return &HotelService{repo: r, cache: c, cacheTTL: ttl}
}

func hotelKey(id int64) string { return fmt.Sprintf("hotel:%d", id) }

func (s *HotelService) Get(ctx context.Context, id int64) (domain.Hotel, error) {
	key := hotelKey(id)
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *HotelService) Create(ctx context.Context, h domain.HotelAdd) (domain.Hotel, error) {
	return s.repo.CreateHotel(ctx, h)
}

func (s *HotelService) Update(ctx context.Context, id int64, u domain.HotelUpdate) error {
	if err := s.repo.UpdateHotel(ctx, id, u); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, hotelKey(id))
	return nil
}

func (s *HotelService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteHotel(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, hotelKey(id))
	return nil
}
