package app

import (
	"context"
	"fmt"
	"time"

	"stayhub/internal/domain"
)

type RoomService struct {
	hotels   domain.HotelRepository
	repo     domain.RoomRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewRoomService(h domain.HotelRepository, r domain.RoomRepository, c domain.Cache, ttl time.Duration) *RoomService {
	return &RoomService{hotels: h, repo: r, cache: c, cacheTTL: ttl}
}

func roomKey(hotelID, roomID int64) string { return fmt.Sprintf("room:%d:%d", hotelID, roomID) }

func (s *RoomService) Get(ctx context.Context, hotelID, roomID int64) (domain.Room, error) {
	key := roomKey(hotelID, roomID)
	var r domain.Room
	if ok, _ := s.cache.Get(ctx, key, &r); ok {
		return r, nil
	}
	r, err := s.repo.GetRoom(ctx, hotelID, roomID)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Set(ctx, key, r, int(s.cacheTTL.Seconds()))
	return r, nil
}

func (s *RoomService) Create(ctx context.Context, r domain.RoomAdd) (domain.Room, error) {
	if _, err := s.hotels.GetHotel(ctx, r.HotelID); err != nil {
		return domain.Room{}, err
	}
	return s.repo.CreateRoom(ctx, r)
}

func (s *RoomService) Update(ctx context.Context, hotelID, roomID int64, u domain.RoomUpdate) error {
	if err := s.repo.UpdateRoom(ctx, hotelID, roomID, u); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, roomKey(hotelID, roomID))
	return nil
}

func (s *RoomService) Delete(ctx context.Context, hotelID, roomID int64) error {
	if err := s.repo.DeleteRoom(ctx, hotelID, roomID); err != nil {
		return err
	}
	_ = s.cache.Del(ctx, roomKey(hotelID, roomID))
	return nil
}
