package app

import (
	"context"
	"time"

	"stayhub/internal/domain"
)

const facilitiesKey = "facilities"

type FacilityService struct {
	repo     domain.FacilityRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewFacilityService(r domain.FacilityRepository, c domain.Cache, ttl time.Duration) *FacilityService {
	return &FacilityService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *FacilityService) List(ctx context.Context) ([]domain.Facility, error) {
	var out []domain.Facility
	if ok, _ := s.cache.Get(ctx, facilitiesKey, &out); ok {
		return out, nil
	}
	out, err := s.repo.ListFacilities(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, facilitiesKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *FacilityService) Create(ctx context.Context, title string) (domain.Facility, error) {
	f, err := s.repo.CreateFacility(ctx, title)
	if err != nil {
		return domain.Facility{}, err
	}
	_ = s.cache.Del(ctx, facilitiesKey)
	return f, nil
}
