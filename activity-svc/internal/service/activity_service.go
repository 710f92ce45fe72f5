package service

import (
	"context"

	"hotel-portal/activity-svc/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type ActivityService struct {
	store StoreInterface
}

func NewActivityService(store StoreInterface) *ActivityService {
	return &ActivityService{store: store}
}

func (s *ActivityService) Recent(ctx context.Context, hotel string, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	activities, err := s.store.RecentActivity(ctx, hotel, limit)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

func (s *ActivityService) Summary(ctx context.Context, hotel, day string) (domain.DailySummary, error) {
	counts, err := s.store.DailySummary(ctx, hotel, day)
	if err != nil {
		return domain.DailySummary{}, err
	}
	return domain.DailySummary{HotelName: hotel, Date: day, Counts: counts}, nil
}

var _ ActivityServiceInterface = (*ActivityService)(nil)
