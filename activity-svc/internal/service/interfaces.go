package service

import (
	"context"

	"hotel-portal/activity-svc/internal/domain"
)

type StoreInterface interface {
	SaveActivity(ctx context.Context, msg domain.KafkaMessage) error
	BumpDailyCounter(ctx context.Context, msg domain.KafkaMessage) error
	RecentActivity(ctx context.Context, hotel string, limit int) ([]domain.Activity, error)
	DailySummary(ctx context.Context, hotel, day string) (map[string]int, error)
}

type ActivityServiceInterface interface {
	Recent(ctx context.Context, hotel string, limit int) ([]domain.Activity, error)
	Summary(ctx context.Context, hotel, day string) (domain.DailySummary, error)
}
