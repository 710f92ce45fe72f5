package service

import (
	"context"
	"log"
	"time"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const publishTimeout = 2 * time.Second

// Activity publishes dashboard events for one hotel. Publishing never fails the caller.
type Activity struct {
	publisher ActivityPublisher
	hotel     string
}

func NewActivity(publisher ActivityPublisher, hotel string) *Activity {
	return &Activity{publisher: publisher, hotel: hotel}
}

func (a *Activity) Record(ctx context.Context, kind domain.ActivityType, subject, reference string, amount decimal.Decimal) {
	if a == nil || a.publisher == nil {
		return
	}
	event := domain.ActivityEvent{
		Type:      kind,
		HotelName: a.hotel,
		Subject:   subject,
		Reference: reference,
		Amount:    amount,
		Timestamp: time.Now().UTC(),
	}
	// Outlives the request, but not by much.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := a.publisher.PublishActivity(ctx, event); err != nil {
		log.Printf("[portal-svc] publish %s activity: %v", kind, err)
	}
}
