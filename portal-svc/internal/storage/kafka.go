package storage

import (
	"context"
	"encoding/json"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishActivity keys messages by hotel so one hotel's events stay ordered.
func (p *KafkaPublisher) PublishActivity(ctx context.Context, event domain.ActivityEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.HotelName),
		Value: payload,
	})
}
