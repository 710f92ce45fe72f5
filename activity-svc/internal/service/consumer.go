package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"hotel-portal/activity-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[activity-svc] starting activity consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Println("[activity-svc] consumer stopped")
				return
			}
			log.Printf("[activity-svc] error reading message: %v", err)
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("[activity-svc] error unmarshaling message: %v", err)
			continue
		}

		c.ProcessActivity(ctx, msg)
	}
}

func (c *Consumer) ProcessActivity(ctx context.Context, msg domain.KafkaMessage) {
	if !domain.KnownType(msg.Type) || msg.HotelName == "" {
		log.Printf("[activity-svc] skipping message type=%q hotel=%q", msg.Type, msg.HotelName)
		return
	}
	log.Printf("[activity-svc] processing %s for %s ref=%s", msg.Type, msg.HotelName, msg.Reference)

	if err := c.Store.SaveActivity(ctx, msg); err != nil {
		log.Printf("[activity-svc] error saving activity: %v", err)
		return
	}

	if err := c.Store.BumpDailyCounter(ctx, msg); err != nil {
		log.Printf("[activity-svc] error updating daily counter: %v", err)
		return
	}
}
