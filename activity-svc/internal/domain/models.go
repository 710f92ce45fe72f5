package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeOrderPlaced    = "order_placed"
	TypeReorder        = "reorder"
	TypeTicketOpened   = "ticket_opened"
	TypeInvoicePrinted = "invoice_printed"
)

// KafkaMessage is the activity event published by portal-svc.
type KafkaMessage struct {
	Type      string          `json:"type"`
	HotelName string          `json:"hotel_name"`
	Subject   string          `json:"subject"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

type Activity struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	HotelName string          `json:"hotel_name"`
	Subject   string          `json:"subject"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type DailySummary struct {
	HotelName string         `json:"hotel_name"`
	Date      string         `json:"date"`
	Counts    map[string]int `json:"counts"`
}

func KnownType(t string) bool {
	switch t {
	case TypeOrderPlaced, TypeReorder, TypeTicketOpened, TypeInvoicePrinted:
		return true
	}
	return false
}
