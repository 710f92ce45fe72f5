package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPreparing  OrderStatus = "preparing"
	OrderDispatched OrderStatus = "dispatched"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

type PricingStatus string

const (
	PricingPending   PricingStatus = "pending_pricing"
	PricingFinalized PricingStatus = "prices_finalized"
)

type BillStatus string

const (
	BillDraft BillStatus = "draft"
	BillSent  BillStatus = "sent"
	BillPaid  BillStatus = "paid"
)

type Product struct {
	ID           ID              `json:"id"`
	Name         string          `json:"name"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	UnitType     string          `json:"unit_type"`
	Category     string          `json:"category"`
	ImageURL     string          `json:"image_url,omitempty"`
	IsAvailable  bool            `json:"is_available"`
}

type CartLine struct {
	ProductID ID  `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type TotalSource string

const (
	TotalServer   TotalSource = "server"
	TotalEstimate TotalSource = "estimate"
)

// CartTotal is a projection of the cart lines. Estimate totals come from cached catalog
// prices and are not a price quote.
type CartTotal struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
	Source      TotalSource     `json:"source"`
	Pending     bool            `json:"pending"`
}

// CartItemView is a cart line decorated with catalog data for display.
type CartItemView struct {
	ProductID    ID              `json:"product_id"`
	Name         string          `json:"name"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	UnitType     string          `json:"unit_type"`
	ImageURL     string          `json:"image_url,omitempty"`
	Quantity     int             `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
	Known        bool            `json:"known"`
}

type OrderItem struct {
	ProductID    ID                  `json:"product_id"`
	Quantity     decimal.Decimal     `json:"quantity"`
	PriceAtOrder decimal.NullDecimal `json:"price_at_order"`
	PricePerUnit decimal.NullDecimal `json:"price_per_unit"`
	ProductName  string              `json:"product_name"`
	UnitType     string              `json:"unit_type"`
}

type Order struct {
	ID                  ID              `json:"order_id"`
	Items               []OrderItem     `json:"items"`
	OrderDate           Date            `json:"order_date"`
	DeliveryDate        string          `json:"delivery_date"`
	Status              OrderStatus     `json:"status"`
	PricingStatus       PricingStatus   `json:"pricing_status"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
}

func (o Order) PricesFinalized() bool {
	return o.PricingStatus == PricingFinalized
}

type OrderRequest struct {
	DeliveryDate        string     `json:"delivery_date"`
	SpecialInstructions string     `json:"special_instructions"`
	Items               []CartLine `json:"items"`
}

type PlacedOrder struct {
	OrderID      ID             `json:"order_id"`
	DeliveryInfo map[string]any `json:"delivery_info,omitempty"`
}

// Bill mirrors the upstream payload, which uses either id or bill_id and either
// total_amount or amount depending on the endpoint version.
type Bill struct {
	ID          ID              `json:"id"`
	BillID      ID              `json:"bill_id"`
	OrderID     ID              `json:"order_id"`
	Items       []OrderItem     `json:"items"`
	BillDate    Date            `json:"bill_date"`
	CreatedAt   Date            `json:"created_at"`
	DueDate     *Date           `json:"due_date,omitempty"`
	Status      BillStatus      `json:"bill_status"`
	Paid        bool            `json:"paid"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Amount      decimal.Decimal `json:"amount"`
}

func (b Bill) Key() ID {
	if b.ID != "" {
		return b.ID
	}
	return b.BillID
}

// Matches reports whether id names this bill under either of its identifiers.
func (b Bill) Matches(id ID) bool {
	return id != "" && (b.ID == id || b.BillID == id)
}

func (b Bill) Total() decimal.Decimal {
	if !b.TotalAmount.IsZero() {
		return b.TotalAmount
	}
	return b.Amount
}

func (b Bill) IsPaid() bool {
	return b.Paid || b.Status == BillPaid
}

// Actionable reports whether the bill can be viewed or printed. Drafts are still awaiting prices.
func (b Bill) Actionable() bool {
	return b.Status != BillDraft
}

type HotelProfile struct {
	HotelName     string `json:"hotel_name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	GSTNumber     string `json:"gst_number,omitempty"`
}

type TicketStatus string

const (
	TicketOpen   TicketStatus = "open"
	TicketClosed TicketStatus = "closed"
)

type TicketMessage struct {
	Message   string `json:"message"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt Date   `json:"created_at"`
}

type SupportTicket struct {
	ID       ID              `json:"id"`
	Subject  string          `json:"subject"`
	Category string          `json:"category"`
	Status   TicketStatus    `json:"status"`
	Priority string          `json:"priority,omitempty"`
	Messages []TicketMessage `json:"messages"`
}

type NewTicket struct {
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Priority string `json:"priority,omitempty"`
	Message  string `json:"message"`
}

type Notification struct {
	ID          ID              `json:"id"`
	BillID      ID              `json:"billId"`
	Message     string          `json:"message"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"dueDate"`
	CreatedDate string          `json:"createdDate"`
	Read        bool            `json:"read"`
	Status      string          `json:"status"`
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type ActivityType string

const (
	ActivityOrderPlaced    ActivityType = "order_placed"
	ActivityReorder        ActivityType = "reorder"
	ActivityTicketOpened   ActivityType = "ticket_opened"
	ActivityInvoicePrinted ActivityType = "invoice_printed"
)

type ActivityEvent struct {
	Type      ActivityType    `json:"type"`
	HotelName string          `json:"hotel_name"`
	Subject   string          `json:"subject"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}
