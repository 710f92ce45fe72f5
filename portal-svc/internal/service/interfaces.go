package service

import (
	"context"
	"time"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type CartAPI interface {
	GetCart(ctx context.Context) ([]domain.CartLine, error)
	AddToCart(ctx context.Context, productID domain.ID, quantity int) error
	UpdateCartItem(ctx context.Context, productID domain.ID, quantity int) error
	RemoveCartItem(ctx context.Context, productID domain.ID) error
	ClearCart(ctx context.Context) error
	CalculateCart(ctx context.Context, lines []domain.CartLine) (domain.CartTotal, error)
}

type OrderAPI interface {
	PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.PlacedOrder, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id domain.ID) (*domain.Order, error)
	CancelOrder(ctx context.Context, id domain.ID) error
}

type BillingAPI interface {
	ListBills(ctx context.Context) ([]domain.Bill, error)
	GetOrder(ctx context.Context, id domain.ID) (*domain.Order, error)
	GetProfile(ctx context.Context) (*domain.HotelProfile, error)
}

type AccountAPI interface {
	GetProfile(ctx context.Context) (*domain.HotelProfile, error)
	UpdateProfile(ctx context.Context, profile domain.HotelProfile) (*domain.HotelProfile, error)
	ChangePassword(ctx context.Context, change domain.PasswordChange) error
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)
	CreateTicket(ctx context.Context, ticket domain.NewTicket) (*domain.SupportTicket, error)
	ReplyTicket(ctx context.Context, id domain.ID, message string) error
}

// Backend is everything a session workspace needs from the upstream API.
type Backend interface {
	CatalogAPI
	CartAPI
	OrderAPI
	BillingAPI
	AccountAPI
}

type Navigator interface {
	Navigate(ctx context.Context, path string, after time.Duration)
}

type ActivityPublisher interface {
	PublishActivity(ctx context.Context, event domain.ActivityEvent) error
}

type QRGenerator interface {
	Generate(content string) ([]byte, error)
}

type PriceLookup interface {
	Price(id domain.ID) (decimal.Decimal, bool)
}
