package service

import (
	"context"
	"log"
	"sync"
	"time"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	OrdersPath          = "/orders"
	DefaultMinimumOrder = 200

	deliveryLayout = "2006-01-02"
)

type OrderState string

const (
	StateIdle       OrderState = "idle"
	StateReviewing  OrderState = "reviewing"
	StateSubmitting OrderState = "submitting"
)

// OrderFlow walks the checkout from cart review to a placed order.
type OrderFlow struct {
	api      OrderAPI
	cart     *CartStore
	nav      Navigator
	activity *Activity
	minimum  decimal.Decimal
	now      func() time.Time

	mu      sync.Mutex
	state   OrderState
	lastErr error
}

func NewOrderFlow(api OrderAPI, cart *CartStore, nav Navigator, activity *Activity, minimum decimal.Decimal) *OrderFlow {
	return &OrderFlow{
		api:      api,
		cart:     cart,
		nav:      nav,
		activity: activity,
		minimum:  minimum,
		now:      time.Now,
		state:    StateIdle,
	}
}

// SetClock replaces the clock used to compute the delivery date.
func (f *OrderFlow) SetClock(now func() time.Time) {
	f.now = now
}

func (f *OrderFlow) State() OrderState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *OrderFlow) LastError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Review opens the order review. It only reads local cart state.
func (f *OrderFlow) Review() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	if err := f.checkCart(); err != nil {
		return err
	}
	f.state = StateReviewing
	f.lastErr = nil
	return nil
}

func (f *OrderFlow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateReviewing {
		f.state = StateIdle
		f.lastErr = nil
	}
}

func (f *OrderFlow) Submit(ctx context.Context, specialInstructions string) (*domain.PlacedOrder, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StateReviewing:
	default:
		f.mu.Unlock()
		return nil, ErrNotReviewing
	}
	if err := f.checkCart(); err != nil {
		f.state = StateIdle
		f.mu.Unlock()
		return nil, err
	}
	f.state = StateSubmitting
	f.mu.Unlock()

	total := f.cart.Total()
	request := domain.OrderRequest{
		DeliveryDate:        f.now().AddDate(0, 0, 1).Format(deliveryLayout),
		SpecialInstructions: specialInstructions,
		Items:               f.cart.Lines(),
	}

	placed, err := f.api.PlaceOrder(ctx, request)
	if err != nil {
		f.mu.Lock()
		f.state = StateReviewing
		f.lastErr = err
		f.mu.Unlock()
		return nil, err
	}

	// The order stands even if the cart cannot be cleared.
	if err := f.cart.Clear(ctx); err != nil {
		log.Printf("[portal-svc] clear cart after order %s: %v", placed.OrderID, err)
	}

	f.mu.Lock()
	f.state = StateIdle
	f.lastErr = nil
	f.mu.Unlock()

	f.nav.Navigate(ctx, OrdersPath, 0)
	f.activity.Record(ctx, domain.ActivityOrderPlaced, "order placed", placed.OrderID.String(), total.TotalAmount)
	return placed, nil
}

func (f *OrderFlow) checkCart() error {
	if len(f.cart.Lines()) == 0 {
		return ErrCartEmpty
	}
	if f.cart.Total().TotalAmount.LessThan(f.minimum) {
		return belowMinimum(f.minimum)
	}
	return nil
}
