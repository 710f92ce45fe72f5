package service

import (
	"context"
	"log"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type OrderLineView struct {
	domain.OrderItem
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type OrderView struct {
	domain.Order
	Lines    []OrderLineView `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderHistory lists past orders with line totals priced by ResolvePrice.
type OrderHistory struct {
	api     OrderAPI
	catalog *Catalog
}

func NewOrderHistory(api OrderAPI, catalog *Catalog) *OrderHistory {
	return &OrderHistory{api: api, catalog: catalog}
}

func (h *OrderHistory) List(ctx context.Context) ([]OrderView, error) {
	orders, err := h.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	h.loadPrices(ctx)
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, h.view(order))
	}
	return views, nil
}

func (h *OrderHistory) Get(ctx context.Context, id domain.ID) (*OrderView, error) {
	order, err := h.api.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	h.loadPrices(ctx)
	view := h.view(*order)
	return &view, nil
}

func (h *OrderHistory) Cancel(ctx context.Context, id domain.ID) error {
	return h.api.CancelOrder(ctx, id)
}

// loadPrices fills the catalog for lines without a locked price. Without it those lines
// price at zero rather than failing the listing.
func (h *OrderHistory) loadPrices(ctx context.Context) {
	if err := h.catalog.EnsureLoaded(ctx); err != nil {
		log.Printf("[portal-svc] order history: load catalog: %v", err)
	}
}

func (h *OrderHistory) view(order domain.Order) OrderView {
	view := OrderView{Order: order, Lines: make([]OrderLineView, 0, len(order.Items)), Subtotal: decimal.Zero}
	for _, item := range order.Items {
		price := ResolvePrice(item, h.catalog)
		total := item.Quantity.Mul(price)
		view.Lines = append(view.Lines, OrderLineView{OrderItem: item, UnitPrice: price, LineTotal: total})
		view.Subtotal = view.Subtotal.Add(total)
	}
	return view
}
