package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"hotel-portal/portal-svc/internal/client"
	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	CartPath             = "/cart"
	ReorderRedirectDelay = 1500 * time.Millisecond
)

type ReorderResult struct {
	Added   int `json:"added"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// ReorderEngine replays a past order into the cart against the current catalog.
type ReorderEngine struct {
	orders   OrderAPI
	cart     *CartStore
	catalog  *Catalog
	nav      Navigator
	activity *Activity
}

func NewReorderEngine(orders OrderAPI, cart *CartStore, catalog *Catalog, nav Navigator, activity *Activity) *ReorderEngine {
	return &ReorderEngine{
		orders:   orders,
		cart:     cart,
		catalog:  catalog,
		nav:      nav,
		activity: activity,
	}
}

type reorderLine struct {
	productID domain.ID
	quantity  int
}

func (e *ReorderEngine) Reorder(ctx context.Context, order domain.Order) (ReorderResult, error) {
	var result ReorderResult

	if len(order.Items) == 0 {
		full, err := e.orders.GetOrder(ctx, order.ID)
		if err != nil {
			return result, err
		}
		order = *full
	}
	if len(order.Items) == 0 {
		return result, ErrNothingToReorder
	}

	if err := e.catalog.EnsureLoaded(ctx); err != nil {
		return result, err
	}

	if err := e.cart.Clear(ctx); err != nil {
		log.Printf("[portal-svc] reorder %s: clear cart: %v", order.ID, err)
	}

	lines := make([]reorderLine, 0, len(order.Items))
	for _, item := range order.Items {
		product, ok := e.catalog.Lookup(item.ProductID)
		if !ok || !product.IsAvailable {
			result.Skipped++
			continue
		}
		lines = append(lines, reorderLine{productID: product.ID, quantity: ReorderQuantity(item.Quantity)})
	}

	errs := make([]error, len(lines))
	var wg sync.WaitGroup
	for i, line := range lines {
		wg.Add(1)
		go func(i int, line reorderLine) {
			defer wg.Done()
			errs[i] = e.cart.AddItem(ctx, line.productID, line.quantity)
		}(i, line)
	}
	wg.Wait()

	authExpired := false
	for i, err := range errs {
		if err != nil {
			result.Failed++
			authExpired = authExpired || errors.Is(err, client.ErrAuthExpired)
			log.Printf("[portal-svc] reorder %s: add product %s: %v", order.ID, lines[i].productID, err)
			continue
		}
		result.Added++
	}

	log.Printf("[portal-svc] reorder %s: added=%d failed=%d skipped=%d", order.ID, result.Added, result.Failed, result.Skipped)

	if result.Added == 0 {
		if authExpired {
			return result, client.ErrAuthExpired
		}
		return result, ErrReorderFailed
	}

	e.nav.Navigate(ctx, CartPath, ReorderRedirectDelay)
	e.activity.Record(ctx, domain.ActivityReorder, "reorder", order.ID.String(), order.TotalAmount)
	return result, nil
}

// ReorderQuantity floors historical quantities and never goes below one.
func ReorderQuantity(q decimal.Decimal) int {
	n := q.Floor().IntPart()
	if n < 1 {
		return 1
	}
	return int(n)
}
