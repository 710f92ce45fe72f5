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
	DefaultRecomputeDelay = 500 * time.Millisecond
	recomputeTimeout      = 10 * time.Second
)

// CartStore is the workspace's copy of the backend cart. Local lines change only after the
// backend accepted the mutation; the backend's answer always wins over local state.
type CartStore struct {
	api       CartAPI
	catalog   *Catalog
	recompute *Coalescer

	mu     sync.Mutex
	lines  []domain.CartLine
	total  domain.CartTotal
	gen    uint64
	closed bool
}

func NewCartStore(api CartAPI, catalog *Catalog, delay time.Duration) *CartStore {
	if delay <= 0 {
		delay = DefaultRecomputeDelay
	}
	s := &CartStore{
		api:     api,
		catalog: catalog,
		total:   domain.CartTotal{TotalAmount: decimal.Zero, Source: domain.TotalServer},
	}
	s.recompute = NewCoalescer(delay, s.recomputeTotal)
	return s
}

// Load replaces the local lines with the backend cart. On failure the cart is left empty.
func (s *CartStore) Load(ctx context.Context) error {
	lines, err := s.api.GetCart(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	if err != nil {
		s.lines = nil
		s.gen++
		s.total = domain.CartTotal{TotalAmount: decimal.Zero, Source: domain.TotalServer}
		return err
	}

	s.lines = s.lines[:0]
	for _, line := range lines {
		if line.Quantity > 0 {
			s.mergeLocked(line.ProductID, line.Quantity)
		}
	}
	s.scheduleLocked()
	return nil
}

func (s *CartStore) AddItem(ctx context.Context, productID domain.ID, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if err := s.api.AddToCart(ctx, productID, quantity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.mergeLocked(productID, quantity)
	s.scheduleLocked()
	return nil
}

func (s *CartStore) UpdateQuantity(ctx context.Context, productID domain.ID, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, productID)
	}
	if err := s.api.UpdateCartItem(ctx, productID, quantity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			s.scheduleLocked()
			return nil
		}
	}
	s.lines = append(s.lines, domain.CartLine{ProductID: productID, Quantity: quantity})
	s.scheduleLocked()
	return nil
}

func (s *CartStore) RemoveItem(ctx context.Context, productID domain.ID) error {
	if err := s.api.RemoveCartItem(ctx, productID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.scheduleLocked()
	return nil
}

func (s *CartStore) Clear(ctx context.Context) error {
	if err := s.api.ClearCart(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.lines = nil
	s.scheduleLocked()
	return nil
}

func (s *CartStore) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartLine(nil), s.lines...)
}

func (s *CartStore) Items() []domain.CartItemView {
	return s.catalog.Decorate(s.Lines())
}

func (s *CartStore) Total() domain.CartTotal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Close discards any response that arrives after the workspace was torn down.
func (s *CartStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.recompute.Stop()
}

func (s *CartStore) mergeLocked(productID domain.ID, quantity int) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{ProductID: productID, Quantity: quantity})
}

// scheduleLocked bumps the cart generation; a recompute started for an older generation
// drops its result.
func (s *CartStore) scheduleLocked() {
	s.gen++
	s.total.Pending = true
	s.recompute.Trigger()
}

func (s *CartStore) recomputeTotal() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	lines := append([]domain.CartLine(nil), s.lines...)
	gen := s.gen
	s.mu.Unlock()

	var total domain.CartTotal
	if len(lines) == 0 {
		total = domain.CartTotal{TotalAmount: decimal.Zero, Source: domain.TotalServer}
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), recomputeTimeout)
		calculated, err := s.api.CalculateCart(ctx, lines)
		cancel()
		if err != nil {
			log.Printf("[portal-svc] cart calculate failed, using local estimate: %v", err)
			total = EstimateTotal(lines, s.catalog)
		} else {
			total = calculated
			total.Source = domain.TotalServer
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.gen {
		return
	}
	total.Pending = s.recompute.Pending()
	s.total = total
}

// EstimateTotal sums quantity times cached catalog price. Unknown products count as zero.
func EstimateTotal(lines []domain.CartLine, prices PriceLookup) domain.CartTotal {
	sum := decimal.Zero
	for _, line := range lines {
		price, _ := prices.Price(line.ProductID)
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return domain.CartTotal{TotalAmount: sum, ItemCount: len(lines), Source: domain.TotalEstimate}
}
