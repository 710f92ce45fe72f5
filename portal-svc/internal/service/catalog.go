package service

import (
	"context"
	"sync"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	UnknownProductName = "Unknown Product"
	UnknownProductUnit = "unit"
)

// Catalog holds the products fetched for the current workspace. It is read-only and
// refreshed by Load.
type Catalog struct {
	api CatalogAPI

	mu       sync.RWMutex
	products []domain.Product
	byID     map[domain.ID]domain.Product
	loaded   bool
}

func NewCatalog(api CatalogAPI) *Catalog {
	return &Catalog{api: api, byID: map[domain.ID]domain.Product{}}
}

func (c *Catalog) Load(ctx context.Context) error {
	products, err := c.api.ListProducts(ctx)
	if err != nil {
		return err
	}

	byID := make(map[domain.ID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	c.mu.Lock()
	c.products = products
	c.byID = byID
	c.loaded = true
	c.mu.Unlock()
	return nil
}

func (c *Catalog) EnsureLoaded(ctx context.Context) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}
	return c.Load(ctx)
}

func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Product(nil), c.products...)
}

func (c *Catalog) Lookup(id domain.ID) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Price(id domain.ID) (decimal.Decimal, bool) {
	p, ok := c.Lookup(id)
	if !ok {
		return decimal.Zero, false
	}
	return p.PricePerUnit, true
}

// Decorate joins cart lines with product data. Lines whose product is missing from the
// catalog are kept with placeholder values.
func (c *Catalog) Decorate(lines []domain.CartLine) []domain.CartItemView {
	views := make([]domain.CartItemView, 0, len(lines))
	for _, line := range lines {
		view := domain.CartItemView{
			ProductID:    line.ProductID,
			Name:         UnknownProductName,
			PricePerUnit: decimal.Zero,
			UnitType:     UnknownProductUnit,
			Quantity:     line.Quantity,
		}
		if p, ok := c.Lookup(line.ProductID); ok {
			view.Name = p.Name
			view.PricePerUnit = p.PricePerUnit
			view.UnitType = p.UnitType
			view.ImageURL = p.ImageURL
			view.Known = true
		}
		view.LineTotal = view.PricePerUnit.Mul(decimal.NewFromInt(int64(line.Quantity)))
		views = append(views, view)
	}
	return views
}

var _ PriceLookup = (*Catalog)(nil)
