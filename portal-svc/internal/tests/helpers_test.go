package tests

import (
	"context"
	"testing"
	"time"

	"hotel-portal/portal-svc/internal/domain"
	"hotel-portal/portal-svc/internal/mocks"
	"hotel-portal/portal-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testDelay = 20 * time.Millisecond

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Tomato", PricePerUnit: decimal.RequireFromString("40"), UnitType: "kg", IsAvailable: true},
		{ID: "p2", Name: "Onion", PricePerUnit: decimal.RequireFromString("12.50"), UnitType: "kg", IsAvailable: true},
		{ID: "p4", Name: "Saffron", PricePerUnit: decimal.RequireFromString("900"), UnitType: "g", IsAvailable: false},
	}
}

func loadedCatalog(t *testing.T, backend *mocks.Backend) *service.Catalog {
	t.Helper()
	backend.On("ListProducts", mock.Anything).Return(testCatalog(), nil).Maybe()
	catalog := service.NewCatalog(backend)
	require.NoError(t, catalog.Load(context.Background()))
	return catalog
}

// settle waits until no recompute is scheduled.
func settle(t *testing.T, cart *service.CartStore) {
	t.Helper()
	require.Eventually(t, func() bool { return !cart.Total().Pending }, time.Second, 5*time.Millisecond)
}

// cartWithTotal fills a cart whose server-side total is amount.
func cartWithTotal(t *testing.T, backend *mocks.Backend, amount string, lines ...domain.CartLine) *service.CartStore {
	t.Helper()
	catalog := loadedCatalog(t, backend)
	backend.On("AddToCart", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	backend.On("CalculateCart", mock.Anything, mock.Anything).
		Return(domain.CartTotal{TotalAmount: decimal.RequireFromString(amount), ItemCount: len(lines)}, nil).Maybe()

	cart := service.NewCartStore(backend, catalog, testDelay)
	t.Cleanup(cart.Close)
	for _, line := range lines {
		require.NoError(t, cart.AddItem(context.Background(), line.ProductID, line.Quantity))
	}
	settle(t, cart)
	return cart
}
