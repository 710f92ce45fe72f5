package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-portal/portal-svc/internal/client"
	"hotel-portal/portal-svc/internal/domain"
	"hotel-portal/portal-svc/internal/mocks"
	"hotel-portal/portal-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var minimumOrder = decimal.NewFromInt(service.DefaultMinimumOrder)

func TestOrderFlow_ReviewValidation(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		lines   []domain.CartLine
		wantErr error
	}{
		{name: "empty cart", amount: "0", wantErr: service.ErrCartEmpty},
		{name: "below minimum", amount: "150", lines: []domain.CartLine{{ProductID: "p1", Quantity: 3}}, wantErr: service.ErrBelowMinimum},
		{name: "exactly minimum", amount: "200", lines: []domain.CartLine{{ProductID: "p1", Quantity: 5}}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			backend := mocks.NewBackend(t)
			cart := cartWithTotal(t, backend, testCase.amount, testCase.lines...)
			flow := service.NewOrderFlow(backend, cart, mocks.NewNavigator(t), nil, minimumOrder)

			err := flow.Review()

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Equal(t, service.StateIdle, flow.State())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, service.StateReviewing, flow.State())
			}
			backend.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderFlow_BelowMinimumMessage(t *testing.T) {
	backend := mocks.NewBackend(t)
	cart := cartWithTotal(t, backend, "150", domain.CartLine{ProductID: "p1", Quantity: 3})
	flow := service.NewOrderFlow(backend, cart, mocks.NewNavigator(t), nil, minimumOrder)

	err := flow.Review()

	var validation *service.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Contains(t, validation.Message, "200.00")
}

func TestOrderFlow_SubmitRequiresReview(t *testing.T) {
	backend := mocks.NewBackend(t)
	cart := cartWithTotal(t, backend, "250", domain.CartLine{ProductID: "p1", Quantity: 6})
	flow := service.NewOrderFlow(backend, cart, mocks.NewNavigator(t), nil, minimumOrder)

	_, err := flow.Submit(context.Background(), "")

	assert.ErrorIs(t, err, service.ErrNotReviewing)
	backend.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestOrderFlow_SubmitPlacesOrder(t *testing.T) {
	backend := mocks.NewBackend(t)
	cart := cartWithTotal(t, backend, "250", domain.CartLine{ProductID: "p1", Quantity: 6})

	backend.On("PlaceOrder", mock.Anything, mock.MatchedBy(func(req domain.OrderRequest) bool {
		return req.DeliveryDate == "2026-03-11" &&
			req.SpecialInstructions == "back gate" &&
			len(req.Items) == 1 && req.Items[0].Quantity == 6
	})).Return(&domain.PlacedOrder{OrderID: "91"}, nil)
	backend.On("ClearCart", mock.Anything).Return(errors.New("clear failed"))

	nav := mocks.NewNavigator(t)
	nav.On("Navigate", mock.Anything, service.OrdersPath, time.Duration(0)).Return().Once()

	publisher := mocks.NewActivityPublisher(t)
	publisher.On("PublishActivity", mock.Anything, mock.MatchedBy(func(e domain.ActivityEvent) bool {
		return e.Type == domain.ActivityOrderPlaced && e.Reference == "91" && e.HotelName == "Grand Plaza"
	})).Return(nil)

	flow := service.NewOrderFlow(backend, cart, nav, service.NewActivity(publisher, "Grand Plaza"), minimumOrder)
	flow.SetClock(func() time.Time { return time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC) })

	require.NoError(t, flow.Review())
	placed, err := flow.Submit(context.Background(), "back gate")

	require.NoError(t, err)
	assert.Equal(t, domain.ID("91"), placed.OrderID)
	assert.Equal(t, service.StateIdle, flow.State())
	assert.NoError(t, flow.LastError())
}

func TestOrderFlow_SubmitFailureStaysInReview(t *testing.T) {
	backend := mocks.NewBackend(t)
	cart := cartWithTotal(t, backend, "250", domain.CartLine{ProductID: "p1", Quantity: 6})
	backend.On("PlaceOrder", mock.Anything, mock.Anything).
		Return(nil, &client.APIError{Status: 400, Message: "Delivery slot full"})

	flow := service.NewOrderFlow(backend, cart, mocks.NewNavigator(t), nil, minimumOrder)
	require.NoError(t, flow.Review())

	_, err := flow.Submit(context.Background(), "")

	assert.EqualError(t, err, "Delivery slot full")
	assert.Equal(t, service.StateReviewing, flow.State())
	assert.EqualError(t, flow.LastError(), "Delivery slot full")
	assert.Len(t, cart.Lines(), 1)
	backend.AssertNotCalled(t, "ClearCart", mock.Anything)
}

func TestOrderFlow_CancelReview(t *testing.T) {
	backend := mocks.NewBackend(t)
	cart := cartWithTotal(t, backend, "250", domain.CartLine{ProductID: "p1", Quantity: 6})
	flow := service.NewOrderFlow(backend, cart, mocks.NewNavigator(t), nil, minimumOrder)

	require.NoError(t, flow.Review())
	flow.Cancel()

	assert.Equal(t, service.StateIdle, flow.State())
}
