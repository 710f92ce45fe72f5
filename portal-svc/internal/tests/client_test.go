package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-portal/portal-svc/internal/client"
	"hotel-portal/portal-svc/internal/domain"
	"hotel-portal/portal-svc/internal/mocks"
	"hotel-portal/portal-svc/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Tomato", "price_per_unit": 40, "unit_type": "kg", "is_available": true}]`))
	}))
	defer server.Close()

	sess := &session.Session{ID: "s1", BearerToken: "tok-123"}
	c := client.New(server.URL, server.Client()).WithSession(sess, nil)

	products, err := c.ListProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, products, 1)
	assert.Equal(t, domain.ID("1"), products[0].ID)
	assert.Equal(t, "40", products[0].PricePerUnit.String())
}

func TestClient_DecodesWrappedLists(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCount int
	}{
		{name: "raw array", body: `[{"product_id": "p1", "quantity": 2}]`, wantCount: 1},
		{name: "wrapped", body: `{"items": [{"product_id": "p1", "quantity": 2}, {"product_id": 7, "quantity": 1}]}`, wantCount: 2},
		{name: "wrapped null", body: `{"items": null}`, wantCount: 0},
		{name: "missing key", body: `{"total": 0}`, wantCount: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/hotel/cart", r.URL.Path)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			lines, err := client.New(server.URL, server.Client()).GetCart(context.Background())

			require.NoError(t, err)
			assert.Len(t, lines, testCase.wantCount)
		})
	}
}

func TestClient_UnauthorizedForcesLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	auth := mocks.NewAuthHandler(t)
	auth.On("ForceLogout", mock.Anything).Return().Once()

	c := client.New(server.URL, server.Client()).WithSession(&session.Session{BearerToken: "expired"}, auth)
	err := c.AddToCart(context.Background(), "p1", 1)

	assert.ErrorIs(t, err, client.ErrAuthExpired)
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "message field", status: http.StatusBadRequest, body: `{"message": "Product unavailable"}`, wantMessage: "Product unavailable"},
		{name: "error field", status: http.StatusConflict, body: `{"error": "Order already cancelled"}`, wantMessage: "Order already cancelled"},
		{name: "no body", status: http.StatusInternalServerError, body: ``, wantMessage: "request failed with status 500"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			err := client.New(server.URL, server.Client()).CancelOrder(context.Background(), "42")

			var apiErr *client.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, testCase.status, apiErr.Status)
			assert.Equal(t, testCase.wantMessage, apiErr.Error())
		})
	}
}

func TestClient_PlaceOrderSendsPayload(t *testing.T) {
	var got domain.OrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/hotel/orders", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"order_id": 91}`))
	}))
	defer server.Close()

	placed, err := client.New(server.URL, server.Client()).PlaceOrder(context.Background(), domain.OrderRequest{
		DeliveryDate: "2026-03-11",
		Items:        []domain.CartLine{{ProductID: "p1", Quantity: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ID("91"), placed.OrderID)
	assert.Equal(t, "2026-03-11", got.DeliveryDate)
	assert.Equal(t, []domain.CartLine{{ProductID: "p1", Quantity: 3}}, got.Items)
}

func TestClient_TransportError(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	httpClient.On("Do", mock.AnythingOfType("*http.Request")).Return(nil, errors.New("connection refused"))

	_, err := client.New("http://upstream", httpClient).ListOrders(context.Background())

	assert.ErrorContains(t, err, "connection refused")
	assert.False(t, errors.Is(err, client.ErrAuthExpired))
}
