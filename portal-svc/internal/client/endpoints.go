package client

import (
	"context"
	"net/http"
	"net/url"

	"hotel-portal/portal-svc/internal/domain"

	"github.com/shopspring/decimal"
)

func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	return c.do(ctx, http.MethodPost, "/api/auth/password/change", change, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return getList[domain.Product](ctx, c, "/api/products", "products")
}

func (c *Client) GetCart(ctx context.Context) ([]domain.CartLine, error) {
	return getList[domain.CartLine](ctx, c, "/api/hotel/cart", "items")
}

func (c *Client) AddToCart(ctx context.Context, productID domain.ID, quantity int) error {
	body := domain.CartLine{ProductID: productID, Quantity: quantity}
	return c.do(ctx, http.MethodPost, "/api/hotel/cart", body, nil)
}

func (c *Client) UpdateCartItem(ctx context.Context, productID domain.ID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPut, "/api/hotel/cart/"+url.PathEscape(productID.String()), body, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, productID domain.ID) error {
	return c.do(ctx, http.MethodDelete, "/api/hotel/cart/"+url.PathEscape(productID.String()), nil, nil)
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/hotel/cart/clear", nil, nil)
}

func (c *Client) CalculateCart(ctx context.Context, lines []domain.CartLine) (domain.CartTotal, error) {
	var out struct {
		TotalAmount decimal.Decimal `json:"total_amount"`
		ItemCount   int             `json:"item_count"`
	}
	body := map[string][]domain.CartLine{"items": lines}
	if err := c.do(ctx, http.MethodPost, "/api/hotel/cart/calculate", body, &out); err != nil {
		return domain.CartTotal{}, err
	}
	return domain.CartTotal{TotalAmount: out.TotalAmount, ItemCount: out.ItemCount, Source: domain.TotalServer}, nil
}

func (c *Client) PlaceOrder(ctx context.Context, order domain.OrderRequest) (*domain.PlacedOrder, error) {
	var out domain.PlacedOrder
	if err := c.do(ctx, http.MethodPost, "/api/hotel/orders", order, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return getList[domain.Order](ctx, c, "/api/hotel/orders", "orders")
}

func (c *Client) GetOrder(ctx context.Context, id domain.ID) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/hotel/orders/"+url.PathEscape(id.String()), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelOrder(ctx context.Context, id domain.ID) error {
	return c.do(ctx, http.MethodDelete, "/api/hotel/orders/"+url.PathEscape(id.String()), nil, nil)
}

func (c *Client) ListBills(ctx context.Context) ([]domain.Bill, error) {
	return getList[domain.Bill](ctx, c, "/api/hotel/bills", "bills")
}

func (c *Client) GetProfile(ctx context.Context) (*domain.HotelProfile, error) {
	var out domain.HotelProfile
	if err := c.do(ctx, http.MethodGet, "/api/hotel/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, profile domain.HotelProfile) (*domain.HotelProfile, error) {
	var out domain.HotelProfile
	if err := c.do(ctx, http.MethodPut, "/api/hotel/profile", profile, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	return getList[domain.Notification](ctx, c, "/api/hotel/notifications", "notifications")
}

func (c *Client) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	return getList[domain.SupportTicket](ctx, c, "/api/hotel/support-tickets", "tickets")
}

func (c *Client) CreateTicket(ctx context.Context, ticket domain.NewTicket) (*domain.SupportTicket, error) {
	var out domain.SupportTicket
	if err := c.do(ctx, http.MethodPost, "/api/hotel/support-tickets", ticket, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReplyTicket(ctx context.Context, id domain.ID, message string) error {
	body := map[string]string{"message": message}
	return c.do(ctx, http.MethodPost, "/api/hotel/support-tickets/"+url.PathEscape(id.String())+"/reply", body, nil)
}
