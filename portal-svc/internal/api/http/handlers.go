package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"hotel-portal/portal-svc/internal/client"
	"hotel-portal/portal-svc/internal/domain"
	"hotel-portal/portal-svc/internal/service"
	"hotel-portal/portal-svc/internal/session"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

const (
	SessionCookie = "portal_session"
	SessionHeader = "X-Session-ID"
)

type SessionManager interface {
	Login(ctx context.Context, username, password string) (*session.Session, error)
	Resolve(ctx context.Context, id string) (*session.Session, error)
	Logout(ctx context.Context, id string) error
}

type WorkspaceRegistry interface {
	Open(sess *session.Session) *service.Workspace
	Drop(sessionID string)
}

type ActivityProxy interface {
	ProxyActivity(w http.ResponseWriter, r *http.Request, hotel string)
}

type Handler struct {
	Sessions   SessionManager
	Workspaces WorkspaceRegistry
	Activity   ActivityProxy
	Frontend   http.Handler
}

func NewHandler(sessions SessionManager, workspaces WorkspaceRegistry, activity ActivityProxy, frontend http.Handler) *Handler {
	return &Handler{
		Sessions:   sessions,
		Workspaces: workspaces,
		Activity:   activity,
		Frontend:   frontend,
	}
}

type workspaceHandler func(w http.ResponseWriter, r *http.Request, ws *service.Workspace)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	api := r.PathPrefix("/api/portal").Subrouter()
	api.HandleFunc("/login", h.login).Methods("POST")
	api.HandleFunc("/logout", h.withSession(h.logout)).Methods("POST")
	api.HandleFunc("/me", h.withSession(h.me)).Methods("GET")

	api.HandleFunc("/products", h.withSession(h.getProducts)).Methods("GET")

	api.HandleFunc("/cart", h.withSession(h.getCart)).Methods("GET")
	api.HandleFunc("/cart", h.withSession(h.addToCart)).Methods("POST")
	api.HandleFunc("/cart", h.withSession(h.clearCart)).Methods("DELETE")
	api.HandleFunc("/cart/total", h.withSession(h.getCartTotal)).Methods("GET")
	api.HandleFunc("/cart/{productId}", h.withSession(h.updateCartItem)).Methods("PUT")
	api.HandleFunc("/cart/{productId}", h.withSession(h.removeCartItem)).Methods("DELETE")

	api.HandleFunc("/checkout", h.withSession(h.getCheckout)).Methods("GET")
	api.HandleFunc("/checkout", h.withSession(h.submitOrder)).Methods("POST")
	api.HandleFunc("/checkout/review", h.withSession(h.reviewOrder)).Methods("POST")
	api.HandleFunc("/checkout/review", h.withSession(h.cancelReview)).Methods("DELETE")

	api.HandleFunc("/orders", h.withSession(h.getOrders)).Methods("GET")
	api.HandleFunc("/orders/{id}", h.withSession(h.getOrder)).Methods("GET")
	api.HandleFunc("/orders/{id}", h.withSession(h.cancelOrder)).Methods("DELETE")
	api.HandleFunc("/orders/{id}/reorder", h.withSession(h.reorder)).Methods("POST")

	api.HandleFunc("/bills", h.withSession(h.getBills)).Methods("GET")
	api.HandleFunc("/bills/{id}/invoice", h.withSession(h.getInvoice)).Methods("GET")

	api.HandleFunc("/profile", h.withSession(h.getProfile)).Methods("GET")
	api.HandleFunc("/profile", h.withSession(h.updateProfile)).Methods("PUT")
	api.HandleFunc("/password", h.withSession(h.changePassword)).Methods("POST")
	api.HandleFunc("/notifications", h.withSession(h.getNotifications)).Methods("GET")

	api.HandleFunc("/tickets", h.withSession(h.getTickets)).Methods("GET")
	api.HandleFunc("/tickets", h.withSession(h.createTicket)).Methods("POST")
	api.HandleFunc("/tickets/{id}/reply", h.withSession(h.replyTicket)).Methods("POST")

	api.HandleFunc("/activity", h.withSession(h.getActivity)).Methods("GET")
	api.HandleFunc("/activity/summary", h.withSession(h.getActivity)).Methods("GET")

	if h.Frontend != nil {
		r.PathPrefix("/").Handler(h.Frontend)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "portal-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func sessionID(r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func (h *Handler) withSession(next workspaceHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := sessionID(r)
		sess, err := h.Sessions.Resolve(r.Context(), id)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				// Expired in the store without a logout; nothing else will release it.
				if id != "" {
					h.Workspaces.Drop(id)
				}
			} else {
				log.Printf("[portal-svc] resolve session: %v", err)
			}
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not logged in", Redirect: session.LoginPath})
			return
		}
		ctx, _ := service.WithRedirects(r.Context())
		next(w, r.WithContext(ctx), h.Workspaces.Open(sess))
	}
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decode(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	if body.Username == "" || body.Password == "" {
		badRequest(w, errors.New("username and password are required"))
		return
	}

	sess, err := h.Sessions.Login(r.Context(), body.Username, body.Password)
	if errors.Is(err, client.ErrAuthExpired) {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid username or password"})
		return
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id": sess.ID,
		"claims":     sess.Claims,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	if err := h.Sessions.Logout(r.Context(), ws.Session.ID); err != nil {
		log.Printf("[portal-svc] logout: %v", err)
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	writeJSON(w, http.StatusOK, map[string]string{"redirect": session.LoginPath})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	respond(w, r, http.StatusOK, map[string]any{
		"claims":       ws.Session.Claims,
		"display_name": ws.Session.Claims.DisplayName(),
	})
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	if err := ws.Catalog.Load(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, ws.Catalog.Products())
}

type cartResponse struct {
	Items []domain.CartItemView `json:"items"`
	Total domain.CartTotal      `json:"total"`
}

func cartState(ws *service.Workspace) cartResponse {
	return cartResponse{Items: ws.Cart.Items(), Total: ws.Cart.Total()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	if err := ws.Catalog.EnsureLoaded(r.Context()); err != nil {
		log.Printf("[portal-svc] cart: load catalog: %v", err)
	}
	if err := ws.Cart.Load(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, cartState(ws))
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	var body domain.CartLine
	if err := decode(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	if body.ProductID == "" {
		badRequest(w, errors.New("product_id is required"))
		return
	}
	if err := ws.Cart.AddItem(r.Context(), body.ProductID, body.Quantity); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, cartState(ws))
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decode(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	productID := domain.ID(mux.Vars(r)["productId"])
	if err := ws.Cart.UpdateQuantity(r.Context(), productID, body.Quantity); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, cartState(ws))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	productID := domain.ID(mux.Vars(r)["productId"])
	if err := ws.Cart.RemoveItem(r.Context(), productID); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, cartState(ws))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	if err := ws.Cart.Clear(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, cartState(ws))
}

func (h *Handler) getCartTotal(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	respond(w, r, http.StatusOK, ws.Cart.Total())
}

type checkoutResponse struct {
	State service.OrderState `json:"state"`
	Error string             `json:"error,omitempty"`
	Total domain.CartTotal   `json:"total"`
}

func checkoutState(ws *service.Workspace) checkoutResponse {
	resp := checkoutResponse{State: ws.Checkout.State(), Total: ws.Cart.Total()}
	if err := ws.Checkout.LastError(); err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func (h *Handler) getCheckout(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	respond(w, r, http.StatusOK, checkoutState(ws))
}

func (h *Handler) reviewOrder(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	if err := ws.Checkout.Review(); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, checkoutState(ws))
}

func (h *Handler) cancelReview(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	ws.Checkout.Cancel()
	respond(w, r, http.StatusOK, checkoutState(ws))
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	var body struct {
		SpecialInstructions string `json:"special_instructions"`
	}
	if r.ContentLength != 0 {
		if err := decode(r, &body); err != nil {
			badRequest(w, err)
			return
		}
	}
	placed, err := ws.Checkout.Submit(r.Context(), body.SpecialInstructions)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, placed)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	orders, err := ws.History.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	order, err := ws.History.Get(r.Context(), domain.ID(mux.Vars(r)["id"]))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	if err := ws.History.Cancel(r.Context(), domain.ID(mux.Vars(r)["id"])); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	result, err := ws.Reorder.Reorder(r.Context(), domain.Order{ID: domain.ID(mux.Vars(r)["id"])})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

func (h *Handler) getBills(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	bills, err := ws.Billing.ListBills(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, bills)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	doc, _, err := ws.Billing.Invoice(r.Context(), domain.ID(mux.Vars(r)["id"]))
	if err != nil {
		respondError(w, r, err)
		return
	}
	setRedirect(w, r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	// The print preview may have been closed already; nothing to report back.
	if _, err := w.Write(doc); err != nil {
		log.Printf("[portal-svc] write invoice: %v", err)
	}
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	profile, err := ws.Backend.GetProfile(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	var body domain.HotelProfile
	if err := decode(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	profile, err := ws.Backend.UpdateProfile(r.Context(), body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, profile)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	var body domain.PasswordChange
	if err := decode(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	if body.CurrentPassword == "" || body.NewPassword == "" {
		badRequest(w, errors.New("current_password and new_password are required"))
		return
	}
	if err := ws.Backend.ChangePassword(r.Context(), body); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "password changed"})
}

func (h *Handler) getNotifications(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	notifications, err := ws.Backend.ListNotifications(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	respond(w, r, http.StatusOK, notifications)
}

func (h *Handler) getTickets(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	tickets, err := ws.Backend.ListTickets(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if tickets == nil {
		tickets = []domain.SupportTicket{}
	}
	respond(w, r, http.StatusOK, tickets)
}

func (h *Handler) createTicket(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	var body domain.NewTicket
	if err := decode(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	if body.Subject == "" || body.Message == "" {
		badRequest(w, errors.New("subject and message are required"))
		return
	}
	ticket, err := ws.Backend.CreateTicket(r.Context(), body)
	if err != nil {
		respondError(w, r, err)
		return
	}
	ws.Activity.Record(r.Context(), domain.ActivityTicketOpened, body.Subject, ticket.ID.String(), decimal.Zero)
	respond(w, r, http.StatusCreated, ticket)
}

func (h *Handler) replyTicket(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	var body struct {
		Message string `json:"message"`
	}
	if err := decode(r, &body); err != nil {
		badRequest(w, err)
		return
	}
	if body.Message == "" {
		badRequest(w, errors.New("message is required"))
		return
	}
	if err := ws.Backend.ReplyTicket(r.Context(), domain.ID(mux.Vars(r)["id"]), body.Message); err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, map[string]string{"status": "reply sent"})
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request, ws *service.Workspace) {
	if h.Activity == nil {
		respond(w, r, http.StatusOK, []any{})
		return
	}
	h.Activity.ProxyActivity(w, r, ws.Session.Claims.DisplayName())
}
