package service

import (
	"sync"
	"time"

	"hotel-portal/portal-svc/internal/session"

	"github.com/shopspring/decimal"
)

type WorkspaceConfig struct {
	MinimumOrder   decimal.Decimal
	RecomputeDelay time.Duration
	PortalBaseURL  string
}

// BackendFactory binds the upstream client to a session. nav receives the login redirect
// when the backend rejects the session.
type BackendFactory func(sess *session.Session, nav Navigator) Backend

// Workspace is everything one logged-in session works with. It lives from login until
// logout, forced logout or the first request after the session expired.
type Workspace struct {
	Session  *session.Session
	Backend  Backend
	Catalog  *Catalog
	Cart     *CartStore
	Checkout *OrderFlow
	Reorder  *ReorderEngine
	History  *OrderHistory
	Billing  *BillingService
	Activity *Activity
}

func (w *Workspace) Close() {
	w.Cart.Close()
}

type Workspaces struct {
	factory   BackendFactory
	publisher ActivityPublisher
	qr        QRGenerator
	config    WorkspaceConfig

	mu   sync.Mutex
	byID map[string]*Workspace
}

func NewWorkspaces(factory BackendFactory, publisher ActivityPublisher, qr QRGenerator, config WorkspaceConfig) *Workspaces {
	return &Workspaces{
		factory:   factory,
		publisher: publisher,
		qr:        qr,
		config:    config,
		byID:      map[string]*Workspace{},
	}
}

// Open returns the session's workspace, creating it on first use.
func (w *Workspaces) Open(sess *session.Session) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ws, ok := w.byID[sess.ID]; ok {
		return ws
	}

	nav := RequestNavigator{}
	backend := w.factory(sess, nav)
	hotel := sess.Claims.DisplayName()
	activity := NewActivity(w.publisher, hotel)
	catalog := NewCatalog(backend)
	cart := NewCartStore(backend, catalog, w.config.RecomputeDelay)

	ws := &Workspace{
		Session:  sess,
		Backend:  backend,
		Catalog:  catalog,
		Cart:     cart,
		Checkout: NewOrderFlow(backend, cart, nav, activity, w.config.MinimumOrder),
		Reorder:  NewReorderEngine(backend, cart, catalog, nav, activity),
		History:  NewOrderHistory(backend, catalog),
		Billing:  NewBillingService(backend, catalog, NewInvoiceRenderer(w.qr, w.config.PortalBaseURL), activity, hotel),
		Activity: activity,
	}
	w.byID[sess.ID] = ws
	return ws
}

// Drop tears down a session's workspace. Late backend responses for it are discarded.
func (w *Workspaces) Drop(sessionID string) {
	w.mu.Lock()
	ws, ok := w.byID[sessionID]
	delete(w.byID, sessionID)
	w.mu.Unlock()
	if ok {
		ws.Close()
	}
}

func (w *Workspaces) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.byID)
}
