package session

import (
	"context"
	"log"
	"sync"
	"time"
)

type Navigator interface {
	Navigate(ctx context.Context, path string, after time.Duration)
}

type Logouter interface {
	Logout(ctx context.Context, id string) error
}

// Guard applies the forced-logout policy for one session: every 401 from the backend ends
// the session and sends the user to the login page. Concurrent 401s for the same session
// end it once.
type Guard struct {
	sessionID string
	logouter  Logouter
	nav       Navigator
	once      sync.Once
}

func NewGuard(sessionID string, logouter Logouter, nav Navigator) *Guard {
	return &Guard{sessionID: sessionID, logouter: logouter, nav: nav}
}

func (g *Guard) ForceLogout(ctx context.Context) {
	g.once.Do(func() { g.forceLogout(ctx) })
}

func (g *Guard) forceLogout(ctx context.Context) {
	if err := g.logouter.Logout(context.WithoutCancel(ctx), g.sessionID); err != nil {
		log.Printf("[portal-svc] forced logout of session %s: %v", g.sessionID, err)
	}
	if g.nav != nil {
		g.nav.Navigate(ctx, LoginPath, 0)
	}
}
