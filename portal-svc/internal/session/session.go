package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const LoginPath = "/login"

var (
	ErrNotFound     = errors.New("session not found")
	ErrEmptyToken   = errors.New("login returned no token")
	ErrInvalidToken = errors.New("token is not a JWT")
)

// Claims are read from the token payload without verifying the signature. They are for
// display only; the backend makes every authorization decision.
type Claims struct {
	Subject   string `json:"sub"`
	Role      string `json:"role"`
	HotelName string `json:"hotel_name"`
	Username  string `json:"username"`
}

func (c Claims) DisplayName() string {
	if c.HotelName != "" {
		return c.HotelName
	}
	return c.Username
}

func DecodeClaims(token string) (Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return Claims{}, fmt.Errorf("decode token payload: %w", err)
	}
	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, fmt.Errorf("parse token claims: %w", err)
	}
	return claims, nil
}

type Session struct {
	ID          string    `json:"id"`
	BearerToken string    `json:"token"`
	Claims      Claims    `json:"claims"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Session) Token() string {
	return s.BearerToken
}

type Store interface {
	Save(ctx context.Context, sess *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Manager creates sessions on login and tears them down on logout.
type Manager struct {
	auth  Authenticator
	store Store

	mu       sync.RWMutex
	onLogout []func(sessionID string)
}

func NewManager(auth Authenticator, store Store) *Manager {
	return &Manager{auth: auth, store: store}
}

// OnLogout registers a hook run after a session is removed.
func (m *Manager) OnLogout(fn func(sessionID string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onLogout = append(m.onLogout, fn)
}

func (m *Manager) Login(ctx context.Context, username, password string) (*Session, error) {
	token, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrEmptyToken
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		// Display claims are optional, the token itself is still usable.
		log.Printf("[portal-svc] login for %q: %v", username, err)
		claims = Claims{Username: username}
	}

	sess := &Session{
		ID:          uuid.NewString(),
		BearerToken: token,
		Claims:      claims,
		CreatedAt:   time.Now().UTC(),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (m *Manager) Resolve(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	return m.store.Get(ctx, id)
}

func (m *Manager) Logout(ctx context.Context, id string) error {
	err := m.store.Delete(ctx, id)

	m.mu.RLock()
	hooks := append([]func(string){}, m.onLogout...)
	m.mu.RUnlock()
	for _, hook := range hooks {
		hook(id)
	}

	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
