package tests

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-portal/portal-svc/internal/mocks"
	"hotel-portal/portal-svc/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeToken(payload string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"HS256"}`)) + "." + enc.EncodeToString([]byte(payload)) + ".sig"
}

func TestDecodeClaims(t *testing.T) {
	claims, err := session.DecodeClaims(makeToken(`{"sub":"7","role":"hotel","hotel_name":"Grand Plaza","username":"grand"}`))

	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "Grand Plaza", claims.DisplayName())

	_, err = session.DecodeClaims("not-a-jwt")
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestClaims_DisplayNameFallsBackToUsername(t *testing.T) {
	assert.Equal(t, "grand", session.Claims{Username: "grand"}.DisplayName())
}

func TestManager_Login(t *testing.T) {
	token := makeToken(`{"hotel_name":"Grand Plaza"}`)

	auth := mocks.NewAuthenticator(t)
	auth.On("Login", mock.Anything, "grand", "secret").Return(token, nil)
	store := mocks.NewStore(t)
	store.On("Save", mock.Anything, mock.MatchedBy(func(s *session.Session) bool {
		return s.ID != "" && s.Token() == token
	})).Return(nil)

	sess, err := session.NewManager(auth, store).Login(context.Background(), "grand", "secret")

	require.NoError(t, err)
	assert.Equal(t, "Grand Plaza", sess.Claims.HotelName)
}

func TestManager_LoginOpaqueToken(t *testing.T) {
	auth := mocks.NewAuthenticator(t)
	auth.On("Login", mock.Anything, "grand", "secret").Return("opaque", nil)
	store := mocks.NewStore(t)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	sess, err := session.NewManager(auth, store).Login(context.Background(), "grand", "secret")

	require.NoError(t, err)
	assert.Equal(t, "grand", sess.Claims.DisplayName())
}

func TestManager_LoginEmptyToken(t *testing.T) {
	auth := mocks.NewAuthenticator(t)
	auth.On("Login", mock.Anything, "grand", "secret").Return("", nil)
	store := mocks.NewStore(t)

	_, err := session.NewManager(auth, store).Login(context.Background(), "grand", "secret")

	assert.ErrorIs(t, err, session.ErrEmptyToken)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestManager_LogoutRunsHooks(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("Delete", mock.Anything, "s1").Return(errors.New("redis down"))

	manager := session.NewManager(mocks.NewAuthenticator(t), store)
	var dropped []string
	manager.OnLogout(func(id string) { dropped = append(dropped, id) })

	err := manager.Logout(context.Background(), "s1")

	assert.Error(t, err)
	assert.Equal(t, []string{"s1"}, dropped)
}

func TestManager_ResolveEmptyID(t *testing.T) {
	_, err := session.NewManager(mocks.NewAuthenticator(t), mocks.NewStore(t)).Resolve(context.Background(), "")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestGuard_ConcurrentUnauthorizedLogsOutOnce(t *testing.T) {
	logouter := mocks.NewLogouter(t)
	logouter.On("Logout", mock.Anything, "s1").Return(nil).Once()
	nav := mocks.NewNavigator(t)
	nav.On("Navigate", mock.Anything, session.LoginPath, time.Duration(0)).Return().Once()

	guard := session.NewGuard("s1", logouter, nav)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guard.ForceLogout(context.Background())
		}()
	}
	wg.Wait()

	logouter.AssertNumberOfCalls(t, "Logout", 1)
	nav.AssertNumberOfCalls(t, "Navigate", 1)
}
