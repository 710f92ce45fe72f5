package tests

import (
	"context"
	"testing"
	"time"

	"hotel-portal/portal-svc/internal/mocks"
	"hotel-portal/portal-svc/internal/service"
	"hotel-portal/portal-svc/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWorkspaces_OpenAndDrop(t *testing.T) {
	backend := mocks.NewBackend(t)
	var built int
	factory := func(*session.Session, service.Navigator) service.Backend {
		built++
		return backend
	}
	workspaces := service.NewWorkspaces(factory, nil, nil, service.WorkspaceConfig{MinimumOrder: minimumOrder})

	sess := &session.Session{ID: "s1", Claims: session.Claims{Username: "grand"}}
	first := workspaces.Open(sess)
	second := workspaces.Open(sess)

	assert.Same(t, first, second)
	assert.Equal(t, 1, built)
	assert.Equal(t, 1, workspaces.Len())

	workspaces.Drop("s1")
	workspaces.Drop("s1")
	assert.Equal(t, 0, workspaces.Len())
	assert.NotSame(t, first, workspaces.Open(sess))
	workspaces.Drop("s1")
}

func TestRedirectRecorder(t *testing.T) {
	var recorder service.RedirectRecorder
	assert.Nil(t, recorder.Take())

	recorder.Record("/orders", 0)
	recorder.Record(service.CartPath, service.ReorderRedirectDelay)

	next := recorder.Take()
	assert.Equal(t, &service.Redirect{Path: service.CartPath, AfterMS: 1500}, next)
	assert.Nil(t, recorder.Take())
}

func TestRequestNavigator_KeepsRedirectWithItsRequest(t *testing.T) {
	reorderCtx, reorderRedirects := service.WithRedirects(context.Background())
	totalCtx, totalRedirects := service.WithRedirects(context.Background())

	var nav service.RequestNavigator
	nav.Navigate(reorderCtx, service.CartPath, service.ReorderRedirectDelay)
	nav.Navigate(context.Background(), service.OrdersPath, 0)

	assert.Nil(t, totalRedirects.Take())
	assert.Nil(t, service.RedirectsFrom(context.Background()))
	assert.Same(t, totalRedirects, service.RedirectsFrom(totalCtx))
	assert.Equal(t, &service.Redirect{Path: service.CartPath, AfterMS: 1500}, reorderRedirects.Take())
}

func TestWorkspace_ForcedLogoutRedirectsToLogin(t *testing.T) {
	var guard *session.Guard
	logouter := mocks.NewLogouter(t)
	logouter.On("Logout", mock.Anything, "s1").Return(nil).Once()

	factory := func(sess *session.Session, nav service.Navigator) service.Backend {
		guard = session.NewGuard(sess.ID, logouter, nav)
		return mocks.NewBackend(t)
	}
	workspaces := service.NewWorkspaces(factory, nil, nil, service.WorkspaceConfig{RecomputeDelay: time.Millisecond})
	workspaces.Open(&session.Session{ID: "s1"})
	defer workspaces.Drop("s1")

	ctx, redirects := service.WithRedirects(context.Background())
	guard.ForceLogout(ctx)
	guard.ForceLogout(context.Background())

	assert.Equal(t, &service.Redirect{Path: session.LoginPath}, redirects.Take())
}
