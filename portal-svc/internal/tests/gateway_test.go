package tests

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"hotel-portal/portal-svc/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateway_ProxyActivityPinsHotel(t *testing.T) {
	activitySvc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activity/summary", r.URL.Path)
		assert.Equal(t, "Grand Plaza", r.URL.Query().Get("hotel"))
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"counts": {}}`))
	}))
	defer activitySvc.Close()

	gw := gateway.NewGateway(gateway.Config{ActivitySvcURL: activitySvc.URL}, activitySvc.Client())

	req := httptest.NewRequest(http.MethodGet, "/api/portal/activity/summary?hotel=Other&date=2026-03-01", nil)
	w := httptest.NewRecorder()
	gw.ProxyActivity(w, req, "Grand Plaza")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"counts": {}}`, w.Body.String())
}

func TestGateway_ProxyUnreachable(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{ActivitySvcURL: "http://127.0.0.1:1"}, http.DefaultClient)

	w := httptest.NewRecorder()
	gw.ProxyActivity(w, httptest.NewRequest(http.MethodGet, "/api/portal/activity", nil), "Grand Plaza")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGateway_Frontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>portal</html>"), 0o644))

	frontend := gateway.NewGateway(gateway.Config{FrontendDir: dir}, http.DefaultClient).Frontend()

	tests := []struct {
		name     string
		path     string
		wantCode int
	}{
		{name: "client route", path: "/orders", wantCode: http.StatusOK},
		{name: "unknown api route", path: "/api/unknown", wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			frontend.ServeHTTP(w, httptest.NewRequest(http.MethodGet, testCase.path, nil))
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}
