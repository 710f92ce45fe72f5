package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"hotel-portal/config"
	httpapi "hotel-portal/portal-svc/internal/api/http"
	"hotel-portal/portal-svc/internal/client"
	"hotel-portal/portal-svc/internal/gateway"
	"hotel-portal/portal-svc/internal/service"
	"hotel-portal/portal-svc/internal/session"
	"hotel-portal/portal-svc/internal/storage"

	"github.com/shopspring/decimal"
)

func main() {
	config.LoadEnvFile()
	decimal.MarshalJSONWithoutQuotes = true

	upstreamURL := config.GetEnv("UPSTREAM_URL", "http://localhost:5000")
	activityURL := config.GetEnv("ACTIVITY_SVC_URL", "http://localhost:8091")
	addr := config.GetEnv("PORTAL_ADDR", ":8090")
	origins := strings.Split(config.GetEnv("CORS_ORIGINS", "http://localhost:3000"), ",")

	workspaceConfig := service.WorkspaceConfig{
		MinimumOrder:   decimal.NewFromInt(int64(config.GetEnvInt("MIN_ORDER_AMOUNT", service.DefaultMinimumOrder))),
		RecomputeDelay: time.Duration(config.GetEnvInt("CART_DEBOUNCE_MS", 500)) * time.Millisecond,
		PortalBaseURL:  config.GetEnv("PORTAL_BASE_URL", "http://localhost:8090"),
	}
	sessionTTL := time.Duration(config.GetEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(config.GetEnv("ACTIVITY_TOPIC", "portal-activity"))
	defer writer.Close()

	upstream := client.New(upstreamURL, &http.Client{Timeout: 15 * time.Second})
	sessions := session.NewManager(upstream, storage.NewRedisSessionStore(rdb, sessionTTL))

	factory := func(sess *session.Session, nav service.Navigator) service.Backend {
		return upstream.WithSession(sess, session.NewGuard(sess.ID, sessions, nav))
	}
	workspaces := service.NewWorkspaces(factory, storage.NewKafkaPublisher(writer), service.DefaultQRGenerator{}, workspaceConfig)
	sessions.OnLogout(workspaces.Drop)

	gw := gateway.NewGateway(gateway.Config{
		ActivitySvcURL: activityURL,
		FrontendDir:    config.GetEnv("FRONTEND_DIR", "./frontend"),
	}, &http.Client{Timeout: 10 * time.Second})

	handler := httpapi.NewHandler(sessions, workspaces, gw, gw.Frontend())
	router := httpapi.NewRouter(handler, origins)

	log.Printf("[portal-svc] upstream=%s activity=%s min_order=%s", upstreamURL, activityURL, workspaceConfig.MinimumOrder)
	httpapi.StartServer(addr, router)
}
