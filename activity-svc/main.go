package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	httpapi "hotel-portal/activity-svc/internal/api/http"
	"hotel-portal/activity-svc/internal/service"
	"hotel-portal/activity-svc/internal/storage"
	"hotel-portal/config"

	"github.com/shopspring/decimal"
)

func main() {
	config.LoadEnvFile()
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	store := storage.NewStore(db, rdb)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	reader := config.NewKafkaReader(config.GetEnv("ACTIVITY_TOPIC", "portal-activity"), "activity-svc")
	defer reader.Close()

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(service.NewActivityService(store))
	httpapi.StartServer(config.GetEnv("ACTIVITY_ADDR", ":8091"), httpapi.NewRouter(handler))
}
