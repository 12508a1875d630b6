package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/playmatatu/billiards/internal/api"
	"github.com/playmatatu/billiards/internal/config"
	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/middleware"
	"github.com/playmatatu/billiards/internal/redis"
	"github.com/playmatatu/billiards/internal/table"
	"github.com/playmatatu/billiards/internal/telemetry"
	"github.com/playmatatu/billiards/internal/ws"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := table.NewRunner(game.NewSimulation(), table.Options{
		TickRateHz:     cfg.TickRateHz,
		MaxFrameMillis: cfg.MaxFrameMillis,
		InputQueueSize: cfg.InputQueueSize,
	})

	hub := ws.NewHub(runner, func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.OriginAllowed(cfg, origin)
	})
	runner.AddSink(hub)

	// Telemetry is optional: without Redis the table runs standalone
	rdb, err := redis.Connect(ctx, cfg.RedisURL, 5*time.Second)
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		log.Printf("[TELEMETRY] REDIS_URL not set - frame events will not be published")
	case err != nil:
		log.Printf("[TELEMETRY] Redis unavailable, continuing without telemetry: %v", err)
	default:
		defer rdb.Close()
		publisher := telemetry.NewFramePublisher(rdb, cfg.TelemetryChannel, runner.SessionID(), cfg.InputQueueSize)
		runner.AddSink(publisher)
		go publisher.Run(ctx)
		log.Printf("[TELEMETRY] publishing frame events to %s", cfg.TelemetryChannel)
	}

	go func() {
		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("[TABLE] runner stopped: %v", err)
		}
	}()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api.SetupRoutes(router, runner, hub, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	log.Printf("Starting billiards table server on port %s (session %s)", cfg.Port, runner.SessionID())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start server: %v", err)
	}
}
