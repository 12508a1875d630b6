// Command table-events prints the collision, pocket and scratch events a
// table server publishes to Redis.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/playmatatu/billiards/internal/config"
	"github.com/playmatatu/billiards/internal/redis"
	"github.com/playmatatu/billiards/internal/telemetry"
)

func main() {
	session := flag.String("session", "", "only show events for this table session")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.Connect(ctx, cfg.RedisURL, 5*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	err = telemetry.Subscribe(ctx, rdb, cfg.TelemetryChannel, *session, func(ev telemetry.FrameEvent) {
		log.Print(describe(ev))
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Subscription ended: %v", err)
	}
}

// describe renders every part of a frame event on one line.
func describe(ev telemetry.FrameEvent) string {
	parts := []string{fmt.Sprintf("[%s] frame %d:", ev.SessionID, ev.Frame)}
	if ev.Scratched {
		parts = append(parts, "scratch")
	}
	if len(ev.Pocketed) > 0 {
		parts = append(parts, fmt.Sprintf("pocketed %v, %d left", ev.Pocketed, ev.Remaining))
	}
	if len(ev.Contacts) > 0 {
		parts = append(parts, fmt.Sprintf("%d contacts %v", len(ev.Contacts), ev.Contacts))
	}
	return strings.Join(parts, " ")
}
