package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// DecodeFrameEvent parses a published payload, rejecting anything that is not
// a frame_events message.
func DecodeFrameEvent(payload string) (FrameEvent, error) {
	var ev FrameEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return FrameEvent{}, fmt.Errorf("invalid event payload: %w", err)
	}
	if ev.Type != frameEventsType {
		return FrameEvent{}, fmt.Errorf("unknown event type: %q", ev.Type)
	}
	return ev, nil
}

// Subscribe delivers frame events published on channel to handle until ctx
// is done. sessionID filters to one table when non-empty.
func Subscribe(ctx context.Context, rdb *redis.Client, channel, sessionID string, handle func(FrameEvent)) error {
	pubsub := rdb.Subscribe(ctx, channel)
	defer pubsub.Close()

	// Wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}
	log.Printf("[TELEMETRY] subscribed to %s", channel)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			ev, err := DecodeFrameEvent(msg.Payload)
			if err != nil {
				log.Printf("[TELEMETRY] %v", err)
				continue
			}
			if sessionID != "" && ev.SessionID != sessionID {
				continue
			}
			handle(ev)
		}
	}
}
