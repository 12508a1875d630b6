package telemetry

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/playmatatu/billiards/internal/game"
	"github.com/redis/go-redis/v9"
)

// Publisher is the slice of *redis.Client the frame publisher needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

const frameEventsType = "frame_events"

// FrameEvent is the payload published for an eventful frame.
type FrameEvent struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Frame     uint64         `json:"frame"`
	Contacts  []game.Contact `json:"contacts"`
	Pocketed  []int          `json:"pocketed"`
	Scratched bool           `json:"scratched"`
	Remaining int            `json:"remaining"`
	At        time.Time      `json:"at"`
}

// FramePublisher forwards collision, pocket and scratch events to a redis
// channel. Deliver never blocks the frame driver: events queue in a buffer
// drained by Run, and overflow is dropped.
type FramePublisher struct {
	rdb       Publisher
	channel   string
	sessionID string
	events    chan FrameEvent
}

func NewFramePublisher(rdb Publisher, channel, sessionID string, buffer int) *FramePublisher {
	if buffer <= 0 {
		buffer = 64
	}
	return &FramePublisher{
		rdb:       rdb,
		channel:   channel,
		sessionID: sessionID,
		events:    make(chan FrameEvent, buffer),
	}
}

// Deliver queues the frame if anything worth reporting happened.
func (p *FramePublisher) Deliver(snap game.Snapshot, report game.FrameReport) {
	if !report.Eventful() {
		return
	}
	ev := FrameEvent{
		Type:      frameEventsType,
		SessionID: p.sessionID,
		Frame:     report.Frame,
		Contacts:  report.Contacts,
		Pocketed:  report.Pocketed,
		Scratched: report.Scratched,
		Remaining: snap.Remaining,
		At:        time.Now().UTC(),
	}
	select {
	case p.events <- ev:
	default:
		log.Printf("[TELEMETRY] buffer full, dropping frame %d", report.Frame)
	}
}

// Run publishes queued events until ctx is done.
func (p *FramePublisher) Run(ctx context.Context) {
	log.Printf("[TELEMETRY] publishing to %s", p.channel)
	for {
		select {
		case <-ctx.Done():
			log.Println("[TELEMETRY] publisher stopping")
			return
		case ev := <-p.events:
			b, err := json.Marshal(ev)
			if err != nil {
				log.Printf("[TELEMETRY] marshal frame %d: %v", ev.Frame, err)
				continue
			}
			if _, err := p.rdb.Publish(ctx, p.channel, b).Result(); err != nil {
				log.Printf("[TELEMETRY] publish frame %d failed: %v", ev.Frame, err)
			}
		}
	}
}
