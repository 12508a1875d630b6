package table

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playmatatu/billiards/internal/game"
)

var (
	ErrInputQueueFull = errors.New("input queue full")
	ErrStopped        = errors.New("table runner stopped")
)

// InputKind names a pointer or table command.
type InputKind string

const (
	InputPointerMove InputKind = "pointer_move"
	InputPointerDown InputKind = "pointer_down"
	InputPointerUp   InputKind = "pointer_up"
	InputRack        InputKind = "rack"
)

// Input is one event from the presentation layer.
type Input struct {
	Kind InputKind
	X, Y float64
}

// Sink receives every frame after the update completes. Deliver runs on the
// driver goroutine and must not block.
type Sink interface {
	Deliver(snap game.Snapshot, report game.FrameReport)
}

// Options tunes the frame driver.
type Options struct {
	TickRateHz     int
	MaxFrameMillis int
	InputQueueSize int
}

// Runner is the frame driver: it owns one Simulation and is the only code
// that touches it. Input is applied between ticks, each tick runs a full
// update, and the finished frame is handed to the sinks.
type Runner struct {
	sim       *game.Simulation
	inputs    chan Input
	interval  time.Duration
	maxFrame  float64
	sessionID string
	done      chan struct{}
	stopOnce  sync.Once

	mu     sync.RWMutex
	latest game.Snapshot
	sinks  []Sink
}

func NewRunner(sim *game.Simulation, opts Options) *Runner {
	if opts.TickRateHz <= 0 {
		opts.TickRateHz = 60
	}
	if opts.MaxFrameMillis <= 0 {
		opts.MaxFrameMillis = 100
	}
	if opts.InputQueueSize <= 0 {
		opts.InputQueueSize = 64
	}
	return &Runner{
		sim:       sim,
		inputs:    make(chan Input, opts.InputQueueSize),
		interval:  time.Second / time.Duration(opts.TickRateHz),
		maxFrame:  float64(opts.MaxFrameMillis),
		sessionID: uuid.NewString(),
		done:      make(chan struct{}),
		latest:    sim.Snapshot(),
	}
}

// SessionID identifies this table for telemetry consumers.
func (r *Runner) SessionID() string {
	return r.sessionID
}

// Interval is the time between ticks.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// AddSink registers a frame consumer.
func (r *Runner) AddSink(s Sink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks = append(r.sinks, s)
}

// Submit queues an input for the next tick without blocking.
func (r *Runner) Submit(in Input) error {
	select {
	case <-r.done:
		return ErrStopped
	default:
	}
	select {
	case r.inputs <- in:
		return nil
	default:
		return ErrInputQueueFull
	}
}

// Latest returns the snapshot of the most recently completed frame.
func (r *Runner) Latest() game.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}

// Run drives the simulation until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	defer r.stopOnce.Do(func() { close(r.done) })

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Printf("[TABLE] session %s running at %v per frame", r.sessionID, r.interval)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Printf("[TABLE] session %s stopping", r.sessionID)
			return ctx.Err()
		case in := <-r.inputs:
			r.apply(in)
		case now := <-ticker.C:
			elapsed := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			r.tick(elapsed)
		}
	}
}

func (r *Runner) apply(in Input) {
	switch in.Kind {
	case InputPointerMove:
		r.sim.Aim(in.X, in.Y)
	case InputPointerDown:
		r.sim.BeginCharge()
	case InputPointerUp:
		r.sim.Aim(in.X, in.Y)
		if err := r.sim.ReleaseStrike(); err != nil {
			log.Printf("[TABLE] strike ignored: %v", err)
		}
	case InputRack:
		r.sim.Rack()
		log.Printf("[TABLE] session %s re-racked", r.sessionID)
	default:
		log.Printf("[TABLE] unknown input %q", in.Kind)
	}
}

func (r *Runner) tick(elapsed float64) {
	if elapsed > r.maxFrame {
		elapsed = r.maxFrame
	}
	report := r.sim.Update(elapsed)
	snap := r.sim.Snapshot()

	r.mu.Lock()
	r.latest = snap
	sinks := r.sinks
	r.mu.Unlock()

	for _, s := range sinks {
		s.Deliver(snap, report)
	}
}
