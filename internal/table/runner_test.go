package table

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/playmatatu/billiards/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingSink struct {
	mu      sync.Mutex
	reports []game.FrameReport
}

func (s *recordingSink) Deliver(snap game.Snapshot, report game.FrameReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, report)
}

func (s *recordingSink) frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}

func startRunner(t *testing.T, r *Runner) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()
	return func() {
		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	}
}

func TestRunnerTicksAndDelivers(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(game.NewSimulation(), Options{TickRateHz: 500})
	sink := &recordingSink{}
	r.AddSink(sink)

	stop := startRunner(t, r)
	require.Eventually(t, func() bool { return sink.frames() >= 3 }, 2*time.Second, time.Millisecond)
	stop()

	assert.NotZero(t, r.Latest().Frame)
	assert.NotEmpty(t, r.SessionID())
}

func TestRunnerAppliesStrike(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(game.NewSimulation(), Options{TickRateHz: 500})
	stop := startRunner(t, r)

	require.NoError(t, r.Submit(Input{Kind: InputPointerMove, X: game.CueRackX + 100, Y: game.CueRackY}))
	require.NoError(t, r.Submit(Input{Kind: InputPointerDown}))
	require.Eventually(t, func() bool { return r.Latest().Stick.Power > 0.01 }, 2*time.Second, time.Millisecond)
	require.NoError(t, r.Submit(Input{Kind: InputPointerUp, X: game.CueRackX + 100, Y: game.CueRackY}))

	require.Eventually(t, func() bool {
		snap := r.Latest()
		return snap.Moving && !snap.Stick.Charging
	}, 2*time.Second, time.Millisecond)

	require.NoError(t, r.Submit(Input{Kind: InputRack}))
	require.Eventually(t, func() bool { return !r.Latest().Moving }, 2*time.Second, time.Millisecond)
	stop()
}

func TestSubmitBackPressure(t *testing.T) {
	r := NewRunner(game.NewSimulation(), Options{InputQueueSize: 1})

	require.NoError(t, r.Submit(Input{Kind: InputPointerDown}))
	assert.ErrorIs(t, r.Submit(Input{Kind: InputPointerDown}), ErrInputQueueFull)
}

func TestSubmitAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(game.NewSimulation(), Options{})
	stop := startRunner(t, r)
	stop()

	assert.ErrorIs(t, r.Submit(Input{Kind: InputRack}), ErrStopped)
}

func TestTickClampsLongFrames(t *testing.T) {
	r := NewRunner(game.NewSimulation(), Options{MaxFrameMillis: 50})
	sink := &recordingSink{}
	r.AddSink(sink)

	r.tick(5000)
	r.tick(10)

	require.Equal(t, 2, sink.frames())
	assert.Equal(t, 50.0, sink.reports[0].Elapsed)
	assert.Equal(t, 10.0, sink.reports[1].Elapsed)
}

func TestDegenerateStrikeKeepsTableFinite(t *testing.T) {
	sim := game.NewSimulation()
	r := NewRunner(sim, Options{})

	r.apply(Input{Kind: InputPointerDown})
	r.tick(100)
	r.apply(Input{Kind: InputPointerUp, X: game.CueRackX, Y: game.CueRackY})
	r.tick(16)

	assert.True(t, sim.CueBall().Velocity.IsZero())
	assert.False(t, r.Latest().Stick.Charging)
}
