package telemetry

import (
	"testing"

	"github.com/playmatatu/billiards/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrameEvent(t *testing.T) {
	ev, err := DecodeFrameEvent(`{"type":"frame_events","session_id":"s1","frame":42,"contacts":[{"a":15,"b":3}],"pocketed":[3],"scratched":false,"remaining":14,"at":"2024-01-01T00:00:00Z"}`)
	require.NoError(t, err)
	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, uint64(42), ev.Frame)
	assert.Equal(t, []game.Contact{{A: 15, B: 3}}, ev.Contacts)
	assert.Equal(t, []int{3}, ev.Pocketed)
	assert.Equal(t, 14, ev.Remaining)
}

func TestDecodeFrameEventRejects(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "frame 42"},
		{"other type", `{"type":"player_idle_warning","game_id":"x"}`},
		{"missing type", `{"frame":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFrameEvent(tt.payload)
			assert.Error(t, err)
		})
	}
}
