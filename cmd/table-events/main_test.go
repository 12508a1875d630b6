package main

import (
	"testing"

	"github.com/playmatatu/billiards/internal/game"
	"github.com/playmatatu/billiards/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		ev   telemetry.FrameEvent
		want string
	}{
		{
			name: "contacts only",
			ev:   telemetry.FrameEvent{SessionID: "s1", Frame: 3, Contacts: []game.Contact{{A: 15, B: 2}}},
			want: "[s1] frame 3: 1 contacts [{15 2}]",
		},
		{
			name: "scratch with pocket and contact",
			ev: telemetry.FrameEvent{
				SessionID: "s1", Frame: 9, Scratched: true,
				Pocketed: []int{4}, Remaining: 14,
				Contacts: []game.Contact{{A: 1, B: 2}},
			},
			want: "[s1] frame 9: scratch pocketed [4], 14 left 1 contacts [{1 2}]",
		},
		{
			name: "scratch only",
			ev:   telemetry.FrameEvent{SessionID: "s2", Frame: 1, Scratched: true},
			want: "[s2] frame 1: scratch",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.ev))
		})
	}
}
