package game

import "errors"

var (
	ErrNotCharging  = errors.New("stick is not charging")
	ErrAimOnCueBall = errors.New("aim point is on the cue ball")
)

// Stick is the cue: where it is aimed, how much power it has built up and
// whether it is currently being drawn back.
type Stick struct {
	Aim      Vec2    `json:"aim"`
	Power    float64 `json:"power"`
	Charging bool    `json:"charging"`
}

// SetAim moves the aim point to the pointer position.
func (s *Stick) SetAim(x, y float64) {
	s.Aim = NewVec2(x, y)
}

// BeginCharge starts drawing the stick back from zero power.
func (s *Stick) BeginCharge() {
	s.Power = 0
	s.Charging = true
}

// Charge accumulates power for elapsed milliseconds, up to MaxPower.
func (s *Stick) Charge(elapsed float64) {
	if !s.Charging {
		return
	}
	s.Power += ChargeRate * elapsed
	if s.Power > MaxPower {
		s.Power = MaxPower
	}
}

// Release strikes the cue ball away from the aim point with the accumulated
// power and returns the stick to idle. The power is spent either way; an aim
// point within MinAimDistance of the cue ball gives no direction, so the
// strike is dropped and ErrAimOnCueBall returned.
func (s *Stick) Release(cue *Ball) error {
	if !s.Charging {
		return ErrNotCharging
	}
	power := s.Power
	s.Charging = false
	s.Power = 0

	direction := cue.Position.Minus(s.Aim)
	if direction.Magnitude() < MinAimDistance {
		return ErrAimOnCueBall
	}
	cue.Velocity = direction.Normalize().Times(power)
	return nil
}
