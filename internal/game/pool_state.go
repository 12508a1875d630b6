package game

import "math"

// FrameReport describes what happened during one Update.
type FrameReport struct {
	Frame      uint64    `json:"frame"`
	Elapsed    float64   `json:"elapsed"`
	Candidates int       `json:"candidates"`
	Contacts   []Contact `json:"contacts"`
	Pocketed   []int     `json:"pocketed"`
	Scratched  bool      `json:"scratched"`
}

// Eventful reports whether anything other than plain motion happened.
func (r FrameReport) Eventful() bool {
	return len(r.Contacts) > 0 || len(r.Pocketed) > 0 || r.Scratched
}

// BallState is the read-only view of a ball handed to renderers.
type BallState struct {
	Number   int     `json:"number"`
	IsCue    bool    `json:"is_cue"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Angle    float64 `json:"angle"`
	Pocketed bool    `json:"pocketed"`
}

// Snapshot is a deep copy of the table taken after an update.
type Snapshot struct {
	Frame     uint64      `json:"frame"`
	Balls     []BallState `json:"balls"`
	Pockets   []Pocket    `json:"pockets"`
	Bounds    Bounds      `json:"bounds"`
	Stick     Stick       `json:"stick"`
	Contacts  []Contact   `json:"contacts"`
	Moving    bool        `json:"moving"`
	Remaining int         `json:"remaining"`
}

// Simulation owns every piece of mutable table state. It is not safe for
// concurrent use; one goroutine drives Update and input, and renderers work
// from Snapshot.
type Simulation struct {
	Balls   []*Ball
	Pockets []Pocket
	Bounds  Bounds
	Stick   Stick

	cue    *Ball
	rack   [NumBalls]Vec2
	pruner *Pruner
	frame  uint64
	last   FrameReport
}

// NewSimulation builds a standard table with all sixteen balls racked.
func NewSimulation() *Simulation {
	s := &Simulation{
		Balls:   make([]*Ball, NumBalls),
		Pockets: StandardPockets(),
		Bounds:  StandardBounds(),
		rack:    StandardRack(),
	}
	for i := range s.Balls {
		s.Balls[i] = &Ball{Number: i, IsCue: i == CueBallNumber}
	}
	s.cue = s.Balls[CueBallNumber]
	s.Rack()
	s.pruner = NewPruner(s.Balls, SweepWindow)
	return s
}

// Rack returns every ball to its starting spot at rest and idles the stick.
func (s *Simulation) Rack() {
	for _, b := range s.Balls {
		b.Position = s.rack[b.Number]
		b.Velocity = Vec2{}
		b.Angle = 0
		b.Pocketed = false
	}
	s.Stick = Stick{Aim: s.Stick.Aim}
	s.last = FrameReport{Frame: s.frame}
	if s.pruner != nil {
		s.pruner.Sort()
	}
}

// CueBall returns the ball struck by the stick.
func (s *Simulation) CueBall() *Ball {
	return s.cue
}

// Aim moves the stick's aim point.
func (s *Simulation) Aim(x, y float64) {
	s.Stick.SetAim(x, y)
}

// BeginCharge starts charging the stick.
func (s *Simulation) BeginCharge() {
	s.Stick.BeginCharge()
}

// ReleaseStrike fires the cue ball using the stick's aim and power.
func (s *Simulation) ReleaseStrike() error {
	return s.Stick.Release(s.cue)
}

// Update advances the table by elapsed milliseconds: stick charge, motion,
// pockets, then broad and narrow phase collisions, in that order.
func (s *Simulation) Update(elapsed float64) FrameReport {
	if elapsed < 0 || math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
		elapsed = 0
	}
	s.frame++

	s.Stick.Charge(elapsed)
	Integrate(s.Balls, s.Bounds, elapsed)
	pocketed := DetectPockets(s.Balls, s.Pockets, s.rack[s.cue.Number])

	s.pruner.Sort()
	pairs := s.pruner.Candidates()
	contacts := ResolveCollisions(pairs)

	s.last = FrameReport{
		Frame:      s.frame,
		Elapsed:    elapsed,
		Candidates: len(pairs),
		Contacts:   contacts,
		Pocketed:   pocketed.Pocketed,
		Scratched:  pocketed.Scratched,
	}
	return s.last
}

// LastReport returns the report of the most recent Update.
func (s *Simulation) LastReport() FrameReport {
	return s.last
}

// Moving reports whether any ball in play is still rolling.
func (s *Simulation) Moving() bool {
	for _, b := range s.Balls {
		if !b.Pocketed && b.Velocity.Magnitude() > RestSpeed {
			return true
		}
	}
	return false
}

// Remaining counts object balls still on the table.
func (s *Simulation) Remaining() int {
	n := 0
	for _, b := range s.Balls {
		if !b.IsCue && !b.Pocketed {
			n++
		}
	}
	return n
}

// Snapshot copies the current state for a renderer.
func (s *Simulation) Snapshot() Snapshot {
	balls := make([]BallState, len(s.Balls))
	for i, b := range s.Balls {
		balls[i] = BallState{
			Number:   b.Number,
			IsCue:    b.IsCue,
			X:        b.Position.X,
			Y:        b.Position.Y,
			Angle:    b.Angle,
			Pocketed: b.Pocketed,
		}
	}
	pockets := make([]Pocket, len(s.Pockets))
	copy(pockets, s.Pockets)
	contacts := make([]Contact, len(s.last.Contacts))
	copy(contacts, s.last.Contacts)

	return Snapshot{
		Frame:     s.frame,
		Balls:     balls,
		Pockets:   pockets,
		Bounds:    s.Bounds,
		Stick:     s.Stick,
		Contacts:  contacts,
		Moving:    s.Moving(),
		Remaining: s.Remaining(),
	}
}
