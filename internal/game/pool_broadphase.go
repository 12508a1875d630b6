package game

// Pair is two balls whose x-projections lie within the sweep window.
// A has the smaller (or equal) x at the time of the sweep.
type Pair struct {
	A, B *Ball
}

// Pruner is a sweep-and-prune broad phase along the x-axis. It keeps its own
// ordering of the balls and reuses its buffers from frame to frame, so the
// pairs returned by Candidates are only valid until the next call.
type Pruner struct {
	axis   []*Ball
	active []*Ball
	pairs  []Pair
	window float64
}

// NewPruner creates a pruner over balls with the given sweep window.
func NewPruner(balls []*Ball, window float64) *Pruner {
	p := &Pruner{
		axis:   make([]*Ball, len(balls)),
		active: make([]*Ball, 0, len(balls)),
		pairs:  make([]Pair, 0, len(balls)),
		window: window,
	}
	copy(p.axis, balls)
	p.Sort()
	return p
}

// Sort re-orders the axis list by ascending x. Balls move a short distance
// per frame, so the list is nearly sorted and insertion sort stays close to
// linear.
func (p *Pruner) Sort() {
	axis := p.axis
	for i := 1; i < len(axis); i++ {
		key := axis[i]
		j := i - 1
		for j >= 0 && axis[j].Position.X > key.Position.X {
			axis[j+1] = axis[j]
			j--
		}
		axis[j+1] = key
	}
}

// Axis returns the current x-ordered view of the balls.
func (p *Pruner) Axis() []*Ball {
	return p.axis
}

// Candidates sweeps the axis list left to right and returns every pair of
// balls in play whose x-distance is below the window.
func (p *Pruner) Candidates() []Pair {
	p.pairs = p.pairs[:0]
	p.active = p.active[:0]

	for _, ball := range p.axis {
		if ball.Pocketed {
			continue
		}

		kept := p.active[:0]
		for _, other := range p.active {
			if ball.Position.X-other.Position.X < p.window {
				kept = append(kept, other)
			}
		}
		p.active = kept

		for _, other := range p.active {
			p.pairs = append(p.pairs, Pair{A: other, B: ball})
		}
		p.active = append(p.active, ball)
	}

	return p.pairs
}
