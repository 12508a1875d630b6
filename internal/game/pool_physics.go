package game

// Integrate advances every ball still in play by one explicit Euler step of
// elapsed milliseconds, mirrors velocity off the cushions and applies friction.
//
// There is no sub-stepping and no position correction on bounce, so a fast
// ball can sit slightly past a cushion for a frame.
func Integrate(balls []*Ball, bounds Bounds, elapsed float64) {
	for _, ball := range balls {
		if ball.Pocketed {
			continue
		}

		ball.Position = ball.Position.Plus(ball.Velocity.Times(elapsed))

		if ball.Position.X < bounds.MinX || ball.Position.X > bounds.MaxX {
			ball.Velocity.X = -ball.Velocity.X
		}
		if ball.Position.Y < bounds.MinY || ball.Position.Y > bounds.MaxY {
			ball.Velocity.Y = -ball.Velocity.Y
		}

		ball.Velocity = ball.Velocity.Times(Friction)
	}
}

// PocketResult lists what DetectPockets did this frame.
type PocketResult struct {
	Pocketed  []int // object ball numbers removed from play
	Scratched bool  // the cue ball was returned to its spot
}

// DetectPockets checks every ball in play against every pocket. A captured
// object ball is flagged pocketed, stopped and parked off-table; a captured
// cue ball is stopped and put back on cueSpot instead.
func DetectPockets(balls []*Ball, pockets []Pocket, cueSpot Vec2) PocketResult {
	var res PocketResult
	for _, ball := range balls {
		if ball.Pocketed {
			continue
		}
		for _, pocket := range pockets {
			if !pocket.Contains(ball.Position) {
				continue
			}
			ball.Velocity = Vec2{}
			if ball.IsCue {
				ball.Position = cueSpot
				res.Scratched = true
			} else {
				ball.Pocketed = true
				ball.Position = NewVec2(PocketedX, ball.Position.Y)
				res.Pocketed = append(res.Pocketed, ball.Number)
			}
			break
		}
	}
	return res
}
