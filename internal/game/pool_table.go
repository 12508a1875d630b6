package game

// Ball is a single ball's physics state.
type Ball struct {
	Number   int     `json:"number"`
	IsCue    bool    `json:"is_cue"`
	Position Vec2    `json:"position"`
	Velocity Vec2    `json:"velocity"`
	Angle    float64 `json:"angle"` // rolling visual only, never touched by the physics
	Pocketed bool    `json:"pocketed"`
}

// Pocket is one of the six fixed capture zones.
type Pocket struct {
	ID       int     `json:"id"`
	Position Vec2    `json:"position"`
	Radius   float64 `json:"radius"`
}

// Contains reports whether p lies strictly inside the pocket's capture radius.
func (pk Pocket) Contains(p Vec2) bool {
	return p.DistanceSquared(pk.Position) < pk.Radius*pk.Radius
}

// Bounds is the rectangle ball centres may travel in before bouncing.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// StandardBounds returns the cushion rectangle for a TableWidth x TableHeight table.
func StandardBounds() Bounds {
	return Bounds{MinX: MinX, MaxX: MaxX, MinY: MinY, MaxY: MaxY}
}

// StandardPockets returns the four corner and two side pockets.
func StandardPockets() []Pocket {
	mid := TableWidth / 2
	return []Pocket{
		{ID: 0, Position: NewVec2(0, 0), Radius: PocketRadius},
		{ID: 1, Position: NewVec2(mid, 0), Radius: PocketRadius},
		{ID: 2, Position: NewVec2(TableWidth, 0), Radius: PocketRadius},
		{ID: 3, Position: NewVec2(0, TableHeight), Radius: PocketRadius},
		{ID: 4, Position: NewVec2(mid, TableHeight), Radius: PocketRadius},
		{ID: 5, Position: NewVec2(TableWidth, TableHeight), Radius: PocketRadius},
	}
}

// CueBallNumber is the ball racked at the cue spot by StandardRack.
const CueBallNumber = 15

// StandardRack returns the starting position of every ball, indexed by number.
// The triangle points right, apex ball 0 on the foot spot.
func StandardRack() [NumBalls]Vec2 {
	var pos [NumBalls]Vec2

	pos[CueBallNumber] = NewVec2(CueRackX, CueRackY)

	pos[0] = NewVec2(266, 266)

	pos[1] = NewVec2(240, 250)
	pos[8] = NewVec2(240, 281)

	pos[9] = NewVec2(212, 236)
	pos[7] = NewVec2(212, 266)
	pos[2] = NewVec2(212, 298)

	pos[3] = NewVec2(185, 218)
	pos[10] = NewVec2(185, 250)
	pos[4] = NewVec2(185, 282)
	pos[11] = NewVec2(185, 314)

	pos[12] = NewVec2(157, 205)
	pos[5] = NewVec2(157, 236)
	pos[13] = NewVec2(157, 266)
	pos[6] = NewVec2(157, 297)
	pos[14] = NewVec2(157, 328)

	return pos
}
