package game

// Contact records a resolved ball-ball collision by ball number.
type Contact struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Touching reports whether two ball centres are closer than two radii.
func Touching(a, b *Ball) bool {
	return a.Position.DistanceSquared(b.Position) < ContactDistanceSq
}

// Collide separates two overlapping balls and exchanges their velocities
// along the collision normal. It returns false, leaving both balls untouched,
// when they are not actually touching.
func Collide(a, b *Ball) bool {
	if !Touching(a, b) {
		return false
	}

	normal := a.Position.Minus(b.Position)
	overlap := 2*BallRadius - normal.Magnitude()
	if overlap < 0 {
		overlap = 0
	}
	normal = normal.Normalize()

	push := normal.Times(overlap / 2)
	a.Position = a.Position.Plus(push)
	b.Position = b.Position.Minus(push)

	// Work in a frame where the normal lies on the x-axis: equal masses
	// trade their normal components and keep their tangential ones.
	angle := normal.Angle()
	va := a.Velocity.Rotate(-angle)
	vb := b.Velocity.Rotate(-angle)
	va.X, vb.X = vb.X, va.X

	a.Velocity = va.Rotate(angle)
	b.Velocity = vb.Rotate(angle)
	return true
}

// ResolveCollisions runs Collide over each candidate pair in order and
// returns the pairs that really collided. Pairs are handled one at a time;
// a cluster of three or more balls is not solved simultaneously.
func ResolveCollisions(pairs []Pair) []Contact {
	var contacts []Contact
	for _, pair := range pairs {
		if pair.A.Pocketed || pair.B.Pocketed {
			continue
		}
		if Collide(pair.A, pair.B) {
			contacts = append(contacts, Contact{A: pair.A.Number, B: pair.B.Number})
		}
	}
	return contacts
}
