package game

// Table and physics constants. Distances are in table units (one unit per
// pixel at 1:1 scale), time in milliseconds, velocities in units per ms.

const (
	NumBalls = 16 // 0-14 object balls, 15 racked as the cue ball

	TableWidth  = 1024.0
	TableHeight = 512.0

	BallRadius   = 15.0
	PocketRadius = 25.0

	// Ball centres are kept inside [MinX,MaxX] x [MinY,MaxY].
	MinX = BallRadius
	MaxX = TableWidth - BallRadius
	MinY = BallRadius
	MaxY = TableHeight - BallRadius

	// Friction is the per-frame velocity decay factor.
	Friction = 0.999

	// SweepWindow bounds the x-distance at which two balls can still touch
	// within one frame.
	SweepWindow = 30.0

	// ContactDistanceSq is (2 * BallRadius)^2.
	ContactDistanceSq = (2 * BallRadius) * (2 * BallRadius)

	ChargeRate     = 0.0005 // power per ms while charging
	MaxPower       = 1.5    // 25 units per 60 Hz frame, under one ball diameter
	MinAimDistance = 1.0

	// RestSpeed is the speed below which a ball is reported as not moving.
	RestSpeed = 0.001

	// PocketedX is where captured object balls are parked.
	PocketedX = -50.0

	CueRackX = 732.0
	CueRackY = 266.0
)
