package game

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestMagnitudeAndNormalize(t *testing.T) {
	v := NewVec2(3, 4)
	if v.Magnitude() != 5 {
		t.Errorf("magnitude = %v, want 5", v.Magnitude())
	}
	if v.MagnitudeSquared() != 25 {
		t.Errorf("magnitude squared = %v, want 25", v.MagnitudeSquared())
	}
	if n := v.Normalize(); !nearVec(n, NewVec2(0.6, 0.8)) {
		t.Errorf("normalize = %+v, want (0.6, 0.8)", n)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	n := Vec2{}.Normalize()
	if !n.IsZero() {
		t.Errorf("normalize of zero vector = %+v, want zero", n)
	}
	if !n.IsFinite() {
		t.Errorf("normalize of zero vector is not finite: %+v", n)
	}
}

func TestRotate(t *testing.T) {
	cases := []struct {
		name  string
		in    Vec2
		angle float64
		want  Vec2
	}{
		{"quarter turn", NewVec2(1, 0), math.Pi / 2, NewVec2(0, 1)},
		{"half turn", NewVec2(10, 0), math.Pi, NewVec2(-10, 0)},
		{"negative quarter", NewVec2(0, 4), -math.Pi / 2, NewVec2(4, 0)},
		{"full turn", NewVec2(2, -3), 2 * math.Pi, NewVec2(2, -3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Rotate(c.angle)
			if !nearVec(got, c.want) {
				t.Errorf("rotate(%+v, %v) = %+v, want %+v", c.in, c.angle, got, c.want)
			}
		})
	}
}

func TestRotateRoundTrip(t *testing.T) {
	v := NewVec2(7, -2)
	back := v.Rotate(1.234).Rotate(-1.234)
	if !nearVec(v, back) {
		t.Errorf("round trip = %+v, want %+v", back, v)
	}
	if !near(v.Rotate(0.7).Magnitude(), v.Magnitude()) {
		t.Error("rotation changed magnitude")
	}
}

func TestIsFinite(t *testing.T) {
	if !NewVec2(1, 2).IsFinite() {
		t.Error("(1,2) should be finite")
	}
	if NewVec2(math.NaN(), 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec2(0, math.Inf(-1)).IsFinite() {
		t.Error("-Inf component should not be finite")
	}
}
