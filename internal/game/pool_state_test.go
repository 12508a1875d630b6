package game

import (
	"errors"
	"math"
	"testing"
)

func TestNewSimulationRacksSixteenBalls(t *testing.T) {
	sim := NewSimulation()

	if len(sim.Balls) != NumBalls {
		t.Fatalf("got %d balls, want %d", len(sim.Balls), NumBalls)
	}
	cues := 0
	for i, b := range sim.Balls {
		if b.Number != i {
			t.Errorf("ball at index %d has number %d", i, b.Number)
		}
		if b.IsCue {
			cues++
		}
	}
	if cues != 1 {
		t.Errorf("got %d cue balls, want 1", cues)
	}
	if cue := sim.CueBall(); cue.Position != NewVec2(CueRackX, CueRackY) {
		t.Errorf("cue ball at %+v, want rack spot", cue.Position)
	}
	if len(sim.Pockets) != 6 {
		t.Errorf("got %d pockets, want 6", len(sim.Pockets))
	}
	if sim.Remaining() != NumBalls-1 {
		t.Errorf("remaining = %d, want %d", sim.Remaining(), NumBalls-1)
	}
}

func TestRestingRackHasNoContacts(t *testing.T) {
	sim := NewSimulation()
	before := sim.Snapshot()

	report := sim.Update(16)

	if len(report.Contacts) != 0 {
		t.Errorf("resting rack produced contacts: %+v", report.Contacts)
	}
	after := sim.Snapshot()
	for i := range before.Balls {
		if before.Balls[i].X != after.Balls[i].X || before.Balls[i].Y != after.Balls[i].Y {
			t.Errorf("ball %d moved while at rest", i)
		}
	}
	if sim.Moving() {
		t.Error("rack should be at rest")
	}
}

func TestBreakShotScattersRack(t *testing.T) {
	sim := NewSimulation()
	start := StandardRack()

	sim.Aim(CueRackX+100, CueRackY)
	sim.BeginCharge()
	sim.Update(1000)
	if err := sim.ReleaseStrike(); err != nil {
		t.Fatalf("strike: %v", err)
	}
	if !sim.Moving() {
		t.Fatal("cue ball should be rolling after the strike")
	}

	contacts := 0
	for i := 0; i < 300; i++ {
		contacts += len(sim.Update(16).Contacts)
	}
	if contacts == 0 {
		t.Fatal("break shot never touched the rack")
	}

	moved := 0
	for _, b := range sim.Balls {
		if b.IsCue {
			continue
		}
		if b.Pocketed || b.Position.DistanceSquared(start[b.Number]) > BallRadius*BallRadius {
			moved++
		}
	}
	if moved == 0 {
		t.Error("no object ball moved on the break")
	}
}

func TestUpdatePocketsObjectBall(t *testing.T) {
	sim := NewSimulation()
	ball := sim.Balls[3]
	ball.Position = NewVec2(500, 20)
	ball.Velocity = NewVec2(0.5, -0.5)

	report := sim.Update(20)

	if len(report.Pocketed) != 1 || report.Pocketed[0] != 3 {
		t.Fatalf("pocketed = %v, want [3]", report.Pocketed)
	}
	if !ball.Pocketed || !ball.Velocity.IsZero() {
		t.Errorf("ball 3 = %+v, want pocketed at rest", ball)
	}
	if sim.Remaining() != NumBalls-2 {
		t.Errorf("remaining = %d, want %d", sim.Remaining(), NumBalls-2)
	}

	next := sim.Update(20)
	if len(next.Pocketed) != 0 {
		t.Errorf("ball pocketed again: %v", next.Pocketed)
	}
	for _, c := range next.Contacts {
		if c.A == 3 || c.B == 3 {
			t.Errorf("pocketed ball collided: %+v", c)
		}
	}
}

func TestUpdateScratchesCueBall(t *testing.T) {
	sim := NewSimulation()
	cue := sim.CueBall()
	cue.Position = NewVec2(40, 40)
	cue.Velocity = NewVec2(-1, -1)

	report := sim.Update(30)

	if !report.Scratched {
		t.Fatal("expected a scratch")
	}
	if cue.Pocketed {
		t.Error("cue ball flagged pocketed")
	}
	if cue.Position != NewVec2(CueRackX, CueRackY) || !cue.Velocity.IsZero() {
		t.Errorf("cue = %+v, want at rest on its spot", cue)
	}
}

func TestRackRestoresTable(t *testing.T) {
	sim := NewSimulation()
	sim.Balls[3].Position = NewVec2(10, 10)
	sim.Update(1)
	sim.BeginCharge()

	sim.Rack()

	if sim.Remaining() != NumBalls-1 {
		t.Errorf("remaining = %d after rack", sim.Remaining())
	}
	if sim.Stick.Charging || sim.Stick.Power != 0 {
		t.Errorf("stick = %+v, want idle", sim.Stick)
	}
	if sim.Balls[3].Position != StandardRack()[3] {
		t.Errorf("ball 3 at %+v after rack", sim.Balls[3].Position)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	sim := NewSimulation()
	snap := sim.Snapshot()
	snap.Balls[0].X = 9999
	snap.Pockets[0].Position.X = 9999

	again := sim.Snapshot()
	if again.Balls[0].X == 9999 || again.Pockets[0].Position.X == 9999 {
		t.Error("simulation mutated through snapshot")
	}
}

func TestNegativeElapsedIsIgnored(t *testing.T) {
	sim := NewSimulation()
	cue := sim.CueBall()
	cue.Velocity = NewVec2(0.2, 0)

	sim.Update(-50)

	if cue.Position != NewVec2(CueRackX, CueRackY) {
		t.Errorf("cue moved to %+v on negative elapsed", cue.Position)
	}
}

func TestNonFiniteElapsedIsIgnored(t *testing.T) {
	for _, elapsed := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		sim := NewSimulation()
		sim.CueBall().Velocity = NewVec2(0.2, 0)

		sim.Update(elapsed)

		for _, b := range sim.Balls {
			if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
				t.Fatalf("elapsed %v: ball %d at %+v moving %+v", elapsed, b.Number, b.Position, b.Velocity)
			}
		}
		if sim.CueBall().Position != NewVec2(CueRackX, CueRackY) {
			t.Errorf("elapsed %v: cue moved to %+v", elapsed, sim.CueBall().Position)
		}
	}
}

func TestReleaseStrikeGuardsDegenerateAim(t *testing.T) {
	sim := NewSimulation()
	sim.Aim(CueRackX, CueRackY)
	sim.BeginCharge()
	sim.Update(500)

	if err := sim.ReleaseStrike(); !errors.Is(err, ErrAimOnCueBall) {
		t.Fatalf("err = %v, want ErrAimOnCueBall", err)
	}
	for i := 0; i < 10; i++ {
		sim.Update(16)
	}
	for _, b := range sim.Balls {
		if !b.Position.IsFinite() || !b.Velocity.IsFinite() {
			t.Fatalf("ball %d went non-finite", b.Number)
		}
	}
}
