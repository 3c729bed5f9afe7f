package pong

import (
	"math"
	"testing"
)

func TestPredictArrivalY(t *testing.T) {
	tests := []struct {
		name     string
		ball     Ball
		targetX  float64
		boardH   float64
		expected float64
	}{
		{"straight", Ball{X: 100, Y: 100, R: 9, VX: 400, VY: 200}, 754, 600, 427},
		{"level", Ball{X: 0, Y: 250, R: 9, VX: 300}, 600, 600, 250},
		{"one bounce bottom", Ball{X: 0, Y: 500, R: 9, VX: 100, VY: 100}, 200, 600, 482},
		{"one bounce top", Ball{X: 0, Y: 100, R: 9, VX: 100, VY: -100}, 200, 600, 118},
		{"two bounces", Ball{X: 0, Y: 300, R: 9, VX: 100, VY: 1000}, 200, 600, 46},
		{"slow ball uses floor", Ball{X: 0, Y: 300, R: 9, VX: 0, VY: 10}, 120, 600, 320},
		{"board too short", Ball{X: 0, Y: 5, R: 9, VX: 100, VY: 50}, 100, 16, 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PredictArrivalY(tc.ball, tc.targetX, tc.boardH, 60)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("PredictArrivalY() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPredictArrivalStaysInsideBoard(t *testing.T) {
	for vy := -5000.0; vy <= 5000; vy += 137 {
		b := Ball{X: 50, Y: 300, R: 9, VX: 80, VY: vy}
		y := PredictArrivalY(b, 754, 600, 60)
		if y < 9-1e-9 || y > 591+1e-9 {
			t.Errorf("vy=%v: PredictArrivalY() = %v outside [9, 591]", vy, y)
		}
	}
}

// TestAITargetsTrajectory drives the CPU with a noiseless hard profile at a
// ball crossing the board.
func TestAITargetsTrajectory(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.AI.Profile.Jitter = 0
	st.AI.Profile.Miss = 0
	st.AI.ReactT = 0
	st.ServeCooldown = 5 // keep the ball still
	st.Ball.X, st.Ball.Y = 100, 100
	st.Ball.VX, st.Ball.VY = 400, 200

	s.Step(st, Input{}, 0.001)

	// y at x = 754 is 100 + 200*(654/400) = 427; paddle top = 427 - 50
	if math.Abs(st.AI.TargetY-377) > 1e-9 {
		t.Errorf("TargetY = %v, expected 377", st.AI.TargetY)
	}
	if st.AI.ReactT <= 0 {
		t.Errorf("ReactT = %v, expected a new reaction interval", st.AI.ReactT)
	}
}

func TestAIWaitsForReaction(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.AI.Profile.Jitter = 0
	st.AI.Profile.Miss = 0
	st.AI.Profile.Reaction = 1
	st.ServeCooldown = 5
	st.Ball.X, st.Ball.Y = 100, 100
	st.Ball.VX, st.Ball.VY = 400, 200

	s.Step(st, Input{}, 0.001)
	first := st.AI.TargetY

	// The ball jumps but the prediction holds until the timer runs out.
	st.Ball.Y = 500
	s.Step(st, Input{}, 0.01)
	if st.AI.TargetY != first {
		t.Errorf("TargetY = %v, expected %v before the reaction timer elapses", st.AI.TargetY, first)
	}

	s.Step(st, Input{}, 2)
	if st.AI.TargetY == first {
		t.Error("TargetY should be re-predicted once the reaction timer elapses")
	}
}

func TestAIReactionInterval(t *testing.T) {
	s, st := newTestState(t, constRand(0))
	st.AI.ReactT = 0
	st.ServeCooldown = 5
	st.Ball.VX = 400

	s.Step(st, Input{}, 0.001)

	// Uniform(0.75, 1.35) at 0 is 0.75.
	expected := st.AI.Profile.Reaction * 0.75
	if math.Abs(st.AI.ReactT-expected) > 1e-12 {
		t.Errorf("ReactT = %v, expected %v", st.AI.ReactT, expected)
	}
}

func TestAIMissOffsetsTarget(t *testing.T) {
	s, st := newTestState(t, constRand(0.75))
	st.AI.Profile.Jitter = 0
	st.AI.Profile.Miss = 1
	st.AI.ReactT = 0
	st.ServeCooldown = 5
	st.Ball.X, st.Ball.Y = 100, 100
	st.Ball.VX, st.Ball.VY = 400, 200

	s.Step(st, Input{}, 0.001)

	// Uniform(-60, 60) at 0.75 is +30.
	if math.Abs(st.AI.TargetY-407) > 1e-9 {
		t.Errorf("TargetY = %v, expected 377 + 30", st.AI.TargetY)
	}
}

func TestAIIdleSway(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.ServeCooldown = 5
	st.Ball.VX = -400
	st.Time = 2

	s.Step(st, Input{}, 0.5)

	expected := (600-100)/2.0 + 24*math.Sin(2.5*0.7)
	if math.Abs(st.AI.TargetY-expected) > 1e-9 {
		t.Errorf("TargetY = %v, expected %v", st.AI.TargetY, expected)
	}
}

func TestAISpeedCap(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.AI.Profile.Jitter = 0
	st.AI.Profile.Miss = 0
	st.ServeCooldown = 5
	st.CPU.Y = 0
	st.Ball.X, st.Ball.Y = 700, 580
	st.Ball.VX, st.Ball.VY = 400, 0

	s.Step(st, Input{}, 0.01)

	maxStep := st.AI.Profile.MaxSpeed * 0.01
	if math.Abs(st.CPU.Y-maxStep) > 1e-9 {
		t.Errorf("CPU.Y = %v, expected one capped step of %v", st.CPU.Y, maxStep)
	}
}
