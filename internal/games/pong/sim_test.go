package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/difficulty"
)

// seqRand replays vals in a loop. An empty sequence always yields 0.5.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0.5
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func constRand(v float64) *seqRand {
	return &seqRand{vals: []float64{v}}
}

func hardProfile(t *testing.T) difficulty.Profile {
	t.Helper()
	p, err := difficulty.NewBuiltinRegistry().Lookup(difficulty.Hard)
	if err != nil {
		t.Fatalf("Lookup(hard) failed: %v", err)
	}
	return p
}

// newTestState returns an 800x600 board with the ball free to move.
func newTestState(t *testing.T, rng core.RandSource) (*Sim, *State) {
	t.Helper()
	s := NewSim(DefaultSettings(), rng)
	st := s.NewState(800, 600, hardProfile(t))
	st.ServeCooldown = 0
	return s, st
}

const eps = 1e-9

func TestNewStateLayout(t *testing.T) {
	_, st := newTestState(t, constRand(0.5))
	ph := DefaultPhysics()

	if st.Player.X != ph.PaddleMargin {
		t.Errorf("Player.X = %v, expected %v", st.Player.X, ph.PaddleMargin)
	}
	if st.CPU.X != 754 {
		t.Errorf("CPU.X = %v, expected 754", st.CPU.X)
	}
	if st.Player.Y != 250 || st.CPU.Y != 250 {
		t.Errorf("paddles Y = %v/%v, expected centred at 250", st.Player.Y, st.CPU.Y)
	}
	if st.Ball.X != 400 || st.Ball.Y != 300 {
		t.Errorf("ball = (%v, %v), expected board centre", st.Ball.X, st.Ball.Y)
	}
	if st.Player.Color != PlayerColor || st.CPU.Color != CPUColor {
		t.Error("paddle colors not assigned")
	}
}

func TestPlayerKeysStepWithoutSmoothing(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	start := st.Player.Y

	s.Step(st, Input{Up: true}, 0.01)

	expected := start - 860*0.9*0.01
	if math.Abs(st.Player.Y-expected) > eps {
		t.Errorf("Player.Y = %v, expected %v", st.Player.Y, expected)
	}
}

func TestPointerSmoothing(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.Player.Y = 0

	// target top = 400 - 50 = 350, approach fraction = 0.01 * 12
	s.Step(st, Input{HasPointer: true, PointerY: 400, Down: true}, 0.01)

	expected := 350 * 0.12
	if math.Abs(st.Player.Y-expected) > eps {
		t.Errorf("Player.Y = %v, expected %v (pointer wins over keys)", st.Player.Y, expected)
	}

	// Large dt snaps to the target.
	s.Step(st, Input{HasPointer: true, PointerY: 400}, 0.2)
	if math.Abs(st.Player.Y-350) > eps {
		t.Errorf("Player.Y = %v, expected 350", st.Player.Y)
	}
}

func TestPaddlesStayInBounds(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"pointer above", Input{HasPointer: true, PointerY: -5000}},
		{"pointer below", Input{HasPointer: true, PointerY: 5000}},
		{"hold up", Input{Up: true}},
		{"hold down", Input{Down: true}},
		{"hold both", Input{Up: true, Down: true}},
		{"idle", Input{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, st := newTestState(t, core.NewRand(7))
			for i := range 600 {
				s.Step(st, tc.in, 0.033)
				for _, p := range []Paddle{st.Player, st.CPU} {
					if p.Y < 0 || p.Y > st.Bounds.H-p.H {
						t.Fatalf("step %d: paddle Y = %v outside [0, %v]", i, p.Y, st.Bounds.H-p.H)
					}
				}
			}
		})
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name  string
		y, vy float64
		wall  Wall
		wantY float64
		color core.Color
	}{
		{"top", 10, -300, WallTop, 9, TopWallColor},
		{"bottom", 590, 300, WallBottom, 591, BottomWallColor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, st := newTestState(t, constRand(0.5))
			st.Ball.X, st.Ball.Y = 400, tc.y
			st.Ball.VX, st.Ball.VY = 100, tc.vy

			events := s.Step(st, Input{}, 0.016)

			if st.Ball.Y != tc.wantY {
				t.Errorf("Ball.Y = %v, expected clamp to %v", st.Ball.Y, tc.wantY)
			}
			if math.Signbit(st.Ball.VY) == math.Signbit(tc.vy) {
				t.Errorf("Ball.VY = %v, expected sign flip from %v", st.Ball.VY, tc.vy)
			}
			if math.Abs(math.Abs(st.Ball.VY)-300*1.003) > eps {
				t.Errorf("|VY| = %v, expected boosted 300.9", math.Abs(st.Ball.VY))
			}
			if st.Ball.VX != 100 {
				t.Errorf("VX = %v, boost must apply to VY only", st.Ball.VX)
			}
			if len(events) != 1 || events[0].Kind != EventWallBounce || events[0].Wall != tc.wall {
				t.Fatalf("events = %+v, expected one %v wall bounce", events, tc.wall)
			}
			if st.Particles.Len() != DefaultPhysics().StreakCount {
				t.Errorf("particles = %d, expected streak of %d", st.Particles.Len(), DefaultPhysics().StreakCount)
			}
			if c := st.Particles.All()[0].Color; c != tc.color {
				t.Errorf("streak color = %v, expected %v", c, tc.color)
			}
		})
	}
}

func TestWallIgnoresBallMovingAway(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.Ball.X, st.Ball.Y = 400, 5
	st.Ball.VX, st.Ball.VY = 100, 300

	events := s.Step(st, Input{}, 0.001)

	if len(events) != 0 {
		t.Errorf("events = %+v, expected none", events)
	}
	if st.Ball.VY != 300 {
		t.Errorf("VY = %v, expected unchanged", st.Ball.VY)
	}
}

func TestPaddleHit(t *testing.T) {
	tests := []struct {
		name      string
		side      Side
		x, vx     float64
		offset    float64 // ball y relative to paddle centre
		speed     float64
		wantX     float64
		wantSpeed float64
	}{
		{"player centre", SidePlayer, 50, -460, 0, 460, 56, 460 * 1.015},
		{"player above centre", SidePlayer, 50, -460, -25, 460, 56, 460 * 1.015},
		{"player below centre", SidePlayer, 50, -460, 25, 460, 56, 460 * 1.015},
		{"cpu below centre", SideCPU, 750, 460, 40, 460, 744, 460 * 1.015},
		{"cpu above centre", SideCPU, 750, 460, -40, 460, 744, 460 * 1.015},
		{"speed capped", SideCPU, 750, 460, 10, 1600, 744, 1600},
		{"speed floored", SidePlayer, 50, -460, 10, 100, 56, 460},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, st := newTestState(t, constRand(0.5))
			st.Ball.X = tc.x
			st.Ball.Y = 300 + tc.offset
			st.Ball.VX, st.Ball.VY = tc.vx, 0
			st.Ball.Speed = tc.speed

			events := s.Step(st, Input{}, 0.001)

			if len(events) != 1 || events[0].Kind != EventPaddleHit || events[0].Side != tc.side {
				t.Fatalf("events = %+v, expected one %v paddle hit", events, tc.side)
			}
			if math.Abs(st.Ball.Speed-tc.wantSpeed) > eps {
				t.Errorf("Speed = %v, expected %v", st.Ball.Speed, tc.wantSpeed)
			}
			if st.Ball.X != tc.wantX {
				t.Errorf("Ball.X = %v, expected %v", st.Ball.X, tc.wantX)
			}

			wantDir := 1.0
			if tc.side == SideCPU {
				wantDir = -1
			}
			if core.Sign(st.Ball.VX) != wantDir {
				t.Errorf("VX = %v, expected sign %v", st.Ball.VX, wantDir)
			}
			switch {
			case tc.offset > 0 && st.Ball.VY <= 0:
				t.Errorf("VY = %v, expected positive below centre", st.Ball.VY)
			case tc.offset < 0 && st.Ball.VY >= 0:
				t.Errorf("VY = %v, expected negative above centre", st.Ball.VY)
			case tc.offset == 0 && st.Ball.VY != 0:
				t.Errorf("VY = %v, expected 0 at centre", st.Ball.VY)
			}

			rel := tc.offset / 50
			ang := rel * math.Pi / 6
			sp := math.Max(tc.wantSpeed, math.Abs(tc.vx))
			if math.Abs(math.Abs(st.Ball.VX)-math.Cos(ang)*sp) > 1e-6 {
				t.Errorf("|VX| = %v, expected %v", math.Abs(st.Ball.VX), math.Cos(ang)*sp)
			}
			if st.Rally.Hits != 1 {
				t.Errorf("Rally.Hits = %d, expected 1", st.Rally.Hits)
			}
			if st.Particles.Len() != DefaultPhysics().BurstCount {
				t.Errorf("particles = %d, expected burst of %d", st.Particles.Len(), DefaultPhysics().BurstCount)
			}
		})
	}
}

func TestPaddleIgnoresBallMovingAway(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.Ball.X, st.Ball.Y = 50, 300
	st.Ball.VX, st.Ball.VY = 460, 0

	events := s.Step(st, Input{}, 0.001)

	if len(events) != 0 {
		t.Errorf("events = %+v, expected none", events)
	}
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name       string
		x, vx      float64
		wantPlayer int
		wantCPU    int
		wantScorer Side
		wantDir    float64
	}{
		{"left exit", -20, -300, 0, 1, SideCPU, 1},
		{"right exit", 820, 300, 1, 0, SidePlayer, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, st := newTestState(t, constRand(0.5))
			st.Ball.X, st.Ball.Y = tc.x, 300
			st.Ball.VX, st.Ball.VY = tc.vx, 0
			st.Rally = Rally{Hits: 3, TopSpeed: 520, Duration: 4}

			events := s.Step(st, Input{}, 0.016)

			if st.Score.Player != tc.wantPlayer || st.Score.CPU != tc.wantCPU {
				t.Errorf("Score = %+v, expected %d-%d", st.Score, tc.wantPlayer, tc.wantCPU)
			}
			if st.Ball.X != 400 || st.Ball.Y != 300 {
				t.Errorf("ball = (%v, %v), expected recentred", st.Ball.X, st.Ball.Y)
			}
			if st.ServeCooldown <= 0 {
				t.Error("ServeCooldown should be positive after a point")
			}
			if core.Sign(st.Ball.VX) != tc.wantDir {
				t.Errorf("VX = %v, expected serve sign %v", st.Ball.VX, tc.wantDir)
			}
			if !st.Shake.Active() {
				t.Error("shake should be running after a point")
			}
			if len(events) != 1 || events[0].Kind != EventPoint || events[0].Side != tc.wantScorer {
				t.Fatalf("events = %+v, expected one point for %v", events, tc.wantScorer)
			}
			if events[0].Rally.Hits != 3 {
				t.Errorf("event rally hits = %d, expected 3", events[0].Rally.Hits)
			}
			if st.Rally != (Rally{}) {
				t.Errorf("Rally = %+v, expected reset", st.Rally)
			}
		})
	}
}

func TestNoScoreUntilFullyPast(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	// Right edge still at x = 1.
	st.Ball.X, st.Ball.Y = -8, 300
	st.Ball.VX, st.Ball.VY = 0, 0

	s.Step(st, Input{}, 0.016)

	if st.Score != (Score{}) {
		t.Errorf("Score = %+v, expected none while the ball overlaps the edge", st.Score)
	}
}

func TestServe(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.Trail.Push(1, 1)

	s.Serve(st, -1)

	b := st.Ball
	if math.Abs(b.Speed-460) > eps || math.Abs(b.VX+460) > eps || math.Abs(b.VY) > eps {
		t.Errorf("ball = %+v, expected straight serve left at 460", st.Ball)
	}
	if st.Trail.Len() != 0 {
		t.Errorf("Trail.Len() = %d, expected cleared", st.Trail.Len())
	}
	if st.ServeCooldown != 0.7 {
		t.Errorf("ServeCooldown = %v, expected 0.7", st.ServeCooldown)
	}
}

func TestServeRanges(t *testing.T) {
	s, st := newTestState(t, core.NewRand(42))
	ph := DefaultPhysics()

	ups, downs := 0, 0
	for range 500 {
		s.Serve(st, 1)
		b := st.Ball
		if b.Speed < ph.BallBaseSpeed*0.9-eps || b.Speed > ph.BallBaseSpeed*1.1+eps {
			t.Fatalf("serve speed %v outside [414, 506]", b.Speed)
		}
		if b.VX <= 0 {
			t.Fatalf("VX = %v, expected positive", b.VX)
		}
		if ang := math.Atan2(math.Abs(b.VY), b.VX); ang > ph.ServeAngle+eps {
			t.Fatalf("serve angle %v exceeds %v", ang, ph.ServeAngle)
		}
		if b.VY < 0 {
			ups++
		} else {
			downs++
		}
	}
	if ups == 0 || downs == 0 {
		t.Errorf("vertical serve sign never varied: up=%d down=%d", ups, downs)
	}
}

func TestServeCooldownFreezesBall(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	s.Serve(st, 1)

	s.Step(st, Input{}, 0.3)
	if st.Ball.X != 400 {
		t.Errorf("Ball.X = %v, expected frozen during cooldown", st.Ball.X)
	}
	if math.Abs(st.ServeCooldown-0.4) > eps {
		t.Errorf("ServeCooldown = %v, expected 0.4", st.ServeCooldown)
	}

	s.Step(st, Input{}, 0.4)
	if st.ServeCooldown != 0 {
		t.Errorf("ServeCooldown = %v, expected floored at 0", st.ServeCooldown)
	}
	s.Step(st, Input{}, 0.01)
	if st.Ball.X <= 400 {
		t.Errorf("Ball.X = %v, expected movement once the cooldown ends", st.Ball.X)
	}
}

func TestPausedStateHoldsBall(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.Paused = true
	x := st.Ball.X

	s.Step(st, Input{}, 0.016)

	if st.Ball.X != x {
		t.Errorf("Ball.X = %v, expected %v while paused", st.Ball.X, x)
	}
}

func TestTrailFollowsBall(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	capacity := st.Trail.Cap()

	var xs []float64
	for range capacity + 5 {
		s.Step(st, Input{}, 0.005)
		xs = append(xs, st.Ball.X)
	}

	pts := st.Trail.Points()
	if len(pts) != capacity {
		t.Fatalf("Trail.Len() = %d, expected %d", len(pts), capacity)
	}
	recent := xs[len(xs)-capacity:]
	for i, p := range pts {
		if p.X != recent[i] {
			t.Errorf("trail[%d].X = %v, expected %v", i, p.X, recent[i])
		}
	}
}

func TestShakeDecays(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))
	st.Shake = Shake{T: 0.1, Amp: 12}

	s.Step(st, Input{}, 0.03)
	if math.Abs(st.Shake.T-0.07) > eps {
		t.Errorf("Shake.T = %v, expected 0.07", st.Shake.T)
	}
	s.Step(st, Input{}, 0.2)
	if st.Shake.T != 0 || st.Shake.Active() {
		t.Errorf("Shake.T = %v, expected 0", st.Shake.T)
	}
}

func TestResizeClampsPaddleHeight(t *testing.T) {
	s, st := newTestState(t, constRand(0.5))

	s.Resize(st, 400, 60)

	if st.Player.H != 60 || st.CPU.H != 60 {
		t.Errorf("paddle heights = %v/%v, expected 60", st.Player.H, st.CPU.H)
	}
	if st.Player.Y != 0 || st.CPU.Y != 0 {
		t.Errorf("paddle Y = %v/%v, expected 0", st.Player.Y, st.CPU.Y)
	}
	if st.CPU.X != 400-32-14 {
		t.Errorf("CPU.X = %v, expected re-anchored", st.CPU.X)
	}
}

// TestLongRallyInvariants plays a long seeded match with the player paddle
// tracking the ball and checks the per-step guarantees.
func TestLongRallyInvariants(t *testing.T) {
	s, st := newTestState(t, core.NewRand(1))
	ph := DefaultPhysics()

	points := 0
	for i := range 30000 {
		before := st.Score
		in := Input{HasPointer: true, PointerY: st.Ball.Y}
		events := s.Step(st, in, 0.016)

		for _, p := range []Paddle{st.Player, st.CPU} {
			if p.Y < 0 || p.Y > st.Bounds.H-p.H {
				t.Fatalf("step %d: paddle Y = %v out of bounds", i, p.Y)
			}
		}
		if st.Trail.Len() > st.Trail.Cap() {
			t.Fatalf("step %d: trail overflow", i)
		}
		if st.Particles.Len() > st.Particles.Cap() {
			t.Fatalf("step %d: particle overflow", i)
		}

		scored := false
		for _, ev := range events {
			switch ev.Kind {
			case EventPaddleHit:
				if ev.Speed < ph.BallBaseSpeed || ev.Speed > ph.BallMaxSpeed {
					t.Fatalf("step %d: speed %v outside [base, max]", i, ev.Speed)
				}
			case EventPoint:
				scored = true
				points++
			}
		}

		gained := (st.Score.Player - before.Player) + (st.Score.CPU - before.CPU)
		if scored {
			if gained != 1 {
				t.Fatalf("step %d: score moved by %d, expected 1", i, gained)
			}
			if st.Ball.X != st.Bounds.W/2 || st.Ball.Y != st.Bounds.H/2 || st.ServeCooldown <= 0 {
				t.Fatalf("step %d: ball not recentred after point", i)
			}
		} else if gained != 0 {
			t.Fatalf("step %d: score moved by %d without a point", i, gained)
		}
	}

	if points == 0 {
		t.Error("no points scored in a long match")
	}
}
