package merge

import (
	"testing"

	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
)

const tickDt = 1.0 / 60.0

func testConfig() config.ShapefallConfig {
	cfg := config.DefaultShapefallConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestSim(seed int64) *Simulation {
	s := NewSimulation(testConfig(), seed, Callbacks{})
	s.Initialize()
	return s
}

func TestInitializeState(t *testing.T) {
	s := newTestSim(1)

	if s.Score() != 0 {
		t.Errorf("Expected score 0, got %d", s.Score())
	}
	if s.IsGameOver() {
		t.Error("Expected game not over after initialize")
	}
	if s.ShapeCount() != 0 {
		t.Errorf("Expected empty container, got %d shapes", s.ShapeCount())
	}
	if s.DropX() != 180 {
		t.Errorf("Expected drop position centered at 180, got %v", s.DropX())
	}
	if s.active == nil || !s.active.Static {
		t.Fatal("Expected a static controlled shape after initialize")
	}
	if s.next == nil {
		t.Fatal("Expected a queued shape after initialize")
	}
	if s.active.Type > TierTrapezoid {
		t.Errorf("Expected spawned tier within the weighted range, got %s", s.active.Type)
	}
}

func TestReleaseSetsVelocity(t *testing.T) {
	s := newTestSim(1)

	s.HandleInteraction(180, 0, InteractDown)

	if s.ShapeCount() != 1 {
		t.Fatalf("Expected 1 released shape, got %d", s.ShapeCount())
	}
	released := s.shapes[0]
	if released.Static {
		t.Error("Expected released shape to be dynamic")
	}
	if released.Vel.X != 0 || released.Vel.Y != 50 {
		t.Errorf("Expected release velocity {0, 50}, got %+v", released.Vel)
	}
	if s.active != nil {
		t.Error("Expected active slot empty until the next update")
	}

	s.Update(tickDt)
	if s.active == nil || !s.active.Static {
		t.Error("Expected a fresh controlled shape promoted on the next update")
	}
}

func TestUpReleasesToo(t *testing.T) {
	s := newTestSim(1)

	s.HandleInteraction(200, 0, InteractUp)

	if s.ShapeCount() != 1 {
		t.Errorf("Expected up to release the active shape, got %d shapes", s.ShapeCount())
	}
}

func TestMoveClampsToWalls(t *testing.T) {
	s := newTestSim(1)
	r := s.active.Radius()

	s.HandleInteraction(-500, 0, InteractMove)
	if s.DropX() != r {
		t.Errorf("Expected drop position clamped to %v, got %v", r, s.DropX())
	}
	if s.active.Pos.X != s.DropX() {
		t.Errorf("Expected active shape to follow drop position, got %v", s.active.Pos.X)
	}

	s.HandleInteraction(5000, 0, InteractMove)
	want := s.cfg.Container.Width - r
	if s.DropX() != want {
		t.Errorf("Expected drop position clamped to %v, got %v", want, s.DropX())
	}
}

func TestMoveIgnoredWhileFalling(t *testing.T) {
	s := newTestSim(1)
	s.HandleInteraction(180, 0, InteractDown)

	s.HandleInteraction(40, 0, InteractMove)

	if s.DropX() != 180 {
		t.Errorf("Expected drop position unchanged with no controlled shape, got %v", s.DropX())
	}
}

func TestOneDropPerGesture(t *testing.T) {
	s := newTestSim(1)

	s.HandleInteraction(180, 0, InteractDown)
	s.HandleInteraction(180, 0, InteractUp)

	if s.ShapeCount() != 1 {
		t.Errorf("Expected one press-release gesture to drop exactly one shape, got %d", s.ShapeCount())
	}

	s.Update(tickDt)
	s.HandleInteraction(180, 0, InteractDown)
	s.HandleInteraction(180, 0, InteractUp)
	if s.ShapeCount() != 2 {
		t.Errorf("Expected second gesture to drop one more shape, got %d", s.ShapeCount())
	}
}

func TestRestartClearsState(t *testing.T) {
	s := newTestSim(1)
	for i := 0; i < 3; i++ {
		s.HandleInteraction(100+float64(i)*60, 0, InteractDown)
		for j := 0; j < 30; j++ {
			s.Update(tickDt)
		}
	}
	s.score = 70

	for i := 0; i < 2; i++ {
		s.Restart()
		if s.Score() != 0 {
			t.Errorf("Restart %d: expected score 0, got %d", i, s.Score())
		}
		if s.ShapeCount() != 0 {
			t.Errorf("Restart %d: expected empty container, got %d shapes", i, s.ShapeCount())
		}
		if s.IsGameOver() {
			t.Errorf("Restart %d: expected game-over cleared", i)
		}
		if s.active == nil || !s.active.Static {
			t.Errorf("Restart %d: expected a fresh controlled shape", i)
		}
	}
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	var finals []int
	s := NewSimulation(testConfig(), 8, Callbacks{
		GameOver: func(score int) { finals = append(finals, score) },
	})
	s.Initialize()
	s.score = 120

	// A settled Star parked under the spawn point blocks any new shape.
	blocker := &Shape{Type: TierStar, Pos: core.Vec2{X: 180, Y: 95}, Resting: true}
	s.shapes = append(s.shapes, blocker)

	s.HandleInteraction(180, 0, InteractDown)
	s.Update(tickDt)

	if !s.IsGameOver() {
		t.Fatal("Expected spawn-blocked game over")
	}
	if len(finals) != 1 || finals[0] != 120 {
		t.Fatalf("Expected one game-over callback with pre-spawn score 120, got %v", finals)
	}

	for i := 0; i < 10; i++ {
		s.Update(tickDt)
	}
	if len(finals) != 1 {
		t.Errorf("Expected game-over callback exactly once, got %d calls", len(finals))
	}
}

// overflowSim builds a simulation whose drop-zone line sits just above
// the floor, so a single shape settled on the floor already overflows.
func overflowSim(seed int64) *Simulation {
	cfg := testConfig()
	cfg.Container.DropZoneHeight = 470
	s := NewSimulation(cfg, seed, Callbacks{})
	s.Initialize()
	s.shapes = append(s.shapes, &Shape{
		Type:      TierCircle,
		Pos:       core.Vec2{X: 300, Y: 466},
		RestTimer: 1,
		Resting:   true,
	})
	return s
}

func TestOverflowLineEndsGame(t *testing.T) {
	s := overflowSim(9)

	s.Update(tickDt)

	if !s.IsGameOver() {
		t.Error("Expected overflow game over for a settled shape above the line")
	}
}

func TestOverflowIgnoresFallingShapes(t *testing.T) {
	cfg := testConfig()
	cfg.Container.DropZoneHeight = 470
	s := NewSimulation(cfg, 9, Callbacks{})
	s.Initialize()
	// Still falling fast through the zone: must not end the game.
	s.shapes = append(s.shapes, &Shape{Type: TierCircle, Pos: core.Vec2{X: 300, Y: 200}, Vel: core.Vec2{Y: 300}})

	s.Update(tickDt)

	if s.IsGameOver() {
		t.Error("Expected falling shape in the drop zone to be harmless")
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	s := overflowSim(9)
	s.Update(tickDt)
	if !s.IsGameOver() {
		t.Fatal("Expected game over")
	}

	before := s.shapes[0].Pos
	ticksBefore := s.ticks
	for i := 0; i < 10; i++ {
		s.Update(tickDt)
	}
	if s.shapes[0].Pos != before {
		t.Error("Expected physics frozen after game over")
	}
	if s.ticks != ticksBefore {
		t.Error("Expected tick counter frozen after game over")
	}
}

func TestUpRestartsAfterGameOver(t *testing.T) {
	s := overflowSim(9)
	s.score = 55
	s.Update(tickDt)

	s.HandleInteraction(180, 0, InteractUp)

	if s.IsGameOver() {
		t.Error("Expected click to restart after game over")
	}
	if s.Score() != 0 {
		t.Errorf("Expected score reset on restart, got %d", s.Score())
	}
	if s.ShapeCount() != 0 {
		t.Errorf("Expected container cleared on restart, got %d shapes", s.ShapeCount())
	}
}

func TestDisposeIsTerminal(t *testing.T) {
	s := newTestSim(1)
	s.Dispose()

	s.HandleInteraction(180, 0, InteractDown)
	if s.ShapeCount() != 0 {
		t.Error("Expected interactions ignored after dispose")
	}

	s.Update(tickDt)
	if s.ticks != 0 {
		t.Error("Expected updates ignored after dispose")
	}

	s.Initialize()
	s.Update(tickDt)
	if s.ticks != 0 {
		t.Error("Expected a disposed instance to stay dead after initialize")
	}
}

func TestScoreMonotonic(t *testing.T) {
	var updates []int
	s := NewSimulation(testConfig(), 77, Callbacks{
		ScoreUpdated: func(score int) { updates = append(updates, score) },
	})
	s.Initialize()

	prev := 0
	for i := 0; i < 1800; i++ {
		if i%120 == 0 {
			x := 60 + float64((i/120)%5)*60
			s.HandleInteraction(x, 0, InteractMove)
			s.HandleInteraction(x, 0, InteractDown)
		}
		s.Update(tickDt)
		if s.IsGameOver() {
			break
		}
		if s.Score() < prev {
			t.Fatalf("Score decreased from %d to %d at tick %d", prev, s.Score(), i)
		}
		prev = s.Score()
	}

	for i := 1; i < len(updates); i++ {
		if updates[i] <= updates[i-1] {
			t.Errorf("Expected strictly increasing score callbacks, got %v", updates)
			break
		}
	}
}

func TestDeterministicRuns(t *testing.T) {
	// Two simulations fed the same seed and the same interactions must
	// agree on the full state hash.
	run := func() *Simulation {
		s := newTestSim(42)
		for i := 0; i < 600; i++ {
			switch {
			case i%90 == 10:
				s.HandleInteraction(float64(40+(i%300)), 0, InteractMove)
			case i%90 == 20:
				s.HandleInteraction(s.DropX(), 0, InteractDown)
				s.HandleInteraction(s.DropX(), 0, InteractUp)
			}
			s.Update(tickDt)
		}
		return s
	}

	s1 := run()
	s2 := run()

	snap1 := s1.Snapshot()
	snap2 := s2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if s1.Score() != s2.Score() {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", s1.Score(), s2.Score())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s1 := newTestSim(7)
	for i := 0; i < 300; i++ {
		if i%75 == 0 {
			s1.HandleInteraction(float64(80+i), 0, InteractMove)
			s1.HandleInteraction(float64(80+i), 0, InteractDown)
		}
		s1.Update(tickDt)
	}

	snap := s1.Snapshot()
	s2 := NewSimulation(testConfig(), 0, Callbacks{})
	s2.ApplySnapshot(snap)

	restored := s2.Snapshot()
	if snap.Hash() != restored.Hash() {
		t.Fatalf("Expected restored state to hash identically: %d vs %d", snap.Hash(), restored.Hash())
	}

	// Continue both, including a drop that consumes the shared RNG.
	for i := 0; i < 120; i++ {
		if i == 30 {
			s1.HandleInteraction(200, 0, InteractDown)
			s2.HandleInteraction(200, 0, InteractDown)
		}
		s1.Update(tickDt)
		s2.Update(tickDt)
	}
	h1 := s1.Snapshot()
	h2 := s2.Snapshot()
	if h1.Hash() != h2.Hash() {
		t.Errorf("Expected restored simulation to evolve identically: %d vs %d", h1.Hash(), h2.Hash())
	}
}

func TestContainerFillsToGameOver(t *testing.T) {
	// Dropping everything in one column must eventually trip one of the
	// two game-over triggers, merges notwithstanding.
	s := newTestSim(3)

	for drop := 0; drop < 100 && !s.IsGameOver(); drop++ {
		s.HandleInteraction(180, 0, InteractMove)
		s.HandleInteraction(180, 0, InteractDown)
		for i := 0; i < 90 && !s.IsGameOver(); i++ {
			s.Update(tickDt)
		}
	}

	if !s.IsGameOver() {
		t.Error("Expected a relentlessly filled container to end the game")
	}
}
