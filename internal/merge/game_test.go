package merge

import (
	"strings"
	"testing"

	"github.com/vovakirdan/shapefall/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(testRuntime(seed))
	return g
}

func TestResetInitializesState(t *testing.T) {
	g := newTestGame(5)

	if g.ID() != "shapefall" {
		t.Errorf("Expected ID 'shapefall', got %q", g.ID())
	}
	if g.Title() != "Shapefall" {
		t.Errorf("Expected title 'Shapefall', got %q", g.Title())
	}

	st := g.State()
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("Expected clean initial state, got %+v", st)
	}
	if g.sim == nil {
		t.Fatal("Expected reset to build a simulation")
	}
}

func TestActionDropReleasesShape(t *testing.T) {
	g := newTestGame(5)

	g.Step(frameWith(core.ActionDrop))

	if g.sim.ShapeCount() != 1 {
		t.Errorf("Expected 1 released shape, got %d", g.sim.ShapeCount())
	}
}

func TestKeyboardAimMoves(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())

	before := g.sim.DropX()
	for i := 0; i < 10; i++ {
		g.Step(frameWith(core.ActionLeft))
	}
	if g.sim.DropX() >= before {
		t.Errorf("Expected left input to move the drop position left of %v, got %v", before, g.sim.DropX())
	}

	after := g.sim.DropX()
	for i := 0; i < 5; i++ {
		g.Step(frameWith(core.ActionRight))
	}
	if g.sim.DropX() <= after {
		t.Errorf("Expected right input to move the drop position right of %v, got %v", after, g.sim.DropX())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())

	res := g.Step(frameWith(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("Expected pause action to pause the game")
	}

	ticks := g.sim.ticks
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.sim.ticks != ticks {
		t.Error("Expected simulation frozen while paused")
	}

	res = g.Step(frameWith(core.ActionPause))
	if res.State.Paused {
		t.Fatal("Expected second pause action to resume")
	}
	g.Step(core.NewInputFrame())
	if g.sim.ticks == ticks {
		t.Error("Expected simulation to advance after resume")
	}
}

func TestPointerAimsAndDrops(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())

	if !g.view.valid() {
		t.Fatal("Expected a valid viewport on an 80x24 screen")
	}

	// Press at the leftmost interior cell: the drop position must end
	// up in the left half of the container and the shape must release.
	f := core.NewInputFrame()
	f.SetPointer(core.PointerDown, g.view.originX, g.view.originY+2)
	g.Step(f)

	if g.sim.DropX() >= g.cfg.Container.Width/2 {
		t.Errorf("Expected click near the left wall to aim left, got drop x %v", g.sim.DropX())
	}
	if g.sim.ShapeCount() != 1 {
		t.Errorf("Expected pointer press to release the shape, got %d shapes", g.sim.ShapeCount())
	}
}

func TestRestartActionResets(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())
	g.Step(frameWith(core.ActionDrop))
	g.sim.score = 75

	g.Step(frameWith(core.ActionRestart))

	st := g.State()
	if st.Score != 0 {
		t.Errorf("Expected score cleared on restart, got %d", st.Score)
	}
	if g.sim.ShapeCount() != 0 {
		t.Errorf("Expected container cleared on restart, got %d shapes", g.sim.ShapeCount())
	}
}

func TestDropRestartsAfterGameOver(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())
	g.sim.triggerGameOver()

	res := g.Step(frameWith(core.ActionDrop))

	if res.State.GameOver {
		t.Error("Expected drop action to restart a finished game")
	}
	if res.State.Score != 0 {
		t.Errorf("Expected fresh score after restart, got %d", res.State.Score)
	}
}

func TestStateReportsTopTier(t *testing.T) {
	g := newTestGame(5)
	g.sim.topTier = TierTrapezoid

	if got := g.State().TopTier; got != int(TierTrapezoid) {
		t.Errorf("Expected top tier %d, got %d", int(TierTrapezoid), got)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (*Game, core.GameState) {
		g := newTestGame(42)
		var last core.StepResult
		for i := 0; i < 400; i++ {
			f := core.NewInputFrame()
			if i%60 == 5 {
				f.Set(core.ActionLeft)
			}
			if i%90 == 10 {
				f.Set(core.ActionDrop)
			}
			last = g.Step(f)
		}
		return g, last.State
	}

	g1, st1 := run()
	g2, st2 := run()

	if st1 != st2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", st1, st2)
	}
	snap1, snap2 := g1.sim.Snapshot(), g2.sim.Snapshot()
	if h1, h2 := snap1.Hash(), snap2.Hash(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestDisposeStopsStepping(t *testing.T) {
	g := newTestGame(5)
	g.Dispose()

	g.Step(frameWith(core.ActionDrop))

	if g.sim.ticks != 0 {
		t.Error("Expected no simulation progress after dispose")
	}
}

func screenContains(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func TestRenderShowsHUDAndOverlays(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !screenContains(screen, "Score:") {
		t.Error("Expected HUD score line on screen")
	}

	g.Step(frameWith(core.ActionPause))
	g.Render(screen)
	if !screenContains(screen, "PAUSED") {
		t.Error("Expected pause overlay on screen")
	}
	g.Step(frameWith(core.ActionPause))

	g.sim.triggerGameOver()
	g.Render(screen)
	if !screenContains(screen, "GAME OVER") {
		t.Error("Expected game over banner on screen")
	}
}

func TestRenderScoreFlash(t *testing.T) {
	g := newTestGame(5)
	g.Step(core.NewInputFrame())
	g.lastAward = 25
	g.flashTicks = scoreFlashTicks
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !screenContains(screen, "+25") {
		t.Error("Expected score flash on screen")
	}
}
