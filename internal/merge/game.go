package merge

import (
	"fmt"

	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
)

// scoreFlashTicks is how long the "+N" award popup stays on screen.
const scoreFlashTicks = 45

var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game adapts the simulation to the platform loop: it converts input
// frames into interactions, fixes the timestep from the tick rate, and
// layers pause and score-flash presentation on top of the raw state.
type Game struct {
	cfg     config.ShapefallConfig
	sim     *Simulation
	runtime core.RuntimeConfig
	view    viewport
	paused  bool

	prevScore  int
	lastAward  int
	flashTicks int
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shapefall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shapefall"
}

// Reset initializes or restarts the game with a fresh simulation.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadShapefall(configPath)
	if err != nil {
		cfg = config.DefaultShapefallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShapefallPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	g.cfg = cfg
	g.runtime = rc
	g.paused = false
	g.prevScore = 0
	g.lastAward = 0
	g.flashTicks = 0
	g.view = layoutViewport(cfg.Container.Width, cfg.Container.Height, rc.ScreenW, rc.ScreenH)

	g.sim = NewSimulation(cfg, rc.Seed, Callbacks{
		ScoreUpdated: func(int) { g.flashTicks = scoreFlashTicks },
	})
	g.sim.Initialize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionDebug) {
		g.sim.ToggleDebug()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := 1.0 / float64(core.Max(g.runtime.TickRate, 1))

	if in.Has(core.ActionLeft) {
		g.sim.HandleInteraction(g.sim.DropX()-g.cfg.Drop.MoveSpeed*dt, 0, InteractMove)
	}
	if in.Has(core.ActionRight) {
		g.sim.HandleInteraction(g.sim.DropX()+g.cfg.Drop.MoveSpeed*dt, 0, InteractMove)
	}
	if in.Has(core.ActionDrop) {
		if g.sim.IsGameOver() {
			g.sim.Restart()
		} else {
			x := g.sim.DropX()
			g.sim.HandleInteraction(x, 0, InteractDown)
			g.sim.HandleInteraction(x, 0, InteractUp)
		}
	}
	if in.Has(core.ActionRestart) {
		g.sim.Restart()
	}

	if p := in.Pointer; p.Kind != core.PointerNone && g.view.valid() {
		wx, wy := g.view.cellToWorld(p.X, p.Y)
		switch p.Kind {
		case core.PointerMove:
			g.sim.HandleInteraction(wx, wy, InteractMove)
		case core.PointerDown:
			// Aim at the press location before releasing so a click
			// drops where the cursor is, not where it last was.
			g.sim.HandleInteraction(wx, wy, InteractMove)
			g.sim.HandleInteraction(wx, wy, InteractDown)
		case core.PointerUp:
			g.sim.HandleInteraction(wx, wy, InteractUp)
		}
	}

	g.sim.Update(dt)

	if score := g.sim.Score(); score > g.prevScore {
		g.lastAward = score - g.prevScore
	}
	g.prevScore = g.sim.Score()
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	return core.StepResult{State: g.State()}
}

// Render draws the simulation plus adapter-level overlays.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		return
	}
	g.view = layoutViewport(g.cfg.Container.Width, g.cfg.Container.Height, dst.Width(), dst.Height())
	g.sim.Render(dst)

	if g.flashTicks > 0 && g.lastAward > 0 {
		dst.DrawTextColored(2, 1, fmt.Sprintf(" +%d ", g.lastAward), core.ColorBrightYellow)
	}
	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		TopTier:  int(g.sim.TopTier()),
		GameOver: g.sim.IsGameOver(),
		Paused:   g.paused,
	}
}

// Dispose permanently stops the underlying simulation.
func (g *Game) Dispose() {
	if g.sim != nil {
		g.sim.Dispose()
	}
}
