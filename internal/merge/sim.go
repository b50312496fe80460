package merge

import (
	"github.com/vovakirdan/shapefall/internal/config"
	"github.com/vovakirdan/shapefall/internal/core"
)

// Interaction identifies one pointer gesture routed into the simulation.
// The zero value is a plain move so position updates need no tagging.
type Interaction int

const (
	InteractMove Interaction = iota
	InteractDown
	InteractUp
	InteractClick
)

// Callbacks notify the host of observable simulation events. Either
// field may be nil.
type Callbacks struct {
	ScoreUpdated func(score int)
	GameOver     func(finalScore int)
}

// Simulation owns the full game state: the shape set, the controlled
// shape, the queued shape, physics, merging, scoring, and game-over
// detection. It is single-threaded; the host must not call methods
// concurrently.
type Simulation struct {
	cfg  config.ShapefallConfig
	diff *config.DifficultyManager
	rng  *simpleRNG
	cb   Callbacks

	shapes []*Shape
	active *Shape // controlled shape, pinned until released
	next   *Shape // queued shape shown in the preview

	dropX    float64
	dragging bool

	score   int
	topTier Tier
	ticks   int

	mergePending bool
	mergeTimer   float64

	gameOver bool
	started  bool
	disposed bool
	debug    bool
}

// NewSimulation creates a simulation with the given configuration and
// deterministic seed. Call Initialize before the first Update.
func NewSimulation(cfg config.ShapefallConfig, seed int64, cb Callbacks) *Simulation {
	if cfg.Container.Width <= 0 || cfg.Container.Height <= 0 {
		cfg = config.DefaultShapefallConfig()
	}
	return &Simulation{
		cfg:   cfg,
		diff:  config.NewDifficultyManager(cfg.Difficulty),
		rng:   newSimpleRNG(seed),
		cb:    cb,
		debug: cfg.Debug.Overlay,
	}
}

// Initialize resets and starts the simulation. A disposed instance
// cannot be revived.
func (s *Simulation) Initialize() {
	if s.disposed {
		return
	}
	s.started = true
	s.reset()
}

// Restart performs a full state reset and continues the game. It is the
// only exit from the game-over state.
func (s *Simulation) Restart() {
	if s.disposed || !s.started {
		return
	}
	s.reset()
}

// Dispose stops all processing permanently. Subsequent calls on the
// instance are no-ops; create a new Simulation instead.
func (s *Simulation) Dispose() {
	s.disposed = true
}

func (s *Simulation) reset() {
	s.shapes = s.shapes[:0]
	s.active = nil
	s.score = 0
	s.topTier = TierCircle
	s.ticks = 0
	s.gameOver = false
	s.dragging = false
	s.mergePending = false
	s.mergeTimer = 0
	s.dropX = s.cfg.Container.Width / 2
	s.next = s.newQueuedShape()
	s.promoteNext()
}

// Score returns the current score.
func (s *Simulation) Score() int { return s.score }

// TopTier returns the highest tier reached this game.
func (s *Simulation) TopTier() Tier { return s.topTier }

// IsGameOver reports whether the simulation is in its terminal state.
func (s *Simulation) IsGameOver() bool { return s.gameOver }

// DropX returns the current horizontal drop position.
func (s *Simulation) DropX() float64 { return s.dropX }

// NextTier returns the tier of the queued shape.
func (s *Simulation) NextTier() Tier {
	if s.next == nil {
		return TierCircle
	}
	return s.next.Type
}

// ShapeCount returns the number of released shapes in the container.
func (s *Simulation) ShapeCount() int { return len(s.shapes) }

// ToggleDebug flips the diagnostic overlay.
func (s *Simulation) ToggleDebug() { s.debug = !s.debug }

// HandleInteraction routes one pointer gesture into the simulation.
// Coordinates are world pixels; y is accepted for interface parity but
// only x steers the drop position.
func (s *Simulation) HandleInteraction(x, y float64, kind Interaction) {
	if s.disposed || !s.started {
		return
	}
	switch kind {
	case InteractMove:
		s.moveActive(x)
	case InteractDown:
		s.dragging = true
		if !s.gameOver && s.active != nil && s.active.Static {
			s.release()
		}
	case InteractUp, InteractClick:
		s.dragging = false
		if s.gameOver {
			s.Restart()
			return
		}
		if s.active != nil && s.active.Static {
			s.release()
		}
	}
}

// moveActive clamps x so the active shape stays fully inside the walls,
// then moves both the stored drop position and the shape itself.
func (s *Simulation) moveActive(x float64) {
	if s.active == nil || !s.active.Static {
		return
	}
	r := s.active.Radius()
	nx := core.ClampF(x, r, s.cfg.Container.Width-r)
	s.dropX = nx
	s.active.Pos.X = nx
}

// release hands the active shape over to physics. The next shape is not
// promoted until the following tick, so one press-release gesture drops
// exactly one shape.
func (s *Simulation) release() {
	sh := s.active
	sh.Static = false
	sh.Vel = core.Vec2{X: 0, Y: s.cfg.Drop.ReleaseSpeed}
	sh.RestTimer = 0
	sh.Resting = false
	s.shapes = append(s.shapes, sh)
	s.active = nil
	if sh.Type > s.topTier {
		s.topTier = sh.Type
	}
}

// Update advances the simulation by dt seconds. The host calls this once
// per frame; dt must already be in seconds.
func (s *Simulation) Update(dt float64) {
	if s.disposed || !s.started || s.gameOver || dt <= 0 {
		return
	}
	s.ticks++

	if s.active == nil {
		s.promoteNext()
		if s.gameOver {
			return
		}
	}

	for _, sh := range s.shapes {
		s.integrate(sh, dt)
		s.applyBounds(sh)
		s.trackRest(sh, dt)
	}
	s.resolveCollisions()
	s.advanceMergeTimer(dt)
	s.checkOverflow()
}

// promoteNext turns the queued shape into the controlled one and rolls
// a replacement. If the fresh shape already overlaps a settled shape at
// its spawn position, the container is full and the game ends.
func (s *Simulation) promoteNext() {
	sh := s.next
	sh.Static = true
	r := sh.Radius()
	sh.Pos = core.Vec2{
		X: core.ClampF(s.dropX, r, s.cfg.Container.Width-r),
		Y: s.cfg.Drop.SpawnMargin + r,
	}
	s.dropX = sh.Pos.X
	s.active = sh
	s.next = s.newQueuedShape()

	for _, other := range s.shapes {
		if other.Resting && s.collides(sh, other, false) {
			s.triggerGameOver()
			return
		}
	}
}

func (s *Simulation) newQueuedShape() *Shape {
	weights := s.diff.SpawnWeights(s.spawnWeights(), s.score, s.ticks)
	return &Shape{Type: rollTier(s.rng, weights), Static: true}
}

func (s *Simulation) spawnWeights() []int {
	if len(s.cfg.Spawn.Weights) == 0 {
		return defaultSpawnWeights
	}
	return s.cfg.Spawn.Weights
}

// overflowLine returns the game-over threshold for the current
// difficulty level, measured from the container top.
func (s *Simulation) overflowLine() float64 {
	return s.diff.OverflowLine(s.cfg.Container.DropZoneHeight, s.score, s.ticks)
}

// checkOverflow ends the game when a settled shape's top edge rises
// above the drop-zone line.
func (s *Simulation) checkOverflow() {
	line := s.overflowLine()
	for _, sh := range s.shapes {
		if sh.Resting && sh.Top() < line {
			s.triggerGameOver()
			return
		}
	}
}

func (s *Simulation) triggerGameOver() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	if s.cb.GameOver != nil {
		s.cb.GameOver(s.score)
	}
}

func (s *Simulation) addScore(points int) {
	s.score += points
	if s.cb.ScoreUpdated != nil {
		s.cb.ScoreUpdated(s.score)
	}
}

// scheduleMergeCheck arms the cooperative merge timer unless one is
// already pending.
func (s *Simulation) scheduleMergeCheck() {
	if s.mergePending {
		return
	}
	s.mergePending = true
	s.mergeTimer = s.cfg.Merge.CheckDelay
}

// advanceMergeTimer counts the pending check down by dt and runs the
// merge pass on expiry. A pass that fused anything re-arms the timer so
// cascades keep flowing.
func (s *Simulation) advanceMergeTimer(dt float64) {
	if !s.mergePending {
		return
	}
	s.mergeTimer -= dt
	if s.mergeTimer > 0 {
		return
	}
	s.mergePending = false
	if s.runMergePass() {
		s.scheduleMergeCheck()
	}
}
