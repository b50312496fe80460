package merge

import (
	"math"

	"github.com/vovakirdan/shapefall/internal/core"
)

// Snapshot contains the complete simulation state for determinism
// checks and save/restore. Uses primitive types only for stable
// serialization.
type Snapshot struct {
	Tick         uint64
	Score        int
	TopTier      int
	GameOver     bool
	DropX        float64
	MergePending bool
	MergeTimer   float64

	// Controlled and queued shapes. ActiveTier is -1 while the active
	// slot is empty; the active shape's position derives from DropX.
	ActiveTier int
	NextTier   int

	// Released shapes (each shape is 7 floats: x, y, vx, vy, rotation,
	// angular velocity, rest timer).
	ShapeCount int
	TierData   []int
	FlagData   []int // bit 0 = resting, bit 1 = merge candidate
	BodyData   []float64

	// RNG state for the spawn sequence
	RNGState uint64
}

// Snapshot returns the current simulation state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	tierData := make([]int, len(s.shapes))
	flagData := make([]int, len(s.shapes))
	bodyData := make([]float64, len(s.shapes)*7)
	for i, sh := range s.shapes {
		tierData[i] = int(sh.Type)
		if sh.Resting {
			flagData[i] |= 1
		}
		if sh.MergeCandidate {
			flagData[i] |= 2
		}
		idx := i * 7
		bodyData[idx] = sh.Pos.X
		bodyData[idx+1] = sh.Pos.Y
		bodyData[idx+2] = sh.Vel.X
		bodyData[idx+3] = sh.Vel.Y
		bodyData[idx+4] = sh.Rotation
		bodyData[idx+5] = sh.AngularVel
		bodyData[idx+6] = sh.RestTimer
	}

	activeTier := -1
	if s.active != nil {
		activeTier = int(s.active.Type)
	}
	nextTier := 0
	if s.next != nil {
		nextTier = int(s.next.Type)
	}

	return Snapshot{
		Tick:         uint64(s.ticks), //#nosec G115 -- tick count is always positive
		Score:        s.score,
		TopTier:      int(s.topTier),
		GameOver:     s.gameOver,
		DropX:        s.dropX,
		MergePending: s.mergePending,
		MergeTimer:   s.mergeTimer,

		ActiveTier: activeTier,
		NextTier:   nextTier,

		ShapeCount: len(s.shapes),
		TierData:   tierData,
		FlagData:   flagData,
		BodyData:   bodyData,

		RNGState: s.rng.state,
	}
}

// ApplySnapshot restores simulation state from a snapshot.
func (s *Simulation) ApplySnapshot(snap Snapshot) {
	s.ticks = int(snap.Tick) //#nosec G115 -- tick count fits in int
	s.score = snap.Score
	s.topTier = Tier(snap.TopTier)
	s.gameOver = snap.GameOver
	s.dropX = snap.DropX
	s.mergePending = snap.MergePending
	s.mergeTimer = snap.MergeTimer

	s.shapes = make([]*Shape, 0, snap.ShapeCount)
	for i := range snap.ShapeCount {
		idx := i * 7
		if i >= len(snap.TierData) || i >= len(snap.FlagData) || idx+6 >= len(snap.BodyData) {
			break
		}
		s.shapes = append(s.shapes, &Shape{
			Type:           Tier(snap.TierData[i]),
			Pos:            core.Vec2{X: snap.BodyData[idx], Y: snap.BodyData[idx+1]},
			Vel:            core.Vec2{X: snap.BodyData[idx+2], Y: snap.BodyData[idx+3]},
			Rotation:       snap.BodyData[idx+4],
			AngularVel:     snap.BodyData[idx+5],
			RestTimer:      snap.BodyData[idx+6],
			Resting:        snap.FlagData[i]&1 != 0,
			MergeCandidate: snap.FlagData[i]&2 != 0,
		})
	}

	if snap.ActiveTier >= 0 {
		sh := &Shape{Type: Tier(snap.ActiveTier), Static: true}
		r := sh.Radius()
		sh.Pos = core.Vec2{
			X: core.ClampF(snap.DropX, r, s.cfg.Container.Width-r),
			Y: s.cfg.Drop.SpawnMargin + r,
		}
		s.active = sh
	} else {
		s.active = nil
	}
	s.next = &Shape{Type: Tier(snap.NextTier), Static: true}

	s.rng.state = snap.RNGState
	s.started = true
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TopTier) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.DropX)
	if snap.MergePending {
		h = h*31 + 1
	}
	h = h*31 + math.Float64bits(snap.MergeTimer)
	h = h*31 + uint64(snap.ActiveTier+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextTier)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShapeCount)   //#nosec G115 -- hash computation

	for _, v := range snap.TierData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.FlagData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BodyData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + snap.RNGState

	return h
}
