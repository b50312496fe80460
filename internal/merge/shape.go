// Package merge implements the shapefall simulation: a falling-and-merging
// game where circular-bodied shapes drop into a container, collide under
// simple rigid-body physics, and fuse into the next tier of the shape
// hierarchy when two of the same kind touch.
package merge

import "github.com/vovakirdan/shapefall/internal/core"

// Tier is a shape's position in the merge hierarchy. Two shapes of the
// same tier fuse into one shape of the next tier; TierStar is terminal.
type Tier int

const (
	TierCircle Tier = iota
	TierSquare
	TierTriangle
	TierTrapezoid
	TierPentagon
	TierRhombus
	TierOctagon
	TierStar

	tierCount
)

// Per-tier lookup tables. Indexing out of range is a programming error
// and panics, matching the closed-set contract of Tier.
var tierNames = [tierCount]string{
	"Circle", "Square", "Triangle", "Trapezoid",
	"Pentagon", "Rhombus", "Octagon", "Star",
}

var tierRadii = [tierCount]float64{14, 20, 26, 33, 41, 50, 61, 74}

var tierPoints = [tierCount]int{0, 10, 25, 50, 100, 200, 400, 800}

var tierColors = [tierCount]core.Color{
	core.ColorBrightCyan, core.ColorBrightGreen, core.ColorBrightYellow,
	core.ColorOrange, core.ColorBrightMagenta, core.ColorBrightRed,
	core.ColorBrightBlue, core.ColorBrightWhite,
}

var tierGlyphs = [tierCount]rune{'●', '■', '▲', '▼', '⬟', '◆', '⬢', '★'}

// Triangles get a collision boost to compensate for their visually
// smaller circumscribed circle.
var tierModifiers = [tierCount]float64{1.0, 1.0, 1.1, 1.0, 1.0, 1.0, 1.0, 1.0}

func (t Tier) String() string { return tierNames[t] }

// Radius returns the collision radius basis in world pixels.
func (t Tier) Radius() float64 { return tierRadii[t] }

// Points returns the score awarded when a fusion produces this tier.
func (t Tier) Points() int { return tierPoints[t] }

// Color returns the tier's display color.
func (t Tier) Color() core.Color { return tierColors[t] }

// Glyph returns the rune used to draw the shape's body.
func (t Tier) Glyph() rune { return tierGlyphs[t] }

// CollisionModifier scales the tier's radius during collision tests.
func (t Tier) CollisionModifier() float64 { return tierModifiers[t] }

// Successor returns the tier produced by fusing two shapes of this tier.
// The second return is false for the terminal tier.
func (t Tier) Successor() (Tier, bool) {
	if t >= TierStar {
		return t, false
	}
	return t + 1, true
}

// Shape is one body in the simulation. It is a complete value: every
// field is always present and meaningful, whatever state the shape is in.
type Shape struct {
	Type       Tier
	Pos        core.Vec2
	Vel        core.Vec2
	Rotation   float64 // radians
	AngularVel float64 // radians per second

	// Static shapes are pinned: the active shape follows the player
	// until released.
	Static bool

	// Rest tracking. A shape is resting once both velocity components
	// have stayed below the rest threshold long enough.
	RestTimer float64
	Resting   bool

	// MergeCandidate marks shapes that passed the lenient overlap test
	// in the latest merge pass; render uses it for the debug overlay.
	MergeCandidate bool
}

// Radius returns the shape's collision radius basis.
func (s *Shape) Radius() float64 { return s.Type.Radius() }

// Bottom returns the world y of the shape's lowest point.
func (s *Shape) Bottom() float64 { return s.Pos.Y + s.Type.Radius() }

// Top returns the world y of the shape's highest point.
func (s *Shape) Top() float64 { return s.Pos.Y - s.Type.Radius() }

// defaultSpawnWeights is used when the config lists no weights.
var defaultSpawnWeights = []int{45, 30, 15, 10}

// rollTier picks a spawn tier from the weighted distribution. Weights
// index tiers from TierCircle up; tiers beyond the list never spawn.
func rollTier(rng *simpleRNG, weights []int) Tier {
	if len(weights) == 0 {
		weights = defaultSpawnWeights
	}
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return TierCircle
	}
	roll := rng.intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		roll -= w
		if roll < 0 {
			return Tier(i)
		}
	}
	return TierCircle
}
