package merge

import (
	"math"

	"github.com/vovakirdan/shapefall/internal/core"
)

// Fixed physics coefficients. Gravity, friction, restitution and the
// velocity caps live in the config; these tuning constants do not.
const (
	// frictionSnapSpeed is the horizontal speed below which ground
	// friction snaps velocity.x to exactly zero.
	frictionSnapSpeed = 1.0

	// slowSpinSpeed marks a shape as near-still; below it on both axes
	// the spin gets an extra damping factor.
	slowSpinSpeed   = 20.0
	slowSpinDamping = 0.97

	// restSpeed and restDelay define settling: both velocity components
	// under restSpeed for restDelay seconds marks the shape resting.
	restSpeed = 5.0
	restDelay = 0.2

	// floorBounceSpeed is the minimum impact speed that still bounces;
	// slower contacts settle instead.
	floorBounceSpeed = 10.0

	// Spin transfer coefficients for wall, floor and shape contacts.
	wallSpin          = 0.005
	floorSpin         = 0.005
	collisionSpin     = 0.0015
	staticReflectSpin = 0.003
)

// integrate advances one dynamic shape by dt seconds: gravity, ground
// friction, angular damping, position integration, then velocity caps.
func (s *Simulation) integrate(sh *Shape, dt float64) {
	if sh.Static {
		return
	}
	phys := &s.cfg.Physics

	sh.Vel.Y += phys.Gravity * dt

	// Ground friction applies while the bottom edge is within a pixel
	// of the floor.
	if sh.Bottom() >= s.cfg.Container.Height-1 {
		sh.Vel.X *= 1 - phys.Friction
		if math.Abs(sh.Vel.X) < frictionSnapSpeed {
			sh.Vel.X = 0
		}
		sh.AngularVel *= 1 - phys.Friction*3
	}

	sh.AngularVel *= math.Pow(phys.AngularDamping, dt)
	if math.Abs(sh.Vel.X) < slowSpinSpeed && math.Abs(sh.Vel.Y) < slowSpinSpeed {
		sh.AngularVel *= slowSpinDamping
	}

	sh.Pos = sh.Pos.Add(sh.Vel.Scale(dt))
	sh.Rotation = math.Mod(sh.Rotation+sh.AngularVel*dt, 2*math.Pi)

	if speed := sh.Vel.Length(); speed > phys.MaxVelocity {
		sh.Vel = sh.Vel.Scale(phys.MaxVelocity / speed)
	}
	sh.AngularVel = core.ClampF(sh.AngularVel, -phys.MaxAngularVelocity, phys.MaxAngularVelocity)
}

// applyBounds keeps a dynamic shape inside the container. Walls reflect
// with restitution and impart spin; slow floor contacts settle rather
// than bounce.
func (s *Simulation) applyBounds(sh *Shape) {
	if sh.Static {
		return
	}
	r := sh.Radius()
	w := s.cfg.Container.Width
	h := s.cfg.Container.Height
	e := s.cfg.Physics.Restitution

	if sh.Pos.X-r < 0 {
		sh.Pos.X = r
		sh.Vel.X = -sh.Vel.X * e
		sh.AngularVel += sh.Vel.Y * wallSpin
	} else if sh.Pos.X+r > w {
		sh.Pos.X = w - r
		sh.Vel.X = -sh.Vel.X * e
		sh.AngularVel -= sh.Vel.Y * wallSpin
	}

	if sh.Pos.Y+r > h {
		sh.Pos.Y = h - r
		if sh.Vel.Y > floorBounceSpeed {
			sh.Vel.Y = -sh.Vel.Y * e
			sh.AngularVel += sh.Vel.X * floorSpin
		} else {
			sh.Vel.Y = 0
		}
	}
}

// trackRest accumulates time spent below the rest threshold. A shape
// that newly settles schedules a merge check.
func (s *Simulation) trackRest(sh *Shape, dt float64) {
	if sh.Static {
		return
	}
	if math.Abs(sh.Vel.X) < restSpeed && math.Abs(sh.Vel.Y) < restSpeed {
		sh.RestTimer += dt
		if sh.RestTimer > restDelay && !sh.Resting {
			sh.Resting = true
			s.scheduleMergeCheck()
		}
		return
	}
	sh.RestTimer = 0
	sh.Resting = false
}

// collides reports circle-approximate overlap between two shapes. Each
// radius is scaled by its tier's collision modifier; mergeCheck widens
// the combined radius by the merge threshold so near-touching same-tier
// shapes still qualify for fusion.
func (s *Simulation) collides(a, b *Shape, mergeCheck bool) bool {
	combined := a.Radius()*a.Type.CollisionModifier() + b.Radius()*b.Type.CollisionModifier()
	if mergeCheck {
		combined *= s.cfg.Merge.Threshold
	}
	return a.Pos.Sub(b.Pos).LengthSquared() < combined*combined
}

// resolveCollisions handles every unordered pair once, then the active
// shape against the field so the stack cannot swallow a controlled
// shape hovering at the spawn line.
func (s *Simulation) resolveCollisions() {
	for i := 0; i < len(s.shapes); i++ {
		for j := i + 1; j < len(s.shapes); j++ {
			s.resolvePair(s.shapes[i], s.shapes[j])
		}
	}
	if s.active != nil {
		for _, sh := range s.shapes {
			s.resolvePair(sh, s.active)
		}
	}
}

// resolvePair separates two overlapping shapes and exchanges impulses.
// Coincident centers are skipped outright; there is no meaningful
// normal to resolve along.
func (s *Simulation) resolvePair(a, b *Shape) {
	if !s.collides(a, b, false) {
		return
	}
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Length()
	if dist == 0 {
		return
	}
	normal := delta.Scale(1 / dist)

	combined := a.Radius()*a.Type.CollisionModifier() + b.Radius()*b.Type.CollisionModifier()
	penetration := (combined - dist) / 2
	if !a.Static {
		a.Pos = a.Pos.Sub(normal.Scale(penetration))
	}
	if !b.Static {
		b.Pos = b.Pos.Add(normal.Scale(penetration))
	}

	relVel := b.Vel.Sub(a.Vel)
	velAlongNormal := relVel.Dot(normal)
	if velAlongNormal > 0 {
		return // already separating
	}
	e := s.cfg.Physics.Restitution

	if !a.Static && !b.Static {
		impulse := -(1 + e) * velAlongNormal
		half := normal.Scale(impulse / 2)
		a.Vel = a.Vel.Sub(half)
		b.Vel = b.Vel.Add(half)

		spin := normal.Cross(relVel) * collisionSpin
		a.AngularVel += spin
		b.AngularVel -= spin
		return
	}

	// One side is pinned: reflect the dynamic shape off it.
	dyn := a
	if a.Static {
		dyn = b
	}
	reflected := dyn.Vel.Sub(normal.Scale(2 * dyn.Vel.Dot(normal)))
	dyn.Vel = reflected.Scale(e)
	dyn.AngularVel += dyn.Vel.Cross(normal) * staticReflectSpin
}
