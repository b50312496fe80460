package merge

import "github.com/vovakirdan/shapefall/internal/core"

// runMergePass fuses every eligible same-tier pair once and reports
// whether anything fused. Pairs are collected before any mutation, then
// processed in discovery order; a shape claimed by an earlier pair is
// skipped for the rest of the pass, so no shape fuses twice in one
// check.
func (s *Simulation) runMergePass() bool {
	for _, sh := range s.shapes {
		sh.MergeCandidate = false
	}

	type pair struct{ a, b int }
	var pairs []pair
	for i := 0; i < len(s.shapes); i++ {
		for j := i + 1; j < len(s.shapes); j++ {
			if s.shapes[i].Type != s.shapes[j].Type {
				continue
			}
			if !s.collides(s.shapes[i], s.shapes[j], true) {
				continue
			}
			pairs = append(pairs, pair{i, j})
			s.shapes[i].MergeCandidate = true
			s.shapes[j].MergeCandidate = true
		}
	}
	if len(pairs) == 0 {
		return false
	}

	claimed := make([]bool, len(s.shapes))
	removed := make([]bool, len(s.shapes))
	fused := false
	for _, p := range pairs {
		if claimed[p.a] || claimed[p.b] {
			continue
		}
		claimed[p.a] = true
		claimed[p.b] = true
		removed[p.a] = true
		removed[p.b] = true

		a := s.shapes[p.a]
		b := s.shapes[p.b]
		if successor, ok := a.Type.Successor(); ok {
			s.spawnFused(successor, a.Pos.Midpoint(b.Pos))
			s.addScore(successor.Points())
		} else {
			// Terminal tier: the pair annihilates for points alone.
			s.addScore(a.Type.Points())
		}
		fused = true
	}

	// Compact in place. Fusion products were appended past the removed
	// markers and survive untouched.
	kept := s.shapes[:0]
	for i, sh := range s.shapes {
		if i < len(removed) && removed[i] {
			continue
		}
		kept = append(kept, sh)
	}
	s.shapes = kept
	return fused
}

// spawnFused drops a fusion product into the field: next tier, source
// midpoint, zero velocity, immediately subject to physics.
func (s *Simulation) spawnFused(tier Tier, pos core.Vec2) {
	s.shapes = append(s.shapes, &Shape{Type: tier, Pos: pos})
	if tier > s.topTier {
		s.topTier = tier
	}
}
