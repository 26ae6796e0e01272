package snek

import (
	"github.com/pkg/errors"

	"snek/internal/geom"
)

// TargetKind enumerates what a snek head can be tested against.
type TargetKind int

const (
	TargetSelf TargetKind = iota
	TargetActor
	TargetBoundary
	TargetPills
	TargetExit
)

// Target is one collision target. Only the field matching Kind is read.
type Target struct {
	Kind     TargetKind
	Actor    *Snek
	Boundary *Boundary
	Pills    []Pill
	Exit     *Exit
}

func Self() Target { return Target{Kind: TargetSelf} }
func Against(other *Snek) Target { return Target{Kind: TargetActor, Actor: other} }
func Within(b *Boundary) Target { return Target{Kind: TargetBoundary, Boundary: b} }
func PillsAt(pills []Pill) Target { return Target{Kind: TargetPills, Pills: pills} }
func ExitAt(e *Exit) Target { return Target{Kind: TargetExit, Exit: e} }

// Hit is the uniform result of a collision test. Index is the matched pill
// for pill targets and -1 otherwise.
type Hit struct {
	Colliding bool
	Index     int
}

var miss = Hit{Index: -1}

// Collide tests the head of s against t.
func Collide(s *Snek, t Target) Hit {
	head := s.Head()
	h1, h2 := s.Direction().Probe(head, ProbeHalfWidth)

	switch t.Kind {
	case TargetSelf:
		pts := s.path.Points()
		return hitIf(segmentsHit(pts[:len(pts)-2], h1, h2))
	case TargetActor:
		return hitIf(segmentsHit(t.Actor.path.Points(), h1, h2))
	case TargetBoundary:
		safe := t.Boundary.Safe()
		return hitIf(!safe.Contains(h1) || !safe.Contains(h2))
	case TargetPills:
		for i, p := range t.Pills {
			if p.Contains(head) || p.Contains(h1) || p.Contains(h2) {
				return Hit{Colliding: true, Index: i}
			}
		}
		return miss
	case TargetExit:
		return hitIf(t.Exit.Contains(head) || t.Exit.Contains(h1) || t.Exit.Contains(h2))
	}
	panic(errors.Errorf("snek: invalid collision target %d", int(t.Kind)))
}

// segmentsHit reports whether either probe point lies inside the thickened
// rect of any segment of pts.
func segmentsHit(pts []geom.Point, h1, h2 geom.Point) bool {
	for i := 1; i < len(pts); i++ {
		r := geom.SegmentRect(pts[i-1], pts[i], SegmentHalfWidth)
		if r.Contains(h1) || r.Contains(h2) {
			return true
		}
	}
	return false
}

func hitIf(ok bool) Hit {
	if ok {
		return Hit{Colliding: true, Index: -1}
	}
	return miss
}
