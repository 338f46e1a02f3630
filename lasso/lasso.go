/*
Package lasso implements lasso polygons for selecting and erasing ink.

A Lasso grows point by point while the user drags a stylus. It is implicitly
closed by an edge from its last point back to its first one. Lassos answer
two questions: is a point inside (Contains), and which parts of a stroke are
inside, crossed by, or outside the lasso (HitTest).

A lasso created by NewSingleLoop stops growing as soon as its boundary
intersects itself: the part in front of the intersection is cut away, and
every further point is rejected.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package lasso

import (
	"fmt"
	"math"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkhit.lasso'
func tracer() tracing.Trace {
	return tracing.Select("inkhit.lasso")
}

// MinDistance is the distance in x and y a point has to keep from the
// previous lasso point to be accepted.
var MinDistance = 1.0

// Lasso is a polygon built incrementally from points.
type Lasso struct {
	points []inkhit.Pair
	bounds inkhit.Rect
	dirty  bool // incremental users have to start over
	policy filterPolicy
}

// filterPolicy decides whether a point is dropped instead of appended.
type filterPolicy interface {
	filter(l *Lasso, p inkhit.Pair) bool
}

type distanceFilter struct{}

func (distanceFilter) filter(l *Lasso, p inkhit.Pair) bool {
	return l.tooClose(p)
}

// New creates an empty lasso.
func New() *Lasso {
	return &Lasso{bounds: inkhit.EmptyRect(), policy: distanceFilter{}}
}

// FromPoints creates a lasso from a list of points, without filtering any
// of them.
func FromPoints(points []inkhit.Pair) *Lasso {
	l := New()
	l.points = make([]inkhit.Pair, len(points))
	copy(l.points, points)
	l.bounds = inkhit.BoundsOf(l.points)
	return l
}

// AddPoint appends p unless it is filtered. It returns true if p has been
// appended.
func (l *Lasso) AddPoint(p inkhit.Pair) bool {
	if l.Filter(p) {
		return false
	}
	l.points = append(l.points, p)
	l.bounds = l.bounds.Extend(p)
	return true
}

// AddPoints appends a sequence of points, filtering each of them.
// It returns the number of points appended.
func (l *Lasso) AddPoints(points []inkhit.Pair) int {
	n := 0
	for _, p := range points {
		if l.AddPoint(p) {
			n++
		}
	}
	return n
}

// Filter is a predicate: would p be dropped by AddPoint?
func (l *Lasso) Filter(p inkhit.Pair) bool {
	return l.policy.filter(l, p)
}

// tooClose checks p against the last point. The very first point is
// never filtered.
func (l *Lasso) tooClose(p inkhit.Pair) bool {
	if len(l.points) == 0 {
		return false
	}
	last := l.points[len(l.points)-1]
	return math.Abs(last.X()-p.X()) < MinDistance && math.Abs(last.Y()-p.Y()) < MinDistance
}

// Points returns the lasso points. Clients must not modify the slice.
func (l *Lasso) Points() []inkhit.Pair {
	return l.points
}

// PointCount returns the number of lasso points.
func (l *Lasso) PointCount() int {
	return len(l.points)
}

// Bounds returns the bounding box of the lasso points.
func (l *Lasso) Bounds() inkhit.Rect {
	return l.bounds
}

// IsEmpty is a predicate: does the lasso enclose no area, i.e. does it have
// less than three points?
func (l *Lasso) IsEmpty() bool {
	return len(l.points) < 3
}

// IsIncrementalLassoDirty is a predicate: has the lasso been changed in a way
// other than by appending points since the flag was last cleared?
func (l *Lasso) IsIncrementalLassoDirty() bool {
	return l.dirty
}

// SetIncrementalLassoDirty sets or clears the dirty flag.
func (l *Lasso) SetIncrementalLassoDirty(dirty bool) {
	l.dirty = dirty
}

// IsClosed is a predicate: has a single-loop lasso completed its loop?
// Plain lassos are never closed.
func (l *Lasso) IsClosed() bool {
	if sl, ok := l.policy.(*singleLoop); ok {
		return sl.hasLoop
	}
	return false
}

// Contains is a predicate: is p inside the lasso?
//
// This is an even-odd crossing-number test with a ray running from p to the
// left. Points on a lasso vertex or on a horizontal lasso edge are inside,
// unless the crossing of the implicit closing edge already lies on p.
// All comparisons tolerate floating point noise.
func (l *Lasso) Contains(p inkhit.Pair) bool {
	if l.IsEmpty() || !l.bounds.Contains(p) {
		return false
	}
	n := len(l.points)
	// find out whether the lasso is coming from above or below p's scan line,
	// skipping vertices on the scan line
	higher := false
	for i := n - 1; i >= 0; i-- {
		if !inkhit.AreClose(l.points[i].Y(), p.Y()) {
			higher = p.Y() < l.points[i].Y()
			break
		}
	}
	inside, onClosingEdge := false, false
	prev := l.points[n-1]
	for i, q := range l.points {
		if inkhit.AreClose(q.Y(), p.Y()) {
			if inkhit.AreClose(q.X(), p.X()) {
				inside = true // p is a vertex
				break
			}
			if i != 0 && inkhit.AreClose(prev.Y(), p.Y()) &&
				inkhit.GreaterThanOrClose(p.X(), math.Min(prev.X(), q.X())) &&
				inkhit.LessThanOrClose(p.X(), math.Max(prev.X(), q.X())) {
				return true // p is on a horizontal edge
			}
		} else if higher != (p.Y() < q.Y()) {
			// edge crosses the scan line
			higher = !higher
			if inkhit.GreaterThanOrClose(p.X(), math.Max(prev.X(), q.X())) {
				inside = !inside // crossing lies left of p
				if i == 0 && inkhit.AreClose(p.X(), math.Max(prev.X(), q.X())) {
					onClosingEdge = true
				}
			} else if inkhit.GreaterThanOrClose(p.X(), math.Min(prev.X(), q.X())) {
				d := q - prev
				x := prev.X() + d.X()/d.Y()*(p.Y()-prev.Y())
				if inkhit.GreaterThanOrClose(p.X(), x) {
					inside = !inside
					if i == 0 && inkhit.AreClose(p.X(), x) {
						onClosingEdge = true
					}
				}
			}
		}
		prev = q
	}
	return inside && !onClosingEdge
}

func (l *Lasso) String() string {
	return fmt.Sprintf("lasso(%d points, %s)", len(l.points), l.bounds)
}
