package inkhit

import (
	"fmt"
	"math"
)

// === Bounding Boxes ========================================================

// Rect is an axis-aligned bounding box.
//
// The empty rectangle is a distinguished value, not a rectangle of zero
// area: a rectangle around a single point is not empty. EmptyRect is the
// neutral element of Union and never intersects anything.
type Rect struct {
	Min, Max Pair
}

// EmptyRect returns the empty rectangle.
func EmptyRect() Rect {
	inf := math.Inf(1)
	return Rect{Min: P(inf, inf), Max: P(-inf, -inf)}
}

// R returns the rectangle spanned by two corner points, in any order.
func R(p, q Pair) Rect {
	return Rect{
		Min: P(math.Min(p.X(), q.X()), math.Min(p.Y(), q.Y())),
		Max: P(math.Max(p.X(), q.X()), math.Max(p.Y(), q.Y())),
	}
}

// BoundsOf returns the bounding box of a sequence of points.
// The bounding box of no points is empty.
func BoundsOf(points []Pair) Rect {
	r := EmptyRect()
	for _, p := range points {
		r = r.Extend(p)
	}
	return r
}

// IsEmpty is a predicate: does r contain no point at all?
func (r Rect) IsEmpty() bool {
	return r.Min.X() > r.Max.X() || r.Min.Y() > r.Max.Y()
}

// Width of r, 0 for the empty rectangle.
func (r Rect) Width() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.X() - r.Min.X()
}

// Height of r, 0 for the empty rectangle.
func (r Rect) Height() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Max.Y() - r.Min.Y()
}

// Center returns the midpoint of r.
func (r Rect) Center() Pair {
	return r.Min.Lerp(r.Max, 0.5)
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Pair) Rect {
	return Rect{
		Min: P(math.Min(r.Min.X(), p.X()), math.Min(r.Min.Y(), p.Y())),
		Max: P(math.Max(r.Max.X(), p.X()), math.Max(r.Max.Y(), p.Y())),
	}
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	if s.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return s
	}
	return r.Extend(s.Min).Extend(s.Max)
}

// Inflate grows r by d on every side. The empty rectangle stays empty.
func (r Rect) Inflate(d float64) Rect {
	if r.IsEmpty() {
		return r
	}
	return Rect{Min: r.Min - P(d, d), Max: r.Max + P(d, d)}
}

// Contains is a predicate: is p inside r or on its border?
func (r Rect) Contains(p Pair) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X() >= r.Min.X() && p.X() <= r.Max.X() &&
		p.Y() >= r.Min.Y() && p.Y() <= r.Max.Y()
}

// Intersects is a predicate: do r and s share at least one point?
// Touching borders count. The empty rectangle intersects nothing.
func (r Rect) Intersects(s Rect) bool {
	if r.IsEmpty() || s.IsEmpty() {
		return false
	}
	return s.Min.X() <= r.Max.X() && s.Max.X() >= r.Min.X() &&
		s.Min.Y() <= r.Max.Y() && s.Max.Y() >= r.Min.Y()
}

func (r Rect) String() string {
	if r.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%s,%s]", r.Min, r.Max)
}
