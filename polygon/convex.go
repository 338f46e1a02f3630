package polygon

import (
	"slices"

	"github.com/npillmayer/inkhit"
)

// ConvexHull returns the convex hull of a set of points as a closed,
// counter-clockwise polygon without collinear knots (Andrew's monotone chain).
// Fewer than three distinct points result in a degenerate polygon of one or
// two knots.
func ConvexHull(points []inkhit.Pair) *Polygon {
	pts := make([]inkhit.Pair, len(points))
	copy(pts, points)
	slices.SortFunc(pts, func(p, q inkhit.Pair) int {
		switch {
		case p.X() < q.X():
			return -1
		case p.X() > q.X():
			return 1
		case p.Y() < q.Y():
			return -1
		case p.Y() > q.Y():
			return 1
		}
		return 0
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return FromPoints(pts)
	}
	hull := make([]inkhit.Pair, 0, 2*len(pts))
	for _, p := range pts { // lower hull
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- { // upper hull
		p := pts[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	hull = hull[:len(hull)-1] // last point repeats the first one
	return FromPoints(hull)
}

// turn is > 0 for a counter-clockwise turn a→b→c, < 0 for clockwise, 0 for collinear.
func turn(a, b, c inkhit.Pair) float64 {
	return (b - a).Cross(c - a)
}

// MinkowskiHull returns the convex hull of the Minkowski sum of two point
// sets. For convex polygons this is their Minkowski sum.
func MinkowskiHull(a, b []inkhit.Pair) *Polygon {
	sums := make([]inkhit.Pair, 0, len(a)*len(b))
	for _, p := range a {
		for _, q := range b {
			sums = append(sums, p+q)
		}
	}
	return ConvexHull(sums)
}

// Contains is a predicate: is p inside or on the border of a convex,
// counter-clockwise polygon?
func (pg *Polygon) Contains(p inkhit.Pair) bool {
	n := len(pg.points)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if turn(pg.points[i], pg.Pt(i+1), p) < 0 {
			return false
		}
	}
	return true
}

// ClipSegment clips the line segment a→b against a convex,
// counter-clockwise polygon (Cyrus–Beck). It returns the parameter range
// [t0,t1] ⊆ [0,1] of the part of a + t·(b−a) inside the polygon, and false
// if the segment misses the polygon completely. A segment touching the
// polygon in a single point yields t0 = t1.
func (pg *Polygon) ClipSegment(a, b inkhit.Pair) (t0, t1 float64, ok bool) {
	n := len(pg.points)
	if n < 3 {
		return 0, 0, false
	}
	t0, t1 = 0.0, 1.0
	d := b - a
	for i := 0; i < n; i++ {
		v := pg.points[i]
		e := pg.Pt(i+1) - v
		// for a ccw polygon, a point q is inside of edge e iff e×(q−v) ≥ 0
		num := e.Cross(a - v)
		den := e.Cross(d)
		if den == 0 {
			if num < 0 {
				return 0, 0, false
			}
			continue
		}
		t := -num / den
		if den > 0 {
			if t > t0 {
				t0 = t
			}
		} else if t < t1 {
			t1 = t
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}
