// Package polygon provides a small toolbox for convex polygons as they
// occur with stylus tips and swept tip shapes: a builder, convex hulls,
// Minkowski hulls, and clipping of line segments.
//
// Polygons are built in the style of paths:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
//
// Convex polygons produced by ConvexHull are oriented counter-clockwise
// (in a y-up coordinate system).
package polygon

import (
	"strings"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a sequence of knots. A cyclic polygon has an implicit edge
// from the last knot back to the first.
type Polygon struct {
	points []inkhit.Pair
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates a closed polygon from a list of points.
func FromPoints(points []inkhit.Pair) *Polygon {
	pg := &Polygon{points: make([]inkhit.Pair, len(points)), cycle: true}
	copy(pg.points, points)
	return pg
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p inkhit.Pair) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
// Knots are ordered counter-clockwise, starting with the lower left corner.
func Box(p, q inkhit.Pair) *Polygon {
	r := inkhit.R(p, q)
	return NullPolygon().Knot(r.Min).Knot(inkhit.P(r.Max.X(), r.Min.Y())).
		Knot(r.Max).Knot(inkhit.P(r.Min.X(), r.Max.Y())).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot i. Indices wrap around for cyclic polygons.
func (pg *Polygon) Pt(i int) inkhit.Pair {
	n := len(pg.points)
	if pg.cycle {
		i = ((i % n) + n) % n
	}
	return pg.points[i]
}

// Points returns the knots. Clients must not modify the slice.
func (pg *Polygon) Points() []inkhit.Pair {
	return pg.points
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Bounds returns the bounding box of the knots.
func (pg *Polygon) Bounds() inkhit.Rect {
	return inkhit.BoundsOf(pg.points)
}

// Transformed returns a new polygon with every knot transformed by at.
// Coordinates are snapped to zero where they are meant to be.
func (pg *Polygon) Transformed(at inkhit.AT) *Polygon {
	t := &Polygon{points: make([]inkhit.Pair, len(pg.points)), cycle: pg.cycle}
	for i, p := range pg.points {
		t.points[i] = at.Transform(p).Zap()
	}
	return t
}

// Shifted returns a new polygon translated by v.
func (pg *Polygon) Shifted(v inkhit.Pair) *Polygon {
	t := &Polygon{points: make([]inkhit.Pair, len(pg.points)), cycle: pg.cycle}
	for i, p := range pg.points {
		t.points[i] = p + v
	}
	return t
}

// Reflected returns a new polygon mirrored at the origin.
func (pg *Polygon) Reflected() *Polygon {
	return pg.Shifted(0).negate()
}

func (pg *Polygon) negate() *Polygon {
	for i, p := range pg.points {
		pg.points[i] = -p
	}
	return pg
}

// Contour converts the polygon to a contour for boolean operations.
func (pg *Polygon) Contour() polyclip.Contour {
	c := make(polyclip.Contour, len(pg.points))
	for i, p := range pg.points {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var sb strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			sb.WriteString(" -- ")
		}
		sb.WriteString(p.String())
	}
	if pg.cycle {
		sb.WriteString(" -- cycle")
	}
	return sb.String()
}
