/*
Package eraser sweeps a stylus tip along an erasing path.

A Sweep consumes the eraser's input points in increments. Each increment
produces a set of convex pieces: the area the tip covers when moving from
one point to the next. Strokes are tested against the pieces of the latest
increment only, which is what an incremental eraser needs. The union of all
pieces swept so far is available as a polygon region; it is computed on
demand.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package eraser

import (
	"fmt"

	"github.com/akavel/polyclip-go"
	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/fragment"
	"github.com/npillmayer/inkhit/polygon"
	"github.com/npillmayer/inkhit/stroke"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkhit.eraser'
func tracer() tracing.Trace {
	return tracing.Select("inkhit.eraser")
}

// Sweep is the area covered by an eraser tip moved along a path.
type Sweep struct {
	shape   stroke.Shape
	tip     *polygon.Polygon
	last    inkhit.Pair
	count   int                // number of points consumed
	pieces  []*polygon.Polygon // pieces of the latest increment
	bounds  inkhit.Rect        // bounds of the latest increment
	region  polyclip.Polygon   // union of the pieces merged so far
	pending []*polygon.Polygon // pieces not yet merged into region
}

// New creates a sweep for an eraser tip of the given shape.
func New(shape stroke.Shape) (*Sweep, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Sweep{
		shape:  shape,
		tip:    shape.Polygon(),
		bounds: inkhit.EmptyRect(),
	}, nil
}

// Shape returns the eraser tip shape.
func (sw *Sweep) Shape() stroke.Shape {
	return sw.shape
}

// MoveTo moves the eraser along points, replacing the current increment.
// The first piece of an increment connects to the last point of the
// previous one.
func (sw *Sweep) MoveTo(points []inkhit.Pair) error {
	if len(points) == 0 {
		return fmt.Errorf("eraser: empty point increment: %w", inkhit.ErrInvalidArgument)
	}
	for _, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("eraser: point %s: %w", p, inkhit.ErrInvalidArgument)
		}
	}
	sw.pieces = nil
	sw.bounds = inkhit.EmptyRect()
	for _, p := range points {
		var piece *polygon.Polygon
		if sw.count == 0 {
			piece = sw.tip.Shifted(p)
		} else {
			piece = sweepTip(sw.tip, sw.last, p)
		}
		sw.pieces = append(sw.pieces, piece)
		sw.bounds = sw.bounds.Union(piece.Bounds())
		sw.last = p
		sw.count++
	}
	sw.pending = append(sw.pending, sw.pieces...)
	tracer().Debugf("eraser: %d piece(s) in %s", len(sw.pieces), sw.bounds)
	return nil
}

// sweepTip is the convex area covered by tip when moving from p to q.
func sweepTip(tip *polygon.Polygon, p, q inkhit.Pair) *polygon.Polygon {
	pts := make([]inkhit.Pair, 0, 2*tip.N())
	for _, v := range tip.Points() {
		pts = append(pts, p+v, q+v)
	}
	return polygon.ConvexHull(pts)
}

// merge unions the pending pieces into the region.
func (sw *Sweep) merge() {
	if len(sw.pending) == 0 {
		return
	}
	increment := polyclip.Polygon{}
	for _, piece := range sw.pending {
		increment = increment.Construct(polyclip.UNION, polyclip.Polygon{piece.Contour()})
	}
	sw.pending = nil
	if len(sw.region) == 0 {
		sw.region = increment
		return
	}
	sw.region = sw.region.Construct(polyclip.UNION, increment)
}

// Pieces returns the convex pieces of the latest increment.
func (sw *Sweep) Pieces() []*polygon.Polygon {
	return sw.pieces
}

// Bounds returns the bounding box of the latest increment.
func (sw *Sweep) Bounds() inkhit.Rect {
	return sw.bounds
}

// Region returns the union of all areas swept so far.
func (sw *Sweep) Region() polyclip.Polygon {
	sw.merge()
	return sw.region
}

// IsEmpty is a predicate: has the sweep not consumed any point yet?
func (sw *Sweep) IsEmpty() bool {
	return sw.count == 0
}

// EraseTest finds the parts of a stroke touched by the latest increment.
// Every erased fragment is reported as an intersection with identical hit
// and in segments, sorted and merged.
func (sw *Sweep) EraseTest(st *stroke.Stroke) []fragment.Intersection {
	if len(sw.pieces) == 0 || !sw.bounds.Intersects(st.Bounds()) {
		return nil
	}
	nodes := st.Nodes()
	if nodes.Count() == 1 && st.N() == 1 {
		if sw.touchesDot(st) {
			return []fragment.Intersection{fragment.FullIntersection}
		}
		return nil
	}
	var hits []fragment.FIndices
	for k := 0; k < nodes.Count(); k++ {
		node := nodes.Node(k)
		if !node.Bounds().Intersects(sw.bounds) {
			continue
		}
		for _, piece := range sw.pieces {
			if !piece.Bounds().Intersects(node.Bounds()) {
				continue
			}
			if f := node.HitContour(piece); !f.IsEmpty() {
				hits = append(hits, f)
			}
		}
	}
	hits = fragment.Merge(hits)
	sis := make([]fragment.Intersection, len(hits))
	for i, f := range hits {
		sis[i] = fragment.Intersection{HitSegment: f, InSegment: f}
	}
	return sis
}

// touchesDot tests a single-point stroke by intersecting its tip outline
// with the increment's pieces.
func (sw *Sweep) touchesDot(st *stroke.Stroke) bool {
	dot := polyclip.Polygon{st.Shape().Polygon().Shifted(st.Points()[0]).Contour()}
	for _, piece := range sw.pieces {
		if len(dot.Construct(polyclip.INTERSECTION, polyclip.Polygon{piece.Contour()})) > 0 {
			return true
		}
	}
	return false
}

// HitTest is a predicate: does the latest increment touch the stroke at all?
func (sw *Sweep) HitTest(st *stroke.Stroke) bool {
	return len(sw.EraseTest(st)) > 0
}

// Contains is a predicate: is p inside the region swept so far?
func (sw *Sweep) Contains(p inkhit.Pair) bool {
	pt := polyclip.Point{X: p.X(), Y: p.Y()}
	inside := false
	for _, c := range sw.Region() {
		if c.Contains(pt) {
			inside = !inside
		}
	}
	return inside
}

func (sw *Sweep) String() string {
	return fmt.Sprintf("sweep(%s, %d points)", sw.shape.Tip, sw.count)
}
