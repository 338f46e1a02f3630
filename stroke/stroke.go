/*
Package stroke provides ink strokes and the geometry adapter the hit-testing
kernel consumes.

A Stroke is an ordered sequence of sample points drawn with a stylus Shape.
For hit-testing, a stroke is seen as a sequence of nodes: node i is the
convex area the stylus tip sweeps when moving from point i-1 to point i
(a stroke of a single point has one node, the tip at that point). Nodes
report where a line segment or a convex contour touches them as a
fragment.FIndices range.

Strokes are mutable. Whoever changes a stroke's points or shape while a hit
tester tracks it has to notify that hit tester; strokes do not keep
observers.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stroke

import (
	"fmt"
	"math"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/fragment"
	"github.com/npillmayer/inkhit/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkhit.stroke'
func tracer() tracing.Trace {
	return tracing.Select("inkhit.stroke")
}

// Stroke is a piece of ink.
type Stroke struct {
	points []inkhit.Pair
	shape  Shape
	tip    *polygon.Polygon // shape outline, centered at the origin
	rtip   *polygon.Polygon // tip reflected at the origin
	nodes  nodeList         // lazily built
}

// New creates a stroke from at least one point.
func New(points []inkhit.Pair, shape Shape) (*Stroke, error) {
	s := &Stroke{}
	if err := s.SetShape(shape); err != nil {
		return nil, err
	}
	if err := s.SetPoints(points); err != nil {
		return nil, err
	}
	return s, nil
}

// Points returns the sample points. Clients must not modify the slice.
func (s *Stroke) Points() []inkhit.Pair {
	return s.points
}

// N returns the number of sample points.
func (s *Stroke) N() int {
	return len(s.points)
}

// Shape returns the stylus shape the stroke is drawn with.
func (s *Stroke) Shape() Shape {
	return s.shape
}

// SetPoints replaces the sample points.
func (s *Stroke) SetPoints(points []inkhit.Pair) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: stroke needs at least one point", inkhit.ErrInvalidArgument)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%w: stroke point #%d is %s", inkhit.ErrInvalidArgument, i, p)
		}
	}
	s.points = make([]inkhit.Pair, len(points))
	copy(s.points, points)
	s.nodes = nil
	return nil
}

// SetShape replaces the stylus shape.
func (s *Stroke) SetShape(shape Shape) error {
	if err := shape.Validate(); err != nil {
		return err
	}
	s.shape = shape
	s.tip = shape.Polygon()
	s.rtip = s.tip.Reflected()
	s.nodes = nil
	return nil
}

// Bounds returns the bounding box of the inked area.
func (s *Stroke) Bounds() inkhit.Rect {
	r := inkhit.EmptyRect()
	for _, n := range s.nodeList() {
		r = r.Union(n.Bounds())
	}
	return r
}

// PointAt returns the point at a fractional index. Indices outside the
// stroke, including the sentinels, are clamped to the first or last point.
func (s *Stroke) PointAt(findex float64) inkhit.Pair {
	last := len(s.points) - 1
	if findex <= 0 {
		return s.points[0]
	}
	if findex >= float64(last) {
		return s.points[last]
	}
	i := int(math.Floor(findex))
	return s.points[i].Lerp(s.points[i+1], findex-float64(i))
}

// Nodes returns the node sequence of the stroke.
func (s *Stroke) Nodes() NodeIterator {
	return s.nodeList()
}

func (s *Stroke) nodeList() nodeList {
	if s.nodes != nil {
		return s.nodes
	}
	if len(s.points) == 1 {
		s.nodes = nodeList{newNode(s, 0)}
		return s.nodes
	}
	s.nodes = make(nodeList, len(s.points)-1)
	for i := 1; i < len(s.points); i++ {
		s.nodes[i-1] = newNode(s, i)
	}
	return s.nodes
}

func (s *Stroke) String() string {
	return fmt.Sprintf("stroke(%d points, %s %gx%g)", len(s.points), s.shape.Tip, s.shape.Width, s.shape.Height)
}

// clamp maps a fragment index into the index range of the stroke.
func (s *Stroke) clamp(findex float64) float64 {
	return math.Max(0, math.Min(findex, float64(len(s.points)-1)))
}

// toSegment is a helper for fragment conversion of a spine parameter range.
func toSegment(index, count int, t0, t1 float64) fragment.FIndices {
	begin := float64(index-1) + t0
	end := float64(index-1) + t1
	if index == 1 && inkhit.IsZero(t0) {
		begin = fragment.BeforeFirst
	}
	if index == count-1 && inkhit.IsOne(t1) {
		end = fragment.AfterLast
	}
	return fragment.New(begin, end)
}
