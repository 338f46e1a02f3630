package stroke

import (
	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/fragment"
	"github.com/npillmayer/inkhit/polygon"
)

// Node is a positional segment of a stroke, as seen by hit-testing.
type Node interface {
	// Bounds returns the bounding box of the area covered by the node.
	Bounds() inkhit.Rect
	// CutTest reports the part of the node touched by segment [p0,p1].
	// The result is empty if the segment misses the node.
	CutTest(p0, p1 inkhit.Pair) fragment.FIndices
	// HitContour reports the part of the node touched by a convex,
	// counter-clockwise contour. The result is empty if the contour misses
	// the node.
	HitContour(contour *polygon.Polygon) fragment.FIndices
	// PointAt returns the point at a fractional index, clamped to the node.
	PointAt(findex float64) inkhit.Pair
	// Position returns the node's trailing anchor point.
	Position() inkhit.Pair
}

// NodeIterator is an indexable sequence of nodes.
type NodeIterator interface {
	Count() int
	Node(i int) Node
}

type nodeList []*node

func (nl nodeList) Count() int {
	return len(nl)
}

func (nl nodeList) Node(i int) Node {
	return nl[i]
}

// node i covers the spine from point i-1 to point i; node 0 exists for
// single-point strokes only.
type node struct {
	s       *Stroke
	index   int
	contour *polygon.Polygon
}

func newNode(s *Stroke, index int) *node {
	n := &node{s: s, index: index}
	pts := make([]inkhit.Pair, 0, 2*s.tip.N())
	for _, v := range s.tip.Points() {
		pts = append(pts, s.points[index]+v)
		if index > 0 {
			pts = append(pts, s.points[index-1]+v)
		}
	}
	n.contour = polygon.ConvexHull(pts)
	return n
}

func (n *node) Bounds() inkhit.Rect {
	return n.contour.Bounds()
}

func (n *node) Position() inkhit.Pair {
	return n.s.points[n.index]
}

func (n *node) PointAt(findex float64) inkhit.Pair {
	if n.index == 0 {
		return n.s.points[0]
	}
	lo := float64(n.index - 1)
	switch {
	case findex <= lo:
		return n.s.points[n.index-1]
	case findex >= lo+1:
		return n.s.points[n.index]
	}
	return n.s.points[n.index-1].Lerp(n.s.points[n.index], findex-lo)
}

func (n *node) CutTest(p0, p1 inkhit.Pair) fragment.FIndices {
	return n.cut(polygon.MinkowskiHull([]inkhit.Pair{p0, p1}, n.s.rtip.Points()))
}

func (n *node) HitContour(contour *polygon.Polygon) fragment.FIndices {
	return n.cut(polygon.MinkowskiHull(contour.Points(), n.s.rtip.Points()))
}

// cut clips the node's spine against the set of tip centers for which the
// tip touches the obstacle. That set is the Minkowski sum of the obstacle
// and the reflected tip, and it is convex, so the result is a single range.
func (n *node) cut(centers *polygon.Polygon) fragment.FIndices {
	if n.index == 0 {
		if centers.Contains(n.s.points[0]) {
			return fragment.Full
		}
		return fragment.Empty
	}
	t0, t1, ok := centers.ClipSegment(n.s.points[n.index-1], n.s.points[n.index])
	if !ok {
		return fragment.Empty
	}
	return toSegment(n.index, len(n.s.points), t0, t1)
}
