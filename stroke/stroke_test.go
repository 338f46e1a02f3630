package stroke

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/fragment"
	"github.com/npillmayer/inkhit/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func thin() Shape {
	return Shape{Width: 0.2, Height: 0.2, Tip: Rectangle}
}

func mustStroke(t *testing.T, shape Shape, pts ...inkhit.Pair) *Stroke {
	t.Helper()
	s, err := New(pts, shape)
	require.NoError(t, err)
	return s
}

func TestShapeValidation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.NoError(t, DefaultShape().Validate())
	for _, sh := range []Shape{
		{Width: 0, Height: 1},
		{Width: 1, Height: -1},
		{Width: math.NaN(), Height: 1},
		{Width: math.Inf(1), Height: 1},
		{Width: 1, Height: 1, Rotation: math.NaN()},
		{Width: 1, Height: 1, Tip: TipShape(7)},
	} {
		err := sh.Validate()
		assert.True(t, errors.Is(err, inkhit.ErrInvalidArgument), "shape %v", sh)
	}
}

func TestShapePolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rect := Shape{Width: 4, Height: 2, Tip: Rectangle}.Polygon()
	assert.Equal(t, inkhit.R(inkhit.P(-2, -1), inkhit.P(2, 1)), rect.Bounds())
	rot := Shape{Width: 4, Height: 2, Tip: Rectangle, Rotation: 90}.Polygon()
	b := rot.Bounds()
	assert.InDelta(t, 2.0, b.Width(), 1e-6)
	assert.InDelta(t, 4.0, b.Height(), 1e-6)
	ell := DefaultShape().Polygon()
	assert.Equal(t, EllipseSegments, ell.N())
	assert.InDelta(t, 2.0, ell.Bounds().Width(), 1e-9)
	assert.Equal(t, "ellipse", Ellipse.String())
}

func TestNewStrokeRejectsMalformedInput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := New(nil, DefaultShape())
	assert.True(t, errors.Is(err, inkhit.ErrInvalidArgument))
	_, err = New([]inkhit.Pair{inkhit.P(math.NaN(), 0)}, DefaultShape())
	assert.True(t, errors.Is(err, inkhit.ErrInvalidArgument))
	_, err = New([]inkhit.Pair{inkhit.P(0, 0)}, Shape{})
	assert.True(t, errors.Is(err, inkhit.ErrInvalidArgument))
}

func TestNodes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustStroke(t, thin(), inkhit.P(0, 0), inkhit.P(10, 0), inkhit.P(10, 10))
	nodes := s.Nodes()
	require.Equal(t, 2, nodes.Count())
	assert.Equal(t, inkhit.P(10, 0), nodes.Node(0).Position())
	assert.Equal(t, inkhit.P(10, 10), nodes.Node(1).Position())
	assert.Equal(t, inkhit.P(5, 0), nodes.Node(0).PointAt(0.5))
	assert.Equal(t, inkhit.P(0, 0), nodes.Node(0).PointAt(fragment.BeforeFirst))
	assert.Equal(t, inkhit.P(10, 0), nodes.Node(0).PointAt(1.7), "clamped to the node")
	assert.Equal(t, inkhit.P(10, 5), nodes.Node(1).PointAt(1.5))
	assert.InDelta(t, -0.1, s.Bounds().Min.X(), 1e-9)
	assert.InDelta(t, 10.1, s.Bounds().Max.Y(), 1e-9)
	dot := mustStroke(t, thin(), inkhit.P(3, 3))
	assert.Equal(t, 1, dot.Nodes().Count())
	assert.Equal(t, inkhit.P(3, 3), dot.Nodes().Node(0).PointAt(5))
}

func TestPointAt(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustStroke(t, thin(), inkhit.P(0, 0), inkhit.P(10, 0), inkhit.P(10, 10))
	assert.Equal(t, inkhit.P(0, 0), s.PointAt(fragment.BeforeFirst))
	assert.Equal(t, inkhit.P(10, 10), s.PointAt(fragment.AfterLast))
	assert.Equal(t, inkhit.P(2.5, 0), s.PointAt(0.25))
	assert.Equal(t, inkhit.P(10, 0), s.PointAt(1))
	assert.Equal(t, inkhit.P(10, 2.5), s.PointAt(1.25))
}

func TestCutTest(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustStroke(t, thin(), inkhit.P(-5, 5), inkhit.P(15, 5))
	n := s.Nodes().Node(0)
	f := n.CutTest(inkhit.P(0, 10), inkhit.P(0, 0))
	require.False(t, f.IsEmpty())
	assert.InDelta(t, 0.245, f.Begin, 1e-9)
	assert.InDelta(t, 0.255, f.End, 1e-9)
	assert.True(t, n.CutTest(inkhit.P(0, 0), inkhit.P(10, 0)).IsEmpty())
	// touching the start tip reports the literal beginning
	f = n.CutTest(inkhit.P(-5, 10), inkhit.P(-5, 0))
	assert.Equal(t, fragment.BeforeFirst, f.Begin)
	assert.InDelta(t, 0.005, f.End, 1e-9)
	// touching the end tip reports the literal end
	f = n.CutTest(inkhit.P(15, 10), inkhit.P(15, 0))
	assert.Equal(t, fragment.AfterLast, f.End)
	// a segment covering the whole stroke
	f = n.CutTest(inkhit.P(-10, 5), inkhit.P(20, 5))
	assert.True(t, f.IsFull())
	dot := mustStroke(t, thin(), inkhit.P(3, 3))
	assert.True(t, dot.Nodes().Node(0).CutTest(inkhit.P(3, 0), inkhit.P(3, 10)).IsFull())
	assert.True(t, dot.Nodes().Node(0).CutTest(inkhit.P(4, 0), inkhit.P(4, 10)).IsEmpty())
}

func TestHitContour(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustStroke(t, thin(), inkhit.P(0, 0), inkhit.P(10, 0), inkhit.P(20, 0))
	box := polygon.Box(inkhit.P(4, -1), inkhit.P(6, 1))
	f := s.Nodes().Node(0).HitContour(box)
	assert.InDelta(t, 0.39, f.Begin, 1e-9)
	assert.InDelta(t, 0.61, f.End, 1e-9)
	assert.True(t, s.Nodes().Node(1).HitContour(box).IsEmpty())
}

func TestCopyClipErase(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := mustStroke(t, thin(), inkhit.P(0, 0), inkhit.P(10, 0), inkhit.P(20, 0), inkhit.P(30, 0))
	c := s.Copy(fragment.New(0.5, 2.5))
	require.NotNil(t, c)
	assert.Equal(t, []inkhit.Pair{inkhit.P(5, 0), inkhit.P(10, 0), inkhit.P(20, 0), inkhit.P(25, 0)}, c.Points())
	assert.Equal(t, s.Shape(), c.Shape())
	assert.Equal(t, s.Points(), s.Copy(fragment.Full).Points())
	assert.Nil(t, s.Copy(fragment.Empty))
	assert.Nil(t, s.Copy(fragment.New(fragment.BeforeFirst, 0)), "tip cap only")
	clips := s.Clip([]fragment.FIndices{fragment.New(2, fragment.AfterLast), fragment.New(fragment.BeforeFirst, 0.5)})
	require.Len(t, clips, 2)
	assert.Equal(t, []inkhit.Pair{inkhit.P(0, 0), inkhit.P(5, 0)}, clips[0].Points())
	assert.Equal(t, []inkhit.Pair{inkhit.P(20, 0), inkhit.P(30, 0)}, clips[1].Points())
	rest := s.Erase([]fragment.FIndices{fragment.New(0.5, 1.5)})
	require.Len(t, rest, 2)
	assert.Equal(t, []inkhit.Pair{inkhit.P(0, 0), inkhit.P(5, 0)}, rest[0].Points())
	assert.Equal(t, []inkhit.Pair{inkhit.P(15, 0), inkhit.P(20, 0), inkhit.P(30, 0)}, rest[1].Points())
	assert.Empty(t, s.Erase([]fragment.FIndices{fragment.Full}))
	assert.Len(t, s.Erase(nil), 1)
	dot := mustStroke(t, thin(), inkhit.P(3, 3))
	require.NotNil(t, dot.Copy(fragment.Full))
	assert.Equal(t, 1, dot.Copy(fragment.Full).N())
}

func TestCollection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := mustStroke(t, thin(), inkhit.P(0, 0))
	b := mustStroke(t, thin(), inkhit.P(1, 1))
	c := mustStroke(t, thin(), inkhit.P(2, 2))
	coll := NewCollection(a, b, a)
	assert.Equal(t, 2, coll.Len())
	ch := coll.Insert(1, c, b)
	assert.Equal(t, Change{Index: 1, Added: []*Stroke{c}}, ch)
	assert.Equal(t, []*Stroke{a, c, b}, coll.Strokes())
	ch = coll.Remove(c)
	assert.Equal(t, 1, ch.Index)
	assert.Equal(t, []*Stroke{c}, ch.Removed)
	assert.True(t, coll.Remove(c).IsEmpty())
	d := mustStroke(t, thin(), inkhit.P(3, 3))
	ch = coll.Replace(a, d, c)
	assert.Equal(t, 0, ch.Index)
	assert.Equal(t, []*Stroke{a}, ch.Removed)
	assert.Equal(t, []*Stroke{d, c}, ch.Added)
	assert.Equal(t, []*Stroke{d, c, b}, coll.Strokes())
	assert.Equal(t, 2, coll.IndexOf(b))
	assert.Equal(t, b, coll.At(2))
}
