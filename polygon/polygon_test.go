package polygon

import (
	"testing"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(inkhit.P(0, 0)).Knot(inkhit.P(1, 3)).Knot(inkhit.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.True(t, pg.IsCycle())
	assert.Equal(t, inkhit.P(0, 0), pg.Pt(3), "indices wrap around for cycles")
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(inkhit.P(0, 5), inkhit.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.Equal(t, inkhit.R(inkhit.P(0, 1), inkhit.P(4, 5)), box.Bounds())
	assert.True(t, box.Contains(inkhit.P(2, 3)))
	assert.True(t, box.Contains(inkhit.P(0, 3)), "border belongs to the polygon")
	assert.False(t, box.Contains(inkhit.P(5, 3)))
}

func TestConvexHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []inkhit.Pair{
		inkhit.P(0, 0), inkhit.P(2, 2), inkhit.P(4, 0), inkhit.P(4, 4),
		inkhit.P(0, 4), inkhit.P(1, 1), inkhit.P(2, 0), inkhit.P(4, 0),
	}
	hull := ConvexHull(pts)
	L().Infof("hull = %s", AsString(hull))
	require.Equal(t, 4, hull.N())
	assert.Equal(t, []inkhit.Pair{inkhit.P(0, 0), inkhit.P(4, 0), inkhit.P(4, 4), inkhit.P(0, 4)}, hull.Points())
	assert.Equal(t, 1, ConvexHull([]inkhit.Pair{inkhit.P(1, 1), inkhit.P(1, 1)}).N())
}

func TestMinkowskiHull(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := []inkhit.Pair{inkhit.P(0, 0), inkhit.P(10, 0)}
	sq := Box(inkhit.P(-1, -1), inkhit.P(1, 1))
	m := MinkowskiHull(seg, sq.Points())
	assert.Equal(t, inkhit.R(inkhit.P(-1, -1), inkhit.P(11, 1)), m.Bounds())
	assert.Equal(t, 4, m.N())
}

func TestClipSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(inkhit.P(0, 0), inkhit.P(10, 10))
	t0, t1, ok := box.ClipSegment(inkhit.P(-5, 5), inkhit.P(15, 5))
	require.True(t, ok)
	assert.InDelta(t, 0.25, t0, 1e-12)
	assert.InDelta(t, 0.75, t1, 1e-12)
	_, _, ok = box.ClipSegment(inkhit.P(-5, 15), inkhit.P(15, 15))
	assert.False(t, ok)
	t0, t1, ok = box.ClipSegment(inkhit.P(2, 2), inkhit.P(3, 3))
	require.True(t, ok)
	assert.Equal(t, 0.0, t0)
	assert.Equal(t, 1.0, t1)
	t0, t1, ok = box.ClipSegment(inkhit.P(5, 5), inkhit.P(5, 5))
	require.True(t, ok, "degenerate segment inside")
	assert.Equal(t, 0.0, t0)
	assert.Equal(t, 1.0, t1)
}

func TestTransformAndContour(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(inkhit.P(-1, -1), inkhit.P(1, 1))
	r := box.Transformed(inkhit.Rotation(90 * inkhit.Deg2Rad))
	assert.InDelta(t, 1.0, r.Pt(0).X(), 1e-7)
	assert.InDelta(t, -1.0, r.Pt(0).Y(), 1e-7)
	s := box.Shifted(inkhit.P(5, 5))
	assert.Equal(t, inkhit.P(4, 4), s.Pt(0))
	m := box.Reflected()
	assert.Equal(t, inkhit.P(1, 1), m.Pt(0))
	assert.Equal(t, inkhit.P(-1, -1), box.Pt(0), "reflection must not modify the original")
	c := box.Contour()
	require.Len(t, c, 4)
	assert.Equal(t, 1.0, c[2].X)
}
