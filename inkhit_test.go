package inkhit

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected Zap(a) = 0, is %g", Zap(a))
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, 5.0, P(0, 0).Dist(P(3, 4)))
	assert.Equal(t, P(1.5, 2), P(0, 0).Lerp(P(3, 4), 0.5))
	assert.Equal(t, 11.0, P(1, 2).Dot(P(3, 4)))
	assert.Equal(t, -2.0, P(1, 2).Cross(P(3, 4)))
	assert.True(t, P(1, 2).IsFinite())
	assert.False(t, P(math.NaN(), 2).IsFinite())
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).Zap().IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestCombineScaleThenRotate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	at := Scaling(2, 1).Combine(Rotation(90 * Deg2Rad))
	p := at.Transform(P(1, 0)).Zap()
	assert.InDelta(t, 0.0, p.X(), 1e-9)
	assert.InDelta(t, 2.0, p.Y(), 1e-9)
	assert.Equal(t, P(1, 2), Identity().Transform(P(1, 2)))
}

func TestTolerance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, AreClose(1.0, 1.0+1e-16))
	assert.False(t, AreClose(1.0, 1.0001))
	assert.True(t, AreClose(math.Inf(1), math.Inf(1)))
	assert.False(t, AreClose(-math.MaxFloat64, math.MaxFloat64))
	assert.False(t, AreClose(-math.MaxFloat64, -1e308))
	assert.True(t, AreClose(1e10, 1e10+1e-6)) // slack grows with magnitude
	assert.True(t, LessThan(1, 2))
	assert.False(t, LessThan(1, 1+1e-16))
	assert.True(t, LessThanOrClose(1, 1+1e-16))
	assert.True(t, GreaterThan(2, 1))
	assert.False(t, GreaterThan(1+1e-16, 1))
	assert.True(t, GreaterThanOrClose(1+1e-16, 1))
	assert.True(t, IsZero(1e-17))
	assert.False(t, IsZero(1e-10))
	assert.True(t, IsOne(1+1e-17))
	assert.True(t, DblEpsilon2.AreClose(1.0, 1.0+1e-13))
	assert.False(t, DblEpsilon.AreClose(1.0, 1.0+1e-13))
	for _, v := range []float64{0, 1, -3.5, 1e6} {
		for _, w := range []float64{0, 1, -3.5, 1e6} {
			assert.Equal(t, AreClose(v, w), AreClose(w, v), "AreClose must be symmetric")
		}
	}
}

func TestRect(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	empty := EmptyRect()
	assert.True(t, empty.IsEmpty())
	dot := R(P(1, 1), P(1, 1))
	assert.False(t, dot.IsEmpty(), "a single point is not the empty rect")
	assert.Equal(t, 0.0, dot.Width())
	r := R(P(4, 0), P(0, 2))
	assert.Equal(t, P(0, 0), r.Min)
	assert.Equal(t, P(4, 2), r.Max)
	assert.Equal(t, r, r.Union(empty))
	assert.Equal(t, r, empty.Union(r))
	assert.False(t, empty.Intersects(r))
	assert.False(t, r.Intersects(empty))
	assert.True(t, r.Intersects(R(P(4, 2), P(5, 5))), "touching borders intersect")
	assert.False(t, r.Intersects(R(P(4.1, 2), P(5, 5))))
	assert.True(t, r.Contains(P(4, 1)))
	assert.False(t, empty.Contains(P(0, 0)))
	assert.Equal(t, R(P(0, 0), P(3, 3)), BoundsOf([]Pair{P(1, 3), P(3, 0), P(0, 1)}))
	assert.True(t, BoundsOf(nil).IsEmpty())
	assert.Equal(t, R(P(-1, -1), P(5, 3)), r.Inflate(1))
	assert.Equal(t, "[empty]", empty.String())
}
