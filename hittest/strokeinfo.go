package hittest

import (
	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/lasso"
	"github.com/npillmayer/inkhit/stroke"
)

// strokeInfo caches what a hit tester knows about one stroke.
//
// Every point carries a weight: half the length of each adjacent segment,
// plus half the tip size at the two ends of the stroke. The hit weight is
// the sum of the weights of all points inside the lasso.
type strokeInfo struct {
	stroke    *stroke.Stroke
	bounds    inkhit.Rect // bounds of the points, not of the inked area
	weights   []float64
	total     float64
	hitWeight float64
	isHit     bool
	dirty     bool // cached hit weight is stale
}

func newStrokeInfo(s *stroke.Stroke) *strokeInfo {
	info := &strokeInfo{stroke: s}
	info.invalidate()
	return info
}

// invalidate recomputes the point weights and marks the hit weight stale.
func (info *strokeInfo) invalidate() {
	pts := info.stroke.Points()
	info.bounds = inkhit.BoundsOf(pts)
	info.weights = make([]float64, len(pts))
	tipCap := info.stroke.Shape().Size() / 2
	info.weights[0] += tipCap
	info.weights[len(pts)-1] += tipCap
	for i := 1; i < len(pts); i++ {
		half := pts[i-1].Dist(pts[i]) / 2
		info.weights[i-1] += half
		info.weights[i] += half
	}
	info.total = 0
	for _, w := range info.weights {
		info.total += w
	}
	info.hitWeight = 0
	info.dirty = true
}

// weighInside sums up the weights of all points inside l.
func (info *strokeInfo) weighInside(l *lasso.Lasso) float64 {
	if l.IsEmpty() || !l.Bounds().Intersects(info.bounds) {
		return 0
	}
	w := 0.0
	for i, p := range info.stroke.Points() {
		if l.Contains(p) {
			w += info.weights[i]
		}
	}
	return w
}

// weighIncrement adjusts the hit weight for all points inside increment.
// A point inside increment has changed sides of the full lasso's boundary.
func (info *strokeInfo) weighIncrement(increment, full *lasso.Lasso) {
	if increment.IsEmpty() || !increment.Bounds().Intersects(info.bounds) {
		return
	}
	for i, p := range info.stroke.Points() {
		if !increment.Contains(p) {
			continue
		}
		if full.Contains(p) {
			info.hitWeight += info.weights[i]
		} else {
			info.hitWeight -= info.weights[i]
		}
	}
}

// clamp keeps the hit weight within [0, total]. Accumulated noise close to
// either bound is snapped onto it.
func (info *strokeInfo) clamp() {
	switch {
	case info.hitWeight < 0 || inkhit.DblEpsilon2.AreClose(info.hitWeight, 0):
		info.hitWeight = 0
	case info.hitWeight > info.total || inkhit.DblEpsilon2.AreClose(info.hitWeight, info.total):
		info.hitWeight = info.total
	}
}

// meets is a predicate: does the hit weight reach percent of the total?
func (info *strokeInfo) meets(percent int) bool {
	return info.hitWeight >= info.total*float64(percent)/100-PercentageTolerance
}
