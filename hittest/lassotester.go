package hittest

import (
	"fmt"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/lasso"
	"github.com/npillmayer/inkhit/stroke"
)

// SelectionChange is reported by a lasso tester once per batch of points,
// if any stroke changed its selection state.
type SelectionChange struct {
	Selected   []*stroke.Stroke
	Deselected []*stroke.Stroke
}

// IsEmpty is a predicate: does the change carry no strokes?
func (ch SelectionChange) IsEmpty() bool {
	return len(ch.Selected) == 0 && len(ch.Deselected) == 0
}

// LassoTester selects strokes with a growing lasso.
//
// A stroke is selected if at least percent of its weight lies inside the
// lasso. The lasso stops growing once it has closed a loop.
type LassoTester struct {
	tracker
	lasso    *lasso.Lasso
	percent  int
	onChange func(SelectionChange)
}

// NewLassoTester creates a lasso tester for a collection of strokes.
// percent has to be in 0…100. onChange may be nil.
func NewLassoTester(strokes Strokes, percent int, onChange func(SelectionChange)) (*LassoTester, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("hittest: percentage %d out of range: %w", percent, inkhit.ErrInvalidArgument)
	}
	lt := &LassoTester{
		lasso:    lasso.NewSingleLoop(),
		percent:  percent,
		onChange: onChange,
	}
	lt.init(strokes)
	return lt, nil
}

// Lasso returns the lasso of the tester.
func (lt *LassoTester) Lasso() *lasso.Lasso {
	return lt.lasso
}

// Selected returns all currently selected strokes, in collection order.
func (lt *LassoTester) Selected() []*stroke.Stroke {
	var sel []*stroke.Stroke
	for _, info := range lt.infos {
		if info.isHit {
			sel = append(sel, info.stroke)
		}
	}
	return sel
}

// AddPoint adds a single point to the lasso.
func (lt *LassoTester) AddPoint(p inkhit.Pair) error {
	return lt.AddPoints([]inkhit.Pair{p})
}

// AddPoints adds a batch of points to the lasso and updates the selection.
//
// If the lasso just grew, only the area between the old and the new lasso
// is tested. Strokes which changed since the last batch, and all strokes
// after the lasso has been cut to a loop, are tested from scratch.
func (lt *LassoTester) AddPoints(points []inkhit.Pair) error {
	if err := lt.checkBatch(points); err != nil {
		return err
	}
	before := lt.lasso.PointCount()
	if lt.lasso.AddPoints(points) == 0 && !lt.lasso.IsIncrementalLassoDirty() {
		return nil
	}
	fullTest := lt.lasso.IsIncrementalLassoDirty() || before < 3
	var increment *lasso.Lasso
	if !fullTest {
		increment = lt.incrementLasso(before)
	}
	var change SelectionChange
	for _, info := range lt.infos {
		if fullTest || info.dirty {
			info.hitWeight = info.weighInside(lt.lasso)
			info.dirty = false
		} else {
			info.weighIncrement(increment, lt.lasso)
		}
		info.clamp()
		hit := info.meets(lt.percent)
		if hit == info.isHit {
			continue
		}
		info.isHit = hit
		if hit {
			change.Selected = append(change.Selected, info.stroke)
		} else {
			change.Deselected = append(change.Deselected, info.stroke)
		}
	}
	lt.lasso.SetIncrementalLassoDirty(false)
	if change.IsEmpty() {
		return nil
	}
	tracer().Debugf("hittest: %d selected, %d deselected", len(change.Selected), len(change.Deselected))
	if lt.onChange != nil {
		lt.onChange(change)
	}
	return nil
}

// incrementLasso builds the lasso covering the area between the lasso
// with the first n points and the current one. It runs from the first
// point to the n-th one and along the new points back to the first one, so
// a point is inside it exactly if it changed sides of the lasso boundary.
func (lt *LassoTester) incrementLasso(n int) *lasso.Lasso {
	pts := lt.lasso.Points()
	incr := make([]inkhit.Pair, 0, len(pts)-n+2)
	incr = append(incr, pts[0], pts[n-1])
	incr = append(incr, pts[n:]...)
	return lasso.FromPoints(incr)
}
