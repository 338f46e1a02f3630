package hittest

import (
	"fmt"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/eraser"
	"github.com/npillmayer/inkhit/fragment"
	"github.com/npillmayer/inkhit/lasso"
	"github.com/npillmayer/inkhit/stroke"
)

// SelectByLasso returns the strokes which have at least percent of their
// weight inside the lasso built from points.
func SelectByLasso(strokes []*stroke.Stroke, points []inkhit.Pair, percent int) ([]*stroke.Stroke, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("hittest: percentage %d out of range: %w", percent, inkhit.ErrInvalidArgument)
	}
	l, err := lassoFrom(points)
	if err != nil {
		return nil, err
	}
	var selected []*stroke.Stroke
	for _, s := range strokes {
		info := newStrokeInfo(s)
		info.hitWeight = info.weighInside(l)
		if info.meets(percent) {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

// ClipByLasso returns the parts of a stroke inside the lasso built from
// points.
func ClipByLasso(s *stroke.Stroke, points []inkhit.Pair) ([]*stroke.Stroke, error) {
	l, err := lassoFrom(points)
	if err != nil {
		return nil, err
	}
	return s.Clip(fragment.GetInSegments(l.HitTest(s.Nodes()))), nil
}

// EraseByPath returns what is left of a stroke after an eraser with the
// given tip shape has been moved along path.
func EraseByPath(s *stroke.Stroke, path []inkhit.Pair, shape stroke.Shape) ([]*stroke.Stroke, error) {
	sw, err := eraser.New(shape)
	if err != nil {
		return nil, err
	}
	if err := sw.MoveTo(path); err != nil {
		return nil, err
	}
	return s.Erase(fragment.GetHitSegments(sw.EraseTest(s))), nil
}

func lassoFrom(points []inkhit.Pair) (*lasso.Lasso, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("hittest: empty lasso: %w", inkhit.ErrInvalidArgument)
	}
	l := lasso.New()
	l.AddPoints(points)
	return l, nil
}
