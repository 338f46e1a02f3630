package stroke

import (
	"math"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/fragment"
)

// Copy creates a new stroke from a fragment of s. Fractional ends are
// interpolated. An empty fragment, or one which covers nothing but a tip
// cap, results in nil.
func (s *Stroke) Copy(f fragment.FIndices) *Stroke {
	if f.IsEmpty() {
		return nil
	}
	begin, end := s.clamp(f.Begin), s.clamp(f.End)
	if inkhit.AreClose(begin, end) && !(f.IsFull() && len(s.points) == 1) {
		return nil
	}
	pts := []inkhit.Pair{s.PointAt(begin)}
	for i := int(math.Floor(begin)) + 1; float64(i) < end; i++ {
		pts = appendDistinct(pts, s.points[i])
	}
	pts = appendDistinct(pts, s.PointAt(end))
	c := &Stroke{shape: s.shape, tip: s.tip, rtip: s.rtip, points: pts}
	return c
}

func appendDistinct(pts []inkhit.Pair, p inkhit.Pair) []inkhit.Pair {
	if pts[len(pts)-1].Equal(p) {
		return pts
	}
	return append(pts, p)
}

// Clip returns new strokes for the given fragments of s, which are
// expected to be sorted. This is the result of clipping a stroke to the
// fragments found inside a lasso.
func (s *Stroke) Clip(fragments []fragment.FIndices) []*Stroke {
	var result []*Stroke
	for _, f := range fragment.Merge(fragments) {
		if c := s.Copy(f); c != nil {
			result = append(result, c)
		}
	}
	tracer().Debugf("clipping %s to %v yields %d strokes", s, fragments, len(result))
	return result
}

// Erase returns new strokes for the parts of s not covered by fragments.
// Without any fragments, the result is a single copy of s.
func (s *Stroke) Erase(fragments []fragment.FIndices) []*Stroke {
	var keep []fragment.FIndices
	prev := fragment.BeforeFirst
	for _, f := range fragment.Merge(fragments) {
		if inkhit.LessThan(prev, f.Begin) {
			keep = append(keep, fragment.New(prev, f.Begin))
		}
		prev = f.End
	}
	if inkhit.LessThan(prev, fragment.AfterLast) {
		keep = append(keep, fragment.New(prev, fragment.AfterLast))
	}
	var result []*Stroke
	for _, f := range keep {
		if c := s.Copy(f); c != nil {
			result = append(result, c)
		}
	}
	tracer().Debugf("erasing %v from %s leaves %d strokes", fragments, s, len(result))
	return result
}
