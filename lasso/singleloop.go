package lasso

import (
	"github.com/npillmayer/inkhit"
)

// NoIntersection is returned by FindIntersection if two segments do not
// intersect.
const NoIntersection = -1.0

// NewSingleLoop creates an empty lasso which freezes once it intersects
// itself.
//
// Before a point is appended, the new edge from the last point to the new
// one is tested against the existing edges. On the first intersection the
// lasso is cut to start at the intersection point, it is flagged as closed
// and as dirty for incremental users, and the new point is dropped. All
// points added later are dropped as well. If the intersection is the vertex
// where the final edge starts, the new point is dropped and the lasso stays
// open.
func NewSingleLoop() *Lasso {
	l := New()
	l.policy = &singleLoop{}
	return l
}

type singleLoop struct {
	hasLoop bool
}

func (sl *singleLoop) filter(l *Lasso, p inkhit.Pair) bool {
	if sl.hasLoop {
		return true
	}
	if l.tooClose(p) {
		return true
	}
	n := len(l.points)
	if n < 3 {
		return false
	}
	last := l.points[n-1]
	// edge n-2 is adjacent to the new edge and cannot cross it
	for i := 0; i < n-2; i++ {
		s, _ := FindIntersection(l.points[i], l.points[i+1], last, p)
		if s == NoIntersection {
			continue
		}
		if inkhit.AreClose(float64(i)+s, float64(n-2)) {
			// the new edge folds back through the start of the final edge;
			// there is no loop to close, so p is dropped and the lasso stays open
			tracer().Debugf("lasso: degenerate loop at %s, dropping %s", l.points[n-2], p)
			return true
		}
		sl.closeAt(l, i, s)
		return true
	}
	return false
}

// closeAt cuts the lasso to start at the point at fraction s of edge i.
func (sl *singleLoop) closeAt(l *Lasso, i int, s float64) {
	if inkhit.IsOne(s) {
		i, s = i+1, 0
	}
	var pts []inkhit.Pair
	if inkhit.IsZero(s) {
		pts = append(pts, l.points[i:]...)
	} else {
		x := l.points[i].Lerp(l.points[i+1], s)
		pts = append(pts, x)
		pts = append(pts, l.points[i+1:]...)
	}
	tracer().Debugf("lasso: loop closed at %g, %d → %d points", float64(i)+s, len(l.points), len(pts))
	l.points = pts
	l.bounds = inkhit.BoundsOf(pts)
	l.dirty = true
	sl.hasLoop = true
}

// FindIntersection intersects segment a1→a2 with segment b1→b2. It returns
// the fractions s along a and t along b of the intersection point, or
// NoIntersection for both if the segments are parallel or do not meet.
func FindIntersection(a1, a2, b1, b2 inkhit.Pair) (s, t float64) {
	da := a2 - a1
	db := b2 - b1
	denom := da.Cross(db)
	if inkhit.IsZero(denom) {
		return NoIntersection, NoIntersection
	}
	w := b1 - a1
	s = w.Cross(db) / denom
	t = w.Cross(da) / denom
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return NoIntersection, NoIntersection
	}
	return s, t
}
