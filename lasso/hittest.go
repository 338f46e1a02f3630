package lasso

import (
	"slices"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/fragment"
	"github.com/npillmayer/inkhit/stroke"
)

// crossing is a fragment of a stroke where the lasso boundary crosses it,
// together with the stroke nodes at its begin and end.
type crossing struct {
	fi         fragment.FIndices
	start, end stroke.Node
}

func (c crossing) isEmpty() bool {
	return c.fi.IsEmpty()
}

// merge extends c by o if they overlap and reports whether it did.
func (c *crossing) merge(o crossing) bool {
	if c.isEmpty() {
		*c = o
		return true
	}
	if o.isEmpty() {
		return true
	}
	if !c.fi.Overlaps(o.fi) {
		return false
	}
	if o.fi.Begin < c.fi.Begin {
		c.fi.Begin = o.fi.Begin
		c.start = o.start
	}
	if o.fi.End > c.fi.End {
		c.fi.End = o.fi.End
		c.end = o.end
	}
	return true
}

// HitTest finds the parts of a stroke inside and crossed by the lasso.
//
// The result is sorted by hit segment. Hit segments partition the stroke
// from BeforeFirst to AfterLast; each in-segment lies within its hit
// segment. A stroke which does not cross the lasso boundary yields either
// nothing (outside) or a single fragment.FullIntersection (inside).
func (l *Lasso) HitTest(nodes stroke.NodeIterator) []fragment.Intersection {
	if l.IsEmpty() || nodes.Count() == 0 {
		return nil
	}
	var crossings []crossing
	current := crossing{fi: fragment.Empty}
	prevBounds := inkhit.EmptyRect()
	var last stroke.Node
	for k := 0; k < nodes.Count(); k++ {
		node := nodes.Node(k)
		last = node
		nodeBounds := node.Bounds()
		box := prevBounds.Union(nodeBounds)
		prevBounds = nodeBounds
		if !box.Intersects(l.bounds) {
			continue
		}
		prev := l.points[len(l.points)-1]
		for _, q := range l.points {
			a := prev
			prev = q
			if !box.Intersects(inkhit.R(a, q)) {
				continue
			}
			fi := node.CutTest(a, q)
			if fi.IsEmpty() {
				continue
			}
			c := crossing{fi: fi, start: node, end: node}
			if !current.merge(c) {
				crossings = append(crossings, current)
				current = c
			}
		}
	}
	if !current.isEmpty() {
		crossings = append(crossings, current)
	}
	if len(crossings) == 0 {
		if l.Contains(last.Position()) {
			return []fragment.Intersection{fragment.FullIntersection}
		}
		return nil
	}
	crossings = sortAndMerge(crossings)
	tracer().Debugf("lasso: %d crossing(s) with stroke", len(crossings))
	return l.produceHitTestResults(crossings)
}

// sortAndMerge sorts crossings by begin and joins overlapping ones.
func sortAndMerge(crossings []crossing) []crossing {
	slices.SortStableFunc(crossings, func(a, b crossing) int {
		return a.fi.Compare(b.fi)
	})
	merged := crossings[:1]
	for _, c := range crossings[1:] {
		if !merged[len(merged)-1].merge(c) {
			merged = append(merged, c)
		}
	}
	return merged
}

// piece kinds of a stroke, as seen by produceHitTestResults
type piece int

const (
	outsideGap piece = iota
	insideGap
	boundary // crossing with at least one end inside
	touching // crossing with both ends outside
)

// produceHitTestResults turns a sorted list of disjoint crossings into
// intersections covering the whole stroke.
//
// The stroke is cut into alternating gaps and crossings. A gap is inside the
// lasso if the crossing end next to it is. Pieces are joined into one
// intersection as long as its in-segment stays contiguous. A crossing with
// both ends outside the lasso merely touches the boundary; it becomes an
// intersection of its own and is never joined with its neighbours.
func (l *Lasso) produceHitTestResults(crossings []crossing) []fragment.Intersection {
	n := len(crossings)
	beginIn := make([]bool, n)
	endIn := make([]bool, n)
	for i, c := range crossings {
		beginIn[i] = l.Contains(c.start.PointAt(c.fi.Begin))
		endIn[i] = l.Contains(c.end.PointAt(c.fi.End))
	}
	var results []fragment.Intersection
	joinable := false // may the next piece be joined with the last result?
	sealed := false   // has an outside gap followed the last result's in-segment?
	add := func(hit fragment.FIndices, kind piece) {
		if hit.IsEmpty() {
			return
		}
		if joinable && kind != touching {
			r := &results[len(results)-1]
			switch {
			case kind == boundary:
				r.HitSegment.End = hit.End
				return
			case kind == outsideGap:
				r.HitSegment.End = hit.End
				sealed = !r.InSegment.IsEmpty()
				return
			case r.InSegment.IsEmpty():
				r.HitSegment.End = hit.End
				r.InSegment = hit
				return
			case !sealed:
				r.HitSegment.End = hit.End
				r.InSegment.End = hit.End
				return
			}
		}
		si := fragment.Intersection{HitSegment: hit, InSegment: fragment.Empty}
		if kind == insideGap {
			si.InSegment = hit
		}
		if len(results) > 0 {
			si.HitSegment.Begin = results[len(results)-1].HitSegment.End
		} else {
			si.HitSegment.Begin = fragment.BeforeFirst
		}
		results = append(results, si)
		joinable, sealed = kind != touching, false
	}
	for x := 0; x <= n; x++ {
		gap := fragment.Full
		kind := outsideGap
		if x > 0 {
			gap.Begin = crossings[x-1].fi.End
			if endIn[x-1] {
				kind = insideGap
			}
		}
		if x < n {
			gap.End = crossings[x].fi.Begin
			if x == 0 && beginIn[0] {
				kind = insideGap
			}
		}
		add(gap, kind)
		if x < n {
			if !beginIn[x] && !endIn[x] {
				add(crossings[x].fi, touching)
			} else {
				add(crossings[x].fi, boundary)
			}
		}
	}
	if len(results) > 0 {
		results[len(results)-1].HitSegment.End = fragment.AfterLast
	}
	return results
}
