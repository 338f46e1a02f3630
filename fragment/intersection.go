package fragment

import "github.com/npillmayer/inkhit"

// Intersection is the unit of output of hit-testing a stroke.
//
// HitSegment is the part of the stroke which the shape's boundary crossed
// or covered, InSegment the part considered inside the shape. Lists of
// intersections are sorted by HitSegment.Begin.
type Intersection struct {
	HitSegment FIndices
	InSegment  FIndices
}

// FullIntersection denotes a stroke completely inside a shape.
var FullIntersection = Intersection{HitSegment: Full, InSegment: Full}

// IsEmpty is a predicate: is the hit segment empty?
func (si Intersection) IsEmpty() bool {
	return si.HitSegment.IsEmpty()
}

func (si Intersection) String() string {
	return "hit=" + si.HitSegment.String() + ",in=" + si.InSegment.String()
}

// GetInSegments extracts the in-segments from a list of intersections,
// which must be sorted by hit segment. Empty segments are skipped,
// overlapping or touching ones are merged.
func GetInSegments(intersections []Intersection) []FIndices {
	var segments []FIndices
	for _, si := range intersections {
		segments = appendMerged(segments, si.InSegment)
	}
	return segments
}

// GetHitSegments extracts the hit segments from a list of intersections,
// which must be sorted by hit segment. Empty segments are skipped,
// overlapping or touching ones are merged.
func GetHitSegments(intersections []Intersection) []FIndices {
	var segments []FIndices
	for _, si := range intersections {
		segments = appendMerged(segments, si.HitSegment)
	}
	return segments
}

// GetMaskedHitSegments subtracts mask from the hit segments of a list of
// intersections. Both intersections and mask have to be sorted by Begin.
//
// A hit segment passes unchanged if no mask fragment touches it, is
// clipped if a mask fragment covers one of its ends, or is split in two if
// a mask fragment lies strictly inside it. The result is sorted.
func GetMaskedHitSegments(intersections []Intersection, mask []FIndices) []FIndices {
	var segments []FIndices
	m := 0
	for _, si := range intersections {
		hit := si.HitSegment
		if hit.IsEmpty() {
			continue
		}
		// masks ending in front of this hit cannot touch any later hit either
		for m < len(mask) && (mask[m].IsEmpty() || inkhit.LessThanOrClose(mask[m].End, hit.Begin)) {
			m++
		}
		cur := hit.Begin
		for k := m; k < len(mask) && inkhit.LessThan(mask[k].Begin, hit.End); k++ {
			if mask[k].IsEmpty() {
				continue
			}
			if inkhit.GreaterThan(mask[k].Begin, cur) {
				segments = append(segments, FIndices{Begin: cur, End: mask[k].Begin})
			}
			if mask[k].End > cur {
				cur = mask[k].End
			}
			if inkhit.GreaterThanOrClose(cur, hit.End) {
				break
			}
		}
		if inkhit.LessThan(cur, hit.End) {
			segments = append(segments, FIndices{Begin: cur, End: hit.End})
		}
	}
	return segments
}
