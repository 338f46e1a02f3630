/*
Package fragment names contiguous pieces of a stroke.

A stroke is an ordered sequence of sample points with integer indices
0…n-1. A fragment is a range [Begin, End) over real-valued indices, where a
fractional index denotes a position interpolated between two sample points:
2.5 is halfway between point 2 and point 3.

Two sentinel indices, BeforeFirst and AfterLast, mark the literal start and
end of a stroke. A fragment beginning at BeforeFirst covers the stroke's
starting tip, whereas a fragment beginning at 0 starts at the first sample
point. Sentinels are ±math.MaxFloat64; ordering and merging depend on them
being the most extreme values, so they must not be replaced by, e.g., -1.

Hit-testing produces lists of Intersection values. The functions in this
package extract, merge and mask the fragments of such lists.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fragment

import (
	"fmt"
	"math"
	"slices"

	"github.com/npillmayer/inkhit"
)

const (
	// BeforeFirst is the index in front of a stroke's first point.
	BeforeFirst = -math.MaxFloat64
	// AfterLast is the index behind a stroke's last point.
	AfterLast = math.MaxFloat64
)

// FIndices is a range of fractional point indices of a stroke.
type FIndices struct {
	Begin, End float64
}

// Empty is the canonical empty fragment.
var Empty = FIndices{Begin: AfterLast, End: BeforeFirst}

// Full is the fragment covering a whole stroke.
var Full = FIndices{Begin: BeforeFirst, End: AfterLast}

// New creates a fragment.
func New(begin, end float64) FIndices {
	return FIndices{Begin: begin, End: end}
}

// IsEmpty is a predicate: is Begin ≥ End (within tolerance)?
func (f FIndices) IsEmpty() bool {
	return inkhit.GreaterThanOrClose(f.Begin, f.End)
}

// IsFull is a predicate: does f cover the whole stroke?
func (f FIndices) IsFull() bool {
	return inkhit.AreClose(f.Begin, BeforeFirst) && inkhit.AreClose(f.End, AfterLast)
}

// Compare orders fragments by Begin only. Fragments with close Begin values
// compare as equal, regardless of their End.
func (f FIndices) Compare(g FIndices) int {
	if inkhit.AreClose(f.Begin, g.Begin) {
		return 0
	}
	if f.Begin < g.Begin {
		return -1
	}
	return 1
}

// Overlaps is a predicate: do f and g share at least one index?
// Touching fragments overlap.
func (f FIndices) Overlaps(g FIndices) bool {
	return inkhit.LessThanOrClose(f.Begin, g.End) && inkhit.LessThanOrClose(g.Begin, f.End)
}

// Union returns the smallest fragment covering f and g.
func (f FIndices) Union(g FIndices) FIndices {
	return FIndices{Begin: math.Min(f.Begin, g.Begin), End: math.Max(f.End, g.End)}
}

func (f FIndices) String() string {
	return "{" + indexString(f.Begin) + "," + indexString(f.End) + "}"
}

func indexString(i float64) string {
	switch i {
	case BeforeFirst:
		return "BeforeFirst"
	case AfterLast:
		return "AfterLast"
	}
	return fmt.Sprintf("%g", i)
}

// Merge sorts a list of fragments by Begin (stable) and joins overlapping
// or touching neighbours. Empty fragments are dropped. The argument is
// not modified.
func Merge(fragments []FIndices) []FIndices {
	sorted := make([]FIndices, 0, len(fragments))
	for _, f := range fragments {
		if !f.IsEmpty() {
			sorted = append(sorted, f)
		}
	}
	slices.SortStableFunc(sorted, FIndices.Compare)
	return appendMerged(nil, sorted...)
}

// appendMerged appends fragments, assumed to be sorted by Begin, to a
// merged list. A fragment beginning before the end of the last entry
// extends that entry.
func appendMerged(merged []FIndices, fragments ...FIndices) []FIndices {
	for _, f := range fragments {
		if f.IsEmpty() {
			continue
		}
		if n := len(merged); n > 0 && inkhit.GreaterThanOrClose(merged[n-1].End, f.Begin) {
			merged[n-1].End = math.Max(merged[n-1].End, f.End)
			continue
		}
		merged = append(merged, f)
	}
	return merged
}
