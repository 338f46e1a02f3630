/*
Package hittest provides incremental hit testers for lasso selection and
erasing.

A hit tester lives for one gesture. It tracks a collection of strokes and
consumes the gesture's input points in batches. After every batch it
reports which strokes are affected: a lasso tester reports strokes which
became selected or deselected, an eraser tester reports the fragments of
every stroke the eraser touched.

Hit testers cache per-stroke state between batches. Callers have to push
changes of the tracked strokes into the tester (StrokeChanged,
StrokesChanged); the tester does not observe strokes by itself. Calls into
a hit tester have to be serialized by the caller.

	tester, _ := hittest.NewLassoTester(strokes, 80, func(ch hittest.SelectionChange) {
	    ...
	})
	tester.AddPoints(batch1)
	tester.AddPoints(batch2)
	tester.EndHitTesting()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package hittest

import (
	"fmt"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/stroke"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkhit.hittest'
func tracer() tracing.Trace {
	return tracing.Select("inkhit.hittest")
}

// PercentageTolerance is subtracted from the weight threshold a stroke has
// to reach to be hit.
var PercentageTolerance = 0.0001

// Strokes is the ordered stroke collection a hit tester tracks.
// *stroke.Collection implements it.
type Strokes interface {
	Len() int
	At(i int) *stroke.Stroke
}

// tracker holds what lasso and eraser testers have in common: the tracked
// strokes, a cache entry per stroke, and the gesture state.
type tracker struct {
	strokes Strokes
	infos   []*strokeInfo
	ended   bool
}

func (tr *tracker) init(strokes Strokes) {
	tr.strokes = strokes
	tr.infos = make([]*strokeInfo, strokes.Len())
	for i := range tr.infos {
		tr.infos[i] = newStrokeInfo(strokes.At(i))
	}
}

// IsValid is a predicate: does the tester still accept input?
func (tr *tracker) IsValid() bool {
	return !tr.ended
}

// EndHitTesting ends the gesture and releases all cached state. Adding
// points afterwards fails with inkhit.ErrInvalidOperation.
func (tr *tracker) EndHitTesting() {
	tracer().Debugf("hittest: end of gesture, releasing %d stroke(s)", len(tr.infos))
	tr.ended = true
	tr.infos = nil
	tr.strokes = nil
}

// IsHit is a predicate: has the tester reported s as hit?
func (tr *tracker) IsHit(s *stroke.Stroke) bool {
	if info := tr.find(s); info != nil {
		return info.isHit
	}
	return false
}

// StrokeChanged has to be called whenever the points or the shape of a
// tracked stroke change. The stroke will be tested from scratch with the
// next batch.
func (tr *tracker) StrokeChanged(s *stroke.Stroke) {
	if info := tr.find(s); info != nil {
		info.invalidate()
	}
}

// StrokesChanged has to be called whenever strokes are added to or removed
// from the tracked collection.
func (tr *tracker) StrokesChanged(ch stroke.Change) {
	if tr.ended || ch.IsEmpty() {
		return
	}
	if i, n := ch.Index, len(ch.Removed); i >= 0 && i+n <= len(tr.infos) {
		added := make([]*strokeInfo, len(ch.Added))
		for k, s := range ch.Added {
			added[k] = newStrokeInfo(s)
		}
		infos := append([]*strokeInfo{}, tr.infos[:i]...)
		infos = append(infos, added...)
		tr.infos = append(infos, tr.infos[i+n:]...)
	}
	if !tr.inSync() {
		tracer().Errorf("hittest: stroke cache out of sync, rebuilding")
		tr.rebuild()
	}
}

func (tr *tracker) inSync() bool {
	if len(tr.infos) != tr.strokes.Len() {
		return false
	}
	for i, info := range tr.infos {
		if info.stroke != tr.strokes.At(i) {
			return false
		}
	}
	return true
}

// rebuild matches cached entries to the current strokes by identity.
// Entries without a stroke are dropped.
func (tr *tracker) rebuild() {
	old := make(map[*stroke.Stroke]*strokeInfo, len(tr.infos))
	for _, info := range tr.infos {
		old[info.stroke] = info
	}
	tr.infos = make([]*strokeInfo, tr.strokes.Len())
	for i := range tr.infos {
		s := tr.strokes.At(i)
		if info, ok := old[s]; ok {
			tr.infos[i] = info
		} else {
			tr.infos[i] = newStrokeInfo(s)
		}
	}
}

func (tr *tracker) find(s *stroke.Stroke) *strokeInfo {
	for _, info := range tr.infos {
		if info.stroke == s {
			return info
		}
	}
	return nil
}

// checkBatch validates the state of the tester and a batch of input points.
func (tr *tracker) checkBatch(points []inkhit.Pair) error {
	if tr.ended {
		return fmt.Errorf("hittest: hit testing has ended: %w", inkhit.ErrInvalidOperation)
	}
	if len(points) == 0 {
		return fmt.Errorf("hittest: empty point batch: %w", inkhit.ErrInvalidArgument)
	}
	for _, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("hittest: point %s: %w", p, inkhit.ErrInvalidArgument)
		}
	}
	return nil
}
