package hittest

import (
	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/eraser"
	"github.com/npillmayer/inkhit/fragment"
	"github.com/npillmayer/inkhit/stroke"
)

// EraseMode selects what an eraser tester reports for a touched stroke.
type EraseMode int

const (
	ErasePoints  EraseMode = iota // report the touched fragments
	EraseStrokes                  // report the whole stroke
)

func (m EraseMode) String() string {
	if m == EraseStrokes {
		return "erase-strokes"
	}
	return "erase-points"
}

// StrokeHit is reported by an eraser tester for every stroke it touched.
// Fragments are sorted and never empty.
type StrokeHit struct {
	Stroke    *stroke.Stroke
	Fragments []fragment.FIndices
}

// EraserTester tests strokes against an eraser tip moved along a path.
type EraserTester struct {
	tracker
	sweep *eraser.Sweep
	mask  *eraser.Sweep
	mode  EraseMode
	onHit func(StrokeHit)
}

// NewEraserTester creates an eraser tester with a tip of the given shape.
// onHit may be nil.
func NewEraserTester(strokes Strokes, shape stroke.Shape, mode EraseMode, onHit func(StrokeHit)) (*EraserTester, error) {
	sw, err := eraser.New(shape)
	if err != nil {
		return nil, err
	}
	et := &EraserTester{sweep: sw, mode: mode, onHit: onHit}
	et.init(strokes)
	return et, nil
}

// SetMask sets an edit mask. Fragments inside the mask's latest increment
// are never reported. A nil mask removes the mask.
func (et *EraserTester) SetMask(mask *eraser.Sweep) {
	et.mask = mask
}

// Sweep returns the eraser sweep of the tester.
func (et *EraserTester) Sweep() *eraser.Sweep {
	return et.sweep
}

// AddPoint moves the eraser to p.
func (et *EraserTester) AddPoint(p inkhit.Pair) error {
	return et.AddPoints([]inkhit.Pair{p})
}

// AddPoints moves the eraser along a batch of points and reports every
// stroke it touches. Hits are reported after all strokes have been tested,
// so the handler may change the stroke collection.
func (et *EraserTester) AddPoints(points []inkhit.Pair) error {
	if err := et.checkBatch(points); err != nil {
		return err
	}
	if err := et.sweep.MoveTo(points); err != nil {
		return err
	}
	var hits []StrokeHit
	for _, info := range et.infos {
		info.dirty = false
		if !et.sweep.Bounds().Intersects(info.stroke.Bounds()) {
			continue
		}
		frags := et.erased(info.stroke)
		if len(frags) == 0 {
			continue
		}
		info.isHit = true
		hits = append(hits, StrokeHit{Stroke: info.stroke, Fragments: frags})
	}
	tracer().Debugf("hittest: eraser touched %d stroke(s)", len(hits))
	if et.onHit != nil {
		for _, h := range hits {
			et.onHit(h)
		}
	}
	return nil
}

func (et *EraserTester) erased(s *stroke.Stroke) []fragment.FIndices {
	sis := et.sweep.EraseTest(s)
	if len(sis) == 0 {
		return nil
	}
	var frags []fragment.FIndices
	if et.mask != nil {
		mask := fragment.GetHitSegments(et.mask.EraseTest(s))
		frags = fragment.GetMaskedHitSegments(sis, mask)
	} else {
		frags = fragment.GetHitSegments(sis)
	}
	if len(frags) > 0 && et.mode == EraseStrokes {
		return []fragment.FIndices{fragment.Full}
	}
	return frags
}
