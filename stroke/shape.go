package stroke

import (
	"fmt"
	"math"

	"github.com/npillmayer/inkhit"
	"github.com/npillmayer/inkhit/polygon"
)

// EllipseSegments is the number of knots used to approximate an elliptic
// stylus tip by a polygon.
var EllipseSegments = 16

// TipShape selects the outline of a stylus tip.
type TipShape int

// Stylus tip outlines.
const (
	Ellipse TipShape = iota
	Rectangle
)

func (tip TipShape) String() string {
	switch tip {
	case Ellipse:
		return "ellipse"
	case Rectangle:
		return "rectangle"
	}
	return fmt.Sprintf("TipShape(%d)", int(tip))
}

// Shape describes a stylus tip: an ellipse or rectangle of a given width
// and height, centered at the stylus position and rotated counter-clockwise
// by Rotation degrees. It is used both for the pen which drew a stroke and
// for an eraser.
type Shape struct {
	Width    float64
	Height   float64
	Rotation float64 // in degrees
	Tip      TipShape
}

// DefaultShape is a round tip of diameter 2.
func DefaultShape() Shape {
	return Shape{Width: 2, Height: 2, Tip: Ellipse}
}

// Validate checks for malformed dimensions.
func (sh Shape) Validate() error {
	if !positive(sh.Width) || !positive(sh.Height) {
		return fmt.Errorf("%w: stylus shape %gx%g, dimensions must be positive",
			inkhit.ErrInvalidArgument, sh.Width, sh.Height)
	}
	if math.IsNaN(sh.Rotation) || math.IsInf(sh.Rotation, 0) {
		return fmt.Errorf("%w: stylus shape rotation %g", inkhit.ErrInvalidArgument, sh.Rotation)
	}
	if sh.Tip != Ellipse && sh.Tip != Rectangle {
		return fmt.Errorf("%w: unknown %s", inkhit.ErrInvalidArgument, sh.Tip)
	}
	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Size is the larger of width and height.
func (sh Shape) Size() float64 {
	return math.Max(sh.Width, sh.Height)
}

// Polygon returns the outline of the tip, centered at the origin.
// The result is convex and counter-clockwise.
func (sh Shape) Polygon() *polygon.Polygon {
	unit := polygon.NullPolygon()
	switch sh.Tip {
	case Rectangle:
		unit = polygon.Box(inkhit.P(-1, -1), inkhit.P(1, 1))
	default:
		n := max(EllipseSegments, 4)
		for k := 0; k < n; k++ {
			phi := 2 * math.Pi * float64(k) / float64(n)
			unit.Knot(inkhit.P(math.Cos(phi), math.Sin(phi)))
		}
		unit.Cycle()
	}
	at := inkhit.Scaling(sh.Width/2, sh.Height/2)
	if sh.Rotation != 0 {
		at = at.Combine(inkhit.Rotation(sh.Rotation * inkhit.Deg2Rad))
	}
	return unit.Transformed(at)
}
