/*
Package inkhit implements the geometric core for hit-testing freehand ink:
points, affine transformations, bounding boxes, and the floating-point
tolerance predicates every other package relies on.

Ink strokes are ordered sequences of real-valued sample points. Selecting
them with a lasso or erasing parts of them reduces to one question: which
fractions of which strokes are touched by a shape that grows point by
point. Sub-packages answer that question:

	fragment   fractional index ranges over a stroke and their algebra
	polygon    small convex-polygon toolbox (hulls, clipping)
	stroke     strokes, stylus tips and the node adapter used for cutting
	lasso      lasso polygons, containment and stroke crossing
	eraser     eraser shapes swept along input points
	hittest    incremental lasso and eraser hit testers

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package inkhit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'inkhit'
func tracer() tracing.Trace {
	return tracing.Select("inkhit")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : coordinates below ε are snapped to 0 by Zap.
// This is a coarse, absolute threshold; comparisons between coordinates
// use the relative predicates in tolerance.go.
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector.
//
// Pairs are complex numbers, so addition, subtraction and negation are
// plain arithmetic: p+q, p-q, -p.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs, tolerating floating point noise.
func (p Pair) Equal(p2 Pair) bool {
	return AreClose(p.X(), p2.X()) && AreClose(p.Y(), p2.Y())
}

// IsFinite is a predicate: are both parts of p finite numbers?
func (p Pair) IsFinite() bool {
	return !math.IsNaN(p.X()) && !math.IsNaN(p.Y()) &&
		!math.IsInf(p.X(), 0) && !math.IsInf(p.Y(), 0)
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	T := Translation(v)
	return T.Transform(p).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	T := Rotation(theta)
	return T.Transform(p).Zap()
}

// Dot is the scalar product p·q.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross is the z-component of the cross product p×q.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Length is the Euclidean norm of p.
func (p Pair) Length() float64 {
	return cmplx.Abs(complex128(p))
}

// Dist is the Euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return (q - p).Length()
}

// Lerp interpolates linearly: t=0 yields p, t=1 yields q.
func (p Pair) Lerp(q Pair, t float64) Pair {
	return p + (q - p).Scaled(t)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scale x-parts by sx and y-parts by sy.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin := math.Sin(theta)
	cos := math.Cos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	p1 := vec1[0] * vec2[0]
	p2 := vec1[1] * vec2[1]
	p3 := vec1[2] * vec2[2]
	return p1 + p2 + p3
}

// Combine 2 affine transformation to a new one. Returns a new transformation
// without changing the argument(s). The result applies m first, then n.
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	c := []float64{p.X(), p.Y(), 1.0}
	c = m.multiplyVector(c)
	q := P(c[0], c[1])
	if !q.IsFinite() {
		tracer().Errorf("transform %s maps %s to non-finite %s", m, p, q)
	}
	return q
}
