package inkhit

import "math"

// === Tolerant Comparison ===================================================

// Tolerance is a relative epsilon. Two numbers a and b are considered
// close if they differ by less than (|a|+|b|+10)·tol, i.e. the slack
// grows with the magnitude of the operands and is symmetric.
//
// Results near the tolerance boundary are not guaranteed; callers must
// not depend on them, only on values well inside or outside.
type Tolerance float64

const (
	// DblEpsilon is the smallest ε such that 1.0+ε != 1.0.
	DblEpsilon Tolerance = 2.2204460492503131e-016
	// DblEpsilon2 is a looser tolerance for secondary comparisons,
	// e.g. of accumulated weights, where more slack is acceptable.
	DblEpsilon2 Tolerance = 1e-13
)

func (tol Tolerance) eps(a, b float64) float64 {
	return (math.Abs(a) + math.Abs(b) + 10.0) * float64(tol)
}

// AreClose is a predicate: is a ≈ b ?
// Exact equality is checked first, which makes infinities close to themselves.
func (tol Tolerance) AreClose(a, b float64) bool {
	if a == b {
		return true
	}
	eps := tol.eps(a, b)
	if math.IsInf(eps, 0) { // operands near ±MaxFloat64 overflow the sum
		return false
	}
	delta := a - b
	return -eps < delta && eps > delta
}

// LessThan is a predicate: is a < b and not a ≈ b ?
func (tol Tolerance) LessThan(a, b float64) bool {
	return a < b && !tol.AreClose(a, b)
}

// GreaterThan is a predicate: is a > b and not a ≈ b ?
func (tol Tolerance) GreaterThan(a, b float64) bool {
	return a > b && !tol.AreClose(a, b)
}

// LessThanOrClose is a predicate: is a < b or a ≈ b ?
func (tol Tolerance) LessThanOrClose(a, b float64) bool {
	return a < b || tol.AreClose(a, b)
}

// GreaterThanOrClose is a predicate: is a > b or a ≈ b ?
func (tol Tolerance) GreaterThanOrClose(a, b float64) bool {
	return a > b || tol.AreClose(a, b)
}

// IsZero is a predicate: is a ≈ 0 ?
func (tol Tolerance) IsZero(a float64) bool {
	return math.Abs(a) < 10.0*float64(tol)
}

// IsOne is a predicate: is a ≈ 1 ?
func (tol Tolerance) IsOne(a float64) bool {
	return math.Abs(a-1.0) < 10.0*float64(tol)
}

// AreClose compares with DblEpsilon.
func AreClose(a, b float64) bool {
	return DblEpsilon.AreClose(a, b)
}

// LessThan compares with DblEpsilon.
func LessThan(a, b float64) bool {
	return DblEpsilon.LessThan(a, b)
}

// GreaterThan compares with DblEpsilon.
func GreaterThan(a, b float64) bool {
	return DblEpsilon.GreaterThan(a, b)
}

// LessThanOrClose compares with DblEpsilon.
func LessThanOrClose(a, b float64) bool {
	return DblEpsilon.LessThanOrClose(a, b)
}

// GreaterThanOrClose compares with DblEpsilon.
func GreaterThanOrClose(a, b float64) bool {
	return DblEpsilon.GreaterThanOrClose(a, b)
}

// IsZero compares with DblEpsilon.
func IsZero(a float64) bool {
	return DblEpsilon.IsZero(a)
}

// IsOne compares with DblEpsilon.
func IsOne(a float64) bool {
	return DblEpsilon.IsOne(a)
}
