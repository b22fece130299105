package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Small r3 helper routines shared by the skeleton packages.

// Dist returns the euclidean distance between points a and b.
func Dist(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Unit returns the unit vector pointing from a towards b.
// Coincident points yield the zero vector instead of NaNs.
func Unit(a, b r3.Vec) r3.Vec {
	d := r3.Sub(b, a)
	n := r3.Norm(d)
	if n == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/n, d)
}

// InsideSphere reports whether p lies strictly inside the sphere
// with the given center and radius.
func InsideSphere(center r3.Vec, radius float64, p r3.Vec) bool {
	return Dist(center, p) < radius
}

// EqualWithin compares two vectors component-wise within tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}
