package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDistAndMidpoint(t *testing.T) {
	a := r3.Vec{X: 1, Y: 2, Z: 2}
	b := r3.Vec{X: 1, Y: 2, Z: 5}
	if got := Dist(a, b); got != 3 {
		t.Errorf("Dist = %g, want 3", got)
	}
	if got := Midpoint(a, b); !EqualWithin(got, r3.Vec{X: 1, Y: 2, Z: 3.5}, 1e-12) {
		t.Errorf("Midpoint = %v", got)
	}
}

func TestUnit(t *testing.T) {
	a := r3.Vec{X: 2}
	b := r3.Vec{X: 2, Y: 3, Z: 4}
	u := Unit(a, b)
	if math.Abs(r3.Norm(u)-1) > 1e-12 {
		t.Errorf("Unit norm = %g", r3.Norm(u))
	}
	// Coincident points: zero vector, not NaN.
	if got := Unit(a, a); got != (r3.Vec{}) {
		t.Errorf("Unit of coincident points = %v", got)
	}
}

func TestInsideSphere(t *testing.T) {
	center := r3.Vec{X: 1}
	if !InsideSphere(center, 2, r3.Vec{X: 2.5}) {
		t.Error("interior point reported outside")
	}
	// Membership is strict: the surface is outside.
	if InsideSphere(center, 2, r3.Vec{X: 3}) {
		t.Error("surface point reported inside")
	}
	if InsideSphere(center, 2, r3.Vec{X: 4}) {
		t.Error("exterior point reported inside")
	}
}
