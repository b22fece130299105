// Package skel implements the section/sample data model for neuron
// morphology skeletons: trees of connected point/radius sequences as
// produced by a morphology loader. The resample package rewrites these
// trees in place so their spacing and endpoint geometry satisfy the
// constraints of downstream surface generation.
package skel

import "gonum.org/v1/gonum/spatial/r3"

// AuxiliaryID is the reserved sample identifier carried by samples
// synthesized by resampling operations until the owning section is
// renumbered. Samples loaded from a morphology file carry non-negative,
// section-local sequential ids.
const AuxiliaryID = -1

// Sample is a single point/radius measurement along a section.
type Sample struct {
	// Point is the sample position in morphology space.
	Point r3.Vec
	// Radius of the cross section at Point. Non-negative.
	Radius float64
	// ID is the section-local index of the sample.
	ID int
	// Auxiliary marks samples synthesized by a resampling operation
	// rather than present in the source morphology. Unlike ID, it
	// survives renumbering.
	Auxiliary bool
	// Section owns this sample. Back-reference for lookups only,
	// never for lifecycle.
	Section *Section
}

// NewSample returns a sample loaded from a morphology source.
func NewSample(point r3.Vec, radius float64, id int, sec *Section) *Sample {
	return &Sample{Point: point, Radius: radius, ID: id, Section: sec}
}

// AuxiliarySample returns a synthetic sample created by a resampling
// operation. Its id is AuxiliaryID until the owning section is reordered.
func AuxiliarySample(point r3.Vec, radius float64, sec *Section) *Sample {
	return &Sample{
		Point:     point,
		Radius:    radius,
		ID:        AuxiliaryID,
		Auxiliary: true,
		Section:   sec,
	}
}
