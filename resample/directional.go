package resample

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bluemorph/skel"
	"github.com/bluemorph/skel/internal/d3"
)

// Front clears a radius-sized zone around the section's parent-facing
// end so the section does not geometrically overlap its parent at the
// junction. Every sample within radius(first)*sqrt(2) of the first
// sample is removed, then one auxiliary sample is inserted at exactly
// that distance along the direction to the surviving second sample,
// carrying the second sample's radius. Sample ids are renumbered.
func Front(sec *skel.Section) {
	logger.Debug("resampling section front", sectionAttrs(sec)...)
	if resampleFront(sec) {
		sec.ReorderSamples()
	}
}

// Rear applies the front clearance logic to the child-facing end by
// transiently reversing the sample sequence. The reversal is an
// in-place transformation of the same owned sequence, not a new
// section.
func Rear(sec *skel.Section) {
	logger.Debug("resampling section rear", sectionAttrs(sec)...)
	sec.ReverseSamples()
	ok := resampleFront(sec)
	sec.ReverseSamples()
	if ok {
		sec.ReorderSamples()
	}
}

// resampleFront holds the shared front/rear clearance algorithm. It
// reports whether the section was mutated; refusals leave the section
// untouched.
func resampleFront(sec *skel.Section) bool {
	if len(sec.Samples) < 2 {
		logger.Error("section has fewer than two samples, cannot be resampled", sectionAttrs(sec)...)
		return false
	}

	first := sec.Samples[0]
	clearance := first.Radius * math.Sqrt2

	if len(sec.Samples) > 2 {
		// Refuse outright if clearing the zone would leave nothing
		// beyond the first sample to aim the auxiliary sample at.
		survivors := 0
		for _, smp := range sec.Samples[1:] {
			if !d3.InsideSphere(first.Point, clearance, smp.Point) {
				survivors++
			}
		}
		if survivors == 0 {
			logger.Warn("section lies entirely within its clearance zone, cannot be resampled",
				sectionAttrs(sec)...)
			return false
		}

		if n := RemoveWithinExtent(sec, first.Point, clearance, true); n > 0 {
			logger.Debug("removed samples within clearance zone",
				append(sectionAttrs(sec), "removed", n)...)
		}
	}

	dir := d3.Unit(first.Point, sec.Samples[1].Point)
	point := r3.Add(first.Point, r3.Scale(clearance, dir))
	sec.InsertSample(1, skel.AuxiliarySample(point, sec.Samples[1].Radius, sec))
	return true
}

// Stem resamples the interior of a section to uniform spacing while
// preserving the two samples at either end, so front and rear clearance
// resampling stays intact. The target spacing is twice the first
// sample's radius for the half of the section nearer the start and
// twice the last sample's radius beyond the arclength midpoint. A
// distance-ratio test against stemUpperRatio/stemLowerRatio replaces
// strict comparison so the pass cannot oscillate; the scan restarts at
// the second sample after every structural change, for the same reason
// Section restarts at the first.
func Stem(sec *skel.Section) {
	if len(sec.Samples) < 2 {
		logger.Error("section has fewer than two samples, cannot be resampled", sectionAttrs(sec)...)
		return
	}

	// Length is measured once, before any mutation.
	length := sec.Length()
	frontDistance := sec.Samples[0].Radius * 2
	rearDistance := sec.Samples[len(sec.Samples)-1].Radius * 2

	i := 1
	for {
		target := frontDistance
		if sec.LengthToSample(i) >= 0.5*length {
			target = rearDistance
		}

		if i >= len(sec.Samples)-2 {
			break
		}

		a, b := sec.Samples[i], sec.Samples[i+1]
		gap := d3.Dist(a.Point, b.Point)
		ratio := gap / target
		switch {
		case ratio > stemUpperRatio:
			dir := d3.Unit(a.Point, b.Point)
			point := r3.Add(a.Point, r3.Scale(target+stemEpsilon, dir))
			radius := (a.Radius + b.Radius) * 0.5
			sec.InsertSample(i+1, skel.AuxiliarySample(point, radius, sec))
			i = 1
		case ratio < stemLowerRatio:
			sec.RemoveSampleAt(i + 1)
			i = 1
		default:
			i++
		}
	}

	sec.ReorderSamples()
}
