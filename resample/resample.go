// Package resample rewrites the sample sequences of a morphology
// skeleton in place so the spacing and endpoint geometry of every
// section satisfy the numeric constraints of watertight piecewise
// meshing and soma-arbor bridging.
//
// All operations mutate a single section synchronously; none is safe
// for concurrent mutation of the same section. Anomalies (empty or
// single-sample sections, suspected bad geometry, repaired samples)
// are reported through the package logger and never abort a whole-tree
// pass: each operation leaves its section in a structurally valid,
// best-effort state.
package resample

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bluemorph/skel"
	"github.com/bluemorph/skel/internal/d3"
)

const (
	// DefaultDistance is the target spacing, in morphology length
	// units, between consecutive samples after a global resample.
	DefaultDistance = 2.5
	// DefaultDuplicateThreshold is the adjacent-sample distance below
	// which the second sample of the pair is considered a duplicate.
	DefaultDuplicateThreshold = 1.0
)

const (
	// nearGapScale backs an inserted sample slightly off the exact
	// resampling distance so the shortened gap cannot re-trigger the
	// classification that produced it.
	nearGapScale = 0.99
	// stemEpsilon pads stem insertion distances, and the ratio bounds
	// replace strict comparisons, so stem resampling does not
	// oscillate on floating-point noise.
	stemEpsilon    = 1e-5
	stemUpperRatio = 1.001
	stemLowerRatio = 0.999
)

var logger = slog.Default()

// SetLogger redirects the package diagnostics. A nil logger restores
// the default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	logger = l
}

func sectionAttrs(sec *skel.Section) []any {
	return []any{"type", sec.Type.String(), "id", sec.ID}
}

// Section resamples a whole section to approximately the given spacing,
// splitting every over-long gap with auxiliary samples. Gaps longer than
// twice the spacing get a new sample at the spacing distance from the
// near sample; gaps between once and twice the spacing get one at the
// midpoint. The scan restarts from the first sample after every
// insertion: later insertions shift list indices and can change earlier
// gap classifications, so restarting trades a quadratic worst case for
// correctness. Sample ids are renumbered on completion.
func Section(sec *skel.Section, distance float64) {
	switch len(sec.Samples) {
	case 0:
		logger.Error("section has no samples, cannot be resampled", sectionAttrs(sec)...)
		return
	case 1:
		logger.Error("section has only one sample, cannot be resampled", sectionAttrs(sec)...)
		return
	case 2:
		length := d3.Dist(sec.Samples[0].Point, sec.Samples[1].Point)
		diameters := (sec.Samples[0].Radius + sec.Samples[1].Radius) * 2
		logger.Warn("section has only two samples",
			append(sectionAttrs(sec), "length", length, "diameters", diameters)...)
		if length < diameters {
			logger.Warn("bad section: shorter than its combined diameters", sectionAttrs(sec)...)
		}
	}

	for i := 0; i+1 < len(sec.Samples); {
		a, b := sec.Samples[i], sec.Samples[i+1]
		gap := d3.Dist(a.Point, b.Point)
		switch {
		case gap > distance*2:
			dir := d3.Unit(a.Point, b.Point)
			point := r3.Add(a.Point, r3.Scale(distance*nearGapScale, dir))
			radius := (a.Radius + b.Radius) * 0.5
			sec.InsertSample(i+1, skel.AuxiliarySample(point, radius, sec))
			i = 0
		case gap > distance && gap < distance*2:
			point := d3.Midpoint(a.Point, b.Point)
			radius := (a.Radius + b.Radius) * 0.5
			sec.InsertSample(i+1, skel.AuxiliarySample(point, radius, sec))
			i = 0
		default:
			i++
		}
	}

	sec.ReorderSamples()
}

// AddCenterSample inserts one auxiliary sample halfway between the two
// samples of a two-sample section, averaging position and radius, to
// avoid under-sampling artifacts. Sections with any other sample count
// are left alone.
func AddCenterSample(sec *skel.Section) {
	if len(sec.Samples) != 2 {
		return
	}
	point := d3.Midpoint(sec.Samples[0].Point, sec.Samples[1].Point)
	radius := (sec.Samples[0].Radius + sec.Samples[1].Radius) * 0.5
	sec.InsertSample(1, skel.AuxiliarySample(point, radius, sec))
	sec.ReorderSamples()
}

// RemoveDuplicates drops the second sample of every adjacent pair
// closer than threshold, rescanning from the start after each removal
// until no such pair remains. The final pair is never examined, so the
// last sample always survives to anchor the junction to any children.
func RemoveDuplicates(sec *skel.Section, threshold float64) {
	for {
		removed := false
		for i := 0; i+2 < len(sec.Samples); i++ {
			if d3.Dist(sec.Samples[i].Point, sec.Samples[i+1].Point) < threshold {
				sec.RemoveSampleAt(i + 1)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

// RemoveSomaInterior drops samples of a root section that lie closer to
// the soma center (the coordinate origin) than the section's first
// sample, which would otherwise fold the branch back into the soma.
// Non-root sections are left alone. A two-sample section recorded in
// reverse is repaired by flipping its orientation instead.
func RemoveSomaInterior(sec *skel.Section) {
	if sec.HasParent() {
		return
	}
	switch len(sec.Samples) {
	case 0:
		logger.Error("section has no samples", sectionAttrs(sec)...)
		return
	case 1:
		logger.Error("section has only one sample", sectionAttrs(sec)...)
		return
	}

	for {
		if len(sec.Samples) == 2 {
			if r3.Norm(sec.Samples[1].Point) < r3.Norm(sec.Samples[0].Point) {
				logger.Warn("repairing: flipping reversed root section", sectionAttrs(sec)...)
				sec.Samples[0], sec.Samples[1] = sec.Samples[1], sec.Samples[0]
			}
			return
		}
		// The first sample sets the admission distance; anything
		// nearer the origin than it sits inside the soma.
		minimal := r3.Norm(sec.Samples[0].Point)
		removed := false
		for i := 1; i < len(sec.Samples); i++ {
			if r3.Norm(sec.Samples[i].Point) < minimal {
				logger.Warn("repairing: removing sample inside soma", sectionAttrs(sec)...)
				sec.RemoveSampleAt(i)
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}

// RemoveWithinExtent removes every sample whose point lies strictly
// inside the sphere with the given center and radius, optionally
// sparing the first sample, and returns the number removed. Membership
// is evaluated against a snapshot of the sequence, so each sample is
// tested independently of removals made earlier in the same call.
// Sections with fewer than three samples are left alone.
func RemoveWithinExtent(sec *skel.Section, center r3.Vec, radius float64, ignoreFirst bool) int {
	if len(sec.Samples) < 2 {
		logger.Error("section has fewer than two samples, cannot be resampled", sectionAttrs(sec)...)
		return 0
	}
	if len(sec.Samples) == 2 {
		logger.Warn("section has only two samples, cannot be resampled", sectionAttrs(sec)...)
		return 0
	}

	snapshot := append([]*skel.Sample(nil), sec.Samples...)
	removed := 0
	for i, smp := range snapshot {
		if i == 0 && ignoreFirst {
			continue
		}
		if d3.InsideSphere(center, radius, smp.Point) {
			if sec.RemoveSample(smp) {
				removed++
			}
		}
	}
	return removed
}
