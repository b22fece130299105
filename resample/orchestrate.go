package resample

import "github.com/bluemorph/skel"

// Components applies the per-section resampling policy: front clearance
// when the section has a parent, rear clearance when it has children.
// Axon sections are skipped until their resampling is validated, short
// sections are skipped by flag, and sections shorter than the sum of
// their end-sample diameters are skipped with a diagnostic, since
// resampling them risks producing degenerate geometry.
func Components(sec *skel.Section) {
	if sec.IsAxon() {
		return
	}
	if sec.IsShort {
		return
	}
	if len(sec.Samples) == 0 {
		logger.Error("section has no samples, cannot be resampled", sectionAttrs(sec)...)
		return
	}

	length := sec.Length()
	minimal := (sec.Samples[0].Radius + sec.Samples[len(sec.Samples)-1].Radius) * 2
	if length < minimal {
		logger.Info("section too short to resample",
			append(sectionAttrs(sec), "length", length, "minimal", minimal)...)
		return
	}

	if sec.HasParent() {
		Front(sec)
	}
	if sec.HasChildren() {
		Rear(sec)
	}

	// TODO: call Stem for primary sections once the child-angle gate
	// (only when the two children's outgoing directions are within 15
	// or beyond 165 degrees) is validated against reference meshes.
	// Until then the stem keeps its loaded spacing.
}

// Tree resamples every section of the morphology in place. A section's
// anomaly never aborts the pass; traversal always reaches every
// section.
func Tree(m *skel.Morphology) {
	m.ForEachSection(Components)
}
