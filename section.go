package skel

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bluemorph/skel/internal/d3"
)

// SectionType tags a section with the arbor it belongs to. The numeric
// values match the SWC structure identifiers.
type SectionType int

const (
	Unknown        SectionType = 0
	Axon           SectionType = 2
	BasalDendrite  SectionType = 3
	ApicalDendrite SectionType = 4
)

// String returns the arbor name for the type. Values outside the known
// set fall back to UNKNOWN_BRANCH_TYPE rather than erroring.
func (t SectionType) String() string {
	switch t {
	case Axon:
		return "AXON"
	case BasalDendrite:
		return "BASAL_DENDRITE"
	case ApicalDendrite:
		return "APICAL_DENDRITE"
	default:
		return "UNKNOWN_BRANCH_TYPE"
	}
}

// NoParent is the ParentID value of a root section.
const NoParent = -1

// Section is a maximal run of connected samples between two tree
// junctions, or between a junction and a terminal tip. It owns its
// sample sequence; parent/children references are non-owning and are
// resolved by the morphology loader.
type Section struct {
	// ID, ParentID and ChildrenIDs are the topology identifiers as
	// loaded from the source format. ParentID is NoParent for roots.
	ID          int
	ParentID    int
	ChildrenIDs []int

	// Samples, ordered from the parent-facing end to the child-facing
	// end. Exclusively owned by the section.
	Samples []*Sample

	Type SectionType

	// Parent and Children are resolved tree references.
	Parent   *Section
	Children []*Section

	// IsPrimary is set when the section is a direct geometric
	// continuation of its parent.
	IsPrimary bool
	// IsShort bypasses resampling entirely.
	IsShort bool
	// BranchingOrder is the depth of the section from its root.
	BranchingOrder int

	// Soma bridging state consumed by the mesh builder. Resampling
	// leaves these untouched.
	ConnectedToSoma  bool
	SomaFaceIndex    int
	SomaFaceCentroid r3.Vec
}

// NewSection assembles a section over the given samples and points each
// sample back at the new section.
func NewSection(id, parentID int, childrenIDs []int, samples []*Sample, typ SectionType) *Section {
	s := &Section{
		ID:          id,
		ParentID:    parentID,
		ChildrenIDs: childrenIDs,
		Samples:     samples,
		Type:        typ,
	}
	for _, smp := range samples {
		smp.Section = s
	}
	return s
}

// IsAxon reports whether the section belongs to the axon.
func (s *Section) IsAxon() bool { return s.Type == Axon }

// IsBasalDendrite reports whether the section belongs to a basal dendrite.
func (s *Section) IsBasalDendrite() bool { return s.Type == BasalDendrite }

// IsApicalDendrite reports whether the section belongs to an apical dendrite.
func (s *Section) IsApicalDendrite() bool { return s.Type == ApicalDendrite }

// IsRoot reports whether the section has no resolved parent.
func (s *Section) IsRoot() bool { return s.Parent == nil }

// HasParent reports whether the section has a parent. A section that
// claims a parent id but lacks a resolved reference is treated as
// parentless.
func (s *Section) HasParent() bool {
	return s.ParentID != NoParent && s.Parent != nil
}

// HasChildren reports whether the section has child sections, resolved
// or not.
func (s *Section) HasChildren() bool {
	return len(s.ChildrenIDs) > 0 || len(s.Children) > 0
}

// ReorderSamples reassigns each sample's id to its current position in
// the sequence. Structural mutations do not maintain ids; callers must
// reorder before relying on them. Idempotent.
func (s *Section) ReorderSamples() {
	for i, smp := range s.Samples {
		smp.ID = i
	}
}

// InsertSample inserts smp at position i, shifting later samples up.
func (s *Section) InsertSample(i int, smp *Sample) {
	s.Samples = append(s.Samples, nil)
	copy(s.Samples[i+1:], s.Samples[i:])
	s.Samples[i] = smp
}

// RemoveSampleAt removes the sample at position i.
func (s *Section) RemoveSampleAt(i int) {
	s.Samples = append(s.Samples[:i], s.Samples[i+1:]...)
}

// RemoveSample removes smp from the sequence by identity and reports
// whether it was found.
func (s *Section) RemoveSample(smp *Sample) bool {
	for i, have := range s.Samples {
		if have == smp {
			s.RemoveSampleAt(i)
			return true
		}
	}
	return false
}

// ReverseSamples flips the sample order in place. Used to apply
// front-end logic to the rear of a section.
func (s *Section) ReverseSamples() {
	for i, j := 0, len(s.Samples)-1; i < j; i, j = i+1, j-1 {
		s.Samples[i], s.Samples[j] = s.Samples[j], s.Samples[i]
	}
}

// Length returns the arclength of the section: the sum of the
// euclidean distances between consecutive samples.
func (s *Section) Length() float64 {
	var length float64
	for i := 0; i+1 < len(s.Samples); i++ {
		length += d3.Dist(s.Samples[i].Point, s.Samples[i+1].Point)
	}
	return length
}

// LengthToSample returns the cumulative arclength from the first sample
// up to the sample at position i.
func (s *Section) LengthToSample(i int) float64 {
	var length float64
	for j := 0; j < i && j+1 < len(s.Samples); j++ {
		length += d3.Dist(s.Samples[j].Point, s.Samples[j+1].Point)
	}
	return length
}
