package skel

// Morphology aggregates the section tree of a single cell: one or more
// root sections attached to the soma, each the head of an arbor. The
// morphology does not own the soma itself; root sections reference it
// only through their soma bridging fields.
type Morphology struct {
	Roots []*Section
}

// AddRoot attaches a root section to the morphology.
func (m *Morphology) AddRoot(sec *Section) {
	m.Roots = append(m.Roots, sec)
}

// AddChild links child under s, resolving both reference directions the
// way the morphology loader does, and derives the child's branching
// order from its parent.
func (s *Section) AddChild(child *Section) {
	child.Parent = s
	child.ParentID = s.ID
	child.BranchingOrder = s.BranchingOrder + 1
	s.Children = append(s.Children, child)
	s.ChildrenIDs = append(s.ChildrenIDs, child.ID)
}

// ForEachSection visits every section of the morphology depth-first,
// parents before children.
func (m *Morphology) ForEachSection(f func(*Section)) {
	var walk func(*Section)
	walk = func(sec *Section) {
		f(sec)
		for _, child := range sec.Children {
			walk(child)
		}
	}
	for _, root := range m.Roots {
		walk(root)
	}
}

// SampleCount returns the total number of samples over all sections.
func (m *Morphology) SampleCount() int {
	var n int
	m.ForEachSection(func(sec *Section) { n += len(sec.Samples) })
	return n
}
