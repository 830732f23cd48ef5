package scheduler

// SATIndex assigns each candidate section a 1-based SAT variable number
// and back again, in the order the sections were supplied.
type SATIndex struct {
	order   []Section
	toIndex map[string]int
}

// NewSATIndex builds an index over sections, numbering them 1..len(sections)
// in iteration order.
func NewSATIndex(sections []Section) *SATIndex {
	idx := &SATIndex{
		order:   make([]Section, len(sections)),
		toIndex: make(map[string]int, len(sections)),
	}
	copy(idx.order, sections)
	for i, s := range sections {
		idx.toIndex[s.AsString] = i + 1
	}
	return idx
}

// Len returns the number of SAT variables the index defines.
func (idx *SATIndex) Len() int {
	return len(idx.order)
}

// IndexOf returns section's 1-based variable number.
func (idx *SATIndex) IndexOf(section Section) int {
	return idx.toIndex[section.AsString]
}

// SectionAt returns the section for a signed SAT literal; the sign is
// ignored, only |literal| is used to look up the variable.
func (idx *SATIndex) SectionAt(literal int) Section {
	if literal < 0 {
		literal = -literal
	}
	return idx.order[literal-1]
}

// Sections returns every indexed section, in variable order.
func (idx *SATIndex) Sections() []Section {
	return idx.order
}
