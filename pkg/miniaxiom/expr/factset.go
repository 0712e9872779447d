package expr

// FactSet is an insertion-ordered set of facts. The stable iteration
// order keeps proof search deterministic: provenance-witness selection
// depends on the order candidates are enumerated in.
type FactSet struct {
	order []Fact
	index map[string]struct{}
}

// NewFactSet creates a FactSet seeded with the given facts, in order.
func NewFactSet(facts ...Fact) *FactSet {
	s := &FactSet{index: make(map[string]struct{}, len(facts))}
	for _, f := range facts {
		s.Add(f)
	}
	return s
}

// Add inserts a fact. It returns false if the fact was already present.
func (s *FactSet) Add(f Fact) bool {
	k := f.Key()
	if _, ok := s.index[k]; ok {
		return false
	}
	s.index[k] = struct{}{}
	s.order = append(s.order, f)
	return true
}

// Contains reports membership.
func (s *FactSet) Contains(f Fact) bool {
	_, ok := s.index[f.Key()]
	return ok
}

// Len returns the number of facts.
func (s *FactSet) Len() int { return len(s.order) }

// Facts returns the facts in insertion order. The returned slice must
// not be modified.
func (s *FactSet) Facts() []Fact { return s.order }

// Clone returns an independent copy preserving insertion order.
func (s *FactSet) Clone() *FactSet {
	c := &FactSet{
		order: make([]Fact, len(s.order)),
		index: make(map[string]struct{}, len(s.index)),
	}
	copy(c.order, s.order)
	for k := range s.index {
		c.index[k] = struct{}{}
	}
	return c
}
