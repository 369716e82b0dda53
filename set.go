package fstkv

// Set is the value-less counterpart to Map: an immutable, byte-ordered
// collection of keys backed by the same FST machinery, with every value
// fixed at 0.
type Set struct {
	m *Map
}

// NewSet validates data as an FST and wraps it in an owned Set.
func NewSet(data []byte) (*Set, error) {
	m, err := NewMap(data)
	if err != nil {
		return nil, err
	}
	return &Set{m: m}, nil
}

// OpenSet memory-maps path and wraps it in a borrowed Set.
func OpenSet(path string) (*Set, error) {
	m, err := OpenMap(path)
	if err != nil {
		return nil, err
	}
	return &Set{m: m}, nil
}

// Close releases any resources backing the Set.
func (s *Set) Close() error { return s.m.Close() }

// Contains reports whether key is a member.
func (s *Set) Contains(key []byte) (bool, error) { return s.m.Contains(key) }

// Len returns the number of members.
func (s *Set) Len() int { return s.m.Len() }

// Equal reports whether s and other hold the same length and an identical
// ordered sequence of keys.
func (s *Set) Equal(other *Set) (bool, error) {
	if s.Len() != other.Len() {
		return false, nil
	}
	a, err := s.Keys()
	if err != nil {
		return false, err
	}
	defer a.Close()
	b, err := other.Keys()
	if err != nil {
		return false, err
	}
	defer b.Close()
	for a.Next() {
		if !b.Next() {
			return false, b.Err()
		}
		if string(a.Key()) != string(b.Key()) {
			return false, nil
		}
	}
	if err := a.Err(); err != nil {
		return false, err
	}
	if b.Next() {
		return false, nil
	}
	return true, b.Err()
}

// Keys returns a full, ascending scan of every member.
func (s *Set) Keys() (*KeyIterator, error) { return s.m.Keys() }

// Range returns every member within bounds.
func (s *Set) Range(bounds RangeBounds) (*KeyIterator, error) {
	it, err := s.m.Range(bounds)
	if err != nil {
		return nil, err
	}
	return newKeyIterator(it), nil
}

// StartsWith returns every member with the given byte prefix, further
// narrowed by bounds.
func (s *Set) StartsWith(prefix []byte, bounds RangeBounds) (*KeyIterator, error) {
	it, err := s.m.StartsWith(prefix, bounds)
	if err != nil {
		return nil, err
	}
	return newKeyIterator(it), nil
}

// Subsequence returns every member containing pattern as a subsequence,
// further narrowed by bounds.
func (s *Set) Subsequence(pattern []byte, bounds RangeBounds) (*KeyIterator, error) {
	it, err := s.m.Subsequence(pattern, bounds)
	if err != nil {
		return nil, err
	}
	return newKeyIterator(it), nil
}

// Search returns every member accepted by aut, further narrowed by bounds.
func (s *Set) Search(aut Automaton, bounds RangeBounds) (*KeyIterator, error) {
	it, err := s.m.Search(aut, bounds)
	if err != nil {
		return nil, err
	}
	return newKeyIterator(it), nil
}

// IsSubset reports whether every member of s is also a member of other.
func (s *Set) IsSubset(other *Set) (bool, error) { return setRelation(s, other, false) }

// IsProperSubset reports whether s is a subset of other and smaller than it.
func (s *Set) IsProperSubset(other *Set) (bool, error) {
	if s.Len() >= other.Len() {
		return false, nil
	}
	return setRelation(s, other, false)
}

// IsSuperset reports whether every member of other is also a member of s.
func (s *Set) IsSuperset(other *Set) (bool, error) { return setRelation(other, s, false) }

// IsProperSuperset reports whether s is a superset of other and larger than it.
func (s *Set) IsProperSuperset(other *Set) (bool, error) {
	if s.Len() <= other.Len() {
		return false, nil
	}
	return setRelation(other, s, false)
}

// IsDisjoint reports whether s and other share no members.
func (s *Set) IsDisjoint(other *Set) (bool, error) { return setRelation(s, other, true) }

// setRelation reports, for every key in sub: if disjoint is false, whether
// it is also present in super (subset test); if disjoint is true, whether
// none of sub's keys are present in super.
func setRelation(sub, super *Set, disjoint bool) (bool, error) {
	it, err := sub.Keys()
	if err != nil {
		return false, err
	}
	defer it.Close()
	for it.Next() {
		ok, err := super.Contains(it.Key())
		if err != nil {
			return false, err
		}
		if disjoint && ok {
			return false, nil
		}
		if !disjoint && !ok {
			return false, nil
		}
	}
	return true, it.Err()
}
