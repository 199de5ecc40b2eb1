package ir

import "iter"

// ValueSet is a set of values under canonical equality.
//
// The set holds references to its members; they must not be mutated while
// in the set.
type ValueSet struct {
	buckets map[uint64][]*Value
	n       int
}

func NewValueSet(vs ...*Value) *ValueSet {
	s := &ValueSet{buckets: map[uint64][]*Value{}}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add adds v unless an equal value is already present, reporting whether
// it was added.
func (s *ValueSet) Add(v *Value) bool {
	h := v.Hash()
	for _, m := range s.buckets[h] {
		if Equal(m, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	s.n++
	return true
}

func (s *ValueSet) Has(v *Value) bool {
	for _, m := range s.buckets[v.Hash()] {
		if Equal(m, v) {
			return true
		}
	}
	return false
}

func (s *ValueSet) Len() int {
	return s.n
}

// All iterates over the members in no particular order.
func (s *ValueSet) All() iter.Seq[*Value] {
	return func(yield func(*Value) bool) {
		for _, bucket := range s.buckets {
			for _, v := range bucket {
				if !yield(v) {
					return
				}
			}
		}
	}
}
