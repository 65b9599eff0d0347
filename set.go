package collutils

import "golang.org/x/exp/maps"

// Set is a set of elements.
// A nil Set is absent input for functions in this package, while an empty non-nil Set is empty input.
type Set[T comparable] map[T]struct{}

// NewSet returns a new non-nil Set containing elems.
func NewSet[T comparable](elems ...T) Set[T] {
	set := make(Set[T], len(elems))
	for _, elem := range elems {
		set[elem] = struct{}{}
	}

	return set
}

// Add adds elem to s.
func (s Set[T]) Add(elem T) {
	s[elem] = struct{}{}
}

// Contains returns true if elem is in s.
func (s Set[T]) Contains(elem T) bool {
	_, ok := s[elem]
	return ok
}

// Len returns the number of elements in s.
func (s Set[T]) Len() int {
	return len(s)
}

// Slice returns the elements of s in undefined order.
// It returns nil if s is nil.
func (s Set[T]) Slice() []T {
	if s == nil {
		return nil
	}

	return maps.Keys(s)
}

// union adds all elements of other to s, returning s.
func (s Set[T]) union(other Set[T]) Set[T] {
	for elem := range other {
		s[elem] = struct{}{}
	}

	return s
}
