package wfc

import (
	"cmp"
	"iter"
	"slices"
)

// Set is an ordered set of candidate values.
//
// Elements are kept sorted and unique, so iteration order is deterministic
// across runs. The engine relies on that: a seeded random source produces
// identical collapse sequences only if the n-th candidate of a set is
// always the same value.
//
// A Set shares its backing storage when copied. Treat sets handed to or
// returned from the engine as immutable; derive new ones with Without.
type Set[T cmp.Ordered] struct {
	elems []T
}

// NewSet builds a set from the given values, sorting and deduplicating.
func NewSet[T cmp.Ordered](values ...T) Set[T] {
	elems := slices.Clone(values)
	slices.Sort(elems)
	elems = slices.Compact(elems)
	return Set[T]{elems: elems}
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s.elems)
}

// IsEmpty reports whether the set has no elements.
func (s Set[T]) IsEmpty() bool {
	return len(s.elems) == 0
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := slices.BinarySearch(s.elems, v)
	return ok
}

// Values returns the elements in ascending order as a fresh slice.
func (s Set[T]) Values() []T {
	return slices.Clone(s.elems)
}

// All iterates the elements in ascending order.
func (s Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.elems {
			if !yield(v) {
				return
			}
		}
	}
}

// Without returns a copy of the set with v removed.
// The receiver is left untouched.
func (s Set[T]) Without(v T) Set[T] {
	i, ok := slices.BinarySearch(s.elems, v)
	if !ok {
		return Set[T]{elems: s.elems}
	}
	elems := make([]T, 0, len(s.elems)-1)
	elems = append(elems, s.elems[:i]...)
	elems = append(elems, s.elems[i+1:]...)
	return Set[T]{elems: elems}
}

// Equal reports whether both sets hold exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	return slices.Equal(s.elems, other.elems)
}

// at returns the i-th element in sorted order.
// Used by the engine for random candidate selection.
func (s Set[T]) at(i int) T {
	return s.elems[i]
}
