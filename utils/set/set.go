package set

import (
	"golang.org/x/exp/maps"
)

// Set is a plain set of comparable items.
type Set[T comparable] map[T]struct{}

// New creates a Set from the given items.
func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Insert(items...)

	return s
}

func (s Set[T]) Insert(items ...T) Set[T] {
	for i := range items {
		s[items[i]] = struct{}{}
	}

	return s
}

func (s Set[T]) Has(item T) bool {
	_, ok := s[item]
	return ok
}

// HasAny returns true if any of the given items is in the set.
func (s Set[T]) HasAny(items ...T) bool {
	for i := range items {
		if s.Has(items[i]) {
			return true
		}
	}

	return false
}

// List returns the items in no particular order.
func (s Set[T]) List() []T {
	return maps.Keys(s)
}

func (s Set[T]) Len() int {
	return len(s)
}
