package git

import (
	"maps"
	"slices"
)

// BranchSet is an unordered set of branch names.
type BranchSet map[string]struct{}

// NewBranchSet builds a set from the given names.
func NewBranchSet(names ...string) BranchSet {
	s := make(BranchSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s BranchSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s BranchSet) Add(name string) {
	s[name] = struct{}{}
}

// Minus returns the names in s that are in none of the others.
func (s BranchSet) Minus(others ...BranchSet) BranchSet {
	out := make(BranchSet)
	for name := range s {
		excluded := false
		for _, o := range others {
			if o.Has(name) {
				excluded = true
				break
			}
		}
		if !excluded {
			out[name] = struct{}{}
		}
	}
	return out
}

// Sorted returns the names in lexicographic order.
func (s BranchSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}
