// Package selection models the transient set of article IDs a human has
// chosen for the next newsletter issue.
package selection

import "sort"

// Set is an unordered set of selected article IDs. It lives entirely on the
// dashboard side and is never persisted.
type Set struct {
	ids map[int64]struct{}
}

// New returns an empty selection.
func New() *Set {
	return &Set{ids: make(map[int64]struct{})}
}

// Toggle flips the membership of id and reports the new state. Applying it
// twice restores the previous state; membership is a pure function of the
// toggle count.
func (s *Set) Toggle(id int64) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether id is selected.
func (s *Set) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Count returns the number of selected IDs.
func (s *Set) Count() int {
	return len(s.ids)
}

// IDs returns the selected IDs in ascending order. The set itself is
// unordered; sorting keeps request bodies deterministic.
func (s *Set) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear empties the selection.
func (s *Set) Clear() {
	s.ids = make(map[int64]struct{})
}
