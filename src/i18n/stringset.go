// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package i18n

// A StringSet is a set of strings that remembers insertion order.
// The zero value is an empty set ready for use.
type StringSet struct {
	values []string
	index  map[string]struct{}
}

// NewStringSet returns a set holding the given values
func NewStringSet(values ...string) StringSet {
	var s StringSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v at the end of the set if it is not already in it.
// It returns false if v was already there.
func (s *StringSet) Add(v string) bool {
	if s.Contains(v) {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	s.index[v] = struct{}{}
	s.values = append(s.values, v)
	return true
}

// Contains returns true if v is in the set
func (s StringSet) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of values in the set
func (s StringSet) Len() int {
	return len(s.values)
}

// First returns the first inserted value, or "" if the set is empty
func (s StringSet) First() string {
	if len(s.values) == 0 {
		return ""
	}
	return s.values[0]
}

// Values returns a copy of the values in insertion order
func (s StringSet) Values() []string {
	if len(s.values) == 0 {
		return nil
	}
	return append([]string(nil), s.values...)
}
