// File: set.go
// Role: Membership-only vertex set returned by traversals.
//
// Determinism:
//   - Set is a plain map; Slice() order is unspecified. Sort the result
//     when reproducible output is needed.

package core

// Set is an unordered collection of distinct vertices.
// The zero value is a nil map: reads work, Add panics. Use NewSet.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, v := range items {
		s[v] = struct{}{}
	}

	return s
}

// Add inserts v; adding an existing member is a no-op.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is a member.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// Slice returns the members as a new slice in unspecified order.
func (s Set[T]) Slice() []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}

	return out
}

// Equal reports whether s and other hold exactly the same members.
// A nil Set equals an empty one.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Has(v) {
			return false
		}
	}

	return true
}
