package stack

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// All returns the nodes of s, starting at s and walking towards the root.
// The yielded stacks are borrowed from s: Clone one to keep it beyond the
// lifetime of s.
func (s Stack[T, R, PR]) All() iter.Seq[Stack[T, R, PR]] {
	return func(yield func(Stack[T, R, PR]) bool) {
		for n := s.n; n != nil; n = n.parent {
			if !yield(Stack[T, R, PR]{n: n, h: s.h}) {
				return
			}
		}
	}
}

// Values returns the values of s, starting at s and walking towards the root.
func (s Stack[T, R, PR]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.n; n != nil; n = n.parent {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Slice collects the values of s, top first.
func (s Stack[T, R, PR]) Slice() []T {
	return slices.Collect(s.Values())
}

// String renders s as Cactus[top, ..., root].
func (s Stack[T, R, PR]) String() string {
	var b strings.Builder
	b.WriteString("Cactus[")
	i := 0
	for v := range s.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
		i++
	}
	b.WriteByte(']')
	return b.String()
}
