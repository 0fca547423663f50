package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a value is requested from an empty stack.
	ErrEmpty = errors.New("stack is empty")

	// ErrShared is returned when a value cannot be moved out of a node because
	// other handles or child nodes still reference it.
	ErrShared = errors.New("stack node is shared")
)

// TryTake moves the value out of s when s is the only owner of its node. On
// success s is consumed: the node is reclaimed and its parent released. The
// reclaim func does not see a moved value since the caller now owns it.
//
// When the node is aliased TryTake returns an error wrapping ErrShared and s
// is left untouched, still owned by the caller, who may clone the value
// or propagate the condition. An empty s yields ErrEmpty.
func (s Stack[T, R, PR]) TryTake() (T, error) {
	var zero T
	if s.n == nil {
		return zero, ErrEmpty
	}

	if !PR(&s.n.rc).tryUnique() {
		s.h.takeShared()
		return zero, fmt.Errorf("%w: %d owners", ErrShared, PR(&s.n.rc).load())
	}

	val := s.n.val
	s.h.takeMoved()
	s.h.moved()
	parent := s.n.reclaim()
	Stack[T, R, PR]{n: parent, h: s.h}.Release()
	return val, nil
}

// TakeOrClone consumes s and returns its value. The value is moved when s is
// the only owner of its node and cloned otherwise. A nil clone copies the
// value by assignment. ok is false when s is empty.
func (s Stack[T, R, PR]) TakeOrClone(clone func(T) T) (val T, ok bool) {
	val, err := s.TryTake()
	if err == nil {
		return val, true
	}
	if errors.Is(err, ErrEmpty) {
		return val, false
	}

	val = s.n.val
	if clone != nil {
		val = clone(val)
	}
	s.Release()
	return val, true
}
