// Package stack implements an immutable, reference counted parent-pointer tree
// (a cactus stack). Each Child operation returns a new Stack that shares the
// whole chain beneath it, so many stacks can share a common ancestry without
// copying.
//
// *Important*: copying a Stack value does not take ownership. Use Clone to
// obtain an owned alias and Release to give one up. A node is reclaimed once
// every handle and every child node referencing it has been released.
//
// Child does not consume its receiver, so each stack it returns is owned and
// must be released. Chaining Child calls (New().Child(4).Child(3)) leaks the
// intermediate handles; use Push, which moves the receiver's reference into
// the new node, to build a chain.
package stack

import (
	"fmt"
	"sync/atomic"
)

// RefCounter is the reference count primitive a Stack is instantiated with.
// It is satisfied by *Local and *Atomic only.
type RefCounter[R any] interface {
	*R
	retain()
	tryRetain() bool
	release() int64
	tryUnique() bool
	load() int64
}

// Local is a reference count that must not be shared between goroutines.
type Local struct {
	n int64
}

func (c *Local) retain() { c.n++ }

func (c *Local) tryRetain() bool {
	if c.n <= 0 {
		return false
	}
	c.n++
	return true
}

func (c *Local) release() int64 {
	c.n--
	return c.n
}

// tryUnique drops the count from 1 to 0, claiming the node for its sole owner.
func (c *Local) tryUnique() bool {
	if c.n != 1 {
		return false
	}
	c.n = 0
	return true
}

func (c *Local) load() int64 { return c.n }

// Atomic is a reference count that is safe to retain and release from many
// goroutines at once.
type Atomic struct {
	n atomic.Int64
}

func (c *Atomic) retain() { c.n.Add(1) }

func (c *Atomic) tryRetain() bool {
	for {
		n := c.n.Load()
		if n <= 0 {
			return false
		}
		if c.n.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (c *Atomic) release() int64 { return c.n.Add(-1) }

func (c *Atomic) tryUnique() bool { return c.n.CompareAndSwap(1, 0) }

func (c *Atomic) load() int64 { return c.n.Load() }

type node[T any, R any] struct {
	rc     R
	val    T
	parent *node[T, R]
}

// Stack is a handle to a (possibly empty) position in a cactus stack. The
// zero value is an empty stack with no hooks attached.
type Stack[T any, R any, PR RefCounter[R]] struct {
	n *node[T, R]
	h *hooks[T]
}

// ID identifies the node at the top of a Stack. IDs are comparable and two
// stacks have the same ID iff they point at the same node.
type ID struct {
	n any
}

// New returns an empty stack. Every stack derived from it shares the hooks
// configured by opts.
func New[T any, R any, PR RefCounter[R]](opts ...Option) Stack[T, R, PR] {
	return Stack[T, R, PR]{h: newHooks[T](opts)}
}

// IsEmpty reports whether the stack holds no node.
func (s Stack[T, R, PR]) IsEmpty() bool {
	return s.n == nil
}

// Len returns the number of nodes from s up to and including the root.
func (s Stack[T, R, PR]) Len() int {
	l := 0
	for n := s.n; n != nil; n = n.parent {
		l++
	}
	return l
}

// Child returns a new stack with val on top of s. s is left untouched and
// stays owned by the caller. The returned stack is owned too and must be
// released, so do not chain Child calls: use Push for that.
func (s Stack[T, R, PR]) Child(val T) Stack[T, R, PR] {
	if s.n != nil {
		PR(&s.n.rc).retain()
	}
	return s.push(val)
}

// Push is like Child but consumes s: the reference s owned is moved into the
// new node. s must not be used afterwards.
func (s Stack[T, R, PR]) Push(val T) Stack[T, R, PR] {
	return s.push(val)
}

func (s Stack[T, R, PR]) push(val T) Stack[T, R, PR] {
	n := &node[T, R]{val: val, parent: s.n}
	PR(&n.rc).retain()
	s.h.allocated()
	return Stack[T, R, PR]{n: n, h: s.h}
}

// Parent returns an owned handle to the parent of s. The returned stack is
// empty when s is a root. ok is false when s itself is empty.
func (s Stack[T, R, PR]) Parent() (parent Stack[T, R, PR], ok bool) {
	if s.n == nil {
		return s, false
	}
	p := s.n.parent
	if p != nil {
		PR(&p.rc).retain()
	}
	return Stack[T, R, PR]{n: p, h: s.h}, true
}

// Val returns the value at the top of s.
func (s Stack[T, R, PR]) Val() (val T, ok bool) {
	if s.n == nil {
		return val, false
	}
	return s.n.val, true
}

// Clone returns an owned alias of s.
func (s Stack[T, R, PR]) Clone() Stack[T, R, PR] {
	if s.n != nil {
		PR(&s.n.rc).retain()
	}
	return s
}

// TryClone is like Clone but fails when the node of s has already been
// reclaimed. It lets caches holding their own reference hand out aliases
// while another goroutine may be releasing the cached one.
func (s Stack[T, R, PR]) TryClone() (Stack[T, R, PR], bool) {
	if s.n == nil {
		return s, true
	}
	if !PR(&s.n.rc).tryRetain() {
		return Stack[T, R, PR]{h: s.h}, false
	}
	return s, true
}

// Release gives up the reference owned by s. Nodes whose count drops to zero
// are reclaimed leaf first, walking towards the root only while counts keep
// reaching zero. s must not be used afterwards.
func (s Stack[T, R, PR]) Release() {
	n := s.n
	for n != nil {
		left := PR(&n.rc).release()
		if left > 0 {
			return
		}
		if left < 0 {
			panic(fmt.Sprintf("stack: node released %d more time(s) than it was retained", -left))
		}

		s.h.reclaimed(n.val)
		n = n.reclaim()
	}
}

// reclaim drops the value and parent link of a node whose count reached
// zero and returns the parent, whose reference the node owned.
func (n *node[T, R]) reclaim() *node[T, R] {
	parent := n.parent
	var zero T
	n.val = zero
	n.parent = nil
	return parent
}

// Same reports whether s and o point at the same node. Two empty stacks are
// the same.
func (s Stack[T, R, PR]) Same(o Stack[T, R, PR]) bool {
	return s.n == o.n
}

// ID returns the identity of the node at the top of s, or the zero ID when s
// is empty.
func (s Stack[T, R, PR]) ID() ID {
	if s.n == nil {
		return ID{}
	}
	return ID{n: s.n}
}

func (s Stack[T, R, PR]) refs() int64 {
	if s.n == nil {
		return 0
	}
	return PR(&s.n.rc).load()
}
