// Package cactus provides immutable cactus stacks (also called spaghetti stacks
// or parent-pointer trees). A cactus stack is a possibly empty node with a
// possibly absent parent. Rather than mutating a stack, Child returns a new
// stack on top of the old one and Parent walks back down, so many stacks can
// share the same ancestry:
//
//	c := cactus.New[int]().Push(1)
//	c2 := c.Child(2)
//	c3 := c.Child(3)
//	fmt.Println(c2, c3) // Cactus[2, 1] Cactus[3, 1]
//
// Nodes are reference counted. Copying a stack value does not take ownership;
// Clone does, and every owned stack must eventually be released with Release
// (or consumed by Push, TryTake or TakeOrClone). Child leaves its receiver
// owned and returns another owned stack, so build chains with Push rather than
// chained Child calls, which leak the intermediate handles.
//
// Cactus is the cheaper flavour and must stay within one goroutine.
// SyncCactus uses atomic counts and may be cloned and released from any
// goroutine.
package cactus

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"

	"github.com/openfga/cactus/internal/stack"
)

// Cactus is a cactus stack whose reference counts are not synchronized.
type Cactus[T any] = stack.Stack[T, stack.Local, *stack.Local]

// SyncCactus is a cactus stack whose reference counts are atomic.
type SyncCactus[T any] = stack.Stack[T, stack.Atomic, *stack.Atomic]

// ID identifies the node at the top of a stack.
type ID = stack.ID

// Observer is notified about node allocation, reclamation and takes.
type Observer = stack.Observer

// Option configures a tree of stacks.
type Option = stack.Option

var (
	// ErrEmpty is returned by TryTake on an empty stack.
	ErrEmpty = stack.ErrEmpty

	// ErrShared is returned by TryTake when the node has other owners.
	ErrShared = stack.ErrShared
)

var seed = maphash.MakeSeed()

// New returns an empty single goroutine stack.
func New[T any](opts ...Option) Cactus[T] {
	return stack.New[T, stack.Local](opts...)
}

// NewSync returns an empty stack that may be shared between goroutines.
func NewSync[T any](opts ...Option) SyncCactus[T] {
	return stack.New[T, stack.Atomic](opts...)
}

// From returns the stack obtained by pushing vals in order onto an empty
// stack, so the last value ends up on top.
func From[T any](vals ...T) Cactus[T] {
	return pushAll(New[T](), vals)
}

// FromSync is From for SyncCactus.
func FromSync[T any](vals ...T) SyncCactus[T] {
	return pushAll(NewSync[T](), vals)
}

func pushAll[T any, R any, PR stack.RefCounter[R]](s stack.Stack[T, R, PR], vals []T) stack.Stack[T, R, PR] {
	for _, v := range vals {
		s = s.Push(v)
	}
	return s
}

// WithObserver attaches o to every stack derived from the new stack.
func WithObserver(o Observer) Option {
	return stack.WithObserver(o)
}

// WithReclaimFunc registers fn to receive the value of each reclaimed node.
func WithReclaimFunc[T any](fn func(T)) Option {
	return stack.WithReclaimFunc(fn)
}

// Equal reports whether a and b hold the same values in the same order.
func Equal[T comparable, R any, PR stack.RefCounter[R]](a, b stack.Stack[T, R, PR]) bool {
	return a.EqualFunc(b, func(x, y T) bool {
		return x == y
	})
}

// Hash returns a hash of the values of s that is consistent with Equal. Hashes
// are stable for the lifetime of the process only.
func Hash[T comparable, R any, PR stack.RefCounter[R]](s stack.Stack[T, R, PR]) uint64 {
	return s.HashFunc(func(d *xxhash.Digest, v T) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, v))
		_, _ = d.Write(buf[:])
	})
}
