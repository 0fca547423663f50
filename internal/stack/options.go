//go:generate mockgen -source options.go -destination ../mocks/mock_observer.go -package mocks Observer

package stack

import "fmt"

// Observer is notified about the lifecycle of the nodes of a tree. Calls are
// made synchronously from whichever goroutine performs the operation, so
// implementations attached to an Atomic stack must be safe for concurrent use.
type Observer interface {
	// NodeAllocated is called once for every node created by Child or Push.
	NodeAllocated()

	// NodeReclaimed is called once for every node whose count reached zero.
	NodeReclaimed()

	// TakeMoved is called when TryTake moved a value out of a uniquely owned node.
	TakeMoved()

	// TakeShared is called when TryTake refused to move a value out of an aliased node.
	TakeShared()
}

type config struct {
	observer Observer
	reclaim  any
}

// Option configures the hooks shared by every stack derived from New.
type Option func(*config)

// WithObserver attaches an Observer to the tree.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// WithReclaimFunc registers fn to be called with the value of every node as it
// is reclaimed. fn runs before the node drops its value. Values moved out by
// TryTake or TakeOrClone are not passed to fn.
func WithReclaimFunc[T any](fn func(T)) Option {
	return func(c *config) {
		c.reclaim = fn
	}
}

type hooks[T any] struct {
	observer Observer
	reclaim  func(T)
}

func newHooks[T any](opts []Option) *hooks[T] {
	if len(opts) == 0 {
		return nil
	}

	var c config
	for _, opt := range opts {
		opt(&c)
	}

	h := &hooks[T]{observer: c.observer}
	if c.reclaim != nil {
		fn, ok := c.reclaim.(func(T))
		if !ok {
			var zero T
			panic(fmt.Sprintf("stack: reclaim func %T does not accept %T", c.reclaim, zero))
		}
		h.reclaim = fn
	}

	if h.observer == nil && h.reclaim == nil {
		return nil
	}
	return h
}

func (h *hooks[T]) allocated() {
	if h != nil && h.observer != nil {
		h.observer.NodeAllocated()
	}
}

func (h *hooks[T]) reclaimed(val T) {
	if h == nil {
		return
	}
	if h.reclaim != nil {
		h.reclaim(val)
	}
	if h.observer != nil {
		h.observer.NodeReclaimed()
	}
}

// moved reports the reclamation of a node whose value was handed to the caller.
func (h *hooks[T]) moved() {
	if h != nil && h.observer != nil {
		h.observer.NodeReclaimed()
	}
}

func (h *hooks[T]) takeMoved() {
	if h != nil && h.observer != nil {
		h.observer.TakeMoved()
	}
}

func (h *hooks[T]) takeShared() {
	if h != nil && h.observer != nil {
		h.observer.TakeShared()
	}
}
