package cactus

import (
	"fmt"
	"hash/maphash"
	"sync"
	"sync/atomic"

	"github.com/Yiling-J/theine-go"
)

const defaultMaxInternedNodes = 10000

// Interner hash-conses SyncCactus nodes: asking it for the same value on top
// of the same parent returns the node it handed out before, as long as that
// node is still cached. Stacks built only through one Interner that hold equal
// values are therefore usually the Same node, which makes Equal O(1) for them.
//
// The cache keeps its own reference to every cached node and releases it on
// eviction or Close. Interner is safe for concurrent use.
type Interner[T comparable] struct {
	root  SyncCactus[T]
	cache *theine.Cache[internKey, *internEntry[T]]

	// mu serializes misses so that a key is never cached twice.
	mu sync.Mutex
}

// internKey identifies a node by its parent and the hash of its value. The
// value itself is compared after lookup so that hash collisions never alias.
type internKey struct {
	parent ID
	sum    uint64
}

type internEntry[T comparable] struct {
	stack    SyncCactus[T]
	released atomic.Bool
}

func (e *internEntry[T]) release() {
	if e.released.CompareAndSwap(false, true) {
		e.stack.Release()
	}
}

type internerConfig struct {
	maxEntries int64
	opts       []Option
}

// InternerOption configures an Interner.
type InternerOption func(*internerConfig)

// WithMaxEntries bounds the number of nodes the interner keeps cached. Once the
// bound is reached nodes are evicted following theine's admission policy.
func WithMaxEntries(n int64) InternerOption {
	return func(c *internerConfig) {
		c.maxEntries = n
	}
}

// WithStackOptions configures the stacks created by the interner.
func WithStackOptions(opts ...Option) InternerOption {
	return func(c *internerConfig) {
		c.opts = append(c.opts, opts...)
	}
}

// NewInterner returns an Interner with an empty cache.
func NewInterner[T comparable](opts ...InternerOption) (*Interner[T], error) {
	cfg := internerConfig{maxEntries: defaultMaxInternedNodes}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxEntries <= 0 {
		return nil, fmt.Errorf("interner max entries must be positive, got %d", cfg.maxEntries)
	}

	cache, err := theine.NewBuilder[internKey, *internEntry[T]](cfg.maxEntries).
		RemovalListener(func(_ internKey, e *internEntry[T], _ theine.RemoveReason) {
			e.release()
		}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build interner cache: %w", err)
	}

	return &Interner[T]{
		root:  NewSync[T](cfg.opts...),
		cache: cache,
	}, nil
}

// Root returns the empty stack interned stacks are built on.
func (in *Interner[T]) Root() SyncCactus[T] {
	return in.root
}

// Child returns an owned stack with val on top of parent, reusing a cached node
// when one exists. parent stays owned by the caller.
func (in *Interner[T]) Child(parent SyncCactus[T], val T) SyncCactus[T] {
	key := internKey{parent: parent.ID(), sum: maphash.Comparable(seed, val)}
	if s, ok := in.lookup(key, val); ok {
		return s
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if s, ok := in.lookup(key, val); ok {
		return s
	}

	if parent.IsEmpty() {
		parent = in.root
	}
	s := parent.Child(val)

	if e, ok := in.cache.Get(key); ok && !e.released.Load() {
		// a live node with a colliding value owns the slot
		return s
	}

	e := &internEntry[T]{stack: s.Clone()}
	if !in.cache.Set(key, e, 1) {
		e.release()
	}
	return s
}

// From interns vals pushed in order on the root.
func (in *Interner[T]) From(vals ...T) SyncCactus[T] {
	s := in.root
	for _, v := range vals {
		next := in.Child(s, v)
		s.Release()
		s = next
	}
	return s
}

func (in *Interner[T]) lookup(key internKey, val T) (SyncCactus[T], bool) {
	e, ok := in.cache.Get(key)
	if !ok {
		return SyncCactus[T]{}, false
	}

	s, ok := e.stack.TryClone()
	if !ok {
		return s, false
	}
	if v, _ := s.Val(); v != val {
		s.Release()
		return SyncCactus[T]{}, false
	}
	return s, true
}

// Len returns the number of cached nodes.
func (in *Interner[T]) Len() int {
	return in.cache.Len()
}

// Close releases every cached node and stops the cache.
func (in *Interner[T]) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.cache.Range(func(_ internKey, e *internEntry[T]) bool {
		e.release()
		return true
	})
	in.cache.Close()
}
