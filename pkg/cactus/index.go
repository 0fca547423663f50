package cactus

import "sync"

// Index maps stacks to values by their sequence of values, so two stacks built
// independently from equal values find the same entry. The index owns a
// reference to every stored key and releases it on Delete or Close.
//
// Index is safe for concurrent use.
type Index[T comparable, V any] struct {
	mu      sync.RWMutex
	buckets map[uint64][]indexEntry[T, V]
	size    int
}

type indexEntry[T comparable, V any] struct {
	key SyncCactus[T]
	val V
}

// NewIndex returns an empty index.
func NewIndex[T comparable, V any]() *Index[T, V] {
	return &Index[T, V]{
		buckets: make(map[uint64][]indexEntry[T, V]),
	}
}

// Put associates val with key. If an equal key is already present its value is
// replaced and the stored key is kept; otherwise the index retains key. The
// caller keeps ownership of key either way.
func (i *Index[T, V]) Put(key SyncCactus[T], val V) {
	h := Hash(key)

	i.mu.Lock()
	defer i.mu.Unlock()

	bucket := i.buckets[h]
	for j := range bucket {
		if Equal(bucket[j].key, key) {
			bucket[j].val = val
			return
		}
	}
	i.buckets[h] = append(bucket, indexEntry[T, V]{key: key.Clone(), val: val})
	i.size++
}

// Get returns the value stored for a key equal to key.
func (i *Index[T, V]) Get(key SyncCactus[T]) (V, bool) {
	h := Hash(key)

	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, e := range i.buckets[h] {
		if Equal(e.key, key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry for a key equal to key and releases the stored key.
// It reports whether an entry was removed.
func (i *Index[T, V]) Delete(key SyncCactus[T]) bool {
	h := Hash(key)

	i.mu.Lock()
	defer i.mu.Unlock()

	bucket := i.buckets[h]
	for j := range bucket {
		if !Equal(bucket[j].key, key) {
			continue
		}

		bucket[j].key.Release()
		bucket[j] = bucket[len(bucket)-1]
		bucket = bucket[:len(bucket)-1]
		if len(bucket) == 0 {
			delete(i.buckets, h)
		} else {
			i.buckets[h] = bucket
		}
		i.size--
		return true
	}
	return false
}

// Len returns the number of entries.
func (i *Index[T, V]) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.size
}

// Range calls fn for every entry until fn returns false. The keys passed to fn
// are borrowed from the index. fn must not modify the index.
func (i *Index[T, V]) Range(fn func(key SyncCactus[T], val V) bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, bucket := range i.buckets {
		for _, e := range bucket {
			if !fn(e.key, e.val) {
				return
			}
		}
	}
}

// Close releases every stored key and empties the index.
func (i *Index[T, V]) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, bucket := range i.buckets {
		for _, e := range bucket {
			e.key.Release()
		}
	}
	clear(i.buckets)
	i.size = 0
}
