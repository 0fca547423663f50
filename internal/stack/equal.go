package stack

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// EqualFunc reports whether s and o hold the same sequence of values, using
// eq to compare them. Chains that converge on a shared node are equal from
// that node onwards, so the walk stops there.
func (s Stack[T, R, PR]) EqualFunc(o Stack[T, R, PR], eq func(a, b T) bool) bool {
	a, b := s.n, o.n
	for {
		if a == b {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		if !eq(a.val, b.val) {
			return false
		}
		a, b = a.parent, b.parent
	}
}

// HashFunc folds every value of s, top first, into a single 64 bit hash using
// write to feed each value to the digest. Stacks that are equal under an eq
// consistent with write hash equally.
func (s Stack[T, R, PR]) HashFunc(write func(d *xxhash.Digest, v T)) uint64 {
	d := xxhash.New()
	var l uint64
	for v := range s.Values() {
		write(d, v)
		l++
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], l)
	// Write always returns a nil error
	_, _ = d.Write(buf[:])

	return d.Sum64()
}
