package stack

import (
	"encoding/binary"
	"math/rand"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func intEq(a, b int) bool { return a == b }

func writeInt(d *xxhash.Digest, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, _ = d.Write(buf[:])
}

func newRand(t *testing.T) *rand.Rand {
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

func TestEqualFunc(t *testing.T) {
	var testcases = map[string]struct {
		a, b  []int
		equal bool
	}{
		`both_empty`: {
			equal: true,
		},
		`empty_and_non_empty`: {
			a:     []int{1},
			equal: false,
		},
		`same_values`: {
			a:     []int{1, 2},
			b:     []int{1, 2},
			equal: true,
		},
		`different_top`: {
			a:     []int{1, 2},
			b:     []int{1, 3},
			equal: false,
		},
		`different_root`: {
			a:     []int{2, 2},
			b:     []int{1, 2},
			equal: false,
		},
		`prefix`: {
			a:     []int{1, 2},
			b:     []int{1, 2, 3},
			equal: false,
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			a := fromPushes(tc.a)
			b := fromPushes(tc.b)

			require.Equal(t, tc.equal, a.EqualFunc(b, intEq))
			require.Equal(t, tc.equal, b.EqualFunc(a, intEq))
			require.True(t, a.EqualFunc(a, intEq))
			if tc.equal {
				require.Equal(t, a.HashFunc(writeInt), b.HashFunc(writeInt))
			}
		})
	}
}

func TestEqualFuncSharedSuffix(t *testing.T) {
	base := fromPushes([]int{1, 2, 3})
	a := base.Child(4)
	b := base.Child(4)
	require.False(t, a.Same(b))
	require.True(t, a.EqualFunc(b, intEq))

	// once the walk reaches the shared node no further values are compared
	calls := 0
	counting := func(x, y int) bool {
		calls++
		return x == y
	}
	require.True(t, a.EqualFunc(b, counting))
	require.Equal(t, 1, calls)

	// independent allocations compare every value
	calls = 0
	require.True(t, a.EqualFunc(fromPushes([]int{1, 2, 3, 4}), counting))
	require.Equal(t, 4, calls)
}

func TestEqualFuncTransitive(t *testing.T) {
	a := fromPushes([]int{5, 6, 7})
	b := fromPushes([]int{5, 6, 7})
	c := b.Clone()
	require.True(t, a.EqualFunc(b, intEq))
	require.True(t, b.EqualFunc(c, intEq))
	require.True(t, a.EqualFunc(c, intEq))
}

func TestHashConsistency(t *testing.T) {
	rng := newRand(t)

	chains := make([]localStack, 0, 200)
	for i := 0; i < 200; i++ {
		depth := rng.Intn(21)
		vals := make([]int, depth)
		for j := range vals {
			// a small alphabet so that equal chains actually occur
			vals[j] = rng.Intn(2)
		}
		chains = append(chains, fromPushes(vals))
	}

	equalPairs := 0
	for i := range chains {
		for j := range chains {
			if chains[i].EqualFunc(chains[j], intEq) {
				equalPairs++
				require.Equal(t, chains[i].HashFunc(writeInt), chains[j].HashFunc(writeInt))
			}
		}
	}
	require.GreaterOrEqual(t, equalPairs, len(chains))
}

func TestHashDependsOnOrder(t *testing.T) {
	a := fromPushes([]int{1, 2})
	b := fromPushes([]int{2, 1})
	require.NotEqual(t, a.HashFunc(writeInt), b.HashFunc(writeInt))

	var empty localStack
	require.NotEqual(t, empty.HashFunc(writeInt), fromPushes([]int{0}).HashFunc(writeInt))
}

func fromPushes(vals []int) localStack {
	s := New[int, Local]()
	for _, v := range vals {
		s = s.Push(v)
	}
	return s
}
