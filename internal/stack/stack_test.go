package stack

import (
	"testing"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type localStack = Stack[int, Local, *Local]

type atomicStack = Stack[int, Atomic, *Atomic]

func TestStack(t *testing.T) {
	t.Run("test_new_is_empty", func(t *testing.T) {
		s := New[int, Local]()
		require.True(t, s.IsEmpty())
		require.Equal(t, 0, s.Len())

		_, ok := s.Val()
		require.False(t, ok)

		_, ok = s.Parent()
		require.False(t, ok)
	})

	t.Run("test_zero_value_is_empty", func(t *testing.T) {
		var s atomicStack
		require.True(t, s.IsEmpty())
		require.False(t, s.Child(1).IsEmpty())
	})

	t.Run("test_child_does_not_affect_original", func(t *testing.T) {
		r := New[int, Local]()
		r2 := r.Child(2)
		require.False(t, r2.IsEmpty())
		require.Equal(t, 1, r2.Len())

		val, ok := r2.Val()
		require.True(t, ok)
		require.Equal(t, 2, val)

		r3, ok := r2.Parent()
		require.True(t, ok)
		require.True(t, r3.IsEmpty())
		require.Equal(t, 0, r3.Len())

		r4 := r.Child(3)
		require.Equal(t, 1, r4.Len())
		r6 := r4.Child(4)
		require.Equal(t, 2, r6.Len())

		val, _ = r6.Val()
		require.Equal(t, 4, val)
		p, _ := r6.Parent()
		val, _ = p.Val()
		require.Equal(t, 3, val)

		val, _ = r4.Val()
		require.Equal(t, 3, val)
		require.Equal(t, 1, r4.Len())
	})

	t.Run("test_parent_undoes_child", func(t *testing.T) {
		base := New[int, Local]().Push(1).Push(2)
		for _, v := range []int{0, 7, -3} {
			c := base.Child(v)
			p, ok := c.Parent()
			require.True(t, ok)
			require.True(t, p.Same(base))
			require.True(t, p.EqualFunc(base, intEq))
			p.Release()
			c.Release()
		}
		require.Equal(t, int64(1), base.refs())
	})

	t.Run("test_branching_shares_ancestor", func(t *testing.T) {
		base := New[int, Local]().Child(1)
		c2 := base.Child(2)
		c3 := base.Child(3)
		require.False(t, c2.EqualFunc(c3, intEq))
		require.Equal(t, []int{2, 1}, c2.Slice())
		require.Equal(t, []int{3, 1}, c3.Slice())

		p2, _ := c2.Parent()
		p3, _ := c3.Parent()
		require.True(t, p2.Same(p3))
		require.True(t, p2.Same(base))
		require.Equal(t, int64(5), base.refs())
	})

	t.Run("test_len_counts_pushes", func(t *testing.T) {
		s := New[int, Local]()
		for i := 0; i < 50; i++ {
			require.Equal(t, i, s.Len())
			s = s.Push(i)
		}
		require.Equal(t, 50, s.Len())
	})

	t.Run("test_id", func(t *testing.T) {
		s := New[int, Local]()
		require.Equal(t, ID{}, s.ID())

		a := s.Child(1)
		b := a.Clone()
		c := s.Child(1)
		require.Equal(t, a.ID(), b.ID())
		require.NotEqual(t, a.ID(), c.ID())
	})
}

func TestIteration(t *testing.T) {
	t.Run("test_values_top_first", func(t *testing.T) {
		c := New[int, Local]().Push(3).Push(2).Push(1)
		if diff := cmp.Diff([]int{1, 2, 3}, c.Slice()); diff != "" {
			t.Fatalf("values mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("test_nodes", func(t *testing.T) {
		c := New[int, Local]().Push(3).Push(2).Push(1)

		var nodes []localStack
		for n := range c.All() {
			nodes = append(nodes, n)
		}
		require.Len(t, nodes, 3)
		require.True(t, nodes[0].Same(c))
		require.True(t, nodes[1].EqualFunc(New[int, Local]().Push(3).Push(2), intEq))
		require.True(t, nodes[2].EqualFunc(New[int, Local]().Push(3), intEq))
	})

	t.Run("test_partial_iteration", func(t *testing.T) {
		c := New[int, Local]().Push(1).Push(2).Push(3).Push(4)

		var got []int
		for v := range c.Values() {
			if v == 2 {
				break
			}
			got = append(got, v)
		}
		require.Equal(t, []int{4, 3}, got)

		// a fresh sequence starts from the top again
		require.Equal(t, []int{4, 3, 2, 1}, c.Slice())
	})

	t.Run("test_iteration_does_not_retain", func(t *testing.T) {
		c := New[int, Local]().Push(1).Push(2)
		for n := range c.All() {
			require.Equal(t, int64(1), n.refs())
		}
	})

	t.Run("test_empty", func(t *testing.T) {
		var c localStack
		require.Empty(t, c.Slice())
		for range c.All() {
			t.Fatal("empty stack yielded a node")
		}
	})
}

func TestString(t *testing.T) {
	c := New[int, Local]().Push(3).Push(2).Push(1)
	require.Equal(t, "Cactus[1, 2, 3]", c.String())

	var empty localStack
	require.Equal(t, "Cactus[]", empty.String())

	s := New[string, Local]().Push("b").Push("a")
	require.Equal(t, "Cactus[a, b]", s.String())
}

func TestPushMovesOwnership(t *testing.T) {
	c := New[int, Local]().Push(1).Push(2).Push(3)
	for n := range c.All() {
		require.Equal(t, int64(1), n.refs())
	}
}

func TestChildResultsAreOwned(t *testing.T) {
	reclaimed := 0
	root := New[int, Local](WithReclaimFunc(func(int) { reclaimed++ })).Push(4)

	mid := root.Child(3)
	top := mid.Child(2)
	require.Equal(t, int64(2), mid.refs())

	top.Release()
	require.Equal(t, 1, reclaimed)
	mid.Release()
	root.Release()
	require.Equal(t, 3, reclaimed)

	reclaimed = 0
	New[int, Local](WithReclaimFunc(func(int) { reclaimed++ })).Push(4).Push(3).Push(2).Release()
	require.Equal(t, 3, reclaimed)
}

func TestArrayStackModel(t *testing.T) {
	rng := newRand(t)
	model := arraystack.New()
	s := New[int, Local]()

	for i := 0; i < 1000; i++ {
		if rng.Intn(3) > 0 || model.Empty() {
			v := rng.Intn(100)
			model.Push(v)
			s = s.Push(v)
		} else {
			want, _ := model.Pop()
			alias := s.Clone()
			_, err := alias.TryTake()
			require.ErrorIs(t, err, ErrShared)
			alias.Release()

			val, _ := s.Val()
			require.Equal(t, want, val)

			p, ok := s.Parent()
			require.True(t, ok)
			s.Release()
			s = p
		}

		require.Equal(t, model.Size(), s.Len())
		require.Len(t, s.Slice(), model.Size())
		for j, v := range model.Values() {
			require.Equal(t, v, s.Slice()[j])
		}
	}
}
