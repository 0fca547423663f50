package cactus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openfga/cactus/internal/mocks"
	"github.com/openfga/cactus/pkg/logger"
)

func TestMetricsObserver(t *testing.T) {
	allocated := testutil.ToFloat64(nodesAllocatedCounter)
	reclaimed := testutil.ToFloat64(nodesReclaimedCounter)
	moved := testutil.ToFloat64(takeMovedCounter)
	shared := testutil.ToFloat64(takeSharedCounter)

	c := New[int](WithObserver(MetricsObserver{})).Push(1).Push(2)
	alias := c.Clone()
	_, err := c.TryTake()
	require.ErrorIs(t, err, ErrShared)
	alias.Release()
	_, err = c.TryTake()
	require.NoError(t, err)

	require.InDelta(t, allocated+2, testutil.ToFloat64(nodesAllocatedCounter), 0)
	require.InDelta(t, reclaimed+2, testutil.ToFloat64(nodesReclaimedCounter), 0)
	require.InDelta(t, moved+1, testutil.ToFloat64(takeMovedCounter), 0)
	require.InDelta(t, shared+1, testutil.ToFloat64(takeSharedCounter), 0)
}

func TestLoggingObserver(t *testing.T) {
	l, logs := logger.NewObserverLogger("debug")

	c := NewSync[string](WithObserver(NewLoggingObserver(l))).Push("a")
	c.Release()

	require.Equal(t, 2, logs.Len())
	require.Equal(t, "cactus node allocated", logs.All()[0].Message)
	require.Equal(t, "cactus node reclaimed", logs.All()[1].Message)

	l, logs = logger.NewObserverLogger("info")
	c = NewSync[string](WithObserver(NewLoggingObserver(l))).Push("a")
	c.Release()
	require.Equal(t, 0, logs.Len())
}

func TestMultiObserver(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockObserver(ctrl)
	second := mocks.NewMockObserver(ctrl)

	for _, o := range []*mocks.MockObserver{first, second} {
		o.EXPECT().NodeAllocated().Times(1)
		o.EXPECT().TakeMoved().Times(1)
		o.EXPECT().NodeReclaimed().Times(1)
	}

	counts := &CountingObserver{}
	c := New[int](WithObserver(MultiObserver{first, second, counts})).Push(1)
	val, err := c.TryTake()
	require.NoError(t, err)
	require.Equal(t, 1, val)

	require.Equal(t, Counts{Allocated: 1, Reclaimed: 1, Moved: 1}, counts.Counts())
}

func TestWithoutObserver(t *testing.T) {
	var c Cactus[int]
	c = c.Push(1)
	require.NotPanics(t, func() {
		alias := c.Clone()
		_, _ = c.TryTake()
		alias.Release()
		c.Release()
	})
}
