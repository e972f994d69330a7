package store_test

import (
	"testing"

	"github.com/l3montree-dev/sensor-errstack/packages/errstack"
	"github.com/l3montree-dev/sensor-errstack/packages/store"
	"github.com/l3montree-dev/sensor-errstack/packages/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedCountsEvictions(t *testing.T) {
	require := require.New(t)

	metrics, err := store.NewMetrics(prometheus.NewRegistry(), "sensor")
	require.NoError(err)
	s := store.NewInstrumented[types.ErrorCode](errstack.New(), metrics)

	for c := 100; c < 135; c++ {
		require.NoError(s.Store(types.ErrorCode(c)))
	}
	require.Equal(35.0, testutil.ToFloat64(metrics.Stored))
	require.Equal(3.0, testutil.ToFloat64(metrics.Evicted))
	require.Equal(32.0, testutil.ToFloat64(metrics.Depth))

	for range 5 {
		_, ok := s.Pop()
		require.True(ok)
	}
	require.Equal(5.0, testutil.ToFloat64(metrics.Popped))
	require.Equal(27.0, testutil.ToFloat64(metrics.Depth))
	require.Equal(27, s.Count())
}

func TestInstrumentedEmptyPop(t *testing.T) {
	require := require.New(t)

	metrics, err := store.NewMetrics(prometheus.NewRegistry(), "sensor")
	require.NoError(err)
	s := store.NewInstrumented[types.ErrorCode](errstack.New(), metrics)

	_, ok := s.Pop()
	require.False(ok)
	require.Equal(1.0, testutil.ToFloat64(metrics.EmptyPops))
	require.Equal(0.0, testutil.ToFloat64(metrics.Popped))
	require.Empty(s.Get())
}

func TestNewMetricsDuplicateName(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := store.NewMetrics(reg, "sensor")
	require.NoError(t, err)

	_, err = store.NewMetrics(reg, "sensor")
	require.Error(t, err)
}

func TestMetricsSnapshot(t *testing.T) {
	require := require.New(t)

	metrics, err := store.NewMetrics(prometheus.NewRegistry(), "sensor")
	require.NoError(err)
	s := store.NewInstrumented[types.ErrorCode](errstack.New(), metrics)

	require.NoError(s.Store(1))
	require.NoError(s.Store(2))
	s.Pop()
	s.Pop()
	s.Pop()

	require.Equal(map[string]float64{
		"stored":     2,
		"popped":     2,
		"empty_pops": 1,
		"evicted":    0,
		"depth":      0,
	}, metrics.Snapshot())
}
