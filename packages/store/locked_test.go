package store_test

import (
	"testing"

	"github.com/l3montree-dev/sensor-errstack/packages/errstack"
	"github.com/l3montree-dev/sensor-errstack/packages/store"
	"github.com/l3montree-dev/sensor-errstack/packages/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLockedConcurrentAccess(t *testing.T) {
	require := require.New(t)

	metrics, err := store.NewMetrics(prometheus.NewRegistry(), "concurrent")
	require.NoError(err)
	s := store.NewLocked[types.ErrorCode](store.NewInstrumented[types.ErrorCode](errstack.New(), metrics))

	var g errgroup.Group
	for w := range 8 {
		g.Go(func() error {
			for i := range 100 {
				if err := s.Store(types.ErrorCode(w*1000 + i)); err != nil {
					return err
				}
				if i%2 == 0 {
					s.Pop()
				}
				if n := s.Count(); n > errstack.Capacity {
					t.Errorf("count %d exceeds capacity", n)
				}
			}
			return nil
		})
	}
	require.NoError(g.Wait())

	require.Equal(800.0, testutil.ToFloat64(metrics.Stored))
	require.Equal(float64(s.Count()), testutil.ToFloat64(metrics.Depth))
	require.Len(s.Get(), s.Count())
}

func TestLockedDo(t *testing.T) {
	require := require.New(t)

	s := store.NewLocked[types.ErrorCode](errstack.New())
	err := s.Do(func(inner store.Store[types.ErrorCode]) error {
		for c := range 3 {
			if err := inner.Store(types.ErrorCode(c)); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(err)
	require.Equal([]types.ErrorCode{2, 1, 0}, s.Get())

	code, ok := s.Pop()
	require.True(ok)
	require.Equal(types.ErrorCode(2), code)
}
