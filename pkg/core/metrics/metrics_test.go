package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/chronos/pkg/core/cache"
)

func TestMetricsObserveTable(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	table := cache.NewTable[int, int]("calendar:hebrew", m)
	for i := 0; i < 3; i++ {
		_, err := table.GetOrCompute(5785, func() (int, error) { return 13, nil })
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheHits.WithLabelValues("calendar:hebrew")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMisses.WithLabelValues("calendar:hebrew")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheSize.WithLabelValues("calendar:hebrew")))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
