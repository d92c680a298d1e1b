package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordCacheLookup("frame", true)
	r.RecordCacheLookup("frame", false)
	r.RecordCacheLookup("frame", false)
	r.RecordUpstreamFetch("yahoo", 0.2, nil)
	r.RecordUpstreamFetch("yahoo", 0.1, errors.New("boom"))
	r.RecordError("join")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("frame", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.cacheLookups.WithLabelValues("frame", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.upstreamCalls.WithLabelValues("yahoo", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.errorsTotal.WithLabelValues("join")))
}

func TestRecorderIsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
