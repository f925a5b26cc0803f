package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpstream(t *testing.T) {
	m := New()
	m.ObserveUpstream(UpstreamOK, time.Second)
	m.ObserveUpstream(UpstreamParseError, time.Second)
	m.ObserveUpstream(UpstreamParseError, time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues(UpstreamOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.upstreamCalls.WithLabelValues(UpstreamParseError)))
}

func TestObserveGeneration(t *testing.T) {
	m := New()
	m.ObserveGeneration(GenerationOK, 5)
	m.ObserveGeneration(GenerationEmpty, 0)

	expected := `
# HELP postcraft_posts_generated_total Posts persisted by generation runs
# TYPE postcraft_posts_generated_total counter
postcraft_posts_generated_total 5
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "postcraft_posts_generated_total"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationRuns.WithLabelValues(GenerationEmpty)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveUpstream(UpstreamOK, time.Second)
	m.ObserveGeneration(GenerationOK, 1)
	assert.Nil(t, m.Registry())
	assert.NotNil(t, m.Handler())
}
