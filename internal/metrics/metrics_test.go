package metrics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settle/internal/core"
	"settle/internal/sims/seating"
)

func TestObserveGeneration(t *testing.T) {
	c := New()
	c.ObserveGeneration("seating", 1, 9, time.Millisecond)
	c.ObserveGeneration("seating", 2, 0, time.Millisecond)
	c.ObserveGeneration("tiles", 1, 3, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.generations.WithLabelValues("seating")))
	assert.Equal(t, 9.0, testutil.ToFloat64(c.changes.WithLabelValues("seating")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.generations.WithLabelValues("tiles")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.duration))
}

func TestCollectorObservesEngine(t *testing.T) {
	l, err := seating.Parse(strings.NewReader("LLL\nLLL\nLLL\n"), seating.DefaultConfig())
	require.NoError(t, err)

	c := New()
	res, err := l.Run(core.WithObserver(c))
	require.NoError(t, err)

	assert.Equal(t, float64(res.Generations), testutil.ToFloat64(c.generations.WithLabelValues("seating")))
	assert.Equal(t, 9.0, testutil.ToFloat64(c.changes.WithLabelValues("seating")))
}

func TestWriteText(t *testing.T) {
	c := New()
	c.ObserveGeneration("tiles", 1, 4, time.Microsecond)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, `settle_generations_total{automaton="tiles"} 1`)
	assert.Contains(t, out, `settle_changes_total{automaton="tiles"} 4`)
	assert.Contains(t, out, "# TYPE settle_generation_seconds histogram")
}
