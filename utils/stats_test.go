package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Update(t *testing.T) {
	s := NewStats()

	s.Update(0, 50, 100, 100*time.Millisecond)
	assert.Equal(t, 50.0, s.AveragePopulation)
	assert.Equal(t, 50.0, s.Density)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9)

	s.Update(1, 100, 100, 0)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.Equal(t, 100, s.Population)
	assert.InDelta(t, 55.0, s.AveragePopulation, 1e-9)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9, "zero durations keep the last rate")
	assert.GreaterOrEqual(t, s.Runtime(), time.Duration(0))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("warn", "json", &buf)

	logger.Info("hidden")
	logger.Warn("shown", "generation", 3)

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"generation":3`)

	buf.Reset()
	NewLogger("bogus", "text", &buf).Info("fallback")
	require.Contains(t, buf.String(), "msg=fallback")
}
