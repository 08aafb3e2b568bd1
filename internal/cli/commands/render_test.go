package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/katalvlaran/calibrate/aggregate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTotals(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTotals(&buf, aggregate.Totals{Part1: 3749, Part2: 11387}))
	assert.Equal(t, "3749\n11387\n", buf.String())
}

func TestRenderTable(t *testing.T) {
	reports, totals, err := aggregate.Evaluate(context.Background(), []string{"190: 10 19", "83: 17 5"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderTable(&buf, reports, totals))
	out := buf.String()
	assert.Contains(t, out, "10 * 19")
	assert.Contains(t, out, "[17 5]")
	assert.Contains(t, out, "190")
}

func TestGetConfig_Default(t *testing.T) {
	cfg := GetConfig(context.Background())
	assert.Equal(t, 1, cfg.Workers)
	assert.True(t, cfg.Prune)
	assert.NotNil(t, GetLogger(context.Background()))
}
