package testutil_test

import (
	"log/slog"
	"testing"

	"github.com/katalvlaran/calibrate/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewTestLogger(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	assert.NotNil(t, logger)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug), "debug records are kept")
	logger.Debug("pass complete", "total", 3749)
}
