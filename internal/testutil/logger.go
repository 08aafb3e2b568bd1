// Package testutil holds helpers shared by calibrate tests.
package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// NewTestLogger returns a debug-level logger whose records go to t.Log,
// so aggregate passes show up next to the failing assertion under -v.
// Every record carries the running test's name.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	h := slog.NewTextHandler(tlogWriter{t: t}, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(h).With(slog.String("test", t.Name()))
}

// tlogWriter forwards one handler record per Write to t.Log.
type tlogWriter struct {
	t testing.TB
}

func (w tlogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))

	return len(p), nil
}
