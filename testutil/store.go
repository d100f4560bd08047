// Package testutil provides shared helpers for tests that need a real
// on-disk store. Everything is backed by t.TempDir, so tests stay isolated
// and clean up after themselves with no environment setup.
package testutil

import (
	"io"
	"log/slog"
	"testing"

	"github.com/tkramer/wayfare/backend/internal/repo"
)

// NewKV returns a FileKV over a fresh temp directory.
// The directory is removed automatically when the test finishes.
func NewKV(t *testing.T) *repo.FileKV {
	t.Helper()

	kv, err := repo.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("testutil.NewKV: %v", err)
	}
	return kv
}

// DiscardLogger returns a slog.Logger that drops everything.
// Use it wherever a component requires a logger but the test does not
// assert on log output.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
