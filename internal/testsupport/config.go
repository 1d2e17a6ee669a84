// Package testsupport provides shared fixtures for docuvid tests: temp-dir
// configs, stores with registered cleanup, and valid sample artifacts that
// individual tests mutate to provoke specific violations.
package testsupport

import (
	"path/filepath"
	"testing"

	"docuvid/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.AssetsDir = filepath.Join(base, "assets")
	cfg.Paths.PlanReviewDir = filepath.Join(base, "plans")
	cfg.Pipeline.PollIntervalSeconds = 1

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
