package testsupport

import (
	"context"
	"testing"

	"docuvid/internal/artifacts"
	"docuvid/internal/config"
	"docuvid/internal/projectstore"
)

// MustOpenStore opens a projectstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *projectstore.Store {
	t.Helper()

	store, err := projectstore.Open(cfg)
	if err != nil {
		t.Fatalf("projectstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewProject inserts a fresh markdown project for tests.
func NewProject(t testing.TB, store *projectstore.Store, sourcePath string) *projectstore.Record {
	t.Helper()

	rec, err := store.NewProject(context.Background(), sourcePath, artifacts.SourceMarkdown)
	if err != nil {
		t.Fatalf("store.NewProject: %v", err)
	}
	return rec
}
