package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docuvid/internal/artifacts"
	"docuvid/internal/testsupport"
)

func TestResolveSourceInfersTypeFromExtension(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]artifacts.SourceType{
		"doc.md":       artifacts.SourceMarkdown,
		"doc.markdown": artifacts.SourceMarkdown,
		"doc.pdf":      artifacts.SourcePDF,
		"doc.txt":      artifacts.SourceText,
	}
	for name, want := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		sourceType, resolved, err := resolveSource(path, "")
		if err != nil {
			t.Fatalf("resolveSource(%s): %v", name, err)
		}
		if sourceType != want {
			t.Fatalf("expected %s for %s, got %s", want, name, sourceType)
		}
		if resolved != path {
			t.Fatalf("expected absolute path %q, got %q", path, resolved)
		}
	}
}

func TestResolveSourceURL(t *testing.T) {
	sourceType, path, err := resolveSource("https://example.com/post", "")
	if err != nil {
		t.Fatalf("resolveSource: %v", err)
	}
	if sourceType != artifacts.SourceURL || path != "https://example.com/post" {
		t.Fatalf("unexpected result %s %q", sourceType, path)
	}

	if _, _, err := resolveSource("https://example.com/post", "markdown"); err == nil {
		t.Fatal("expected conflicting --type for a URL to be rejected")
	}
}

func TestResolveSourceRejectsUnknownInputs(t *testing.T) {
	if _, _, err := resolveSource(filepath.Join(t.TempDir(), "missing.md"), ""); err == nil {
		t.Fatal("expected missing file to be rejected")
	}

	dir := t.TempDir()
	noExt := filepath.Join(dir, "README")
	if err := os.WriteFile(noExt, []byte("content"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, _, err := resolveSource(noExt, ""); err == nil {
		t.Fatal("expected uninferrable extension to be rejected")
	}

	// An explicit --type overrides inference.
	sourceType, _, err := resolveSource(noExt, "text")
	if err != nil {
		t.Fatalf("resolveSource with --type: %v", err)
	}
	if sourceType != artifacts.SourceText {
		t.Fatalf("expected text, got %s", sourceType)
	}
}

func TestFindProjectResolvesUniquePrefix(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()
	rec := testsupport.NewProject(t, store, "/tmp/leap.md")
	id := rec.Project.ProjectID

	found, err := findProject(ctx, store, id[:8])
	if err != nil {
		t.Fatalf("findProject by prefix: %v", err)
	}
	if found.Project.ProjectID != id {
		t.Fatalf("resolved wrong project %s", found.Project.ProjectID)
	}

	if _, err := findProject(ctx, store, "zzzz"); err == nil {
		t.Fatal("expected unknown prefix to fail")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("unexpected short ID %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}

func TestRenderTableIncludesHeadersAndRows(t *testing.T) {
	out := renderTable(
		[]string{"ID", "STATUS"},
		[][]string{{"01234567", "parsed"}},
		nil,
	)
	for _, fragment := range []string{"ID", "STATUS", "01234567", "parsed"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("table output missing %q:\n%s", fragment, out)
		}
	}
}
