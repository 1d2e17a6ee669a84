package parsing_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"docuvid/internal/artifacts"
	"docuvid/internal/parsing"
	"docuvid/internal/services"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}

func TestParseMarkdownExtractsStructure(t *testing.T) {
	content := `# Raft in Plain Terms

Consensus without the ceremony.

## Leader Election

Nodes vote. ![timeline](election.png)

` + "```go\nfor !elected { vote() }\n```" + `

## The Math

The quorum bound:

$$ q > n/2 $$
`
	path := writeSource(t, "raft.md", content)

	doc, err := parsing.New().Parse(context.Background(), path, artifacts.SourceMarkdown)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "Raft in Plain Terms" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if len(doc.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d: %+v", len(doc.Sections), doc.Sections)
	}

	election := doc.Sections[1]
	if election.Heading != "Leader Election" || election.Level != 2 {
		t.Fatalf("unexpected section %+v", election)
	}
	if len(election.CodeBlocks) != 1 || election.CodeBlocks[0] != "for !elected { vote() }" {
		t.Fatalf("code block not extracted: %v", election.CodeBlocks)
	}
	if len(election.Images) != 1 || election.Images[0] != "election.png" {
		t.Fatalf("image not extracted: %v", election.Images)
	}

	math := doc.Sections[2]
	if len(math.Equations) != 1 || math.Equations[0] != "q > n/2" {
		t.Fatalf("equation not extracted: %v", math.Equations)
	}

	if count, ok := doc.Metadata["section_count"].AsNumber(); !ok || count != 3 {
		t.Fatalf("unexpected section_count metadata: %v", doc.Metadata["section_count"])
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("parsed document invalid: %v", err)
	}
}

func TestParseMarkdownPreambleBecomesIntroduction(t *testing.T) {
	path := writeSource(t, "notes.md", "Some text before any heading.\n\n## Details\n\nBody.\n")

	doc, err := parsing.New().Parse(context.Background(), path, artifacts.SourceMarkdown)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected preamble plus one section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Heading != "Introduction" || doc.Sections[0].Level != 1 {
		t.Fatalf("unexpected preamble section %+v", doc.Sections[0])
	}
}

func TestParseDerivesTitleFromFileName(t *testing.T) {
	path := writeSource(t, "how_raft_works.md", "## Only a Subheading\n\nNo level-1 heading here.\n")

	doc, err := parsing.New().Parse(context.Background(), path, artifacts.SourceMarkdown)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.Title != "How Raft Works" {
		t.Fatalf("expected title derived from file name, got %q", doc.Title)
	}
}

func TestParsePlainTextSingleSection(t *testing.T) {
	path := writeSource(t, "essay.txt", "One long thought.\n\nAnother paragraph.\n")

	doc, err := parsing.New().Parse(context.Background(), path, artifacts.SourceText)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected a single section, got %d", len(doc.Sections))
	}
	if doc.Sections[0].Heading != "Document" {
		t.Fatalf("unexpected heading %q", doc.Sections[0].Heading)
	}
	if doc.Title != "Essay" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
}

func TestParseMissingFileClassifiedNotFound(t *testing.T) {
	_, err := parsing.New().Parse(context.Background(), "/nonexistent/leap.md", artifacts.SourceMarkdown)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if services.FailureDisposition(err) != services.DispositionReview {
		t.Fatal("missing source should route to manual review")
	}
}

func TestParseUnsupportedSourceTypes(t *testing.T) {
	for _, sourceType := range []artifacts.SourceType{artifacts.SourcePDF, artifacts.SourceURL} {
		_, err := parsing.New().Parse(context.Background(), "/tmp/whatever", sourceType)
		if !errors.Is(err, services.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration for %s, got %v", sourceType, err)
		}
	}
}

func TestParseHeadingsInsideFencesIgnored(t *testing.T) {
	content := "# Shell Tricks\n\n```\n# not a heading, a comment\necho hi\n```\n"
	path := writeSource(t, "tricks.md", content)

	doc, err := parsing.New().Parse(context.Background(), path, artifacts.SourceMarkdown)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("fenced pseudo-heading split the document: %+v", doc.Sections)
	}
	if len(doc.Sections[0].CodeBlocks) != 1 {
		t.Fatalf("expected one code block, got %v", doc.Sections[0].CodeBlocks)
	}
}
