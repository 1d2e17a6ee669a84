package parsing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"docuvid/internal/artifacts"
	"docuvid/internal/services"
)

// Parser is the built-in stage.Parser for local markdown and plain text
// files.
type Parser struct{}

// New constructs the built-in document parser.
func New() *Parser {
	return &Parser{}
}

// Parse reads and structures a local source document.
func (p *Parser) Parse(ctx context.Context, sourcePath string, sourceType artifacts.SourceType) (*artifacts.ParsedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch sourceType {
	case artifacts.SourceMarkdown, artifacts.SourceText:
	case artifacts.SourcePDF, artifacts.SourceURL:
		return nil, services.Wrap(services.ErrConfiguration, "parse", string(sourceType),
			"no built-in extractor; register an external parser", nil)
	default:
		return nil, services.Wrap(services.ErrValidation, "parse", "source type",
			fmt.Sprintf("unknown source type %q", sourceType), nil)
	}

	raw, err := os.ReadFile(sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "parse", "read source", sourcePath, err)
		}
		return nil, services.Wrap(services.ErrTransient, "parse", "read source", sourcePath, err)
	}

	content := string(raw)
	var doc *artifacts.ParsedDocument
	if sourceType == artifacts.SourceMarkdown {
		doc = parseMarkdown(content)
	} else {
		doc = parseText(content)
	}

	doc.SourceType = sourceType
	doc.SourcePath = sourcePath
	doc.RawContent = content
	if strings.TrimSpace(doc.Title) == "" {
		doc.Title = titleFromPath(sourcePath)
	}
	doc.Metadata = artifacts.Map{
		"bytes":         artifacts.IntValue(int64(len(raw))),
		"section_count": artifacts.IntValue(int64(len(doc.Sections))),
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// titleFromPath derives a presentable title from the file name:
// "how_raft_works.md" becomes "How Raft Works".
func titleFromPath(sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return "Untitled Document"
	}
	return cases.Title(language.English).String(base)
}
