package artifacts

import "strings"

// Section is one heading-delimited region of a parsed document. Code blocks,
// equations, and image references keep their order of appearance.
type Section struct {
	Heading    string   `json:"heading"`
	Level      int      `json:"level"`
	Content    string   `json:"content"`
	CodeBlocks []string `json:"code_blocks,omitempty"`
	Equations  []string `json:"equations,omitempty"`
	Images     []string `json:"images,omitempty"`
}

// ParsedDocument is the full extracted structure of a source document.
// RawContent is the unmodified extraction; Sections appear in source order.
type ParsedDocument struct {
	Title      string     `json:"title"`
	SourceType SourceType `json:"source_type"`
	SourcePath string     `json:"source_path"`
	Sections   []Section  `json:"sections"`
	RawContent string     `json:"raw_content"`
	Metadata   Map        `json:"metadata,omitempty"`
}

// Validate checks the document's structural invariants.
func (d *ParsedDocument) Validate() error {
	v := check("parsed document")
	if strings.TrimSpace(d.Title) == "" {
		v.addf("title must not be empty")
	}
	if !d.SourceType.Valid() {
		v.addf("source_type %q is not one of markdown/pdf/url/text", d.SourceType)
	}
	if strings.TrimSpace(d.SourcePath) == "" {
		v.addf("source_path must not be empty")
	}
	for i, section := range d.Sections {
		if section.Level < 1 {
			v.addf("section %d (%q): level %d must be >= 1", i, section.Heading, section.Level)
		}
	}
	return v.err()
}
