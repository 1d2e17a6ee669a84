package parsing

import (
	"regexp"
	"strings"

	"docuvid/internal/artifacts"
)

var (
	headingPattern  = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)
	imagePattern    = regexp.MustCompile(`!\[[^\]]*\]\(([^)\s]+)[^)]*\)`)
	equationPattern = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
)

// parseMarkdown splits markdown into heading-delimited sections, pulling out
// fenced code blocks, display equations, and image references in order of
// appearance. Text before the first heading becomes an implicit level-1
// preamble section when non-empty.
func parseMarkdown(content string) *artifacts.ParsedDocument {
	doc := &artifacts.ParsedDocument{}

	type openSection struct {
		heading string
		level   int
		lines   []string
	}
	current := &openSection{heading: "", level: 1}

	flush := func() {
		body := strings.TrimSpace(strings.Join(current.lines, "\n"))
		if current.heading == "" && body == "" {
			return
		}
		heading := current.heading
		if heading == "" {
			heading = "Introduction"
		}
		section := artifacts.Section{
			Heading: heading,
			Level:   current.level,
			Content: body,
		}
		section.CodeBlocks, section.Equations, section.Images = extractEmbeds(body)
		doc.Sections = append(doc.Sections, section)
	}

	inFence := false
	fenceMarker := ""
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if inFence {
			current.lines = append(current.lines, line)
			if strings.HasPrefix(trimmed, fenceMarker) {
				inFence = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = true
			fenceMarker = trimmed[:3]
			current.lines = append(current.lines, line)
			continue
		}
		if match := headingPattern.FindStringSubmatch(line); match != nil {
			flush()
			current = &openSection{heading: match[2], level: len(match[1])}
			if doc.Title == "" && len(match[1]) == 1 {
				doc.Title = match[2]
			}
			continue
		}
		current.lines = append(current.lines, line)
	}
	flush()

	return doc
}

// parseText wraps a plain text document as a single level-1 section.
func parseText(content string) *artifacts.ParsedDocument {
	body := strings.TrimSpace(content)
	doc := &artifacts.ParsedDocument{}
	if body == "" {
		return doc
	}
	doc.Sections = []artifacts.Section{{
		Heading: "Document",
		Level:   1,
		Content: body,
	}}
	return doc
}

// extractEmbeds pulls fenced code blocks, $$ display equations, and image
// references out of a section body, preserving order of appearance.
func extractEmbeds(body string) (codeBlocks, equations, images []string) {
	remaining := body
	for {
		start := strings.Index(remaining, "```")
		if start < 0 {
			break
		}
		rest := remaining[start+3:]
		newline := strings.Index(rest, "\n")
		if newline < 0 {
			break
		}
		rest = rest[newline+1:]
		end := strings.Index(rest, "```")
		if end < 0 {
			break
		}
		codeBlocks = append(codeBlocks, strings.TrimRight(rest[:end], "\n"))
		remaining = rest[end+3:]
	}

	for _, match := range equationPattern.FindAllStringSubmatch(body, -1) {
		equations = append(equations, strings.TrimSpace(match[1]))
	}
	for _, match := range imagePattern.FindAllStringSubmatch(body, -1) {
		images = append(images, match[1])
	}
	return codeBlocks, equations, images
}
