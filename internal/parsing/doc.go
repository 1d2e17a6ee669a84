// Package parsing provides the built-in parser stage for markdown and plain
// text sources.
//
// The markdown path is deliberately small: heading-delimited sections, fenced
// code blocks, display equations, and image references, which is everything
// downstream analysis consumes. PDF and URL extraction stay behind the
// stage.Parser interface for external implementations.
package parsing
