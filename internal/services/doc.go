// Package services defines shared utilities consumed by pipeline stage
// implementations.
//
// Key responsibilities:
//   - Context helpers that stamp project IDs, stage names, and correlation
//     identifiers for logging.
//   - Structured error markers plus the Wrap helper that translate stage
//     failures into consistent project dispositions (failed vs needs_review).
//
// Use these helpers when wiring new stage logic so error handling and
// observability stay uniform across the pipeline.
package services
