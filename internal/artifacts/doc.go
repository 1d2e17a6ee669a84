// Package artifacts defines the typed records each pipeline stage produces:
// parsed documents, content analyses, scripts, storyboards, and generated
// assets.
//
// Artifacts are value data. They hold no behavior beyond structural
// validation and never reference the project that owns them; cross-artifact
// links are soft references by name or scene ID. Every artifact exposes a
// pure Validate method returning either nil or a *ValidationError listing the
// violated invariants, so callers can reject malformed stage output before it
// reaches the project state machine.
//
// Treat this package as the single source of truth for artifact shape; when a
// stage needs to carry new data, extend the record here and bump the project
// store schema.
package artifacts
