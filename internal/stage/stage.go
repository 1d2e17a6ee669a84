// Package stage declares the contracts between the pipeline driver and the
// pluggable stage implementations. The core only defines what a stage must
// accept and must produce; parsing engines, LLM clients, TTS synthesis, and
// renderers all live behind these interfaces.
package stage

import (
	"context"

	"docuvid/internal/artifacts"
	"docuvid/internal/plan"
)

// Parser extracts the structure of a source document. The driver validates
// the returned shape; the parser owns extraction fidelity.
type Parser interface {
	Parse(ctx context.Context, sourcePath string, sourceType artifacts.SourceType) (*artifacts.ParsedDocument, error)
}

// Analyzer synthesizes a document-level content analysis.
type Analyzer interface {
	Analyze(ctx context.Context, doc *artifacts.ParsedDocument) (*artifacts.ContentAnalysis, error)
}

// Planner drafts a reviewable video plan from an analysis. Optional: when no
// planner is registered the scripter consumes the analysis directly.
type Planner interface {
	Plan(ctx context.Context, analysis *artifacts.ContentAnalysis) (*plan.VideoPlan, error)
}

// Scripter produces the finalized script from an approved plan, or from the
// raw analysis when no plan governs the project (approved is nil then).
type Scripter interface {
	WriteScript(ctx context.Context, analysis *artifacts.ContentAnalysis, approved *plan.VideoPlan) (*artifacts.Script, error)
}

// Storyboarder expands a script into a render-ready storyboard.
type Storyboarder interface {
	Storyboard(ctx context.Context, script *artifacts.Script) (*artifacts.Storyboard, error)
}

// Renderer synthesizes per-scene assets and muxes the final video, returning
// the generated side-files and the output path.
type Renderer interface {
	Render(ctx context.Context, board *artifacts.Storyboard) (artifacts.GeneratedAssets, string, error)
}

// Set bundles the stage implementations a driver runs with. Nil fields mean
// the stage is unavailable; the driver parks projects needing it.
type Set struct {
	Parser       Parser
	Analyzer     Analyzer
	Planner      Planner
	Scripter     Scripter
	Storyboarder Storyboarder
	Renderer     Renderer
}
