package project

import (
	"strings"

	"docuvid/internal/artifacts"
)

// VideoProject is the aggregate root for one pipeline run. It exclusively
// owns the artifacts attached so far; artifacts never reference the project
// back. Zero-valued artifact pointers mean the producing stage has not run.
type VideoProject struct {
	ProjectID  string                     `json:"project_id"`
	SourcePath string                     `json:"source_path"`
	Parsed     *artifacts.ParsedDocument  `json:"parsed_document,omitempty"`
	Analysis   *artifacts.ContentAnalysis `json:"content_analysis,omitempty"`
	Script     *artifacts.Script          `json:"script,omitempty"`
	Storyboard *artifacts.Storyboard      `json:"storyboard,omitempty"`
	Assets     artifacts.GeneratedAssets  `json:"assets"`
	OutputPath string                     `json:"output_path,omitempty"`
	Status     Status                     `json:"status"`
}

// New creates a project at the start of the pipeline.
func New(projectID, sourcePath string) *VideoProject {
	return &VideoProject{
		ProjectID:  projectID,
		SourcePath: sourcePath,
		Status:     StatusInitialized,
	}
}

// Validate checks the aggregate's own invariants: a known status, and each
// artifact present only once its producing stage has been reached. Attached
// artifacts are assumed validated at transition time and are not re-walked.
func (p *VideoProject) Validate() error {
	v := projectCheck()
	if strings.TrimSpace(p.ProjectID) == "" {
		v.addf("project_id must not be empty")
	}
	if strings.TrimSpace(p.SourcePath) == "" {
		v.addf("source_path must not be empty")
	}
	if !p.Status.Valid() {
		v.addf("status %q is not a known pipeline status", p.Status)
		return v.err()
	}
	stages := []struct {
		produced Status
		present  bool
		name     string
	}{
		{StatusParsed, p.Parsed != nil, "parsed_document"},
		{StatusAnalyzed, p.Analysis != nil, "content_analysis"},
		{StatusScripted, p.Script != nil, "script"},
		{StatusStoryboarded, p.Storyboard != nil, "storyboard"},
		{StatusRendered, p.OutputPath != "", "output_path"},
	}
	for _, stage := range stages {
		if stage.present && !p.Status.Reached(stage.produced) {
			v.addf("%s present but status %s has not reached %s", stage.name, p.Status, stage.produced)
		}
		if !stage.present && p.Status.Reached(stage.produced) {
			v.addf("%s missing although status %s requires it", stage.name, p.Status)
		}
	}
	if !p.Assets.Empty() && p.Storyboard == nil {
		v.addf("assets recorded before a storyboard exists")
	}
	return v.err()
}
