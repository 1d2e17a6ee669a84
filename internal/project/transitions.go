package project

import (
	"fmt"

	"docuvid/internal/artifacts"
	"docuvid/internal/plan"
)

// guard rejects the transition unless the project sits exactly one stage
// before the destination.
func (p *VideoProject) guard(expect, to Status) error {
	if p.Status != expect {
		return &TransitionError{ProjectID: p.ProjectID, From: p.Status, To: to}
	}
	return nil
}

// AttachParsedDocument applies the parser stage's output, moving the project
// from initialized to parsed.
func (p *VideoProject) AttachParsedDocument(doc *artifacts.ParsedDocument) error {
	if err := p.guard(StatusInitialized, StatusParsed); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: parsed document is nil", artifacts.ErrInvalid)
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	p.Parsed = doc
	p.Status = StatusParsed
	return nil
}

// AttachAnalysis applies the analyzer stage's output, moving the project from
// parsed to analyzed.
func (p *VideoProject) AttachAnalysis(analysis *artifacts.ContentAnalysis) error {
	if err := p.guard(StatusParsed, StatusAnalyzed); err != nil {
		return err
	}
	if p.Parsed == nil {
		return fmt.Errorf("%w: parsed document required before analysis", ErrMissingArtifact)
	}
	if analysis == nil {
		return fmt.Errorf("%w: content analysis is nil", artifacts.ErrInvalid)
	}
	if err := analysis.Validate(); err != nil {
		return err
	}
	p.Analysis = analysis
	p.Status = StatusAnalyzed
	return nil
}

// AttachScript applies the scripter stage's output, moving the project from
// analyzed to scripted. When a plan-approval workflow governs the project,
// the governing plan must have passed the gate; passing a nil plan means no
// approval workflow is in use and the script derives from the raw analysis.
func (p *VideoProject) AttachScript(script *artifacts.Script, governing *plan.VideoPlan) error {
	if err := p.guard(StatusAnalyzed, StatusScripted); err != nil {
		return err
	}
	if p.Analysis == nil {
		return fmt.Errorf("%w: content analysis required before scripting", ErrMissingArtifact)
	}
	if governing != nil && !governing.Approved() {
		return fmt.Errorf("%w: plan for %s is still %s", ErrPlanNotApproved, p.ProjectID, governing.Status)
	}
	if script == nil {
		return fmt.Errorf("%w: script is nil", artifacts.ErrInvalid)
	}
	if err := script.Validate(); err != nil {
		return err
	}
	p.Script = script
	p.Status = StatusScripted
	return nil
}

// AttachStoryboard applies the storyboard stage's output, moving the project
// from scripted to storyboarded.
func (p *VideoProject) AttachStoryboard(board *artifacts.Storyboard) error {
	if err := p.guard(StatusScripted, StatusStoryboarded); err != nil {
		return err
	}
	if p.Script == nil {
		return fmt.Errorf("%w: script required before storyboarding", ErrMissingArtifact)
	}
	if board == nil {
		return fmt.Errorf("%w: storyboard is nil", artifacts.ErrInvalid)
	}
	if err := board.Validate(); err != nil {
		return err
	}
	p.Storyboard = board
	p.Status = StatusStoryboarded
	return nil
}

// CompleteRender applies the asset and render stages' output, moving the
// project from storyboarded to its terminal rendered status. Asset keys must
// reference scenes of the attached storyboard.
func (p *VideoProject) CompleteRender(assets artifacts.GeneratedAssets, outputPath string) error {
	if err := p.guard(StatusStoryboarded, StatusRendered); err != nil {
		return err
	}
	if p.Storyboard == nil {
		return fmt.Errorf("%w: storyboard required before rendering", ErrMissingArtifact)
	}
	if outputPath == "" {
		return fmt.Errorf("%w: output path is empty", artifacts.ErrInvalid)
	}
	if err := assets.ValidateFor(p.Storyboard); err != nil {
		return err
	}
	p.Assets = assets
	p.OutputPath = outputPath
	p.Status = StatusRendered
	return nil
}
