package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"docuvid/internal/logging"
	"docuvid/internal/plan"
	"docuvid/internal/planfile"
	"docuvid/internal/project"
	"docuvid/internal/projectstore"
)

func stageNameFor(status project.Status) string {
	switch status {
	case project.StatusInitialized:
		return "parse"
	case project.StatusParsed:
		return "analyze"
	case project.StatusAnalyzed:
		return "script"
	case project.StatusScripted:
		return "storyboard"
	case project.StatusStoryboarded:
		return "render"
	default:
		return ""
	}
}

// step runs the next stage for one project. It returns false with a nil
// error when the project is parked: the stage is unavailable or the plan
// gate is still waiting for approval.
func (d *Driver) step(ctx context.Context, logger *slog.Logger, rec *projectstore.Record) (bool, error) {
	proj := rec.Project
	previous := proj.Status
	started := time.Now()

	logger.Info("stage started",
		logging.String(logging.FieldEventType, "stage_start"),
		logging.String(logging.FieldStatus, string(previous)))

	var err error
	switch previous {
	case project.StatusInitialized:
		if d.stages.Parser == nil {
			return d.park(logger, "no parser registered"), nil
		}
		parsed, parseErr := d.stages.Parser.Parse(ctx, proj.SourcePath, rec.SourceType)
		if parseErr != nil {
			return false, parseErr
		}
		err = proj.AttachParsedDocument(parsed)

	case project.StatusParsed:
		if d.stages.Analyzer == nil {
			return d.park(logger, "no analyzer registered"), nil
		}
		analysis, analyzeErr := d.stages.Analyzer.Analyze(ctx, proj.Parsed)
		if analyzeErr != nil {
			return false, analyzeErr
		}
		err = proj.AttachAnalysis(analysis)

	case project.StatusAnalyzed:
		if d.stages.Scripter == nil {
			return d.park(logger, "no scripter registered"), nil
		}
		governing, parked, gateErr := d.resolvePlanGate(ctx, logger, rec)
		if gateErr != nil {
			return false, gateErr
		}
		if parked {
			return false, nil
		}
		script, scriptErr := d.stages.Scripter.WriteScript(ctx, proj.Analysis, governing)
		if scriptErr != nil {
			return false, scriptErr
		}
		err = proj.AttachScript(script, governing)

	case project.StatusScripted:
		if d.stages.Storyboarder == nil {
			return d.park(logger, "no storyboarder registered"), nil
		}
		board, boardErr := d.stages.Storyboarder.Storyboard(ctx, proj.Script)
		if boardErr != nil {
			return false, boardErr
		}
		err = proj.AttachStoryboard(board)

	case project.StatusStoryboarded:
		if d.stages.Renderer == nil {
			return d.park(logger, "no renderer registered"), nil
		}
		assets, outputPath, renderErr := d.stages.Renderer.Render(ctx, proj.Storyboard)
		if renderErr != nil {
			return false, renderErr
		}
		err = proj.CompleteRender(assets, outputPath)

	default:
		return false, fmt.Errorf("%w: no stage follows status %s", project.ErrInvalidTransition, previous)
	}
	if err != nil {
		return false, err
	}

	if err := d.store.CommitTransition(ctx, proj, previous); err != nil {
		return false, err
	}
	logger.Info("stage complete",
		logging.String(logging.FieldEventType, "stage_complete"),
		logging.String(logging.FieldStatus, string(proj.Status)),
		logging.Duration("elapsed", time.Since(started)))
	return true, nil
}

func (d *Driver) park(logger *slog.Logger, reason string) bool {
	logger.Debug("project parked", logging.String("reason", reason))
	return false
}

// resolvePlanGate applies the approval checkpoint before scripting. It
// returns the governing plan (nil when no approval workflow is in use) and
// whether the project must wait.
func (d *Driver) resolvePlanGate(ctx context.Context, logger *slog.Logger, rec *projectstore.Record) (*plan.VideoPlan, bool, error) {
	governing, err := d.store.GetPlan(ctx, rec.Project.ProjectID)
	if err != nil && !errors.Is(err, projectstore.ErrNoPlan) {
		return nil, false, err
	}

	if !d.cfg.Pipeline.RequirePlanApproval {
		if governing != nil && !governing.Approved() {
			// A draft exists but the gate is disabled; script from the
			// analysis alone.
			return nil, false, nil
		}
		return governing, false, nil
	}

	if governing == nil {
		if d.stages.Planner == nil {
			// Approval required but nothing can draft a plan; proceed
			// ungated rather than wedging the project forever.
			return nil, false, nil
		}
		draft, planErr := d.stages.Planner.Plan(ctx, rec.Project.Analysis)
		if planErr != nil {
			return nil, false, planErr
		}
		if err := d.store.SavePlan(ctx, rec.Project.ProjectID, draft); err != nil {
			return nil, false, err
		}
		path, writeErr := planfile.Write(d.cfg.Paths.PlanReviewDir, rec.Project.ProjectID, draft)
		if writeErr != nil {
			return nil, false, writeErr
		}
		logger.Info("plan drafted, awaiting approval", logging.String("review_file", path))
		return nil, true, nil
	}

	if !governing.Approved() {
		logger.Debug("awaiting plan approval")
		return nil, true, nil
	}
	return governing, false, nil
}
