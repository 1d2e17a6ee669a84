package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"docuvid/internal/config"
	"docuvid/internal/logging"
	"docuvid/internal/projectstore"
	"docuvid/internal/services"
	"docuvid/internal/stage"
)

// Driver advances persisted projects through their pipeline stages.
type Driver struct {
	cfg          *config.Config
	store        *projectstore.Store
	stages       stage.Set
	logger       *slog.Logger
	pollInterval time.Duration
}

// New constructs a driver around the given store and stage implementations.
func New(cfg *config.Config, store *projectstore.Store, stages stage.Set, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Driver{
		cfg:          cfg,
		store:        store,
		stages:       stages,
		logger:       logger.With(logging.String(logging.FieldComponent, "driver")),
		pollInterval: time.Duration(cfg.Pipeline.PollIntervalSeconds) * time.Second,
	}
}

// Run polls for claimable projects until the context is canceled, advancing
// each as far as it can go per poll.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	d.logger.Info("driver started",
		logging.Duration("poll_interval", d.pollInterval),
		logging.Int("max_concurrent", d.cfg.Pipeline.MaxConcurrentProjects))

	for {
		if _, err := d.ProcessOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("poll pass failed", logging.Error(err))
		}
		select {
		case <-ctx.Done():
			d.logger.Info("driver stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ProcessOnce advances every claimable project as far as it can go right now
// and returns how many stage transitions were committed.
func (d *Driver) ProcessOnce(ctx context.Context) (int, error) {
	records, err := d.store.ListClaimable(ctx)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(d.cfg.Pipeline.MaxConcurrentProjects)

	advanced := make([]int, len(records))
	for i, rec := range records {
		group.Go(func() error {
			advanced[i] = d.advanceProject(groupCtx, rec.Project.ProjectID)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range advanced {
		total += n
	}
	return total, nil
}

// advanceProject steps one project through consecutive stages until it parks,
// completes, or fails. Failures are recorded as dispositions; losing a
// commit race is not a failure.
func (d *Driver) advanceProject(ctx context.Context, projectID string) int {
	steps := 0
	for {
		rec, err := d.store.GetByID(ctx, projectID)
		if err != nil {
			d.logger.Error("reload project", logging.String(logging.FieldProjectID, projectID), logging.Error(err))
			return steps
		}
		if !rec.Claimable() {
			return steps
		}

		stageName := stageNameFor(rec.Project.Status)
		stageCtx := services.WithRequestID(
			services.WithStage(services.WithProjectID(ctx, projectID), stageName),
			uuid.NewString(),
		)
		stageLogger := logging.WithContext(stageCtx, d.logger)

		progressed, err := d.step(stageCtx, stageLogger, rec)
		switch {
		case err == nil && !progressed:
			return steps
		case err == nil:
			steps++
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return steps
		case errors.Is(err, projectstore.ErrStaleProject):
			stageLogger.Debug("lost transition race, reloading")
		default:
			disposition := services.FailureDisposition(err)
			stageLogger.Error("stage failed",
				logging.String(logging.FieldEventType, "stage_failed"),
				logging.String("disposition", string(disposition)),
				logging.Error(err))
			if derr := d.store.SetDisposition(ctx, projectID, disposition, err.Error()); derr != nil {
				stageLogger.Error("persist disposition", logging.Error(derr))
			}
			return steps
		}
	}
}
