package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"docuvid/internal/config"
	"docuvid/internal/logging"
	"docuvid/internal/parsing"
	"docuvid/internal/pipeline"
	"docuvid/internal/projectstore"
	"docuvid/internal/stage"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive pending projects through the pipeline",
		Long: `Drive pending projects through the pipeline.

Only the document parser ships built in; analysis, scripting, storyboarding,
and rendering stages are provided by external integrations. Projects whose
next stage is unavailable stay parked and are listed by 'docuvid list'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *projectstore.Store) error {
				lock := flock.New(filepath.Join(cfg.Paths.DataDir, "docuvid.lock"))
				locked, err := lock.TryLock()
				if err != nil {
					return fmt.Errorf("acquire run lock: %w", err)
				}
				if !locked {
					return errors.New("another docuvid run is already active")
				}
				defer lock.Unlock()

				logger, err := logging.NewFromConfig(cfg)
				if err != nil {
					return err
				}

				driver := pipeline.New(cfg, store, registeredStages(), logger)

				if once {
					advanced, err := driver.ProcessOnce(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Advanced %d stage(s)\n", advanced)
					return nil
				}

				runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()
				if err := driver.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Advance claimable projects once and exit")
	return cmd
}

// registeredStages assembles the stage implementations this build ships
// with. External integrations slot in here.
func registeredStages() stage.Set {
	return stage.Set{
		Parser: parsing.New(),
	}
}
