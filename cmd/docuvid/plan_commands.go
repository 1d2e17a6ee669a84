package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"docuvid/internal/config"
	"docuvid/internal/planfile"
	"docuvid/internal/projectstore"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Review and approve video plans",
	}
	planCmd.AddCommand(newPlanExportCommand(ctx))
	planCmd.AddCommand(newPlanApproveCommand(ctx))
	return planCmd
}

func newPlanExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <project-id>",
		Short: "Write the project's draft plan to a review file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *projectstore.Store) error {
				rec, err := findProject(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				governing, err := store.GetPlan(cmd.Context(), rec.Project.ProjectID)
				if err != nil {
					return err
				}
				path, err := planfile.Write(cfg.Paths.PlanReviewDir, rec.Project.ProjectID, governing)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Plan written to %s\n", path)
				return nil
			})
		},
	}
}

func newPlanApproveCommand(ctx *commandContext) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "approve <project-id>",
		Short: "Approve a draft plan so scripting may proceed",
		Long: `Approve a draft plan so scripting may proceed.

If the plan's review file was edited, the edits are read back and stored
before approval. Approval is one-way; re-plan by abandoning the project.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *projectstore.Store) error {
				rec, err := findProject(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				projectID := rec.Project.ProjectID

				stored, err := store.GetPlan(cmd.Context(), projectID)
				if err != nil {
					return err
				}

				reviewPath := filepath.Join(cfg.Paths.PlanReviewDir, projectID+".yaml")
				if _, statErr := os.Stat(reviewPath); statErr == nil && !stored.Approved() {
					edited, readErr := planfile.Read(reviewPath, stored.CreatedAt)
					if readErr != nil {
						return fmt.Errorf("review file %s: %w", reviewPath, readErr)
					}
					edited.SourceDocument = stored.SourceDocument
					if notes != "" {
						edited.UserNotes = notes
					}
					if err := store.SavePlan(cmd.Context(), projectID, edited); err != nil {
						return err
					}
				} else if notes != "" {
					stored.UserNotes = notes
					if err := store.SavePlan(cmd.Context(), projectID, stored); err != nil {
						return err
					}
				} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
					return fmt.Errorf("inspect review file: %w", statErr)
				}

				approved, err := store.ApprovePlan(cmd.Context(), projectID, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Plan approved (%d scenes, ~%.0fs)\n",
					len(approved.Scenes), approved.EstimatedTotalDuration)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes recorded with the approval")
	return cmd
}
