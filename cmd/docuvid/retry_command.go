package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docuvid/internal/config"
	"docuvid/internal/projectstore"
)

func newRetryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "retry <project-id>",
		Short: "Clear a failed project so the driver picks it up again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				rec, err := findProject(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				if rec.Disposition == "" {
					return fmt.Errorf("project %s is not blocked", shortID(rec.Project.ProjectID))
				}
				if err := store.ClearDisposition(cmd.Context(), rec.Project.ProjectID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Project %s will resume from %s\n",
					shortID(rec.Project.ProjectID), rec.Project.Status)
				return nil
			})
		},
	}
}

func newAbandonCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "abandon <project-id>",
		Short: "Delete a project and its plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				rec, err := findProject(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				if !force && rec.Project.Status.Terminal() {
					return fmt.Errorf("project %s is already rendered; pass --force to delete anyway",
						shortID(rec.Project.ProjectID))
				}
				if err := store.Delete(cmd.Context(), rec.Project.ProjectID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Abandoned project %s\n", shortID(rec.Project.ProjectID))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if already rendered")
	return cmd
}
