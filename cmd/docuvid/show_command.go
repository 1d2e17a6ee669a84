package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docuvid/internal/config"
	"docuvid/internal/projectstore"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project's pipeline state and artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, store *projectstore.Store) error {
				rec, err := findProject(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				proj := rec.Project

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Project:  %s\n", proj.ProjectID)
				fmt.Fprintf(out, "Source:   %s (%s)\n", proj.SourcePath, rec.SourceType)
				fmt.Fprintf(out, "Status:   %s\n", proj.Status)
				if rec.Disposition != "" {
					fmt.Fprintf(out, "Blocked:  %s: %s\n", rec.Disposition, rec.ErrorMessage)
				}

				if proj.Parsed != nil {
					fmt.Fprintf(out, "Document: %q, %d sections\n", proj.Parsed.Title, len(proj.Parsed.Sections))
				}
				if proj.Analysis != nil {
					fmt.Fprintf(out, "Analysis: %d concepts, complexity %d/10, ~%ds suggested\n",
						len(proj.Analysis.KeyConcepts), proj.Analysis.ComplexityScore, proj.Analysis.SuggestedDurationSeconds)
				}
				if proj.Script != nil {
					fmt.Fprintf(out, "Script:   %d scenes, %.1fs total\n",
						len(proj.Script.Scenes), proj.Script.TotalDurationSeconds)
				}
				if proj.Storyboard != nil {
					fmt.Fprintf(out, "Storyboard: %d scenes, %.1fs total\n",
						len(proj.Storyboard.Scenes), proj.Storyboard.TotalDurationSeconds)
				}
				if proj.OutputPath != "" {
					fmt.Fprintf(out, "Output:   %s\n", proj.OutputPath)
				}

				governing, err := store.GetPlan(cmd.Context(), proj.ProjectID)
				if err == nil {
					line := fmt.Sprintf("Plan:     %s (%d scenes)", governing.Status, len(governing.Scenes))
					if governing.ApprovedAt != nil {
						line += ", approved " + governing.ApprovedAt.Local().Format("2006-01-02 15:04")
					}
					fmt.Fprintln(out, line)
				} else if !errors.Is(err, projectstore.ErrNoPlan) {
					return err
				}
				return nil
			})
		},
	}
}

// findProject resolves a full project ID or a unique ID prefix.
func findProject(ctx context.Context, store *projectstore.Store, idOrPrefix string) (*projectstore.Record, error) {
	rec, err := store.GetByID(ctx, idOrPrefix)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, projectstore.ErrNotFound) {
		return nil, err
	}

	records, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	var matched *projectstore.Record
	for _, candidate := range records {
		if strings.HasPrefix(candidate.Project.ProjectID, idOrPrefix) {
			if matched != nil {
				return nil, fmt.Errorf("project id prefix %q is ambiguous", idOrPrefix)
			}
			matched = candidate
		}
	}
	if matched == nil {
		return nil, fmt.Errorf("%w: %s", projectstore.ErrNotFound, idOrPrefix)
	}
	return matched, nil
}
