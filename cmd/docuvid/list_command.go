package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"docuvid/internal/config"
	"docuvid/internal/project"
	"docuvid/internal/projectstore"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all video projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				records, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No projects. Start one with 'docuvid add <source>'.")
					return nil
				}

				rows := make([][]string, 0, len(records))
				for _, rec := range records {
					state := string(rec.Project.Status)
					if rec.Disposition != "" {
						state = fmt.Sprintf("%s (%s)", state, rec.Disposition)
					}
					rows = append(rows, []string{
						shortID(rec.Project.ProjectID),
						filepath.Base(rec.Project.SourcePath),
						string(rec.SourceType),
						state,
						rec.UpdatedAt.Local().Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Source", "Type", "Status", "Updated"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
				))

				counts, err := store.Counts(cmd.Context())
				if err != nil {
					return err
				}
				summary := ""
				for _, status := range project.AllStatuses() {
					if counts[status] == 0 {
						continue
					}
					if summary != "" {
						summary += ", "
					}
					summary += strconv.Itoa(counts[status]) + " " + string(status)
				}
				if summary != "" {
					fmt.Fprintln(cmd.OutOrStdout(), summary)
				}
				return nil
			})
		},
	}
}

// shortID trims UUIDs for table display; full IDs remain accepted everywhere.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
