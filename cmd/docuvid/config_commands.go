package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docuvid/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample config to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "output", "o", "", "Where to write the sample config")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "data_dir        = %s\n", cfg.Paths.DataDir)
			fmt.Fprintf(out, "log_dir         = %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "output_dir      = %s\n", cfg.Paths.OutputDir)
			fmt.Fprintf(out, "assets_dir      = %s\n", cfg.Paths.AssetsDir)
			fmt.Fprintf(out, "plan_review_dir = %s\n", cfg.Paths.PlanReviewDir)
			fmt.Fprintf(out, "poll_interval_seconds   = %d\n", cfg.Pipeline.PollIntervalSeconds)
			fmt.Fprintf(out, "max_concurrent_projects = %d\n", cfg.Pipeline.MaxConcurrentProjects)
			fmt.Fprintf(out, "require_plan_approval   = %t\n", cfg.Pipeline.RequirePlanApproval)
			fmt.Fprintf(out, "visual_style    = %s\n", cfg.Video.VisualStyle)
			fmt.Fprintf(out, "target_audience = %s\n", cfg.Video.TargetAudience)
			fmt.Fprintf(out, "log level/format = %s/%s\n", cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}
}
