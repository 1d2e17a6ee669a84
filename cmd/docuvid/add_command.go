package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docuvid/internal/artifacts"
	"docuvid/internal/config"
	"docuvid/internal/projectstore"
)

var extensionSourceTypes = map[string]artifacts.SourceType{
	".md":       artifacts.SourceMarkdown,
	".markdown": artifacts.SourceMarkdown,
	".pdf":      artifacts.SourcePDF,
	".txt":      artifacts.SourceText,
	".text":     artifacts.SourceText,
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "add <source>",
		Short: "Start a video project from a document, PDF, URL, or text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]

			sourceType, sourcePath, err := resolveSource(source, typeFlag)
			if err != nil {
				return err
			}

			return ctx.withStore(func(_ *config.Config, store *projectstore.Store) error {
				rec, err := store.NewProject(cmd.Context(), sourcePath, sourceType)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s, %s)\n",
					rec.Project.ProjectID, sourceType, sourcePath)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Source type (markdown, pdf, url, text); inferred when omitted")
	return cmd
}

func resolveSource(source, typeFlag string) (artifacts.SourceType, string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if typeFlag != "" {
			if parsed, ok := artifacts.ParseSourceType(typeFlag); !ok || parsed != artifacts.SourceURL {
				return "", "", fmt.Errorf("source %s is a URL; --type %s does not apply", source, typeFlag)
			}
		}
		return artifacts.SourceURL, source, nil
	}

	absPath, err := filepath.Abs(source)
	if err != nil {
		return "", "", fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("source does not exist: %s", absPath)
		}
		return "", "", fmt.Errorf("inspect source: %w", err)
	}
	if info.IsDir() {
		return "", "", fmt.Errorf("%s is a directory", absPath)
	}

	if typeFlag != "" {
		parsed, ok := artifacts.ParseSourceType(typeFlag)
		if !ok {
			return "", "", fmt.Errorf("unknown source type %q", typeFlag)
		}
		return parsed, absPath, nil
	}

	ext := strings.ToLower(filepath.Ext(info.Name()))
	if sourceType, ok := extensionSourceTypes[ext]; ok {
		return sourceType, absPath, nil
	}
	return "", "", fmt.Errorf("cannot infer source type from extension %q; pass --type", ext)
}
