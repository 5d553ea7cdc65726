// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specify/internal/feature"
	"github.com/pdiddy/specify/internal/fetch"
	"github.com/pdiddy/specify/internal/gitutil"
	"github.com/pdiddy/specify/internal/template"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold the templates and state directories",
	Long: `Init prepares a repository for the feature workflow: it creates the
templates/ directory with built-in spec, plan, and tasks templates and the
.specify/ state directory. With --from, the spec template is downloaded
from a URL instead of using the built-in one. Existing files are left
alone unless --force is given.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	root, err := gitutil.Detect(ctx, ".").DiscoverRoot(ctx, ".")
	if err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	templatesDir := filepath.Join(root, cfg.Project.TemplatesDir)

	written, err := template.Scaffold(templatesDir, force)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Println("  ", path)
	}

	if fromURL, _ := cmd.Flags().GetString("from"); fromURL != "" {
		data, err := fetch.Download(ctx, nil, fromURL, 0)
		if err != nil {
			return err
		}
		dst := filepath.Join(templatesDir, feature.SpecTemplateName)
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		fmt.Println("  ", dst, "(downloaded)")
	}

	stateDir := filepath.Join(root, cfg.Project.StateDir)
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	fmt.Println("Project initialized.")
	return nil
}

func init() {
	initCmd.Flags().String("from", "", "download the spec template from a URL")
	initCmd.Flags().Bool("force", false, "overwrite existing template files")

	rootCmd.AddCommand(initCmd)
}
