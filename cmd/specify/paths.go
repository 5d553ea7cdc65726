// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specify/internal/feature"
	"github.com/pdiddy/specify/internal/gitutil"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print canonical paths for the current feature",
	Long: `Paths prints KEY: value lines locating the current feature's directory
and documents, for scripts and skills that operate on the active feature.`,
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	vcs := gitutil.Detect(ctx, ".")
	root, err := vcs.DiscoverRoot(ctx, ".")
	if err != nil {
		return err
	}
	branch, err := vcs.CurrentBranch(ctx, root)
	if err != nil {
		if errors.Is(err, gitutil.ErrNoRepo) {
			return errors.New("paths requires a git repository with a checked-out feature branch")
		}
		return err
	}
	if !feature.IsFeatureBranch(branch) {
		return fmt.Errorf("current branch %q is not a feature branch (expected NNN-slug)", branch)
	}

	featureDir := filepath.Join(root, cfg.Project.SpecsDir, branch)
	fmt.Printf("REPO_ROOT: %s\n", root)
	fmt.Printf("CURRENT_BRANCH: %s\n", branch)
	fmt.Printf("FEATURE_DIR: %s\n", featureDir)
	fmt.Printf("FEATURE_SPEC: %s\n", filepath.Join(featureDir, feature.SpecFileName))
	fmt.Printf("IMPL_PLAN: %s\n", filepath.Join(featureDir, feature.PlanFileName))
	fmt.Printf("TASKS: %s\n", filepath.Join(featureDir, feature.TasksFileName))
	return nil
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
