// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specify/internal/feature"
	"github.com/pdiddy/specify/internal/gitutil"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate prerequisites for the current feature branch",
	Long: `Check verifies that the current git branch names a feature (NNN-slug),
that its directory exists under specs/, and that spec.md is present.
--require-plan and --require-tasks additionally demand plan.md and
tasks.md, for workflow stages that build on an approved spec.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	vcs := gitutil.Detect(ctx, ".")
	root, err := vcs.DiscoverRoot(ctx, ".")
	if err != nil {
		return err
	}
	branch, err := vcs.CurrentBranch(ctx, root)
	if err != nil {
		return err
	}

	requirePlan, _ := cmd.Flags().GetBool("require-plan")
	requireTasks, _ := cmd.Flags().GetBool("require-tasks")

	res, err := feature.CheckPrerequisites(
		filepath.Join(root, cfg.Project.SpecsDir), branch,
		feature.Prereqs{Plan: requirePlan, Tasks: requireTasks},
	)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		out := map[string]string{
			"BRANCH":       res.Branch,
			"FEATURE_DIR":  res.FeatureDir,
			"FEATURE_SPEC": res.SpecFile,
		}
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("OK: %s\n", res.Branch)
	return nil
}

func init() {
	checkCmd.Flags().Bool("require-plan", false, "also require plan.md in the feature directory")
	checkCmd.Flags().Bool("require-tasks", false, "also require tasks.md in the feature directory")
	checkCmd.Flags().Bool("json", false, "print results as a single JSON object")

	rootCmd.AddCommand(checkCmd)
}
