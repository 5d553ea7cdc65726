// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/specify/internal/feature"
	"github.com/pdiddy/specify/internal/gitutil"
	"github.com/pdiddy/specify/internal/registry"
)

var newFeatureCmd = &cobra.Command{
	Use:   "new-feature [--json] [--feature-num N] <description>...",
	Short: "Create the next numbered feature branch and spec workspace",
	Long: `New-feature derives the next sequential feature number from the specs
directory, builds a branch name from the number and a short slug of the
description, creates and switches to the branch when the project is under
git, and scaffolds specs/<branch>/spec.md from templates/spec-template.md.

The derived branch name, spec file path, and feature number are printed as
three labeled lines, or as a single JSON object with --json.`,
	RunE: runNewFeature,
}

func runNewFeature(cmd *cobra.Command, args []string) error {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return fmt.Errorf("feature description required: specify new-feature [--json] [--feature-num N] <description>")
	}

	// The flag is a string so leading zeros parse as decimal, never octal.
	var featureNum int
	if cmd.Flags().Changed("feature-num") {
		raw, _ := cmd.Flags().GetString("feature-num")
		n, err := feature.ParseNumber(raw)
		if err != nil {
			return err
		}
		featureNum = n
	}

	cfg := loadConfig()
	ctx := cmd.Context()

	vcs := gitutil.Detect(ctx, ".")
	root, err := vcs.DiscoverRoot(ctx, ".")
	if err != nil {
		return err
	}

	req := feature.CreateRequest{
		Description:  description,
		Number:       featureNum,
		RepoRoot:     root,
		SpecsDir:     cfg.Project.SpecsDir,
		TemplatesDir: cfg.Project.TemplatesDir,
		VCS:          vcs,
		Warnings:     os.Stderr,
	}

	if cfg.Registry.Enabled {
		store, err := registry.Open(cfg.Registry, filepath.Join(root, cfg.Project.StateDir))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: registry unavailable: %v\n", err)
		} else {
			defer store.Close()
			req.Recorder = store
		}
	}

	res, err := feature.Create(ctx, req)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return printFeatureResult(res, jsonOutput)
}

// printFeatureResult writes the derived values as labeled lines, or with
// jsonOutput as a single-line JSON object whose values are all strings.
func printFeatureResult(res *feature.Result, jsonOutput bool) error {
	if jsonOutput {
		out := map[string]string{
			"BRANCH_NAME": res.BranchName,
			"SPEC_FILE":   res.SpecFile,
			"FEATURE_NUM": feature.FormatNumber(res.Num),
		}
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("BRANCH_NAME: %s\n", res.BranchName)
	fmt.Printf("SPEC_FILE: %s\n", res.SpecFile)
	fmt.Printf("FEATURE_NUM: %s\n", feature.FormatNumber(res.Num))
	return nil
}

func init() {
	newFeatureCmd.Flags().Bool("json", false, "print results as a single JSON object")
	newFeatureCmd.Flags().String("feature-num", "", "override the auto-derived feature number (1-999)")

	rootCmd.AddCommand(newFeatureCmd)
}
