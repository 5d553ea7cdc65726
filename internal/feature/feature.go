// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feature

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/specify/internal/gitutil"
	"github.com/pdiddy/specify/internal/template"
	"github.com/pdiddy/specify/pkg/types"
)

// File names inside a feature directory.
const (
	SpecFileName     = "spec.md"
	PlanFileName     = "plan.md"
	TasksFileName    = "tasks.md"
	ManifestFileName = "feature.yaml"
)

// SpecTemplateName is the template copied into new features when present.
const SpecTemplateName = "spec-template.md"

// Recorder journals created features. The registry implements it; a nil
// Recorder disables journaling.
type Recorder interface {
	Record(ctx context.Context, f types.Feature) error
}

// CreateRequest carries everything Create needs. RepoRoot must be absolute
// or relative to the working directory; SpecsDir and TemplatesDir are
// resolved against it.
type CreateRequest struct {
	// Description is the free-text feature description. Must be non-empty
	// after trimming.
	Description string

	// Number overrides auto-numbering when greater than zero.
	Number int

	RepoRoot     string
	SpecsDir     string
	TemplatesDir string

	// VCS provides branch creation. When it reports the root unavailable
	// the branch step is skipped with a warning.
	VCS gitutil.VCS

	// Recorder journals the created feature; failures are warnings, not
	// errors. Nil disables journaling.
	Recorder Recorder

	// Warnings receives non-fatal diagnostics; nil discards them.
	Warnings io.Writer
}

// Result reports the derived values for a created feature.
type Result struct {
	BranchName string
	SpecFile   string
	Num        int
}

// Create derives the feature number and branch name, creates the branch
// when version control is available, scaffolds the feature directory with
// spec.md and a manifest, and journals the feature. The feature directory
// must not already exist; the collision is detected before any branch or
// directory is created.
func Create(ctx context.Context, req CreateRequest) (*Result, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, errors.New("feature description must not be empty")
	}
	warnings := req.Warnings
	if warnings == nil {
		warnings = io.Discard
	}

	specsRoot := filepath.Join(req.RepoRoot, req.SpecsDir)

	num := req.Number
	if num > 0 {
		if err := ValidateNumber(num); err != nil {
			return nil, err
		}
	} else {
		names, err := ExistingNames(specsRoot)
		if err != nil {
			return nil, err
		}
		num = NextNumber(names)
		if err := ValidateNumber(num); err != nil {
			return nil, fmt.Errorf("specs root %s is full: %w", specsRoot, err)
		}
	}

	branch := BranchName(num, description)
	featureDir := filepath.Join(specsRoot, branch)
	if _, err := os.Stat(featureDir); err == nil {
		return nil, fmt.Errorf("feature directory %s already exists", featureDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking feature directory: %w", err)
	}

	if req.VCS != nil && req.VCS.Available(ctx, req.RepoRoot) {
		if err := req.VCS.CreateBranch(ctx, req.RepoRoot, branch); err != nil {
			return nil, fmt.Errorf("creating branch %s: %w", branch, err)
		}
	} else {
		fmt.Fprintf(warnings, "warning: git repository not detected; skipped branch creation for %s\n", branch)
	}

	if err := os.MkdirAll(featureDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating feature directory: %w", err)
	}

	templates, err := template.Available(filepath.Join(req.RepoRoot, req.TemplatesDir))
	if err != nil {
		return nil, err
	}
	specFile := filepath.Join(featureDir, SpecFileName)
	if err := template.CopyOrCreate(templates[SpecTemplateName], specFile); err != nil {
		return nil, err
	}

	feat := types.Feature{
		Num:         num,
		Branch:      branch,
		Description: description,
		SpecPath:    specFile,
		CreatedAt:   time.Now().UTC(),
	}

	if err := writeManifest(featureDir, feat); err != nil {
		fmt.Fprintf(warnings, "warning: %v\n", err)
	}
	if req.Recorder != nil {
		if err := req.Recorder.Record(ctx, feat); err != nil {
			fmt.Fprintf(warnings, "warning: registry record failed: %v\n", err)
		}
	}

	return &Result{BranchName: branch, SpecFile: specFile, Num: num}, nil
}

// writeManifest writes feature.yaml next to the spec file.
func writeManifest(featureDir string, feat types.Feature) error {
	data, err := yaml.Marshal(&feat)
	if err != nil {
		return fmt.Errorf("marshaling feature manifest: %w", err)
	}
	path := filepath.Join(featureDir, ManifestFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing feature manifest: %w", err)
	}
	return nil
}

// ListFeatures scans the specs root and returns one Feature per numbered
// subdirectory, sorted by number then branch. The manifest fills in the
// description and creation time when readable; a directory without a
// manifest still lists.
func ListFeatures(specsRoot string) ([]types.Feature, error) {
	names, err := ExistingNames(specsRoot)
	if err != nil {
		return nil, err
	}

	var feats []types.Feature
	for _, name := range names {
		num := ParseNumberPrefix(name)
		if num < MinNumber || num > MaxNumber {
			continue
		}
		f := types.Feature{
			Num:      num,
			Branch:   name,
			SpecPath: filepath.Join(specsRoot, name, SpecFileName),
		}
		if data, err := os.ReadFile(filepath.Join(specsRoot, name, ManifestFileName)); err == nil {
			var m types.Feature
			if err := yaml.Unmarshal(data, &m); err == nil {
				f.Description = m.Description
				f.CreatedAt = m.CreatedAt
			}
		}
		feats = append(feats, f)
	}

	sort.Slice(feats, func(i, j int) bool {
		if feats[i].Num != feats[j].Num {
			return feats[i].Num < feats[j].Num
		}
		return feats[i].Branch < feats[j].Branch
	})
	return feats, nil
}
