// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Prereqs names the optional documents a workflow stage requires beyond
// the spec itself.
type Prereqs struct {
	Plan  bool
	Tasks bool
}

// CheckResult reports the validated locations of the current feature.
type CheckResult struct {
	Branch     string
	FeatureDir string
	SpecFile   string
}

// CheckPrerequisites validates that branch names a feature and that its
// directory, spec.md, and any required documents exist under specsRoot.
func CheckPrerequisites(specsRoot, branch string, prereqs Prereqs) (*CheckResult, error) {
	if !IsFeatureBranch(branch) {
		return nil, fmt.Errorf("current branch %q is not a feature branch (expected NNN-slug)", branch)
	}

	featureDir := filepath.Join(specsRoot, branch)
	required := []string{
		featureDir,
		filepath.Join(featureDir, SpecFileName),
	}
	if prereqs.Plan {
		required = append(required, filepath.Join(featureDir, PlanFileName))
	}
	if prereqs.Tasks {
		required = append(required, filepath.Join(featureDir, TasksFileName))
	}

	var missing []string
	for _, path := range required {
		if _, err := os.Stat(path); err != nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing prerequisites: %s", strings.Join(missing, ", "))
	}

	return &CheckResult{
		Branch:     branch,
		FeatureDir: featureDir,
		SpecFile:   filepath.Join(featureDir, SpecFileName),
	}, nil
}
