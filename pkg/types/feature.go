// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds shared data and configuration types for specify.
package types

import "time"

// Feature describes one numbered feature workspace.
type Feature struct {
	// Num is the sequential feature number (1-999).
	Num int `json:"num" yaml:"num"`

	// Branch is the branch and directory name: zero-padded number plus slug
	// (e.g. "004-user-auth-flow").
	Branch string `json:"branch" yaml:"branch"`

	// Description is the free-text description the feature was created from.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// SpecPath is the path of the feature's spec.md.
	SpecPath string `json:"spec_path" yaml:"spec_path"`

	// CreatedAt is when the workspace was created.
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}
