// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ProjectConfig holds the repository layout settings.
type ProjectConfig struct {
	// SpecsDir is the directory under the repository root that holds one
	// subdirectory per feature (default "specs").
	SpecsDir string `json:"specs_dir" yaml:"specs_dir"`

	// TemplatesDir is the directory that holds the spec, plan, and tasks
	// templates (default "templates").
	TemplatesDir string `json:"templates_dir" yaml:"templates_dir"`

	// StateDir is the directory that holds tool state such as the feature
	// registry database (default ".specify").
	StateDir string `json:"state_dir" yaml:"state_dir"`
}

// RegistryConfig holds settings for the feature registry.
type RegistryConfig struct {
	// Enabled controls whether created features are journaled in the
	// registry database (default true).
	Enabled bool `json:"enabled" yaml:"enabled"`

	// MaxResults caps the number of rows returned by registry queries
	// (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all settings for the CLI.
type Config struct {
	Project  ProjectConfig  `json:"project" yaml:"project"`
	Registry RegistryConfig `json:"registry" yaml:"registry"`
}
