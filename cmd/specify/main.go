// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the specify CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/specify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the specify CLI.
var rootCmd = &cobra.Command{
	Use:   "specify",
	Short: "Bootstrap and manage numbered feature workspaces",
	Long: `specify manages feature workspaces in a spec-driven repository. Each
feature gets a sequential three-digit number, a git branch named after the
number and a short slug of its description, and a directory under specs/
seeded from a spec template.

Claude or a human drives the workflow through the subcommands: new-feature
creates the next workspace, check validates the current one, paths prints
its canonical file locations, and list enumerates all of them.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./specify.yaml or ~/.config/specify/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("specify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "specify"))
		}
	}

	viper.SetDefault("project.specs_dir", "specs")
	viper.SetDefault("project.templates_dir", "templates")
	viper.SetDefault("project.state_dir", ".specify")
	viper.SetDefault("registry.enabled", true)
	viper.SetDefault("registry.max_results", 50)

	viper.SetEnvPrefix("SPECIFY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the typed configuration from viper.
func loadConfig() types.Config {
	return types.Config{
		Project: types.ProjectConfig{
			SpecsDir:     viper.GetString("project.specs_dir"),
			TemplatesDir: viper.GetString("project.templates_dir"),
			StateDir:     viper.GetString("project.state_dir"),
		},
		Registry: types.RegistryConfig{
			Enabled:    viper.GetBool("registry.enabled"),
			MaxResults: viper.GetInt("registry.max_results"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
