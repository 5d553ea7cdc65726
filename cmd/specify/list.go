// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/specify/internal/feature"
	"github.com/pdiddy/specify/internal/gitutil"
	"github.com/pdiddy/specify/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List feature workspaces under the specs directory",
	Long: `List enumerates the numbered feature directories under specs/, sorted
by feature number. Descriptions and creation times come from each feature's
manifest when present. Use --export to also write the registry journal to a
YAML file.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	ctx := cmd.Context()

	root, err := gitutil.Detect(ctx, ".").DiscoverRoot(ctx, ".")
	if err != nil {
		return err
	}

	feats, err := feature.ListFeatures(filepath.Join(root, cfg.Project.SpecsDir))
	if err != nil {
		return err
	}

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		store, err := registry.Open(cfg.Registry, filepath.Join(root, cfg.Project.StateDir))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.ExportYAML(ctx, exportPath); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Exported registry to", exportPath)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	format, _ := cmd.Flags().GetString("format")

	switch {
	case jsonOutput:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(feats)
	case format == "yaml":
		data, err := yaml.Marshal(feats)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		os.Stdout.Write(data)
		return nil
	case format == "text", format == "":
		if len(feats) == 0 {
			fmt.Println("No features found.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "%-4s  %-40s  %s\n", "Num", "Branch", "Description")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
		for _, f := range feats {
			fmt.Fprintf(os.Stdout, "%s   %-40s  %s\n",
				feature.FormatNumber(f.Num), f.Branch, truncateDescription(f.Description, 40))
		}
		fmt.Fprintf(os.Stdout, "\n%d features\n", len(feats))
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use text or yaml", format)
	}
}

// truncateDescription shortens desc to at most max characters, counting
// runes rather than bytes so multi-byte text is never cut mid-character.
func truncateDescription(desc string, max int) string {
	runes := []rune(desc)
	if len(runes) <= max {
		return desc
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	listCmd.Flags().Bool("json", false, "output features as JSON")
	listCmd.Flags().String("format", "text", "output format: text or yaml")
	listCmd.Flags().String("export", "", "also write the registry journal to this YAML file")

	rootCmd.AddCommand(listCmd)
}
