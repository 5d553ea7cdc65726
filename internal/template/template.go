// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template locates and scaffolds the markdown templates used to
// seed feature documents. Templates live as plain .md files in the
// project's templates directory; a missing directory simply means no
// templates, not an error.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Available returns the markdown templates in dir as a map of filename to
// path. A missing directory returns an empty map.
func Available(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading templates directory %s: %w", dir, err)
	}

	templates := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		templates[entry.Name()] = filepath.Join(dir, entry.Name())
	}
	return templates, nil
}

// CopyOrCreate copies src to dst. When src is empty or does not exist dst
// is created empty instead.
func CopyOrCreate(src, dst string) error {
	var data []byte
	if src != "" {
		var err error
		data, err = os.ReadFile(src)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("reading template %s: %w", src, err)
			}
			data = nil
		}
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// builtins maps template filenames to their built-in content.
var builtins = map[string]string{
	"spec-template.md":  DefaultSpecTemplate,
	"plan-template.md":  DefaultPlanTemplate,
	"tasks-template.md": DefaultTasksTemplate,
}

// Scaffold writes the built-in templates into dir, creating it if needed.
// Existing files are kept unless force is set. It returns the paths of the
// files it wrote.
func Scaffold(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating templates directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.WriteFile(path, []byte(builtins[name]), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
