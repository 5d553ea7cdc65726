// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "spec-template.md", "spec")
	writeFile(t, dir, "plan-template.md", "plan")
	writeFile(t, dir, "notes.txt", "not a template")
	if err := os.Mkdir(filepath.Join(dir, "archive.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	templates, err := Available(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("got %d templates, want 2: %v", len(templates), templates)
	}
	if templates["spec-template.md"] != filepath.Join(dir, "spec-template.md") {
		t.Errorf("spec-template.md path = %q", templates["spec-template.md"])
	}
}

func TestAvailableMissingDir(t *testing.T) {
	templates, err := Available(filepath.Join(t.TempDir(), "templates"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(templates) != 0 {
		t.Errorf("got %v, want empty map", templates)
	}
}

func TestCopyOrCreate(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"copies template content", "# Spec\n\nbody\n", "# Spec\n\nbody\n"},
		{"missing source creates empty file", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "spec-template.md")
			if tt.src != "" {
				writeFile(t, dir, "spec-template.md", tt.src)
			}
			dst := filepath.Join(dir, "spec.md")

			if err := CopyOrCreate(src, dst); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			data, err := os.ReadFile(dst)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("dst = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestCopyOrCreateEmptySource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "spec.md")
	if err := CopyOrCreate("", dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("dst has %d bytes, want empty", len(data))
	}
}

func TestScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	written, err := Scaffold(dir, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("wrote %d files, want 3: %v", len(written), written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "spec-template.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# Feature Specification") {
		t.Errorf("spec template content = %q", data)
	}
}

func TestScaffoldKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "spec-template.md", "custom")

	written, err := Scaffold(dir, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("wrote %d files, want 2: %v", len(written), written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "spec-template.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "custom" {
		t.Errorf("existing template overwritten: %q", data)
	}
}

func TestScaffoldForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "spec-template.md", "custom")

	written, err := Scaffold(dir, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("wrote %d files, want 3: %v", len(written), written)
	}

	data, err := os.ReadFile(filepath.Join(dir, "spec-template.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "custom" {
		t.Error("force did not overwrite the existing template")
	}
}
