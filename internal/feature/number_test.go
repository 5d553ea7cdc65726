// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feature

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseNumberPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"simple prefix", "001-user-auth", 1},
		{"multi digit", "042-payment-flow", 42},
		{"leading zeros stripped", "0012-x", 12},
		{"octal lookalike", "010-y", 10},
		{"all zeros", "000-z", 0},
		{"no prefix", "misc-notes", 0},
		{"empty", "", 0},
		{"bare number", "003", 3},
		{"digits only after text", "x001", 0},
		{"huge digit run", "99999999999999999999-big", MaxNumber + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseNumberPrefix(tt.input); got != tt.want {
				t.Errorf("ParseNumberPrefix(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  int
	}{
		{"gap is not filled", []string{"001-x", "003-y"}, 4},
		{"empty set", nil, 1},
		{"non-numeric only", []string{"misc", "notes"}, 1},
		{"unordered", []string{"010-a", "002-b", "007-c"}, 11},
		{"leading zeros", []string{"0099-a"}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextNumber(tt.names); got != tt.want {
				t.Errorf("NextNumber(%v) = %d, want %d", tt.names, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"plain", "7", 7, false},
		{"zero padded", "007", 7, false},
		{"octal lookalike reads decimal", "010", 10, false},
		{"leading zero with eight", "08", 8, false},
		{"upper bound", "999", 999, false},
		{"surrounding whitespace", " 42 ", 42, false},
		{"zero", "0", 0, true},
		{"all zeros", "000", 0, true},
		{"too large", "1000", 0, true},
		{"negative", "-5", 0, true},
		{"non-numeric", "abc", 0, true},
		{"mixed", "12x", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumber(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseNumber(%q) = %d, expected error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q): unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{7, false},
		{999, false},
		{1000, true},
		{-3, true},
	}

	for _, tt := range tests {
		err := ValidateNumber(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateNumber(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "001"},
		{7, "007"},
		{42, "042"},
		{999, "999"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestExistingNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"001-auth", "002-billing"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	// Files are not feature directories.
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := ExistingNames(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2: %v", len(names), names)
	}
}

func TestExistingNamesMissingRoot(t *testing.T) {
	names, err := ExistingNames(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names != nil {
		t.Errorf("got %v, want nil", names)
	}
}
