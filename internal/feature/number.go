// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feature derives feature numbers, slugs, and branch names, and
// creates feature workspaces under the specs root.
package feature

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// MinNumber and MaxNumber bound valid feature numbers.
const (
	MinNumber = 1
	MaxNumber = 999
)

// ParseNumberPrefix returns the integer value of the leading digit run of
// name. Leading zeros are stripped before parsing, so "0012-x" yields 12
// rather than an octal reading. A name with no leading digits yields 0.
func ParseNumberPrefix(name string) int {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	run := strings.TrimLeft(name[:i], "0")
	if run == "" {
		return 0
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		// Digit run too large to represent; treat as past the valid range.
		return MaxNumber + 1
	}
	return n
}

// NextNumber returns one more than the highest numeric prefix among names.
// An empty set yields 1.
func NextNumber(names []string) int {
	high := 0
	for _, name := range names {
		if n := ParseNumberPrefix(name); n > high {
			high = n
		}
	}
	return high + 1
}

// ParseNumber parses an explicitly supplied feature number. Leading zeros
// are stripped before parsing, so "010" reads as decimal 10, never octal.
// The value must be all digits and within the valid range.
func ParseNumber(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("feature number must not be empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("feature number must be an integer, got %q", s)
		}
	}
	run := strings.TrimLeft(s, "0")
	if run == "" {
		run = "0"
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return 0, fmt.Errorf("feature number must be between %d and %d, got %q", MinNumber, MaxNumber, s)
	}
	if err := ValidateNumber(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateNumber checks that n is a usable feature number.
func ValidateNumber(n int) error {
	if n < MinNumber || n > MaxNumber {
		return fmt.Errorf("feature number must be between %d and %d, got %d", MinNumber, MaxNumber, n)
	}
	return nil
}

// FormatNumber renders n in the zero-padded three-digit form used in branch
// names and directory prefixes.
func FormatNumber(n int) string {
	return fmt.Sprintf("%03d", n)
}

// ExistingNames returns the names of the immediate subdirectories of
// specsRoot. A missing specs root is not an error; numbering then starts
// at 001.
func ExistingNames(specsRoot string) ([]string, error) {
	entries, err := os.ReadDir(specsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading specs root %s: %w", specsRoot, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
