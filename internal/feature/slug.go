// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feature

import (
	"regexp"
	"strings"
)

// maxSlugWords caps how many hyphen-delimited words survive into the slug.
const maxSlugWords = 3

// nonAlphanumeric matches runs of characters that cannot appear in a slug.
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// featureBranchPattern matches feature branch names: NNN-slug.
var featureBranchPattern = regexp.MustCompile(`^\d{3}-[a-z0-9]+(-[a-z0-9]+)*$`)

// Slugify normalizes a description into a short branch-safe slug: lowercase,
// non-alphanumeric runs collapsed to single hyphens, leading and trailing
// hyphens trimmed, truncated to the first three words.
func Slugify(description string) string {
	s := strings.ToLower(description)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return ""
	}
	words := strings.Split(s, "-")
	if len(words) > maxSlugWords {
		words = words[:maxSlugWords]
	}
	return strings.Join(words, "-")
}

// BranchName combines a feature number and a description slug.
func BranchName(num int, description string) string {
	return FormatNumber(num) + "-" + Slugify(description)
}

// IsFeatureBranch reports whether branch names a feature workspace.
func IsFeatureBranch(branch string) bool {
	return featureBranchPattern.MatchString(branch)
}
