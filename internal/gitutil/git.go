// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gitutil provides version-control operations for the feature
// workflow via the git CLI.
//
// All operations shell out to git rather than linking a Go git library so
// that user configuration (SSH keys, credential helpers, aliases) keeps
// working. None provides the degraded behavior for directories that are
// not under version control.
package gitutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoRepo indicates an operation that needs a version-control repository
// ran outside one.
var ErrNoRepo = errors.New("not inside a git repository")

// VCS is the capability surface the feature workflow needs from version
// control.
type VCS interface {
	// Available reports whether dir is inside a working repository.
	Available(ctx context.Context, dir string) bool

	// DiscoverRoot returns the repository root for dir.
	DiscoverRoot(ctx context.Context, dir string) (string, error)

	// CreateBranch creates and switches to a new branch at root.
	CreateBranch(ctx context.Context, root, name string) error

	// CurrentBranch returns the checked-out branch name at root.
	CurrentBranch(ctx context.Context, root string) (string, error)
}

// Git implements VCS by invoking the git binary.
type Git struct{}

// Available reports whether the git binary exists and dir is inside a
// work tree.
func (Git) Available(ctx context.Context, dir string) bool {
	if _, err := exec.LookPath("git"); err != nil {
		return false
	}
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	return cmd.Run() == nil
}

// DiscoverRoot returns the top-level directory of the repository
// containing dir.
func (Git) DiscoverRoot(ctx context.Context, dir string) (string, error) {
	out, err := gitOutput(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("discovering repository root: %w", err)
	}
	return out, nil
}

// CreateBranch creates and switches to a new branch named name.
func (Git) CreateBranch(ctx context.Context, root, name string) error {
	if _, err := gitOutput(ctx, root, "checkout", "-b", name); err != nil {
		return err
	}
	return nil
}

// CurrentBranch returns the name of the checked-out branch.
func (Git) CurrentBranch(ctx context.Context, root string) (string, error) {
	out, err := gitOutput(ctx, root, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("reading current branch: %w", err)
	}
	return out, nil
}

// gitOutput runs git -C dir args... and returns trimmed stdout. Stderr is
// folded into the error on failure.
func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", dir}, args...)...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %s", args[0], msg)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

// markerDirs identify a project root when git discovery is unavailable.
var markerDirs = []string{".specify", "templates", "specs"}

// None implements VCS for projects without version control. Root discovery
// walks up from dir looking for a project marker directory and falls back
// to dir itself; branch operations report ErrNoRepo.
type None struct{}

// Available always reports false.
func (None) Available(ctx context.Context, dir string) bool { return false }

// DiscoverRoot walks up from dir until it finds a marker directory.
func (None) DiscoverRoot(ctx context.Context, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	for cur := abs; ; cur = filepath.Dir(cur) {
		for _, marker := range markerDirs {
			if info, err := os.Stat(filepath.Join(cur, marker)); err == nil && info.IsDir() {
				return cur, nil
			}
		}
		if filepath.Dir(cur) == cur {
			return abs, nil
		}
	}
}

// CreateBranch reports ErrNoRepo.
func (None) CreateBranch(ctx context.Context, root, name string) error { return ErrNoRepo }

// CurrentBranch reports ErrNoRepo.
func (None) CurrentBranch(ctx context.Context, root string) (string, error) {
	return "", ErrNoRepo
}

// Detect returns Git when dir is inside a repository and None otherwise.
func Detect(ctx context.Context, dir string) VCS {
	g := Git{}
	if g.Available(ctx, dir) {
		return g
	}
	return None{}
}
