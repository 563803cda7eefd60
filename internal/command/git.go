package command

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=git.go -destination=git_mock.go -package=command

// GitRunner abstracts git command execution
type GitRunner interface {
	// IsInsideWorkTree reports whether dir is inside a git working tree
	IsInsideWorkTree(ctx context.Context, dir string) (bool, error)
	// HooksPath returns the absolute hooks directory of the repository containing dir
	HooksPath(ctx context.Context, dir string) (string, error)
	// RepoRoot returns the top-level directory of the repository containing dir
	RepoRoot(ctx context.Context, dir string) (string, error)
	// GlobalHooksPath returns the global core.hooksPath, or "" when unset
	GlobalHooksPath(ctx context.Context) (string, error)
	// SetGlobalHooksPath writes core.hooksPath into the global git config
	SetGlobalHooksPath(ctx context.Context, path string) error
}

type gitRunner struct {
	runner Runner
}

// NewGitRunner creates a new GitRunner instance
func NewGitRunner(runner Runner) GitRunner {
	return &gitRunner{
		runner: runner,
	}
}

// IsInsideWorkTree reports whether dir is inside a git working tree.
// A failing git invocation means dir is not inside a repository.
func (g *gitRunner) IsInsideWorkTree(ctx context.Context, dir string) (bool, error) {
	stdout, _, err := g.runner.RunInDir(ctx, dir, "git", "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return false, nil
	}

	return strings.TrimSpace(stdout) == "true", nil
}

// HooksPath returns the absolute hooks directory of the repository containing dir.
// Respects a repo-local core.hooksPath setting.
func (g *gitRunner) HooksPath(ctx context.Context, dir string) (string, error) {
	stdout, stderr, err := g.runner.RunInDir(ctx, dir, "git", "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("failed to get hooks path: %w (stderr: %s)", err, stderr)
	}

	path := filepath.Clean(strings.TrimSpace(stdout))
	if filepath.IsAbs(path) {
		return path, nil
	}

	// git prints the path relative to dir
	if dir != "" {
		return filepath.Join(dir, path), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve hooks path %s: %w", path, err)
	}
	return abs, nil
}

// RepoRoot returns the top-level directory of the repository containing dir
func (g *gitRunner) RepoRoot(ctx context.Context, dir string) (string, error) {
	stdout, stderr, err := g.runner.RunInDir(ctx, dir, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to get repository root: %w (stderr: %s)", err, stderr)
	}

	return strings.TrimSpace(stdout), nil
}

// GlobalHooksPath returns the global core.hooksPath, or "" when unset.
// The --path flag makes git expand a leading ~ in the configured value.
func (g *gitRunner) GlobalHooksPath(ctx context.Context) (string, error) {
	stdout, _, err := g.runner.Run(ctx, "git", "config", "--global", "--path", "core.hooksPath")
	if err != nil {
		// git config exits non-zero when the key is unset
		return "", nil
	}

	return strings.TrimSpace(stdout), nil
}

// SetGlobalHooksPath writes core.hooksPath into the global git config
func (g *gitRunner) SetGlobalHooksPath(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("hooks path cannot be empty")
	}

	_, stderr, err := g.runner.Run(ctx, "git", "config", "--global", "core.hooksPath", path)
	if err != nil {
		return fmt.Errorf("failed to set global core.hooksPath: %w (stderr: %s)", err, stderr)
	}

	return nil
}
