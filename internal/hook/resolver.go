package hook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// defaultGlobalDirName is created under the user's home when no global
// core.hooksPath is configured.
const defaultGlobalDirName = ".git-hooks"

// resolveHooksDir picks the hooks directory an operation targets.
//
// Global mode follows (and, when unset, writes) the global core.hooksPath.
// Repo mode honors an explicit override, asks git inside a work tree, and
// falls back to <cwd>/.git/hooks with a warning outside one.
func (i *Installer) resolveHooksDir(ctx context.Context, opts Options) (string, error) {
	if opts.Global {
		path, err := i.git.GlobalHooksPath(ctx)
		if err != nil {
			return "", err
		}
		if path != "" {
			return path, nil
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, defaultGlobalDirName)
		if err := i.git.SetGlobalHooksPath(ctx, path); err != nil {
			return "", err
		}
		fmt.Fprintf(i.out, "Set global core.hooksPath to %s\n", path)
		return path, nil
	}

	if opts.HooksPath != "" {
		return opts.HooksPath, nil
	}

	inside, err := i.git.IsInsideWorkTree(ctx, "")
	if err != nil {
		return "", err
	}
	if inside {
		return i.git.HooksPath(ctx, "")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	fallback := filepath.Join(cwd, ".git", "hooks")
	fmt.Fprintf(i.errOut, "warning: not inside a git repository, using %s\n", fallback)
	return fallback, nil
}
