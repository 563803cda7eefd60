package hook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/kingfisher-tools/hooks/internal/command"
)

const lockFileName = ".kingfisher-hooks.lock"

// Options controls which hooks directory an operation targets.
type Options struct {
	// Global targets the global core.hooksPath directory instead of the repo's.
	Global bool
	// HooksPath overrides the repo hooks directory. Ignored with Global.
	HooksPath string
}

// Installer installs, removes, and inspects the scanner pre-commit hook.
type Installer struct {
	runner command.Runner
	git    command.GitRunner
	out    io.Writer
	errOut io.Writer
}

// NewInstaller creates a new Installer writing reports to out and warnings to errOut.
func NewInstaller(runner command.Runner, git command.GitRunner, out, errOut io.Writer) *Installer {
	return &Installer{
		runner: runner,
		git:    git,
		out:    out,
		errOut: errOut,
	}
}

// Install writes the scanner wrapper and the pre-commit entry point into the
// resolved hooks directory, preserving any foreign hook under the legacy name.
func (i *Installer) Install(ctx context.Context, opts Options) error {
	dir, err := i.resolveHooksDir(ctx, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, execPermission); err != nil {
		return fmt.Errorf("failed to create hooks directory %s: %w", dir, err)
	}

	unlock, err := i.lock(dir)
	if err != nil {
		return err
	}
	defer unlock()

	wrapperPath := filepath.Join(dir, WrapperName)
	if err := os.WriteFile(wrapperPath, []byte(wrapperScript()), execPermission); err != nil {
		return fmt.Errorf("failed to write scanner wrapper: %w", err)
	}

	hookPath := filepath.Join(dir, HookName)
	legacyPath := filepath.Join(dir, LegacyHookName)

	state, err := DetectState(hookPath)
	if err != nil {
		return err
	}
	// An owned hook is a reinstall: never back it up over a previous legacy copy.
	if state == StateForeign {
		if err := os.Rename(hookPath, legacyPath); err != nil {
			return fmt.Errorf("failed to preserve existing pre-commit hook: %w", err)
		}
		if err := os.Chmod(legacyPath, execPermission); err != nil {
			return fmt.Errorf("failed to mark legacy hook executable: %w", err)
		}
		fmt.Fprintf(i.out, "Preserved existing pre-commit hook as %s\n", LegacyHookName)
	}

	if err := os.WriteFile(hookPath, []byte(preCommitScript()), execPermission); err != nil {
		return fmt.Errorf("failed to write pre-commit hook: %w", err)
	}

	fmt.Fprintf(i.out, "Installed pre-commit hook in %s\n", dir)
	if exists(legacyPath) {
		fmt.Fprintf(i.out, "The preserved hook %s will run before the scanner\n", LegacyHookName)
	}
	return nil
}

// Uninstall removes the installed hooks and restores any preserved legacy
// hook. It is idempotent: a hooks directory with nothing installed is a no-op.
func (i *Installer) Uninstall(ctx context.Context, opts Options) error {
	dir, err := i.resolveHooksDir(ctx, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, execPermission); err != nil {
		return fmt.Errorf("failed to create hooks directory %s: %w", dir, err)
	}

	unlock, err := i.lock(dir)
	if err != nil {
		return err
	}
	defer unlock()

	hookPath := filepath.Join(dir, HookName)
	legacyPath := filepath.Join(dir, LegacyHookName)

	state, err := DetectState(hookPath)
	if err != nil {
		return err
	}
	if state == StateOwned {
		if exists(legacyPath) {
			if err := os.Rename(legacyPath, hookPath); err != nil {
				return fmt.Errorf("failed to restore previous pre-commit hook: %w", err)
			}
			if err := os.Chmod(hookPath, execPermission); err != nil {
				return fmt.Errorf("failed to mark restored hook executable: %w", err)
			}
			fmt.Fprintf(i.out, "Restored previous pre-commit hook\n")
		} else {
			if err := os.Remove(hookPath); err != nil {
				return fmt.Errorf("failed to remove pre-commit hook: %w", err)
			}
			fmt.Fprintf(i.out, "Removed pre-commit hook\n")
		}
	}

	for _, name := range []string{WrapperName, LegacyHookName} {
		if err := removeIfExists(filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	fmt.Fprintf(i.out, "Uninstalled kingfisher hooks from %s\n", dir)
	return nil
}

// lock takes a non-blocking advisory lock guarding concurrent installer runs
// against the same hooks directory. The returned func releases the lock and
// removes the lock file.
func (i *Installer) lock(dir string) (func(), error) {
	path := filepath.Join(dir, lockFileName)
	fileLock := flock.New(path)

	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire hooks lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another kingfisher-hooks run holds the lock for %s", dir)
	}

	return func() {
		_ = fileLock.Unlock()
		_ = os.Remove(path)
	}, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
