package hook

import (
	"context"
	"path/filepath"
)

// StatusReport describes what is installed in a hooks directory.
type StatusReport struct {
	// HooksDir is the resolved hooks directory that was inspected.
	HooksDir string
	// State classifies the pre-commit entry point found there.
	State State
	// LegacyPresent reports whether a preserved prior hook is chained in.
	LegacyPresent bool
	// WrapperPresent reports whether the scanner wrapper script exists.
	WrapperPresent bool
	// Runtime is the container runtime the wrapper would select right now.
	Runtime string
}

// Status inspects the resolved hooks directory without modifying it.
func (i *Installer) Status(ctx context.Context, opts Options) (*StatusReport, error) {
	dir, err := i.resolveHooksDir(ctx, opts)
	if err != nil {
		return nil, err
	}

	state, err := DetectState(filepath.Join(dir, HookName))
	if err != nil {
		return nil, err
	}

	return &StatusReport{
		HooksDir:       dir,
		State:          state,
		LegacyPresent:  exists(filepath.Join(dir, LegacyHookName)),
		WrapperPresent: exists(filepath.Join(dir, WrapperName)),
		Runtime:        DetectRuntime(i.runner),
	}, nil
}
