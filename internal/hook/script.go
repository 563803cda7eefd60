package hook

import "fmt"

// File names managed inside the resolved hooks directory.
const (
	// HookName is the entry point git executes before a commit.
	HookName = "pre-commit"
	// LegacyHookName preserves a user's pre-existing pre-commit hook.
	LegacyHookName = "pre-commit.legacy.kingfisher"
	// WrapperName is the script that launches the containerized scanner.
	WrapperName = "kingfisher-pre-commit"
)

const (
	scannerImage   = "ghcr.io/mongodb/kingfisher:latest"
	dockerPath     = "/usr/bin/docker"
	podmanBinary   = "podman"
	execPermission = 0o755
)

// wrapperScript returns the shell script that runs the scanner container.
// The runtime is probed at hook-execution time so an install does not bake
// in whichever runtime happened to be present at install time.
func wrapperScript() string {
	return fmt.Sprintf(`#!/bin/sh
set -eu

if command -v %[1]s >/dev/null 2>&1; then
    RUNTIME=%[1]s
else
    RUNTIME=%[2]s
fi

cd "$(git rev-parse --show-toplevel)"
exec "$RUNTIME" run --rm -v "$PWD":/src %[3]s scan /src --staged --no-update-check
`, podmanBinary, dockerPath, scannerImage)
}

// preCommitScript returns the entry-point hook. The marker is the first
// content line after the shebang so DetectState finds it on re-runs. A
// preserved legacy hook runs first; the scanner wrapper always runs.
func preCommitScript() string {
	return fmt.Sprintf(`#!/bin/sh
%[1]s
set -eu

hook_dir="$(cd "$(dirname "$0")" && pwd)"

if [ -x "$hook_dir/%[2]s" ]; then
    "$hook_dir/%[2]s" "$@"
fi

exec "$hook_dir/%[3]s" "$@"
`, Marker, LegacyHookName, WrapperName)
}
