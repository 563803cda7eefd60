package hook

import "github.com/kingfisher-tools/hooks/internal/command"

// DetectRuntime reports the container runtime the wrapper script would pick
// right now: podman when found on PATH, otherwise the docker fallback path.
func DetectRuntime(runner command.Runner) string {
	if _, err := runner.LookPath(podmanBinary); err == nil {
		return podmanBinary
	}
	return dockerPath
}
