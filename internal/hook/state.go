package hook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Marker is the sentinel comment embedded in generated pre-commit hooks.
// It is the on-disk format used to tell our hooks apart from user-authored ones.
const Marker = "# kingfisher-hooks managed hook"

// State classifies the pre-commit file found in a hooks directory.
type State int

const (
	// StateAbsent means no pre-commit hook exists.
	StateAbsent State = iota
	// StateForeign means a pre-commit hook exists that we did not generate.
	StateForeign
	// StateOwned means the pre-commit hook carries our ownership marker.
	StateOwned
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateForeign:
		return "foreign"
	case StateOwned:
		return "owned"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// DetectState reads the pre-commit file at path and classifies it.
// A missing file is StateAbsent, not an error.
func DetectState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return StateAbsent, nil
	}
	if err != nil {
		return StateAbsent, fmt.Errorf("failed to read hook %s: %w", path, err)
	}

	if strings.Contains(string(data), Marker) {
		return StateOwned, nil
	}
	return StateForeign, nil
}
