package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectState(t *testing.T) {
	tests := []struct {
		name    string
		content string
		exists  bool
		want    State
	}{
		{
			name:   "missing file is absent",
			exists: false,
			want:   StateAbsent,
		},
		{
			name:    "user-authored hook is foreign",
			content: "#!/bin/sh\nexec lint-staged\n",
			exists:  true,
			want:    StateForeign,
		},
		{
			name:    "generated hook is owned",
			content: preCommitScript(),
			exists:  true,
			want:    StateOwned,
		},
		{
			name:    "marker anywhere in the file counts as owned",
			content: "#!/bin/sh\nset -eu\n" + Marker + "\n",
			exists:  true,
			want:    StateOwned,
		},
		{
			name:    "empty file is foreign",
			content: "",
			exists:  true,
			want:    StateForeign,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), HookName)
			if tt.exists {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o755))
			}

			got, err := DetectState(path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectState_UnreadableFile(t *testing.T) {
	// A directory in place of the hook file surfaces the read error
	dir := t.TempDir()
	path := filepath.Join(dir, HookName)
	require.NoError(t, os.Mkdir(path, 0o755))

	_, err := DetectState(path)

	assert.Error(t, err)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "absent", StateAbsent.String())
	assert.Equal(t, "foreign", StateForeign.String())
	assert.Equal(t, "owned", StateOwned.String())
	assert.Equal(t, "unknown(42)", State(42).String())
}
