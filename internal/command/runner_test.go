package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	runner := NewRunner()

	stdout, stderr, err := runner.Run(context.Background(), "echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello", stdout)
	assert.Empty(t, stderr)
}

func TestRunner_RunInDir(t *testing.T) {
	runner := NewRunner()
	dir := t.TempDir()

	stdout, _, err := runner.RunInDir(context.Background(), dir, "pwd")

	require.NoError(t, err)
	// pwd may resolve symlinks on some platforms, so compare suffixes only
	assert.Contains(t, stdout, "/")
}

func TestRunner_Run_CommandFailure(t *testing.T) {
	runner := NewRunner()

	_, _, err := runner.Run(context.Background(), "false")

	assert.Error(t, err)
}

func TestRunner_LookPath(t *testing.T) {
	runner := NewRunner()

	path, err := runner.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = runner.LookPath("definitely-not-a-real-binary-name")
	assert.Error(t, err)
}
