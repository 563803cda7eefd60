package hook

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveHooksDir_ExplicitOverride(t *testing.T) {
	installer, _, _, _, _ := newTestInstaller(t)

	dir, err := installer.resolveHooksDir(context.Background(), Options{HooksPath: "/explicit/hooks"})

	require.NoError(t, err)
	assert.Equal(t, "/explicit/hooks", dir)
}

func TestResolveHooksDir_RepoMode(t *testing.T) {
	installer, _, git, _, _ := newTestInstaller(t)
	git.EXPECT().IsInsideWorkTree(gomock.Any(), "").Return(true, nil)
	git.EXPECT().HooksPath(gomock.Any(), "").Return("/test/repo/.git/hooks", nil)

	dir, err := installer.resolveHooksDir(context.Background(), Options{})

	require.NoError(t, err)
	assert.Equal(t, "/test/repo/.git/hooks", dir)
}

func TestResolveHooksDir_RepoMode_FallbackOutsideRepo(t *testing.T) {
	installer, _, git, _, errOut := newTestInstaller(t)
	git.EXPECT().IsInsideWorkTree(gomock.Any(), "").Return(false, nil)

	dir, err := installer.resolveHooksDir(context.Background(), Options{})

	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".git", "hooks"), dir)
	assert.Contains(t, errOut.String(), "warning: not inside a git repository")
}

func TestResolveHooksDir_Global_Configured(t *testing.T) {
	installer, _, git, _, _ := newTestInstaller(t)
	git.EXPECT().GlobalHooksPath(gomock.Any()).Return("/home/user/.git-hooks", nil)

	dir, err := installer.resolveHooksDir(context.Background(), Options{Global: true})

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.git-hooks", dir)
}

func TestResolveHooksDir_Global_DefaultsAndWritesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	want := filepath.Join(home, defaultGlobalDirName)

	installer, _, git, out, _ := newTestInstaller(t)
	git.EXPECT().GlobalHooksPath(gomock.Any()).Return("", nil)
	git.EXPECT().SetGlobalHooksPath(gomock.Any(), want).Return(nil)

	dir, err := installer.resolveHooksDir(context.Background(), Options{Global: true})

	require.NoError(t, err)
	assert.Equal(t, want, dir)
	assert.Contains(t, out.String(), "Set global core.hooksPath to "+want)
}

func TestResolveHooksDir_Global_IgnoresHooksPathOverride(t *testing.T) {
	installer, _, git, _, _ := newTestInstaller(t)
	git.EXPECT().GlobalHooksPath(gomock.Any()).Return("/home/user/.git-hooks", nil)

	dir, err := installer.resolveHooksDir(context.Background(), Options{Global: true, HooksPath: "/explicit/hooks"})

	require.NoError(t, err)
	assert.Equal(t, "/home/user/.git-hooks", dir)
}
