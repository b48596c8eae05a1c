package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	t.Chdir(dir)
	return dir
}

func TestCheckRepository(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.False(t, CheckRepository())

	initRepo(t)
	assert.True(t, CheckRepository())
}

func TestInstallAndUninstallHook(t *testing.T) {
	dir := initRepo(t)

	path, err := InstallHook()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".git", "hooks", "commit-msg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), hookMarker)
	assert.Contains(t, string(data), `translate --hook "$1"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "hook must be executable")

	_, err = UninstallHook()
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestInstallHookIsIdempotent(t *testing.T) {
	initRepo(t)
	_, err := InstallHook()
	require.NoError(t, err)
	_, err = InstallHook()
	assert.NoError(t, err, "reinstalling over our own hook is allowed")
}

func TestInstallHookRefusesForeignHook(t *testing.T) {
	dir := initRepo(t)
	hooks := filepath.Join(dir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooks, 0o755))
	foreign := filepath.Join(hooks, "commit-msg")
	require.NoError(t, os.WriteFile(foreign, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	_, err := InstallHook()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(foreign)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nexit 0\n", string(data), "foreign hook left untouched")
}

func TestUninstallHookRefusesForeignHook(t *testing.T) {
	dir := initRepo(t)
	hooks := filepath.Join(dir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooks, 0o755))
	foreign := filepath.Join(hooks, "commit-msg")
	require.NoError(t, os.WriteFile(foreign, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	_, err := UninstallHook()
	require.Error(t, err)
	_, statErr := os.Stat(foreign)
	assert.NoError(t, statErr)
}

func TestUninstallHookMissingIsNoop(t *testing.T) {
	initRepo(t)
	_, err := UninstallHook()
	assert.NoError(t, err)
}
