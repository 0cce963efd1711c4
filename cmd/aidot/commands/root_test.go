package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPack(t *testing.T) (packRoot, home string) {
	t.Helper()

	home = t.TempDir()
	packRoot = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AIDOT_ROOT", packRoot)

	config := "[agent]\nenable = true\n"
	require.NoError(t, os.WriteFile(filepath.Join(packRoot, "aidot.toml"), []byte(config), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(packRoot, "commands"), 0755))

	return packRoot, home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmdRequiresSubcommand(t *testing.T) {
	setupTestPack(t)

	_, err := execute(t)
	assert.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	setupTestPack(t)

	out, err := execute(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, `"permissions"`)
	assert.Contains(t, out, `"attribution"`)
}

func TestUpCmdDryRun(t *testing.T) {
	_, home := setupTestPack(t)

	out, err := execute(t, "up", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "DRY RUN")

	_, statErr := os.Stat(filepath.Join(home, ".claude"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpCmd(t *testing.T) {
	_, home := setupTestPack(t)

	_, err := execute(t, "up")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(home, ".claude", "settings.json"))
	assert.NoError(t, statErr)
}

func TestStatusCmd(t *testing.T) {
	setupTestPack(t)

	out, err := execute(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "settings.json")
}

func TestSkillsListCmdEmptyLibrary(t *testing.T) {
	setupTestPack(t)

	out, err := execute(t, "skills", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No skills found")
}

func TestGenConfigCmd(t *testing.T) {
	setupTestPack(t)

	out, err := execute(t, "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "[agent]")
	assert.Contains(t, out, "extra_permissions")
}

func TestNotifyCmdAlwaysSucceeds(t *testing.T) {
	setupTestPack(t)

	_, err := execute(t, "notify", "completion")
	assert.NoError(t, err)

	// Unknown event kinds are rejected by argument validation
	_, err = execute(t, "notify", "reboot")
	assert.Error(t, err)
}
