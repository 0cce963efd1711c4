package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/aidot/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePackConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aidot.toml"), []byte(content), 0644))
}

func TestLoadDefaultsOnly(t *testing.T) {
	root := t.TempDir()

	cfg, err := config.Load(root)
	require.NoError(t, err)

	assert.False(t, cfg.Agent.Enable)
	assert.Empty(t, cfg.Agent.ExtraPermissions)
	assert.True(t, cfg.Notify.Enable)
	assert.Equal(t, "skills", cfg.Library.SkillsDir)
	assert.Equal(t, "commands", cfg.Library.CommandsDir)
	assert.Equal(t, "agents", cfg.Library.AgentsDir)
	assert.Contains(t, cfg.Library.Ignore, "**/.git/**")
}

func TestLoadPackOverrides(t *testing.T) {
	root := t.TempDir()
	writePackConfig(t, root, `
[agent]
enable = true
extra_permissions = ["Edit", "Write"]

[notify]
enable = false

[[wrappers]]
name = "claude-lab"
tool = "claude"
args = ["--plugin-dir", "~/lab/plugins"]

[wrappers.env]
CLAUDE_CONFIG_DIR = "~/.claude-lab"
`)

	cfg, err := config.Load(root)
	require.NoError(t, err)

	assert.True(t, cfg.Agent.Enable)
	assert.Equal(t, []string{"Edit", "Write"}, cfg.Agent.ExtraPermissions)
	assert.False(t, cfg.Notify.Enable)

	require.Len(t, cfg.Wrappers, 1)
	assert.Equal(t, "claude-lab", cfg.Wrappers[0].Name)
	assert.Equal(t, "claude", cfg.Wrappers[0].Tool)
	assert.Equal(t, []string{"--plugin-dir", "~/lab/plugins"}, cfg.Wrappers[0].Args)
	assert.Equal(t, "~/.claude-lab", cfg.Wrappers[0].Env["CLAUDE_CONFIG_DIR"])
}

func TestLoadHiddenConfigName(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".aidot.toml"),
		[]byte("[agent]\nenable = true\n"), 0644))

	cfg, err := config.Load(root)
	require.NoError(t, err)
	assert.True(t, cfg.Agent.Enable)
}

func TestLoadMalformedConfig(t *testing.T) {
	root := t.TempDir()
	writePackConfig(t, root, "[agent\nenable =")

	_, err := config.Load(root)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	root := t.TempDir()
	writePackConfig(t, root, "[agent]\nenabled = true\n")

	_, err := config.Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pack config")
}

func TestGenerateConfigContent(t *testing.T) {
	content := config.GenerateConfigContent()

	// Section headers stay, values are commented out
	assert.Contains(t, content, "[agent]")
	assert.Contains(t, content, "# enable = false")
	assert.NotContains(t, strings.Split(content, "\n"), "enable = false")
}
