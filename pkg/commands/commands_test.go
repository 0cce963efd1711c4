package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupPack builds a minimal agent pack and sandboxes HOME so
// activations cannot escape the test.
func setupPack(t *testing.T, configContent string) (packRoot, home string) {
	t.Helper()

	home = t.TempDir()
	packRoot = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AIDOT_ROOT", packRoot)

	require.NoError(t, os.WriteFile(filepath.Join(packRoot, "aidot.toml"), []byte(configContent), 0644))

	skillDir := filepath.Join(packRoot, "skills", "go-htmx")
	require.NoError(t, os.MkdirAll(skillDir, 0755))
	manifest := "---\nname: go-htmx\ndescription: Server-rendered web apps\n---\n\n# go-htmx\n\nContent.\n"
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(manifest), 0644))

	commandsDir := filepath.Join(packRoot, "commands")
	require.NoError(t, os.MkdirAll(commandsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(commandsDir, "review.md"), []byte("# review\n"), 0644))

	return packRoot, home
}

const enabledConfig = `
[agent]
enable = true
extra_permissions = ["Edit", "Write"]
`

func TestRenderProducesSettings(t *testing.T) {
	setupPack(t, enabledConfig)

	data, err := Render(RenderOptions{})
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	perms := doc["permissions"].(map[string]interface{})["allow"].([]interface{})
	assert.Contains(t, perms, "Read")
	assert.Equal(t, "Edit", perms[len(perms)-2])
	assert.Equal(t, "Write", perms[len(perms)-1])
}

func TestRenderIsDeterministic(t *testing.T) {
	setupPack(t, enabledConfig)

	first, err := Render(RenderOptions{})
	require.NoError(t, err)
	second, err := Render(RenderOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUpDisabledProjectsNothing(t *testing.T) {
	_, home := setupPack(t, "[agent]\nenable = false\n")

	mapping, err := Up(UpOptions{})
	require.NoError(t, err)
	assert.Empty(t, mapping)

	_, statErr := os.Stat(filepath.Join(home, ".claude"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpDryRunWritesNothing(t *testing.T) {
	_, home := setupPack(t, enabledConfig)

	mapping, err := Up(UpOptions{DryRun: true})
	require.NoError(t, err)
	assert.NotEmpty(t, mapping)

	_, statErr := os.Stat(filepath.Join(home, ".claude"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpActivates(t *testing.T) {
	_, home := setupPack(t, enabledConfig)

	mapping, err := Up(UpOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, mapping)

	data, err := os.ReadFile(filepath.Join(home, ".claude", "settings.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"allow"`)

	link, err := os.Readlink(filepath.Join(home, ".claude", "commands"))
	require.NoError(t, err)
	assert.Contains(t, link, "commands")

	_, err = os.Lstat(filepath.Join(home, ".claude", "skills", "go-htmx"))
	require.NoError(t, err)
}

func TestUpIsRerunnable(t *testing.T) {
	setupPack(t, enabledConfig)

	_, err := Up(UpOptions{})
	require.NoError(t, err)
	_, err = Up(UpOptions{})
	require.NoError(t, err)
}

func TestStatusTracksActivation(t *testing.T) {
	setupPack(t, enabledConfig)

	entries, err := Status(StatusOptions{})
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, entry := range entries {
		assert.Equal(t, status.StateMissing, entry.State)
	}

	_, err = Up(UpOptions{})
	require.NoError(t, err)

	entries, err = Status(StatusOptions{})
	require.NoError(t, err)
	for _, entry := range entries {
		assert.Equal(t, status.StateOK, entry.State, entry.Destination)
	}
}

func TestListSkills(t *testing.T) {
	setupPack(t, enabledConfig)

	skills, err := ListSkills(SkillsOptions{})
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "go-htmx", skills[0].Name)
	assert.Equal(t, "Server-rendered web apps", skills[0].Description)
}

func TestShowSkill(t *testing.T) {
	setupPack(t, enabledConfig)

	content, err := ShowSkill(SkillsOptions{}, "go-htmx")
	require.NoError(t, err)
	assert.Contains(t, content, "# go-htmx")

	_, err = ShowSkill(SkillsOptions{}, "no-such-skill")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSkillInvalid))
}

func TestGenConfigPrint(t *testing.T) {
	setupPack(t, enabledConfig)

	result, err := GenConfig(GenConfigOptions{})
	require.NoError(t, err)
	assert.Contains(t, result.ConfigContent, "[agent]")
	assert.Empty(t, result.WrittenPath)
}

func TestGenConfigWrite(t *testing.T) {
	home := t.TempDir()
	packRoot := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AIDOT_ROOT", packRoot)

	result, err := GenConfig(GenConfigOptions{Write: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(packRoot, "aidot.toml"), result.WrittenPath)

	// Never overwrite an existing config
	_, err = GenConfig(GenConfigOptions{Write: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestGenConfigWriteRefusesHiddenConfig(t *testing.T) {
	home := t.TempDir()
	packRoot := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AIDOT_ROOT", packRoot)

	// A .aidot.toml counts as the pack config too; writing aidot.toml
	// next to it would silently shadow it
	require.NoError(t, os.WriteFile(filepath.Join(packRoot, ".aidot.toml"),
		[]byte("[agent]\nenable = true\n"), 0644))

	_, err := GenConfig(GenConfigOptions{Write: true})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	assert.Contains(t, err.Error(), ".aidot.toml")

	_, statErr := os.Stat(filepath.Join(packRoot, "aidot.toml"))
	assert.True(t, os.IsNotExist(statErr))
}
