package library_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/aidot/pkg/config"
	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/filesystem"
	"github.com/arthur-debert/aidot/pkg/library"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLibraryConfig() config.LibraryConfig {
	return config.LibraryConfig{
		SkillsDir:   "skills",
		CommandsDir: "commands",
		AgentsDir:   "agents",
		Ignore:      []string{"**/.git/**", "**/.DS_Store"},
	}
}

func writeSkill(t *testing.T, root, dir, frontmatter string) {
	t.Helper()
	skillDir := filepath.Join(root, "skills", dir)
	require.NoError(t, os.MkdirAll(skillDir, 0755))
	body := frontmatter + "\n# Skill\n\nSome reference material.\n"
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"), []byte(body), 0644))
}

func TestLoadSkills(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "go-htmx", "---\nname: go-htmx\ndescription: Go and HTMX conventions\n---")
	writeSkill(t, root, "zz-unnamed", "")

	lib, err := library.Load(filesystem.NewOS(), root, defaultLibraryConfig())
	require.NoError(t, err)

	require.Len(t, lib.Skills, 2)
	// Sorted by name
	assert.Equal(t, "go-htmx", lib.Skills[0].Name)
	assert.Equal(t, "Go and HTMX conventions", lib.Skills[0].Description)
	// No frontmatter falls back to the directory name
	assert.Equal(t, "zz-unnamed", lib.Skills[1].Name)
	assert.Empty(t, lib.Skills[1].Description)
}

func TestLoadSkipsNonSkillDirs(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "real", "---\nname: real\n---")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "skills", "no-manifest"), 0755))

	lib, err := library.Load(filesystem.NewOS(), root, defaultLibraryConfig())
	require.NoError(t, err)

	require.Len(t, lib.Skills, 1)
	assert.Equal(t, "real", lib.Skills[0].Name)
}

func TestLoadIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "kept", "---\nname: kept\n---")
	writeSkill(t, root, ".git", "---\nname: hidden\n---")

	lib, err := library.Load(filesystem.NewOS(), root, defaultLibraryConfig())
	require.NoError(t, err)

	require.Len(t, lib.Skills, 1)
	assert.Equal(t, "kept", lib.Skills[0].Name)
}

func TestLoadVendoredTree(t *testing.T) {
	root := t.TempDir()
	vendorRoot := filepath.Join(root, "vendor", "superpowers")
	skillDir := filepath.Join(vendorRoot, "tdd")
	require.NoError(t, os.MkdirAll(skillDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(skillDir, "SKILL.md"),
		[]byte("---\nname: tdd\ndescription: Test driven development\n---\n"), 0644))

	cfg := defaultLibraryConfig()
	cfg.Vendor = []string{"vendor/superpowers"}

	lib, err := library.Load(filesystem.NewOS(), root, cfg)
	require.NoError(t, err)

	require.Len(t, lib.Skills, 1)
	assert.Equal(t, "tdd", lib.Skills[0].Name)
	assert.True(t, lib.Skills[0].Vendored)
}

func TestLoadMissingVendoredTreeIsFatal(t *testing.T) {
	root := t.TempDir()
	cfg := defaultLibraryConfig()
	cfg.Vendor = []string{"vendor/not-there"}

	_, err := library.Load(filesystem.NewOS(), root, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrVendorTree))
}

func TestLoadCommandsAndAgents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "commands"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "commands", "review.md"), []byte("# /review\n"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "agents"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "agents", "reviewer.md"), []byte("# reviewer\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "agents", "notes.txt"), []byte("not an agent"), 0644))

	lib, err := library.Load(filesystem.NewOS(), root, defaultLibraryConfig())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "commands"), lib.CommandsDir)
	require.Len(t, lib.AgentFiles, 1)
	assert.Equal(t, filepath.Join(root, "agents", "reviewer.md"), lib.AgentFiles[0])
}

func TestLoadEmptyPack(t *testing.T) {
	root := t.TempDir()

	lib, err := library.Load(filesystem.NewOS(), root, defaultLibraryConfig())
	require.NoError(t, err)

	assert.Empty(t, lib.Skills)
	assert.Empty(t, lib.CommandsDir)
	assert.Empty(t, lib.AgentFiles)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "go-htmx", "---\nname: go-htmx\n---")

	lib, err := library.Load(filesystem.NewOS(), root, defaultLibraryConfig())
	require.NoError(t, err)

	assert.NotNil(t, lib.Find("go-htmx"))
	assert.Nil(t, lib.Find("missing"))
}

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    library.Manifest
		wantErr bool
	}{
		{
			name:  "full frontmatter",
			input: "---\nname: x\ndescription: y\n---\nbody",
			want:  library.Manifest{Name: "x", Description: "y"},
		},
		{
			name:  "no frontmatter",
			input: "# just markdown\n",
			want:  library.Manifest{},
		},
		{
			name:    "unterminated frontmatter",
			input:   "---\nname: x\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			input:   "---\nname: [unclosed\n---\n",
			wantErr: true,
		},
		{
			name:  "byte order mark before frontmatter",
			input: "\uFEFF---\nname: x\ndescription: y\n---\nbody",
			want:  library.Manifest{Name: "x", Description: "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := library.ParseManifest([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
