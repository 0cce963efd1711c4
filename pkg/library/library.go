// Package library discovers the static documentation trees shipped in an
// agent pack: skill directories (each with a SKILL.md carrying YAML
// frontmatter), slash-command documents, and agent definitions. Vendored
// skill trees declared in the pack config are folded into the same view.
package library

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/aidot/pkg/config"
	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/paths"
	"github.com/arthur-debert/aidot/pkg/types"
)

// SkillManifestName is the manifest file every skill directory must carry
const SkillManifestName = "SKILL.md"

// Skill is one discovered skill directory
type Skill struct {
	// Name comes from the manifest frontmatter, falling back to the
	// directory name
	Name string

	// Description comes from the manifest frontmatter
	Description string

	// Path is the absolute path of the skill directory
	Path string

	// Vendored reports whether the skill came from a vendored tree
	Vendored bool
}

// Manifest is the YAML frontmatter of a SKILL.md
type Manifest struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Library is the discovered view of a pack's documentation trees
type Library struct {
	// Skills in deterministic name order
	Skills []Skill

	// CommandsDir is the absolute path of the slash-command tree, empty
	// when the pack has none
	CommandsDir string

	// AgentFiles are absolute paths of agent-definition documents
	AgentFiles []string
}

// Load discovers the library for a pack root using the resolved config.
// A configured vendored tree that does not exist is a fatal error; the
// pack's own trees are optional.
func Load(fsys types.FS, packRoot string, cfg config.LibraryConfig) (*Library, error) {
	logger := logging.GetLogger("library")
	lib := &Library{}

	skillsRoot := filepath.Join(packRoot, cfg.SkillsDir)
	skills, err := scanSkills(fsys, skillsRoot, cfg.Ignore, false)
	if err != nil {
		return nil, err
	}
	lib.Skills = skills

	for _, vendor := range cfg.Vendor {
		vendorRoot := vendor
		if !filepath.IsAbs(vendorRoot) {
			vendorRoot = filepath.Join(packRoot, vendorRoot)
		}
		vendorRoot = paths.ExpandHome(vendorRoot)

		if _, err := fsys.Stat(vendorRoot); err != nil {
			return nil, errors.Wrapf(err, errors.ErrVendorTree,
				"vendored skill tree not found: %s", vendorRoot)
		}

		vendored, err := scanSkills(fsys, vendorRoot, cfg.Ignore, true)
		if err != nil {
			return nil, err
		}
		lib.Skills = append(lib.Skills, vendored...)
	}

	sort.Slice(lib.Skills, func(i, j int) bool {
		return lib.Skills[i].Name < lib.Skills[j].Name
	})

	commandsDir := filepath.Join(packRoot, cfg.CommandsDir)
	if info, err := fsys.Stat(commandsDir); err == nil && info.IsDir() {
		lib.CommandsDir = commandsDir
	}

	agentsDir := filepath.Join(packRoot, cfg.AgentsDir)
	if entries, err := fsys.ReadDir(agentsDir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			if ignored(entry.Name(), cfg.Ignore) {
				continue
			}
			lib.AgentFiles = append(lib.AgentFiles, filepath.Join(agentsDir, entry.Name()))
		}
	}
	sort.Strings(lib.AgentFiles)

	logger.Debug().
		Int("skills", len(lib.Skills)).
		Int("agents", len(lib.AgentFiles)).
		Bool("commands", lib.CommandsDir != "").
		Msg("Library loaded")

	return lib, nil
}

// Find returns the skill with the given name, or nil
func (l *Library) Find(name string) *Skill {
	for i := range l.Skills {
		if l.Skills[i].Name == name {
			return &l.Skills[i]
		}
	}
	return nil
}

// scanSkills reads the immediate children of root; every directory with a
// SKILL.md is a skill. A missing root is not an error - packs without
// skills are fine.
func scanSkills(fsys types.FS, root string, ignore []string, vendored bool) ([]Skill, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, nil
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() || ignored(entry.Name(), ignore) {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		manifestPath := filepath.Join(dir, SkillManifestName)
		data, err := fsys.ReadFile(manifestPath)
		if err != nil {
			// Directory without a manifest is not a skill
			continue
		}

		manifest, err := ParseManifest(data)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSkillInvalid,
				"invalid manifest in %s", manifestPath)
		}

		name := manifest.Name
		if name == "" {
			name = entry.Name()
		}

		skills = append(skills, Skill{
			Name:        name,
			Description: manifest.Description,
			Path:        dir,
			Vendored:    vendored,
		})
	}

	return skills, nil
}

// ParseManifest extracts the YAML frontmatter from a SKILL.md document.
// A document without frontmatter yields an empty manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest

	content := bytes.TrimLeft(data, "\uFEFF")
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return manifest, nil
	}

	rest := content[len("---\n"):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return manifest, errors.New(errors.ErrSkillInvalid, "unterminated frontmatter")
	}

	if err := yaml.Unmarshal(rest[:end], &manifest); err != nil {
		return manifest, errors.Wrap(err, errors.ErrSkillInvalid, "failed to parse frontmatter")
	}

	return manifest, nil
}

// ignored reports whether name matches any of the doublestar patterns
func ignored(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
		// Patterns like **/.git/** are written against full paths;
		// also try the name as a path segment.
		if ok, err := doublestar.Match(pattern, name+"/"); err == nil && ok {
			return true
		}
	}
	return false
}

// ReadSkillDocument returns the full SKILL.md body for display
func ReadSkillDocument(fsys types.FS, skill *Skill) (string, error) {
	data, err := fsys.ReadFile(filepath.Join(skill.Path, SkillManifestName))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read skill document for %s", skill.Name)
	}
	return string(data), nil
}
