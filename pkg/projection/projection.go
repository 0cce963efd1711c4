// Package projection assembles the artifact mapping for one activation:
// an ordered list of (destination, content-or-source) pairs covering the
// rendered settings document, generated wrapper scripts, and the pack's
// static documentation trees. The projector performs no I/O of its own;
// the executor applies the mapping.
package projection

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/aidot/pkg/config"
	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/library"
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/paths"
	"github.com/arthur-debert/aidot/pkg/settings"
	"github.com/arthur-debert/aidot/pkg/wrapper"
)

// Kind describes how an artifact reaches its destination
type Kind string

const (
	// KindFile writes inline content to the destination
	KindFile Kind = "file"

	// KindSymlink links the destination to a source path in the pack
	KindSymlink Kind = "symlink"
)

// Artifact is one entry of the artifact mapping
type Artifact struct {
	// Destination is the absolute target path under the home directory
	Destination string

	// Kind selects between inline content and a symlinked source
	Kind Kind

	// Content is the inline document body (KindFile only)
	Content []byte

	// Source is the absolute source path (KindSymlink only)
	Source string

	// Mode is the file mode for inline content
	Mode os.FileMode

	// Description is a human-readable label for status output
	Description string
}

// Mapping is the ordered artifact list for one activation
type Mapping []Artifact

// Build assembles the mapping from the resolved record and the discovered
// library. A disabled record produces an empty mapping. Duplicate
// destinations are rejected before any write can happen.
func Build(rec config.Record, p paths.Paths, lib *library.Library) (Mapping, error) {
	logger := logging.GetLogger("projection")

	if !rec.Enable {
		logger.Debug().Msg("Materialization disabled, empty mapping")
		return Mapping{}, nil
	}

	var mapping Mapping

	rendered, err := settings.Render(rec)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render settings document")
	}
	mapping = append(mapping, Artifact{
		Destination: p.SettingsPath(),
		Kind:        KindFile,
		Content:     rendered,
		Mode:        0644,
		Description: "agent settings document",
	})

	scripts, err := wrapper.GenerateAll(rec.Wrappers)
	if err != nil {
		return nil, err
	}
	for _, script := range scripts {
		mapping = append(mapping, Artifact{
			Destination: p.BinPath(script.Name),
			Kind:        KindFile,
			Content:     script.Content,
			Mode:        0755,
			Description: "wrapper script " + script.Name,
		})
	}

	if lib != nil {
		if lib.CommandsDir != "" {
			mapping = append(mapping, Artifact{
				Destination: p.CommandsPath(),
				Kind:        KindSymlink,
				Source:      lib.CommandsDir,
				Description: "slash-command directory",
			})
		}

		for _, skill := range lib.Skills {
			mapping = append(mapping, Artifact{
				Destination: p.SkillPath(skill.Name),
				Kind:        KindSymlink,
				Source:      skill.Path,
				Description: "skill " + skill.Name,
			})
		}

		for _, agentFile := range lib.AgentFiles {
			name := filepath.Base(agentFile)
			mapping = append(mapping, Artifact{
				Destination: filepath.Join(p.AgentsPath(), name),
				Kind:        KindSymlink,
				Source:      agentFile,
				Description: "agent definition " + name,
			})
		}
	}

	if err := validateUnique(mapping); err != nil {
		return nil, err
	}

	logger.Debug().Int("artifacts", len(mapping)).Msg("Artifact mapping assembled")
	return mapping, nil
}

// validateUnique rejects mappings where two entries claim the same
// destination. This is the one meaningful build-time failure: the
// projection would otherwise be ambiguous about precedence.
func validateUnique(mapping Mapping) error {
	seen := make(map[string]*Artifact, len(mapping))
	for i := range mapping {
		artifact := &mapping[i]
		if prev, ok := seen[artifact.Destination]; ok {
			return errors.Newf(errors.ErrDuplicateDest,
				"duplicate destination %s: claimed by %s and %s",
				artifact.Destination, prev.Description, artifact.Description).
				WithDetail("destination", artifact.Destination)
		}
		seen[artifact.Destination] = artifact
	}
	return nil
}
