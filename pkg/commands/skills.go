package commands

import (
	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/library"
	"github.com/arthur-debert/aidot/pkg/logging"
)

// SkillsOptions defines the options for the skill library commands.
type SkillsOptions struct {
	// PackRoot is the path to the agent pack. Empty means auto-discover.
	PackRoot string
}

// ListSkills returns the discovered skill library, sorted by name.
func ListSkills(opts SkillsOptions) ([]library.Skill, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "ListSkills").Msg("Executing command")

	pipe, err := resolvePipeline(opts.PackRoot)
	if err != nil {
		return nil, err
	}

	return pipe.library.Skills, nil
}

// ShowSkill returns the full markdown document of one skill by name.
func ShowSkill(opts SkillsOptions, name string) (string, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "ShowSkill").Str("skill", name).Msg("Executing command")

	pipe, err := resolvePipeline(opts.PackRoot)
	if err != nil {
		return "", err
	}

	skill := pipe.library.Find(name)
	if skill == nil {
		return "", errors.Newf(errors.ErrSkillInvalid, "skill not found: %s", name)
	}

	return library.ReadSkillDocument(pipe.fs, skill)
}
