package commands

import (
	"github.com/arthur-debert/aidot/pkg/executor"
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/projection"
)

// UpOptions defines the options for the Up command.
type UpOptions struct {
	// PackRoot is the path to the agent pack. Empty means auto-discover.
	PackRoot string
	// DryRun logs the plan without touching the filesystem.
	DryRun bool
	// Force replaces existing regular files at destinations.
	Force bool
	// NoBackup disables the .bak copy made before a forced replacement.
	NoBackup bool
}

// Up runs a full activation: resolve options, generate artifacts, and
// project them into the home directory. It returns the mapping that was
// (or would be) applied.
func Up(opts UpOptions) (projection.Mapping, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Up").Bool("dryRun", opts.DryRun).Msg("Executing command")

	pipe, err := resolvePipeline(opts.PackRoot)
	if err != nil {
		return nil, err
	}

	if !pipe.record.Enable {
		log.Info().Msg("Agent disabled, nothing to project")
		return pipe.mapping, nil
	}

	exec, err := executor.New(opts.DryRun)
	if err != nil {
		return nil, err
	}
	exec.EnableForce(opts.Force).EnableBackup(!opts.NoBackup)

	if err := exec.Apply(pipe.mapping); err != nil {
		return nil, err
	}

	log.Info().Str("command", "Up").Int("artifacts", len(pipe.mapping)).Msg("Command finished")
	return pipe.mapping, nil
}
