package commands

import (
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/status"
)

// StatusOptions defines the options for the Status command.
type StatusOptions struct {
	// PackRoot is the path to the agent pack. Empty means auto-discover.
	PackRoot string
}

// Status reports how each projected destination compares to what is on
// disk. Read-only.
func Status(opts StatusOptions) ([]status.Entry, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Status").Msg("Executing command")

	pipe, err := resolvePipeline(opts.PackRoot)
	if err != nil {
		return nil, err
	}

	return status.Check(pipe.fs, pipe.mapping), nil
}
