package commands

import (
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/settings"
)

// RenderOptions defines the options for the Render command.
type RenderOptions struct {
	// PackRoot is the path to the agent pack. Empty means auto-discover.
	PackRoot string
}

// Render produces the settings document that an activation would write,
// without touching the filesystem. Output is deterministic: identical
// inputs yield byte-identical documents.
func Render(opts RenderOptions) ([]byte, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Render").Msg("Executing command")

	pipe, err := resolvePipeline(opts.PackRoot)
	if err != nil {
		return nil, err
	}

	return settings.Render(pipe.record)
}
