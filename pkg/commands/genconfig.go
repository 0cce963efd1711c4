package commands

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/aidot/pkg/config"
	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/paths"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// PackRoot is the path to the agent pack. Empty means auto-discover.
	PackRoot string
	// Write writes aidot.toml into the pack instead of printing it.
	Write bool
}

// GenConfigResult reports what GenConfig produced.
type GenConfigResult struct {
	ConfigContent string
	WrittenPath   string
}

// GenConfig outputs or writes a commented-out copy of the default
// configuration. An existing config file is never overwritten.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands")

	result := &GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	p, err := paths.New(opts.PackRoot)
	if err != nil {
		return nil, err
	}

	// Either accepted config name counts as existing; writing aidot.toml
	// next to a .aidot.toml would silently shadow it
	if existing, ok := config.FindPackConfig(p.PackRoot()); ok {
		return nil, errors.Newf(errors.ErrFileAccess,
			"config file already exists: %s", existing)
	}

	target := filepath.Join(p.PackRoot(), paths.PackConfigFile)

	if err := os.WriteFile(target, []byte(result.ConfigContent), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to write config to %s", target)
	}

	logger.Info().Str("path", target).Msg("Written config file")
	result.WrittenPath = target
	return result, nil
}
