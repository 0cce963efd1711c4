// Package commands implements the operations behind the aidot CLI. Each
// command is a plain function over an Options struct so the cobra layer
// stays thin and the logic stays testable.
package commands

import (
	"github.com/arthur-debert/aidot/pkg/config"
	"github.com/arthur-debert/aidot/pkg/filesystem"
	"github.com/arthur-debert/aidot/pkg/library"
	"github.com/arthur-debert/aidot/pkg/logging"
	"github.com/arthur-debert/aidot/pkg/paths"
	"github.com/arthur-debert/aidot/pkg/projection"
	"github.com/arthur-debert/aidot/pkg/types"
)

// pipeline holds the resolved state every command starts from.
type pipeline struct {
	paths   paths.Paths
	fs      types.FS
	record  config.Record
	library *library.Library
	mapping projection.Mapping
}

// resolvePipeline runs option resolution, library discovery and
// projection for the pack at packRoot (auto-discovered when empty).
func resolvePipeline(packRoot string) (*pipeline, error) {
	log := logging.GetLogger("commands")

	p, err := paths.New(packRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(p.PackRoot())
	if err != nil {
		return nil, err
	}

	notifyCommand := ""
	supported := config.NotifySupported()
	if supported && cfg.Notify.Enable {
		notifyCommand, err = config.ResolveNotifyCommand(cfg)
		if err != nil {
			return nil, err
		}
	}

	rec := config.Resolve(cfg, supported, notifyCommand)
	log.Debug().
		Bool("enable", rec.Enable).
		Bool("notify", rec.Notify).
		Int("permissions", len(rec.Permissions)).
		Msg("Configuration resolved")

	fsys := filesystem.NewOS()
	lib, err := library.Load(fsys, p.PackRoot(), rec.Library)
	if err != nil {
		return nil, err
	}

	mapping, err := projection.Build(rec, p, lib)
	if err != nil {
		return nil, err
	}

	return &pipeline{
		paths:   p,
		fs:      fsys,
		record:  rec,
		library: lib,
		mapping: mapping,
	}, nil
}
