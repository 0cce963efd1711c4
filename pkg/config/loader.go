package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/aidot/pkg/errors"
)

// configFileNames are tried in order at the pack root
var configFileNames = []string{"aidot.toml", ".aidot.toml"}

// Load reads configuration for the given pack root: embedded defaults
// first, then the pack's aidot.toml (or .aidot.toml) if present.
func Load(packRoot string) (*Config, error) {
	k, err := loadKoanf(packRoot)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

// loadKoanf builds the layered koanf instance for a pack root
func loadKoanf(packRoot string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Pack config if it exists
	if path, ok := FindPackConfig(packRoot); ok {
		if err := validatePackConfig(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load pack config from %s", path)
		}
	}

	return k, nil
}

// FindPackConfig returns the path of the pack's config file, trying each
// accepted name in order.
func FindPackConfig(packRoot string) (string, bool) {
	for _, filename := range configFileNames {
		path := filepath.Join(packRoot, filename)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// validatePackConfig rejects unknown keys before the koanf merge, with
// line-accurate TOML errors. A typo'd option silently falling back to
// its default is worse than failing the activation.
func validatePackConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read pack config: %s", path)
	}

	var strict Config
	dec := gotoml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&strict); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse,
			"invalid pack config %s", path)
	}
	return nil
}
