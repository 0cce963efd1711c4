// Package config loads and resolves aidot's declarative options. A fixed
// baseline merged with the pack's aidot.toml produces the immutable Record
// that drives artifact generation. Resolution is total: any list of
// permission strings is accepted, duplicates included.
package config

// BaselinePermissions is the fixed, built-in set of capability identifiers
// enabled by default. User-supplied extra_permissions are appended to this
// list, order preserved, without deduplication.
var BaselinePermissions = []string{
	"Read",
	"Grep",
	"Glob",
	"WebSearch",
	"WebFetch",
	"Bash(rg:*)",
	"Bash(git status:*)",
	"Bash(git diff:*)",
	"Bash(git log:*)",
	"Bash(go build:*)",
	"Bash(go test:*)",
	"Bash(go vet:*)",
	"Bash(gofmt:*)",
}

// Config is the on-disk shape of aidot.toml, overlaid on the embedded
// defaults.
type Config struct {
	Agent    AgentConfig     `koanf:"agent" toml:"agent"`
	Notify   NotifyConfig    `koanf:"notify" toml:"notify"`
	Library  LibraryConfig   `koanf:"library" toml:"library"`
	Wrappers []WrapperConfig `koanf:"wrappers" toml:"wrappers"`
}

// AgentConfig gates materialization and extends the permission baseline
type AgentConfig struct {
	Enable           bool     `koanf:"enable" toml:"enable"`
	ExtraPermissions []string `koanf:"extra_permissions" toml:"extra_permissions"`
}

// NotifyConfig controls the desktop notification hook wiring
type NotifyConfig struct {
	Enable  bool   `koanf:"enable" toml:"enable"`
	Command string `koanf:"command" toml:"command"`
}

// LibraryConfig locates the documentation trees inside the pack
type LibraryConfig struct {
	SkillsDir   string   `koanf:"skills_dir" toml:"skills_dir"`
	CommandsDir string   `koanf:"commands_dir" toml:"commands_dir"`
	AgentsDir   string   `koanf:"agents_dir" toml:"agents_dir"`
	Vendor      []string `koanf:"vendor" toml:"vendor"`
	Ignore      []string `koanf:"ignore" toml:"ignore"`
}

// WrapperConfig declares one generated wrapper script
type WrapperConfig struct {
	Name string            `koanf:"name" toml:"name"`
	Tool string            `koanf:"tool" toml:"tool"`
	Args []string          `koanf:"args" toml:"args"`
	Env  map[string]string `koanf:"env" toml:"env"`
}

// Record is the resolved configuration for one activation. It is fully
// determined before artifact generation begins and never mutated afterwards.
type Record struct {
	// Enable gates whether any artifact is projected at all
	Enable bool

	// Permissions is baseline ++ extras, order preserved
	Permissions []string

	// Notify reports whether the notification hook is wired into the
	// settings document (platform support and notify.enable combined)
	Notify bool

	// NotifyCommand is the resolved notification command path. Empty
	// when Notify is false.
	NotifyCommand string

	// Wrappers are the wrapper scripts to generate
	Wrappers []WrapperConfig

	// Library locates the static documentation trees
	Library LibraryConfig
}

// ResolvePermissions concatenates the baseline with the user extras.
// Order is preserved and duplicates are tolerated; the consuming tool
// treats the list as first-match-wins, so dedup would change behavior.
func ResolvePermissions(baseline, extras []string) []string {
	resolved := make([]string, 0, len(baseline)+len(extras))
	resolved = append(resolved, baseline...)
	resolved = append(resolved, extras...)
	return resolved
}

// Resolve merges the loaded Config with the baseline and the host platform
// into a Record. Resolution is total and cannot fail.
func Resolve(cfg *Config, notifySupported bool, notifyCommand string) Record {
	rec := Record{
		Enable:      cfg.Agent.Enable,
		Permissions: ResolvePermissions(BaselinePermissions, cfg.Agent.ExtraPermissions),
		Wrappers:    cfg.Wrappers,
		Library:     cfg.Library,
	}

	if notifySupported && cfg.Notify.Enable {
		rec.Notify = true
		rec.NotifyCommand = notifyCommand
	}

	return rec
}
