// Package paths provides centralized path handling for aidot.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/aidot/pkg/errors"
)

// Environment variable names
const (
	// EnvPackRoot is the primary environment variable for the agent pack location
	EnvPackRoot = "AIDOT_ROOT"

	// EnvDataDir overrides the XDG data directory for aidot
	EnvDataDir = "AIDOT_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for aidot
	EnvConfigDir = "AIDOT_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed destination paths, relative to the user's home directory.
// IMPORTANT: These constants define where artifacts are materialized and
// are NOT user-configurable. The consuming agent looks them up at fixed
// locations, so they must remain consistent across installations.
const (
	// AgentDirName is the agent's configuration directory under $HOME
	AgentDirName = ".claude"

	// SettingsDest is the rendered settings document
	SettingsDest = ".claude/settings.json"

	// CommandsDest is the slash-command documentation directory
	CommandsDest = ".claude/commands"

	// SkillsDest is the root of the skill documentation directories
	SkillsDest = ".claude/skills"

	// AgentsDest is the agent-definition documents directory
	AgentsDest = ".claude/agents"

	// BinDest is where wrapper scripts land (on the execution search path)
	BinDest = ".local/bin"
)

// Names inside the aidot data/config namespace
const (
	// AidotDirName is the directory name for aidot-specific files
	AidotDirName = "aidot"

	// PackConfigFile is the name of the pack configuration file
	PackConfigFile = "aidot.toml"

	// LogFileName is the name of the log file
	LogFileName = "aidot.log"
)

// Paths provides centralized path management for aidot
type Paths interface {
	PackRoot() string
	UsedFallback() bool
	Home() string
	DataDir() string
	ConfigDir() string
	StateDir() string
	LogFilePath() string
	PackConfigPath() string
	SettingsPath() string
	CommandsPath() string
	SkillsPath() string
	SkillPath(name string) string
	AgentsPath() string
	BinPath(name string) string
	NormalizePath(path string) (string, error)
}

type paths struct {
	packRoot     string
	home         string
	xdgData      string
	xdgConfig    string
	xdgState     string
	usedFallback bool
}

// New creates a new Paths instance with the given pack root.
// If packRoot is empty, it will be determined from environment variables
// or defaults.
func New(packRoot string) (Paths, error) {
	p := &paths{}

	if packRoot == "" {
		root, usedFallback, err := findPackRoot()
		if err != nil {
			return nil, err
		}
		p.packRoot = root
		p.usedFallback = usedFallback
	} else {
		p.packRoot = ExpandHome(packRoot)
		p.usedFallback = false
	}

	absRoot, err := filepath.Abs(p.packRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for pack root")
	}
	p.packRoot = absRoot

	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	p.home = home

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = ExpandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AidotDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AidotDirName)
	}

	// State directory - XDG doesn't provide StateHome, so we check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AidotDirName)
	} else {
		p.xdgState = filepath.Join(p.home, ".local", "state", AidotDirName)
	}
}

// findPackRoot determines the pack root using the following priority:
// 1. AIDOT_ROOT environment variable (if set)
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
//
// This allows aidot to work in three common scenarios:
// - Explicit configuration via AIDOT_ROOT
// - Automatic detection when run from within a git-managed agent pack
// - Fallback to current directory for quick testing or non-git setups
func findPackRoot() (string, bool, error) {
	if root := os.Getenv(EnvPackRoot); root != "" {
		return ExpandHome(root), false, nil
	}

	gitRoot, err := findGitRoot()
	if err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}

	return gitRoot, nil
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get home directory")
	}
	return homeDir, nil
}

// PackRoot returns the root directory of the agent pack
func (p *paths) PackRoot() string {
	return p.packRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

// Home returns the user's home directory
func (p *paths) Home() string {
	return p.home
}

// DataDir returns the XDG data directory for aidot
func (p *paths) DataDir() string {
	return p.xdgData
}

// ConfigDir returns the XDG config directory for aidot
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for aidot
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the aidot log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// PackConfigPath returns the path to the pack's configuration file
func (p *paths) PackConfigPath() string {
	return filepath.Join(p.packRoot, PackConfigFile)
}

// SettingsPath returns the absolute destination of the settings document
func (p *paths) SettingsPath() string {
	return filepath.Join(p.home, SettingsDest)
}

// CommandsPath returns the absolute destination of the slash-command directory
func (p *paths) CommandsPath() string {
	return filepath.Join(p.home, CommandsDest)
}

// SkillsPath returns the absolute destination of the skills root
func (p *paths) SkillsPath() string {
	return filepath.Join(p.home, SkillsDest)
}

// SkillPath returns the absolute destination of a single skill directory
func (p *paths) SkillPath(name string) string {
	return filepath.Join(p.home, SkillsDest, name)
}

// AgentsPath returns the absolute destination of the agent-definition directory
func (p *paths) AgentsPath() string {
	return filepath.Join(p.home, AgentsDest)
}

// BinPath returns the absolute destination of a wrapper script
func (p *paths) BinPath(name string) string {
	return filepath.Join(p.home, BinDest, name)
}

// NormalizePath normalizes a path by expanding home, making it absolute,
// and cleaning it
func (p *paths) NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}
