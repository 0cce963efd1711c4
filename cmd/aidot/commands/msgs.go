package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Dotfiles for your AI agent"
	MsgUpShort         = "Activate the agent configuration"
	MsgRenderShort     = "Print the settings document without writing it"
	MsgRenderLong      = "Render resolves the pack configuration and prints the settings document that an activation would write. Output is deterministic and suitable for diffing."
	MsgStatusShort     = "Show activation status of all destinations"
	MsgSkillsShort     = "Inspect the skill library"
	MsgSkillsListShort = "List all skills in the library"
	MsgSkillsShowShort = "Display one skill document"
	MsgNotifyShort     = "Desktop notification hook (reads JSON from stdin)"
	MsgNotifyLong      = "Notify is the hook entry point wired into the settings document. It reads one JSON payload from standard input and shows a desktop notification. Best effort: it always exits 0."
	MsgGenConfigShort  = "Print or write a default aidot.toml"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice = "\nDRY RUN MODE - No changes were made"
	MsgNothingToDo  = "Nothing to project (agent is disabled)."
	MsgUpDoneFormat = "\nProjected %d artifacts.\n"

	// Error messages
	MsgErrUp     = "activation failed: %w"
	MsgErrRender = "failed to render settings: %w"
	MsgErrStatus = "failed to check status: %w"
	MsgErrSkills = "failed to load skill library: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without executing them"
	MsgFlagForce    = "Replace existing files at destination paths"
	MsgFlagNoBackup = "Skip the .bak copy when --force replaces a file"
	MsgFlagRoot     = "Path to the agent pack (default: auto-discover)"
	MsgFlagWrite    = "Write aidot.toml into the pack instead of printing"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/up-long.txt
	msgUpLongRaw string
	MsgUpLong    = strings.TrimSpace(msgUpLongRaw)

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)
)
