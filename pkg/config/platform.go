package config

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/paths"
)

// NotifySupported reports whether the host platform can show desktop
// notifications. This is the platform flag of the Record: derived from the
// host environment, not from user input.
func NotifySupported() bool {
	switch runtime.GOOS {
	case "darwin":
		// osascript ships with the OS
		return true
	case "linux":
		_, err := exec.LookPath("notify-send")
		return err == nil
	default:
		return false
	}
}

// ResolveNotifyCommand returns the base command the agent's hooks invoke.
// An explicit notify.command wins; otherwise the running aidot binary is
// used, so hooks keep working after the pack is re-activated from a
// different checkout.
func ResolveNotifyCommand(cfg *Config) (string, error) {
	if cfg.Notify.Command != "" {
		return paths.ExpandHome(cfg.Notify.Command), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "failed to resolve aidot executable for notify hook")
	}
	return quoteCommandPath(exe) + " notify", nil
}

// quoteCommandPath single-quotes a path for use inside a shell command
// line. The hooks in the settings document are interpreted by a shell, so
// an unquoted path with a space would split into two words.
func quoteCommandPath(path string) string {
	if !strings.ContainsAny(path, " \t'\"\\$&|;<>()*?[]#~") {
		return path
	}
	return "'" + strings.ReplaceAll(path, "'", `'\''`) + "'"
}
