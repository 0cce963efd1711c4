package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteCommandPath(t *testing.T) {
	assert.Equal(t, "/usr/local/bin/aidot", quoteCommandPath("/usr/local/bin/aidot"))
	assert.Equal(t, "'/home/u/My Tools/aidot'", quoteCommandPath("/home/u/My Tools/aidot"))
	assert.Equal(t, `'/opt/o'\''brien/aidot'`, quoteCommandPath("/opt/o'brien/aidot"))
}

func TestResolveNotifyCommandQuotesExecutable(t *testing.T) {
	// Without an explicit command, the hook invokes the running binary.
	// The test binary path has no spaces, so the result is unquoted.
	cfg := &Config{}
	got, err := ResolveNotifyCommand(cfg)
	require.NoError(t, err)
	assert.Contains(t, got, " notify")
	assert.NotContains(t, got, "''")
}

func TestResolveNotifyCommandExplicit(t *testing.T) {
	cfg := &Config{Notify: NotifyConfig{Command: "/usr/bin/my-notify --urgent"}}
	got, err := ResolveNotifyCommand(cfg)
	require.NoError(t, err)
	// An explicit command is a user-authored shell line, passed through
	assert.Equal(t, "/usr/bin/my-notify --urgent", got)
}
