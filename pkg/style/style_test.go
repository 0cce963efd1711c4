package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/aidot/pkg/library"
	"github.com/arthur-debert/aidot/pkg/projection"
	"github.com/arthur-debert/aidot/pkg/status"
	"github.com/stretchr/testify/assert"
)

func TestPlainRendererMapping(t *testing.T) {
	r := &PlainRenderer{}

	assert.Equal(t, "Nothing to project", r.RenderMapping(nil))

	out := r.RenderMapping(projection.Mapping{
		{Destination: "/home/u/.claude/settings.json", Kind: projection.KindFile},
		{Destination: "/home/u/.claude/commands", Kind: projection.KindSymlink},
	})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "settings.json")
	assert.Contains(t, lines[1], "symlink")
}

func TestPlainRendererStatus(t *testing.T) {
	r := &PlainRenderer{}

	out := r.RenderStatus([]status.Entry{
		{Destination: "/home/u/.claude/commands", State: status.StateOK, Detail: "linked"},
		{Destination: "/home/u/.claude/settings.json", State: status.StateStale, Detail: "content differs"},
	})
	assert.Contains(t, out, "ok\t/home/u/.claude/commands")
	assert.Contains(t, out, "stale\t/home/u/.claude/settings.json")
}

func TestPlainRendererSkillList(t *testing.T) {
	r := &PlainRenderer{}

	assert.Equal(t, "No skills found", r.RenderSkillList(nil))

	out := r.RenderSkillList([]library.Skill{
		{Name: "go-htmx", Description: "server-rendered web apps"},
		{Name: "sql-review"},
	})
	assert.Contains(t, out, "go-htmx\tserver-rendered web apps")
	assert.Contains(t, out, "sql-review")
}

func TestTerminalRendererStatusIcons(t *testing.T) {
	r := &TerminalRenderer{}

	out := r.RenderStatus([]status.Entry{
		{Destination: "/home/u/.claude/commands", State: status.StateOK, Detail: "linked"},
		{Destination: "/home/u/.local/bin/agent", State: status.StateConflict, Detail: "exists but is not a symlink"},
	})
	assert.Contains(t, out, "commands")
	assert.Contains(t, out, "agent")
}

func TestRenderErrorNil(t *testing.T) {
	assert.Empty(t, (&PlainRenderer{}).RenderError(nil))
	assert.Empty(t, (&TerminalRenderer{}).RenderError(nil))
}

func TestRenderMarkdownPlainPassthrough(t *testing.T) {
	content := "# Heading\n\nbody text\n"
	assert.Equal(t, content, RenderMarkdown(content, FormatText))
}
