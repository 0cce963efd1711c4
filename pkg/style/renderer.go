package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/aidot/pkg/library"
	"github.com/arthur-debert/aidot/pkg/projection"
	"github.com/arthur-debert/aidot/pkg/status"
)

// Renderer defines the interface for rendering command output
type Renderer interface {
	RenderMapping(mapping projection.Mapping) string
	RenderStatus(entries []status.Entry) string
	RenderSkillList(skills []library.Skill) string
	RenderError(err error) string
}

// NewRenderer picks the renderer matching the detected output format
func NewRenderer(format Format) Renderer {
	if format == FormatTerminal {
		return &TerminalRenderer{}
	}
	return &PlainRenderer{}
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// RenderMapping renders the artifacts an activation would project
func (r *TerminalRenderer) RenderMapping(mapping projection.Mapping) string {
	if len(mapping) == 0 {
		return MutedStyle.Render("Nothing to project (is the agent enabled?)")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Projected artifacts") + "\n")

	for _, artifact := range mapping {
		kind := MutedStyle.Render(string(artifact.Kind))
		result.WriteString(fmt.Sprintf("  %s %s %s\n",
			PendingIndicator, PathStyle.Render(artifact.Destination), kind))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderStatus renders destination states with per-state indicators
func (r *TerminalRenderer) RenderStatus(entries []status.Entry) string {
	if len(entries) == 0 {
		return MutedStyle.Render("No destinations declared")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Activation status") + "\n")

	for _, entry := range entries {
		var icon string
		switch entry.State {
		case status.StateOK:
			icon = SuccessIndicator
		case status.StateMissing:
			icon = PendingIndicator
		case status.StateStale:
			icon = WarningIndicator
		default:
			icon = ErrorIndicator
		}
		result.WriteString(fmt.Sprintf("  %s %s %s\n",
			icon, PathStyle.Render(entry.Destination), MutedStyle.Render(entry.Detail)))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderSkillList renders the skill library as a name/description list
func (r *TerminalRenderer) RenderSkillList(skills []library.Skill) string {
	if len(skills) == 0 {
		return MutedStyle.Render("No skills found")
	}

	var result strings.Builder
	result.WriteString(TitleStyle.Render("Skills") + "\n")

	for _, skill := range skills {
		name := Bold(skill.Name)
		if skill.Vendored {
			name += " " + MutedStyle.Render("(vendored)")
		}
		result.WriteString("  " + name + "\n")
		if skill.Description != "" {
			result.WriteString(Indent(MutedStyle.Render(skill.Description), 2) + "\n")
		}
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderError renders an error with pterm's error prefix
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

func (r *PlainRenderer) RenderMapping(mapping projection.Mapping) string {
	if len(mapping) == 0 {
		return "Nothing to project"
	}

	var result strings.Builder
	for _, artifact := range mapping {
		result.WriteString(fmt.Sprintf("%s\t%s\n", artifact.Kind, artifact.Destination))
	}
	return strings.TrimRight(result.String(), "\n")
}

func (r *PlainRenderer) RenderStatus(entries []status.Entry) string {
	if len(entries) == 0 {
		return "No destinations declared"
	}

	var result strings.Builder
	for _, entry := range entries {
		result.WriteString(fmt.Sprintf("%s\t%s\t%s\n", entry.State, entry.Destination, entry.Detail))
	}
	return strings.TrimRight(result.String(), "\n")
}

func (r *PlainRenderer) RenderSkillList(skills []library.Skill) string {
	if len(skills) == 0 {
		return "No skills found"
	}

	var result strings.Builder
	for _, skill := range skills {
		line := skill.Name
		if skill.Description != "" {
			line += "\t" + skill.Description
		}
		result.WriteString(line + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}
