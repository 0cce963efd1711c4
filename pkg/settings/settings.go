// Package settings renders the agent's settings document from a resolved
// configuration record. Rendering is a pure function: same record in,
// byte-identical JSON out, with key order fixed by the struct layout.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/aidot/pkg/config"
)

// Lifecycle event names the agent fires hooks on
const (
	// EventStop fires when the agent finishes a turn
	EventStop = "Stop"

	// EventNotification fires when the agent needs user attention
	EventNotification = "Notification"
)

// Document is the serialized settings record consumed by the agent.
// Hooks is a pointer on purpose: the consuming tool feature-detects on the
// presence of the "hooks" key, so "absent" and "empty" are not the same
// thing. A nil Hooks serializes to no key at all.
type Document struct {
	Permissions Permissions `json:"permissions"`
	Attribution Attribution `json:"attribution"`
	Hooks       *HookConfig `json:"hooks,omitempty"`
}

// Permissions carries the capability allow list
type Permissions struct {
	Allow []string `json:"allow"`
}

// Attribution suppresses the agent's default commit/PR attribution
type Attribution struct {
	Commit string `json:"commit"`
	PR     string `json:"pr"`
}

// HookConfig holds hook definitions keyed by lifecycle event
type HookConfig struct {
	Stop         []HookMatcher `json:"Stop,omitempty"`
	Notification []HookMatcher `json:"Notification,omitempty"`
}

// HookMatcher wraps the hook list for one event
type HookMatcher struct {
	Hooks []HookDef `json:"hooks"`
}

// HookDef defines a single hook action
type HookDef struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// Build constructs the settings document from a resolved record. When the
// record's notify flag is unset, Hooks stays nil and the serialized output
// contains no "hooks" key.
func Build(rec config.Record) Document {
	doc := Document{
		Permissions: Permissions{Allow: rec.Permissions},
		Attribution: Attribution{},
	}

	if rec.Notify {
		doc.Hooks = &HookConfig{
			Stop:         commandHook(fmt.Sprintf("%s completion", rec.NotifyCommand)),
			Notification: commandHook(fmt.Sprintf("%s needs-attention", rec.NotifyCommand)),
		}
	}

	return doc
}

// Render serializes the settings document for a resolved record. It cannot
// fail for records produced by config.Resolve; the error return only covers
// the marshaler's contract.
func Render(rec config.Record) ([]byte, error) {
	doc := Build(rec)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	// Trailing newline so the file diffs cleanly across activations
	return append(out, '\n'), nil
}

func commandHook(command string) []HookMatcher {
	return []HookMatcher{
		{Hooks: []HookDef{{Type: "command", Command: command}}},
	}
}
