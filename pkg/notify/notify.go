// Package notify implements the desktop notification hook. It reads a
// single JSON payload from stdin, extracts the message, and fires one
// best-effort OS notification. Failures are logged and swallowed: a
// broken notification must never fail the activity that triggered it.
package notify

import (
	"encoding/json"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/aidot/pkg/errors"
	"github.com/arthur-debert/aidot/pkg/logging"
)

// Event kinds accepted by the hook.
const (
	EventCompletion     = "completion"
	EventNeedsAttention = "needs-attention"
)

// MaxMessageLength bounds the notification body. Desktop notifiers
// truncate long strings inconsistently, so we do it ourselves.
const MaxMessageLength = 200

// Payload is the hook input document. Unknown fields are ignored and
// missing fields yield empty strings.
type Payload struct {
	Message string `json:"message"`
	Title   string `json:"title"`
}

// ParsePayload decodes a hook payload from r. Malformed or empty input
// yields a zero payload, never an error.
func ParsePayload(r io.Reader) Payload {
	var p Payload
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return Payload{}
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}
	}
	return p
}

// Truncate cuts s to at most max bytes on a rune boundary, appending an
// ellipsis when anything was dropped. The result is always valid UTF-8;
// notify-send and osascript choke on broken sequences.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return trimToRuneBoundary(s, max)
	}
	return trimToRuneBoundary(s, max-3) + "..."
}

// trimToRuneBoundary cuts s to at most n bytes without splitting a rune
func trimToRuneBoundary(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Notifier sends one desktop notification.
type Notifier interface {
	Send(title, body string) error
}

// NewNotifier returns the notifier for the current platform, or nil if
// the platform has no supported notification mechanism.
func NewNotifier() Notifier {
	switch runtime.GOOS {
	case "darwin":
		return &darwinNotifier{}
	case "linux":
		if _, err := exec.LookPath("notify-send"); err == nil {
			return &linuxNotifier{}
		}
	}
	return nil
}

type darwinNotifier struct{}

func (n *darwinNotifier) Send(title, body string) error {
	script := "display notification " + appleScriptQuote(body) +
		" with title " + appleScriptQuote(title)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return errors.Wrap(err, errors.ErrNotifySend, "osascript failed")
	}
	return nil
}

// appleScriptQuote wraps s in AppleScript double quotes, escaping
// backslashes and embedded quotes.
func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

type linuxNotifier struct{}

func (n *linuxNotifier) Send(title, body string) error {
	if err := exec.Command("notify-send", title, body).Run(); err != nil {
		return errors.Wrap(err, errors.ErrNotifySend, "notify-send failed")
	}
	return nil
}

// Run handles one hook invocation: parse the payload from in, word the
// notification for the event kind, and deliver it through notifier.
// It never returns an error to the caller's exit code path; delivery
// problems are logged and dropped.
func Run(event string, in io.Reader, notifier Notifier) {
	logger := logging.GetLogger("notify")

	title, body := Wording(event, ParsePayload(in))

	if notifier == nil {
		logger.Debug().Str("event", event).Msg("No notifier available on this platform")
		return
	}

	if err := notifier.Send(title, body); err != nil {
		logger.Debug().Err(err).Str("event", event).Msg("Notification delivery failed")
	}
}

// Wording chooses the title and body for an event. The payload message
// wins when present; each event kind has its own fallback text.
func Wording(event string, p Payload) (title, body string) {
	switch event {
	case EventNeedsAttention:
		title = "Agent needs attention"
		body = "Waiting for your input"
	default:
		title = "Agent finished"
		body = "Task complete"
	}

	if p.Title != "" {
		title = Truncate(p.Title, MaxMessageLength)
	}
	if p.Message != "" {
		body = Truncate(p.Message, MaxMessageLength)
	}
	return title, body
}
