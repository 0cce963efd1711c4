// Package status inspects the filesystem and reports how each projected
// artifact compares to what an activation would write. It never modifies
// anything.
package status

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/aidot/pkg/projection"
	"github.com/arthur-debert/aidot/pkg/types"
)

// State describes one destination relative to the desired mapping.
type State string

const (
	// StateOK means the destination matches the desired artifact
	StateOK State = "ok"
	// StateMissing means nothing exists at the destination yet
	StateMissing State = "missing"
	// StateStale means the destination exists but differs from the
	// desired content or symlink target
	StateStale State = "stale"
	// StateConflict means something incompatible occupies the
	// destination (a regular file where a symlink should go, etc.)
	StateConflict State = "conflict"
)

// Entry is the status of a single destination.
type Entry struct {
	Destination string
	Kind        projection.Kind
	State       State
	Detail      string
}

// Check compares every artifact in the mapping to what is on disk.
func Check(fsys types.FS, mapping projection.Mapping) []Entry {
	entries := make([]Entry, 0, len(mapping))
	for _, artifact := range mapping {
		entries = append(entries, checkArtifact(fsys, artifact))
	}
	return entries
}

func checkArtifact(fsys types.FS, artifact projection.Artifact) Entry {
	entry := Entry{
		Destination: artifact.Destination,
		Kind:        artifact.Kind,
	}

	info, err := fsys.Lstat(artifact.Destination)
	if err != nil {
		entry.State = StateMissing
		entry.Detail = "not activated"
		return entry
	}

	switch artifact.Kind {
	case projection.KindSymlink:
		if info.Mode()&os.ModeSymlink == 0 {
			entry.State = StateConflict
			entry.Detail = "exists but is not a symlink"
			return entry
		}
		target, err := fsys.Readlink(artifact.Destination)
		if err != nil {
			entry.State = StateConflict
			entry.Detail = "unreadable symlink"
			return entry
		}
		if sameTarget(target, artifact.Source) {
			entry.State = StateOK
			entry.Detail = "linked"
		} else {
			entry.State = StateStale
			entry.Detail = "points to " + target
		}

	case projection.KindFile:
		if info.IsDir() {
			entry.State = StateConflict
			entry.Detail = "exists but is a directory"
			return entry
		}
		current, err := fsys.ReadFile(artifact.Destination)
		if err != nil {
			entry.State = StateConflict
			entry.Detail = "unreadable file"
			return entry
		}
		if bytes.Equal(current, artifact.Content) {
			entry.State = StateOK
			entry.Detail = "up to date"
		} else {
			entry.State = StateStale
			entry.Detail = "content differs"
		}
	}

	return entry
}

// sameTarget compares symlink targets after cleaning; relative links are
// left as-is since the projector always emits absolute sources.
func sameTarget(actual, expected string) bool {
	return filepath.Clean(actual) == filepath.Clean(expected)
}
