// Package inspect reports the page as a tree of nodes carrying bounds, roles
// and ARIA state, so tools can check which menu is open, where its panel sits
// and what it announces without looking at the screen.
package inspect

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// EnvInspect turns inspection on when set to "1".
	EnvInspect = "NAVMENU_INSPECT"
	// EnvInspectFile overrides where snapshots are written.
	EnvInspectFile = "NAVMENU_INSPECT_FILE"
)

// Introspectable is implemented by the bar, the viewport and anything else
// that can describe itself as a node.
type Introspectable interface {
	InspectNode() *Node
}

// IsEnabled reports whether EnvInspect is set.
func IsEnabled() bool {
	return os.Getenv(EnvInspect) == "1"
}

// DefaultPath is the snapshot file used when EnvInspectFile is unset.
func DefaultPath() string {
	if p := os.Getenv(EnvInspectFile); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "navmenu-inspect.json")
}

// Recorder writes page snapshots to a file. The page reports itself after
// every update, including each animation frame, so a snapshot that only
// differs from the last written one by its timestamp is skipped.
type Recorder struct {
	mu     sync.Mutex
	path   string
	last   []byte
	writes int
}

// NewRecorder returns a recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Path is the file the recorder writes to.
func (r *Recorder) Path() string {
	return r.path
}

// Writes counts the snapshots written so far.
func (r *Recorder) Writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writes
}

// Record writes s unless the page has not changed since the last write.
// It reports whether the file was written.
func (r *Recorder) Record(s *Snapshot) (bool, error) {
	key := *s
	key.Timestamp = time.Time{}
	state, err := json.Marshal(&key)
	if err != nil {
		return false, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last != nil && bytes.Equal(state, r.last) {
		return false, nil
	}
	if err := WriteSnapshotToPath(s, r.path); err != nil {
		return false, err
	}
	r.last = state
	r.writes++
	return true, nil
}

// WriteSnapshotToPath writes a snapshot to a specific path.
func WriteSnapshotToPath(snapshot *Snapshot, path string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
