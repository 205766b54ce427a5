// Package backup keeps on-disk snapshots of files about to be mutated,
// giving callers durability beyond the engine's in-memory rollback.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SnapshotID identifies one stored snapshot.
type SnapshotID string

// Manager stores snapshots as flat files under a single directory, named
// after the source file plus a timestamp.
type Manager struct {
	Dir string
}

func NewManager(dir string) *Manager {
	if dir == "" {
		dir = ".weft-backups"
	}
	return &Manager{Dir: dir}
}

// CreateSnapshot copies the file's current bytes into the backup dir and
// returns the snapshot's identity.
func (m *Manager) CreateSnapshot(path string) (SnapshotID, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s for snapshot: %w", path, err)
	}
	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	id := SnapshotID(fmt.Sprintf("%s.%d", sanitize(path), time.Now().UnixNano()))
	if err := os.WriteFile(m.snapshotPath(id), content, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return id, nil
}

// Restore writes a snapshot's bytes back over the file.
func (m *Manager) Restore(path string, id SnapshotID) error {
	content, err := os.ReadFile(m.snapshotPath(id))
	if err != nil {
		return fmt.Errorf("snapshot %s not readable: %w", id, err)
	}
	mode := os.FileMode(0644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("failed to restore %s: %w", path, err)
	}
	return nil
}

// List returns the snapshot IDs held for a file, oldest first.
func (m *Manager) List(path string) ([]SnapshotID, error) {
	entries, err := os.ReadDir(m.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	prefix := sanitize(path) + "."
	var ids []SnapshotID
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), prefix) {
			ids = append(ids, SnapshotID(entry.Name()))
		}
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids, nil
}

// Prune deletes all but the newest keep snapshots of a file.
func (m *Manager) Prune(path string, keep int) error {
	ids, err := m.List(path)
	if err != nil {
		return err
	}
	if keep < 0 {
		keep = 0
	}
	for len(ids) > keep {
		if err := os.Remove(m.snapshotPath(ids[0])); err != nil {
			return err
		}
		ids = ids[1:]
	}
	return nil
}

func (m *Manager) snapshotPath(id SnapshotID) string {
	return filepath.Join(m.Dir, string(id))
}

func sanitize(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_")
	return r.Replace(strings.TrimPrefix(abs, string(filepath.Separator)))
}
