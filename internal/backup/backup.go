// Package backup snapshots the data store into timestamped directories and
// restores from them. Snapshots go through the storage Backend interface, so
// the same manager works for the JSON-file and SQLite backends.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/neuropulse/neuropulse/internal/constants"
	"github.com/neuropulse/neuropulse/internal/logger"
	"github.com/neuropulse/neuropulse/internal/storage"
)

// Info describes one existing backup snapshot.
type Info struct {
	Path      string
	Timestamp time.Time
	Keys      int
}

// Manager handles backup operations for one data directory.
type Manager struct {
	backend   storage.Backend
	backupDir string
}

// NewManager creates a manager storing snapshots under
// <dataDir>/backups.
func NewManager(backend storage.Backend, dataDir string) *Manager {
	return &Manager{
		backend:   backend,
		backupDir: filepath.Join(dataDir, constants.BackupDirName),
	}
}

// Dir returns the backup directory path.
func (m *Manager) Dir() string { return m.backupDir }

// Create snapshots every key into a new timestamped directory and rotates
// old snapshots beyond the retention limit.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

// create writes the snapshot. skipRotation prevents recursion when Restore
// takes its safety snapshot.
func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	keys, err := m.backend.Keys()
	if err != nil {
		return "", fmt.Errorf("failed to list data keys: %w", err)
	}
	if len(keys) == 0 {
		return "", fmt.Errorf("nothing to back up: no data found")
	}

	path, err := m.snapshotPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	for _, key := range keys {
		data, ok, err := m.backend.Get(key)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		dest := filepath.Join(path, key+".json")
		if err := os.WriteFile(dest, data, 0600); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", dest, err)
		}
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}
	return path, nil
}

// snapshotPath picks a unique directory name, adding seconds and then a
// counter when snapshots collide within the same minute.
func (m *Manager) snapshotPath() (string, error) {
	name := constants.BackupFilePrefix + time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	name = constants.BackupFilePrefix + time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, name)
	for counter := 0; ; counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup name")
		}
		candidate := path
		if counter > 0 {
			candidate = fmt.Sprintf("%s-%d", path, counter)
		}
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
}

// List returns all snapshots, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.BackupFilePrefix) {
			continue
		}

		stamp := strings.TrimPrefix(entry.Name(), constants.BackupFilePrefix)
		if i := strings.LastIndex(stamp, "-"); i > 0 {
			// A trailing counter is neither HHMM nor HHMMSS long.
			if tail := stamp[i+1:]; len(tail) != 4 && len(tail) != 6 {
				stamp = stamp[:i]
			}
		}
		ts, err := time.Parse("20060102-1504", stamp)
		if err != nil {
			ts, err = time.Parse("20060102-150405", stamp)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, entry.Name())
		files, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: ts, Keys: len(files)})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.RemoveAll(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore loads every key file from a snapshot back into the backend. The
// current data is snapshotted first so a bad restore can itself be undone.
func (m *Manager) Restore(path string) error {
	files, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read backup %s: %w", path, err)
	}

	if pre, err := m.create(true); err != nil {
		logger.Warn("Could not snapshot current data before restore", "error", err)
	} else {
		logger.Info("Snapshotted current data before restore", "path", pre)
	}

	restored := 0
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(path, f.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", f.Name(), err)
		}
		key := strings.TrimSuffix(f.Name(), ".json")
		if err := m.backend.Set(key, data); err != nil {
			return fmt.Errorf("failed to restore %s: %w", key, err)
		}
		restored++
	}
	if restored == 0 {
		return fmt.Errorf("backup %s contains no data files", path)
	}
	return nil
}
