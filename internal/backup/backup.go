// Package backup creates and restores timestamped snapshots of the
// checklist data files (tasks, history, rollover state).
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"daylist/internal/fsutil"
	"daylist/internal/storage"
)

const (
	ManifestVersion = "1.0"
	ManifestFile    = "manifest.json"
	BackupsDir      = "backups"
)

// Manager handles snapshot and restore operations over the data directory.
type Manager struct {
	dataDir    string
	backupDir  string
	appVersion string
}

// Manifest describes the contents of one snapshot directory.
type Manifest struct {
	Version    string         `json:"version"`
	CreatedAt  time.Time      `json:"created_at"`
	AppVersion string         `json:"app_version"`
	Files      []string       `json:"files"`
	Stats      map[string]int `json:"stats"`
}

// Info is the summary shown when listing snapshots.
type Info struct {
	Name      string
	Path      string
	CreatedAt time.Time
	Stats     map[string]int
}

func NewManager(dataDir, appVersion string) *Manager {
	return &Manager{
		dataDir:    dataDir,
		backupDir:  filepath.Join(dataDir, BackupsDir),
		appVersion: appVersion,
	}
}

// Create snapshots every data file that exists into a new timestamped
// directory and returns its name.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// Millisecond suffix keeps rapid consecutive snapshots from colliding.
	now := time.Now()
	name := fmt.Sprintf("%s_%03d", now.Format("2006-01-02_150405"), now.Nanosecond()/1e6)
	snapPath := filepath.Join(m.backupDir, name)

	if err := os.MkdirAll(snapPath, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	var copied []string
	stats := make(map[string]int)

	for _, filename := range storage.DataFiles {
		srcPath := filepath.Join(m.dataDir, filename)
		if _, err := os.Stat(srcPath); os.IsNotExist(err) {
			continue
		}

		dstPath := filepath.Join(snapPath, filename)
		if err := fsutil.CopyFileAtomic(srcPath, dstPath, 0600); err != nil {
			_ = os.RemoveAll(snapPath)
			return "", fmt.Errorf("failed to copy %s: %w", filename, err)
		}
		copied = append(copied, filename)

		if key, n, err := countItems(srcPath, filename); err == nil && key != "" {
			stats[key] = n
		}
	}

	manifest := Manifest{
		Version:    ManifestVersion,
		CreatedAt:  now,
		AppVersion: m.appVersion,
		Files:      copied,
		Stats:      stats,
	}
	if err := writeJSON(filepath.Join(snapPath, ManifestFile), manifest); err != nil {
		_ = os.RemoveAll(snapPath)
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}

	return name, nil
}

// List returns all snapshots, newest first. Directories without a
// readable manifest fall back to the timestamp in their name.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		snapPath := filepath.Join(m.backupDir, entry.Name())
		var manifest Manifest
		if err := readJSON(filepath.Join(snapPath, ManifestFile), &manifest); err != nil {
			createdAt, parseErr := parseSnapshotName(entry.Name())
			if parseErr != nil {
				continue
			}
			manifest.CreatedAt = createdAt
			manifest.Stats = make(map[string]int)
		}

		backups = append(backups, Info{
			Name:      entry.Name(),
			Path:      snapPath,
			CreatedAt: manifest.CreatedAt,
			Stats:     manifest.Stats,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// Restore copies a snapshot's files back into the data directory.
// A safety snapshot of the current state is taken first.
func (m *Manager) Restore(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	snapPath := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(snapPath); os.IsNotExist(err) {
		return fmt.Errorf("backup not found: %s", name)
	}

	var manifest Manifest
	if err := readJSON(filepath.Join(snapPath, ManifestFile), &manifest); err != nil {
		manifest.Files = storage.DataFiles
	}

	safetyName, err := m.Create()
	if err != nil {
		return fmt.Errorf("failed to create safety backup: %w", err)
	}

	for _, filename := range manifest.Files {
		srcPath := filepath.Join(snapPath, filename)
		if _, err := os.Stat(srcPath); os.IsNotExist(err) {
			continue
		}
		dstPath := filepath.Join(m.dataDir, filename)
		if err := fsutil.CopyFileAtomic(srcPath, dstPath, 0600); err != nil {
			return fmt.Errorf("failed to restore %s (safety backup: %s): %w", filename, safetyName, err)
		}
	}

	for _, filename := range manifest.Files {
		if err := validateJSON(filepath.Join(m.dataDir, filename)); err != nil {
			return fmt.Errorf("restored file %s is invalid (safety backup: %s): %w", filename, safetyName, err)
		}
	}

	return nil
}

// RestoreLatest restores from the most recent snapshot.
func (m *Manager) RestoreLatest() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups available")
	}
	return m.Restore(backups[0].Name)
}

// Delete removes a snapshot.
func (m *Manager) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	snapPath := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(snapPath); os.IsNotExist(err) {
		return fmt.Errorf("backup not found: %s", name)
	}
	return os.RemoveAll(snapPath)
}

// Prune deletes old snapshots, keeping the keepCount most recent.
// Returns the number deleted.
func (m *Manager) Prune(keepCount int) (int, error) {
	if keepCount < 0 {
		return 0, fmt.Errorf("keepCount must be non-negative")
	}

	backups, err := m.List()
	if err != nil {
		return 0, err
	}
	if len(backups) <= keepCount {
		return 0, nil
	}

	deleted := 0
	for _, b := range backups[keepCount:] {
		if err := m.Delete(b.Name); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// Get returns information about one snapshot.
func (m *Manager) Get(name string) (*Info, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	snapPath := filepath.Join(m.backupDir, name)
	if _, err := os.Stat(snapPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("backup not found: %s", name)
	}

	var manifest Manifest
	if err := readJSON(filepath.Join(snapPath, ManifestFile), &manifest); err != nil {
		createdAt, parseErr := parseSnapshotName(name)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid backup: %s", name)
		}
		manifest.CreatedAt = createdAt
		manifest.Stats = make(map[string]int)
	}

	return &Info{
		Name:      name,
		Path:      snapPath,
		CreatedAt: manifest.CreatedAt,
		Stats:     manifest.Stats,
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("backup name is required")
	}
	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid backup name: %q", name)
	}
	if _, err := parseSnapshotName(name); err != nil {
		return fmt.Errorf("invalid backup name: %q", name)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, data, 0600)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// validateJSON checks that a file, if present, parses as JSON.
func validateJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var v any
	return json.Unmarshal(data, &v)
}

// countItems derives a manifest stat from a data file: the number of
// tasks or the number of recorded history days.
func countItems(path, filename string) (string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}

	switch filename {
	case storage.TasksFile:
		var ts storage.TaskStore
		if err := json.Unmarshal(data, &ts); err != nil {
			return "", 0, err
		}
		return "tasks", len(ts.Tasks), nil
	case storage.HistoryFile:
		var hs storage.HistoryStore
		if err := json.Unmarshal(data, &hs); err != nil {
			return "", 0, err
		}
		return "days", len(hs.Days), nil
	}
	return "", 0, nil
}

// parseSnapshotName parses a snapshot directory name into a timestamp.
// The name carries a millisecond suffix (2006-01-02_150405_XXX).
func parseSnapshotName(name string) (time.Time, error) {
	if len(name) == 21 && name[17] == '_' {
		base, err := time.Parse("2006-01-02_150405", name[:17])
		if err != nil {
			return time.Time{}, err
		}
		ms, err := strconv.Atoi(name[18:])
		if err != nil || ms < 0 || ms > 999 {
			return time.Time{}, fmt.Errorf("invalid milliseconds")
		}
		return base.Add(time.Duration(ms) * time.Millisecond), nil
	}
	return time.Parse("2006-01-02_150405", name)
}
