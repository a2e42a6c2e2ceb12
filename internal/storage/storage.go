// Package storage handles all file I/O for the daylist data directory.
// Each concern lives in its own JSON file, written atomically with a
// best-effort .bak kept for corrupt-file recovery.
package storage

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"daylist/internal/fsutil"
)

const (
	dataDirPerm  os.FileMode = 0700
	dataFilePerm os.FileMode = 0600

	// TasksFile holds the live checklist.
	TasksFile = "tasks.json"
	// HistoryFile holds the per-day archive.
	HistoryFile = "history.json"
	// RolloverFile holds the last-reset timestamp.
	RolloverFile = "rollover.json"

	// MaxTaskNameLen is the longest accepted task name.
	MaxTaskNameLen = 200
)

// DataFiles lists every file managed in the data directory, in the order
// backups copy them.
var DataFiles = []string{TasksFile, HistoryFile, RolloverFile}

// Storage reads and writes the daylist data files.
type Storage struct {
	dataDir string
	now     func() time.Time // injectable clock for deterministic tests
}

// New creates a Storage rooted at dataDir, creating the directory and
// default files if needed.
func New(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Storage{dataDir: dataDir, now: time.Now}
	if err := s.initFiles(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetNowFunc overrides the clock used by storage operations.
// Passing nil resets it to time.Now.
func (s *Storage) SetNowFunc(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// Now returns the current time according to the storage clock.
func (s *Storage) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// DataDir returns the path to the data directory.
func (s *Storage) DataDir() string {
	return s.dataDir
}

func (s *Storage) initFiles() error {
	if !fileExists(s.path(TasksFile)) {
		if err := s.SaveTasks(&TaskStore{Tasks: []Task{}}); err != nil {
			return err
		}
	}
	if !fileExists(s.path(HistoryFile)) {
		if err := s.SaveHistory(&HistoryStore{Days: map[string]DayRecord{}}); err != nil {
			return err
		}
	}
	if !fileExists(s.path(RolloverFile)) {
		if err := s.SaveRollover(&RolloverState{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) path(filename string) string {
	return filepath.Join(s.dataDir, filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// NewTaskID generates a unique task identifier. IDs embed the creation
// instant plus random bytes and are never reused.
func NewTaskID() (string, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return fmt.Sprintf("t_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(b[:])), nil
}

func (s *Storage) writeJSONAtomic(filename string, v any) error {
	path := s.path(filename)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filename, err)
	}

	// Keep a best-effort backup before overwriting.
	fsutil.BestEffortBackup(path, dataFilePerm)

	if err := fsutil.WriteFileAtomic(path, data, dataFilePerm); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// loadJSONWithRecovery loads filename into v. Missing files are created
// from v's current (default) contents. Corrupt files are recovered from
// the .bak if possible, otherwise moved aside and reset to defaults; in
// both cases a non-nil error describes what happened while v stays
// usable. Startup never fails on bad data.
func (s *Storage) loadJSONWithRecovery(filename string, v any) error {
	path := s.path(filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.writeJSONAtomic(filename, v)
		}
		return fmt.Errorf("read %s: %w", filename, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s.recoverCorruptJSON(filename, v, fmt.Errorf("%s is empty", filename))
	}

	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}
	return s.recoverCorruptJSON(filename, v, fmt.Errorf("parse %s: %w", filename, err))
}

func (s *Storage) recoverCorruptJSON(filename string, v any, cause error) error {
	path := s.path(filename)

	// Try the backup first.
	bakData, bakErr := os.ReadFile(path + ".bak")
	if bakErr == nil && len(bytes.TrimSpace(bakData)) > 0 {
		if err := json.Unmarshal(bakData, v); err == nil {
			corruptPath := fmt.Sprintf("%s.corrupt.%s", path, s.Now().Format("20060102-150405"))
			_ = os.Rename(path, corruptPath)
			_ = s.writeJSONAtomic(filename, v)
			return fmt.Errorf("%s (recovered from %s.bak)", cause.Error(), filename)
		}
	}

	// No usable backup: preserve the broken file (best effort) and reset.
	corruptPath := fmt.Sprintf("%s.corrupt.%s", path, s.Now().Format("20060102-150405"))
	_ = os.Rename(path, corruptPath)
	_ = s.writeJSONAtomic(filename, v)
	return fmt.Errorf("%s (reset to defaults; original moved to %s)", cause.Error(), corruptPath)
}

// LoadTasks reads the checklist from disk. The returned store is always
// usable; a non-nil error is a recovery warning, not a failure.
func (s *Storage) LoadTasks() (*TaskStore, error) {
	store := TaskStore{Tasks: []Task{}}
	err := s.loadJSONWithRecovery(TasksFile, &store)
	if store.Tasks == nil {
		store.Tasks = []Task{}
	}
	return &store, err
}

// SaveTasks writes the checklist to disk.
func (s *Storage) SaveTasks(store *TaskStore) error {
	return s.writeJSONAtomic(TasksFile, store)
}

// LoadHistory reads the day archive from disk. Same warning semantics
// as LoadTasks.
func (s *Storage) LoadHistory() (*HistoryStore, error) {
	store := HistoryStore{Days: map[string]DayRecord{}}
	err := s.loadJSONWithRecovery(HistoryFile, &store)
	if store.Days == nil {
		store.Days = map[string]DayRecord{}
	}
	return &store, err
}

// SaveHistory writes the day archive to disk.
func (s *Storage) SaveHistory(store *HistoryStore) error {
	return s.writeJSONAtomic(HistoryFile, store)
}

// LoadRollover reads the last-reset state from disk. Same warning
// semantics as LoadTasks.
func (s *Storage) LoadRollover() (*RolloverState, error) {
	state := RolloverState{}
	err := s.loadJSONWithRecovery(RolloverFile, &state)
	return &state, err
}

// SaveRollover writes the last-reset state to disk.
func (s *Storage) SaveRollover(state *RolloverState) error {
	return s.writeJSONAtomic(RolloverFile, state)
}
