package ui

import (
	"testing"
	"time"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// setupTest prepares the test environment for deterministic rendering.
// It disables colors to ensure consistent output across environments.
func setupTest(t *testing.T) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
}

// testNoon is a fixed instant well past the reset hour.
var testNoon = time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

// createTestTracker opens a tracker over a temp directory with the clock
// pinned to testNoon.
func createTestTracker(t *testing.T) (*checklist.Tracker, *storage.Storage) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	store.SetNowFunc(func() time.Time { return testNoon })

	tracker, warnings := checklist.Open(store, checklist.DefaultResetHour)
	if len(warnings) != 0 {
		t.Fatalf("Open() warnings = %v", warnings)
	}
	return tracker, store
}

// createTestStyles creates a default Styles instance for testing.
func createTestStyles() *Styles {
	return NewStylesFromTheme(&config.ThemeConfig{})
}

// seedHistoryDay writes a one-entry completed record for the given day.
func seedHistoryDay(t *testing.T, tracker *checklist.Tracker, key string) {
	t.Helper()
	err := tracker.History.Upsert(checklist.DayKey(key), storage.DayRecord{
		Entries: []storage.HistoryEntry{
			{ID: "t_seed", Name: "Activity", Completed: true, Timestamp: testNoon},
		},
		TotalCount:     1,
		CompletedCount: 1,
	})
	if err != nil {
		t.Fatalf("Upsert(%s) error = %v", key, err)
	}
}
