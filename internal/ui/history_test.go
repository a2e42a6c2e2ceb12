package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHistoryPane_RefreshWindowsRows(t *testing.T) {
	setupTest(t)
	tracker, _ := createTestTracker(t)

	created, _ := tracker.List.Add("Run")
	tracker.List.Toggle(created[0].ID) // records 2025-06-10

	pane := NewHistoryPane(tracker.History, 30, createTestStyles())
	pane.SetSize(40, 20)
	pane.SetFocused(true)
	pane.Refresh("2025-06-10")

	row, ok := pane.SelectedDay()
	if !ok {
		t.Fatal("SelectedDay() found nothing after refresh")
	}
	if row.Key != "2025-06-10" {
		t.Errorf("SelectedDay() = %s, want 2025-06-10", row.Key)
	}
}

func TestHistoryPane_WindowExcludesOldDays(t *testing.T) {
	setupTest(t)
	tracker, _ := createTestTracker(t)

	seedHistoryDay(t, tracker, "2025-06-10")
	seedHistoryDay(t, tracker, "2025-06-04") // outside a 3-day window ending 06-10

	pane := NewHistoryPane(tracker.History, 3, createTestStyles())
	pane.Refresh("2025-06-10")

	if len(pane.rows) != 1 {
		t.Fatalf("rows = %d, want 1 inside the window", len(pane.rows))
	}
	if pane.rows[0].Key != "2025-06-10" {
		t.Errorf("rows[0] = %s, want 2025-06-10", pane.rows[0].Key)
	}
}

func TestHistoryPane_Navigation(t *testing.T) {
	setupTest(t)
	tracker, _ := createTestTracker(t)

	for _, key := range []string{"2025-06-08", "2025-06-09", "2025-06-10"} {
		seedHistoryDay(t, tracker, key)
	}

	pane := NewHistoryPane(tracker.History, 30, createTestStyles())
	pane.SetFocused(true)
	pane.Refresh("2025-06-10")

	// Rows are most recent first.
	if row, _ := pane.SelectedDay(); row.Key != "2025-06-10" {
		t.Fatalf("initial selection = %s, want 2025-06-10", row.Key)
	}

	pane.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if row, _ := pane.SelectedDay(); row.Key != "2025-06-09" {
		t.Errorf("selection after j = %s, want 2025-06-09", row.Key)
	}

	pane.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if row, _ := pane.SelectedDay(); row.Key != "2025-06-08" {
		t.Errorf("selection after G = %s, want oldest day", row.Key)
	}
}

func TestHistoryPane_ViewEmpty(t *testing.T) {
	setupTest(t)
	tracker, _ := createTestTracker(t)

	pane := NewHistoryPane(tracker.History, 30, createTestStyles())
	pane.SetSize(40, 20)
	pane.Refresh("2025-06-10")

	out := pane.View()
	if !strings.Contains(out, "No days recorded yet") {
		t.Error("empty view missing placeholder")
	}
}

func TestHistoryPane_ViewShowsDayAndEntries(t *testing.T) {
	setupTest(t)
	tracker, _ := createTestTracker(t)

	created, _ := tracker.List.Add("Run; Read")
	tracker.List.Toggle(created[0].ID)

	pane := NewHistoryPane(tracker.History, 30, createTestStyles())
	pane.SetSize(44, 24)
	pane.SetFocused(true)
	pane.Refresh("2025-06-10")

	out := pane.View()
	for _, want := range []string{"HISTORY", "2025-06-10", "1/2", "50%", "Run", "Read"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
