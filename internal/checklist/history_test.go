package checklist

import (
	"testing"
	"time"

	"daylist/internal/storage"
)

// record builds a DayRecord from (name, completed) pairs for test setup.
func record(at time.Time, entries ...storage.HistoryEntry) storage.DayRecord {
	rec := storage.DayRecord{TotalCount: len(entries)}
	for _, e := range entries {
		if e.Timestamp.IsZero() {
			e.Timestamp = at
		}
		rec.Entries = append(rec.Entries, e)
		if e.Completed {
			rec.CompletedCount++
		}
	}
	return rec
}

func entry(name string, completed bool) storage.HistoryEntry {
	return storage.HistoryEntry{ID: "t_" + name, Name: name, Completed: completed}
}

func TestHistoryUpsert(t *testing.T) {
	tracker, store := newTestTracker(t, noon)
	history := tracker.History

	rec := record(noon, entry("Run", true), entry("Read", false))
	if err := history.Upsert("2025-06-10", rec); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, ok := history.Get("2025-06-10")
	if !ok {
		t.Fatal("Get() did not find upserted day")
	}
	if got.TotalCount != 2 || got.CompletedCount != 1 {
		t.Errorf("record = %d/%d, want 1/2", got.CompletedCount, got.TotalCount)
	}

	// Upsert overwrites, never merges.
	rec2 := record(noon, entry("Run", true))
	if err := history.Upsert("2025-06-10", rec2); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	got, _ = history.Get("2025-06-10")
	if got.TotalCount != 1 {
		t.Errorf("TotalCount = %d after overwrite, want 1", got.TotalCount)
	}

	// Verify persistence
	hs, err := store.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if len(hs.Days) != 1 {
		t.Errorf("persisted days = %d, want 1", len(hs.Days))
	}
}

func TestHistoryUpsert_EmptyDayPrunes(t *testing.T) {
	tracker, store := newTestTracker(t, noon)
	history := tracker.History

	history.Upsert("2025-06-10", record(noon, entry("Run", true)))

	// An empty record deletes the day entirely.
	if err := history.Upsert("2025-06-10", storage.DayRecord{}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if _, ok := history.Get("2025-06-10"); ok {
		t.Error("empty upsert should have deleted the day")
	}
	if history.Len() != 0 {
		t.Errorf("Len() = %d, want 0", history.Len())
	}

	hs, _ := store.LoadHistory()
	if len(hs.Days) != 0 {
		t.Errorf("persisted days = %d, want 0 after prune", len(hs.Days))
	}

	// Pruning an absent day is a harmless no-op.
	if err := history.Upsert("2025-01-01", storage.DayRecord{}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
}

func TestHistoryQuery(t *testing.T) {
	tracker, _ := newTestTracker(t, noon)
	history := tracker.History

	for _, key := range []DayKey{"2025-06-08", "2025-06-09", "2025-06-10", "2025-06-12"} {
		history.Upsert(key, record(noon, entry("Run", true)))
	}

	rows := history.Query("2025-06-09", "2025-06-11", false)
	if len(rows) != 2 {
		t.Fatalf("Query() returned %d rows, want 2", len(rows))
	}
	if rows[0].Key != "2025-06-09" || rows[1].Key != "2025-06-10" {
		t.Errorf("ascending order = [%s, %s], want [2025-06-09, 2025-06-10]", rows[0].Key, rows[1].Key)
	}

	rows = history.Query("2025-06-09", "2025-06-11", true)
	if rows[0].Key != "2025-06-10" || rows[1].Key != "2025-06-09" {
		t.Errorf("descending order = [%s, %s], want [2025-06-10, 2025-06-09]", rows[0].Key, rows[1].Key)
	}

	// Bounds are inclusive on both ends.
	rows = history.Query("2025-06-08", "2025-06-08", false)
	if len(rows) != 1 {
		t.Errorf("single-day query returned %d rows, want 1", len(rows))
	}

	// Empty range
	if rows := history.Query("2025-07-01", "2025-07-31", false); rows != nil {
		t.Errorf("out-of-range query returned %d rows, want none", len(rows))
	}
}

func TestHistoryAll(t *testing.T) {
	tracker, _ := newTestTracker(t, noon)
	history := tracker.History

	if rows := history.All(false); rows != nil {
		t.Errorf("All() on empty archive = %v, want nil", rows)
	}

	history.Upsert("2025-06-10", record(noon, entry("Run", true)))
	history.Upsert("2025-06-08", record(noon, entry("Run", false)))

	rows := history.All(false)
	if len(rows) != 2 || rows[0].Key != "2025-06-08" {
		t.Errorf("All(asc) order wrong: %v", rows)
	}
	rows = history.All(true)
	if rows[0].Key != "2025-06-10" {
		t.Errorf("All(desc) first = %s, want 2025-06-10", rows[0].Key)
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"empty", 0, 0, 0},
		{"none done", 0, 3, 0},
		{"all done", 3, 3, 100},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"half", 1, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := storage.DayRecord{TotalCount: tt.total, CompletedCount: tt.completed}
			if got := CompletionRate(rec); got != tt.want {
				t.Errorf("CompletionRate(%d/%d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	tracker, _ := newTestTracker(t, noon)
	history := tracker.History

	// Empty archive
	sum := history.Summary()
	if sum.TotalDays != 0 || sum.CompletionRate != 0 || sum.TopActivity != "" {
		t.Errorf("empty Summary() = %+v, want zero value", sum)
	}

	// Run: 2/2 done. Read: 1/2 done.
	history.Upsert("2025-06-09", record(noon, entry("Run", true), entry("Read", false)))
	history.Upsert("2025-06-10", record(noon, entry("Run", true), entry("Read", true)))

	sum = history.Summary()
	if sum.TotalDays != 2 {
		t.Errorf("TotalDays = %d, want 2", sum.TotalDays)
	}
	if sum.TotalEntries != 4 {
		t.Errorf("TotalEntries = %d, want 4", sum.TotalEntries)
	}
	if sum.CompletedCount != 3 {
		t.Errorf("CompletedCount = %d, want 3", sum.CompletedCount)
	}
	if sum.CompletionRate != 75 {
		t.Errorf("CompletionRate = %d, want 75", sum.CompletionRate)
	}
	if sum.TopActivity != "Run" {
		t.Errorf("TopActivity = %q, want Run", sum.TopActivity)
	}
	if sum.TopActivityRate != 100 {
		t.Errorf("TopActivityRate = %d, want 100", sum.TopActivityRate)
	}
}

func TestSummary_TieKeepsFirstSeen(t *testing.T) {
	tracker, _ := newTestTracker(t, noon)
	history := tracker.History

	// Both at 100%, Read appears first in the earliest day's entry order.
	history.Upsert("2025-06-09", record(noon, entry("Read", true), entry("Run", true)))
	history.Upsert("2025-06-10", record(noon, entry("Run", true), entry("Read", true)))

	sum := history.Summary()
	if sum.TopActivity != "Read" {
		t.Errorf("TopActivity = %q, want first-seen Read on tie", sum.TopActivity)
	}
}
