package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"daylist/internal/storage"
)

// newTestManager seeds a data directory with a small checklist and
// history, then returns a manager over it.
func newTestManager(t *testing.T) (*Manager, *storage.Storage) {
	t.Helper()
	dataDir := t.TempDir()
	store, err := storage.New(dataDir)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	store.SaveTasks(&storage.TaskStore{Tasks: []storage.Task{
		{ID: "t_1", Name: "Run", Completed: true, CreatedAt: now},
		{ID: "t_2", Name: "Read", Completed: false, CreatedAt: now},
	}})
	store.SaveHistory(&storage.HistoryStore{Days: map[string]storage.DayRecord{
		"2025-06-09": {
			Entries:        []storage.HistoryEntry{{ID: "t_1", Name: "Run", Completed: true, Timestamp: now}},
			TotalCount:     1,
			CompletedCount: 1,
		},
	}})

	return NewManager(dataDir, "test"), store
}

func TestCreate(t *testing.T) {
	manager, _ := newTestManager(t)

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if name == "" {
		t.Fatal("Create() returned empty name")
	}

	info, err := manager.Get(name)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if info.Stats["tasks"] != 2 {
		t.Errorf("Stats[tasks] = %d, want 2", info.Stats["tasks"])
	}
	if info.Stats["days"] != 1 {
		t.Errorf("Stats[days] = %d, want 1", info.Stats["days"])
	}

	// Every data file plus the manifest is in the snapshot directory.
	for _, filename := range append([]string{ManifestFile}, storage.DataFiles...) {
		if _, err := os.Stat(filepath.Join(info.Path, filename)); err != nil {
			t.Errorf("snapshot missing %s: %v", filename, err)
		}
	}
}

func TestList(t *testing.T) {
	manager, _ := newTestManager(t)

	backups, err := manager.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("List() on fresh dir = %d backups, want 0", len(backups))
	}

	first, _ := manager.Create()
	time.Sleep(5 * time.Millisecond)
	second, _ := manager.Create()

	backups, err = manager.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("List() = %d backups, want 2", len(backups))
	}
	// Newest first
	if backups[0].Name != second || backups[1].Name != first {
		t.Errorf("List() order = [%s, %s], want newest first", backups[0].Name, backups[1].Name)
	}
}

func TestList_FallsBackWithoutManifest(t *testing.T) {
	manager, _ := newTestManager(t)

	name, _ := manager.Create()
	os.Remove(filepath.Join(manager.backupDir, name, ManifestFile))

	backups, err := manager.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("List() = %d backups, want 1", len(backups))
	}
	if backups[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not recovered from snapshot name")
	}
}

func TestRestore(t *testing.T) {
	manager, store := newTestManager(t)

	name, err := manager.Create()
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Wreck the live data.
	if err := store.SaveTasks(&storage.TaskStore{Tasks: []storage.Task{}}); err != nil {
		t.Fatalf("SaveTasks() error = %v", err)
	}

	if err := manager.Restore(name); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	ts, err := store.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks() error = %v", err)
	}
	if len(ts.Tasks) != 2 {
		t.Errorf("restored tasks = %d, want 2", len(ts.Tasks))
	}

	// A safety snapshot of the pre-restore state was created.
	backups, _ := manager.List()
	if len(backups) != 2 {
		t.Errorf("List() = %d backups after restore, want 2 (original + safety)", len(backups))
	}
}

func TestRestore_NotFound(t *testing.T) {
	manager, _ := newTestManager(t)

	if err := manager.Restore("2025-01-01_000000_000"); err == nil {
		t.Error("Restore() expected error for missing backup")
	}
}

func TestRestore_RejectsBadNames(t *testing.T) {
	manager, _ := newTestManager(t)

	for _, name := range []string{"", "../escape", "not-a-timestamp", "2025-01-01_000000/../x"} {
		if err := manager.Restore(name); err == nil {
			t.Errorf("Restore(%q) expected error", name)
		}
	}
}

func TestRestoreLatest(t *testing.T) {
	manager, store := newTestManager(t)

	if err := manager.RestoreLatest(); err == nil {
		t.Error("RestoreLatest() expected error with no backups")
	}

	manager.Create()
	store.SaveTasks(&storage.TaskStore{Tasks: []storage.Task{}})

	if err := manager.RestoreLatest(); err != nil {
		t.Fatalf("RestoreLatest() error = %v", err)
	}
	ts, _ := store.LoadTasks()
	if len(ts.Tasks) != 2 {
		t.Errorf("restored tasks = %d, want 2", len(ts.Tasks))
	}
}

func TestDelete(t *testing.T) {
	manager, _ := newTestManager(t)

	name, _ := manager.Create()
	if err := manager.Delete(name); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	backups, _ := manager.List()
	if len(backups) != 0 {
		t.Errorf("List() = %d backups after delete, want 0", len(backups))
	}

	if err := manager.Delete(name); err == nil {
		t.Error("Delete() expected error for already-deleted backup")
	}
}

func TestPrune(t *testing.T) {
	manager, _ := newTestManager(t)

	var names []string
	for i := 0; i < 4; i++ {
		name, err := manager.Create()
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		names = append(names, name)
		time.Sleep(5 * time.Millisecond)
	}

	deleted, err := manager.Prune(2)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("Prune() deleted %d, want 2", deleted)
	}

	backups, _ := manager.List()
	if len(backups) != 2 {
		t.Fatalf("List() = %d backups after prune, want 2", len(backups))
	}
	// The two newest survive.
	if backups[0].Name != names[3] || backups[1].Name != names[2] {
		t.Errorf("survivors = [%s, %s], want the two newest", backups[0].Name, backups[1].Name)
	}

	// Pruning below the count is a no-op.
	if deleted, _ := manager.Prune(5); deleted != 0 {
		t.Errorf("Prune(5) deleted %d, want 0", deleted)
	}

	if _, err := manager.Prune(-1); err == nil {
		t.Error("Prune(-1) expected error")
	}
}

func TestParseSnapshotName(t *testing.T) {
	got, err := parseSnapshotName("2025-06-10_120000_500")
	if err != nil {
		t.Fatalf("parseSnapshotName() error = %v", err)
	}
	want := time.Date(2025, 6, 10, 12, 0, 0, 500e6, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseSnapshotName() = %v, want %v", got, want)
	}

	// Legacy names without the millisecond suffix still parse.
	if _, err := parseSnapshotName("2025-06-10_120000"); err != nil {
		t.Errorf("parseSnapshotName(legacy) error = %v", err)
	}

	for _, bad := range []string{"", "yesterday", "2025-06-10_120000_abc", "2025-06-10_120000_9999"} {
		if _, err := parseSnapshotName(bad); err == nil {
			t.Errorf("parseSnapshotName(%q) expected error", bad)
		}
	}
}
