package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"daylist/internal/checklist"
	"daylist/internal/storage"
)

func testRows() []checklist.DayRow {
	morning := time.Date(2025, 6, 10, 9, 30, 15, 0, time.Local)
	return []checklist.DayRow{
		{
			Key: "2025-06-09",
			Record: storage.DayRecord{
				Entries: []storage.HistoryEntry{
					{ID: "t_1", Name: "Run", Completed: true, Timestamp: morning.AddDate(0, 0, -1)},
					{ID: "t_2", Name: "Read", Completed: false, Timestamp: morning.AddDate(0, 0, -1)},
					{ID: "t_3", Name: "Meditate", Completed: true, Timestamp: morning.AddDate(0, 0, -1)},
				},
				TotalCount:     3,
				CompletedCount: 2,
			},
		},
		{
			Key: "2025-06-10",
			Record: storage.DayRecord{
				Entries: []storage.HistoryEntry{
					{ID: "t_1", Name: "Run", Completed: true, Timestamp: morning},
				},
				TotalCount:     1,
				CompletedCount: 1,
			},
		},
	}
}

func TestCSV(t *testing.T) {
	data, err := CSV(testRows())
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	// Header plus one row per (day, entry) pair.
	if len(records) != 5 {
		t.Fatalf("len(records) = %d, want 5", len(records))
	}

	wantHeader := []string{"Date", "Activity Name", "Status", "Time", "Completion Rate"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	// First data row: Run on 2025-06-09, completed, day at 67%.
	row := records[1]
	if row[0] != "2025-06-09" {
		t.Errorf("Date = %q, want 2025-06-09", row[0])
	}
	if row[1] != "Run" {
		t.Errorf("Activity Name = %q, want Run", row[1])
	}
	if row[2] != "Completed" {
		t.Errorf("Status = %q, want Completed", row[2])
	}
	if row[3] != "09:30:15" {
		t.Errorf("Time = %q, want 09:30:15", row[3])
	}
	if row[4] != "67%" {
		t.Errorf("Completion Rate = %q, want 67%%", row[4])
	}

	// Unchecked entry renders as Incomplete with the same day rate.
	if records[2][2] != "Incomplete" {
		t.Errorf("Status = %q, want Incomplete", records[2][2])
	}
	if records[2][4] != "67%" {
		t.Errorf("Completion Rate = %q, want repeated 67%%", records[2][4])
	}

	// Second day at 100%.
	if records[4][0] != "2025-06-10" || records[4][4] != "100%" {
		t.Errorf("last row = %v, want 2025-06-10 at 100%%", records[4])
	}
}

func TestCSV_EmptyHistory(t *testing.T) {
	data, err := CSV(nil)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export has %d lines, want header only", len(lines))
	}
}

func TestCSV_QuotesSpecialCharacters(t *testing.T) {
	rows := []checklist.DayRow{{
		Key: "2025-06-10",
		Record: storage.DayRecord{
			Entries: []storage.HistoryEntry{
				{Name: `Call "mom", then dad`, Completed: true, Timestamp: time.Now()},
			},
			TotalCount:     1,
			CompletedCount: 1,
		},
	}}

	data, err := CSV(rows)
	if err != nil {
		t.Fatalf("CSV() error = %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if records[1][1] != `Call "mom", then dad` {
		t.Errorf("name = %q, quoting broke the roundtrip", records[1][1])
	}
}

func TestDefaultFilename(t *testing.T) {
	got := DefaultFilename("2025-06-10")
	if got != "activity-history-2025-06-10.csv" {
		t.Errorf("DefaultFilename() = %q, want activity-history-2025-06-10.csv", got)
	}
}
