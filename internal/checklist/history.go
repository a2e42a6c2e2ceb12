package checklist

import (
	"math"
	"sort"

	"daylist/internal/storage"
)

// DayRow pairs a day key with its record for range queries.
type DayRow struct {
	Key    DayKey
	Record storage.DayRecord
}

// Summary aggregates the whole archive.
type Summary struct {
	TotalDays      int `json:"total_days"`
	TotalEntries   int `json:"total_entries"`
	CompletedCount int `json:"completed_count"`
	// CompletionRate is the overall integer percentage of completed
	// entries, 0 when the archive is empty.
	CompletionRate int `json:"completion_rate"`
	// TopActivity is the task name with the highest per-name completion
	// ratio across all days; ties keep the first name seen walking days
	// in ascending key order. Empty when there is no history.
	TopActivity     string `json:"top_activity,omitempty"`
	TopActivityRate int    `json:"top_activity_rate,omitempty"`
}

// History is the append-only-by-day archive of checklist state, keyed
// by day. The record for the current day is overwritten in place on
// every mutation; older records are left alone except for backfilling
// a missed day.
type History struct {
	store *storage.Storage
	days  map[string]storage.DayRecord
}

// NewHistory loads the archive from storage. The archive is always
// usable; a non-nil error is a recovery warning.
func NewHistory(store *storage.Storage) (*History, error) {
	hs, err := store.LoadHistory()
	return &History{store: store, days: hs.Days}, err
}

// Len returns the number of archived days.
func (h *History) Len() int {
	return len(h.days)
}

// Get returns the record for a day, if present.
func (h *History) Get(key DayKey) (storage.DayRecord, bool) {
	rec, ok := h.days[string(key)]
	return rec, ok
}

// Upsert overwrites (not merges) the record at key and persists the
// archive. A record with no entries deletes any existing record instead:
// empty days must not survive in the archive.
func (h *History) Upsert(key DayKey, rec storage.DayRecord) error {
	if rec.TotalCount == 0 {
		delete(h.days, string(key))
	} else {
		h.days[string(key)] = rec
	}
	return h.persist()
}

func (h *History) persist() error {
	return h.store.SaveHistory(&storage.HistoryStore{Days: h.days})
}

// Query returns the records with start <= key <= end, most recent first
// when desc is set (display order) or oldest first otherwise (export
// order).
func (h *History) Query(start, end DayKey, desc bool) []DayRow {
	var rows []DayRow
	for k, rec := range h.days {
		if k < string(start) || k > string(end) {
			continue
		}
		rows = append(rows, DayRow{Key: DayKey(k), Record: rec})
	}
	sort.Slice(rows, func(i, j int) bool {
		if desc {
			return rows[j].Key.Before(rows[i].Key)
		}
		return rows[i].Key.Before(rows[j].Key)
	})
	return rows
}

// All returns every record, sorted like Query.
func (h *History) All(desc bool) []DayRow {
	if len(h.days) == 0 {
		return nil
	}
	var min, max string
	for k := range h.days {
		if min == "" || k < min {
			min = k
		}
		if k > max {
			max = k
		}
	}
	return h.Query(DayKey(min), DayKey(max), desc)
}

// CompletionRate returns a day's completion as an integer percentage.
func CompletionRate(rec storage.DayRecord) int {
	if rec.TotalCount == 0 {
		return 0
	}
	return int(math.Round(float64(rec.CompletedCount) / float64(rec.TotalCount) * 100))
}

// Summary aggregates all archived days. Per-name statistics are
// accumulated walking days in ascending key order and entries in
// recorded order, which makes the first-seen tie-break deterministic.
func (h *History) Summary() Summary {
	sum := Summary{TotalDays: len(h.days)}

	type nameStat struct {
		completed int
		total     int
	}
	stats := make(map[string]*nameStat)
	var firstSeen []string

	for _, row := range h.All(false) {
		sum.TotalEntries += row.Record.TotalCount
		sum.CompletedCount += row.Record.CompletedCount
		for _, e := range row.Record.Entries {
			st, ok := stats[e.Name]
			if !ok {
				st = &nameStat{}
				stats[e.Name] = st
				firstSeen = append(firstSeen, e.Name)
			}
			st.total++
			if e.Completed {
				st.completed++
			}
		}
	}

	if sum.TotalEntries > 0 {
		sum.CompletionRate = int(math.Round(float64(sum.CompletedCount) / float64(sum.TotalEntries) * 100))
	}

	best := -1.0
	for _, name := range firstSeen {
		st := stats[name]
		rate := float64(st.completed) / float64(st.total)
		if rate > best {
			best = rate
			sum.TopActivity = name
			sum.TopActivityRate = int(math.Round(rate * 100))
		}
	}
	return sum
}
