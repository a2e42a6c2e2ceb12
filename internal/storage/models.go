package storage

import "time"

// Task is a single recurring checklist item. Tasks survive the daily
// rollover; only their Completed flag is cleared.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskStore holds the live checklist, in user-controlled order.
type TaskStore struct {
	Tasks []Task `json:"tasks"`
}

// HistoryEntry is a point-in-time snapshot of one task inside a day record.
// It is a value copy and never aliases the live task.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// DayRecord is one day's archived checklist state.
// CompletedCount is always the number of completed Entries,
// so 0 <= CompletedCount <= TotalCount.
type DayRecord struct {
	Entries        []HistoryEntry `json:"entries"`
	TotalCount     int            `json:"total_count"`
	CompletedCount int            `json:"completed_count"`
}

// HistoryStore maps YYYY-MM-DD day keys to day records. Records with a
// zero TotalCount are never stored.
type HistoryStore struct {
	Days map[string]DayRecord `json:"days"`
}

// RolloverState remembers when the daily reset last ran. Nil means the
// reset has never run.
type RolloverState struct {
	LastRolloverInstant *time.Time `json:"last_rollover_instant,omitempty"`
}
