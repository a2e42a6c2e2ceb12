// Package reports provides history report generation for daylist.
// Reports aggregate archived day records over a date range.
package reports

import (
	"time"

	"daylist/internal/checklist"
)

// DaySummary describes one archived day inside a report.
type DaySummary struct {
	Date           string         `json:"date"`
	TotalCount     int            `json:"total_count"`
	CompletedCount int            `json:"completed_count"`
	CompletionRate int            `json:"completion_rate"`
	Entries        []EntrySummary `json:"entries"`
}

// EntrySummary describes one task snapshot inside a day.
type EntrySummary struct {
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	Timestamp time.Time `json:"timestamp"`
}

// RangeReport contains the archived days between Start and End
// inclusive, most recent first, plus the whole-archive summary.
type RangeReport struct {
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Days        []DaySummary      `json:"days"`
	Summary     checklist.Summary `json:"summary"`
	GeneratedAt time.Time         `json:"generated_at"`
}
