package reports

import (
	"time"

	"daylist/internal/checklist"
)

// Generator creates reports from the history archive.
type Generator struct {
	history *checklist.History
}

// NewGenerator creates a new report generator.
func NewGenerator(history *checklist.History) *Generator {
	return &Generator{history: history}
}

// GenerateRange builds a report for the inclusive day range. Days with
// no archived record are omitted rather than padded.
func (g *Generator) GenerateRange(start, end checklist.DayKey) *RangeReport {
	rows := g.history.Query(start, end, true)

	days := make([]DaySummary, 0, len(rows))
	for _, row := range rows {
		day := DaySummary{
			Date:           row.Key.String(),
			TotalCount:     row.Record.TotalCount,
			CompletedCount: row.Record.CompletedCount,
			CompletionRate: checklist.CompletionRate(row.Record),
			Entries:        make([]EntrySummary, 0, len(row.Record.Entries)),
		}
		for _, e := range row.Record.Entries {
			day.Entries = append(day.Entries, EntrySummary{
				Name:      e.Name,
				Completed: e.Completed,
				Timestamp: e.Timestamp,
			})
		}
		days = append(days, day)
	}

	return &RangeReport{
		Start:       start.String(),
		End:         end.String(),
		Days:        days,
		Summary:     g.history.Summary(),
		GeneratedAt: time.Now(),
	}
}

// LastDays builds a report covering the n calendar days ending at the
// day key for now.
func (g *Generator) LastDays(now time.Time, resetHour, n int) *RangeReport {
	end := checklist.KeyFor(now, resetHour)
	start := checklist.DayKey(end.Time().AddDate(0, 0, -(n - 1)).Format("2006-01-02"))
	return g.GenerateRange(start, end)
}
