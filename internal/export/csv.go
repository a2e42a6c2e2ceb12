// Package export renders the history archive as flat tabular text for
// use outside the app.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"daylist/internal/checklist"
)

// csvHeader matches the export format of the original tracker: one row
// per (day, entry) pair.
var csvHeader = []string{"Date", "Activity Name", "Status", "Time", "Completion Rate"}

// WriteCSV writes the given history rows to w as CSV. Rows are expected
// in ascending day order (History.Query with desc=false); each day's
// completion rate is repeated on every row of that day. Entry times are
// rendered in local time.
func WriteCSV(w io.Writer, rows []checklist.DayRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range rows {
		rate := checklist.CompletionRate(row.Record)
		for _, e := range row.Record.Entries {
			status := "Incomplete"
			if e.Completed {
				status = "Completed"
			}
			record := []string{
				row.Key.String(),
				e.Name,
				status,
				e.Timestamp.Local().Format("15:04:05"),
				fmt.Sprintf("%d%%", rate),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSV renders the rows to a byte slice.
func CSV(rows []checklist.DayRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultFilename returns the suggested export filename for a given day
// key, matching the original "activity-history-YYYY-MM-DD.csv" shape.
func DefaultFilename(today checklist.DayKey) string {
	return fmt.Sprintf("activity-history-%s.csv", today)
}
