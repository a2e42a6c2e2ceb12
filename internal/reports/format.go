package reports

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatMarkdown renders a range report as human-readable Markdown,
// most recent day first.
func FormatMarkdown(r *RangeReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Checklist history %s — %s\n\n", r.Start, r.End)

	if len(r.Days) == 0 {
		b.WriteString("No history records found for this period.\n")
		return b.String()
	}

	for _, day := range r.Days {
		fmt.Fprintf(&b, "## %s — %d%% complete (%d/%d)\n\n",
			day.Date, day.CompletionRate, day.CompletedCount, day.TotalCount)
		for _, e := range day.Entries {
			mark := "[ ]"
			if e.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(&b, "- %s %s (%s)\n", mark, e.Name, e.Timestamp.Local().Format("15:04"))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "Days tracked: %d\n\n", r.Summary.TotalDays)
	fmt.Fprintf(&b, "Overall completion: %d%%\n", r.Summary.CompletionRate)
	if r.Summary.TopActivity != "" {
		fmt.Fprintf(&b, "\nMost completed: %s (%d%%)\n", r.Summary.TopActivity, r.Summary.TopActivityRate)
	}

	return b.String()
}

// FormatJSON renders a range report as indented JSON.
func FormatJSON(r *RangeReport) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
