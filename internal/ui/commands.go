// Package ui provides terminal user interface components for the daylist app.
// This file contains tea.Cmd factories for work that runs off the event
// loop. The export command receives value-copied history rows, so it never
// races with checklist mutations happening on the loop.
package ui

import (
	"time"

	"daylist/internal/checklist"
	"daylist/internal/export"
	"daylist/internal/fsutil"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd returns a command that sends a tick every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// exportHistoryCmd writes the given rows as CSV to path.
func exportHistoryCmd(rows []checklist.DayRow, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := export.CSV(rows)
		if err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		if err := fsutil.WriteFileAtomic(path, data, 0600); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		return exportDoneMsg{path: path, days: len(rows)}
	}
}
