// Package ui provides terminal user interface components for the daylist app.
package ui

import (
	"fmt"
	"strings"

	"daylist/internal/checklist"
	"daylist/internal/config"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// HistoryPane browses recorded days, newest first, with the selected
// day's activities shown beneath the day list.
type HistoryPane struct {
	history *checklist.History
	rows    []checklist.DayRow
	window  int // how many days back to show
	cursor  int
	focused bool
	width   int
	height  int
	styles  *Styles

	// Key bindings
	keys HistoryKeyMap
}

// NewHistoryPane creates a new history pane showing the last window days.
func NewHistoryPane(history *checklist.History, window int, styles *Styles) *HistoryPane {
	return NewHistoryPaneWithKeys(history, window, styles, &config.KeysConfig{})
}

// NewHistoryPaneWithKeys creates a new history pane with custom key bindings.
func NewHistoryPaneWithKeys(history *checklist.History, window int, styles *Styles, keyCfg *config.KeysConfig) *HistoryPane {
	if window <= 0 {
		window = 30
	}
	return &HistoryPane{
		history: history,
		window:  window,
		styles:  styles,
		keys:    NewHistoryKeyMap(keyCfg),
	}
}

// Refresh re-queries the archive for the display window ending today.
// Called after any mutation that can change recorded days (edits,
// rollover, undo).
func (p *HistoryPane) Refresh(today checklist.DayKey) {
	start := today
	for i := 1; i < p.window; i++ {
		start = start.Prev()
	}
	p.rows = p.history.Query(start, today, true)
	if p.cursor >= len(p.rows) {
		p.cursor = max(0, len(p.rows)-1)
	}
}

// SetSize sets the pane dimensions.
func (p *HistoryPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *HistoryPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *HistoryPane) IsFocused() bool {
	return p.focused
}

// SelectedDay returns the day under the cursor, if any.
func (p *HistoryPane) SelectedDay() (checklist.DayRow, bool) {
	if len(p.rows) == 0 || p.cursor < 0 || p.cursor >= len(p.rows) {
		return checklist.DayRow{}, false
	}
	return p.rows[p.cursor], true
}

// Update handles messages for the history pane.
func (p *HistoryPane) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.cursor = max(p.cursor-1, 0)
		case tea.MouseButtonWheelDown:
			if len(p.rows) > 0 {
				p.cursor = min(p.cursor+1, len(p.rows)-1)
			}
		}
		return nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Down):
			if len(p.rows) > 0 {
				p.cursor = min(p.cursor+1, len(p.rows)-1)
			}

		case key.Matches(msg, p.keys.Up):
			if len(p.rows) > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if len(p.rows) > 0 {
				p.cursor = len(p.rows) - 1
			}
		}
	}

	return nil
}

// View renders the history pane.
func (p *HistoryPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("📅 HISTORY")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	if len(p.rows) == 0 {
		b.WriteString("\n")
		b.WriteString(p.styles.StatLabelStyle.Render("  No days recorded yet."))
		b.WriteString("\n")
		b.WriteString(p.styles.StatLabelStyle.Render("  Check something off to start."))
		b.WriteString("\n")
	} else {
		// Split the pane: day list on top, selected day's entries below.
		listRows := (p.height - 6) / 2
		if listRows < 3 {
			listRows = 3
		}

		startIdx := 0
		if p.cursor >= listRows {
			startIdx = p.cursor - listRows + 1
		}

		for i, row := range p.rows {
			if i < startIdx || i >= startIdx+listRows {
				continue
			}

			rate := checklist.CompletionRate(row.Record)
			badge := p.styles.RateStyle(rate).Render(fmt.Sprintf("%3d%%", rate))
			line := fmt.Sprintf("  %s  %d/%d  %s",
				row.Key, row.Record.CompletedCount, row.Record.TotalCount, badge)

			if i == p.cursor && p.focused {
				line = p.styles.TaskSelectedStyle.Render(line)
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		// Selected day detail
		if row, ok := p.SelectedDay(); ok {
			b.WriteString("\n")
			b.WriteString("  " + p.styles.StatValueStyle.Render(row.Key.String()))
			b.WriteString("\n")

			availableWidth := p.width - 10
			if availableWidth < 5 {
				availableWidth = 5
			}
			for _, e := range row.Record.Entries {
				icon := p.styles.EntryUndoneIcon
				if e.Completed {
					icon = p.styles.EntryDoneIcon
				}
				name := runewidth.Truncate(e.Name, availableWidth, "..")
				b.WriteString("  " + icon + " " + name)
				b.WriteString("\n")
			}
		}
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}
