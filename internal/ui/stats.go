// Package ui provides terminal user interface components for the daylist app.
package ui

import (
	"fmt"
	"strings"
	"time"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/export"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// StatsPane shows aggregate history statistics and hosts the CSV export.
type StatsPane struct {
	history  *checklist.History
	rollover *checklist.Rollover
	summary  checklist.Summary
	focused  bool
	width    int
	height   int
	styles   *Styles

	// Key bindings
	keys StatsKeyMap
}

// NewStatsPane creates a new stats pane.
func NewStatsPane(history *checklist.History, rollover *checklist.Rollover, styles *Styles) *StatsPane {
	return NewStatsPaneWithKeys(history, rollover, styles, &config.KeysConfig{})
}

// NewStatsPaneWithKeys creates a new stats pane with custom key bindings.
func NewStatsPaneWithKeys(history *checklist.History, rollover *checklist.Rollover, styles *Styles, keyCfg *config.KeysConfig) *StatsPane {
	p := &StatsPane{
		history:  history,
		rollover: rollover,
		styles:   styles,
		keys:     NewStatsKeyMap(keyCfg),
	}
	p.Refresh()
	return p
}

// Refresh recomputes the summary from the archive.
func (p *StatsPane) Refresh() {
	p.summary = p.history.Summary()
}

// SetSize sets the pane dimensions.
func (p *StatsPane) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetFocused sets whether this pane is focused.
func (p *StatsPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *StatsPane) IsFocused() bool {
	return p.focused
}

// Update handles messages for the stats pane.
func (p *StatsPane) Update(msg tea.Msg) tea.Cmd {
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Export) {
			return p.exportCmd(time.Now())
		}
	}

	return nil
}

// exportCmd snapshots the full archive and writes it off the event loop.
// The rows are value copies, so later mutations cannot race the write.
func (p *StatsPane) exportCmd(now time.Time) tea.Cmd {
	rows := p.history.All(false)
	if len(rows) == 0 {
		return nil
	}
	filename := export.DefaultFilename(p.rollover.CurrentKey(now))
	return exportHistoryCmd(rows, filename)
}

// View renders the stats pane.
func (p *StatsPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("📊 STATS")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(p.styles.StatLabelStyle.Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n\n")

	if p.summary.TotalDays == 0 {
		b.WriteString(p.styles.StatLabelStyle.Render("  No history yet."))
		b.WriteString("\n")
		b.WriteString(p.styles.StatLabelStyle.Render("  Stats appear after your first day."))
		b.WriteString("\n")
	} else {
		b.WriteString(p.statLine("Days tracked", fmt.Sprintf("%d", p.summary.TotalDays)))
		b.WriteString(p.statLine("Activities logged", fmt.Sprintf("%d", p.summary.TotalEntries)))
		b.WriteString(p.statLine("Completed", fmt.Sprintf("%d", p.summary.CompletedCount)))

		rate := fmt.Sprintf("%d%%", p.summary.CompletionRate)
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Overall rate: ") +
			p.styles.RateStyle(p.summary.CompletionRate).Render(rate))
		b.WriteString("\n")

		if p.summary.TopActivity != "" {
			b.WriteString("\n")
			nameWidth := p.width - 12
			if nameWidth < 5 {
				nameWidth = 5
			}
			name := runewidth.Truncate(p.summary.TopActivity, nameWidth, "..")
			b.WriteString("  " + p.styles.StatLabelStyle.Render("Most completed:"))
			b.WriteString("\n")
			b.WriteString("  " + p.styles.StatValueStyle.Render(name) +
				p.styles.StatLabelStyle.Render(fmt.Sprintf(" (%d%%)", p.summary.TopActivityRate)))
			b.WriteString("\n")
		}

		if last := p.rollover.LastRollover(); last != nil {
			b.WriteString("\n")
			b.WriteString(p.statLine("Last reset", last.Local().Format("Jan 2 15:04")))
		}

		b.WriteString("\n")
		b.WriteString("  " + p.styles.StatLabelStyle.Render("Press 's' to export CSV"))
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

func (p *StatsPane) statLine(label, value string) string {
	return "  " + p.styles.StatLabelStyle.Render(label+": ") + p.styles.StatValueStyle.Render(value) + "\n"
}
