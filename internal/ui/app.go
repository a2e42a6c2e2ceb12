// Package ui provides terminal user interface components for the daylist app.
// This file contains the main App model which coordinates all panes and
// routes messages using the Bubble Tea architecture.
//
// Checklist mutations run synchronously inside Update: the event loop is
// the only writer of the live list, so there are no load-modify-save races
// and the current day's history record always mirrors what is on screen.
package ui

import (
	"fmt"
	"strings"
	"time"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PaneID identifies each pane in the application.
type PaneID int

const (
	PaneChecklist PaneID = iota
	PaneHistory
	PaneStats
)

// LayoutMode determines how panes are arranged based on terminal width.
type LayoutMode int

const (
	// LayoutWide shows all three panes side-by-side.
	LayoutWide LayoutMode = iota
	// LayoutNarrow shows only the focused pane with a tab bar.
	LayoutNarrow
)

// AppConfig holds user configuration for the app behavior.
type AppConfig struct {
	Keys                  *config.KeysConfig
	ConfirmDeletions      bool
	ShowOnboarding        bool
	NarrowLayoutThreshold int
	HistoryDays           int
	RolloverInterval      int // seconds between day-boundary checks
}

// App is the main application model that coordinates all panes.
type App struct {
	tracker       *checklist.Tracker
	storage       *storage.Storage
	styles        *Styles
	config        *AppConfig
	checklistPane *ChecklistPane
	historyPane   *HistoryPane
	statsPane     *StatsPane
	helpOverlay   *HelpOverlay
	undoManager   *UndoManager
	confirmDel    bool
	confirmBody   string
	activePane    PaneID
	layoutMode    LayoutMode
	showHelp      bool
	showWelcome   bool
	width         int
	height        int
	status        string
	statusErr     bool
	statusUntil   time.Time
	quitting      bool
	lastBoundary  time.Time // when the rollover boundary was last checked

	// Key bindings
	keys     GlobalKeyMap
	helpKeys HelpKeyMap

	// Pane positions for mouse click detection (x coordinates)
	checklistPaneStart int
	checklistPaneEnd   int
	historyPaneStart   int
	historyPaneEnd     int
	statsPaneStart     int
	statsPaneEnd       int
	contentTop         int // Y coordinate where content starts
}

// NewApp creates a new application around an opened tracker.
func NewApp(tracker *checklist.Tracker, store *storage.Storage, styles *Styles, cfg *AppConfig) *App {
	// Use default config if nil
	if cfg == nil {
		cfg = &AppConfig{
			Keys:                  &config.KeysConfig{},
			ConfirmDeletions:      true,
			ShowOnboarding:        true,
			NarrowLayoutThreshold: 80,
			HistoryDays:           30,
			RolloverInterval:      60,
		}
	}
	if cfg.Keys == nil {
		cfg.Keys = &config.KeysConfig{}
	}

	// Create panes with config-aware key bindings
	checklistPane := NewChecklistPaneWithKeys(tracker.List, styles, cfg.Keys)
	historyPane := NewHistoryPaneWithKeys(tracker.History, cfg.HistoryDays, styles, cfg.Keys)
	statsPane := NewStatsPaneWithKeys(tracker.History, tracker.Rollover, styles, cfg.Keys)
	helpOverlay := NewHelpOverlay(styles)

	// Determine if we should show welcome screen
	showWelcome := cfg.ShowOnboarding && tracker.List.Len() == 0 && tracker.History.Len() == 0

	app := &App{
		tracker:       tracker,
		storage:       store,
		styles:        styles,
		config:        cfg,
		checklistPane: checklistPane,
		historyPane:   historyPane,
		statsPane:     statsPane,
		helpOverlay:   helpOverlay,
		undoManager:   NewUndoManager(),
		activePane:    PaneChecklist,
		showHelp:      false,
		showWelcome:   showWelcome,
		lastBoundary:  store.Now(),
		keys:          NewGlobalKeyMap(cfg.Keys),
		helpKeys:      DefaultHelpKeyMap(),
	}

	checklistPane.SetCallbacks(app.SetStatus, app.pushAction)
	historyPane.Refresh(app.todayKey())

	// Set initial focus
	checklistPane.SetFocused(true)
	historyPane.SetFocused(false)
	statsPane.SetFocused(false)

	return app
}

func (a *App) todayKey() checklist.DayKey {
	return a.tracker.Rollover.CurrentKey(a.storage.Now())
}

// pushAction records a mutation for undo. Derived panes are refreshed by
// refreshDerived after every checklist interaction.
func (a *App) pushAction(action *UndoableAction) {
	a.undoManager.Push(action)
}

// refreshDerived recomputes the history and stats views after anything
// that may have changed the archive.
func (a *App) refreshDerived() {
	a.historyPane.Refresh(a.todayKey())
	a.statsPane.Refresh()
	a.checklistPane.ClampCursor()
}

// Init starts the clock.
func (a *App) Init() tea.Cmd {
	return tickCmd()
}

// Update handles all messages and routes them appropriately.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			a.SetStatus("Export failed: "+msg.err.Error(), true)
		} else {
			a.SetStatus(fmt.Sprintf("Exported %d days to %s", msg.days, msg.path), false)
		}
		return a, nil

	case tea.KeyMsg:
		if a.showWelcome {
			a.showWelcome = false
			return a, nil
		}

		if a.confirmDel {
			switch msg.String() {
			case "y", "Y", "enter":
				a.confirmDel = false
				a.checklistPane.DeleteSelected()
				a.refreshDerived()
				return a, nil
			case "n", "N", "esc":
				a.confirmDel = false
				a.SetStatus("Canceled", false)
				return a, nil
			default:
				return a, nil
			}
		}

		// Help overlay takes priority
		if a.showHelp {
			if key.Matches(msg, a.helpKeys.Close) {
				a.showHelp = false
				return a, nil
			}
			return a, nil
		}

		if !a.checklistPane.IsEditing() {
			// Confirm deletions if enabled.
			if a.config.ConfirmDeletions && a.activePane == PaneChecklist {
				if key.Matches(msg, a.checklistPane.keys.Delete) {
					task, ok := a.checklistPane.Selected()
					if !ok {
						a.SetStatus("No activity selected", true)
						return a, nil
					}
					a.confirmDel = true
					a.confirmBody = truncateText(task.Name, 60)
					return a, nil
				}
			}

			// Global keys only when not in input mode
			switch {
			case key.Matches(msg, a.keys.Quit):
				a.quitting = true
				return a, tea.Quit

			case key.Matches(msg, a.keys.Help):
				a.showHelp = true
				return a, nil

			case key.Matches(msg, a.keys.NextPane):
				a.switchPane()
				return a, nil

			case key.Matches(msg, a.keys.Pane1):
				a.setActivePane(PaneChecklist)
				return a, nil

			case key.Matches(msg, a.keys.Pane2):
				a.setActivePane(PaneHistory)
				return a, nil

			case key.Matches(msg, a.keys.Pane3):
				a.setActivePane(PaneStats)
				return a, nil

			case key.Matches(msg, a.keys.Undo):
				desc, err := a.undoManager.Undo()
				switch {
				case err != nil:
					a.SetStatus("Undo failed: "+err.Error(), true)
				case desc != "":
					a.SetStatus("Undid: "+desc, false)
				default:
					a.SetStatus("Nothing to undo", false)
				}
				a.refreshDerived()
				return a, nil

			case key.Matches(msg, a.keys.Redo):
				desc, err := a.undoManager.Redo()
				switch {
				case err != nil:
					a.SetStatus("Redo failed: "+err.Error(), true)
				case desc != "":
					a.SetStatus("Redid: "+desc, false)
				default:
					a.SetStatus("Nothing to redo", false)
				}
				a.refreshDerived()
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tickMsg:
		if a.status != "" && !a.statusUntil.IsZero() && time.Now().After(a.statusUntil) {
			a.status = ""
			a.statusErr = false
			a.statusUntil = time.Time{}
		}
		a.checkBoundary()
		return a, tickCmd()
	}

	// Forward to active pane (only if help is not shown)
	var cmds []tea.Cmd
	if !a.showHelp {
		switch a.activePane {
		case PaneChecklist:
			if cmd := a.checklistPane.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
			// Any checklist interaction may have rewritten today's record.
			a.refreshDerived()
		case PaneHistory:
			if cmd := a.historyPane.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case PaneStats:
			if cmd := a.statsPane.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return a, tea.Batch(cmds...)
}

// checkBoundary runs the periodic day-boundary check. The rollover's own
// guard makes repeat checks within a day cheap no-ops.
func (a *App) checkBoundary() {
	interval := time.Duration(a.config.RolloverInterval) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	now := a.storage.Now()
	if now.Sub(a.lastBoundary) < interval {
		return
	}
	a.lastBoundary = now

	fired, err := a.tracker.Rollover.Tick(now)
	if err != nil {
		a.SetStatus("Day rollover: "+err.Error(), true)
	}
	if fired {
		a.undoManager.Clear()
		a.refreshDerived()
		if err == nil {
			a.SetStatus("New day! Checklist reset.", false)
		}
	}
}

// handleMouse routes mouse events: overlay dismissal, pane switching,
// then forwarding to the active pane with local coordinates.
func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showWelcome {
		if msg.Action == tea.MouseActionPress {
			a.showWelcome = false
		}
		return a, nil
	}

	if a.confirmDel {
		if msg.Action == tea.MouseActionPress {
			a.confirmDel = false
			a.SetStatus("Canceled", false)
		}
		return a, nil
	}

	if a.showHelp {
		// Any click closes help
		if msg.Action == tea.MouseActionPress {
			a.showHelp = false
		}
		return a, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		// In narrow mode, check for tab bar clicks
		if a.layoutMode == LayoutNarrow && msg.Y == a.contentTop-1 {
			tabWidth := a.width / 3
			if msg.X < tabWidth {
				a.setActivePane(PaneChecklist)
			} else if msg.X < tabWidth*2 {
				a.setActivePane(PaneHistory)
			} else {
				a.setActivePane(PaneStats)
			}
			return a, nil
		}

		// Determine which pane was clicked (in wide mode)
		clickedPane := a.paneAtPosition(msg.X)
		if clickedPane >= 0 && clickedPane != a.activePane {
			a.setActivePane(clickedPane)
		}

		// Forward click to active pane with adjusted coordinates
		if msg.Y >= a.contentTop {
			localMsg := msg
			localMsg.Y = msg.Y - a.contentTop
			if a.layoutMode == LayoutWide {
				switch a.activePane {
				case PaneHistory:
					localMsg.X = msg.X - a.historyPaneStart
				case PaneStats:
					localMsg.X = msg.X - a.statsPaneStart
				}
			}

			var cmd tea.Cmd
			switch a.activePane {
			case PaneChecklist:
				cmd = a.checklistPane.Update(localMsg)
				a.refreshDerived()
			case PaneHistory:
				cmd = a.historyPane.Update(localMsg)
			case PaneStats:
				cmd = a.statsPane.Update(localMsg)
			}
			return a, cmd
		}
	}

	// Handle scroll wheel
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		localMsg := msg
		localMsg.Y = msg.Y - a.contentTop

		switch a.activePane {
		case PaneChecklist:
			cmd := a.checklistPane.Update(localMsg)
			return a, cmd
		case PaneHistory:
			cmd := a.historyPane.Update(localMsg)
			return a, cmd
		}
	}

	return a, nil
}

// switchPane cycles through panes.
func (a *App) switchPane() {
	switch a.activePane {
	case PaneChecklist:
		a.setActivePane(PaneHistory)
	case PaneHistory:
		a.setActivePane(PaneStats)
	case PaneStats:
		a.setActivePane(PaneChecklist)
	}
}

// setActivePane sets the active pane and updates focus states.
func (a *App) setActivePane(pane PaneID) {
	a.activePane = pane

	a.checklistPane.SetFocused(pane == PaneChecklist)
	a.historyPane.SetFocused(pane == PaneHistory)
	a.statsPane.SetFocused(pane == PaneStats)
}

// paneAtPosition returns which pane is at the given X coordinate.
// Returns -1 if no pane is at that position.
func (a *App) paneAtPosition(x int) PaneID {
	if a.layoutMode == LayoutNarrow {
		// In narrow mode, return the active pane
		return a.activePane
	}

	if x >= a.checklistPaneStart && x < a.checklistPaneEnd {
		return PaneChecklist
	}
	if x >= a.historyPaneStart && x < a.historyPaneEnd {
		return PaneHistory
	}
	if x >= a.statsPaneStart && x < a.statsPaneEnd {
		return PaneStats
	}
	return -1
}

// updateLayout recalculates pane sizes based on terminal dimensions.
func (a *App) updateLayout() {
	// Leave room for title bar (2) and help bar (1)
	contentHeight := a.height - 4
	if contentHeight < 10 {
		contentHeight = 10
	}

	// Content starts after title bar (1 line title + 1 line space)
	a.contentTop = 1

	// Update help overlay size
	a.helpOverlay.SetSize(a.width, a.height)

	totalWidth := a.width - 4

	// Determine layout mode based on configured threshold
	threshold := a.config.NarrowLayoutThreshold
	if threshold <= 0 {
		threshold = 80 // Default threshold
	}

	if a.width < threshold {
		// Narrow mode: single focused pane with tab bar
		a.layoutMode = LayoutNarrow

		// In narrow mode, leave room for tab bar (1 line)
		narrowHeight := contentHeight - 1
		if narrowHeight < 8 {
			narrowHeight = 8
		}

		// Give full width to all panes (only focused one will be shown)
		paneWidth := totalWidth
		if paneWidth < 20 {
			paneWidth = 20
		}

		a.checklistPane.SetSize(paneWidth, narrowHeight)
		a.historyPane.SetSize(paneWidth, narrowHeight)
		a.statsPane.SetSize(paneWidth, narrowHeight)

		// In narrow mode, all panes occupy the same space
		a.checklistPaneStart = 0
		a.checklistPaneEnd = a.width
		a.historyPaneStart = 0
		a.historyPaneEnd = a.width
		a.statsPaneStart = 0
		a.statsPaneEnd = a.width
		// Content starts after tab bar in narrow mode
		a.contentTop = 2
	} else {
		// Wide mode: three panes side-by-side
		a.layoutMode = LayoutWide

		var checklistWidth, historyWidth, statsWidth int
		if totalWidth < 120 {
			// Medium: balanced three-column
			checklistWidth = (totalWidth * 36) / 100
			historyWidth = (totalWidth * 36) / 100
			statsWidth = totalWidth - checklistWidth - historyWidth - 2
		} else {
			// Wide: comfortable three-column with max widths
			checklistWidth = min((totalWidth*38)/100, 55)
			historyWidth = min((totalWidth*36)/100, 50)
			statsWidth = min(totalWidth-checklistWidth-historyWidth-2, 40)
		}

		a.checklistPane.SetSize(checklistWidth, contentHeight)
		a.historyPane.SetSize(historyWidth, contentHeight)
		a.statsPane.SetSize(statsWidth, contentHeight)

		// Calculate pane positions (with 1 space gaps between panes)
		a.checklistPaneStart = 0
		a.checklistPaneEnd = checklistWidth
		a.historyPaneStart = checklistWidth + 1
		a.historyPaneEnd = a.historyPaneStart + historyWidth
		a.statsPaneStart = a.historyPaneEnd + 1
		a.statsPaneEnd = a.statsPaneStart + statsWidth
	}
}

// View renders the entire app.
func (a *App) View() string {
	if a.quitting {
		return a.renderGoodbye()
	}

	if a.showWelcome {
		return a.renderWelcome()
	}

	if a.confirmDel {
		return a.renderConfirmDelete()
	}

	// Show help overlay if active
	if a.showHelp {
		return a.helpOverlay.View()
	}

	var b strings.Builder

	// Title bar
	titleBar := a.renderTitleBar()
	b.WriteString(titleBar)
	b.WriteString("\n")

	// Main content - switch based on layout mode
	switch a.layoutMode {
	case LayoutNarrow:
		b.WriteString(a.renderNarrowContent())
	default:
		b.WriteString(a.renderWideContent())
	}
	b.WriteString("\n")

	// Help bar
	helpBar := a.renderHelpBar()
	b.WriteString(helpBar)

	return b.String()
}

func (a *App) renderWelcome() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorPrimary).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorPrimary).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	mutedStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to daylist"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render("List the things you do every day, then check\n"))
	b.WriteString(bodyStyle.Render("them off. The list resets shortly after 3 AM\n"))
	b.WriteString(bodyStyle.Render("and each day's results are saved to history.\n"))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render("Add your first activity with 'a'. Tab switches\n"))
	b.WriteString(bodyStyle.Render("panes, ? opens help.\n"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press any key to continue"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

func (a *App) renderConfirmDelete() string {
	overlayWidth := 60
	if a.width > 0 {
		overlayWidth = min(60, max(20, a.width-4))
	}

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(a.styles.ColorDanger).
		Padding(1, 2).
		Width(overlayWidth)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(a.styles.ColorDanger).
		MarginBottom(1)

	bodyStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorText)

	hintStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete activity?"))
	b.WriteString("\n\n")
	b.WriteString(bodyStyle.Render(a.confirmBody))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("[y/enter] delete    [n/esc] cancel"))

	content := overlayStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// renderWideContent renders all three panes side by side.
func (a *App) renderWideContent() string {
	checklistView := a.checklistPane.View()
	historyView := a.historyPane.View()
	statsView := a.statsPane.View()

	return lipgloss.JoinHorizontal(lipgloss.Top, checklistView, " ", historyView, " ", statsView)
}

// renderNarrowContent renders the focused pane with a tab bar.
func (a *App) renderNarrowContent() string {
	var b strings.Builder

	// Tab bar at top
	b.WriteString(a.renderPaneTabs())
	b.WriteString("\n")

	// Only render the active pane
	switch a.activePane {
	case PaneChecklist:
		b.WriteString(a.checklistPane.View())
	case PaneHistory:
		b.WriteString(a.historyPane.View())
	case PaneStats:
		b.WriteString(a.statsPane.View())
	}

	return b.String()
}

// renderPaneTabs renders a tab bar showing available panes.
func (a *App) renderPaneTabs() string {
	// Tab labels
	tabs := []struct {
		id    PaneID
		label string
	}{
		{PaneChecklist, "Checklist"},
		{PaneHistory, "History"},
		{PaneStats, "Stats"},
	}

	// Create tab styles
	activeTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorPrimary).
		Bold(true)
	inactiveTabStyle := lipgloss.NewStyle().
		Foreground(a.styles.ColorTextMuted)

	var parts []string
	for _, tab := range tabs {
		label := tab.label
		if tab.id == a.activePane {
			// Active tab: highlighted with brackets
			label = activeTabStyle.Render("[" + label + "]")
		} else {
			// Inactive tab: muted
			label = inactiveTabStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}

	// Center the tabs
	tabBar := strings.Join(parts, "  ")
	padding := (a.width - lipgloss.Width(tabBar)) / 2
	if padding > 0 {
		tabBar = strings.Repeat(" ", padding) + tabBar
	}

	return tabBar
}

// renderGoodbye shows a nice exit message with today's progress.
func (a *App) renderGoodbye() string {
	done, total := a.checklistPane.Stats()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  See you tomorrow!\n")
	b.WriteString("\n")

	if total > 0 {
		pct := (done * 100) / total
		b.WriteString(fmt.Sprintf("  Today: %d/%d done (%d%%)\n", done, total, pct))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTitleBar creates the top title bar with today's stats and date.
func (a *App) renderTitleBar() string {
	title := a.styles.TitleStyle.Render(" daylist ")

	// Today's completion summary
	done, total := a.checklistPane.Stats()
	var stats string
	if total > 0 {
		stats = a.styles.StatLabelStyle.Render(fmt.Sprintf("Today: %d/%d", done, total))
	}

	// Current checklist day and time. The day key differs from the
	// calendar date before the reset hour, which is exactly when showing
	// it matters.
	now := a.storage.Now()
	dateStr := fmt.Sprintf("%s · %s", a.todayKey(), now.Format("15:04"))
	date := a.styles.DateStyle.Render(dateStr)

	// Calculate spacing
	titleWidth := lipgloss.Width(title)
	statsWidth := lipgloss.Width(stats)
	dateWidth := lipgloss.Width(date)

	usedWidth := titleWidth + statsWidth + dateWidth
	spacerWidth := a.width - usedWidth - 4
	if spacerWidth < 2 {
		spacerWidth = 2
	}

	var parts []string
	parts = append(parts, title)
	if stats != "" {
		parts = append(parts, "  "+stats)
	}
	parts = append(parts, strings.Repeat(" ", spacerWidth))
	parts = append(parts, date)

	return strings.Join(parts, "")
}

// renderHelpBar creates the bottom help bar with context-sensitive hints.
func (a *App) renderHelpBar() string {
	if a.status != "" {
		if a.statusErr {
			return a.styles.ErrorStyle.Render(a.status)
		}
		return a.styles.StatusStyle.Render(a.status)
	}

	// Input mode help
	if a.checklistPane.IsEditing() {
		return a.styles.RenderHelp(
			"enter", "save",
			"esc", "cancel",
		)
	}

	// Normal mode help based on active pane
	switch a.activePane {
	case PaneChecklist:
		return a.styles.RenderHelp(
			"a", "add",
			"d", "done",
			"e", "rename",
			"x", "del",
			"J/K", "move",
			"tab", "pane",
			"?", "help",
		)
	case PaneHistory:
		return a.styles.RenderHelp(
			"j/k", "nav",
			"tab", "pane",
			"?", "help",
		)
	case PaneStats:
		return a.styles.RenderHelp(
			"s", "export CSV",
			"tab", "pane",
			"?", "help",
		)
	}

	return ""
}

// SetStatus sets a status message to display to the user.
func (a *App) SetStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
	ttl := 5 * time.Second
	if isErr {
		ttl = 8 * time.Second
	}
	a.statusUntil = time.Now().Add(ttl)
}

// Run starts the Bubble Tea program around an opened tracker.
func Run(tracker *checklist.Tracker, store *storage.Storage, styles *Styles, cfg *AppConfig) error {
	app := NewApp(tracker, store, styles, cfg)
	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support
	)
	_, err := p.Run()
	return err
}
