// Package ui provides terminal user interface components for the daylist app.
package ui

import (
	"fmt"
	"strings"

	"daylist/internal/checklist"
	"daylist/internal/config"
	"daylist/internal/storage"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ChecklistPane displays the live checklist and handles its mutations.
// Mutations run synchronously on the event loop; persistence warnings are
// surfaced through the status callback and never block the edit.
type ChecklistPane struct {
	list    *checklist.List
	cursor  int
	focused bool
	width   int
	height  int
	adding  bool
	editing bool
	editID  string
	input   textinput.Model
	styles  *Styles

	// Key bindings
	keys      ChecklistKeyMap
	inputKeys InputKeyMap

	// onStatus reports outcomes to the app status bar.
	onStatus func(msg string, isErr bool)

	// onAction records a completed mutation for undo.
	onAction func(*UndoableAction)
}

// NewChecklistPane creates a new checklist pane.
func NewChecklistPane(list *checklist.List, styles *Styles) *ChecklistPane {
	return NewChecklistPaneWithKeys(list, styles, &config.KeysConfig{})
}

// NewChecklistPaneWithKeys creates a new checklist pane with custom key bindings.
func NewChecklistPaneWithKeys(list *checklist.List, styles *Styles, keyCfg *config.KeysConfig) *ChecklistPane {
	if keyCfg == nil {
		keyCfg = &config.KeysConfig{}
	}
	ti := textinput.New()
	ti.Placeholder = "What do you do every day? (separate with ;)"
	ti.CharLimit = storage.MaxTaskNameLen
	ti.Width = 40

	return &ChecklistPane{
		list:      list,
		cursor:    0,
		focused:   true,
		input:     ti,
		styles:    styles,
		keys:      NewChecklistKeyMap(keyCfg),
		inputKeys: NewInputKeyMap(keyCfg),
	}
}

// SetCallbacks wires the status and undo hooks.
func (p *ChecklistPane) SetCallbacks(onStatus func(string, bool), onAction func(*UndoableAction)) {
	p.onStatus = onStatus
	p.onAction = onAction
}

// SetSize sets the pane dimensions.
func (p *ChecklistPane) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(10, width-4)
}

// SetFocused sets whether this pane is focused.
func (p *ChecklistPane) SetFocused(focused bool) {
	p.focused = focused
}

// IsFocused returns whether this pane is focused.
func (p *ChecklistPane) IsFocused() bool {
	return p.focused
}

// IsEditing returns whether a text input is active (add or rename mode).
func (p *ChecklistPane) IsEditing() bool {
	return p.adding || p.editing
}

// Selected returns the task under the cursor, if any.
func (p *ChecklistPane) Selected() (storage.Task, bool) {
	tasks := p.list.Tasks()
	if len(tasks) == 0 || p.cursor < 0 || p.cursor >= len(tasks) {
		return storage.Task{}, false
	}
	return tasks[p.cursor], true
}

// ClampCursor keeps the cursor inside the list after external changes
// (undo, rollover).
func (p *ChecklistPane) ClampCursor() {
	if p.cursor >= p.list.Len() {
		p.cursor = max(0, p.list.Len()-1)
	}
}

func (p *ChecklistPane) status(msg string, isErr bool) {
	if p.onStatus != nil {
		p.onStatus(msg, isErr)
	}
}

// report surfaces a persistence warning without aborting the mutation.
func (p *ChecklistPane) report(err error) {
	if err != nil {
		p.status("Warning: "+err.Error(), true)
	}
}

// Update handles messages for the checklist pane.
func (p *ChecklistPane) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	// Active text input (add or rename) swallows everything but
	// confirm/cancel.
	if p.adding || p.editing {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, p.inputKeys.Confirm):
				text := strings.TrimSpace(p.input.Value())
				if p.adding {
					p.finishAdd(text)
				} else {
					p.finishRename(text)
				}
				return nil

			case key.Matches(msg, p.inputKeys.Cancel):
				p.resetInput()
				return nil
			}
		}

		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	// Normal mode
	if !p.focused {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.KeyMsg:
		n := p.list.Len()
		switch {
		case key.Matches(msg, p.keys.Down):
			if n > 0 {
				p.cursor = min(p.cursor+1, n-1)
			}

		case key.Matches(msg, p.keys.Up):
			if n > 0 {
				p.cursor = max(p.cursor-1, 0)
			}

		case key.Matches(msg, p.keys.Top):
			p.cursor = 0

		case key.Matches(msg, p.keys.Bottom):
			if n > 0 {
				p.cursor = n - 1
			}

		case key.Matches(msg, p.keys.Add):
			p.adding = true
			p.input.Placeholder = "What do you do every day? (separate with ;)"
			p.input.Focus()
			return textinput.Blink

		case key.Matches(msg, p.keys.Edit):
			if task, ok := p.Selected(); ok {
				p.editing = true
				p.editID = task.ID
				p.input.Placeholder = "New name"
				p.input.SetValue(task.Name)
				p.input.CursorEnd()
				p.input.Focus()
				return textinput.Blink
			}

		case key.Matches(msg, p.keys.Toggle):
			p.toggleSelected()

		case key.Matches(msg, p.keys.Delete):
			p.DeleteSelected()

		case key.Matches(msg, p.keys.MoveDown):
			p.moveSelected(1)

		case key.Matches(msg, p.keys.MoveUp):
			p.moveSelected(-1)
		}
	}

	return nil
}

// finishAdd commits the add input. Empty input quietly leaves add mode.
func (p *ChecklistPane) finishAdd(text string) {
	p.resetInput()
	if text == "" {
		return
	}
	created, err := p.list.Add(text)
	p.report(err)
	if len(created) > 0 {
		p.cursor = p.list.Len() - 1
		if len(created) == 1 {
			p.status("Added: "+truncateText(created[0].Name, 30), false)
		} else {
			p.status(fmt.Sprintf("Added %d activities", len(created)), false)
		}
	}
}

// finishRename commits the rename input. An empty name abandons the
// rename and keeps the old one.
func (p *ChecklistPane) finishRename(text string) {
	id := p.editID
	p.resetInput()
	task, ok := p.list.Get(id)
	if !ok || text == "" || text == task.Name {
		return
	}
	err := p.list.Rename(id, text)
	if err != nil {
		p.report(err)
	}
	if renamed, ok := p.list.Get(id); ok && renamed.Name == text {
		if p.onAction != nil {
			p.onAction(NewRenameAction(p.list, id, task.Name, text))
		}
		p.status("Renamed: "+truncateText(text, 30), false)
	}
}

// toggleSelected flips the completion flag of the task under the cursor.
func (p *ChecklistPane) toggleSelected() {
	task, ok := p.Selected()
	if !ok {
		return
	}
	nowDone, err := p.list.Toggle(task.ID)
	p.report(err)
	if p.onAction != nil {
		p.onAction(NewToggleAction(p.list, task.ID, task.Name, !nowDone))
	}
}

// DeleteSelected removes the task under the cursor. Exported so the app
// can invoke it from the delete confirmation overlay.
func (p *ChecklistPane) DeleteSelected() {
	task, ok := p.Selected()
	if !ok {
		p.status("No activity selected", true)
		return
	}
	index := p.cursor
	removed, err := p.list.Delete(task.ID)
	p.report(err)
	if removed != nil {
		if p.onAction != nil {
			p.onAction(NewDeleteAction(p.list, *removed, index))
		}
		p.status("Deleted: "+truncateText(removed.Name, 30), false)
	}
	p.ClampCursor()
}

// moveSelected shifts the task under the cursor one slot up or down and
// keeps the cursor on it.
func (p *ChecklistPane) moveSelected(delta int) {
	task, ok := p.Selected()
	if !ok {
		return
	}
	from := p.cursor
	to := from + delta
	moved, err := p.list.Reorder(from, to)
	p.report(err)
	if moved {
		p.cursor = to
		if p.onAction != nil {
			p.onAction(NewMoveAction(p.list, task.Name, from, to))
		}
	}
}

func (p *ChecklistPane) resetInput() {
	p.adding = false
	p.editing = false
	p.editID = ""
	p.input.Reset()
}

// handleMouse processes mouse events for the checklist pane.
func (p *ChecklistPane) handleMouse(msg tea.MouseMsg) tea.Cmd {
	tasks := p.list.Tasks()
	if len(tasks) == 0 {
		return nil
	}

	// Content starts after title (1) + separator (1) = row 2
	const headerRows = 2

	// Mirror the view windowing logic so clicks map to the visible slice.
	maxRows := p.height - 6
	if maxRows < 3 {
		maxRows = 5
	}
	startIdx := 0
	if p.cursor >= maxRows {
		startIdx = p.cursor - maxRows + 1
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		p.cursor = max(p.cursor-1, 0)
		return nil

	case tea.MouseButtonWheelDown:
		p.cursor = min(p.cursor+1, len(tasks)-1)
		return nil

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}

		row := msg.Y - headerRows
		if row < 0 || row >= maxRows {
			return nil
		}

		idx := startIdx + row
		if idx < 0 || idx >= len(tasks) {
			return nil
		}

		p.cursor = idx

		// Clicks on the checkbox area toggle; format "[ ] " is 4 chars.
		if msg.X < 5 {
			p.toggleSelected()
		}
	}

	return nil
}

// View renders the checklist pane.
func (p *ChecklistPane) View() string {
	var b strings.Builder

	title := p.styles.PaneTitleStyle.Render("✅ CHECKLIST")
	b.WriteString(title)
	b.WriteString("\n")

	sepWidth := p.width - 4
	if sepWidth < 10 {
		sepWidth = 30
	}
	b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorMuted).Render(strings.Repeat("─", sepWidth)))
	b.WriteString("\n")

	tasks := p.list.Tasks()
	if len(tasks) == 0 && !p.IsEditing() {
		b.WriteString(lipgloss.NewStyle().Foreground(p.styles.ColorTextMuted).Italic(true).Render("  Nothing here yet. Press 'a' to add an activity."))
		b.WriteString("\n")
	} else {
		maxRows := p.height - 6
		if maxRows < 3 {
			maxRows = 5
		}

		startIdx := 0
		if p.cursor >= maxRows {
			startIdx = p.cursor - maxRows + 1
		}

		doneCount := 0
		for i, task := range tasks {
			if task.Completed {
				doneCount++
			}

			if i < startIdx || i >= startIdx+maxRows {
				continue
			}

			var checkbox string
			if task.Completed {
				checkbox = p.styles.TaskCheckboxDone
			} else {
				checkbox = p.styles.TaskCheckboxPending
			}

			availableWidth := p.width - 4 - 5
			if availableWidth < 5 {
				availableWidth = 5
			}
			name := runewidth.Truncate(task.Name, availableWidth, "..")

			var line string
			if i == p.cursor && p.focused && !p.IsEditing() {
				line = p.styles.TaskSelectedStyle.Render(" " + checkbox + " " + name + " ")
			} else {
				var styledName string
				if task.Completed {
					styledName = p.styles.TaskDoneStyle.Render(name)
				} else {
					styledName = p.styles.TaskPendingStyle.Render(name)
				}
				line = " " + checkbox + " " + styledName
			}

			b.WriteString(line)
			b.WriteString("\n")
		}

		b.WriteString("\n")
		stats := p.styles.StatLabelStyle.Render(fmt.Sprintf("%d/%d complete", doneCount, len(tasks)))
		b.WriteString("  " + stats)
		b.WriteString("\n")
	}

	// Input field when adding or renaming
	if p.IsEditing() {
		b.WriteString("\n")
		prompt := p.styles.InputPromptStyle.Render("+ ")
		if p.editing {
			prompt = p.styles.InputPromptStyle.Render("✎ ")
		}
		b.WriteString(prompt + p.input.View())
		b.WriteString("\n")
	}

	content := b.String()
	style := p.styles.PaneStyle
	if p.focused {
		style = p.styles.PaneFocusedStyle
	}

	return style.Width(p.width).Height(p.height).Render(content)
}

// Stats returns today's completion counts.
func (p *ChecklistPane) Stats() (done, total int) {
	return p.list.Stats()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
