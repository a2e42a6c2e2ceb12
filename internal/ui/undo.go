// Package ui provides terminal user interface components for the daylist app.
// This file implements the undo/redo system using a command pattern with
// captured state snapshots for each undoable operation.
package ui

import (
	"sync"

	"daylist/internal/checklist"
	"daylist/internal/storage"

	"github.com/mattn/go-runewidth"
)

// maxHistorySize limits the undo stack to prevent unbounded memory growth.
const maxHistorySize = 50

// UndoableAction represents an action that can be undone.
// It captures the state needed to reverse the operation.
type UndoableAction struct {
	Description string       // Human-readable description for status messages
	Undo        func() error // Function to reverse the action
	Redo        func() error // Function to redo the action (optional)
}

// UndoManager maintains the undo/redo history stacks.
type UndoManager struct {
	mu        sync.Mutex
	undoStack []*UndoableAction
	redoStack []*UndoableAction
}

// NewUndoManager creates a new UndoManager instance.
func NewUndoManager() *UndoManager {
	return &UndoManager{
		undoStack: make([]*UndoableAction, 0, maxHistorySize),
		redoStack: make([]*UndoableAction, 0, maxHistorySize),
	}
}

// Push adds an undoable action to the history.
// Clears the redo stack since a new action invalidates redo history.
func (m *UndoManager) Push(action *UndoableAction) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Clear redo stack on new action
	m.redoStack = m.redoStack[:0]

	// Enforce max size (remove oldest if full)
	if len(m.undoStack) >= maxHistorySize {
		m.undoStack = m.undoStack[1:]
	}

	m.undoStack = append(m.undoStack, action)
}

// CanUndo returns true if there are actions to undo.
func (m *UndoManager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undoStack) > 0
}

// CanRedo returns true if there are actions to redo.
func (m *UndoManager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redoStack) > 0
}

// Undo reverses the most recent action and returns its description.
// Returns empty string and nil error if nothing to undo.
func (m *UndoManager) Undo() (string, error) {
	m.mu.Lock()
	if len(m.undoStack) == 0 {
		m.mu.Unlock()
		return "", nil
	}
	action := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]
	m.mu.Unlock()

	// Execute undo
	if err := action.Undo(); err != nil {
		// Push back on failure (action not undone)
		m.mu.Lock()
		m.undoStack = append(m.undoStack, action)
		m.mu.Unlock()
		return "", err
	}

	// Push to redo stack if redo is available
	if action.Redo != nil {
		m.mu.Lock()
		m.redoStack = append(m.redoStack, action)
		m.mu.Unlock()
	}

	return action.Description, nil
}

// Redo reapplies the most recently undone action and returns its description.
// Returns empty string and nil error if nothing to redo.
func (m *UndoManager) Redo() (string, error) {
	m.mu.Lock()
	if len(m.redoStack) == 0 {
		m.mu.Unlock()
		return "", nil
	}
	action := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]
	m.mu.Unlock()

	// Execute redo
	if err := action.Redo(); err != nil {
		// Push back on failure
		m.mu.Lock()
		m.redoStack = append(m.redoStack, action)
		m.mu.Unlock()
		return "", err
	}

	// Push back to undo stack
	m.mu.Lock()
	m.undoStack = append(m.undoStack, action)
	m.mu.Unlock()

	return action.Description, nil
}

// Clear removes all undo/redo history.
func (m *UndoManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undoStack = m.undoStack[:0]
	m.redoStack = m.redoStack[:0]
}

// =============================================================================
// Undoable Action Factories
// =============================================================================

// NewToggleAction creates an undoable action for a completion toggle.
func NewToggleAction(list *checklist.List, id, name string, wasCompleted bool) *UndoableAction {
	desc := "Checked: " + truncateText(name, 20)
	if wasCompleted {
		desc = "Unchecked: " + truncateText(name, 20)
	}
	return &UndoableAction{
		Description: desc,
		Undo: func() error {
			return list.SetChecked(id, wasCompleted)
		},
		Redo: func() error {
			return list.SetChecked(id, !wasCompleted)
		},
	}
}

// NewDeleteAction creates an undoable action for a deletion. The task and
// its position are captured so undo restores it in place.
func NewDeleteAction(list *checklist.List, task storage.Task, index int) *UndoableAction {
	return &UndoableAction{
		Description: "Deleted: " + truncateText(task.Name, 20),
		Undo: func() error {
			return list.Restore(task, index)
		},
		Redo: func() error {
			_, err := list.Delete(task.ID)
			return err
		},
	}
}

// NewRenameAction creates an undoable action for a rename.
func NewRenameAction(list *checklist.List, id, oldName, newName string) *UndoableAction {
	return &UndoableAction{
		Description: "Renamed: " + truncateText(oldName, 20),
		Undo: func() error {
			return list.Rename(id, oldName)
		},
		Redo: func() error {
			return list.Rename(id, newName)
		},
	}
}

// NewMoveAction creates an undoable action for a reorder.
func NewMoveAction(list *checklist.List, name string, from, to int) *UndoableAction {
	return &UndoableAction{
		Description: "Moved: " + truncateText(name, 20),
		Undo: func() error {
			_, err := list.Reorder(to, from)
			return err
		},
		Redo: func() error {
			_, err := list.Reorder(from, to)
			return err
		},
	}
}

// truncateText shortens text to maxLen with ellipsis if needed.
func truncateText(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(text, maxLen, "..")
}
