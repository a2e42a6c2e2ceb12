// Package ui provides terminal user interface components for the daylist app.
// This file contains tests for the undo/redo system.
package ui

import (
	"errors"
	"testing"
)

// TestUndoManager_PushAndUndo verifies basic push and undo operations.
func TestUndoManager_PushAndUndo(t *testing.T) {
	manager := NewUndoManager()

	undoCalled := false
	action := &UndoableAction{
		Description: "Test action",
		Undo: func() error {
			undoCalled = true
			return nil
		},
		Redo: func() error {
			return nil
		},
	}

	manager.Push(action)

	if !manager.CanUndo() {
		t.Error("Expected CanUndo() to return true after push")
	}

	desc, err := manager.Undo()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if desc != "Test action" {
		t.Errorf("Expected description 'Test action', got %q", desc)
	}
	if !undoCalled {
		t.Error("Expected undo function to be called")
	}
	if manager.CanUndo() {
		t.Error("Expected CanUndo() to return false after undoing only action")
	}
}

// TestUndoManager_Redo verifies redo functionality after undo.
func TestUndoManager_Redo(t *testing.T) {
	manager := NewUndoManager()

	state := 1
	action := &UndoableAction{
		Description: "Increment",
		Undo: func() error {
			state--
			return nil
		},
		Redo: func() error {
			state++
			return nil
		},
	}
	manager.Push(action)

	if _, err := manager.Undo(); err != nil {
		t.Errorf("Unexpected error on undo: %v", err)
	}
	if state != 0 {
		t.Errorf("Expected state=0 after undo, got %d", state)
	}
	if !manager.CanRedo() {
		t.Error("Expected CanRedo() to return true after undo")
	}

	desc, err := manager.Redo()
	if err != nil {
		t.Errorf("Unexpected error on redo: %v", err)
	}
	if state != 1 {
		t.Errorf("Expected state=1 after redo, got %d", state)
	}
	if desc != "Increment" {
		t.Errorf("Expected description 'Increment', got %q", desc)
	}
	if !manager.CanUndo() {
		t.Error("Expected CanUndo() to return true after redo")
	}
	if manager.CanRedo() {
		t.Error("Expected CanRedo() to return false after redo")
	}
}

// TestUndoManager_NewActionClearsRedo verifies the redo stack is
// invalidated by a fresh action.
func TestUndoManager_NewActionClearsRedo(t *testing.T) {
	manager := NewUndoManager()

	mk := func() *UndoableAction {
		return &UndoableAction{
			Description: "Action",
			Undo:        func() error { return nil },
			Redo:        func() error { return nil },
		}
	}

	manager.Push(mk())
	manager.Undo()
	if !manager.CanRedo() {
		t.Fatal("Expected CanRedo() after undo")
	}

	manager.Push(mk())
	if manager.CanRedo() {
		t.Error("Expected redo stack to be cleared by new action")
	}
}

// TestUndoManager_MaxHistory verifies that oldest entries are removed when full.
func TestUndoManager_MaxHistory(t *testing.T) {
	manager := NewUndoManager()

	for i := 0; i < maxHistorySize+10; i++ {
		manager.Push(&UndoableAction{
			Description: "Action",
			Undo:        func() error { return nil },
		})
	}

	count := 0
	for manager.CanUndo() {
		if _, err := manager.Undo(); err != nil {
			t.Fatalf("Undo() error = %v", err)
		}
		count++
	}
	if count != maxHistorySize {
		t.Errorf("Undid %d actions, want %d", count, maxHistorySize)
	}
}

// TestUndoManager_FailedUndoStaysOnStack verifies a failing undo keeps
// the action available for retry.
func TestUndoManager_FailedUndoStaysOnStack(t *testing.T) {
	manager := NewUndoManager()

	fail := true
	manager.Push(&UndoableAction{
		Description: "Flaky",
		Undo: func() error {
			if fail {
				return errors.New("boom")
			}
			return nil
		},
	})

	if _, err := manager.Undo(); err == nil {
		t.Fatal("Expected error from failing undo")
	}
	if !manager.CanUndo() {
		t.Fatal("Failed action should remain on the undo stack")
	}

	fail = false
	if _, err := manager.Undo(); err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
}

// TestUndoManager_EmptyStacks verifies undo/redo on empty stacks are
// quiet no-ops.
func TestUndoManager_EmptyStacks(t *testing.T) {
	manager := NewUndoManager()

	desc, err := manager.Undo()
	if desc != "" || err != nil {
		t.Errorf("Undo() on empty = (%q, %v), want empty no-op", desc, err)
	}
	desc, err = manager.Redo()
	if desc != "" || err != nil {
		t.Errorf("Redo() on empty = (%q, %v), want empty no-op", desc, err)
	}
}

// =============================================================================
// Action factory tests against a real checklist
// =============================================================================

func TestToggleAction_RoundTrip(t *testing.T) {
	tracker, _ := createTestTracker(t)
	list := tracker.List

	created, _ := list.Add("Run")
	id := created[0].ID
	list.Toggle(id)

	action := NewToggleAction(list, id, "Run", false)
	if err := action.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if task, _ := list.Get(id); task.Completed {
		t.Error("Undo should have unchecked the task")
	}

	if err := action.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if task, _ := list.Get(id); !task.Completed {
		t.Error("Redo should have re-checked the task")
	}
}

func TestDeleteAction_RestoresInPlace(t *testing.T) {
	tracker, _ := createTestTracker(t)
	list := tracker.List

	created, _ := list.Add("Run; Read; Meditate")
	removed, _ := list.Delete(created[1].ID)

	action := NewDeleteAction(list, *removed, 1)
	if err := action.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	tasks := list.Tasks()
	if len(tasks) != 3 || tasks[1].ID != removed.ID {
		t.Error("Undo should restore the task at its old position")
	}

	if err := action.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if list.Len() != 2 {
		t.Error("Redo should delete the task again")
	}
}

func TestRenameAction_RoundTrip(t *testing.T) {
	tracker, _ := createTestTracker(t)
	list := tracker.List

	created, _ := list.Add("Run")
	id := created[0].ID
	list.Rename(id, "Morning run")

	action := NewRenameAction(list, id, "Run", "Morning run")
	if err := action.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if task, _ := list.Get(id); task.Name != "Run" {
		t.Errorf("name = %q after undo, want Run", task.Name)
	}

	if err := action.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if task, _ := list.Get(id); task.Name != "Morning run" {
		t.Errorf("name = %q after redo, want Morning run", task.Name)
	}
}

func TestMoveAction_RoundTrip(t *testing.T) {
	tracker, _ := createTestTracker(t)
	list := tracker.List

	list.Add("A; B; C")
	list.Reorder(0, 2) // [B, C, A]

	action := NewMoveAction(list, "A", 0, 2)
	if err := action.Undo(); err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if tasks := list.Tasks(); tasks[0].Name != "A" {
		t.Errorf("tasks[0] = %q after undo, want A", tasks[0].Name)
	}

	if err := action.Redo(); err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if tasks := list.Tasks(); tasks[2].Name != "A" {
		t.Errorf("tasks[2] = %q after redo, want A", tasks[2].Name)
	}
}
