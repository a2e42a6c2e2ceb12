package checklist

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"daylist/internal/storage"
)

// AddDelimiter separates multiple task names in a single add input.
const AddDelimiter = ";"

// List is the live, ordered checklist. It is owned by the running
// application instance and mutated only through its methods; all access
// happens on the event loop, so there is no locking.
//
// Every mutation persists the list before returning and then notifies
// the registered observer (the rollover scheduler) so the current day's
// history record always mirrors live state. A persistence or observer
// failure is returned as a warning: the in-memory mutation stands and
// must never be rolled back.
type List struct {
	store    *storage.Storage
	tasks    []storage.Task
	now      func() time.Time
	onChange func(now time.Time) error
}

// NewList loads the checklist from storage. The list is always usable;
// a non-nil error is a recovery warning from a corrupt data file.
func NewList(store *storage.Storage) (*List, error) {
	ts, err := store.LoadTasks()
	return &List{store: store, tasks: ts.Tasks, now: store.Now}, err
}

// SetNowFunc overrides the list clock. Passing nil resets it to the
// storage clock.
func (l *List) SetNowFunc(now func() time.Time) {
	if now == nil {
		l.now = l.store.Now
		return
	}
	l.now = now
}

// SetOnChange registers the observer invoked after every successful
// mutation. The observer receives the mutation instant.
func (l *List) SetOnChange(fn func(now time.Time) error) {
	l.onChange = fn
}

// Tasks returns a copy of the checklist in display order.
func (l *List) Tasks() []storage.Task {
	out := make([]storage.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Stats returns the completed and total task counts.
func (l *List) Stats() (done, total int) {
	for _, t := range l.tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(l.tasks)
}

// Get returns the task with the given id, if present.
func (l *List) Get(id string) (storage.Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return storage.Task{}, false
}

func (l *List) index(id string) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// persistAndNotify saves the list and fires the change observer,
// joining their warnings. The mutation itself has already happened.
func (l *List) persistAndNotify(at time.Time) error {
	var errs []error
	if err := l.store.SaveTasks(&storage.TaskStore{Tasks: l.tasks}); err != nil {
		errs = append(errs, err)
	}
	if l.onChange != nil {
		if err := l.onChange(at); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SplitNames splits a raw add input on the delimiter, trims each piece,
// and drops empties, preserving input order.
func SplitNames(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, AddDelimiter) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Add appends one task per surviving name from the raw input, assigning
// fresh ids. A raw input with no surviving names is a no-op with no side
// effects. Returns the created tasks.
func (l *List) Add(raw string) ([]storage.Task, error) {
	names := SplitNames(raw)
	if len(names) == 0 {
		return nil, nil
	}

	now := l.now()
	created := make([]storage.Task, 0, len(names))
	for _, name := range names {
		if len(name) > storage.MaxTaskNameLen {
			return nil, fmt.Errorf("task name too long (max %d)", storage.MaxTaskNameLen)
		}
		id, err := storage.NewTaskID()
		if err != nil {
			return nil, err
		}
		created = append(created, storage.Task{
			ID:        id,
			Name:      name,
			Completed: false,
			CreatedAt: now,
		})
	}

	l.tasks = append(l.tasks, created...)
	return created, l.persistAndNotify(now)
}

// Toggle flips the completion flag of the task with the given id.
// Unknown ids are a no-op. Returns the new completion state.
func (l *List) Toggle(id string) (bool, error) {
	i := l.index(id)
	if i < 0 {
		return false, nil
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	return l.tasks[i].Completed, l.persistAndNotify(l.now())
}

// SetChecked sets the completion flag to an explicit value, for callers
// that need an idempotent set rather than a flip. Unknown ids are a
// no-op, as is setting the flag to its current value.
func (l *List) SetChecked(id string, completed bool) error {
	i := l.index(id)
	if i < 0 || l.tasks[i].Completed == completed {
		return nil
	}
	l.tasks[i].Completed = completed
	return l.persistAndNotify(l.now())
}

// Rename replaces the task's name. An empty trimmed name abandons the
// rename and keeps the previous name, mirroring an edit cancel. Unknown
// ids are a no-op.
func (l *List) Rename(id, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil
	}
	if len(newName) > storage.MaxTaskNameLen {
		return fmt.Errorf("task name too long (max %d)", storage.MaxTaskNameLen)
	}
	i := l.index(id)
	if i < 0 {
		return nil
	}
	l.tasks[i].Name = newName
	return l.persistAndNotify(l.now())
}

// Delete removes the task with the given id. Unknown ids are a no-op.
// Returns the removed task so callers can offer undo.
func (l *List) Delete(id string) (*storage.Task, error) {
	i := l.index(id)
	if i < 0 {
		return nil, nil
	}
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	err := l.persistAndNotify(l.now())
	return &removed, err
}

// Restore re-inserts a previously deleted task at the given index
// (clamped to the list bounds), preserving its id and timestamps.
// Used by undo.
func (l *List) Restore(task storage.Task, at int) error {
	if l.index(task.ID) >= 0 {
		return fmt.Errorf("task already exists: %s", task.ID)
	}
	if at < 0 {
		at = 0
	}
	if at > len(l.tasks) {
		at = len(l.tasks)
	}
	l.tasks = append(l.tasks[:at], append([]storage.Task{task}, l.tasks[at:]...)...)
	return l.persistAndNotify(l.now())
}

// Reorder moves the task at from to position to, shifting the tasks in
// between. Equal or out-of-range indices are a no-op. Returns whether
// the list changed.
func (l *List) Reorder(from, to int) (bool, error) {
	if from == to || from < 0 || to < 0 || from >= len(l.tasks) || to >= len(l.tasks) {
		return false, nil
	}
	moved := l.tasks[from]
	l.tasks = append(l.tasks[:from], l.tasks[from+1:]...)
	l.tasks = append(l.tasks[:to], append([]storage.Task{moved}, l.tasks[to:]...)...)
	return true, l.persistAndNotify(l.now())
}

// ResetCompletion clears every completion flag in place, preserving
// identity, name, and order. Called by the rollover after archiving the
// outgoing day.
func (l *List) ResetCompletion() error {
	for i := range l.tasks {
		l.tasks[i].Completed = false
	}
	return l.persistAndNotify(l.now())
}
