package checklist

import (
	"daylist/internal/storage"
)

// Tracker bundles the live list, the history archive, and the rollover
// scheduler over one storage instance. It is the single entry point the
// UI and subcommands use.
type Tracker struct {
	List     *List
	History  *History
	Rollover *Rollover
}

// Open loads all checklist state from storage and wires the rollover
// scheduler as the list's change observer. Corrupt data files degrade to
// empty defaults; their recovery messages come back as warnings so the
// caller can surface them without failing startup.
func Open(store *storage.Storage, resetHour int) (*Tracker, []string) {
	var warnings []string
	note := func(err error) {
		if err != nil {
			warnings = append(warnings, err.Error())
		}
	}

	list, err := NewList(store)
	note(err)

	history, err := NewHistory(store)
	note(err)

	rollover, err := NewRollover(list, history, store, resetHour)
	note(err)

	return &Tracker{List: list, History: history, Rollover: rollover}, warnings
}
