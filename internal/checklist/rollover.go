package checklist

import (
	"errors"
	"time"

	"daylist/internal/storage"
)

// Rollover is the scheduler that archives the checklist into History and
// resets completion at the day boundary. It owns the persisted
// last-reset instant and is driven two ways: RecordCurrentDay runs as
// the List change observer after every mutation, and Tick runs at
// startup and then once a minute.
//
// Both entry points take the current time as a parameter so tests can
// drive the state machine without real clocks.
type Rollover struct {
	list      *List
	history   *History
	store     *storage.Storage
	resetHour int
	last      *time.Time
}

// NewRollover loads the persisted rollover state and wires itself as the
// list's change observer. A non-nil error is a recovery warning.
func NewRollover(list *List, history *History, store *storage.Storage, resetHour int) (*Rollover, error) {
	if resetHour <= 0 || resetHour > 23 {
		resetHour = DefaultResetHour
	}
	state, err := store.LoadRollover()
	r := &Rollover{
		list:      list,
		history:   history,
		store:     store,
		resetHour: resetHour,
		last:      state.LastRolloverInstant,
	}
	list.SetOnChange(r.RecordCurrentDay)
	return r, err
}

// ResetHour returns the configured day-boundary hour.
func (r *Rollover) ResetHour() int {
	return r.resetHour
}

// LastRollover returns when the daily reset last ran, or nil if never.
func (r *Rollover) LastRollover() *time.Time {
	return r.last
}

// CurrentKey returns the day key for the given instant under the
// configured boundary.
func (r *Rollover) CurrentKey(now time.Time) DayKey {
	return KeyFor(now, r.resetHour)
}

// snapshot copies the live list into an archive record. Entries are
// value copies stamped with the recording instant; later list mutations
// never reach a stored record.
func (r *Rollover) snapshot(at time.Time) storage.DayRecord {
	tasks := r.list.Tasks()
	rec := storage.DayRecord{
		Entries:    make([]storage.HistoryEntry, 0, len(tasks)),
		TotalCount: len(tasks),
	}
	for _, t := range tasks {
		rec.Entries = append(rec.Entries, storage.HistoryEntry{
			ID:        t.ID,
			Name:      t.Name,
			Completed: t.Completed,
			Timestamp: at,
		})
		if t.Completed {
			rec.CompletedCount++
		}
	}
	return rec
}

// RecordCurrentDay upserts the record for now's day from the live list.
// Deleting the last task deletes the day's record via the empty-day
// rule in Upsert.
func (r *Rollover) RecordCurrentDay(now time.Time) error {
	return r.history.Upsert(r.CurrentKey(now), r.snapshot(now))
}

// Tick runs the boundary check. The reset fires when now is past the
// boundary hour and the reset has not yet run on now's calendar date;
// repeated ticks within the same day are no-ops, so the check is safe
// to run every minute.
//
// On fire it backfills the outgoing day's record if one was never
// written (and the list is non-empty), clears all completion flags, and
// advances the persisted last-reset instant. Returns whether the reset
// fired. A non-nil error alongside fired=true means some state could
// not be persisted; the in-memory transition is complete regardless.
func (r *Rollover) Tick(now time.Time) (bool, error) {
	if now.Hour() < r.resetHour {
		return false, nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if r.last != nil {
		lastDate := time.Date(r.last.Year(), r.last.Month(), r.last.Day(), 0, 0, 0, 0, r.last.Location())
		if !lastDate.Before(today) {
			return false, nil
		}
	}

	var errs []error

	// The day that is ending. If no record was ever written for it
	// (e.g. the app was closed all day), backfill one from the
	// pre-reset list. An existing record is left untouched so a missed
	// recording can be filled in without double-counting.
	yesterdayKey := DayKey(today.AddDate(0, 0, -1).Format(dayKeyLayout))
	if _, ok := r.history.Get(yesterdayKey); !ok && r.list.Len() > 0 {
		if err := r.history.Upsert(yesterdayKey, r.snapshot(now)); err != nil {
			errs = append(errs, err)
		}
	}

	if err := r.list.ResetCompletion(); err != nil {
		errs = append(errs, err)
	}

	instant := now
	r.last = &instant
	if err := r.store.SaveRollover(&storage.RolloverState{LastRolloverInstant: r.last}); err != nil {
		errs = append(errs, err)
	}

	return true, errors.Join(errs...)
}
