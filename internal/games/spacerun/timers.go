package spacerun

import "sort"

// Timer keys.
const (
	TimerPowerUpReset = "powerup-reset"
	TimerStarfield    = "starfield"
)

// maxCatchUp bounds how often a repeating timer fires within one Run.
const maxCatchUp = 8

type timer struct {
	key      string
	due      float64
	interval float64 // > 0 for repeating timers
	seq      uint64
	fn       func(now float64)
}

// Timers is a keyed list of deferred callbacks checked against the frame
// clock. Arming a key replaces any pending entry for it.
type Timers struct {
	entries map[string]*timer
	seq     uint64
}

// NewTimers creates an empty timer list.
func NewTimers() *Timers {
	return &Timers{entries: make(map[string]*timer)}
}

// After arms a one-shot timer that fires on the first Run at or after due.
func (t *Timers) After(key string, due float64, fn func(now float64)) {
	t.arm(&timer{key: key, due: due, fn: fn})
}

// Every arms a repeating timer firing every interval seconds after start.
func (t *Timers) Every(key string, start, interval float64, fn func(now float64)) {
	if interval <= 0 {
		panic("spacerun: timer interval must be positive")
	}
	t.arm(&timer{key: key, due: start + interval, interval: interval, fn: fn})
}

func (t *Timers) arm(e *timer) {
	t.seq++
	e.seq = t.seq
	t.entries[e.key] = e
}

// Cancel drops the pending entry for key.
func (t *Timers) Cancel(key string) bool {
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	return true
}

// Due returns the deadline of the pending entry for key.
func (t *Timers) Due(key string) (float64, bool) {
	e, ok := t.entries[key]
	if !ok {
		return 0, false
	}
	return e.due, true
}

// Len returns the number of pending timers.
func (t *Timers) Len() int {
	return len(t.entries)
}

// Clear drops every pending timer.
func (t *Timers) Clear() {
	t.entries = make(map[string]*timer)
}

// Run fires every timer due at now, earliest deadline first, and returns how
// many callbacks ran. Callbacks may arm or cancel timers; an entry replaced
// during the run does not fire with its old deadline.
func (t *Timers) Run(now float64) int {
	due := make([]*timer, 0, len(t.entries))
	for _, e := range t.entries {
		if e.due <= now {
			due = append(due, e)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})

	fired := 0
	for _, e := range due {
		if t.entries[e.key] != e {
			continue
		}
		if e.interval == 0 {
			delete(t.entries, e.key)
			e.fn(now)
			fired++
			continue
		}
		for n := 0; e.due <= now && n < maxCatchUp; n++ {
			e.due += e.interval
			e.fn(now)
			fired++
			if t.entries[e.key] != e {
				break
			}
		}
		if e.due <= now {
			// Drop the backlog after a long stall.
			e.due = now + e.interval
		}
	}
	return fired
}
