// Package history keeps a bounded stack of game snapshots for undo.
package history

import (
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// DefaultLimit is the number of snapshots kept when none is configured.
const DefaultLimit = 20

// Entry is one restorable snapshot: the game state and the hits of the
// turn in progress at the time it was taken.
type Entry struct {
	State    core.State
	TurnHits []segment.Hit
}

func (e Entry) clone() Entry {
	c := Entry{TurnHits: append([]segment.Hit(nil), e.TurnHits...)}
	if e.State != nil {
		c.State = e.State.CloneState()
	}
	return c
}

// Ledger is a bounded LIFO of entries. When full, the oldest entry is
// dropped. It is not safe for concurrent use.
type Ledger struct {
	limit     int
	entries   []Entry
	restoring bool
}

// New creates a ledger holding at most limit entries. A non-positive limit
// uses DefaultLimit.
func New(limit int) *Ledger {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Ledger{limit: limit, entries: make([]Entry, 0, limit)}
}

// Record pushes a deep copy of the given snapshot. Calls made while an
// undo is being installed are ignored.
func (l *Ledger) Record(state core.State, turnHits []segment.Hit) {
	if l.restoring || state == nil {
		return
	}
	if len(l.entries) == l.limit {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, Entry{State: state, TurnHits: turnHits}.clone())
}

// Undo pops the newest entry and passes it to install. Anything install
// records is dropped so that restoring never pushes a new snapshot.
func (l *Ledger) Undo(install func(Entry)) (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	last := l.entries[len(l.entries)-1]
	l.entries[len(l.entries)-1] = Entry{}
	l.entries = l.entries[:len(l.entries)-1]

	if install != nil {
		l.restoring = true
		defer func() { l.restoring = false }()
		install(last)
	}
	return last, true
}

// HasHistory reports whether Undo would succeed.
func (l *Ledger) HasHistory() bool { return len(l.entries) > 0 }

// Len returns the number of stored entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Limit returns the capacity of the ledger.
func (l *Ledger) Limit() int { return l.limit }
