package board

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-darts/internal/segment"
)

// DefaultBuffer is the channel capacity of a Manual source.
const DefaultBuffer = 32

// Manual is a push-driven source used by keyboard input and tests.
// Push and Close are safe for concurrent use.
type Manual struct {
	mu     sync.Mutex
	ch     chan Event
	closed bool
	now    func() time.Time
}

// NewManual creates a manual source with the given buffer size.
func NewManual(buffer int) *Manual {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Manual{ch: make(chan Event, buffer), now: time.Now}
}

// Events implements Source.
func (m *Manual) Events() <-chan Event { return m.ch }

// NewEvent stamps a hit with a fresh correlation id without sending it.
func (m *Manual) NewEvent(hit segment.Hit) Event {
	return Event{ID: uuid.NewString(), Hit: hit, At: m.now()}
}

// Push sends a hit with a fresh correlation id and returns the event.
// It reports false if the source is closed.
func (m *Manual) Push(hit segment.Hit) (Event, bool) {
	ev := m.NewEvent(hit)
	return ev, m.send(ev)
}

// Redeliver sends ev again unchanged, as a flaky board connection would.
func (m *Manual) Redeliver(ev Event) bool {
	return m.send(ev)
}

func (m *Manual) send(ev Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	m.ch <- ev
	return true
}

// Close ends the stream. Further pushes are dropped.
func (m *Manual) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.ch)
}
