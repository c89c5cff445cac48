package tui

import (
	"sync"

	"github.com/vovakirdan/tui-darts/internal/engine"
)

// Notifier carries engine events from the session goroutine to the
// Bubble Tea loop. Send never blocks.
type Notifier struct {
	events   chan engine.Event
	done     chan struct{}
	doneOnce sync.Once
}

// NewNotifier creates a notifier. bufferSize controls how many events can
// be buffered before the oldest is dropped.
func NewNotifier(bufferSize int) *Notifier {
	if bufferSize < 1 {
		bufferSize = 64 // Default buffer size
	}
	return &Notifier{
		events: make(chan engine.Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Send queues an event. If the buffer is full, the oldest event is dropped.
func (n *Notifier) Send(evt engine.Event) {
	select {
	case <-n.done:
		return
	default:
	}

	select {
	case n.events <- evt:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-n.events:
		default:
		}
		select {
		case n.events <- evt:
		default:
		}
	}
}

// Events returns the channel to receive events from.
func (n *Notifier) Events() <-chan engine.Event {
	return n.events
}

// Done returns a channel closed by Close.
func (n *Notifier) Done() <-chan struct{} {
	return n.done
}

// Close marks the notifier as done.
// Safe to call multiple times.
func (n *Notifier) Close() {
	n.doneOnce.Do(func() {
		close(n.done)
	})
}
