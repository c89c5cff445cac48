// Package board defines the stream of dart events a scoring session
// consumes, and the sources that produce it.
package board

import (
	"time"

	"github.com/vovakirdan/tui-darts/internal/segment"
)

// Event is one physical hit reported by a board. ID correlates repeated
// deliveries of the same hit; an empty ID is never deduplicated.
type Event struct {
	ID  string
	Hit segment.Hit
	At  time.Time
}

// Source produces events in the order they happened. The channel is
// closed when the source has nothing more to deliver.
type Source interface {
	Events() <-chan Event
}
