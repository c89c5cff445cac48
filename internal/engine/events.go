package engine

import (
	"github.com/vovakirdan/tui-darts/internal/board"
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// Event is a notification sent by a Session to its handler.
type Event interface {
	engineEvent()
}

// HitApplied is sent after a hit changed the game.
type HitApplied struct {
	Event       board.Event
	PlayerIndex int
	State       core.State
}

func (HitApplied) engineEvent() {}

// HitRejected is sent when a board event was absorbed.
type HitRejected struct {
	Event  board.Event
	Status Status
}

func (HitRejected) engineEvent() {}

// TurnCompleted is sent when a player's turn ends.
type TurnCompleted struct {
	PlayerIndex int
	Hits        []segment.Hit
	State       core.State
}

func (TurnCompleted) engineEvent() {}

// LegFinished is sent when a leg of a 01 match is won. Hits are the darts
// of the turn that ended the leg.
type LegFinished struct {
	Leg         int // 1-based number of the finished leg
	WinnerIndex int
	Hits        []segment.Hit
	State       core.State
}

func (LegFinished) engineEvent() {}

// GameFinished is sent once, when the game has a result. Hits are the
// darts of the deciding turn.
type GameFinished struct {
	WinnerIndex int
	Winner      core.Player
	Hits        []segment.Hit
	State       core.State
}

func (GameFinished) engineEvent() {}

// Undone is sent after a snapshot was restored.
type Undone struct {
	State core.State
}

func (Undone) engineEvent() {}
