// Package engine routes hits to the rule set of the active game and wraps
// it in a Session that deduplicates board events, keeps undo history and
// reports what happened.
package engine

import (
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/games/cricket"
	"github.com/vovakirdan/tui-darts/internal/games/targetbull"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// ApplyHit applies a hit with the rules of the state's mode. The result is
// s itself when the hit was not applied.
func ApplyHit(s core.State, hit segment.Hit, hitID string) core.State {
	switch st := s.(type) {
	case *cricket.State:
		return cricket.ApplyHit(st, hit, hitID)
	case *zeroone.State:
		return zeroone.ApplyHit(st, hit, hitID)
	case *targetbull.State:
		return targetbull.ApplyHit(st, hit, hitID)
	default:
		return s
	}
}

// CompleteTurn ends the current player's turn. The result is s itself when
// the game is not in play.
func CompleteTurn(s core.State) core.State {
	switch st := s.(type) {
	case *cricket.State:
		return cricket.CompleteTurn(st)
	case *zeroone.State:
		return zeroone.CompleteTurn(st)
	case *targetbull.State:
		return targetbull.CompleteTurn(st)
	default:
		return s
	}
}

// CloneState returns a deep copy of s.
func CloneState(s core.State) core.State {
	if s == nil {
		return nil
	}
	return s.CloneState()
}

// legEnded reports whether a 01 leg was won between cur and next, with
// the leg number and its winner.
func legEnded(cur, next core.State) (leg, winner int, ok bool) {
	c, okc := cur.(*zeroone.State)
	n, okn := next.(*zeroone.State)
	if !okc || !okn {
		return 0, 0, false
	}
	if (n.AwaitingNextLeg && !c.AwaitingNextLeg) || (n.Finished && !c.Finished) {
		return c.Match.CurrentLeg, n.LegWinnerIndex, true
	}
	return 0, 0, false
}
