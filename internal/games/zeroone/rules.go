package zeroone

import (
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/match"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// DartValue returns the points a hit is worth.
func DartValue(hit segment.Hit) int {
	if !hit.Scores() {
		return 0
	}
	return hit.Value
}

// IsBust reports whether scoring a dart that leaves newScore is a bust:
// below zero, exactly one, or zero without a double when double-out is on.
func IsBust(newScore int, hit segment.Hit, doubleOut bool) bool {
	switch {
	case newScore < 0:
		return true
	case newScore == 1:
		return true
	case newScore == 0 && doubleOut && hit.Ring != segment.RingDouble:
		return true
	}
	return false
}

// ApplyHit applies one dart for the current player and returns the new
// state. When the hit cannot be applied (game not running, leg awaiting
// restart, three darts already thrown, repeated hitID, reset sentinel) s
// itself is returned.
//
// A bust leaves the remaining score untouched, clears the turn total and
// forfeits the rest of the turn.
func ApplyHit(s *State, hit segment.Hit, hitID string) *State {
	if s == nil || s.AwaitingNextLeg || !s.Accepts(hitID) || hit.IsReset() {
		return s
	}

	next := s.Clone()
	next.DartsThrownThisTurn++
	next.MarkProcessed(hitID)
	next.LastDartBust = false

	idx := next.CurrentPlayerIndex
	player := &next.Players[idx]
	player.DartsThrownTotal++

	value := DartValue(hit)
	newScore := player.RemainingScore - value

	if IsBust(newScore, hit, next.Config.DoubleOut) {
		player.Busts++
		next.TurnScoreAccumulated = 0
		next.DartsThrownThisTurn = core.MaxDartsPerTurn
		next.LastDartBust = true
		return next
	}

	player.RemainingScore = newScore
	player.TotalPointsScored += value
	next.TurnScoreAccumulated += value

	if newScore == 0 {
		legWon(next, idx)
	}
	return next
}

// legWon hands a finished leg to the match layer.
func legWon(s *State, winner int) {
	remaining := make([]int, len(s.Players))
	for i, p := range s.Players {
		remaining[i] = p.RemainingScore
	}

	ms, out := match.OnLegWon(s.Match, s.Config.Match, match.LegResult{
		Winner:    winner,
		Remaining: remaining,
	})
	s.Match = ms
	s.LegWinnerIndex = winner

	if out.MatchFinished {
		s.Finish(out.MatchWinner)
		return
	}
	s.AwaitingNextLeg = true
	s.NextLegStarter = out.NextStarter
}

// CompleteTurn ends the current player's turn. After a won leg it starts
// the next one with fresh player states. Going past MaxRounds ends the leg
// in favour of the lowest remaining score (first in player order on ties).
func CompleteTurn(s *State) *State {
	if s == nil || !s.InPlay() {
		return s
	}

	next := s.Clone()
	if next.AwaitingNextLeg {
		next.startLeg(next.roster(), next.NextLegStarter)
		return next
	}

	next.Players[next.CurrentPlayerIndex].RoundsPlayed++
	next.TurnScoreAccumulated = 0
	next.LastDartBust = false
	next.Advance(len(next.Players))

	if next.RoundLimitReached() {
		next.CurrentRound = next.MaxRounds
		legWon(next, lowestRemaining(next))
	}
	return next
}

func lowestRemaining(s *State) int {
	best := 0
	for i := 1; i < len(s.Players); i++ {
		if s.Players[i].RemainingScore < s.Players[best].RemainingScore {
			best = i
		}
	}
	return best
}

var _ core.State = (*State)(nil)
