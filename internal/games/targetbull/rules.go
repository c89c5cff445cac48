package targetbull

import (
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// DartValue returns what a hit scores: bull 50, outer bull 25 (split) or
// 50 (unified), anything else 0.
func DartValue(hit segment.Hit, mode BullMode) int {
	if !hit.IsBull() {
		return 0
	}
	if hit.Ring == segment.RingDouble || mode == Unified {
		return 50
	}
	return 25
}

// ApplyHit applies one dart for the current player and returns the new
// state, or s itself when the hit cannot be applied.
func ApplyHit(s *State, hit segment.Hit, hitID string) *State {
	if s == nil || !s.Accepts(hitID) || hit.IsReset() {
		return s
	}

	next := s.Clone()
	next.DartsThrownThisTurn++
	next.MarkProcessed(hitID)

	idx := next.CurrentPlayerIndex
	player := &next.Players[idx]
	player.DartsThrownTotal++

	value := DartValue(hit, next.Config.BullMode)
	if value == 0 {
		return next
	}

	switch {
	case hit.Ring == segment.RingDouble:
		player.HitsDoubleBull++
	case next.Config.BullMode == Unified:
		player.HitsBull++
	default:
		player.Hits25++
	}
	player.TotalScore += value

	if next.Config.TargetScore > 0 && player.TotalScore >= next.Config.TargetScore {
		next.Finish(idx)
	}
	return next
}

// CompleteTurn ends the current player's turn. Going past MaxRounds ends
// the game with the highest total; ties go to the earlier player.
func CompleteTurn(s *State) *State {
	if s == nil || !s.InPlay() {
		return s
	}

	next := s.Clone()
	next.Players[next.CurrentPlayerIndex].RoundsPlayed++
	next.Advance(len(next.Players))

	if next.RoundLimitReached() {
		next.CurrentRound = next.MaxRounds
		best := 0
		for i := 1; i < len(next.Players); i++ {
			if next.Players[i].TotalScore > next.Players[best].TotalScore {
				best = i
			}
		}
		next.Finish(best)
	}
	return next
}

var _ core.State = (*State)(nil)
