package cricket

import (
	"sort"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// marksFor returns the marks a ring is worth.
func marksFor(r segment.Ring) int {
	return r.Multiplier()
}

// targetValue returns the points one overflow mark is worth.
func targetValue(section int) int {
	return section // bull is 25 per mark
}

// ApplyHit applies one dart for the current player and returns the new
// state. When the hit cannot be applied (game not running, three darts
// already thrown, repeated hitID, reset sentinel) s itself is returned.
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

	if hit.Ring == segment.RingOther || !IsTarget(hit.Section) {
		return next
	}

	target := hit.Section
	current := player.Marks[target]
	toAdd := marksFor(hit.Ring)

	newMarks := min(current.Marks+toAdd, MarksToClose)
	player.TotalMarks += newMarks - current.Marks
	overflow := current.Marks + toAdd - newMarks

	current.Marks = newMarks
	player.Marks[target] = current

	if overflow > 0 {
		distribute(next, idx, target, overflow*targetValue(target))
	}

	checkWin(next)
	return next
}

// distribute hands out overflow points according to the variant.
func distribute(s *State, hitter, target, points int) {
	switch s.Config.Variant {
	case CutThroat:
		for i := range s.Players {
			if i == hitter || s.Players[i].Marks[target].Closed() {
				continue
			}
			addPoints(&s.Players[i], target, points)
		}
	default:
		if anyOpponentOpen(s, hitter, target) {
			addPoints(&s.Players[hitter], target, points)
		}
	}
}

func anyOpponentOpen(s *State, hitter, target int) bool {
	for i := range s.Players {
		if i != hitter && !s.Players[i].Marks[target].Closed() {
			return true
		}
	}
	return false
}

func addPoints(p *PlayerState, target, points int) {
	m := p.Marks[target]
	m.Points += points
	p.Marks[target] = m
	p.TotalPoints += points
}

// checkWin finishes the game when a player has closed everything and holds
// the best score for the variant.
func checkWin(s *State) {
	for i := range s.Players {
		if s.Players[i].AllClosed() && isExtremal(s, i) {
			s.Finish(i)
			return
		}
	}
}

// isExtremal reports whether player i has the best total (ties count).
func isExtremal(s *State, i int) bool {
	mine := s.Players[i].TotalPoints
	for j := range s.Players {
		if j == i {
			continue
		}
		other := s.Players[j].TotalPoints
		if s.Config.Variant == CutThroat && other < mine {
			return false
		}
		if s.Config.Variant != CutThroat && other > mine {
			return false
		}
	}
	return true
}

// CompleteTurn ends the current player's turn. Wrapping back to the first
// player starts a new round; going past MaxRounds finishes the game with
// the best total (first in player order on ties).
func CompleteTurn(s *State) *State {
	if s == nil || !s.InPlay() {
		return s
	}

	next := s.Clone()
	next.Players[next.CurrentPlayerIndex].RoundsPlayed++
	next.Advance(len(next.Players))

	if next.RoundLimitReached() {
		next.CurrentRound = next.MaxRounds
		next.Finish(bestByPoints(next))
	}
	return next
}

func bestByPoints(s *State) int {
	best := 0
	for i := 1; i < len(s.Players); i++ {
		p := s.Players[i].TotalPoints
		b := s.Players[best].TotalPoints
		if (s.Config.Variant == CutThroat && p < b) || (s.Config.Variant != CutThroat && p > b) {
			best = i
		}
	}
	return best
}

// Standings returns player indexes ordered best first for the variant.
func Standings(s *State) []int {
	order := make([]int, len(s.Players))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		a, b := order[x], order[y]
		pa, pb := s.Players[a].TotalPoints, s.Players[b].TotalPoints
		if pa == pb {
			return s.Players[a].TotalMarks > s.Players[b].TotalMarks
		}
		if s.Config.Variant == CutThroat {
			return pa < pb
		}
		return pa > pb
	})
	return order
}

var _ core.State = (*State)(nil)
