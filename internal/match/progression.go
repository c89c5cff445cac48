package match

import "github.com/vovakirdan/tui-darts/internal/core"

// State is the leg/set bookkeeping of one match. It is only changed by
// OnLegWon, which returns a new value.
type State struct {
	LegWins    []int // Legs won in the match (legs format) or in the current set
	SetWins    []int // Sets won; nil for legs format
	CurrentLeg int   // 1-based, counts every leg of the match
	CurrentSet int   // 1-based; 0 for legs format
	LegsPlayed int   // Legs completed in the match (legs format) or the current set
	SetsPlayed int

	Finished    bool
	WinnerIndex int

	// TiebreakerRequired is set when a best-of match ran out of legs (or
	// sets) without a majority. The next win then decides the match.
	TiebreakerRequired bool
	// SetTiebreakerRequired is the same for the legs of the current set.
	SetTiebreakerRequired bool
}

// LegResult describes a finished leg.
type LegResult struct {
	Winner int
	// Remaining is how far each player was from finishing the leg (the
	// 01 remaining score). Used by the Loser starting rule; may be nil.
	Remaining []int
}

// Outcome tells the engine what to do after a leg.
type Outcome struct {
	LegWinner          int
	SetWon             bool
	MatchFinished      bool
	MatchWinner        int
	NextStarter        int
	TiebreakerRequired bool
}

// NewState creates the bookkeeping for a match between n players.
func NewState(n int, s LegSettings) State {
	st := State{
		LegWins:     make([]int, n),
		CurrentLeg:  1,
		WinnerIndex: core.NoWinner,
	}
	if s.Format == FormatSets {
		st.SetWins = make([]int, n)
		st.CurrentSet = 1
	}
	return st
}

// Clone returns a copy with independent slices.
func (s State) Clone() State {
	c := s
	c.LegWins = append([]int(nil), s.LegWins...)
	if s.SetWins != nil {
		c.SetWins = append([]int(nil), s.SetWins...)
	}
	return c
}

// OnLegWon records a leg win and evaluates the match. The returned state is
// a new value; st is left untouched. A finished match or an out-of-range
// winner returns st unchanged.
func OnLegWon(st State, s LegSettings, r LegResult) (State, Outcome) {
	n := len(st.LegWins)
	out := Outcome{
		LegWinner:   r.Winner,
		MatchWinner: st.WinnerIndex,
		NextStarter: r.Winner,
	}
	if st.Finished || r.Winner < 0 || r.Winner >= n {
		out.MatchFinished = st.Finished
		return st, out
	}

	next := st.Clone()
	w := r.Winner
	next.LegWins[w]++
	next.LegsPlayed++

	matchWon := false
	if s.Format == FormatSets && s.Sets != nil {
		setWon, tiebreak := decide(s.Sets.Legs, next.LegWins, next.LegsPlayed, w, st.SetTiebreakerRequired)
		next.SetTiebreakerRequired = tiebreak
		if setWon {
			out.SetWon = true
			next.SetWins[w]++
			next.SetsPlayed++
			next.LegWins = make([]int, n)
			next.LegsPlayed = 0
			next.SetTiebreakerRequired = false

			matchWon, tiebreak = decide(s.Win, next.SetWins, next.SetsPlayed, w, st.TiebreakerRequired)
			next.TiebreakerRequired = tiebreak
			if !matchWon {
				next.CurrentSet++
			}
		}
	} else {
		var tiebreak bool
		matchWon, tiebreak = decide(s.Win, next.LegWins, next.LegsPlayed, w, st.TiebreakerRequired)
		next.TiebreakerRequired = tiebreak
	}

	out.TiebreakerRequired = next.TiebreakerRequired || next.SetTiebreakerRequired
	if matchWon {
		next.Finished = true
		next.WinnerIndex = w
		out.MatchFinished = true
		out.MatchWinner = w
		return next, out
	}

	next.CurrentLeg++
	out.NextStarter = NextStarter(s.StartingRule, r, n)
	return next, out
}

// decide reports whether the scope counted by wins is won by winner, and
// whether a tiebreaker is now required. inTiebreak means the scope already
// ran out without a majority, so this win is the decider.
func decide(c Condition, wins []int, played, winner int, inTiebreak bool) (won, tiebreak bool) {
	if inTiebreak {
		return true, false
	}
	if wins[winner] >= c.Target() {
		return true, false
	}
	if c.Type == BestOf && played >= c.Count {
		return false, true
	}
	return false, false
}

// NextStarter picks the player who opens the next leg.
//
// Alternate: the player after the leg winner.
// Loser: the player who finished furthest from checking out (highest
// Remaining). Ties go to whoever comes first in rotation after the winner.
// Without Remaining data Loser falls back to Alternate.
func NextStarter(rule StartingRule, r LegResult, n int) int {
	if n <= 0 {
		return 0
	}
	after := (r.Winner + 1) % n
	if rule != Loser || len(r.Remaining) != n {
		return after
	}

	loser := after
	for i := 1; i < n; i++ {
		idx := (r.Winner + i) % n
		if r.Remaining[idx] > r.Remaining[loser] {
			loser = idx
		}
	}
	return loser
}
