package core

// MaxDartsPerTurn is the number of darts a player throws per visit.
const MaxDartsPerTurn = 3

// NoWinner marks an undecided WinnerIndex.
const NoWinner = -1

// Turn is the bookkeeping every mode's state carries: whose turn it is,
// how many darts were thrown, the round counter and the result.
type Turn struct {
	CurrentPlayerIndex  int
	DartsThrownThisTurn int // 0..MaxDartsPerTurn
	CurrentRound        int // 1-based
	MaxRounds           int // 0 = unlimited
	StarterIndex        int // Player who opened the current game or leg
	Started             bool
	Finished            bool
	WinnerIndex         int
	LastProcessedHitID  string
	HitProcessed        bool // LastProcessedHitID is set, even when empty
}

// NewTurn returns the header of a freshly started game.
func NewTurn(maxRounds, starter int) Turn {
	return Turn{
		CurrentPlayerIndex: starter,
		CurrentRound:       1,
		MaxRounds:          maxRounds,
		StarterIndex:       starter,
		Started:            true,
		WinnerIndex:        NoWinner,
	}
}

// Accepts reports whether a hit with the given correlation id may be
// applied. Any id equal to the last processed one is a repeat, the empty
// id included.
func (t Turn) Accepts(hitID string) bool {
	if !t.Started || t.Finished {
		return false
	}
	if t.DartsThrownThisTurn >= MaxDartsPerTurn {
		return false
	}
	return !t.IsRepeat(hitID)
}

// IsRepeat reports whether hitID is the last processed correlation id.
func (t Turn) IsRepeat(hitID string) bool {
	return t.HitProcessed && hitID == t.LastProcessedHitID
}

// MarkProcessed records hitID as the last applied correlation id.
func (t *Turn) MarkProcessed(hitID string) {
	t.LastProcessedHitID = hitID
	t.HitProcessed = true
}

// InPlay reports whether turns can still be completed.
func (t Turn) InPlay() bool {
	return t.Started && !t.Finished
}

// Advance moves to the next player of n, resets the dart count and bumps
// the round when play wraps back to the starter. It reports whether a new
// round began.
func (t *Turn) Advance(n int) bool {
	if n <= 0 {
		return false
	}
	t.CurrentPlayerIndex = (t.CurrentPlayerIndex + 1) % n
	t.DartsThrownThisTurn = 0
	if t.CurrentPlayerIndex == t.StarterIndex {
		t.CurrentRound++
		return true
	}
	return false
}

// RoundLimitReached reports whether the round counter moved past MaxRounds.
func (t Turn) RoundLimitReached() bool {
	return t.MaxRounds > 0 && t.CurrentRound > t.MaxRounds
}

// Finish ends the game with the given winner.
func (t *Turn) Finish(winner int) {
	t.Finished = true
	t.WinnerIndex = winner
}

// HasWinner reports whether a winner has been decided.
func (t Turn) HasWinner() bool {
	return t.WinnerIndex != NoWinner
}
