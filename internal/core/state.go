package core

// Mode identifies the rule set a state belongs to.
type Mode string

const (
	ModeCricket    Mode = "cricket"
	ModeZeroOne    Mode = "zeroone"
	ModeTargetBull Mode = "targetbull"
)

// State is the sealed variant of per-mode game states. Implementations are
// *cricket.State, *zeroone.State and *targetbull.State; callers dispatch
// with a type switch.
//
// States are snapshots: engines return a new value for every accepted
// change and never mutate the one they were given.
type State interface {
	// GameState is a marker method for type safety.
	GameState()

	// Mode returns the rule set of this state.
	Mode() Mode

	// Header returns a copy of the turn bookkeeping.
	Header() Turn

	// PlayerCount returns the number of players in the game.
	PlayerCount() int

	// PlayerAt returns the player at index i.
	PlayerAt(i int) Player

	// CloneState returns a deep copy with independent storage.
	CloneState() State
}

// Winner returns the winning player of a finished state.
func Winner(s State) (Player, bool) {
	h := s.Header()
	if !h.HasWinner() || h.WinnerIndex >= s.PlayerCount() {
		return Player{}, false
	}
	return s.PlayerAt(h.WinnerIndex), true
}

// CurrentPlayer returns the player whose turn it is.
func CurrentPlayer(s State) Player {
	return s.PlayerAt(s.Header().CurrentPlayerIndex)
}
