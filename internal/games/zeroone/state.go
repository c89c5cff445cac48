// Package zeroone implements 01 scoring (301, 501, 701): count down to
// exactly zero, optionally finishing on a double, over one or more legs.
package zeroone

import (
	"fmt"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/match"
)

// StartScores lists the supported starting scores.
var StartScores = []int{301, 501, 701}

// Config holds the rule options of a 01 game.
type Config struct {
	StartScore int               `yaml:"start_score"`
	DoubleOut  bool              `yaml:"double_out"`
	MaxRounds  int               `yaml:"max_rounds"`
	Match      match.LegSettings `yaml:"match"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	valid := false
	for _, s := range StartScores {
		if c.StartScore == s {
			valid = true
		}
	}
	if !valid {
		return &core.ConfigurationError{Field: "zeroone.start_score", Reason: fmt.Sprintf("unsupported start score %d", c.StartScore)}
	}
	if c.MaxRounds < 0 {
		return &core.ConfigurationError{Field: "zeroone.max_rounds", Reason: "must not be negative"}
	}
	return c.Match.Validate()
}

// PlayerState is one player's progress in the current leg.
type PlayerState struct {
	Player            core.Player
	DartsThrownTotal  int
	RoundsPlayed      int
	RemainingScore    int
	TotalPointsScored int
	Busts             int
}

// Average returns the three-dart average.
func (p PlayerState) Average() float64 {
	if p.DartsThrownTotal == 0 {
		return 0
	}
	return float64(p.TotalPointsScored) * core.MaxDartsPerTurn / float64(p.DartsThrownTotal)
}

// State is a 01 game snapshot.
type State struct {
	core.Turn
	Config               Config
	Players              []PlayerState
	TurnScoreAccumulated int
	LastDartBust         bool

	Match match.State

	// AwaitingNextLeg is set when a leg was won but the match goes on.
	// Hits are absorbed until CompleteTurn starts the next leg.
	AwaitingNextLeg bool
	LegWinnerIndex  int
	NextLegStarter  int
}

// NewState creates a started 01 game. Player 0 throws first in leg one.
// A zero Match setting plays a single leg.
func NewState(players []core.Player, cfg Config) (*State, error) {
	if err := core.ValidatePlayers(players); err != nil {
		return nil, err
	}
	if cfg.Match.Format == "" {
		cfg.Match = match.SingleLeg()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &State{
		Config:         cfg,
		Match:          match.NewState(len(players), cfg.Match),
		LegWinnerIndex: core.NoWinner,
	}
	s.startLeg(players, 0)
	return s, nil
}

// startLeg recreates every player's state and hands the throw to starter.
func (s *State) startLeg(players []core.Player, starter int) {
	last, processed := s.LastProcessedHitID, s.HitProcessed
	s.Turn = core.NewTurn(s.Config.MaxRounds, starter)
	s.LastProcessedHitID, s.HitProcessed = last, processed
	s.Players = make([]PlayerState, len(players))
	for i, p := range players {
		s.Players[i] = PlayerState{Player: p, RemainingScore: s.Config.StartScore}
	}
	s.TurnScoreAccumulated = 0
	s.LastDartBust = false
	s.AwaitingNextLeg = false
	s.LegWinnerIndex = core.NoWinner
}

func (s *State) roster() []core.Player {
	players := make([]core.Player, len(s.Players))
	for i, p := range s.Players {
		players[i] = p.Player
	}
	return players
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Players = append([]PlayerState(nil), s.Players...)
	c.Match = s.Match.Clone()
	return &c
}

// GameState implements core.State.
func (*State) GameState() {}

// Mode implements core.State.
func (*State) Mode() core.Mode { return core.ModeZeroOne }

// Header implements core.State.
func (s *State) Header() core.Turn { return s.Turn }

// PlayerCount implements core.State.
func (s *State) PlayerCount() int { return len(s.Players) }

// PlayerAt implements core.State.
func (s *State) PlayerAt(i int) core.Player { return s.Players[i].Player }

// CloneState implements core.State.
func (s *State) CloneState() core.State { return s.Clone() }

// Current returns the state of the player whose turn it is.
func (s *State) Current() PlayerState {
	return s.Players[s.CurrentPlayerIndex]
}
