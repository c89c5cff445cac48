// Package targetbull implements Target Bull: only the bull scores, and the
// game ends at a target score or after a fixed number of rounds.
package targetbull

import (
	"fmt"

	"github.com/vovakirdan/tui-darts/internal/core"
)

// BullMode selects how the outer bull is valued.
type BullMode string

const (
	// Split counts the outer bull as 25 and the bull as 50.
	Split BullMode = "split"
	// Unified counts both as 50.
	Unified BullMode = "unified"
)

// Config holds the rule options of a Target Bull game.
type Config struct {
	BullMode    BullMode `yaml:"bull_mode"`
	TargetScore int      `yaml:"target_score"` // 0 = no target
	MaxRounds   int      `yaml:"max_rounds"`   // 0 = unlimited
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.BullMode != Split && c.BullMode != Unified {
		return &core.ConfigurationError{Field: "targetbull.bull_mode", Reason: fmt.Sprintf("unknown bull mode %q", c.BullMode)}
	}
	if c.TargetScore < 0 {
		return &core.ConfigurationError{Field: "targetbull.target_score", Reason: "must not be negative"}
	}
	if c.MaxRounds < 0 {
		return &core.ConfigurationError{Field: "targetbull.max_rounds", Reason: "must not be negative"}
	}
	return nil
}

// PlayerState tracks score and bull accuracy for one player.
type PlayerState struct {
	Player           core.Player
	DartsThrownTotal int
	RoundsPlayed     int
	TotalScore       int
	Hits25           int // Outer bull counted as 25 (split mode)
	HitsBull         int // Outer bull counted as 50 (unified mode)
	HitsDoubleBull   int
}

// ValidHits returns the number of darts that scored.
func (p PlayerState) ValidHits() int {
	return p.Hits25 + p.HitsBull + p.HitsDoubleBull
}

// PPD returns points per dart.
func (p PlayerState) PPD() float64 {
	if p.DartsThrownTotal == 0 {
		return 0
	}
	return float64(p.TotalScore) / float64(p.DartsThrownTotal)
}

// PPR returns points per completed round.
func (p PlayerState) PPR() float64 {
	if p.RoundsPlayed == 0 {
		return 0
	}
	return float64(p.TotalScore) / float64(p.RoundsPlayed)
}

// Accuracy returns the percentage of darts that hit the bull.
func (p PlayerState) Accuracy() float64 {
	if p.DartsThrownTotal == 0 {
		return 0
	}
	return float64(p.ValidHits()) * 100 / float64(p.DartsThrownTotal)
}

// State is a Target Bull game snapshot.
type State struct {
	core.Turn
	Config  Config
	Players []PlayerState
}

// NewState creates a started Target Bull game.
func NewState(players []core.Player, cfg Config) (*State, error) {
	if err := core.ValidatePlayers(players); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &State{
		Turn:    core.NewTurn(cfg.MaxRounds, 0),
		Config:  cfg,
		Players: make([]PlayerState, len(players)),
	}
	for i, p := range players {
		s.Players[i] = PlayerState{Player: p}
	}
	return s, nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Players = append([]PlayerState(nil), s.Players...)
	return &c
}

// GameState implements core.State.
func (*State) GameState() {}

// Mode implements core.State.
func (*State) Mode() core.Mode { return core.ModeTargetBull }

// Header implements core.State.
func (s *State) Header() core.Turn { return s.Turn }

// PlayerCount implements core.State.
func (s *State) PlayerCount() int { return len(s.Players) }

// PlayerAt implements core.State.
func (s *State) PlayerAt(i int) core.Player { return s.Players[i].Player }

// CloneState implements core.State.
func (s *State) CloneState() core.State { return s.Clone() }
