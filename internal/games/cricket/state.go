// Package cricket implements Cricket scoring: close 15-20 and bull with
// three marks each, score on numbers your opponents still have open.
package cricket

import (
	"fmt"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/segment"
)

// Variant selects how overflow points are distributed.
type Variant string

const (
	// Standard adds points to the hitter; highest total wins.
	Standard Variant = "standard"
	// CutThroat adds points to opponents; lowest total wins.
	CutThroat Variant = "cutthroat"
)

// MarksToClose is the number of marks that closes a target.
const MarksToClose = 3

// Targets are the cricket numbers in board order, bull last.
var Targets = [...]int{15, 16, 17, 18, 19, 20, segment.SectionBull}

// IsTarget reports whether a section is one of the cricket numbers.
func IsTarget(section int) bool {
	for _, t := range Targets {
		if t == section {
			return true
		}
	}
	return false
}

// Config holds the rule options of a cricket game.
type Config struct {
	Variant   Variant `yaml:"variant"`
	MaxRounds int     `yaml:"max_rounds"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Variant != Standard && c.Variant != CutThroat {
		return &core.ConfigurationError{Field: "cricket.variant", Reason: fmt.Sprintf("unknown variant %q", c.Variant)}
	}
	if c.MaxRounds < 0 {
		return &core.ConfigurationError{Field: "cricket.max_rounds", Reason: "must not be negative"}
	}
	return nil
}

// Mark is the progress of one player on one target.
type Mark struct {
	Marks  int // 0..MarksToClose
	Points int // Points scored on (or against) this target
}

// Closed reports whether the target has three marks.
func (m Mark) Closed() bool {
	return m.Marks >= MarksToClose
}

// PlayerState is the per-player cricket board.
type PlayerState struct {
	Player           core.Player
	DartsThrownTotal int
	RoundsPlayed     int
	Marks            map[int]Mark // Keyed by target section
	TotalMarks       int          // Marks that actually registered
	TotalPoints      int
}

func newPlayerState(p core.Player) PlayerState {
	marks := make(map[int]Mark, len(Targets))
	for _, t := range Targets {
		marks[t] = Mark{}
	}
	return PlayerState{Player: p, Marks: marks}
}

// AllClosed reports whether every target is closed.
func (p PlayerState) AllClosed() bool {
	for _, t := range Targets {
		if !p.Marks[t].Closed() {
			return false
		}
	}
	return true
}

// MPR returns marks per round (three darts).
func (p PlayerState) MPR() float64 {
	if p.DartsThrownTotal == 0 {
		return 0
	}
	return float64(p.TotalMarks) * core.MaxDartsPerTurn / float64(p.DartsThrownTotal)
}

func (p PlayerState) clone() PlayerState {
	c := p
	c.Marks = make(map[int]Mark, len(p.Marks))
	for k, v := range p.Marks {
		c.Marks[k] = v
	}
	return c
}

// State is a cricket game snapshot.
type State struct {
	core.Turn
	Config  Config
	Players []PlayerState
}

// NewState creates a started cricket game. Player 0 throws first.
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
		s.Players[i] = newPlayerState(p)
	}
	return s, nil
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	c := *s
	c.Players = make([]PlayerState, len(s.Players))
	for i, p := range s.Players {
		c.Players[i] = p.clone()
	}
	return &c
}

// GameState implements core.State.
func (*State) GameState() {}

// Mode implements core.State.
func (*State) Mode() core.Mode { return core.ModeCricket }

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
