// Package match layers legs and sets above a single-leg game: it counts
// leg wins, decides when the match is over and picks who starts the next leg.
package match

import (
	"fmt"

	"github.com/vovakirdan/tui-darts/internal/core"
)

// Format selects whether legs are grouped into sets.
type Format string

const (
	FormatLegs Format = "legs"
	FormatSets Format = "sets"
)

// ConditionType selects how a win count is read.
type ConditionType string

const (
	// FirstTo wins when a player reaches Count wins.
	FirstTo ConditionType = "first_to"
	// BestOf wins when a player reaches a strict majority of Count.
	BestOf ConditionType = "best_of"
)

// Condition is a win condition such as "first to 3" or "best of 5".
type Condition struct {
	Type  ConditionType `yaml:"type"`
	Count int           `yaml:"count"`
}

// Target returns the number of wins that decides the condition.
func (c Condition) Target() int {
	if c.Type == BestOf {
		return (c.Count + 1) / 2
	}
	return c.Count
}

// String returns e.g. "first to 3".
func (c Condition) String() string {
	if c.Type == BestOf {
		return fmt.Sprintf("best of %d", c.Count)
	}
	return fmt.Sprintf("first to %d", c.Count)
}

func (c Condition) validate(field string) error {
	if c.Type != FirstTo && c.Type != BestOf {
		return &core.ConfigurationError{Field: field, Reason: fmt.Sprintf("unknown condition %q", c.Type)}
	}
	if c.Count < 1 {
		return &core.ConfigurationError{Field: field, Reason: "count must be at least 1"}
	}
	return nil
}

// StartingRule picks who opens the next leg.
type StartingRule string

const (
	// Alternate hands the throw to the player after the leg winner.
	Alternate StartingRule = "alternate"
	// Loser hands the throw to the player who finished furthest behind.
	Loser StartingRule = "loser"
)

// SetSettings configures the legs played inside each set.
type SetSettings struct {
	Legs Condition `yaml:"legs"`
}

// LegSettings is read-only match configuration supplied at setup.
// For FormatLegs, Win counts legs. For FormatSets, Win counts sets and
// Sets.Legs decides each set.
type LegSettings struct {
	Format       Format       `yaml:"format"`
	Win          Condition    `yaml:"win"`
	StartingRule StartingRule `yaml:"starting_player"`
	Sets         *SetSettings `yaml:"sets,omitempty"`
}

// SingleLeg is a match decided by one leg.
func SingleLeg() LegSettings {
	return LegSettings{
		Format:       FormatLegs,
		Win:          Condition{Type: FirstTo, Count: 1},
		StartingRule: Alternate,
	}
}

// IsSingleLeg reports whether the first leg won ends the match.
func (s LegSettings) IsSingleLeg() bool {
	return s.Format != FormatSets && s.Win.Target() == 1
}

// Validate checks the settings and returns a ConfigurationError on failure.
func (s LegSettings) Validate() error {
	switch s.Format {
	case FormatLegs, FormatSets:
	default:
		return &core.ConfigurationError{Field: "match.format", Reason: fmt.Sprintf("unknown format %q", s.Format)}
	}
	if err := s.Win.validate("match.win"); err != nil {
		return err
	}
	switch s.StartingRule {
	case Alternate, Loser:
	default:
		return &core.ConfigurationError{Field: "match.starting_player", Reason: fmt.Sprintf("unknown rule %q", s.StartingRule)}
	}
	if s.Format == FormatSets {
		if s.Sets == nil {
			return &core.ConfigurationError{Field: "match.sets", Reason: "sets format needs set settings"}
		}
		if err := s.Sets.Legs.validate("match.sets.legs"); err != nil {
			return err
		}
	}
	return nil
}
