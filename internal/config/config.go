// Package config provides YAML-based configuration loading for the
// scorer: players, engine limits and the rule options of every mode.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/games/cricket"
	"github.com/vovakirdan/tui-darts/internal/games/targetbull"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
	"github.com/vovakirdan/tui-darts/internal/match"
)

// Config is the full scorer configuration.
type Config struct {
	Players      []string          `yaml:"players"`
	HistoryLimit int               `yaml:"history_limit"` // Undo steps kept
	DedupWindow  int               `yaml:"dedup_window"`  // Recent hit ids remembered
	Cricket      cricket.Config    `yaml:"cricket"`
	ZeroOne      zeroone.Config    `yaml:"zeroone"`
	TargetBull   targetbull.Config `yaml:"targetbull"`
}

// normalize fills optional sections left empty in a YAML file.
func (c *Config) normalize() {
	if c.ZeroOne.Match.Format == "" {
		c.ZeroOne.Match = match.SingleLeg()
	}
}

// Validate checks every section and returns a ConfigurationError for the
// first problem found.
func (c Config) Validate() error {
	if len(c.Players) > 0 {
		if err := core.ValidatePlayers(core.NewPlayers(c.Players...)); err != nil {
			return err
		}
	}
	if c.HistoryLimit < 0 {
		return &core.ConfigurationError{Field: "history_limit", Reason: "must not be negative"}
	}
	if c.DedupWindow < 0 {
		return &core.ConfigurationError{Field: "dedup_window", Reason: "must not be negative"}
	}
	if err := c.Cricket.Validate(); err != nil {
		return err
	}
	if err := c.ZeroOne.Validate(); err != nil {
		return err
	}
	if err := c.TargetBull.Validate(); err != nil {
		return err
	}
	return nil
}

// WithPlayers returns a copy of c with the player list replaced.
func (c Config) WithPlayers(names []string) Config {
	c.Players = append([]string(nil), names...)
	return c
}

// WithStartScore returns a copy of c with the 01 start score replaced.
func (c Config) WithStartScore(score int) Config {
	c.ZeroOne.StartScore = score
	return c
}

// WithCricketVariant returns a copy of c with the cricket variant replaced.
func (c Config) WithCricketVariant(v cricket.Variant) Config {
	c.Cricket.Variant = v
	return c
}

// Summary describes the match settings in one line, e.g. "501 double-out, first to 3 legs".
func (c Config) Summary() string {
	z := c.ZeroOne
	out := "single-out"
	if z.DoubleOut {
		out = "double-out"
	}
	m := z.Match
	switch {
	case m.Format == match.FormatSets && m.Sets != nil:
		return fmt.Sprintf("%d %s, %s sets (%s legs each)", z.StartScore, out, m.Win, m.Sets.Legs)
	case m.IsSingleLeg():
		return fmt.Sprintf("%d %s", z.StartScore, out)
	default:
		return fmt.Sprintf("%d %s, %s legs", z.StartScore, out, m.Win)
	}
}
