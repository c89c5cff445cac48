package config

import (
	"fmt"

	"github.com/vovakirdan/tui-darts/internal/match"
)

// Preset is a named bundle of match rules.
type Preset string

const (
	PresetPub    Preset = "pub"    // Single-out, one leg, no round limit
	PresetLeague Preset = "league" // Double-out, best of 5 legs, loser starts
	PresetPro    Preset = "pro"    // Double-out, first to 3 sets of first to 3 legs
)

// Presets lists the known presets.
var Presets = []Preset{PresetPub, PresetLeague, PresetPro}

// ApplyPreset modifies the config based on a preset.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case PresetPub:
		cfg.ZeroOne.DoubleOut = false
		cfg.ZeroOne.MaxRounds = 0
		cfg.ZeroOne.Match = match.SingleLeg()
	case PresetLeague:
		cfg.ZeroOne.DoubleOut = true
		cfg.ZeroOne.Match = match.LegSettings{
			Format:       match.FormatLegs,
			Win:          match.Condition{Type: match.BestOf, Count: 5},
			StartingRule: match.Loser,
		}
	case PresetPro:
		cfg.ZeroOne.DoubleOut = true
		cfg.ZeroOne.Match = match.LegSettings{
			Format:       match.FormatSets,
			Win:          match.Condition{Type: match.FirstTo, Count: 3},
			StartingRule: match.Alternate,
			Sets:         &match.SetSettings{Legs: match.Condition{Type: match.FirstTo, Count: 3}},
		}
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}
