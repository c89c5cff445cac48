package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-darts/internal/engine"
	"github.com/vovakirdan/tui-darts/internal/games/cricket"
	"github.com/vovakirdan/tui-darts/internal/games/targetbull"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
	"github.com/vovakirdan/tui-darts/internal/history"
	"github.com/vovakirdan/tui-darts/internal/match"
)

//go:embed defaults/darts.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Players:      []string{"Player 1", "Player 2"},
		HistoryLimit: history.DefaultLimit,
		DedupWindow:  engine.DefaultDedupWindow,
		Cricket: cricket.Config{
			Variant:   cricket.Standard,
			MaxRounds: 20,
		},
		ZeroOne: zeroone.Config{
			StartScore: 501,
			DoubleOut:  true,
			MaxRounds:  0,
			Match:      match.SingleLeg(),
		},
		TargetBull: targetbull.Config{
			BullMode:    targetbull.Split,
			TargetScore: 0,
			MaxRounds:   10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
