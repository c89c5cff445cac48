package registry

import (
	"github.com/vovakirdan/tui-darts/internal/config"
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/games/cricket"
	"github.com/vovakirdan/tui-darts/internal/games/targetbull"
	"github.com/vovakirdan/tui-darts/internal/games/zeroone"
)

func init() {
	Register("cricket", "Cricket", cricketMode(""))
	Register("cutthroat", "Cut-Throat Cricket", cricketMode(cricket.CutThroat))
	Register("301", "301", zeroOneMode(301))
	Register("501", "501", zeroOneMode(501))
	Register("701", "701", zeroOneMode(701))
	Register("01", "01 (configured start score)", zeroOneMode(0))
	Register("bull", "Target Bull", func(players []core.Player, cfg config.Config) (core.State, error) {
		return targetbull.NewState(players, cfg.TargetBull)
	})
}

// cricketMode forces a variant; an empty variant uses the configured one.
func cricketMode(v cricket.Variant) Factory {
	return func(players []core.Player, cfg config.Config) (core.State, error) {
		c := cfg.Cricket
		if v != "" {
			c.Variant = v
		}
		return cricket.NewState(players, c)
	}
}

// zeroOneMode forces a start score; zero uses the configured one.
func zeroOneMode(start int) Factory {
	return func(players []core.Player, cfg config.Config) (core.State, error) {
		z := cfg.ZeroOne
		if start != 0 {
			z.StartScore = start
		}
		return zeroone.NewState(players, z)
	}
}
