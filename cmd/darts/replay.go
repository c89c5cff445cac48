package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/board"
	"github.com/vovakirdan/tui-darts/internal/core"
	"github.com/vovakirdan/tui-darts/internal/engine"
	"github.com/vovakirdan/tui-darts/internal/platform/tui"
	"github.com/vovakirdan/tui-darts/internal/registry"
	"github.com/vovakirdan/tui-darts/internal/stats"
)

var replayCmd = &cobra.Command{
	Use:   "replay <mode> <script.yaml>",
	Short: "Replay a throw script",
	Long: `Feed a recorded YAML throw script through the scoring engine and
print the final scoreboard and statistics.

Script format:
  players: [Ann, Bob]
  throws:
    - T20
    - {hit: S19, id: board-17}   # explicit board id, repeats are dropped
    - R                          # end the turn early

Examples:
  darts replay cricket ./throws.yaml
  darts replay 501 ./final.yaml --preset league`,
	Args: cobra.ExactArgs(2),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	modeID, path := args[0], args[1]
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'darts list')", modeID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger("replay")
	if err != nil {
		return err
	}

	script, err := board.LoadScript(path)
	if err != nil {
		return err
	}
	names := cfg.Players
	if len(script.Players) > 0 && len(flagPlayers) == 0 {
		names = script.Players
	}

	initial, err := registry.Create(modeID, core.NewPlayers(names...), cfg)
	if err != nil {
		return err
	}

	tracker := stats.NewTracker(initial)
	rejected := 0
	session, err := engine.NewSession(initial,
		engine.WithLogger(logger),
		engine.WithHistoryLimit(cfg.HistoryLimit),
		engine.WithDedupWindow(cfg.DedupWindow),
		engine.WithHandler(func(e engine.Event) {
			tracker.Handle(e)
			switch ev := e.(type) {
			case engine.HitRejected:
				rejected++
				logger.Info("throw ignored", "id", ev.Event.ID, "hit", ev.Event.Hit.ID, "status", ev.Status)
			case engine.LegFinished:
				logger.Info("leg finished", "leg", ev.Leg, "winner", ev.State.PlayerAt(ev.WinnerIndex).Name)
			}
		}),
	)
	if err != nil {
		return err
	}

	if err := session.Run(context.Background(), script); err != nil {
		return err
	}

	state := session.State()
	fmt.Println(tui.RenderScoreboard(state))
	fmt.Println()
	fmt.Println(tui.RenderSummary(state.Mode(), tracker.Summaries()))
	fmt.Println()

	if w, ok := core.Winner(state); ok {
		fmt.Printf("Winner: %s\n", w.Name)
	} else {
		h := state.Header()
		fmt.Printf("No result yet: round %d, %s to throw\n", h.CurrentRound, core.CurrentPlayer(state).Name)
	}
	if rejected > 0 {
		fmt.Printf("%d throw(s) ignored\n", rejected)
	}
	return nil
}
