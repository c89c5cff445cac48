package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-darts/internal/platform/tui"
	"github.com/vovakirdan/tui-darts/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Score a game",
	Long: `Open the scoring screen for a game mode. Without a mode a menu
lets you pick one.

Type each dart as a segment code and press Enter:
  T20, D16, S5    - treble, double, single
  SB / 25         - outer bull
  DB / BULL / 50  - bull
  M               - miss
  R               - end the turn early

Controls:
  Tab             - Next player
  Ctrl+Z          - Undo
  Ctrl+R          - Re-send the last dart (dropped as a duplicate)
  Esc             - Back to menu
  Ctrl+C          - Quit

Examples:
  darts play
  darts play cricket --players Ann,Bob,Cid
  darts play 501 --preset pro`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger("darts")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	modeID := ""
	if len(args) == 1 {
		modeID = args[0]
		if !registry.Exists(modeID) {
			return fmt.Errorf("unknown mode %q (run 'darts list')", modeID)
		}
	}

	for {
		if len(args) == 0 {
			modeID, err = tui.RunMenu(cfg.Players, cfg.Summary(), width, height)
			if err != nil {
				return err
			}
			if modeID == "" {
				return nil
			}
		}

		back, err := tui.Run(tui.Options{
			ModeID: modeID,
			Config: cfg,
			Logger: logger,
			Width:  width,
			Height: height,
		})
		if err != nil {
			return fmt.Errorf("scoring %s: %w", modeID, err)
		}
		if !back || len(args) == 1 {
			return nil
		}
	}
}
