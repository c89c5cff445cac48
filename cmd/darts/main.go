// darts is a terminal scorer for steel and soft-tip darts.
//
// Usage:
//
//	darts list                       - List available game modes
//	darts play [mode]                - Score a game (menu when no mode is given)
//	darts replay <mode> <script>     - Replay a recorded throw script
//	darts serve                      - Start SSH server for remote scoring
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search ~/.darts, ./configs)
//	--preset <name>     - Match preset: pub, league, pro
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-darts/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagPlayers  []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "darts",
	Short: "TUI Darts - Score cricket, 01 and target bull in your terminal",
	Long: `TUI Darts keeps score for dart games: Cricket (standard and
cut-throat), 301/501/701 with legs and sets, and Target Bull.

Available commands:
  list     - Show all game modes
  play     - Score a game interactively
  replay   - Replay a YAML throw script and print the result
  serve    - Start SSH server for remote scoring

Examples:
  darts list
  darts play 501 --players Ann,Bob
  darts play --preset league
  darts replay cricket ./throws.yaml
  darts serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Match preset: pub, league, pro")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringSliceVar(&flagPlayers, "players", nil, "Comma separated player names")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the stderr logger shared by all commands.
func newLogger(prefix string) (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return logger, nil
}

// loadConfig resolves the configuration from file, preset and flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
			return config.Config{}, err
		}
	}
	if len(flagPlayers) > 0 {
		cfg = cfg.WithPlayers(flagPlayers)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
