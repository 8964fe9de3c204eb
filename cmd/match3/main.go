// match3 is a tile-matching puzzle game for the terminal.
//
// Usage:
//
//	match3 list              - List available modes
//	match3 play [mode]       - Play a mode (default: match3)
//	match3 menu              - Pick a mode interactively
//	match3 scores [mode]     - Show high scores for a mode
//	match3 config            - Print the effective game config
//	match3 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom match3 YAML config
//	--difficulty <preset> - easy, normal, hard or fixed (default: config file values)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	match3game "github.com/vovakirdan/tui-match3/internal/games/match3"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "match3"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match 3 - swap tiles, clear lines, chain cascades",
	Long: `Match 3 is a terminal tile-matching puzzle.

Swap two neighbouring tiles to line up three or more of the same color.
Matched tiles clear, the ones above fall down, and new tiles drop in from
the top, which can set off further matches.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View high scores
  config   - Print the effective config
  serve    - Start SSH server for remote play

Examples:
  match3 play
  match3 play match3_moves --difficulty hard
  match3 menu
  match3 serve --ssh :2222
  match3 scores match3`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (empty keeps the config file values)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGameFlags hands --config and --difficulty to the game package
// before any game is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		flagFPS = 60
	}
	match3game.SetConfigPath(flagConfig)
	match3game.SetDifficultyPreset(preset)
	return nil
}
