// arcade is a terminal arcade of deterministic retro games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade sim <game>        - Run a game headless from an input script
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load game configs from this YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/games/breakout"
	"github.com/vovakirdan/retro-arcade/internal/games/invaders"
	"github.com/vovakirdan/retro-arcade/internal/games/snake"
	"github.com/vovakirdan/retro-arcade/internal/games/t2048"
	"github.com/vovakirdan/retro-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

// logger writes to stderr so it never mixes with program output.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Arcade - Play retro games in your terminal",
	Long: `Retro Arcade is a terminal arcade of classic games: Snake, Breakout,
Tetris, 2048 and Space Invaders. Every game is a deterministic simulation,
so a seed and an input script always replay the same run.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a game headless and print its final snapshot

Examples:
  arcade list
  arcade play tetris
  arcade play breakout --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade sim snake --seed 7 --ticks 600 --script "0:Confirm 30:Up"`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a game config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// configureGames points every game package at the config file and preset.
// Games read both when they are next reset.
func configureGames(configPath, preset string) {
	snake.SetConfigPath(configPath)
	snake.SetDifficultyPreset(preset)
	breakout.SetConfigPath(configPath)
	breakout.SetDifficultyPreset(preset)
	tetris.SetConfigPath(configPath)
	tetris.SetDifficultyPreset(preset)
	invaders.SetConfigPath(configPath)
	invaders.SetDifficultyPreset(preset)
	t2048.SetConfigPath(configPath)
}

// hasDifficulty reports whether the game reads a difficulty preset.
func hasDifficulty(gameID string) bool {
	return gameID != "2048"
}
