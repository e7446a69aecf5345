package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a specific game",
	Long: `Start playing a specific game directly.

Without --difficulty a preset picker is shown first (2048 has none).

Controls (common to all games):
  Arrows/WASD  - Move
  Space        - Fire / launch / hard drop
  Up (Tetris)  - Rotate
  Enter        - Start / confirm
  P            - Pause/Resume
  R            - Restart
  Esc/B        - Pause, then back
  Q            - Quit
  Ctrl+S       - Screenshot

Examples:
  arcade play snake
  arcade play invaders --difficulty hard
  arcade play tetris --seed 42
  arcade play breakout --config ./arcade.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig builds the runtime config from the flags and the terminal
// size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Failure only disables persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	preset := flagDifficulty
	if preset == "" && hasDifficulty(gameID) {
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		choice, err := tui.RunDifficultySelector(game.Title(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if choice == nil {
			return
		}
		preset = choice.Preset
	}
	configureGames(flagConfig, preset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sessionID := storage.NewSessionID()
	logger.Debug("starting game", "game", gameID, "session", sessionID, "preset", preset)

	if _, err := tui.Run(game, tui.GameOptions{
		Runtime:   cfg,
		Store:     store,
		SessionID: sessionID,
		Logger:    logger,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
