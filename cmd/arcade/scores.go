package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	flagScoresLimit   int
	flagScoresClear   bool
	flagScoresSession string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Without a game, prints a summary of every game played so far.

Examples:
  arcade scores tetris
  arcade scores invaders --limit 20
  arcade scores --session 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  arcade scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the game")
	scoresCmd.Flags().StringVar(&flagScoresSession, "session", "", "Show the runs of one session")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresSession != "":
		err = printSession(store, flagScoresSession)
	case len(args) == 0:
		err = printSummary(store)
	default:
		err = printGame(store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printGame(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printSession(store *storage.Store, sessionID string) error {
	scores, err := store.SessionScores(sessionID)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Println("No runs recorded for this session.")
		return nil
	}

	fmt.Printf("Session %s\n\n", sessionID)
	fmt.Printf("  %-10s  %-10s  %-5s  %s\n", "Game", "Score", "Level", "Date")
	fmt.Printf("  %-10s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for _, entry := range scores {
		fmt.Printf("  %-10s  %-10d  %-5d  %s\n", entry.GameID, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Game", "Runs", "Best", "Average", "Last played")
	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "----", "----", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-10s  %-6d  %-8d  %-8.1f  %s\n", id, s.GamesCount, s.BestScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
