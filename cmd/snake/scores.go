package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagTUI   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores for a board",
	Long: `Display the top high scores for a board. Boards are named by their
size in cells, e.g. 40x40. Without an argument the board selected by
--board and --config is shown.

Examples:
  snake scores
  snake scores 20x20 --limit 5
  snake scores --tui
  snake scores 20x20 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score on the board")
}

func runScores(_ *cobra.Command, args []string) error {
	board, err := scoresBoard(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, board, width, height)
	}

	if flagClear {
		if err := store.ClearScores(board); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", board)
		return nil
	}

	scores, err := store.TopScores(board, flagLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Length", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %s\n", "----", "------", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-12s  %-6d  %-6d  %s\n", i+1, e.Player, e.Score, e.Length, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(board)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Longest snake: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LongestRun)
	}
	return nil
}

// scoresBoard picks the board from the argument or the loaded config.
func scoresBoard(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	return core.BoardKey(cfg.Grid.Engine()), nil
}
