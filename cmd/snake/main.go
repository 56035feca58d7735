// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play              - Play a game in this terminal
//	snake menu              - Pick a board and browse scores interactively
//	snake serve             - Start SSH server for remote play
//	snake scores [board]    - Show high scores for a board
//	snake sim               - Run a headless game and print its final state
//	snake config            - Print the default configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--config <path>     - Load game settings from a YAML file
//	--board <preset>    - Board size: classic, small, large
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagBoard    string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic grid game: steer the snake to the food, grow
longer with every bite and avoid the walls and your own tail.

Available commands:
  play     - Play a game directly
  menu     - Interactive board picker and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless game from a move script
  config   - Print the default configuration

Examples:
  snake play
  snake play --board small --seed 42
  snake menu
  snake serve --ssh :2222
  snake scores 20x20`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBoard, "board", "", "Board preset: classic, small, large")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the game settings and applies --board.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if err := config.ApplyBoardPreset(&cfg, config.BoardPreset(flagBoard)); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to --log-file, or to fallback when no
// file is set. The returned close function is never nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
