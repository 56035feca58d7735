package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	tcellterm "github.com/vovakirdan/tui-snake/internal/platform/term"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFrontend string
	flagPlayer   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing snake in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Frontends:
  tea    - Bubble Tea renderer with a help footer (default)
  tcell  - Direct tcell renderer driven by real timers

Examples:
  snake play
  snake play --board large
  snake play --frontend tcell
  snake play --seed 7 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Renderer: tea or tcell")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name stored with your scores")
}

// runtimeConfig builds the host settings for this terminal.
func runtimeConfig() (core.RuntimeConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	ec, err := cfg.Engine(flagSeed)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	rc := core.DefaultConfig()
	rc.Engine = ec
	rc.Title = core.BoardTitle(flagBoard)
	if flagPlayer != "" {
		rc.Player = flagPlayer
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc, nil
}

// openStore opens the scores database. Failure is not fatal: the game runs
// without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, _ []string) error {
	rc, err := runtimeConfig()
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting game", "frontend", flagFrontend, "board", rc.Board(), "seed", rc.Engine.Seed)

	switch flagFrontend {
	case "tea", "":
		return tui.Run(store, rc, logger)
	case "tcell":
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return tcellterm.Run(ctx, store, rc, logger)
	default:
		return fmt.Errorf("unknown frontend %q (want tea or tcell)", flagFrontend)
	}
}
