package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/logging"
	"github.com/vovakirdan/bricks/internal/platform/tui"
	"github.com/vovakirdan/bricks/internal/storage"
)

var (
	flagPlayer   string
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  Space      - Launch the ball
  P/Esc      - Pause
  R          - Restart (after the game ended)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 5 lives, wide paddle, slow ball
  normal - 3 lives
  hard   - 2 lives, narrow paddle, fast ball

Examples:
  bricks play
  bricks play --difficulty easy
  bricks play --layout checker
  bricks play --config ./my-bricks.yaml --log-file bricks.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with the score (default: current user)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadGameConfig()

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(logOut, level, "bricks")

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Store:   store,
		Player:  playerName(),
		Logger:  logger,
		Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height},
	})

	// Close store and log file before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openLogOutput opens path for appending. The terminal belongs to the game,
// so an empty path discards logs. The returned func closes the file and is
// safe to call more than once.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	var once sync.Once
	return f, func() { once.Do(func() { _ = f.Close() }) }, nil
}

// playerName returns the --player flag or the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "player"
}
