package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/games/breakout"
	"github.com/vovakirdan/bricks/internal/logging"
	"github.com/vovakirdan/bricks/internal/storage"
)

var (
	flagMaxTicks uint64
	flagSave     bool
	flagVerbose  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a headless game with the autopilot",
	Long: `Run a full game without a terminal. The paddle follows the ball and
time runs on a virtual clock, so a run finishes as fast as the machine
allows and the same config always produces the same result.

Prints the outcome, score, tick count and a hash of the final state.

Examples:
  bricks simulate
  bricks simulate --layout wall --max-ticks 20000
  bricks simulate --save --verbose`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 100000, "Stop after this many ticks (0 = no limit)")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Save the result to the scores database")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log game events to stderr")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := mustLoadGameConfig()

	logger := logging.Discard()
	if flagVerbose {
		logger = logging.New(os.Stderr, log.DebugLevel, "simulate")
	}

	res, err := breakout.RunHeadless(cfg, flagMaxTicks, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Outcome: %s\n", res.State)
	fmt.Printf("Score:   %d\n", res.Score)
	fmt.Printf("Lives:   %d\n", max(res.Lives, 0))
	fmt.Printf("Ticks:   %d (%s game time)\n", res.Ticks, res.Elapsed)
	fmt.Printf("Hash:    %016x\n", res.Hash)

	if !flagSave {
		return
	}
	if !res.State.Terminal() {
		fmt.Fprintln(os.Stderr, "Warning: game did not finish, result not saved")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	outcome := storage.OutcomeGameOver
	if res.State == breakout.StateWon {
		outcome = storage.OutcomeWon
	}
	layout := cfg.Bricks.Layout
	if len(cfg.Bricks.Pattern) > 0 {
		layout = "custom"
	}
	entry, err := store.SaveScore(storage.ScoreEntry{
		Player:  "autopilot",
		Layout:  layout,
		Outcome: outcome,
		Score:   res.Score,
		Ticks:   res.Ticks,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving score: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved:   %s\n", entry.RunID)
}
