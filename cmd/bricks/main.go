// bricks is a brick breaker for the terminal.
//
// Usage:
//
//	bricks play              - Play a game
//	bricks serve             - Start SSH server for remote play
//	bricks scores            - Show high scores
//	bricks simulate          - Play a headless game with the autopilot
//	bricks config            - Print the effective configuration
//	bricks layouts           - List built-in board layouts
//
// Global flags:
//
//	--config <path>      - Game config YAML (default search: ~/.bricks, ./configs)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--layout <name>      - Built-in board layout
//	--db <path>          - Set database path (default: ~/.bricks/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/games/breakout"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLayout     string
	flagDBPath     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - break bricks in your terminal",
	Long: `Bricks is a terminal brick breaker. Keep the ball in play with the
paddle and clear every brick to win.

Available commands:
  play      - Play a game
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless game with the autopilot
  config    - Print the effective configuration
  layouts   - List built-in board layouts

Examples:
  bricks play
  bricks play --difficulty hard --layout wall
  bricks serve --ssh :2222
  bricks simulate --max-ticks 5000`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Built-in board layout (overrides the config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricks/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(layoutsCmd)
}

// loadGameConfig resolves the config file, then applies the difficulty
// and layout flags on top of it.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.GameConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)

	if flagLayout != "" {
		if _, err := breakout.BuiltinBoard(flagLayout, 1); err != nil {
			return config.GameConfig{}, err
		}
		cfg.Bricks.Layout = flagLayout
		cfg.Bricks.Pattern = nil
	}

	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

// mustLoadGameConfig is loadGameConfig for command handlers.
func mustLoadGameConfig() config.GameConfig {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
