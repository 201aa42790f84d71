package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/games/breakout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List built-in board layouts",
	Long:  `Shows every built-in board, drawn for the default field width.`,
	Args:  cobra.NoArgs,
	Run:   runLayouts,
}

func runLayouts(_ *cobra.Command, _ []string) {
	cfg := config.Default()
	cols := breakout.Columns(cfg.Field.Width, cfg.Bricks.Margin, cfg.Bricks.Width)

	fmt.Println("Available layouts:")
	for _, name := range breakout.BoardNames() {
		board, err := breakout.BuiltinBoard(name, cols)
		if err != nil {
			continue
		}
		fmt.Println()
		fmt.Printf("  %s (%d bricks)\n", name, board.Count())
		for _, row := range board.Rows {
			fmt.Print("    ")
			for _, hits := range row {
				if hits == 0 {
					fmt.Print(".")
				} else {
					fmt.Print(hits)
				}
			}
			fmt.Println()
		}
	}

	fmt.Println()
	fmt.Println("Run 'bricks play --layout <name>' to play one.")
}
