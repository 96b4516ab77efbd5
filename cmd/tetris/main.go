// tetris is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetris list              - List available game modes
//	tetris play [mode]       - Play a mode directly
//	tetris menu              - Start menu to pick modes interactively
//	tetris puzzles           - List and inspect puzzles
//	tetris scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.tetris/results.db)
//	--puzzles <dir>   - Load extra puzzles from a directory
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagPuzzleDir string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game with an endless
mode and goal-based puzzle scenarios.

Available commands:
  list     - Show all available game modes
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  puzzles  - List and inspect puzzles
  scores   - View high scores

Examples:
  tetris list
  tetris play tetris
  tetris play tetris_puzzle --puzzle "First Clear"
  tetris menu
  tetris scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagPuzzleDir, "puzzles", "", "Directory with extra puzzle files")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(puzzlesCmd)
	rootCmd.AddCommand(scoresCmd)
}
