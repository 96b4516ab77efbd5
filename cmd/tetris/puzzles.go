package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	tetriscore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var puzzlesCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "List and inspect puzzles",
	Long: `Work with the puzzle library: builtin puzzles plus any loaded
from a --puzzles directory.

Examples:
  tetris puzzles
  tetris puzzles show "First Clear"
  tetris puzzles history "First Clear"
  tetris puzzles --puzzles ./my-puzzles`,
	Run: runPuzzlesList,
}

var puzzlesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a puzzle's board and goals",
	Args:  cobra.ExactArgs(1),
	Run:   runPuzzlesShow,
}

var puzzlesHistoryCmd = &cobra.Command{
	Use:   "history <name>",
	Short: "Show past attempts at a puzzle",
	Args:  cobra.ExactArgs(1),
	Run:   runPuzzlesHistory,
}

func init() {
	puzzlesCmd.AddCommand(puzzlesShowCmd)
	puzzlesCmd.AddCommand(puzzlesHistoryCmd)
}

func runPuzzlesList(cmd *cobra.Command, args []string) {
	list, err := loadPuzzles()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if len(list) == 0 {
		fmt.Println("No puzzles available.")
		return
	}

	fmt.Println("Available puzzles:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, p := range list {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Goals", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "-----", "-----------")

	for _, p := range list {
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, p.Name, len(p.Goals), p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play tetris_puzzle --puzzle <name>' to play one.")
}

func runPuzzlesShow(cmd *cobra.Command, args []string) {
	puzzle := findPuzzle(args[0])

	fmt.Printf("%s\n", puzzle.Name)
	if puzzle.Description != "" {
		fmt.Printf("%s\n", puzzle.Description)
	}
	fmt.Println()

	// Board layout, one letter per filled cell
	fmt.Println("Starting board:")
	for _, row := range puzzle.Grid {
		var b strings.Builder
		b.WriteString("  |")
		for _, cell := range row {
			if cell.Filled {
				b.WriteRune(cell.Color.Char())
			} else {
				b.WriteRune('.')
			}
		}
		b.WriteString("|")
		fmt.Println(b.String())
	}

	fmt.Println()
	fmt.Println("Goals:")
	for _, g := range puzzle.Goals {
		fmt.Printf("  - %s: %d\n", g.Kind, g.Target)
	}
}

func runPuzzlesHistory(cmd *cobra.Command, args []string) {
	puzzle := findPuzzle(args[0])

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Errorf("opening results database: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	history, err := store.PuzzleHistory(puzzle.Name, 20)
	if err != nil {
		logger.Errorf("retrieving history: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Attempts - %s\n", puzzle.Name)
	fmt.Println()

	if len(history) == 0 {
		fmt.Println("No attempts recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-8s  %-7s  %-6s  %s\n", "Result", "Score", "Pieces", "Time", "Date")
	fmt.Printf("  %-8s  %-8s  %-7s  %-6s  %s\n", "------", "-----", "------", "----", "----")

	for _, r := range history {
		result := "failed"
		if r.Solved {
			result = "solved"
		}
		fmt.Printf("  %-8s  %-8d  %-7d  %-5.0fs  %s\n",
			result, r.Score, r.PiecesUsed, r.Duration, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestPuzzleResult(puzzle.Name); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best solve: %d pieces in %.0fs\n", best.PiecesUsed, best.Duration)
	}
}

// findPuzzle resolves a puzzle by name or exits with a hint.
func findPuzzle(name string) *tetriscore.Puzzle {
	list, err := loadPuzzles()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	for _, p := range list {
		if p.Name == name {
			return p
		}
	}

	logger.Errorf("unknown puzzle %q", name)
	logger.Error("Run 'tetris puzzles' to see the list.")
	os.Exit(1)
	return nil
}
