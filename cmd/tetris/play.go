package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	tetriscore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/puzzles"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPuzzle     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode. Defaults to endless play.

Controls:
  A/D or Left/Right  - Move piece
  W/Up               - Rotate
  S/Down             - Soft drop
  Space              - Hard drop
  P                  - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower gravity, gentler speed-up
  normal - Standard gravity curve
  hard   - Faster gravity, steeper speed-up
  fixed  - Gravity stays at the initial speed

Examples:
  tetris play
  tetris play tetris --difficulty hard
  tetris play tetris_puzzle
  tetris play tetris_puzzle --puzzle "First Clear"
  tetris play tetris --config ./my-rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagPuzzle, "puzzle", "", "Puzzle name (puzzle mode only)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		logger.Errorf("unknown mode %q", gameID)
		logger.Error("Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for selectors
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply gameplay rules before creation
	if err := applyRules(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	// Pick a puzzle for puzzle mode
	if gameID == "tetris_puzzle" {
		puzzle, updatedCfg, err := selectPuzzle(cfg)
		if err != nil {
			logger.Error(err.Error())
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if puzzle == nil {
			return
		}
		tetris.SetPuzzle(puzzle)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		logger.Errorf("creating mode: %v", err)
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warnf("could not open results database: %v", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Errorf("running game: %v", runErr)
		os.Exit(1)
	}
}

// applyRules loads the gameplay config, applies the difficulty preset
// and hands the resulting rules to the game package.
func applyRules() error {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	tetris.SetRules(cfg.ToRules())
	return nil
}

// loadPuzzles returns the builtin puzzles plus any from --puzzles.
func loadPuzzles() ([]*tetriscore.Puzzle, error) {
	list, err := puzzles.LoadBuiltin()
	if err != nil {
		return nil, fmt.Errorf("loading builtin puzzles: %w", err)
	}

	if flagPuzzleDir != "" {
		extra, err := puzzles.NewLoader(flagPuzzleDir).LoadAll()
		if err != nil {
			return nil, fmt.Errorf("loading puzzles from %s: %w", flagPuzzleDir, err)
		}
		list = append(list, extra...)
	}

	return list, nil
}

// selectPuzzle resolves --puzzle by name, or shows the interactive
// selector. A nil puzzle with nil error means the user backed out.
func selectPuzzle(cfg core.RuntimeConfig) (*tetriscore.Puzzle, core.RuntimeConfig, error) {
	list, err := loadPuzzles()
	if err != nil {
		return nil, cfg, err
	}

	if flagPuzzle != "" {
		for _, p := range list {
			if p.Name == flagPuzzle {
				return p, cfg, nil
			}
		}
		return nil, cfg, fmt.Errorf("unknown puzzle %q, run 'tetris puzzles' to see the list", flagPuzzle)
	}

	return tui.RunPuzzleSelector(list, cfg)
}
