package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avolkov/starfall/internal/core"
	"github.com/avolkov/starfall/internal/games/starfall"
	"github.com/avolkov/starfall/internal/platform/tui"
	"github.com/avolkov/starfall/internal/registry"
	"github.com/avolkov/starfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  1-8        - Fire the matching lane
  Q          - Reset all lane cooldowns
  W          - Clear the screen of asteroids
  E          - Heal
  P          - Pause
  R/Esc      - Reset the run
  Ctrl+C     - Quit

Difficulty options:
  easy   - More health, slower spawns
  normal - Default tuning
  hard   - Less health, faster asteroids
  fixed  - No progression, stays at config's initial level

Examples:
  starfall play
  starfall play --difficulty easy
  starfall play --seed 42 --fps 30
  starfall play --config ./my-starfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
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

	// Set config path and difficulty before creation
	starfall.SetConfigPath(flagConfig)
	starfall.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create("starfall")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
