package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ZomoXYZ/dreambox-snake/internal/config"
	"github.com/ZomoXYZ/dreambox-snake/internal/core"
	"github.com/ZomoXYZ/dreambox-snake/internal/games/snake"
	"github.com/ZomoXYZ/dreambox-snake/internal/platform/tui"
	"github.com/ZomoXYZ/dreambox-snake/internal/registry"
	"github.com/ZomoXYZ/dreambox-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game variant.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R                 - Restart (after win or loss)
  Esc/B             - Back (while paused or after the round)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 10 frames per step
  normal - 6 frames per step
  hard   - 3 frames per step
  fixed  - Use interval_frames from the config file

Examples:
  snake play snake
  snake play snake --difficulty hard
  snake play snake_legacy --seed 11598
  snake play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	ok, err := applySettings(game.Title(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return // backed out of the difficulty selector
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the host config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applySettings sets the config path and difficulty used by the next Reset.
// Without --difficulty the user picks a preset; false means they backed out.
func applySettings(title string, cfg core.RuntimeConfig) (bool, error) {
	snake.SetConfigPath(flagConfig)

	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return false, err
		}
		snake.SetDifficultyPreset(preset)
		return true, nil
	}

	preset, err := tui.RunDifficultySelector(title, cfg)
	if err != nil {
		return false, err
	}
	if preset == nil {
		return false, nil
	}
	snake.SetDifficultyPreset(*preset)
	return true, nil
}
