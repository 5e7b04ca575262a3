// snake is a terminal Snake arcade built on a deterministic simulation core.
//
// Usage:
//
//	snake list              - List available game variants
//	snake play <game>       - Play a game
//	snake menu              - Start menu to pick games interactively
//	snake serve             - Start SSH server for remote play
//	snake scores <game>     - Show high scores and recent runs
//	snake sim               - Run a headless simulation from a move script
//	snake export            - Export recorded runs to a parquet file
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config <path>        - Use a custom snake config YAML
//	--difficulty <preset>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/ZomoXYZ/dreambox-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a deterministic snake game for your terminal",
	Long: `Snake runs on a wraparound board with a decaying tail. The food
generator is an 8-bit linear generator, so a seed and a list of moves
always replay the same round.

Available commands:
  list     - Show all game variants
  play     - Play a specific variant directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  sim      - Run a headless simulation
  export   - Export recorded runs to parquet

Examples:
  snake list
  snake play snake
  snake play snake_legacy --seed 11598
  snake menu
  snake serve --ssh :2222
  snake sim --rng 0,0 --width 4 --height 4 --moves RDDL
  snake export --out runs.parquet`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed: low byte is s0, next byte is s1 (0 = seed from the clock)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (asks when empty)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(exportCmd)
}
