package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ZomoXYZ/dreambox-snake/internal/core"
	"github.com/ZomoXYZ/dreambox-snake/internal/games/snake"
	"github.com/ZomoXYZ/dreambox-snake/internal/rng"
	"github.com/ZomoXYZ/dreambox-snake/internal/storage"
)

var (
	flagSimRng    string
	flagSimWidth  int
	flagSimHeight int
	flagSimStart  string
	flagSimMoves  string
	flagSimSteps  int
	flagSimLegacy bool
	flagSimTrace  bool
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI and print the final board.

Moves are one letter per step: U, D, L, R change direction and '.' keeps
the current one. After the script runs out the snake keeps going straight
until --steps is reached or the round ends.

Board glyphs:
  @  head
  o  body
  *  food
  .  empty

Examples:
  snake sim --rng 0,0 --width 4 --height 4 --moves R
  snake sim --rng 0,0 --width 2 --height 2 --moves RDL
  snake sim --rng 78,45 --moves RRRDDDLLL --steps 40 --trace
  snake sim --legacy --record`,
	Run: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimRng, "rng", "", "Generator state as s0,s1 (default: from --seed)")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 16, "Board width (1-255)")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 16, "Board height (1-255)")
	simCmd.Flags().StringVar(&flagSimStart, "start", "0,0", "Head start position as x,y")
	simCmd.Flags().StringVar(&flagSimMoves, "moves", "", "Move script (U/D/L/R/.)")
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 0, "Steps to run (0 = length of the move script)")
	simCmd.Flags().BoolVar(&flagSimLegacy, "legacy", false, "Use the paired food draw and the non-wrapping probe")
	simCmd.Flags().BoolVar(&flagSimTrace, "trace", false, "Print the board after every step")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the scores database")
}

// simRound describes one headless round.
type simRound struct {
	width, height int
	start         snake.Point
	rng           *rng.Rng
	draw          snake.FoodDraw
	probe         snake.Probe
	moves         string
	steps         int
}

// simulate plays a round, one step per tick. onStep, when set, sees the game after
// every step.
func simulate(round simRound, onStep func(*snake.Game)) (*snake.Game, error) {
	for i, m := range round.moves {
		if _, ok := snake.ParseDirection(m); !ok && m != '.' {
			return nil, fmt.Errorf("invalid move %q at position %d", m, i)
		}
	}

	g, err := snake.New(round.width, round.height, round.start.X, round.start.Y, 1,
		snake.WithRng(round.rng),
		snake.WithFoodDraw(round.draw),
		snake.WithProbe(round.probe),
	)
	if err != nil {
		return nil, err
	}

	steps := round.steps
	if steps <= 0 {
		steps = len(round.moves)
	}

	for i := 0; i < steps && !g.Result().Terminal(); i++ {
		if i < len(round.moves) {
			if d, ok := snake.ParseDirection(rune(round.moves[i])); ok {
				g.SetDirection(d)
			}
		}
		g.Tick()
		if onStep != nil {
			onStep(g)
		}
	}
	return g, nil
}

// parsePair parses "a,b".
func parsePair(s string) (int, int, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected two comma-separated numbers, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q: %w", a, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number %q: %w", b, err)
	}
	return x, y, nil
}

// simRng builds the generator from --rng, falling back to --seed.
func simRng() (*rng.Rng, error) {
	if flagSimRng == "" {
		if flagSeed == 0 {
			return rng.NewFromClock(), nil
		}
		return rng.New(byte(flagSeed), byte(flagSeed>>8)), nil
	}

	s0, s1, err := parsePair(flagSimRng)
	if err != nil {
		return nil, fmt.Errorf("--rng: %w", err)
	}
	if s0 < 0 || s0 > 255 || s1 < 0 || s1 > 255 {
		return nil, fmt.Errorf("--rng: values must be between 0 and 255")
	}
	return rng.New(byte(s0), byte(s1)), nil
}

func runSim(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sim"})

	r, err := simRng()
	if err != nil {
		logger.Fatal("bad seed", "error", err)
	}
	x, y, err := parsePair(flagSimStart)
	if err != nil {
		logger.Fatal("bad start position", "error", err)
	}

	round := simRound{
		width:  flagSimWidth,
		height: flagSimHeight,
		start:  snake.Point{X: x, Y: y},
		rng:    r,
		draw:   snake.DrawIndependent,
		probe:  snake.ProbeWrap,
		moves:  flagSimMoves,
		steps:  flagSimSteps,
	}
	gameID := "snake"
	if flagSimLegacy {
		round.draw, round.probe = snake.DrawPaired, snake.ProbeLinear
		gameID = "snake_legacy"
	}

	seed := r.State()
	logger.Debug("starting", "seed", fmt.Sprintf("%d,%d", seed[0], seed[1]),
		"board", fmt.Sprintf("%dx%d", round.width, round.height), "draw", round.draw, "probe", round.probe)

	var trace func(*snake.Game)
	if flagSimTrace {
		trace = func(g *snake.Game) {
			fmt.Printf("step %d  size %d\n%s\n", g.Steps(), g.Size(), g)
		}
	}

	g, err := simulate(round, trace)
	if err != nil {
		logger.Fatal("cannot run simulation", "error", err)
	}

	if !flagSimTrace {
		fmt.Print(g)
		fmt.Println()
	}
	res := g.Result()
	fmt.Printf("Seed: %d,%d  Steps: %d  Size: %d  Result: %s\n", seed[0], seed[1], g.Steps(), g.Size(), res)

	if !flagSimRecord {
		return
	}
	if !res.Terminal() {
		logger.Warn("round did not finish, not recording")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunFromSummary(core.RunSummary{
		GameID:  gameID,
		Seed:    g.Seed(),
		Width:   g.Width(),
		Height:  g.Height(),
		Outcome: res.Outcome.String(),
		Reason:  res.Reason,
		Size:    g.Size(),
		Steps:   g.Steps(),
	}))
	if err != nil {
		logger.Error("cannot record run", "error", err)
		return
	}
	logger.Info("run recorded", "id", id, "game", gameID)
}
