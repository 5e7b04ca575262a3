package snake

import (
	"fmt"

	"github.com/ZomoXYZ/dreambox-snake/internal/config"
	"github.com/ZomoXYZ/dreambox-snake/internal/core"
	"github.com/ZomoXYZ/dreambox-snake/internal/registry"
	"github.com/ZomoXYZ/dreambox-snake/internal/rng"
)

// Package-level settings shared by every Arcade instance, set from CLI flags.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset = config.DifficultyFixed
)

// SetConfigPath sets the YAML file loaded on Reset. Empty uses the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Arcade runs a Game inside the platform's frame loop.
type Arcade struct {
	legacy bool

	game *Game
	cfg  config.SnakeConfig

	screenW int
	screenH int

	paused   bool
	tooSmall bool
}

// NewArcade creates the standard variant.
func NewArcade() *Arcade {
	return &Arcade{}
}

// NewLegacyArcade creates the variant with the paired draw and linear probe.
func NewLegacyArcade() *Arcade {
	return &Arcade{legacy: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return NewArcade()
	})
	registry.Register("snake_legacy", func() registry.Game {
		return NewLegacyArcade()
	})
}

// ID returns the game identifier.
func (a *Arcade) ID() string {
	if a.legacy {
		return "snake_legacy"
	}
	return "snake"
}

// Title returns the display name.
func (a *Arcade) Title() string {
	if a.legacy {
		return "Snake (Legacy)"
	}
	return "Snake"
}

// Description returns a one-line summary for menus and the list command.
func (a *Arcade) Description() string {
	if a.legacy {
		return "Paired food draw, non-wrapping probe"
	}
	return "Wraparound board, decaying tail"
}

// Reset loads configuration and starts a new game.
func (a *Arcade) Reset(cfg core.RuntimeConfig) {
	a.screenW = cfg.ScreenW
	a.screenH = cfg.ScreenH
	a.paused = false

	a.cfg = loadConfig()
	b := a.cfg.Board
	a.tooSmall = !fits(b.Width, b.Height, a.screenW, a.screenH)

	seed := cfg.Seed
	opts := []Option{
		WithRng(newRng(seed)),
		WithFoodDraw(a.foodDraw()),
		WithProbe(a.probe()),
	}
	if a.cfg.Rng.ReseedOnReset {
		opts = append(opts, WithReseedOnReset(func() *rng.Rng { return newRng(seed) }))
	}

	g, err := New(b.Width, b.Height, b.StartX, b.StartY, a.cfg.Timing.IntervalFrames, opts...)
	if err != nil {
		// loadConfig only returns validated configs
		panic(fmt.Sprintf("snake: %v", err))
	}
	a.game = g
}

// Resize records a new screen size. The round keeps running; a screen that
// cannot hold the board pauses it until the window grows again.
func (a *Arcade) Resize(width, height int) {
	a.screenW, a.screenH = width, height
	a.tooSmall = !fits(a.game.Width(), a.game.Height(), width, height)
}

func fits(boardW, boardH, screenW, screenH int) bool {
	return screenW >= boardW+2 && screenH >= boardH+2+hudHeight
}

func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, difficultyPreset)
	if cfg.Validate() != nil {
		cfg = config.DefaultSnakeConfig()
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	return cfg
}

// newRng maps a session seed to generator state. Zero seeds from the clock.
func newRng(seed int64) *rng.Rng {
	if seed == 0 {
		return rng.NewFromClock()
	}
	return rng.New(byte(seed), byte(seed>>8))
}

func (a *Arcade) foodDraw() FoodDraw {
	if a.legacy {
		return DrawPaired
	}
	d, _ := ParseFoodDraw(a.cfg.Food.Draw)
	return d
}

func (a *Arcade) probe() Probe {
	if a.legacy {
		return ProbeLinear
	}
	p, _ := ParseProbe(a.cfg.Food.Probe)
	return p
}

// Game exposes the running simulation.
func (a *Arcade) Game() *Game {
	return a.game
}

// Step advances the game by one host frame.
func (a *Arcade) Step(input core.InputFrame) core.StepResult {
	if a.game.Result().Terminal() {
		if input.Has(core.ActionRestart) {
			a.game.Reset()
			a.paused = false
		}
		return core.StepResult{State: a.State()}
	}

	if input.Has(core.ActionPause) {
		a.paused = !a.paused
	}
	if a.paused || a.tooSmall {
		return core.StepResult{State: a.State()}
	}

	for _, m := range []struct {
		action core.Action
		dir    Direction
	}{
		{core.ActionUp, DirUp},
		{core.ActionDown, DirDown},
		{core.ActionLeft, DirLeft},
		{core.ActionRight, DirRight},
	} {
		if input.Has(m.action) {
			a.game.SetDirection(m.dir)
		}
	}

	a.game.Tick()
	return core.StepResult{State: a.State()}
}

// State returns the current game state.
func (a *Arcade) State() core.GameState {
	r := a.game.Result()
	return core.GameState{
		Score:    a.game.Size() - 1,
		GameOver: r.Terminal(),
		Won:      r.Outcome == Win,
		Paused:   a.paused,
	}
}

// Summary describes the current round.
func (a *Arcade) Summary() core.RunSummary {
	r := a.game.Result()
	return core.RunSummary{
		GameID:  a.ID(),
		Seed:    a.game.Seed(),
		Width:   a.game.Width(),
		Height:  a.game.Height(),
		Outcome: r.Outcome.String(),
		Reason:  r.Reason,
		Size:    a.game.Size(),
		Steps:   a.game.Steps(),
	}
}

// Render draws the game to the screen.
func (a *Arcade) Render(dst *core.Screen) {
	dst.Clear()
	a.renderHUD(dst)

	if a.tooSmall {
		renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", a.game.Width()+2, a.game.Height()+2+hudHeight))
		return
	}

	a.renderBoard(dst)

	r := a.game.Result()
	switch {
	case r.Outcome == Win:
		renderOverlay(dst, "You Win! "+r.Reason, "Press R to restart")
	case r.Outcome == Lose:
		renderOverlay(dst, "Game Over: "+r.Reason, "Press R to restart")
	case a.paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (a *Arcade) renderHUD(dst *core.Screen) {
	seed := a.game.Seed()
	hud := fmt.Sprintf(" %s  Score: %d  Steps: %d  Seed: %d,%d",
		a.Title(), a.game.Size()-1, a.game.Steps(), seed[0], seed[1])
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

func (a *Arcade) renderBoard(dst *core.Screen) {
	w, h := a.game.Width(), a.game.Height()
	box := core.NewRect((dst.Width()-w-2)/2, hudHeight+(dst.Height()-hudHeight-h-2)/2, w+2, h+2)
	dst.DrawBox(box, core.ColorGray)

	inner := box.Inset(1)
	for y := range h {
		for x := range w {
			c := a.game.At(x, y)
			dst.SetColored(inner.X+x, inner.Y+y, cellRune(c), cellColor(c))
		}
	}
}

func cellRune(c Cell) rune {
	if c.Kind == CellEmpty {
		return ' '
	}
	return Glyph(c.Kind)
}

func cellColor(c Cell) core.Color {
	switch c.Kind {
	case CellHead:
		return core.ColorBrightGreen
	case CellBody:
		if c.Value == 1 {
			return core.ColorCyan // leaves the board on the next step
		}
		return core.ColorGreen
	case CellFood:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-5)/2, boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
