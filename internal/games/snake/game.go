// Package snake implements a deterministic Snake simulation on a toroidal grid.
//
// The snake is not stored as a list of segments. Each board cell holds a decay
// counter: when the head leaves a cell it stamps the current size there, and
// every step without food decrements all positive cells, so the tail retracts
// on its own. The head position lives in its own field and is only written to
// the grid when the head moves away.
package snake

import (
	"errors"

	"github.com/ZomoXYZ/dreambox-snake/internal/rng"
)

// MaxDimension is the largest supported board side; food coordinates are
// drawn as single bytes.
const MaxDimension = 255

var (
	ErrInvalidBoard    = errors.New("snake: board dimensions must be between 1 and 255")
	ErrInvalidStart    = errors.New("snake: start position outside the board")
	ErrInvalidInterval = errors.New("snake: interval must be at least one frame")
)

// Game is the simulation state machine. Tick is the only method that advances
// it; all other methods besides SetDirection and Reset are read-only.
// Not safe for concurrent use.
type Game struct {
	width  int
	height int
	grid   []int

	size    int
	lastDir Direction // committed on the last step
	dir     Direction // pending, applied on the next step
	head    Point
	start   Point

	interval int
	phase    int // frames left until the next step
	frames   uint64
	steps    uint64

	rng    *rng.Rng
	seed   [2]byte
	reseed func() *rng.Rng
	draw   FoodDraw
	probe  Probe

	result Result
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithRng uses r instead of a clock-seeded generator.
func WithRng(r *rng.Rng) Option {
	return func(g *Game) {
		g.rng = r
	}
}

// WithFoodDraw selects how food candidates are drawn from the generator.
func WithFoodDraw(d FoodDraw) Option {
	return func(g *Game) {
		g.draw = d
	}
}

// WithProbe selects how the board is scanned from a food candidate.
func WithProbe(p Probe) Option {
	return func(g *Game) {
		g.probe = p
	}
}

// WithReseedOnReset makes Reset replace the generator with a fresh one.
// By default the generator continues its sequence across resets.
func WithReseedOnReset(next func() *rng.Rng) Option {
	return func(g *Game) {
		g.reseed = next
	}
}

// New creates a game on a width x height board with the head at (startX, startY).
// One simulation step runs every interval calls to Tick.
func New(width, height, startX, startY, interval int, opts ...Option) (*Game, error) {
	if width < 1 || width > MaxDimension || height < 1 || height > MaxDimension {
		return nil, ErrInvalidBoard
	}
	if startX < 0 || startX >= width || startY < 0 || startY >= height {
		return nil, ErrInvalidStart
	}
	if interval < 1 {
		return nil, ErrInvalidInterval
	}

	g := &Game{
		width:    width,
		height:   height,
		grid:     make([]int, width*height),
		start:    Point{X: startX, Y: startY},
		interval: interval,
		draw:     DrawIndependent,
		probe:    ProbeWrap,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rng.NewFromClock()
	}

	g.restart()
	return g, nil
}

// Reset starts a new round with the same board and timing.
func (g *Game) Reset() {
	if g.reseed != nil {
		g.rng = g.reseed()
	}
	g.restart()
}

func (g *Game) restart() {
	clear(g.grid)
	g.size = 1
	g.head = g.start
	g.lastDir = DirRight
	g.dir = DirRight
	g.phase = g.interval
	g.frames = 0
	g.steps = 0
	g.result = Result{}
	g.seed = g.rng.State()

	if err := g.newFood(); err != nil {
		// a 1x1 board has nowhere to put food
		g.result = terminalFor(err)
	}
}

// SetDirection sets the direction used by the next step. A reversal of the
// committed direction is ignored.
func (g *Game) SetDirection(d Direction) {
	if !d.Valid() || d == g.lastDir.Opposite() {
		return
	}
	g.dir = d
}

// Tick is called once per host frame. It runs a simulation step every
// interval frames and returns Continue on the frames in between. Once the game
// is won or lost the same result is returned until Reset.
func (g *Game) Tick() Result {
	g.frames++
	if g.result.Terminal() {
		return g.result
	}

	g.phase--
	if g.phase > 0 {
		return Result{}
	}
	g.phase = g.interval

	g.result = g.step()
	return g.result
}

// step runs one round of the movement, collision and food rules.
func (g *Game) step() Result {
	g.steps++

	g.grid[g.index(g.head)] = g.size

	g.lastDir = g.dir
	d := g.dir.delta()
	g.head = g.wrap(g.head.X+d.X, g.head.Y+d.Y)

	idx := g.index(g.head)
	switch v := g.grid[idx]; {
	case v > 0:
		return lost(ReasonOuroboros)
	case v < 0:
		g.size++
		g.grid[idx] = 0
		if err := g.newFood(); err != nil {
			return terminalFor(err)
		}
	default:
		g.decay()
	}

	return Result{}
}

func (g *Game) decay() {
	for i, v := range g.grid {
		if v > 0 {
			g.grid[i] = v - 1
		}
	}
}

func terminalFor(err error) Result {
	if errors.Is(err, ErrNoSpace) {
		return won(ReasonBoardFull)
	}
	return lost(ReasonFoodProbe)
}

// At classifies the cell at (x, y). Coordinates wrap around the board.
func (g *Game) At(x, y int) Cell {
	p := g.wrap(x, y)
	if p == g.head {
		return Cell{Kind: CellHead, Value: g.size}
	}

	v := g.grid[g.index(p)]
	switch {
	case v < 0:
		return Cell{Kind: CellFood}
	case v > 0:
		return Cell{Kind: CellBody, Value: v}
	default:
		return Cell{Kind: CellEmpty}
	}
}

// Food returns the food position, if any food is on the board.
func (g *Game) Food() (Point, bool) {
	for i, v := range g.grid {
		if v < 0 {
			return Point{X: i % g.width, Y: i / g.width}, true
		}
	}
	return Point{}, false
}

func (g *Game) Width() int           { return g.width }
func (g *Game) Height() int          { return g.height }
func (g *Game) Size() int            { return g.size }
func (g *Game) Head() Point          { return g.head }
func (g *Game) Direction() Direction { return g.lastDir }
func (g *Game) Pending() Direction   { return g.dir }
func (g *Game) Interval() int        { return g.interval }
func (g *Game) Result() Result       { return g.result }

// Frames returns the number of Tick calls since the last reset.
func (g *Game) Frames() uint64 { return g.frames }

// Steps returns the number of simulation steps since the last reset.
func (g *Game) Steps() uint64 { return g.steps }

// Seed returns the generator state at the start of the current round.
func (g *Game) Seed() [2]byte { return g.seed }

func (g *Game) index(p Point) int {
	return p.Y*g.width + p.X
}

func (g *Game) wrap(x, y int) Point {
	x %= g.width
	if x < 0 {
		x += g.width
	}
	y %= g.height
	if y < 0 {
		y += g.height
	}
	return Point{X: x, Y: y}
}
