package snake

import (
	"errors"
	"testing"

	"github.com/ZomoXYZ/dreambox-snake/internal/rng"
)

// newTestGame creates a game seeded with (0, 0) that steps on every tick.
func newTestGame(t *testing.T, w, h, x, y int, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRng(rng.New(0, 0))}, opts...)
	g, err := New(w, h, x, y, 1, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d, %d, %d) failed: %v", w, h, x, y, err)
	}
	return g
}

// placeFood moves the food marker to (x, y).
func placeFood(g *Game, x, y int) {
	removeFood(g)
	g.grid[g.index(Point{X: x, Y: y})] = foodMarker
}

func removeFood(g *Game) {
	for i, v := range g.grid {
		if v < 0 {
			g.grid[i] = 0
		}
	}
}

func countFood(g *Game) int {
	n := 0
	for _, v := range g.grid {
		if v < 0 {
			n++
		}
	}
	return n
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name          string
		w, h, x, y, i int
		want          error
	}{
		{"zero width", 0, 4, 0, 0, 1, ErrInvalidBoard},
		{"zero height", 4, 0, 0, 0, 1, ErrInvalidBoard},
		{"too wide", 256, 4, 0, 0, 1, ErrInvalidBoard},
		{"start x outside", 4, 4, 4, 0, 1, ErrInvalidStart},
		{"start y negative", 4, 4, 0, -1, 1, ErrInvalidStart},
		{"zero interval", 4, 4, 0, 0, 0, ErrInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.h, tt.x, tt.y, tt.i, WithRng(rng.New(1, 2)))
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := New(255, 255, 254, 254, 1, WithRng(rng.New(1, 2))); err != nil {
		t.Errorf("New() on the largest board failed: %v", err)
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, 4, 4, 0, 0)

	if g.Size() != 1 {
		t.Errorf("Size() = %d, want 1", g.Size())
	}
	if g.Head() != (Point{X: 0, Y: 0}) {
		t.Errorf("Head() = %v, want (0,0)", g.Head())
	}
	if g.Direction() != DirRight || g.Pending() != DirRight {
		t.Errorf("initial direction = %v/%v, want right/right", g.Direction(), g.Pending())
	}
	if g.Result().Terminal() {
		t.Errorf("new game should not be terminal, got %v", g.Result())
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("new game should have food on the board")
	}
	if food != (Point{X: 1, Y: 0}) {
		t.Errorf("seeded food at %v, want (1,0)", food)
	}
	if countFood(g) != 1 {
		t.Errorf("food cells = %d, want 1", countFood(g))
	}
}

func TestHeadIsNotStoredInGrid(t *testing.T) {
	g := newTestGame(t, 4, 4, 2, 2)

	if v := g.grid[g.index(g.Head())]; v != 0 {
		t.Errorf("grid at head = %d, want 0 before the head moves", v)
	}
	if c := g.At(2, 2); c.Kind != CellHead || c.Value != 1 {
		t.Errorf("At(head) = %+v, want Head(1)", c)
	}
}

func TestMovementWraparound(t *testing.T) {
	tests := []struct {
		name  string
		start Point
		dir   Direction
		want  Point
	}{
		{"right edge", Point{X: 4, Y: 2}, DirRight, Point{X: 0, Y: 2}},
		{"left edge", Point{X: 0, Y: 2}, DirLeft, Point{X: 4, Y: 2}},
		{"bottom edge", Point{X: 1, Y: 3}, DirDown, Point{X: 1, Y: 0}},
		{"top edge", Point{X: 1, Y: 0}, DirUp, Point{X: 1, Y: 3}},
		{"interior", Point{X: 2, Y: 1}, DirDown, Point{X: 2, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, 5, 4, tt.start.X, tt.start.Y)
			removeFood(g)
			g.lastDir = tt.dir
			g.dir = tt.dir

			if r := g.Tick(); r.Terminal() {
				t.Fatalf("Tick() = %v, want continue", r)
			}
			if g.Head() != tt.want {
				t.Errorf("Head() = %v, want %v", g.Head(), tt.want)
			}
		})
	}
}

func TestReversalRejected(t *testing.T) {
	g := newTestGame(t, 6, 6, 2, 2)
	removeFood(g)

	g.SetDirection(DirDown)
	g.Tick()
	if g.Direction() != DirDown {
		t.Fatalf("committed direction = %v, want down", g.Direction())
	}

	g.SetDirection(DirUp)
	if g.Pending() != DirDown {
		t.Errorf("pending direction = %v after reversal, want down", g.Pending())
	}

	g.Tick()
	if g.Head() != (Point{X: 2, Y: 4}) {
		t.Errorf("Head() = %v, want (2,4) after continuing down", g.Head())
	}
}

func TestSetDirectionTurnsAndRepeats(t *testing.T) {
	g := newTestGame(t, 6, 6, 2, 2)

	g.SetDirection(DirRight)
	if g.Pending() != DirRight {
		t.Errorf("repeating the current direction should be accepted")
	}

	g.SetDirection(DirUp)
	if g.Pending() != DirUp {
		t.Errorf("a 90 degree turn should be accepted, pending = %v", g.Pending())
	}

	// Reversal is checked against the committed direction, not the pending one.
	g.SetDirection(DirDown)
	if g.Pending() != DirDown {
		t.Errorf("pending = %v, want down (committed is still right)", g.Pending())
	}

	g.SetDirection(DirLeft)
	if g.Pending() != DirDown {
		t.Errorf("left is a reversal of committed right, pending = %v", g.Pending())
	}

	g.SetDirection(Direction(42))
	if g.Pending() != DirDown {
		t.Errorf("invalid direction should be ignored, pending = %v", g.Pending())
	}
}

func TestDecayLaw(t *testing.T) {
	g := newTestGame(t, 5, 5, 0, 0)
	removeFood(g)
	g.size = 4

	g.grid[g.index(Point{X: 2, Y: 2})] = 3
	g.grid[g.index(Point{X: 3, Y: 2})] = 2
	g.grid[g.index(Point{X: 4, Y: 2})] = 1
	placeFood(g, 4, 4)

	before := append([]int(nil), g.grid...)
	before[g.index(g.Head())] = g.size // stamped before decay

	g.Tick()

	for i, v := range before {
		want := v
		if v > 0 {
			want = v - 1
		}
		if g.grid[i] != want {
			t.Errorf("cell %d = %d, want %d (was %d)", i, g.grid[i], want, v)
		}
	}
	if g.At(0, 0).Kind != CellBody || g.At(0, 0).Value != 3 {
		t.Errorf("former head cell = %+v, want Body(3)", g.At(0, 0))
	}
}

func TestFrameGating(t *testing.T) {
	g, err := New(6, 6, 1, 1, 3, WithRng(rng.New(9, 9)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	removeFood(g)

	g.Tick()
	g.Tick()
	if g.Head() != (Point{X: 1, Y: 1}) || g.Steps() != 0 {
		t.Fatalf("head moved before the interval elapsed: %v, steps %d", g.Head(), g.Steps())
	}

	g.Tick()
	if g.Head() != (Point{X: 2, Y: 1}) || g.Steps() != 1 {
		t.Fatalf("head = %v steps = %d after third tick, want (2,1) and 1", g.Head(), g.Steps())
	}

	for range 3 {
		g.Tick()
	}
	if g.Steps() != 2 || g.Frames() != 6 {
		t.Errorf("steps = %d frames = %d, want 2 and 6", g.Steps(), g.Frames())
	}
}

func TestEatFood(t *testing.T) {
	g := newTestGame(t, 4, 4, 0, 0)

	if food, _ := g.Food(); food != (Point{X: 1, Y: 0}) {
		t.Fatalf("seeded food at %v, want (1,0)", food)
	}

	r := g.Tick()
	if r.Terminal() {
		t.Fatalf("Tick() = %v, want continue", r)
	}
	if g.Head() != (Point{X: 1, Y: 0}) {
		t.Errorf("Head() = %v, want (1,0)", g.Head())
	}
	if g.Size() != 2 {
		t.Errorf("Size() = %d, want 2", g.Size())
	}
	if v := g.grid[g.index(Point{X: 0, Y: 0})]; v != 1 {
		t.Errorf("grid (0,0) = %d, want 1", v)
	}

	food, ok := g.Food()
	if !ok {
		t.Fatal("new food should have been placed")
	}
	if food == g.Head() {
		t.Error("new food placed on the head")
	}
	if food != (Point{X: 3, Y: 3}) {
		t.Errorf("new food at %v, want (3,3)", food)
	}
	if countFood(g) != 1 {
		t.Errorf("food cells = %d, want 1", countFood(g))
	}

	// The stamped cell decays away on the next plain step.
	g.SetDirection(DirDown)
	g.Tick()
	if v := g.grid[g.index(Point{X: 0, Y: 0})]; v != 0 {
		t.Errorf("grid (0,0) = %d, want 0 after decay", v)
	}
	if c := g.At(1, 0); c.Kind != CellBody || c.Value != 1 {
		t.Errorf("At(1,0) = %+v, want Body(1)", c)
	}
}

func TestFillBoardWins(t *testing.T) {
	g := newTestGame(t, 2, 2, 0, 0)

	moves := []Direction{DirRight, DirDown, DirLeft}
	var r Result
	for i, d := range moves {
		g.SetDirection(d)
		r = g.Tick()
		if i < len(moves)-1 && r.Terminal() {
			t.Fatalf("step %d ended the game early: %v\n%s", i, r, g)
		}
	}

	if r.Outcome != Win || r.Reason != ReasonBoardFull {
		t.Fatalf("Tick() = %v, want win (board full)\n%s", r, g)
	}
	if g.Size() != 4 {
		t.Errorf("Size() = %d, want 4", g.Size())
	}
	if countFood(g) != 0 {
		t.Errorf("food cells = %d on a full board", countFood(g))
	}
}

func TestOuroboros(t *testing.T) {
	g := newTestGame(t, 4, 4, 1, 1)
	removeFood(g)
	g.size = 4
	g.grid[g.index(Point{X: 2, Y: 1})] = 3

	r := g.Tick()
	if r.Outcome != Lose || r.Reason != ReasonOuroboros {
		t.Fatalf("Tick() = %v, want lose (Ouroboros)", r)
	}
}

func TestTailCellStillCollides(t *testing.T) {
	g := newTestGame(t, 4, 4, 1, 1)
	removeFood(g)
	g.size = 2
	g.grid[g.index(Point{X: 2, Y: 1})] = 1

	if r := g.Tick(); r.Outcome != Lose {
		t.Errorf("Tick() = %v, a cell with one step of decay left is still body", r)
	}
}

func TestTerminalSticky(t *testing.T) {
	g := newTestGame(t, 4, 4, 1, 1)
	removeFood(g)
	g.size = 4
	g.grid[g.index(Point{X: 2, Y: 1})] = 3

	first := g.Tick()
	if !first.Terminal() {
		t.Fatalf("Tick() = %v, want terminal", first)
	}

	grid := append([]int(nil), g.grid...)
	head := g.Head()
	frames := g.Frames()

	g.SetDirection(DirDown)
	for i := 0; i < 10; i++ {
		if r := g.Tick(); r != first {
			t.Fatalf("Tick() #%d = %v, want sticky %v", i, r, first)
		}
	}

	if g.Head() != head {
		t.Errorf("head moved after game over: %v -> %v", head, g.Head())
	}
	for i := range grid {
		if grid[i] != g.grid[i] {
			t.Fatalf("grid changed after game over at %d: %d -> %d", i, grid[i], g.grid[i])
		}
	}
	if g.Frames() != frames+10 {
		t.Errorf("Frames() = %d, the frame counter keeps running", g.Frames())
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, 4, 4, 0, 0)
	g.Tick() // eats (1,0)
	g.SetDirection(DirDown)
	g.Tick()

	g.Reset()

	if g.Size() != 1 || g.Head() != (Point{X: 0, Y: 0}) {
		t.Errorf("after Reset size = %d head = %v, want 1 and (0,0)", g.Size(), g.Head())
	}
	if g.Direction() != DirRight || g.Steps() != 0 || g.Frames() != 0 {
		t.Errorf("after Reset dir = %v steps = %d frames = %d", g.Direction(), g.Steps(), g.Frames())
	}
	if g.Result().Terminal() {
		t.Errorf("after Reset result = %v", g.Result())
	}
	for i, v := range g.grid {
		if v > 0 {
			t.Errorf("body cell %d = %d survived Reset", i, v)
		}
	}
	if countFood(g) != 1 {
		t.Errorf("food cells = %d after Reset, want 1", countFood(g))
	}
}

func TestResetContinuesRng(t *testing.T) {
	g := newTestGame(t, 8, 8, 0, 0)
	seed := g.Seed()

	g.Reset()
	if g.Seed() == seed {
		t.Error("Reset without reseed should continue the generator sequence")
	}
}

func TestResetReseeds(t *testing.T) {
	calls := 0
	g := newTestGame(t, 8, 8, 0, 0, WithReseedOnReset(func() *rng.Rng {
		calls++
		return rng.New(0, 0)
	}))
	first, _ := g.Food()

	g.Reset()
	if calls != 1 {
		t.Fatalf("reseed called %d times, want 1", calls)
	}
	if g.Seed() != [2]byte{0, 0} {
		t.Errorf("Seed() = %v, want [0 0]", g.Seed())
	}
	if again, _ := g.Food(); again != first {
		t.Errorf("food after reseed at %v, want %v", again, first)
	}
}

func TestOneCellBoard(t *testing.T) {
	g := newTestGame(t, 1, 1, 0, 0)
	if r := g.Result(); r.Outcome != Win {
		t.Errorf("1x1 board result = %v, want win", r)
	}
}

func TestSingleFoodInvariant(t *testing.T) {
	g, err := New(7, 5, 3, 2, 1, WithRng(rng.New(17, 99)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	driver := rng.New(5, 6)

	for i := 0; i < 2000; i++ {
		g.SetDirection(Direction(driver.Random(4)[0]))
		r := g.Tick()

		n := countFood(g)
		if n > 1 {
			t.Fatalf("tick %d: %d food cells\n%s", i, n, g)
		}
		if !r.Terminal() && n != 1 {
			t.Fatalf("tick %d: running game without food\n%s", i, g)
		}
		if r.Terminal() {
			g.Reset()
		}
	}
}

func TestDeterminism(t *testing.T) {
	play := func() Snapshot {
		g, err := New(10, 8, 0, 0, 2, WithRng(rng.New(12, 34)))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		script := "RRDDLLUURRRDDDLLLUUU"
		for i := 0; i < 200; i++ {
			if d, ok := ParseDirection(rune(script[i%len(script)])); ok && i%3 == 0 {
				g.SetDirection(d)
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}

func TestAtWrapsCoordinates(t *testing.T) {
	g := newTestGame(t, 4, 4, 0, 0)

	if c := g.At(4, 4); c.Kind != CellHead {
		t.Errorf("At(4,4) = %+v, want head at (0,0)", c)
	}
	if c := g.At(-3, 0); c.Kind != CellFood {
		t.Errorf("At(-3,0) = %+v, want food at (1,0)", c)
	}
	if c := g.At(2, 2); c.Kind != CellEmpty {
		t.Errorf("At(2,2) = %+v, want empty", c)
	}
}

func TestString(t *testing.T) {
	g := newTestGame(t, 4, 2, 0, 0)

	want := "@*..\n....\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
