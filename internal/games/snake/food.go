package snake

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSpace means the probe visited every cell without finding an empty one.
	ErrNoSpace = errors.New("snake: no space for food")
	// ErrProbeOutOfRange means a non-wrapping probe ran off the end of the board.
	ErrProbeOutOfRange = errors.New("snake: food probe ran past the last cell")
)

// FoodDraw selects how a food candidate is drawn from the generator.
type FoodDraw int

const (
	// DrawIndependent uses one Random call per axis and keeps the first byte of each.
	DrawIndependent FoodDraw = iota
	// DrawPaired uses a single Random(width) pair: the first byte is x, the
	// second is reduced modulo the height for y.
	DrawPaired
)

func (d FoodDraw) String() string {
	switch d {
	case DrawIndependent:
		return "independent"
	case DrawPaired:
		return "paired"
	default:
		return "unknown"
	}
}

// ParseFoodDraw maps a config name to a FoodDraw.
func ParseFoodDraw(s string) (FoodDraw, error) {
	switch s {
	case "", "independent":
		return DrawIndependent, nil
	case "paired":
		return DrawPaired, nil
	}
	return 0, fmt.Errorf("snake: unknown food draw %q", s)
}

// Probe selects how the board is scanned from a food candidate.
type Probe int

const (
	// ProbeWrap scans every cell once, wrapping from the last index to the first.
	ProbeWrap Probe = iota
	// ProbeLinear scans forward from the candidate without wrapping. Cells
	// before the candidate are unreachable; running off the end is an error.
	ProbeLinear
)

func (p Probe) String() string {
	switch p {
	case ProbeWrap:
		return "wrap"
	case ProbeLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// ParseProbe maps a config name to a Probe.
func ParseProbe(s string) (Probe, error) {
	switch s {
	case "", "wrap":
		return ProbeWrap, nil
	case "linear":
		return ProbeLinear, nil
	}
	return 0, fmt.Errorf("snake: unknown food probe %q", s)
}

// newFood draws a candidate cell and places food on the first empty cell the
// probe reaches from it.
func (g *Game) newFood() error {
	x, y := g.candidate()

	idx, err := g.findEmpty(y*g.width + x)
	if err != nil {
		return err
	}
	g.grid[idx] = foodMarker
	return nil
}

func (g *Game) candidate() (x, y int) {
	switch g.draw {
	case DrawPaired:
		pair := g.rng.Random(byte(g.width))
		return int(pair[0]), int(pair[1]) % g.height
	default:
		x = int(g.rng.Random(byte(g.width))[0])
		y = int(g.rng.Random(byte(g.height))[0])
		return x, y
	}
}

// findEmpty returns the flat index of the first empty cell reachable from
// start. The head's cell is never empty.
func (g *Game) findEmpty(start int) (int, error) {
	n := len(g.grid)
	head := g.index(g.head)

	for step := 0; step < n; step++ {
		i := start + step
		if i >= n {
			if g.probe == ProbeLinear {
				return 0, ErrProbeOutOfRange
			}
			i -= n
		}
		if i != head && g.grid[i] == 0 {
			return i, nil
		}
	}
	return 0, ErrNoSpace
}
