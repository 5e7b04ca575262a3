package snake

import "strings"

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Frames   uint64
	Steps    uint64
	Size     int
	Head     Point
	Dir      Direction
	Food     Point
	HasFood  bool
	Seed     [2]byte
	Result   Result
	Interval int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	food, ok := g.Food()
	return Snapshot{
		Frames:   g.frames,
		Steps:    g.steps,
		Size:     g.size,
		Head:     g.head,
		Dir:      g.lastDir,
		Food:     food,
		HasFood:  ok,
		Seed:     g.seed,
		Result:   g.result,
		Interval: g.interval,
	}
}

// Glyphs used by String.
const (
	GlyphEmpty = '.'
	GlyphHead  = '@'
	GlyphBody  = 'o'
	GlyphFood  = '*'
)

// Glyph returns the ASCII character for a cell kind.
func Glyph(k CellKind) rune {
	switch k {
	case CellHead:
		return GlyphHead
	case CellBody:
		return GlyphBody
	case CellFood:
		return GlyphFood
	default:
		return GlyphEmpty
	}
}

// String renders the board as rows of glyphs, top row first.
func (g *Game) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)

	for y := range g.height {
		for x := range g.width {
			b.WriteRune(Glyph(g.At(x, y).Kind))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
