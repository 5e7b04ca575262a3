package snake

// CellKind classifies a board cell for rendering.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellHead
	CellBody
	CellFood
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	default:
		return "unknown"
	}
}

// Cell is the read-only view of one board position.
// Value is the snake size for the head and the remaining decay for body cells.
type Cell struct {
	Kind  CellKind
	Value int
}

// foodMarker is the grid value for a food cell.
const foodMarker = -1
