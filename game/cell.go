package game

// Cell is the content of a board cell.
type Cell int

const (
	Empty Cell = iota
	Blue       // first mover, connects left and right
	Red        // second mover, connects top and bottom
)

var cellRepr = [...]byte{'.', 'B', 'R'}

// Opponent returns the other player's colour. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Repr returns the single character used when rendering the board.
func (c Cell) Repr() byte {
	if c < Empty || c > Red {
		return '?'
	}
	return cellRepr[c]
}
