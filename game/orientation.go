package game

// Orientation is the pair of opposite edges a player has to connect.
type Orientation int

const (
	Horizontal Orientation = iota // column 0 to column N-1
	Vertical                      // row 0 to row N-1
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// OrientationFor binds an orientation to the turn order: the player who moves
// first connects the columns, the second player connects the rows. The binding
// is positional and does not depend on the colour a player chose.
func OrientationFor(turnIndex int) Orientation {
	if turnIndex%2 == 0 {
		return Horizontal
	}
	return Vertical
}

// ColorFor returns the colour played by the player at turnIndex.
func ColorFor(turnIndex int) Cell {
	if turnIndex%2 == 0 {
		return Blue
	}
	return Red
}
