package game

import (
	"fmt"

	"hex/graph"
)

// Lattice is the static adjacency of an N×N hex board. Row r is shifted half
// a cell to the right of row r-1, so (r, c) touches (r, c±1), (r±1, c),
// (r+1, c-1) and (r-1, c+1).
//
//	 0   1   2   3
//	0 . - . - . - .
//	   \ / \ / \ / \
//	1   . - . - . - .
//	     \ / \ / \ / \
//	2     . - . - . - .
//
// A Lattice is immutable after NewLattice returns and can be shared between
// goroutines without synchronisation.
type Lattice struct {
	size  int
	graph *graph.Graph
}

// NewLattice builds the adjacency for a size×size board. Callers validate
// size at their boundary; a non-positive size panics.
func NewLattice(size int) *Lattice {
	if size <= 0 {
		panic(fmt.Sprintf("lattice size must be positive, got %d", size))
	}
	l := &Lattice{
		size:  size,
		graph: graph.New(size * size),
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			// Right (and by extension left)
			if col != size-1 {
				l.connect(row, col, row, col+1)
			}
			// Below (and by extension above)
			if row != size-1 {
				l.connect(row, col, row+1, col)
			}
			// Below-left (and by extension above-right)
			if col != 0 && row != size-1 {
				l.connect(row, col, row+1, col-1)
			}
		}
	}
	l.graph.Collapse()
	return l
}

func (l *Lattice) connect(row1, col1, row2, col2 int) {
	l.graph.AddEdge(l.Index(row1, col1), l.Index(row2, col2))
}

// Size returns the board dimension N.
func (l *Lattice) Size() int {
	return l.size
}

// Nodes returns N².
func (l *Lattice) Nodes() int {
	return l.graph.Nodes()
}

func (l *Lattice) Index(row, col int) int {
	return row*l.size + col
}

func (l *Lattice) Coordinate(node int) (row, col int) {
	return node / l.size, node % l.size
}

// Neighbors returns the nodes adjacent to node in ascending order. The slice
// is shared by every caller and must not be modified.
func (l *Lattice) Neighbors(node int) []int {
	return l.graph.Neighbours(node)
}

// Adjacent reports whether two nodes share an edge.
func (l *Lattice) Adjacent(a, b int) bool {
	return l.graph.HasEdge(a, b)
}

// OnFirstEdge reports whether node lies on the first of the two edges that
// orientation has to connect (column 0 or row 0).
func (l *Lattice) OnFirstEdge(node int, o Orientation) bool {
	row, col := l.Coordinate(node)
	if o == Horizontal {
		return col == 0
	}
	return row == 0
}

// OnSecondEdge reports whether node lies on the far edge (column N-1 or row N-1).
func (l *Lattice) OnSecondEdge(node int, o Orientation) bool {
	row, col := l.Coordinate(node)
	if o == Horizontal {
		return col == l.size-1
	}
	return row == l.size-1
}
