package game

import (
	"fmt"
	"strings"
)

// Board is an N×N grid of cells stored row major: node = row*N + col.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard returns an empty board. size must be positive.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("board size must be positive, got %d", size))
	}
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the length of a row or column.
func (b *Board) Size() int {
	return b.size
}

// Nodes returns the number of cells.
func (b *Board) Nodes() int {
	return len(b.cells)
}

// Index converts (row, col) to a node index.
func (b *Board) Index(row, col int) int {
	return row*b.size + col
}

// Coordinate converts a node index to (row, col).
func (b *Board) Coordinate(node int) (row, col int) {
	return node / b.size, node % b.size
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

// At returns the content of node.
func (b *Board) At(node int) Cell {
	return b.cells[node]
}

// Play claims (row, col) for colour during normal play.
func (b *Board) Play(row, col int, color Cell) (int, error) {
	if !b.InBounds(row, col) {
		return -1, fmt.Errorf("play %d,%d: %w", row, col, ErrOutOfRange)
	}
	node := b.Index(row, col)
	if b.cells[node] != Empty {
		return -1, fmt.Errorf("play %d,%d: %w", row, col, ErrOccupied)
	}
	b.cells[node] = color
	return node, nil
}

// Claim places colour on an empty node. Claiming an occupied node is a
// programming error and panics.
func (b *Board) Claim(node int, color Cell) {
	if color == Empty {
		panic("cannot claim a node for the empty colour")
	}
	if b.cells[node] != Empty {
		panic(fmt.Sprintf("node %d is already owned by %s", node, b.cells[node]))
	}
	b.cells[node] = color
}

// Release empties a node previously claimed with Claim.
func (b *Board) Release(node int) {
	b.cells[node] = Empty
}

// EmptyNodes returns every empty node in ascending order.
func (b *Board) EmptyNodes() []int {
	empty := make([]int, 0, len(b.cells))
	for node, cell := range b.cells {
		if cell == Empty {
			empty = append(empty, node)
		}
	}
	return empty
}

// Full reports whether no empty cell is left.
func (b *Board) Full() bool {
	for _, cell := range b.cells {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether both boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, cell := range b.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

// String renders the board as a slanted grid, each row shifted right so that
// the hexagonal neighbours line up:
//
//	 0   1   2
//	0 . - . - .
//	   \ / \ / \
//	1   . - . - .
func (b *Board) String() string {
	var sb strings.Builder
	n := b.size

	sb.WriteString(" ")
	for c := 0; c < n; c++ {
		fmt.Fprintf(&sb, "%d   ", c)
	}
	sb.WriteString("\n")

	indent := ""
	for r := 0; r < n; r++ {
		fmt.Fprintf(&sb, "%s%d ", indent, r)
		for c := 0; c < n; c++ {
			sb.WriteByte(b.cells[b.Index(r, c)].Repr())
			if c < n-1 {
				sb.WriteString(" - ")
			}
		}
		sb.WriteString("\n")
		if r == n-1 {
			break
		}
		sb.WriteString("   " + indent)
		for c := 0; c < n-1; c++ {
			sb.WriteString("\\ / ")
		}
		sb.WriteString("\\\n")
		indent += "  "
	}
	return sb.String()
}
