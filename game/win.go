package game

import "fmt"

// Connects reports whether the group of color containing moved touches both
// edges required by orientation. It allocates a fresh Search; hot loops
// should keep one and call (*Search).Connects instead.
func Connects(l *Lattice, b *Board, moved int, color Cell, o Orientation) bool {
	return NewSearch(l).Connects(b, moved, color, o)
}

// Connects runs a full pass from moved restricted to color and checks the
// visited set for a node on each edge of orientation. moved must be owned by
// color.
func (s *Search) Connects(b *Board, moved int, color Cell, o Orientation) bool {
	if b.At(moved) != color {
		panic(fmt.Sprintf("connects: node %d is %s, not %s", moved, b.At(moved), color))
	}
	s.Run(b, moved, color)
	return s.reachesEdges(o)
}

func (s *Search) reachesEdges(o Orientation) bool {
	first, second := false, false
	for _, node := range s.order {
		if s.lattice.OnFirstEdge(node, o) {
			first = true
		}
		if s.lattice.OnSecondEdge(node, o) {
			second = true
		}
		if first && second {
			return true
		}
	}
	return false
}

// WinningChain returns a simple chain of color stones from the group of moved
// that joins the two edges of orientation, first edge first, or nil if the
// group does not connect them. Each end is the edge node closest to moved;
// ties go to the smaller index.
func (s *Search) WinningChain(b *Board, moved int, color Cell, o Orientation) []int {
	if !s.Connects(b, moved, color, o) {
		return nil
	}
	first, second := -1, -1
	for _, node := range s.order {
		// order is sorted by (distance, index) so the first hit is the closest
		if first == -1 && s.lattice.OnFirstEdge(node, o) {
			first = node
		}
		if second == -1 && s.lattice.OnSecondEdge(node, o) {
			second = node
		}
	}

	toFirst := s.Path(first)   // first ... moved
	toSecond := s.Path(second) // second ... moved
	// Both walks end in the same search tree; drop the shared tail so the
	// chain passes through the branching node once.
	for len(toFirst) > 1 && len(toSecond) > 1 &&
		toFirst[len(toFirst)-2] == toSecond[len(toSecond)-2] {
		toFirst = toFirst[:len(toFirst)-1]
		toSecond = toSecond[:len(toSecond)-1]
	}

	chain := make([]int, 0, len(toFirst)+len(toSecond)-1)
	chain = append(chain, toFirst...)
	for i := len(toSecond) - 2; i >= 0; i-- {
		chain = append(chain, toSecond[i])
	}
	return chain
}
