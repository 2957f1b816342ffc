package game

import "fmt"

// tag records which set a node belongs to during a search pass.
type tag int

const (
	unvisited tag = iota
	inFrontier
	visited
)

type searchNode struct {
	tag      tag
	distance int
	prev     int // node this one was reached from, -1 for the origin
}

// Search is a colour-restricted uniform-cost traversal over a Lattice. All
// edges weigh 1, so a pass visits nodes in breadth-first order; the frontier
// still orders by (distance, index) to make the visiting order deterministic.
//
// Per-node state lives in an array indexed like the lattice and is reset at
// the start of every Run. A Search is not safe for concurrent use.
type Search struct {
	lattice  *Lattice
	nodes    []searchNode
	frontier *frontier
	order    []int
}

func NewSearch(l *Lattice) *Search {
	nodes := make([]searchNode, l.Nodes())
	s := &Search{
		lattice:  l,
		nodes:    nodes,
		frontier: newFrontier(nodes),
		order:    make([]int, 0, len(nodes)),
	}
	s.reset()
	return s
}

// Run visits every node owned by color that is reachable from start through
// nodes owned by color, and returns them in the order they were finalised.
// The start node is always visited. The returned slice is reused by the next
// Run.
func (s *Search) Run(b *Board, start int, color Cell) []int {
	s.checkBoard(b)
	s.reset()
	s.insert(start, 0, -1)

	for s.frontier.Len() > 0 {
		node := s.frontier.extractMin()
		s.nodes[node].tag = visited
		s.order = append(s.order, node)

		for _, next := range s.lattice.Neighbors(node) {
			if b.At(next) != color {
				continue
			}
			s.relax(node, next)
		}
	}
	return s.order
}

// relax offers next a path through node.
func (s *Search) relax(node, next int) {
	dist := s.nodes[node].distance + 1
	switch s.nodes[next].tag {
	case visited:
		return
	case unvisited:
		s.insert(next, dist, node)
	case inFrontier:
		// With unit weights a node enters the frontier at its final distance,
		// so this branch never fires. It keeps the pass correct for weighted
		// edges.
		if dist < s.nodes[next].distance {
			s.nodes[next].distance = dist
			s.nodes[next].prev = node
			s.frontier.update(next)
		}
	}
}

func (s *Search) insert(node, dist, prev int) {
	if s.nodes[node].tag == inFrontier || s.frontier.contains(node) {
		panic(fmt.Sprintf("search: node %d is already in the frontier", node))
	}
	s.nodes[node] = searchNode{tag: inFrontier, distance: dist, prev: prev}
	s.frontier.insert(node)
}

func (s *Search) reset() {
	for i := range s.nodes {
		s.nodes[i] = searchNode{tag: unvisited, distance: 0, prev: -1}
	}
	s.frontier.clear()
	s.order = s.order[:0]
}

func (s *Search) checkBoard(b *Board) {
	if b.Size() != s.lattice.Size() {
		panic(fmt.Sprintf("search: board size %d does not match lattice size %d", b.Size(), s.lattice.Size()))
	}
}

// Visited reports whether node was reached by the last Run.
func (s *Search) Visited(node int) bool {
	return s.nodes[node].tag == visited
}

// Distance returns the number of steps from the origin of the last Run to
// node, or -1 if node was not reached.
func (s *Search) Distance(node int) int {
	if !s.Visited(node) {
		return -1
	}
	return s.nodes[node].distance
}

// Predecessor returns the node node was reached from, or -1.
func (s *Search) Predecessor(node int) int {
	return s.nodes[node].prev
}

// Path returns the nodes from node back to the origin of the last Run, or
// nil if node was not reached.
func (s *Search) Path(node int) []int {
	if !s.Visited(node) {
		return nil
	}
	path := []int{node}
	for prev := s.nodes[node].prev; prev != -1; prev = s.nodes[prev].prev {
		path = append(path, prev)
	}
	return path
}
