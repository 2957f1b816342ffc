package graph

import "fmt"

// Graph is an undirected, unweighted graph over nodes 0..n-1.
// Edges are held in an adjacency matrix for constant-time lookup and,
// once Collapse is called, in per-node neighbour lists for fast iteration.
type Graph struct {
	nodes      int
	matrix     [][]bool
	neighbours [][]int
	collapsed  bool
}

func New(nodes int) *Graph {
	if nodes <= 0 {
		panic(fmt.Sprintf("graph: node count must be positive, got %d", nodes))
	}
	matrix := make([][]bool, nodes)
	for i := range matrix {
		matrix[i] = make([]bool, nodes)
	}
	return &Graph{
		nodes:      nodes,
		matrix:     matrix,
		neighbours: make([][]int, nodes),
	}
}

// Nodes returns the number of nodes in the graph.
func (g *Graph) Nodes() int {
	return g.nodes
}

// AddEdge adds a bidirectional edge between a and b.
func (g *Graph) AddEdge(a, b int) {
	if g.collapsed {
		panic("graph: cannot add edges after Collapse")
	}
	g.check(a)
	g.check(b)
	if a == b {
		panic(fmt.Sprintf("graph: self loop on node %d", a))
	}
	g.matrix[a][b] = true
	g.matrix[b][a] = true
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	g.check(a)
	g.check(b)
	return g.matrix[a][b]
}

// Collapse freezes the graph and builds the neighbour list of every node
// in ascending index order. It must be called exactly once.
func (g *Graph) Collapse() {
	if g.collapsed {
		panic("graph: already collapsed")
	}
	for row := 0; row < g.nodes; row++ {
		for col := 0; col < g.nodes; col++ {
			if g.matrix[row][col] {
				g.neighbours[row] = append(g.neighbours[row], col)
			}
		}
	}
	g.collapsed = true
}

// Neighbours returns the neighbour list of node. The returned slice is
// shared and must not be modified.
func (g *Graph) Neighbours(node int) []int {
	if !g.collapsed {
		panic("graph: Neighbours called before Collapse")
	}
	g.check(node)
	return g.neighbours[node]
}

func (g *Graph) check(node int) {
	if node < 0 || node >= g.nodes {
		panic(fmt.Sprintf("graph: node %d out of range [0, %d)", node, g.nodes))
	}
}
