package game

import "container/heap"

// frontier is a min-heap of node indices ordered by (distance, index). It
// reads distances from the search's node array and keeps a position table so
// that a node already in the heap can be moved after its distance drops.
type frontier struct {
	items []int
	pos   []int // pos[node] is the heap slot of node, -1 when absent
	nodes []searchNode
}

func newFrontier(nodes []searchNode) *frontier {
	pos := make([]int, len(nodes))
	for i := range pos {
		pos[i] = -1
	}
	return &frontier{
		items: make([]int, 0, len(nodes)),
		pos:   pos,
		nodes: nodes,
	}
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	da, db := f.nodes[a].distance, f.nodes[b].distance
	if da == db {
		return a < b
	}
	return da < db
}

func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.pos[f.items[i]] = i
	f.pos[f.items[j]] = j
}

// Push is called by heap.Push; x must be a node index.
func (f *frontier) Push(x any) {
	node := x.(int)
	f.pos[node] = len(f.items)
	f.items = append(f.items, node)
}

// Pop is called by heap.Pop and returns the node moved to the end.
func (f *frontier) Pop() any {
	last := len(f.items) - 1
	node := f.items[last]
	f.items = f.items[:last]
	f.pos[node] = -1
	return node
}

func (f *frontier) insert(node int) {
	heap.Push(f, node)
}

func (f *frontier) extractMin() int {
	return heap.Pop(f).(int)
}

// update restores heap order after node's distance decreased.
func (f *frontier) update(node int) {
	heap.Fix(f, f.pos[node])
}

func (f *frontier) contains(node int) bool {
	return f.pos[node] >= 0
}

func (f *frontier) clear() {
	for _, node := range f.items {
		f.pos[node] = -1
	}
	f.items = f.items[:0]
}
