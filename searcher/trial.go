package searcher

import "hex/game"

// trial is a batch of placements on a board that is always undone. Callers
// defer revert right after creating it so every exit path restores the board.
type trial struct {
	board  *game.Board
	placed []int
}

func newTrial(board *game.Board, scratch []int) *trial {
	return &trial{board: board, placed: scratch[:0]}
}

func (t *trial) place(node int, color game.Cell) {
	t.board.Claim(node, color)
	t.placed = append(t.placed, node)
}

// revert empties every placed node, most recent first.
func (t *trial) revert() {
	for i := len(t.placed) - 1; i >= 0; i-- {
		t.board.Release(t.placed[i])
	}
	t.placed = t.placed[:0]
}

// playout is the per-goroutine state needed to run trials.
type playout struct {
	lattice     *game.Lattice
	board       *game.Board
	search      *game.Search
	color       game.Cell
	orientation game.Orientation
	mode        Playout
	scratch     []int
}

func newPlayout(l *game.Lattice, b *game.Board, color game.Cell, o game.Orientation, mode Playout) *playout {
	return &playout{
		lattice:     l,
		board:       b,
		search:      game.NewSearch(l),
		color:       color,
		orientation: o,
		mode:        mode,
		scratch:     make([]int, 0, b.Nodes()),
	}
}

// run plays one trial along order, a permutation of the empty cells, and
// reports whether the searching colour connected its edges within its share
// of the cells: the first ⌈len(order)/2⌉ own stones.
func (p *playout) run(order []int) (won bool) {
	t := newTrial(p.board, p.scratch)
	defer t.revert()

	share := (len(order) + 1) / 2
	switch p.mode {
	case PlayoutAlternating:
		opponent := p.color.Opponent()
		for k := 0; k < len(order); k++ {
			if k%2 == 1 {
				t.place(order[k], opponent)
				continue
			}
			t.place(order[k], p.color)
			if p.search.Connects(p.board, order[k], p.color, p.orientation) {
				return true
			}
		}
	default:
		for k := 0; k < share; k++ {
			t.place(order[k], p.color)
			if p.search.Connects(p.board, order[k], p.color, p.orientation) {
				return true
			}
		}
	}
	return false
}
