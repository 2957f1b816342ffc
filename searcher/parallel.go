package searcher

import (
	"fmt"

	"hex/game"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// sampleParallel splits trials over m.goroutines workers. Each worker owns a
// copy of the board, a search and a random source seeded from m.rand, so the
// result only depends on m.rand's state. The caller's board is only read.
func (m *MonteCarlo) sampleParallel(l *game.Lattice, b *game.Board, color game.Cell, o game.Orientation, candidates []int, trials int) []int {
	workers := min(m.goroutines, trials)
	seeds := make([]uint64, workers)
	for w := range seeds {
		seeds[w] = m.rand.Uint64()
	}

	counts := make([][]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		share := trials / workers
		if w < trials%workers {
			share++
		}
		g.Go(func() error {
			board := b.Copy()
			p := newPlayout(l, board, color, o, m.playout)
			counts[w] = m.sample(p, rand.New(rand.NewSource(seeds[w])), candidates, share)
			if !board.Equal(b) {
				return fmt.Errorf("worker %d: board copy differs after %d trials", w, share)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err)
	}

	wins := make([]int, b.Nodes())
	for _, local := range counts {
		for node, count := range local {
			wins[node] += count
		}
	}
	return wins
}
