package searcher

import (
	"testing"

	"hex/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTrial(t *testing.T) {
	t.Run("revert empties placed nodes", func(t *testing.T) {
		b := game.NewBoard(3)
		b.Claim(4, game.Red)
		before := b.Copy()

		tr := newTrial(b, nil)
		tr.place(0, game.Blue)
		tr.place(8, game.Blue)
		require.False(t, b.Equal(before))
		tr.revert()

		require.True(t, b.Equal(before), "Board should be restored")
		require.Empty(t, tr.placed)
	})

	t.Run("deferred revert restores the board when a placement panics", func(t *testing.T) {
		b := game.NewBoard(2)
		b.Claim(3, game.Red)
		before := b.Copy()

		require.Panics(t, func() {
			tr := newTrial(b, nil)
			defer tr.revert()
			tr.place(0, game.Blue)
			tr.place(3, game.Blue) // occupied
		})

		require.True(t, b.Equal(before), "Board should be restored on the panic path")
	})
}

func TestPlayoutRun(t *testing.T) {
	l := game.NewLattice(2)

	t.Run("single-sided win stops early and reverts", func(t *testing.T) {
		b := game.NewBoard(2)
		before := b.Copy()
		p := newPlayout(l, b, game.Blue, game.Horizontal, PlayoutSingleSided)

		won := p.run([]int{0, 1, 2, 3})

		require.True(t, won, "(0,0) and (0,1) span both columns")
		require.True(t, b.Equal(before), "Winning trial should be reverted")
	})

	t.Run("single-sided loss places only half the cells", func(t *testing.T) {
		b := game.NewBoard(2)
		before := b.Copy()
		p := newPlayout(l, b, game.Blue, game.Horizontal, PlayoutSingleSided)

		won := p.run([]int{0, 2, 1, 3})

		require.False(t, won, "(0,0) and (1,0) stay in column 0")
		require.True(t, b.Equal(before), "Losing trial should be reverted")
	})

	t.Run("alternating places the opponent between own stones", func(t *testing.T) {
		b := game.NewBoard(2)
		before := b.Copy()
		p := newPlayout(l, b, game.Blue, game.Horizontal, PlayoutAlternating)

		require.False(t, p.run([]int{0, 1, 2, 3}), "Cell 1 goes to the opponent")
		require.True(t, p.run([]int{0, 2, 1, 3}), "Own stones at 0 and 1 touch both columns")
		require.True(t, b.Equal(before))
	})

	t.Run("every random trial leaves the board untouched", func(t *testing.T) {
		l := game.NewLattice(5)
		b := game.NewBoard(5)
		b.Claim(b.Index(2, 2), game.Red)
		b.Claim(b.Index(0, 4), game.Blue)
		before := b.Copy()
		r := rand.New(rand.NewSource(7))

		for _, mode := range []Playout{PlayoutSingleSided, PlayoutAlternating} {
			p := newPlayout(l, b, game.Red, game.Vertical, mode)
			order := b.EmptyNodes()
			for i := 0; i < 200; i++ {
				r.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
				p.run(order)
				require.True(t, b.Equal(before), "Trial %d in %s mode changed the board", i, mode)
			}
		}
	})
}

func TestParsePlayout(t *testing.T) {
	got, ok := ParsePlayout("alternating")
	require.True(t, ok)
	require.Equal(t, PlayoutAlternating, got)

	got, ok = ParsePlayout("single")
	require.True(t, ok)
	require.Equal(t, PlayoutSingleSided, got)

	_, ok = ParsePlayout("minimax")
	require.False(t, ok)
}
