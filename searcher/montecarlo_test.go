package searcher

import (
	"testing"

	"hex/experiments/metrics"
	"hex/game"

	"github.com/stretchr/testify/require"
)

// forcedWin is a 3x3 board where Blue, playing left to right, can only win
// through (0,2): the Red middle row cuts the bottom row off and three bottom
// stones exceed Blue's share of the four empty cells.
func forcedWin() *game.Board {
	b := game.NewBoard(3)
	b.Claim(b.Index(0, 0), game.Blue)
	b.Claim(b.Index(0, 1), game.Blue)
	for col := 0; col < 3; col++ {
		b.Claim(b.Index(1, col), game.Red)
	}
	return b
}

func TestChooseMove(t *testing.T) {
	t.Run("empty 2x2 board returns a valid cell", func(t *testing.T) {
		l := game.NewLattice(2)
		b := game.NewBoard(2)
		m := NewMonteCarlo(WithSeed(1))

		move := m.ChooseMoveWithSamples(l, b, game.Blue, game.Horizontal, 50)

		require.GreaterOrEqual(t, move, 0)
		require.Less(t, move, 4)
		require.Equal(t, game.Empty, b.At(move), "Board should be unchanged")
	})

	t.Run("never returns an occupied cell", func(t *testing.T) {
		l := game.NewLattice(4)
		b := game.NewBoard(4)
		for _, node := range []int{0, 5, 6, 10, 15} {
			b.Claim(node, game.Red)
		}
		for _, node := range []int{1, 3, 12} {
			b.Claim(node, game.Blue)
		}
		m := NewMonteCarlo(WithSeed(2), WithMultiplier(20))

		for i := 0; i < 5; i++ {
			move := m.ChooseMove(l, b, game.Blue, game.Horizontal)
			require.Equal(t, game.Empty, b.At(move), "Move %d should be empty", move)
		}
	})

	t.Run("board is unchanged in every mode", func(t *testing.T) {
		l := game.NewLattice(5)
		b := game.NewBoard(5)
		b.Claim(b.Index(2, 2), game.Blue)
		b.Claim(b.Index(1, 3), game.Red)
		before := b.Copy()

		for _, opts := range [][]Option{
			{WithSeed(3)},
			{WithSeed(3), WithGoroutines(4)},
			{WithSeed(3), WithPlayout(PlayoutAlternating)},
			{WithSeed(3), WithGoroutines(3), WithPlayout(PlayoutAlternating)},
		} {
			m := NewMonteCarlo(opts...)
			m.ChooseMoveWithSamples(l, b, game.Red, game.Vertical, 10)
			require.True(t, b.Equal(before), "Search should leave the board as it found it")
		}
	})

	t.Run("picks the only winning cell", func(t *testing.T) {
		l := game.NewLattice(3)
		want := 2 // (0,2)

		for _, opts := range [][]Option{
			{WithSeed(4)},
			{WithSeed(4), WithGoroutines(4)},
			{WithSeed(4), WithPlayout(PlayoutAlternating)},
		} {
			b := forcedWin()
			m := NewMonteCarlo(opts...)
			require.Equal(t, want, m.ChooseMoveWithSamples(l, b, game.Blue, game.Horizontal, 100))
		}
	})

	t.Run("same seed gives the same move", func(t *testing.T) {
		l := game.NewLattice(5)
		b := game.NewBoard(5)
		b.Claim(b.Index(2, 2), game.Red)

		for _, goroutines := range []int{1, 4} {
			first := NewMonteCarlo(WithSeed(42), WithGoroutines(goroutines))
			second := NewMonteCarlo(WithSeed(42), WithGoroutines(goroutines))
			for i := 0; i < 3; i++ {
				require.Equal(t,
					first.ChooseMoveWithSamples(l, b, game.Blue, game.Horizontal, 5),
					second.ChooseMoveWithSamples(l, b, game.Blue, game.Horizontal, 5),
					"Seeded searchers with %d goroutines should agree", goroutines)
			}
		}
	})

	t.Run("collector counts every trial", func(t *testing.T) {
		l := game.NewLattice(3)
		b := forcedWin()

		for _, goroutines := range []int{1, 3} {
			m := NewMonteCarlo(WithSeed(5), WithGoroutines(goroutines), WithMetrics(metrics.NewCollector()))
			m.ChooseMoveWithSamples(l, b, game.Blue, game.Horizontal, 25)

			metric := m.LastMetric()
			require.Equal(t, 4, metric.Candidates)
			require.Equal(t, 25, metric.Multiplier)
			require.Equal(t, goroutines, metric.Goroutines)
			require.Equal(t, 100, metric.Trials)
			require.Greater(t, metric.Wins, 0)
			require.LessOrEqual(t, metric.Wins, metric.Trials)
		}
	})
}

func TestChooseMovePanics(t *testing.T) {
	l := game.NewLattice(2)

	t.Run("full board", func(t *testing.T) {
		b := game.NewBoard(2)
		for node := 0; node < b.Nodes(); node++ {
			b.Claim(node, game.Red)
		}
		require.Panics(t, func() {
			NewMonteCarlo(WithSeed(1)).ChooseMove(l, b, game.Blue, game.Horizontal)
		})
	})

	t.Run("non-positive multiplier", func(t *testing.T) {
		b := game.NewBoard(2)
		require.Panics(t, func() {
			NewMonteCarlo(WithSeed(1)).ChooseMoveWithSamples(l, b, game.Blue, game.Horizontal, 0)
		})
	})

	t.Run("board size mismatch", func(t *testing.T) {
		b := game.NewBoard(3)
		require.Panics(t, func() {
			NewMonteCarlo(WithSeed(1)).ChooseMoveWithSamples(l, b, game.Blue, game.Horizontal, 1)
		})
	})
}
