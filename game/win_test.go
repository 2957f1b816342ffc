package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnects(t *testing.T) {
	t.Run("top row connects columns but not rows", func(t *testing.T) {
		b := boardOf(t,
			"BBB",
			"...",
			"...",
		)
		l := NewLattice(3)
		moved := b.Index(0, 2)

		require.True(t, Connects(l, b, moved, Blue, Horizontal), "Top row spans column 0 to column 2")
		require.False(t, Connects(l, b, moved, Blue, Vertical), "Top row never reaches the bottom row")
	})

	t.Run("slanted column connects rows but not columns", func(t *testing.T) {
		b := boardOf(t,
			"B...",
			"B...",
			"B...",
			"B...",
		)
		l := NewLattice(4)

		for row := 0; row < 4; row++ {
			moved := b.Index(row, 0)
			require.True(t, Connects(l, b, moved, Blue, Vertical), "Column 0 spans row 0 to row 3 from row %d", row)
			require.False(t, Connects(l, b, moved, Blue, Horizontal), "Column 0 never reaches column 3 from row %d", row)
		}
	})

	t.Run("chain along the short diagonal", func(t *testing.T) {
		b := boardOf(t,
			"...R",
			"..R.",
			".R..",
			"R...",
		)
		l := NewLattice(4)
		moved := b.Index(1, 2)

		require.True(t, Connects(l, b, moved, Red, Vertical))
		require.True(t, Connects(l, b, moved, Red, Horizontal), "Anti-diagonal touches all four edges")
	})

	t.Run("the long diagonal is not connected", func(t *testing.T) {
		b := boardOf(t,
			"B...",
			".B..",
			"..B.",
			"...B",
		)
		l := NewLattice(4)

		require.False(t, Connects(l, b, b.Index(0, 0), Blue, Vertical), "(r,c) and (r+1,c+1) are not hex neighbours")
		require.False(t, Connects(l, b, b.Index(3, 3), Blue, Horizontal))
	})

	t.Run("an isolated stone does not cross opponent cells", func(t *testing.T) {
		b := boardOf(t,
			"RRR",
			"RBR",
			"RRR",
		)
		l := NewLattice(3)
		moved := b.Index(1, 1)

		require.False(t, Connects(l, b, moved, Blue, Horizontal))
		require.False(t, Connects(l, b, moved, Blue, Vertical))
	})

	t.Run("a lone stone on a 1x1 board touches every edge", func(t *testing.T) {
		b := boardOf(t, "B")
		l := NewLattice(1)

		require.True(t, Connects(l, b, 0, Blue, Horizontal))
		require.True(t, Connects(l, b, 0, Blue, Vertical))
	})

	t.Run("opponent stones block a path", func(t *testing.T) {
		b := boardOf(t,
			"BRB",
			"...",
			"...",
		)
		l := NewLattice(3)

		require.False(t, Connects(l, b, b.Index(0, 0), Blue, Horizontal))
	})

	t.Run("panics when moved is not owned by colour", func(t *testing.T) {
		b := boardOf(t,
			"R.",
			"..",
		)
		l := NewLattice(2)

		require.Panics(t, func() { Connects(l, b, 0, Blue, Horizontal) }, "Opponent stone")
		require.Panics(t, func() { Connects(l, b, 1, Blue, Horizontal) }, "Empty cell")
	})

	t.Run("search is reusable across calls", func(t *testing.T) {
		b := boardOf(t,
			"BBB",
			"RRR",
			"...",
		)
		s := NewSearch(NewLattice(3))

		require.True(t, s.Connects(b, b.Index(0, 1), Blue, Horizontal))
		require.False(t, s.Connects(b, b.Index(1, 1), Red, Vertical))
		require.True(t, s.Connects(b, b.Index(1, 0), Red, Horizontal))
	})
}

func TestWinningChain(t *testing.T) {
	t.Run("returns the stones joining both edges", func(t *testing.T) {
		b := boardOf(t,
			".R..",
			".R..",
			"RR..",
			"R.R.",
		)
		s := NewSearch(NewLattice(4))

		got := s.WinningChain(b, b.Index(1, 1), Red, Vertical)

		require.Equal(t, []int{b.Index(0, 1), b.Index(1, 1), b.Index(2, 0), b.Index(3, 0)}, got)
	})

	t.Run("skips a dead-end moved stone", func(t *testing.T) {
		b := boardOf(t,
			"..B",
			"BB.",
			".B.",
		)
		s := NewSearch(NewLattice(3))

		got := s.WinningChain(b, b.Index(2, 1), Blue, Horizontal)

		require.Equal(t, []int{b.Index(1, 0), b.Index(1, 1), b.Index(0, 2)}, got,
			"Chain should branch at (1,1) instead of detouring through the moved stone")
	})

	t.Run("passes through the moved stone when it joins two branches", func(t *testing.T) {
		b := boardOf(t,
			"BBBB",
			".B..",
			"....",
			"....",
		)
		s := NewSearch(NewLattice(4))

		got := s.WinningChain(b, b.Index(1, 1), Blue, Horizontal)

		require.Equal(t,
			[]int{b.Index(0, 0), b.Index(0, 1), b.Index(1, 1), b.Index(0, 2), b.Index(0, 3)}, got)
	})

	t.Run("nil when not connected", func(t *testing.T) {
		b := boardOf(t,
			"B..",
			"...",
			"...",
		)
		s := NewSearch(NewLattice(3))

		require.Nil(t, s.WinningChain(b, 0, Blue, Horizontal))
	})
}
