package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLattice(t *testing.T) {
	t.Run("panics with non-positive size", func(t *testing.T) {
		require.Panics(t, func() { NewLattice(0) }, "Should panic when size is 0")
		require.Panics(t, func() { NewLattice(-1) }, "Should panic when size is negative")
	})

	t.Run("single cell has no neighbours", func(t *testing.T) {
		l := NewLattice(1)

		require.Equal(t, 1, l.Nodes())
		require.Empty(t, l.Neighbors(0))
	})

	t.Run("adjacency is symmetric with at most six neighbours", func(t *testing.T) {
		for n := 1; n <= 8; n++ {
			l := NewLattice(n)
			for a := 0; a < l.Nodes(); a++ {
				require.LessOrEqual(t, len(l.Neighbors(a)), 6, "Node %d on %dx%d has too many neighbours", a, n, n)
				for b := 0; b < l.Nodes(); b++ {
					require.Equal(t, l.Adjacent(a, b), l.Adjacent(b, a),
						"Edge %d-%d on %dx%d should be symmetric", a, b, n, n)
				}
				for _, b := range l.Neighbors(a) {
					require.Contains(t, l.Neighbors(b), a, "Neighbour lists should mirror each other")
				}
			}
		}
	})

	t.Run("interior node has the six hex neighbours", func(t *testing.T) {
		l := NewLattice(3)
		centre := l.Index(1, 1)

		expected := []int{
			l.Index(0, 1), l.Index(0, 2), // above, above-right
			l.Index(1, 0), l.Index(1, 2), // left, right
			l.Index(2, 0), l.Index(2, 1), // below-left, below
		}
		require.ElementsMatch(t, expected, l.Neighbors(centre))
		require.False(t, l.Adjacent(centre, l.Index(0, 0)), "Above-left is not a hex neighbour")
		require.False(t, l.Adjacent(centre, l.Index(2, 2)), "Below-right is not a hex neighbour")
	})

	t.Run("corners have the expected degrees", func(t *testing.T) {
		l := NewLattice(4)

		require.Len(t, l.Neighbors(l.Index(0, 0)), 2, "Top-left corner")
		require.Len(t, l.Neighbors(l.Index(0, 3)), 3, "Top-right corner")
		require.Len(t, l.Neighbors(l.Index(3, 0)), 3, "Bottom-left corner")
		require.Len(t, l.Neighbors(l.Index(3, 3)), 2, "Bottom-right corner")
	})

	t.Run("neighbours are sorted", func(t *testing.T) {
		l := NewLattice(5)
		for node := 0; node < l.Nodes(); node++ {
			nbs := l.Neighbors(node)
			for i := 1; i < len(nbs); i++ {
				require.Less(t, nbs[i-1], nbs[i])
			}
		}
	})
}

func TestLatticeEdges(t *testing.T) {
	l := NewLattice(3)

	t.Run("horizontal edges are columns", func(t *testing.T) {
		require.True(t, l.OnFirstEdge(l.Index(2, 0), Horizontal))
		require.True(t, l.OnSecondEdge(l.Index(1, 2), Horizontal))
		require.False(t, l.OnFirstEdge(l.Index(0, 1), Horizontal))
	})

	t.Run("vertical edges are rows", func(t *testing.T) {
		require.True(t, l.OnFirstEdge(l.Index(0, 2), Vertical))
		require.True(t, l.OnSecondEdge(l.Index(2, 1), Vertical))
		require.False(t, l.OnSecondEdge(l.Index(1, 2), Vertical))
	})
}

func TestOrientationFor(t *testing.T) {
	require.Equal(t, Horizontal, OrientationFor(0), "First player connects columns")
	require.Equal(t, Vertical, OrientationFor(1), "Second player connects rows")
	require.Equal(t, Horizontal, OrientationFor(2))
	require.Equal(t, Blue, ColorFor(0))
	require.Equal(t, Red, ColorFor(1))
}
