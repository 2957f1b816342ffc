package agent

import (
	"bufio"
	"errors"
	"io"

	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"
	"hex/searcher"
)

// ErrExit is returned by a human agent that typed "exit".
var ErrExit = errors.New("player left the game")

type Agent interface {
	// FindMove returns the node to claim and the search metrics (if collected).
	// The board must not be modified.
	FindMove(l *game.Lattice, b *game.Board, color game.Cell, o game.Orientation) (int, metrics.SearchMetric, error)
}

// New returns the Monte Carlo agent for a player named meta.AI_NAME and a
// human agent reading from in otherwise.
func New(name string, in *bufio.Scanner, out io.Writer, options ...searcher.Option) Agent {
	if name == meta.AI_NAME {
		return NewAIAgent(searcher.NewMonteCarlo(options...))
	}
	return NewHumanAgent(name, in, out)
}
