package engine

import (
	"fmt"
	"io"
	"time"

	"hex/agent"
	"hex/experiments/metrics"
	"hex/game"

	"github.com/rs/zerolog/log"
)

type Player struct {
	Name  string
	Agent agent.Agent
}

type Option func(e *LocalEngine)

// WithOutput renders the board to w after every move.
func WithOutput(w io.Writer) Option {
	return func(e *LocalEngine) {
		e.out = w
	}
}

// WithLattice reuses a lattice built for the same board size.
func WithLattice(l *game.Lattice) Option {
	return func(e *LocalEngine) {
		e.lattice = l
	}
}

// LocalEngine runs a game between two players in this process. The first
// player plays Blue and connects the columns, the second plays Red and
// connects the rows.
type LocalEngine struct {
	lattice *game.Lattice
	board   *game.Board
	search  *game.Search
	players []Player
	out     io.Writer
	chain   []int
}

var _ Engine = (*LocalEngine)(nil)

func NewLocalEngine(size int, players []Player, options ...Option) *LocalEngine {
	if len(players) != 2 {
		panic(fmt.Sprintf("need exactly two players, got %d", len(players)))
	}

	e := &LocalEngine{
		board:   game.NewBoard(size),
		players: players,
	}
	for _, option := range options {
		option(e)
	}
	if e.lattice == nil {
		e.lattice = game.NewLattice(size)
	}
	if e.lattice.Size() != size {
		panic(fmt.Sprintf("lattice size %d does not match board size %d", e.lattice.Size(), size))
	}
	e.search = game.NewSearch(e.lattice)
	return e
}

func (e *LocalEngine) Board() *game.Board {
	return e.board
}

// WinningChain returns the stones joining the winner's edges, or nil while
// there is no winner.
func (e *LocalEngine) WinningChain() []int {
	return e.chain
}

func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.players[0].Name,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.players[0].Name)
	e.render()

	winner := ""
	for step := 0; winner == "" && !e.board.Full(); step++ {
		turn := step % 2
		player := e.players[turn]
		color := game.ColorFor(turn)
		orientation := game.OrientationFor(turn)

		node, searchMetric, err := player.Agent.FindMove(e.lattice, e.board, color, orientation)
		if err != nil {
			return "", e.complete(gameMetric, step), moveMetrics, fmt.Errorf("%s did not move: %w", player.Name, err)
		}
		row, col := e.board.Coordinate(node)
		if _, err := e.board.Play(row, col, color); err != nil {
			return "", e.complete(gameMetric, step), moveMetrics, fmt.Errorf("%s played %d,%d: %w", player.Name, row, col, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step + 1,
			Player:       player.Name,
			Node:         node,
			SearchMetric: searchMetric,
		})

		log.Info().
			Int("step", step+1).
			Str("player", player.Name).
			Str("color", color.String()).
			Int("row", row).
			Int("col", col).
			Msg("move")
		e.render()

		if e.search.Connects(e.board, node, color, orientation) {
			winner = player.Name
			e.chain = e.search.WinningChain(e.board, node, color, orientation)
		}
	}

	gameMetric.Winner = winner
	gameMetric = e.complete(gameMetric, len(moveMetrics))
	if winner == "" {
		// Unreachable on a full hex board: one colour always connects.
		log.Warn().Msgf("stopped after %d moves without a winner", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("%s wins after %d moves", winner, gameMetric.TotalMoves)
		if e.out != nil {
			fmt.Fprintf(e.out, "\n!!!%s wins!!!\n", winner)
		}
	}
	return winner, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) complete(m metrics.GameMetric, moves int) metrics.GameMetric {
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.TotalMoves = moves
	return m
}

func (e *LocalEngine) render() {
	if e.out != nil {
		fmt.Fprintf(e.out, "\n%s", e.board)
	}
}
