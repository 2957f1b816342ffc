package searcher

import (
	"fmt"
	"time"

	"hex/experiments/metrics"
	"hex/game"
	"hex/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(m *MonteCarlo)

// MonteCarlo picks moves by flat random sampling: for every trial it shuffles
// the empty cells, fills them in that order and credits the first cell of the
// permutation when the searching colour connects its edges.
type MonteCarlo struct {
	multiplier int
	goroutines int
	playout    Playout
	rand       *rand.Rand
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

// WithMultiplier sets the number of trials per empty cell.
func WithMultiplier(multiplier int) Option {
	return func(m *MonteCarlo) {
		if multiplier > 0 {
			m.multiplier = multiplier
		}
	}
}

// WithGoroutines spreads trials over private board copies.
func WithGoroutines(goroutines int) Option {
	return func(m *MonteCarlo) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithRand injects the random source used to shuffle candidates.
func WithRand(r *rand.Rand) Option {
	return func(m *MonteCarlo) {
		if r != nil {
			m.rand = r
		}
	}
}

// WithSeed makes the searcher reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MonteCarlo) {
		m.rand = rand.New(rand.NewSource(seed))
	}
}

func WithPlayout(playout Playout) Option {
	return func(m *MonteCarlo) {
		m.playout = playout
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MonteCarlo) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMonteCarlo(options ...Option) *MonteCarlo {
	m := &MonteCarlo{ // Default values
		multiplier: meta.SAMPLE_MULTIPLIER,
		goroutines: meta.GO_ROUTINES,
		playout:    PlayoutSingleSided,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rand == nil {
		m.rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// ChooseMove runs multiplier trials per empty cell and returns the empty
// cell with the most wins.
func (m *MonteCarlo) ChooseMove(l *game.Lattice, b *game.Board, color game.Cell, o game.Orientation) int {
	return m.ChooseMoveWithSamples(l, b, color, o, m.multiplier)
}

// ChooseMoveWithSamples runs multiplier×|empty cells| trials and returns the
// empty cell with the highest win count, ties going to the smallest index.
// The board holds the same stones on return as on entry. It panics if the
// board has no empty cell, if multiplier is not positive or if the board
// does not match the lattice.
func (m *MonteCarlo) ChooseMoveWithSamples(l *game.Lattice, b *game.Board, color game.Cell, o game.Orientation, multiplier int) int {
	if multiplier <= 0 {
		panic(fmt.Sprintf("sample multiplier must be positive, got %d", multiplier))
	}
	if b.Size() != l.Size() {
		panic(fmt.Sprintf("board size %d does not match lattice size %d", b.Size(), l.Size()))
	}
	candidates := b.EmptyNodes()
	if len(candidates) == 0 {
		panic("no empty cell to choose from")
	}
	trials := multiplier * len(candidates)

	m.metrics.Start(m.goroutines, multiplier, len(candidates))
	var wins []int
	if m.goroutines > 1 && trials > 1 {
		wins = m.sampleParallel(l, b, color, o, candidates, trials)
	} else {
		wins = m.sample(newPlayout(l, b, color, o, m.playout), m.rand, candidates, trials)
	}
	m.last = m.metrics.Complete()

	best := candidates[0]
	for _, node := range candidates[1:] {
		if wins[node] > wins[best] {
			best = node
		}
	}

	log.Debug().
		Str("color", color.String()).
		Int("candidates", len(candidates)).
		Int("trials", trials).
		Int("move", best).
		Int("wins", wins[best]).
		Msg("monte carlo search complete")
	return best
}

// LastMetric returns the metrics of the most recent search. It is empty
// unless a collector was set with WithMetrics.
func (m *MonteCarlo) LastMetric() metrics.SearchMetric {
	return m.last
}

// sample runs trials sequentially on p's board and returns win counts indexed
// by node.
func (m *MonteCarlo) sample(p *playout, r *rand.Rand, candidates []int, trials int) []int {
	wins := make([]int, p.board.Nodes())
	order := make([]int, len(candidates))
	for n := 0; n < trials; n++ {
		copy(order, candidates)
		r.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		representative := order[0]

		m.metrics.AddTrial()
		if p.run(order) {
			wins[representative]++
			m.metrics.AddWin()
		}
	}
	return wins
}
