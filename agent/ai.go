package agent

import (
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

type AIAgent struct {
	monteCarlo *searcher.MonteCarlo
}

func NewAIAgent(m *searcher.MonteCarlo) *AIAgent {
	return &AIAgent{monteCarlo: m}
}

func (a *AIAgent) FindMove(l *game.Lattice, b *game.Board, color game.Cell, o game.Orientation) (int, metrics.SearchMetric, error) {
	move := a.monteCarlo.ChooseMove(l, b, color, o)
	return move, a.monteCarlo.LastMetric(), nil
}
