package engine

import "hex/experiments/metrics"

type Engine interface {
	// Run plays until a player connects their edges. A non-nil error means the
	// game was abandoned, in which case winner is empty.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
