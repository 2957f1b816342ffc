package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarises one move search.
type SearchMetric struct {
	Goroutines int
	Multiplier int
	Candidates int
	Duration   time.Duration
	Trials     int
	Wins       int
}

type MoveMetric struct {
	Step   int
	Player string
	Node   int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector receives events from the Monte Carlo searcher. AddTrial and AddWin
// may be called from several goroutines.
type Collector interface {
	Start(goroutines, multiplier, candidates int)
	AddTrial()
	AddWin()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	multiplier int
	candidates int
	startTime  time.Time
	trials     atomic.Int64
	wins       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, multiplier, candidates int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.multiplier = multiplier
	m.candidates = candidates
	m.trials.Store(0)
	m.wins.Store(0)
}

func (m *collector) AddTrial() {
	m.trials.Add(1)
}

func (m *collector) AddWin() {
	m.wins.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Multiplier: m.multiplier,
		Candidates: m.candidates,
		Duration:   time.Since(m.startTime),
		Trials:     int(m.trials.Load()),
		Wins:       int(m.wins.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, multiplier, candidates int) {}
func (m *dummyCollector) AddTrial()                                   {}
func (m *dummyCollector) AddWin()                                     {}
func (m *dummyCollector) Complete() SearchMetric                      { return SearchMetric{} }
