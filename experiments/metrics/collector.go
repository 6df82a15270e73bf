package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines int
	Depth      int
	Prune      bool
	Duration   time.Duration
	Nodes      int64
	Cutoffs    int64
}

type MoveMetric struct {
	Step   int
	Player string // Color name
	Column int
	Score  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(goroutines, depth int, prune bool)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	depth      int
	prune      bool
	startTime  time.Time
	nodes      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int, prune bool) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.prune = prune
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Depth:      m.depth,
		Prune:      m.prune,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Cutoffs:    m.cutoffs.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int, prune bool) {}
func (m *dummyCollector) AddNode()                                {}
func (m *dummyCollector) AddCutoff()                              {}
func (m *dummyCollector) Complete() SearchMetric                  { return SearchMetric{} }
