package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Candidates int
	Nodes      int // Every node visited, including leaves and terminals
	Chances    int
	Leaves     int
	Terminals  int
}

type MoveMetric struct {
	Step   int
	Player string
	Roll   int
	Passed bool // No legal move for the roll
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" if abandoned after the turn limit
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth, goroutines int)
	SetCandidates(n int)
	AddNode()
	AddChance()
	AddLeaf()
	AddTerminal()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	candidates atomic.Int32
	nodes      atomic.Int64
	chances    atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.nodes.Store(0)
	m.chances.Store(0)
	m.leaves.Store(0)
	m.terminals.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int32(n))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddChance() {
	m.chances.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Nodes:      int(m.nodes.Load()),
		Chances:    int(m.chances.Load()),
		Leaves:     int(m.leaves.Load()),
		Terminals:  int(m.terminals.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int) {}
func (m *dummyCollector) SetCandidates(n int)         {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddChance()                  {}
func (m *dummyCollector) AddLeaf()                    {}
func (m *dummyCollector) AddTerminal()                {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
