package searcher

import (
	"time"
)

type SearchMetric struct {
	Algorithm Algorithm
	Depth     int
	Duration  time.Duration
	Nodes     int // positions visited, root children included
	Leaves    int // positions scored by the evaluator
	Cutoffs   int // alpha-beta prunes
}

type Collector interface {
	Start(algorithm Algorithm, depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm Algorithm
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm Algorithm, depth int) {
	*m = collector{algorithm: algorithm, depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Cutoffs:   m.cutoffs,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm Algorithm, depth int) {}
func (m *dummyCollector) AddNode()                             {}
func (m *dummyCollector) AddLeaf()                             {}
func (m *dummyCollector) AddCutoff()                           {}
func (m *dummyCollector) Complete() SearchMetric               { return SearchMetric{} }
