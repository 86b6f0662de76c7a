package searcher

import (
	"time"
)

type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Depth      int
	Expansions int64 // states generated by playing a move on a copy
	Leaves     int64 // states scored by the evaluation function
}

type MetricsCollector interface {
	Start(depth int)
	AddExpansion()
	AddLeaf()
	Complete() SearchMetrics
}

// metricsCollector is owned by a single search and is not safe for concurrent use.
type metricsCollector struct {
	startTime  time.Time
	depth      int
	expansions int64
	leaves     int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.expansions = 0
	m.leaves = 0
}

func (m *metricsCollector) AddExpansion() {
	m.expansions++
}

func (m *metricsCollector) AddLeaf() {
	m.leaves++
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Depth:      m.depth,
		Expansions: m.expansions,
		Leaves:     m.leaves,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(depth int)         {}
func (m *noMetricsCollector) AddExpansion()           {}
func (m *noMetricsCollector) AddLeaf()                {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
