package metrics

import (
	"pacman/game"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // OR and AND nodes expanded
	Leaves   int // evaluator calls
	Deaths   int // outcomes scored as a lost life
	Reflex   bool
}

type MoveMetric struct {
	Step   int
	Action game.Action
	Score  int
	Lives  int
	SearchMetric
}

type GameMetric struct {
	Session   uuid.UUID
	Layout    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Ticks     int
	Score     int
	Lives     int
	Cleared   bool // every item collected
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddDeath()
	SetReflex(value bool)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	deaths    atomic.Int32
	reflex    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.deaths.Store(0)
	m.reflex.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddDeath() {
	m.deaths.Add(1)
}

func (m *collector) SetReflex(value bool) {
	m.reflex.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Deaths:   int(m.deaths.Load()),
		Reflex:   m.reflex.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddDeath()              {}
func (m *dummyCollector) SetReflex(value bool)   {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
