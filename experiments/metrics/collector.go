package metrics

import (
	"time"
)

type Outcome string

const (
	Player1Capture Outcome = "player1"
	Player2Capture Outcome = "player2"
	War            Outcome = "war"
)

type TickMetric struct {
	Tick         int
	Outcome      Outcome // Who took the trick, or War when a tie was resolved
	Winner       string  // Player name that received the cards
	Pot          int     // Cards moved to the winner's capture pile
	WarRounds    int
	Player1Cards int // Hand + capture after the tick
	Player2Cards int
}

type GameMetric struct {
	Winner     string // "" if the game did not finish
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTicks int
	Wars       int // War rounds, nested rounds included
	Reshuffles int
	LargestPot int
}

type Collector interface {
	Start()
	AddWar()
	AddReshuffle()
	AddTick(tick TickMetric)
	Complete(winner string) GameMetric
	TickMetrics() []TickMetric
}

type collector struct {
	startTime  time.Time
	wars       int
	reshuffles int
	largestPot int
	ticks      []TickMetric
}

// NewCollector records every tick of a single game. It is not safe for
// concurrent use; each game gets its own collector.
func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.wars = 0
	m.reshuffles = 0
	m.largestPot = 0
	m.ticks = nil
}

func (m *collector) AddWar() {
	m.wars++
}

func (m *collector) AddReshuffle() {
	m.reshuffles++
}

func (m *collector) AddTick(tick TickMetric) {
	if tick.Pot > m.largestPot {
		m.largestPot = tick.Pot
	}
	m.ticks = append(m.ticks, tick)
}

func (m *collector) Complete(winner string) GameMetric {
	end := time.Now()
	return GameMetric{
		Winner:     winner,
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
		TotalTicks: len(m.ticks),
		Wars:       m.wars,
		Reshuffles: m.reshuffles,
		LargestPot: m.largestPot,
	}
}

func (m *collector) TickMetrics() []TickMetric {
	return m.ticks
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                            {}
func (m *dummyCollector) AddWar()                           {}
func (m *dummyCollector) AddReshuffle()                     {}
func (m *dummyCollector) AddTick(tick TickMetric)           {}
func (m *dummyCollector) Complete(winner string) GameMetric { return GameMetric{Winner: winner} }
func (m *dummyCollector) TickMetrics() []TickMetric         { return nil }
