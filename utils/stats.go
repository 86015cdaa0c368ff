package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring of a single run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records a rendered generation and the time it took to produce
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the final stats line shown after a run
func (s *Stats) Summary(now time.Time) string {
	return fmt.Sprintf("Final stats: %d generations in %.1f seconds | %.1f gen/sec | %d alive, %.1f avg population",
		s.TotalGenerations, now.Sub(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.Population, s.AveragePopulation)
}
