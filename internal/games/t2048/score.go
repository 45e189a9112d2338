package t2048

// MergeEvent describes one combined tile materialized during settlement.
type MergeEvent struct {
	Value int // Value of the combined tile
	X, Y  int
}

// ScoreTracker accumulates points from merges.
type ScoreTracker struct {
	points int
	merges int
}

// Record adds the combined tile's value to the score.
func (s *ScoreTracker) Record(ev MergeEvent) {
	s.points += ev.Value
	s.merges++
}

// Points returns the accumulated score.
func (s *ScoreTracker) Points() int {
	return s.points
}

// Merges returns the number of merges recorded.
func (s *ScoreTracker) Merges() int {
	return s.merges
}
