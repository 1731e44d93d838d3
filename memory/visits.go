package memory

import "pacman/game"

// Visits counts how often the agent stood on each cell during a session. Counts only grow.
type Visits struct {
	counts map[game.Position]int
}

func NewVisits() *Visits {
	return &Visits{counts: make(map[game.Position]int)}
}

// Record increments the count of p and returns the new value.
func (v *Visits) Record(p game.Position) int {
	v.counts[p]++
	return v.counts[p]
}

// Count returns the number of recorded visits to p.
func (v *Visits) Count(p game.Position) int {
	if v == nil {
		return 0
	}
	return v.counts[p]
}

// Cells returns the number of distinct cells visited so far.
func (v *Visits) Cells() int {
	return len(v.counts)
}
