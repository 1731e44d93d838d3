package game

// Ghost is the belief held about one adversary.
type Ghost struct {
	Candidates []Position
	Fright     int
}

// Hostile reports whether the adversary can take a life.
func (g Ghost) Hostile() bool {
	return g.Fright <= 0
}

// Snapshot holds the observable part of a belief state. It answers every BeliefState query except
// Plans, so oracles embed it and add their own transition function.
type Snapshot struct {
	Position Position
	Life     int
	Points   int
	Items    int
	Cells    Grid
	Ghosts   []Ghost
}

func (s *Snapshot) Agent() Position     { return s.Position }
func (s *Snapshot) Lives() int          { return s.Life }
func (s *Snapshot) Score() int          { return s.Points }
func (s *Snapshot) RemainingItems() int { return s.Items }
func (s *Snapshot) Grid() Grid          { return s.Cells }
func (s *Snapshot) Adversaries() int    { return len(s.Ghosts) }

func (s *Snapshot) Candidates(i int) []Position {
	if i < 0 || i >= len(s.Ghosts) {
		return nil
	}
	return s.Ghosts[i].Candidates
}

func (s *Snapshot) FrightTimer(i int) int {
	if i < 0 || i >= len(s.Ghosts) || s.Ghosts[i].Fright < 0 {
		return 0
	}
	return s.Ghosts[i].Fright
}

// Copy returns a snapshot that shares the grid but owns its adversary slices.
func (s *Snapshot) Copy() Snapshot {
	ghosts := make([]Ghost, len(s.Ghosts))
	for i, g := range s.Ghosts {
		candidates := make([]Position, len(g.Candidates))
		copy(candidates, g.Candidates)
		ghosts[i] = Ghost{Candidates: candidates, Fright: g.Fright}
	}
	return Snapshot{
		Position: s.Position,
		Life:     s.Life,
		Points:   s.Points,
		Items:    s.Items,
		Cells:    s.Cells,
		Ghosts:   ghosts,
	}
}

// HostileGhosts returns the adversaries of state that can take a life and have at least one
// candidate cell, keeping their original order.
func HostileGhosts(state BeliefState) []Ghost {
	var out []Ghost
	for i := 0; i < state.Adversaries(); i++ {
		g := Ghost{Candidates: state.Candidates(i), Fright: state.FrightTimer(i)}
		if len(g.Candidates) == 0 || !g.Hostile() {
			continue
		}
		out = append(out, g)
	}
	return out
}

// NearestHostile returns the smallest distance from p to any candidate cell of a hostile adversary,
// and false when no hostile adversary has a known candidate.
func NearestHostile(state BeliefState, p Position) (int, bool) {
	best, found := 0, false
	for _, g := range HostileGhosts(state) {
		for _, c := range g.Candidates {
			if d := Manhattan(p, c); !found || d < best {
				best, found = d, true
			}
		}
	}
	return best, found
}
