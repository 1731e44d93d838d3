package maze

import (
	"fmt"
	"pacman/game"
	"pacman/utils"

	"golang.org/x/exp/slices"
)

// State is a belief state of the simulated maze. Adversaries are never observed directly: each
// tick their candidate sets spread by one step and only shrink when the agent walks through them.
type State struct {
	game.Snapshot
	start game.Position
	homes []game.Position
	rules *Rules
}

// Parse builds the initial state from a drawing: '#' wall, '.' item, '*' power item,
// 'P' agent start, 'G' adversary home, ' ' empty.
func Parse(layout []string, rules Rules) (*State, error) {
	grid, err := game.ParseGrid(layout)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	var start *game.Position
	var homes []game.Position
	for r, line := range layout {
		for c, ch := range []rune(line) {
			p := game.Position{Row: r, Col: c}
			switch ch {
			case 'P':
				if start != nil {
					return nil, fmt.Errorf("layout has more than one agent start")
				}
				start = &p
			case 'G':
				homes = append(homes, p)
			}
		}
	}
	if start == nil {
		return nil, fmt.Errorf("layout has no agent start")
	}

	ghosts := make([]game.Ghost, len(homes))
	for i, home := range homes {
		ghosts[i] = game.Ghost{Candidates: []game.Position{home}}
	}
	return &State{
		Snapshot: game.Snapshot{
			Position: *start,
			Life:     rules.Lives,
			Items:    len(grid.Items()),
			Cells:    grid,
			Ghosts:   ghosts,
		},
		start: *start,
		homes: homes,
		rules: &rules,
	}, nil
}

// Over reports whether the session has ended.
func (s *State) Over() bool {
	return s.Life <= 0 || s.Items <= 0
}

func (s *State) Plans() []game.Plan {
	if s.Over() {
		return nil
	}
	var plans []game.Plan
	for _, action := range game.Actions {
		next := s.Position.Move(action)
		if !s.Cells.IsOpen(next) {
			continue
		}
		snap, powered := s.step(next)
		plans = append(plans, game.Plan{Action: action, Outcomes: s.resolve(snap, powered)})
	}
	return plans
}

// step moves the agent onto next and spreads every adversary belief by one tick. Fright timers
// keep their value until collisions are resolved. powered reports a power item eaten on next.
func (s *State) step(next game.Position) (snap game.Snapshot, powered bool) {
	snap = s.Snapshot.Copy()
	snap.Position = next

	for i := range snap.Ghosts {
		if g := &snap.Ghosts[i]; len(g.Candidates) > 0 {
			g.Candidates = s.spread(g.Candidates, next)
		}
	}

	switch snap.Cells.At(next) {
	case game.Item:
		snap.Points += s.rules.ItemPoints
		snap.Items--
		snap.Cells = snap.Cells.With(next, game.Empty)
	case game.PowerItem:
		snap.Points += s.rules.PowerPoints
		snap.Items--
		snap.Cells = snap.Cells.With(next, game.Empty)
		for i := range snap.Ghosts {
			snap.Ghosts[i].Fright = s.rules.FrightDuration
		}
		powered = true
	}
	return snap, powered
}

// spread returns every open cell within one step of the candidates, capped to the cells closest
// to the agent.
func (s *State) spread(candidates []game.Position, agent game.Position) []game.Position {
	out := make([]game.Position, 0, len(candidates)*3)
	add := func(p game.Position) {
		if s.Cells.IsOpen(p) && utils.FindIndex(out, p) < 0 {
			out = append(out, p)
		}
	}
	for _, c := range candidates {
		add(c)
		for _, action := range game.Actions {
			add(c.Move(action))
		}
	}

	limit := s.rules.MaxCandidates
	if limit <= 0 || len(out) <= limit {
		return out
	}
	slices.SortStableFunc(out, func(a, b game.Position) int {
		return game.Manhattan(a, agent) - game.Manhattan(b, agent)
	})
	return out[:limit]
}

// resolve splits a stepped snapshot on every adversary that may share the agent's cell: either
// it is there, or the cell is ruled out of its candidate set. Fright timers only run down once
// every collision of the tick is resolved.
func (s *State) resolve(base game.Snapshot, powered bool) []game.BeliefState {
	worlds := []game.Snapshot{base}
	for i := range base.Ghosts {
		var next []game.Snapshot
		for _, w := range worlds {
			candidates := w.Ghosts[i].Candidates
			at := utils.FindIndex(candidates, w.Position)
			if at < 0 {
				next = append(next, w)
				continue
			}
			next = append(next, s.meet(w, i))
			if len(candidates) > 1 {
				missed := w.Copy()
				missed.Ghosts[i].Candidates = slices.Delete(missed.Ghosts[i].Candidates, at, at+1)
				next = append(next, missed)
			}
		}
		worlds = next
	}

	out := make([]game.BeliefState, len(worlds))
	for i, w := range worlds {
		if !powered {
			for j := range w.Ghosts {
				if w.Ghosts[j].Fright > 0 {
					w.Ghosts[j].Fright--
				}
			}
		}
		out[i] = &State{Snapshot: w, start: s.start, homes: s.homes, rules: s.rules}
	}
	return out
}

// meet resolves adversary i standing on the agent's cell.
func (s *State) meet(w game.Snapshot, i int) game.Snapshot {
	met := w.Copy()
	if met.Ghosts[i].Fright > 0 {
		met.Points += s.rules.CapturePoints
	} else {
		met.Life--
		met.Position = s.start
	}
	met.Ghosts[i] = game.Ghost{Candidates: []game.Position{s.homes[i]}}
	return met
}

// Apply returns the outcome of playing action that nature picked, given pick in [0, 1).
// It returns false when action is not legal in s.
func (s *State) Apply(action game.Action, pick float64) (*State, bool) {
	for _, plan := range s.Plans() {
		if plan.Action != action || len(plan.Outcomes) == 0 {
			continue
		}
		i := int(pick * float64(len(plan.Outcomes)))
		if i >= len(plan.Outcomes) {
			i = len(plan.Outcomes) - 1
		}
		return plan.Outcomes[i].(*State), true
	}
	return s, false
}
