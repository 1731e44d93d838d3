package searcher

import "pacman/game"

// mockState is a hand-built belief state. Its evaluation is fixed by value.
type mockState struct {
	game.Snapshot
	name  string
	value float64
	plans []game.Plan
}

func (m *mockState) Plans() []game.Plan {
	return m.plans
}

type evaluation struct {
	name      string
	uncertain bool
}

type mockEvaluator struct {
	calls []evaluation
}

func (e *mockEvaluator) Evaluate(state, parent game.BeliefState, uncertain bool) float64 {
	m := state.(*mockState)
	e.calls = append(e.calls, evaluation{name: m.name, uncertain: uncertain})
	return m.value
}

func (e *mockEvaluator) uncertainty(name string) []bool {
	var out []bool
	for _, c := range e.calls {
		if c.name == name {
			out = append(out, c.uncertain)
		}
	}
	return out
}

func newState(name string, value float64, plans ...game.Plan) *mockState {
	return &mockState{
		Snapshot: game.Snapshot{Life: 3, Cells: openGrid()},
		name:     name,
		value:    value,
		plans:    plans,
	}
}

func dead(name string) *mockState {
	s := newState(name, 0)
	s.Life = 2
	return s
}

func plan(action game.Action, outcomes ...*mockState) game.Plan {
	p := game.Plan{Action: action}
	for _, o := range outcomes {
		p.Outcomes = append(p.Outcomes, o)
	}
	return p
}

func openGrid() game.Grid {
	grid, _ := game.ParseGrid([]string{
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	})
	return grid
}
