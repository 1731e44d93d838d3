package memory

import (
	"pacman/game"
	"pacman/utils"
)

// History remembers the last cells the agent left and the last two actions it chose.
// Cells are kept in a fixed-capacity ring; the oldest entry is overwritten first.
type History struct {
	cells  []game.Position
	next   int
	size   int
	last   []game.Action // most recent first, at most two
	streak int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{
		cells: make([]game.Position, capacity),
		last:  make([]game.Action, 0, 2),
	}
}

// Record stores the cell the agent was on and the action it chose from there.
func (h *History) Record(cell game.Position, action game.Action) {
	h.cells[h.next] = cell
	h.next = (h.next + 1) % len(h.cells)
	if h.size < len(h.cells) {
		h.size++
	}

	if prev, ok := h.Last(); ok && prev == action {
		h.streak++
	} else {
		h.streak = 0
	}
	if len(h.last) == 2 {
		h.last = h.last[:1]
	}
	h.last = append([]game.Action{action}, h.last...)
}

// Occurrences returns how many times cell appears in the ring.
func (h *History) Occurrences(cell game.Position) int {
	return utils.Count(h.Cells(), cell)
}

// Cells returns the remembered cells, oldest first.
func (h *History) Cells() []game.Position {
	out := make([]game.Position, 0, h.size)
	start := (h.next - h.size + len(h.cells)) % len(h.cells)
	for i := 0; i < h.size; i++ {
		out = append(out, h.cells[(start+i)%len(h.cells)])
	}
	return out
}

// Last returns the most recently chosen action.
func (h *History) Last() (game.Action, bool) {
	if len(h.last) == 0 {
		return game.DefaultAction, false
	}
	return h.last[0], true
}

// SecondLast returns the action chosen before the last one.
func (h *History) SecondLast() (game.Action, bool) {
	if len(h.last) < 2 {
		return game.DefaultAction, false
	}
	return h.last[1], true
}

// Streak returns how many consecutive times the last action was repeated.
func (h *History) Streak() int {
	return h.streak
}

func (h *History) Capacity() int {
	return len(h.cells)
}
