package game

import (
	"fmt"
	"strings"
)

// Cell is the static content of one grid square.
type Cell uint8

const (
	Wall Cell = iota
	Empty
	Item
	PowerItem
)

// IsItem reports whether the cell holds something collectible.
func (c Cell) IsItem() bool {
	return c == Item || c == PowerItem
}

// Position is a (row, column) coordinate on the grid.
type Position struct {
	Row int
	Col int
}

// Move returns the position one step away in the direction of a.
func (p Position) Move(a Action) Position {
	dr, dc := a.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the grid distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Grid holds the cell kinds of the maze, indexed by row then column.
type Grid [][]Cell

// At returns the cell at p. Out-of-bounds positions are reported as walls.
func (g Grid) At(p Position) Cell {
	if p.Row < 0 || p.Row >= len(g) || p.Col < 0 || p.Col >= len(g[p.Row]) {
		return Wall
	}
	return g[p.Row][p.Col]
}

// IsOpen reports whether the agent could stand on p.
func (g Grid) IsOpen(p Position) bool {
	return g.At(p) != Wall
}

// OpenNeighbors counts the non-wall cells adjacent to p.
func (g Grid) OpenNeighbors(p Position) int {
	count := 0
	for _, a := range Actions {
		if g.IsOpen(p.Move(a)) {
			count++
		}
	}
	return count
}

// Items returns the position of every collectible, row by row.
func (g Grid) Items() []Position {
	var items []Position
	for r, row := range g {
		for c, cell := range row {
			if cell.IsItem() {
				items = append(items, Position{Row: r, Col: c})
			}
		}
	}
	return items
}

// With returns a copy of the grid where p holds cell. The receiver is left untouched.
func (g Grid) With(p Position, cell Cell) Grid {
	out := make(Grid, len(g))
	copy(out, g)
	row := make([]Cell, len(g[p.Row]))
	copy(row, g[p.Row])
	row[p.Col] = cell
	out[p.Row] = row
	return out
}

var cellRunes = map[rune]Cell{
	'#': Wall,
	' ': Empty,
	'.': Item,
	'*': PowerItem,
}

// ParseGrid reads a grid drawn with '#' walls, '.' items, '*' power items and ' ' empty cells.
// Any other rune is treated as an empty cell so callers can mark actors in the same drawing.
func ParseGrid(lines []string) (Grid, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	g := make(Grid, len(lines))
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]Cell, 0, len(line))
		for _, ch := range line {
			cell, ok := cellRunes[ch]
			if !ok {
				cell = Empty
			}
			row = append(row, cell)
		}
		g[r] = row
	}
	return g, nil
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, cell := range row {
			switch cell {
			case Wall:
				sb.WriteByte('#')
			case Item:
				sb.WriteByte('.')
			case PowerItem:
				sb.WriteByte('*')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
