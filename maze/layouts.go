package maze

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

var builtins = map[string][]string{
	"small": {
		"#########",
		"#P.....*#",
		"#.##.##.#",
		"#...G...#",
		"#.##.##.#",
		"#*......#",
		"#########",
	},
	"classic": {
		"####################",
		"#*.......##.......*#",
		"#.##.###.##.###.##.#",
		"#..................#",
		"#.##.#.######.#.##.#",
		"#....#...##...#....#",
		"####.### ## ###.####",
		"#.......G  G.......#",
		"####.# ###### #.####",
		"#........P.........#",
		"#.##.###.##.###.##.#",
		"#*.#............#.*#",
		"####################",
	},
}

// Builtins returns the names of the embedded layouts.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Layout returns the builtin layout called name, or reads name as a file.
func Layout(name string) ([]string, error) {
	if layout, ok := builtins[name]; ok {
		return layout, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read layout %q: %w", name, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}
