package game

// Action is one of the four moves available to the agent.
type Action int

const (
	Up Action = iota
	Down
	Left
	Right
)

// DefaultAction is played whenever nothing better can be decided.
const DefaultAction = Up

// Actions lists every action in a fixed order.
var Actions = [...]Action{Up, Down, Left, Right}

var actionNames = [...]string{"up", "down", "left", "right"}

var deltas = [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (a Action) String() string {
	if a < Up || a > Right {
		return "unknown"
	}
	return actionNames[a]
}

// Opposite returns the action that undoes a.
func (a Action) Opposite() Action {
	switch a {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// IsOpposite reports whether a and b point in opposite directions.
func (a Action) IsOpposite(b Action) bool {
	return a.Opposite() == b
}

// Delta returns the row and column offset of the move, or no offset for an unknown action.
func (a Action) Delta() (int, int) {
	if a < Up || a > Right {
		return 0, 0
	}
	d := deltas[a]
	return d[0], d[1]
}

// ParseAction converts a lower-case action name back to an Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return DefaultAction, false
}
