package memory

import "github.com/google/uuid"

// DefaultHistorySize is the number of recent cells remembered for loop detection.
const DefaultHistorySize = 15

// Session is the state that survives between decisions of one play session. Each session owns its
// own instance, so independent games never share visit counts.
type Session struct {
	ID      uuid.UUID
	Visits  *Visits
	History *History
}

func NewSession(historySize int) *Session {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &Session{
		ID:      uuid.New(),
		Visits:  NewVisits(),
		History: NewHistory(historySize),
	}
}
