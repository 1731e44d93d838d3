package metrics

// AgentConfig identifies one agent setup in an experiment.
type AgentConfig struct {
	ID          int
	Depth       int
	OutcomeCap  int
	HistorySize int
	Seed        uint64
}
