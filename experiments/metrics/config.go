package metrics

// AgentConfig describes a computer player taking part in an experiment.
type AgentConfig struct {
	ID         int
	Depth      int
	Prune      bool
	Goroutines int
}
