package entities

import "time"

// ScenarioStatus represents the outcome of one scenario run
type ScenarioStatus string

const (
	ScenarioPending ScenarioStatus = "pending"
	ScenarioRunning ScenarioStatus = "running"
	ScenarioPassed  ScenarioStatus = "passed"
	ScenarioFailed  ScenarioStatus = "failed"
)

// ScenarioResult is recorded by the runner for every scenario it executes
type ScenarioResult struct {
	Scenario  string         `json:"scenario"`
	RunID     string         `json:"run_id"`
	Status    ScenarioStatus `json:"status"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
	Error     string         `json:"error,omitempty"`
}

// Summary is the outcome of a whole run
type Summary struct {
	Results []ScenarioResult `json:"results"`
	Passed  int              `json:"passed"`
	Failed  int              `json:"failed"`
}

// Add - appends a result and updates counters
func (s *Summary) Add(r ScenarioResult) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case ScenarioPassed:
		s.Passed++
	case ScenarioFailed:
		s.Failed++
	}
}

// OK - reports whether every scenario passed
func (s *Summary) OK() bool {
	return s.Failed == 0
}
