package types

import "time"

// Run outcome states recorded in run history.
const (
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// RunReport summarizes one pipeline run: identity, timing, outcome, and the
// number of records written per entity table. On failure it names the entity
// that failed and why.
type RunReport struct {
	RunID         string
	StartedAt     time.Time
	FinishedAt    time.Time
	Status        string
	Counts        map[string]int
	FailedEntity  string
	FailureReason string
}

// Duration returns the wall-clock duration of the run.
func (r RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
