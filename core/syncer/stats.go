package syncer

import "time"

// Statistics aggregates the outcome of one or more sync runs.
type Statistics struct {
	// Processed is the number of product collections reconciled.
	Processed int `json:"processed"`

	// UpToDate counts collections whose plan was empty.
	UpToDate int `json:"up_to_date"`

	// Created counts executed add actions.
	Created int `json:"created"`

	// Removed counts executed remove actions.
	Removed int `json:"removed"`

	// Updated counts executed field update actions.
	Updated int `json:"updated"`

	// Reordered counts executed reorder actions.
	Reordered int `json:"reordered"`

	// Failed counts collections whose reconciliation or apply failed.
	Failed int `json:"failed"`

	// ProcessingTime is the wall-clock duration of the run.
	ProcessingTime time.Duration `json:"processing_time"`
}

// Add merges another run's statistics into s. Processing times accumulate,
// matching how total stats are reported across consecutive runs.
func (s *Statistics) Add(other Statistics) {
	s.Processed += other.Processed
	s.UpToDate += other.UpToDate
	s.Created += other.Created
	s.Removed += other.Removed
	s.Updated += other.Updated
	s.Reordered += other.Reordered
	s.Failed += other.Failed
	s.ProcessingTime += other.ProcessingTime
}

// countActions tallies a plan's actions by kind into a Statistics value.
func countActions(plan *Plan) Statistics {
	var stats Statistics
	for _, action := range plan.Actions {
		switch KindOf(action) {
		case KindAdd:
			stats.Created++
		case KindRemove:
			stats.Removed++
		case KindReorder:
			stats.Reordered++
		default:
			stats.Updated++
		}
	}
	return stats
}
