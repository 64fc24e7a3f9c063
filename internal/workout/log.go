package workout

import (
	"time"

	"github.com/repsmash/repsmash/internal/routine"
)

// StepRecord is the as-performed record of one completed set or rest
// period within a session.
type StepRecord struct {
	Kind routine.StepKind `json:"kind"`

	// exercise records
	Name   string  `json:"name,omitempty"`
	Set    int     `json:"set,omitempty"`
	Reps   int     `json:"reps,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	// calories credited for this set, from the step's per-set estimate
	Calories float64 `json:"calories,omitempty"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// rest records
	RestSeconds int `json:"restSeconds,omitempty"`
}

// Log is one completed execution of a routine. Created exactly once at
// session completion and never mutated afterwards.
type Log struct {
	RoutineID string `json:"routineId"`
	// routine name at completion time, kept so the log survives
	// deletion of the originating routine
	Name            string       `json:"name"`
	Date            time.Time    `json:"date"`
	TotalTimeMillis int64        `json:"totalTimeMs"`
	DurationMinutes int          `json:"durationMinutes"`
	ExerciseCount   int          `json:"exerciseCount"`
	Records         []StepRecord `json:"records"`
}

// ExerciseRecords returns only the exercise step records, i.e. one
// entry per completed set.
func (l Log) ExerciseRecords() []StepRecord {
	var records []StepRecord
	for _, r := range l.Records {
		if r.Kind != routine.StepKindRest {
			records = append(records, r)
		}
	}
	return records
}

// TotalSets is the number of completed sets in this session.
func (l Log) TotalSets() int {
	return len(l.ExerciseRecords())
}

// TotalReps sums the reps performed across all sets.
func (l Log) TotalReps() int {
	total := 0
	for _, r := range l.ExerciseRecords() {
		total += r.Reps
	}
	return total
}

// WeightVolume is the total weight moved: weight x reps summed over
// every completed set.
func (l Log) WeightVolume() float64 {
	total := 0.0
	for _, r := range l.ExerciseRecords() {
		total += r.Weight * float64(r.Reps)
	}
	return total
}

func (l Log) Clone() Log {
	clone := l
	clone.Records = make([]StepRecord, len(l.Records))
	copy(clone.Records, l.Records)
	return clone
}

func CloneAll(logs []Log) []Log {
	clones := make([]Log, len(logs))
	for i, l := range logs {
		clones[i] = l.Clone()
	}
	return clones
}
