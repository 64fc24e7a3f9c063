package routine

import (
	"math"

	"github.com/google/uuid"
)

const (
	DefaultName        = "Routine"
	DefaultSets        = 1
	DefaultReps        = 10
	DefaultRestSeconds = 60
)

type StepKind string

const (
	StepKindExercise StepKind = "exercise"
	StepKindRest     StepKind = "rest"
)

// Step is one ordered unit within a routine: either an exercise
// (sets/reps/weight target) or a rest period.
type Step struct {
	ID   string   `json:"id"`
	Kind StepKind `json:"kind"`

	// exercise fields
	Name           string  `json:"name,omitempty"`
	Sets           int     `json:"sets,omitempty"`
	Reps           int     `json:"reps,omitempty"`
	Weight         float64 `json:"weight,omitempty"`
	CaloriesPerSet float64 `json:"caloriesPerSet,omitempty"`

	// rest fields
	RestSeconds int `json:"restSeconds,omitempty"`
}

func (s Step) IsRest() bool {
	return s.Kind == StepKindRest
}

type Routine struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// ExerciseSteps returns the exercise steps in execution order.
func (r Routine) ExerciseSteps() []Step {
	var steps []Step
	for _, s := range r.Steps {
		if !s.IsRest() {
			steps = append(steps, s)
		}
	}
	return steps
}

// PlannedSets is the total number of sets across all exercise steps.
func (r Routine) PlannedSets() int {
	total := 0
	for _, s := range r.Steps {
		if !s.IsRest() {
			total += s.Sets
		}
	}
	return total
}

func (r Routine) Clone() Routine {
	clone := r
	clone.Steps = make([]Step, len(r.Steps))
	copy(clone.Steps, r.Steps)
	return clone
}

func CloneAll(routines []Routine) []Routine {
	clones := make([]Routine, len(routines))
	for i, r := range routines {
		clones[i] = r.Clone()
	}
	return clones
}

func NewExerciseStep(name string, sets, reps int, weight, caloriesPerSet float64) Step {
	if sets < 1 {
		sets = DefaultSets
	}
	return Step{
		ID:             uuid.NewString(),
		Kind:           StepKindExercise,
		Name:           name,
		Sets:           sets,
		Reps:           clampInt(reps),
		Weight:         clampFloat(weight),
		CaloriesPerSet: clampFloat(caloriesPerSet),
	}
}

func NewRestStep(seconds int) Step {
	if seconds <= 0 {
		seconds = DefaultRestSeconds
	}
	return Step{
		ID:          uuid.NewString(),
		Kind:        StepKindRest,
		RestSeconds: seconds,
	}
}

// Normalize clamps all numeric step fields into their valid ranges and
// assigns missing identifiers. Applied once at the builder boundary so
// that no negative or NaN value ever reaches a stored routine.
func (s Step) Normalize() Step {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Kind != StepKindRest {
		s.Kind = StepKindExercise
	}
	if s.IsRest() {
		s.RestSeconds = clampInt(s.RestSeconds)
		s.Name = ""
		s.Sets = 0
		s.Reps = 0
		s.Weight = 0
		s.CaloriesPerSet = 0
		return s
	}
	if s.Sets < 1 {
		s.Sets = DefaultSets
	}
	s.Reps = clampInt(s.Reps)
	s.Weight = clampFloat(s.Weight)
	s.CaloriesPerSet = clampFloat(s.CaloriesPerSet)
	s.RestSeconds = 0
	return s
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampFloat(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
