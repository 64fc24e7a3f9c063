package routine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrStepNotFound = errors.New("step not found")

// Draft is a routine under construction or edit. All step mutations
// happen on the draft; nothing is stored until the draft is committed.
type Draft struct {
	routine Routine
}

func NewDraft() *Draft {
	return &Draft{
		routine: Routine{ID: uuid.NewString()},
	}
}

// NewDraftFrom starts a draft as a deep copy of an existing routine,
// keeping its identifier so a later commit updates it in place.
func NewDraftFrom(existing Routine) *Draft {
	return &Draft{routine: existing.Clone()}
}

func (d *Draft) ID() string {
	return d.routine.ID
}

func (d *Draft) Steps() []Step {
	steps := make([]Step, len(d.routine.Steps))
	copy(steps, d.routine.Steps)
	return steps
}

func (d *Draft) AddExerciseStep(name string, sets, reps int, weight, caloriesPerSet float64) Step {
	step := NewExerciseStep(name, sets, reps, weight, caloriesPerSet)
	d.routine.Steps = append(d.routine.Steps, step)
	return step
}

func (d *Draft) AddRestStep(seconds int) Step {
	step := NewRestStep(seconds)
	d.routine.Steps = append(d.routine.Steps, step)
	return step
}

// StepUpdate carries the fields to change on one step; nil fields are
// left untouched.
type StepUpdate struct {
	Name           *string
	Sets           *int
	Reps           *int
	Weight         *float64
	CaloriesPerSet *float64
	RestSeconds    *int
}

func (d *Draft) UpdateStep(stepID string, update StepUpdate) error {
	idx := d.stepIndex(stepID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrStepNotFound, stepID)
	}

	step := d.routine.Steps[idx]
	if update.Name != nil {
		step.Name = *update.Name
	}
	if update.Sets != nil {
		step.Sets = *update.Sets
	}
	if update.Reps != nil {
		step.Reps = *update.Reps
	}
	if update.Weight != nil {
		step.Weight = *update.Weight
	}
	if update.CaloriesPerSet != nil {
		step.CaloriesPerSet = *update.CaloriesPerSet
	}
	if update.RestSeconds != nil {
		step.RestSeconds = *update.RestSeconds
	}

	d.routine.Steps[idx] = step.Normalize()
	return nil
}

// DuplicateStep inserts a copy of the given step, with a fresh
// identifier, immediately after the source step.
func (d *Draft) DuplicateStep(stepID string) (Step, error) {
	idx := d.stepIndex(stepID)
	if idx < 0 {
		return Step{}, fmt.Errorf("%w: %s", ErrStepNotFound, stepID)
	}

	duplicate := d.routine.Steps[idx]
	duplicate.ID = uuid.NewString()

	steps := make([]Step, 0, len(d.routine.Steps)+1)
	steps = append(steps, d.routine.Steps[:idx+1]...)
	steps = append(steps, duplicate)
	steps = append(steps, d.routine.Steps[idx+1:]...)
	d.routine.Steps = steps

	return duplicate, nil
}

func (d *Draft) RemoveStep(stepID string) error {
	idx := d.stepIndex(stepID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrStepNotFound, stepID)
	}
	d.routine.Steps = append(d.routine.Steps[:idx], d.routine.Steps[idx+1:]...)
	return nil
}

// ReorderStep moves the step at fromIndex to toIndex, shifting all
// steps in between while preserving their relative order.
func (d *Draft) ReorderStep(fromIndex, toIndex int) error {
	size := len(d.routine.Steps)
	if fromIndex < 0 || fromIndex >= size || toIndex < 0 || toIndex >= size {
		return fmt.Errorf("reorder step: index out of range [%d -> %d]", fromIndex, toIndex)
	}
	if fromIndex == toIndex {
		return nil
	}

	step := d.routine.Steps[fromIndex]
	steps := append(d.routine.Steps[:fromIndex], d.routine.Steps[fromIndex+1:]...)

	reordered := make([]Step, 0, size)
	reordered = append(reordered, steps[:toIndex]...)
	reordered = append(reordered, step)
	reordered = append(reordered, steps[toIndex:]...)
	d.routine.Steps = reordered
	return nil
}

func (d *Draft) stepIndex(stepID string) int {
	for i, s := range d.routine.Steps {
		if s.ID == stepID {
			return i
		}
	}
	return -1
}
