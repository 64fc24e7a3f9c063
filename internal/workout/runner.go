package workout

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/repsmash/repsmash/internal/routine"
	"github.com/repsmash/repsmash/pkg"
)

type State string

const (
	StateReady     State = "ready"
	StateActive    State = "active"
	StateResting   State = "resting"
	StateCompleted State = "completed"
	StateExited    State = "exited"
)

var (
	ErrEmptyRoutine      = errors.New("routine has no exercise steps")
	ErrAlreadyStarted    = errors.New("session already started")
	ErrSessionNotActive  = errors.New("session is not in active state")
	ErrSessionNotResting = errors.New("session is not resting")
	ErrSessionFinished   = errors.New("session already finished")
)

// Summary is handed to the caller once the session completes.
type Summary struct {
	RoutineName     string `json:"routineName"`
	DurationMinutes int    `json:"durationMinutes"`
	TotalTimeMillis int64  `json:"totalTimeMs"`
	XP              int    `json:"xp"`
	AchievedSets    int    `json:"achievedSets"`
	PlannedSets     int    `json:"plannedSets"`
}

// Status is a point-in-time view of a running session for display.
type Status struct {
	State          State   `json:"state"`
	RoutineID      string  `json:"routineId"`
	RoutineName    string  `json:"routineName"`
	ExerciseName   string  `json:"exerciseName,omitempty"`
	ExerciseIndex  int     `json:"exerciseIndex"`
	ExerciseCount  int     `json:"exerciseCount"`
	CurrentSet     int     `json:"currentSet"`
	SetsInExercise int     `json:"setsInExercise"`
	Reps           int     `json:"reps"`
	Weight         float64 `json:"weight"`
	ElapsedSeconds int     `json:"elapsedSeconds"`
	RestRemaining  int     `json:"restRemainingSeconds,omitempty"`
	CompletedSets  int     `json:"completedSets"`
	PlannedSets    int     `json:"plannedSets"`
	Progress       float64 `json:"progress"`
	XP             int     `json:"xp"`
	Paused         bool    `json:"paused"`
}

// SetXP is the per-set motivation score: a tenth of the moved weight
// times reps, plus a flat participation bonus.
func SetXP(reps int, weight float64) int {
	return int(math.Round(float64(reps)*weight*0.1)) + 10
}

// Runner drives one workout session through
// ready -> active <-> resting -> completed. It owns no timer itself:
// Tick is called once per second by whoever runs the session, which
// keeps every transition deterministic and directly testable.
type Runner struct {
	mu sync.Mutex

	routine     routine.Routine
	exercises   []routine.Step
	restAfter   map[int]int // exercise index -> rest seconds after its sets
	defaultRest int

	clock func() time.Time

	state       State
	exerciseIdx int
	currentSet  int
	reps        int
	weight      float64

	elapsedSec     int
	restRemaining  int
	restConfigured int
	paused         bool

	setStart  time.Time
	restStart time.Time

	records       []StepRecord
	completedSets int
	plannedSets   int
	xp            int

	result  *Log
	summary *Summary
}

type RunnerOption func(*Runner)

// WithClock replaces the wall clock, used by tests.
func WithClock(clock func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.clock = clock
	}
}

// WithDefaultRest overrides the rest duration used between sets when
// the routine defines no rest step for the exercise.
func WithDefaultRest(seconds int) RunnerOption {
	return func(r *Runner) {
		if seconds > 0 {
			r.defaultRest = seconds
		}
	}
}

func NewRunner(r routine.Routine, opts ...RunnerOption) (*Runner, error) {
	exercises := r.ExerciseSteps()
	if len(exercises) == 0 {
		return nil, ErrEmptyRoutine
	}

	runner := &Runner{
		routine:     r.Clone(),
		exercises:   exercises,
		restAfter:   restDurations(r),
		defaultRest: routine.DefaultRestSeconds,
		clock:       time.Now,
		state:       StateReady,
		currentSet:  1,
		reps:        exercises[0].Reps,
		weight:      exercises[0].Weight,
		plannedSets: r.PlannedSets(),
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner, nil
}

// restDurations maps each exercise (by its position among the exercise
// steps) to the duration of the rest step that follows it in the
// routine sequence, when one is defined.
func restDurations(r routine.Routine) map[int]int {
	durations := make(map[int]int)
	exerciseIdx := -1
	for _, step := range r.Steps {
		if step.IsRest() {
			if exerciseIdx >= 0 {
				durations[exerciseIdx] = step.RestSeconds
			}
			continue
		}
		exerciseIdx++
	}
	return durations
}

func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateReady {
		if r.state == StateCompleted || r.state == StateExited {
			return ErrSessionFinished
		}
		return ErrAlreadyStarted
	}

	r.state = StateActive
	r.setStart = r.clock()
	return nil
}

// Tick advances session time by one second. Driven by a real timer in
// production and called directly in tests.
func (r *Runner) Tick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.paused {
		return
	}

	switch r.state {
	case StateActive:
		r.elapsedSec++
	case StateResting:
		r.restRemaining--
		if r.restRemaining <= 0 {
			r.finishRest()
		}
	default:
		// ready/completed/exited: nothing moves
	}
}

// CompleteSet records the current set with the given actuals and
// advances the session. It reports whether the session just completed.
func (r *Runner) CompleteSet(actualReps int, actualWeight float64) (done bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateActive {
		return false, r.notActiveErr()
	}

	if actualReps < 0 {
		actualReps = 0
	}
	if math.IsNaN(actualWeight) || actualWeight < 0 {
		actualWeight = 0
	}

	exercise := r.exercises[r.exerciseIdx]
	now := r.clock()
	r.records = append(r.records, StepRecord{
		Kind:     routine.StepKindExercise,
		Name:     exercise.Name,
		Set:      r.currentSet,
		Reps:     actualReps,
		Weight:   actualWeight,
		Calories: exercise.CaloriesPerSet,
		Start:    r.setStart,
		End:      now,
	})

	r.xp += SetXP(actualReps, actualWeight)
	r.completedSets++

	// actuals carry over to the next set of the same exercise
	r.reps = actualReps
	r.weight = actualWeight

	return r.advance(now), nil
}

// SkipSet advances exactly like CompleteSet but records no performance
// beyond zero-value actuals and grants no score.
func (r *Runner) SkipSet() (done bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateActive {
		return false, r.notActiveErr()
	}

	exercise := r.exercises[r.exerciseIdx]
	now := r.clock()
	r.records = append(r.records, StepRecord{
		Kind:  routine.StepKindExercise,
		Name:  exercise.Name,
		Set:   r.currentSet,
		Start: r.setStart,
		End:   now,
	})
	r.completedSets++

	return r.advance(now), nil
}

// advance moves to the next set, the next exercise, or completion.
// Callers hold the mutex.
func (r *Runner) advance(now time.Time) (done bool) {
	exercise := r.exercises[r.exerciseIdx]

	if r.currentSet < exercise.Sets {
		r.currentSet++
		r.startRest(r.exerciseIdx, now)
		return false
	}

	if r.exerciseIdx < len(r.exercises)-1 {
		finished := r.exerciseIdx
		r.exerciseIdx++
		r.currentSet = 1
		next := r.exercises[r.exerciseIdx]
		r.reps = next.Reps
		r.weight = next.Weight
		r.startRest(finished, now)
		return false
	}

	// last set of the last exercise: no trailing rest
	r.complete(now)
	return true
}

// startRest begins the rest that follows the given exercise. Callers
// hold the mutex.
func (r *Runner) startRest(afterExercise int, now time.Time) {
	duration, ok := r.restAfter[afterExercise]
	if !ok || duration <= 0 {
		duration = r.defaultRest
	}
	r.state = StateResting
	r.restRemaining = duration
	r.restConfigured = duration
	r.restStart = now
}

// finishRest closes the rest record and returns to active. Callers
// hold the mutex.
func (r *Runner) finishRest() {
	now := r.clock()
	r.records = append(r.records, StepRecord{
		Kind:        routine.StepKindRest,
		RestSeconds: r.restConfigured,
		Start:       r.restStart,
		End:         now,
	})
	r.restRemaining = 0
	r.state = StateActive
	r.setStart = now
}

// SkipRest zeroes the remaining countdown and returns to active.
func (r *Runner) SkipRest() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateResting {
		return ErrSessionNotResting
	}
	r.finishRest()
	return nil
}

// TogglePause flips the paused flag and reports the new value. While
// paused, ticks advance neither the elapsed counter nor the countdown.
func (r *Runner) TogglePause() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paused = !r.paused
	return r.paused
}

// Exit discards all in-progress state. No log is ever produced for an
// exited session.
func (r *Runner) Exit() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateCompleted || r.state == StateExited {
		return ErrSessionFinished
	}
	r.state = StateExited
	r.records = nil
	return nil
}

func (r *Runner) complete(now time.Time) {
	r.state = StateCompleted

	totalMillis := int64(r.elapsedSec) * 1000
	records := make([]StepRecord, len(r.records))
	copy(records, r.records)

	r.result = &Log{
		RoutineID:       r.routine.ID,
		Name:            r.routine.Name,
		Date:            now,
		TotalTimeMillis: totalMillis,
		DurationMinutes: pkg.RoundedMinutes(totalMillis),
		ExerciseCount:   len(r.exercises),
		Records:         records,
	}
	r.summary = &Summary{
		RoutineName:     r.routine.Name,
		DurationMinutes: r.result.DurationMinutes,
		TotalTimeMillis: totalMillis,
		XP:              r.xp,
		AchievedSets:    r.completedSets,
		PlannedSets:     r.plannedSets,
	}
}

// Result returns the completed session log, once the session reached
// the completed state.
func (r *Runner) Result() (Log, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.result == nil {
		return Log{}, false
	}
	return r.result.Clone(), true
}

func (r *Runner) Summary() (Summary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.summary == nil {
		return Summary{}, false
	}
	return *r.summary, true
}

func (r *Runner) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) Progress() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress()
}

func (r *Runner) progress() float64 {
	if r.plannedSets == 0 {
		return 0
	}
	return float64(r.completedSets) / float64(r.plannedSets)
}

func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise := r.exercises[r.exerciseIdx]
	return Status{
		State:          r.state,
		RoutineID:      r.routine.ID,
		RoutineName:    r.routine.Name,
		ExerciseName:   exercise.Name,
		ExerciseIndex:  r.exerciseIdx,
		ExerciseCount:  len(r.exercises),
		CurrentSet:     r.currentSet,
		SetsInExercise: exercise.Sets,
		Reps:           r.reps,
		Weight:         r.weight,
		ElapsedSeconds: r.elapsedSec,
		RestRemaining:  r.restRemaining,
		CompletedSets:  r.completedSets,
		PlannedSets:    r.plannedSets,
		Progress:       r.progress(),
		XP:             r.xp,
		Paused:         r.paused,
	}
}

func (r *Runner) notActiveErr() error {
	switch r.state {
	case StateCompleted, StateExited:
		return ErrSessionFinished
	default:
		return ErrSessionNotActive
	}
}
