package workout

//go:generate mockgen -source=$GOFILE -destination=manager_mocks_test.go -package=workout_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/repsmash/repsmash/internal/routine"
	"github.com/repsmash/repsmash/internal/telemetry/metrics"
	"github.com/repsmash/repsmash/internal/telemetry/tracing"
)

var (
	ErrSessionInProgress = errors.New("a session is already in progress")
	ErrNoActiveSession   = errors.New("no active session")
	ErrNoWorkoutHistory  = errors.New("no logged workouts to quick-start from")
)

type workoutsStore interface {
	GetWorkouts(ctx context.Context) []Log
	ReplaceWorkouts(ctx context.Context, workouts []Log) error
}

type routinesGetter interface {
	Get(ctx context.Context, id string) (routine.Routine, error)
}

// Manager owns the single active session runner and the 1-second
// ticker goroutine that drives it. All other components see finished
// sessions only through the workouts collection.
type Manager struct {
	mu sync.Mutex

	workouts       workoutsStore
	routines       routinesGetter
	metricsManager *metrics.Manager

	defaultRestSeconds int
	tickInterval       time.Duration
	runnerOpts         []RunnerOption

	runner   *Runner
	stopTick chan struct{}
	tickDone chan struct{}
}

type ManagerOption func(*Manager)

// WithDefaultRestSeconds sets the rest used between sets when the
// routine defines no rest step.
func WithDefaultRestSeconds(seconds int) ManagerOption {
	return func(m *Manager) {
		if seconds > 0 {
			m.defaultRestSeconds = seconds
		}
	}
}

// WithRunnerOptions forwards options to every runner the manager
// creates, used by tests to inject a clock.
func WithRunnerOptions(opts ...RunnerOption) ManagerOption {
	return func(m *Manager) {
		m.runnerOpts = append(m.runnerOpts, opts...)
	}
}

func NewManager(
	workouts workoutsStore,
	routines routinesGetter,
	metricsManager *metrics.Manager,
	opts ...ManagerOption,
) *Manager {
	m := &Manager{
		workouts:           workouts,
		routines:           routines,
		metricsManager:     metricsManager,
		defaultRestSeconds: routine.DefaultRestSeconds,
		tickInterval:       time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartSession starts a session for the given routine. Only one
// session may run at a time.
func (m *Manager) StartSession(ctx context.Context, routineID string) (st Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.workout.startSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	r, err := m.routines.Get(ctx, routineID)
	if err != nil {
		return Status{}, fmt.Errorf("get routine %s: %w", routineID, err)
	}

	return m.startRunner(r)
}

// QuickStart starts a session replaying the most recently logged
// workout, without requiring the routine to still exist.
func (m *Manager) QuickStart(ctx context.Context) (st Status, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "manager.workout.quickStart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workouts := m.workouts.GetWorkouts(ctx)
	if len(workouts) == 0 {
		return Status{}, ErrNoWorkoutHistory
	}

	latest := workouts[0]
	for _, w := range workouts[1:] {
		if w.Date.After(latest.Date) {
			latest = w
		}
	}

	r, err := routineFromLog(latest)
	if err != nil {
		return Status{}, err
	}
	return m.startRunner(r)
}

// routineFromLog rebuilds an ad-hoc routine out of a finished
// workout's records, so it can be run again as-is. Per-set records of
// the same exercise fold back into a single step; one rest step per
// exercise is kept.
func routineFromLog(l Log) (routine.Routine, error) {
	r := routine.Routine{
		ID:   uuid.NewString(),
		Name: l.Name + " (Quick)",
	}
	var lastName string
	restKept := false
	for _, rec := range l.Records {
		if rec.Kind == routine.StepKindRest {
			if !restKept && rec.RestSeconds > 0 {
				r.Steps = append(r.Steps, routine.NewRestStep(rec.RestSeconds))
				restKept = true
			}
			continue
		}
		if rec.Name == lastName {
			continue
		}
		lastName = rec.Name
		restKept = false
		r.Steps = append(r.Steps, routine.NewExerciseStep(
			rec.Name, countSets(l, rec.Name), rec.Reps, rec.Weight, rec.Calories,
		))
	}
	if len(r.ExerciseSteps()) == 0 {
		return routine.Routine{}, ErrEmptyRoutine
	}
	return r, nil
}

func countSets(l Log, name string) int {
	sets := 0
	for _, rec := range l.ExerciseRecords() {
		if rec.Name == name {
			sets++
		}
	}
	return sets
}

func (m *Manager) startRunner(r routine.Routine) (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.runner != nil {
		return Status{}, ErrSessionInProgress
	}

	opts := append(
		[]RunnerOption{WithDefaultRest(m.defaultRestSeconds)},
		m.runnerOpts...,
	)
	runner, err := NewRunner(r, opts...)
	if err != nil {
		return Status{}, err
	}
	if err := runner.Start(); err != nil {
		return Status{}, err
	}

	m.runner = runner
	m.stopTick = make(chan struct{})
	m.tickDone = make(chan struct{})
	go m.tickLoop(runner, m.stopTick, m.tickDone)

	m.metricsManager.GaugeActiveSession.Set(1)
	log.Debugf("workout session started for routine %q", r.Name)

	return runner.Status(), nil
}

func (m *Manager) tickLoop(runner *Runner, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(m.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			runner.Tick()
		}
	}
}

// CompleteSet records the current set. When it was the last planned
// set the session completes: the log is appended to the workouts
// collection and the summary returned.
func (m *Manager) CompleteSet(ctx context.Context, reps int, weight float64) (st Status, sum *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.workout.completeSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	runner, err := m.activeRunner()
	if err != nil {
		return Status{}, nil, err
	}

	done, err := runner.CompleteSet(reps, weight)
	if err != nil {
		return Status{}, nil, err
	}
	if !done {
		return runner.Status(), nil, nil
	}
	return m.finishSession(ctx, runner)
}

// SkipSet advances past the current set without recording performance.
func (m *Manager) SkipSet(ctx context.Context) (st Status, sum *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "manager.workout.skipSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	runner, err := m.activeRunner()
	if err != nil {
		return Status{}, nil, err
	}

	done, err := runner.SkipSet()
	if err != nil {
		return Status{}, nil, err
	}
	if !done {
		return runner.Status(), nil, nil
	}
	return m.finishSession(ctx, runner)
}

func (m *Manager) SkipRest(ctx context.Context) (Status, error) {
	runner, err := m.activeRunner()
	if err != nil {
		return Status{}, err
	}
	if err := runner.SkipRest(); err != nil {
		return Status{}, err
	}
	return runner.Status(), nil
}

// TogglePause flips the session pause flag and reports the new value.
func (m *Manager) TogglePause(ctx context.Context) (paused bool, err error) {
	runner, err := m.activeRunner()
	if err != nil {
		return false, err
	}
	return runner.TogglePause(), nil
}

// Exit abandons the running session. Nothing is persisted.
func (m *Manager) Exit(ctx context.Context) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "manager.workout.exit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	runner, err := m.activeRunner()
	if err != nil {
		return err
	}
	if err := runner.Exit(); err != nil {
		return err
	}

	m.clearRunner()
	m.metricsManager.CounterSessionsAbandoned.Inc()
	log.Debugf("workout session abandoned")
	return nil
}

func (m *Manager) Status(ctx context.Context) (Status, error) {
	runner, err := m.activeRunner()
	if err != nil {
		return Status{}, err
	}
	return runner.Status(), nil
}

// finishSession persists the completed log and releases the runner
// slot. A persist failure keeps the summary but surfaces the error.
func (m *Manager) finishSession(ctx context.Context, runner *Runner) (Status, *Summary, error) {
	workoutLog, ok := runner.Result()
	if !ok {
		return Status{}, nil, fmt.Errorf("session completed without a result log")
	}
	summary, _ := runner.Summary()
	status := runner.Status()

	m.clearRunner()

	workouts := m.workouts.GetWorkouts(ctx)
	workouts = append(workouts, workoutLog)
	if err := m.workouts.ReplaceWorkouts(ctx, workouts); err != nil {
		m.metricsManager.CounterPersistFailures.Inc()
		return status, &summary, fmt.Errorf("failed to persist workout log: %w", err)
	}

	m.metricsManager.CounterSessionsCompleted.Inc()
	log.Debugf(
		"workout session %q completed: %d sets, %d min",
		workoutLog.Name, summary.AchievedSets, summary.DurationMinutes,
	)
	return status, &summary, nil
}

func (m *Manager) activeRunner() (*Runner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.runner == nil {
		return nil, ErrNoActiveSession
	}
	return m.runner, nil
}

// clearRunner stops the ticker goroutine and frees the session slot.
func (m *Manager) clearRunner() {
	m.mu.Lock()
	stop, done := m.stopTick, m.tickDone
	m.runner = nil
	m.stopTick = nil
	m.tickDone = nil
	m.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
	m.metricsManager.GaugeActiveSession.Set(0)
}

// Close stops any running session ticker. Used on server shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	hasRunner := m.runner != nil
	m.mu.Unlock()
	if hasRunner {
		m.clearRunner()
	}
}
