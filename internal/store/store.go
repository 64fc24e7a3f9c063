package store

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/repsmash/repsmash/internal/kvstore"
	"github.com/repsmash/repsmash/internal/routine"
	"github.com/repsmash/repsmash/internal/telemetry/metrics"
	"github.com/repsmash/repsmash/internal/telemetry/tracing"
	"github.com/repsmash/repsmash/internal/workout"
)

const (
	keyRoutines      = "routines"
	keyWorkouts      = "workouts"
	keyExerciseNames = "exerciseNames"
)

// Store holds the three domain collections in memory and writes every
// replacement through to the key-value store. On a persist failure the
// in-memory collection is rolled back to its previous value, so memory
// and disk never diverge.
type Store struct {
	mu             sync.RWMutex
	kv             kvstore.Store
	metricsManager *metrics.Manager

	routines      []routine.Routine
	workouts      []workout.Log
	exerciseNames []string
}

// NewStore loads all collections from the key-value store. Collections
// with no usable stored value start empty.
func NewStore(ctx context.Context, kv kvstore.Store, metricsManager *metrics.Manager) (*Store, error) {
	s := &Store{
		kv:             kv,
		metricsManager: metricsManager,
	}

	found, err := kv.Load(ctx, keyRoutines, &s.routines)
	if err != nil {
		return nil, fmt.Errorf("load routines: %w", err)
	}
	if !found {
		s.routines = nil
	}

	if found, err = kv.Load(ctx, keyWorkouts, &s.workouts); err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}
	if !found {
		s.workouts = nil
	}

	if found, err = kv.Load(ctx, keyExerciseNames, &s.exerciseNames); err != nil {
		return nil, fmt.Errorf("load exercise names: %w", err)
	}
	if !found {
		s.exerciseNames = nil
	}

	log.Debugf(
		"store loaded: %d routines, %d workouts, %d exercise names",
		len(s.routines), len(s.workouts), len(s.exerciseNames),
	)
	return s, nil
}

func (s *Store) GetRoutines(ctx context.Context) []routine.Routine {
	_, span := tracing.GlobalTracer.Start(ctx, "store.getRoutines")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return routine.CloneAll(s.routines)
}

func (s *Store) ReplaceRoutines(ctx context.Context, routines []routine.Routine) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.replaceRoutines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.routines
	s.routines = routine.CloneAll(routines)
	if err := s.kv.Save(ctx, keyRoutines, s.routines); err != nil {
		s.routines = prev
		s.metricsManager.CounterPersistFailures.Inc()
		return fmt.Errorf("persist routines: %w", err)
	}
	return nil
}

func (s *Store) GetWorkouts(ctx context.Context) []workout.Log {
	_, span := tracing.GlobalTracer.Start(ctx, "store.getWorkouts")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return workout.CloneAll(s.workouts)
}

func (s *Store) ReplaceWorkouts(ctx context.Context, workouts []workout.Log) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.replaceWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.workouts
	s.workouts = workout.CloneAll(workouts)
	if err := s.kv.Save(ctx, keyWorkouts, s.workouts); err != nil {
		s.workouts = prev
		s.metricsManager.CounterPersistFailures.Inc()
		return fmt.Errorf("persist workouts: %w", err)
	}
	return nil
}

func (s *Store) ExerciseNames(ctx context.Context) []string {
	_, span := tracing.GlobalTracer.Start(ctx, "store.exerciseNames")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.exerciseNames))
	copy(names, s.exerciseNames)
	return names
}

// AddExerciseNames folds new names into the autocomplete vocabulary.
// Names are never removed; duplicates and empty strings are dropped.
func (s *Store) AddExerciseNames(ctx context.Context, names ...string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.addExerciseNames")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	known := make(map[string]struct{}, len(s.exerciseNames))
	for _, name := range s.exerciseNames {
		known[name] = struct{}{}
	}

	added := false
	merged := s.exerciseNames
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := known[name]; ok {
			continue
		}
		known[name] = struct{}{}
		merged = append(merged, name)
		added = true
	}
	if !added {
		return nil
	}

	prev := s.exerciseNames
	s.exerciseNames = merged
	if err := s.kv.Save(ctx, keyExerciseNames, s.exerciseNames); err != nil {
		s.exerciseNames = prev
		s.metricsManager.CounterPersistFailures.Inc()
		return fmt.Errorf("persist exercise names: %w", err)
	}
	return nil
}
