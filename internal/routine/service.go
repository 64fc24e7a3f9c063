package routine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/repsmash/repsmash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=routine_test

var ErrRoutineNotFound = errors.New("routine not found")

type routinesStore interface {
	GetRoutines(ctx context.Context) []Routine
	ReplaceRoutines(ctx context.Context, routines []Routine) error
	AddExerciseNames(ctx context.Context, names ...string) error
	ExerciseNames(ctx context.Context) []string
}

type Service struct {
	store routinesStore
}

func NewService(store routinesStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) []Routine {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.list")
	defer span.End()

	return s.store.GetRoutines(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Routine, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.get")
	defer span.End()

	for _, r := range s.store.GetRoutines(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return Routine{}, fmt.Errorf("%w: %s", ErrRoutineNotFound, id)
}

// Commit finalizes a draft under the given name and upserts it into the
// stored routines collection: same identifier updates in place, a new
// identifier appends. Exercise names are folded into the autocomplete
// vocabulary as a side effect.
func (s *Service) Commit(ctx context.Context, draft *Draft, name string) (_ Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.commit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	committed := draft.routine.Clone()
	committed.Name = name
	for i, step := range committed.Steps {
		committed.Steps[i] = step.Normalize()
	}

	routines := s.store.GetRoutines(ctx)
	updated := false
	for i, r := range routines {
		if r.ID == committed.ID {
			routines[i] = committed
			updated = true
			break
		}
	}
	if !updated {
		routines = append(routines, committed)
	}

	if err := s.store.ReplaceRoutines(ctx, routines); err != nil {
		return Routine{}, fmt.Errorf("commit routine %s: %w", committed.ID, err)
	}

	var exerciseNames []string
	for _, step := range committed.Steps {
		if !step.IsRest() && step.Name != "" {
			exerciseNames = append(exerciseNames, step.Name)
		}
	}
	if len(exerciseNames) > 0 {
		if err := s.store.AddExerciseNames(ctx, exerciseNames...); err != nil {
			// vocabulary is best-effort, the routine itself is already committed
			log.Errorf("failed to record exercise names for routine %s: %s", committed.ID, err)
		}
	}

	return committed, nil
}

// Delete removes the routine; historical workout logs referencing it
// are deliberately left alone.
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	routines := s.store.GetRoutines(ctx)
	remaining := make([]Routine, 0, len(routines))
	for _, r := range routines {
		if r.ID != id {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == len(routines) {
		return fmt.Errorf("%w: %s", ErrRoutineNotFound, id)
	}

	if err := s.store.ReplaceRoutines(ctx, remaining); err != nil {
		return fmt.Errorf("delete routine %s: %w", id, err)
	}
	return nil
}

func (s *Service) KnownExerciseNames(ctx context.Context) []string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.routines.exercisenames")
	defer span.End()

	return s.store.ExerciseNames(ctx)
}
