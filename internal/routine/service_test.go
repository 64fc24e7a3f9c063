package routine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/repsmash/repsmash/internal/routine"
)

func TestService_Commit_newRoutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockroutinesStore(ctrl)
	service := routine.NewService(storeMock)
	ctx := context.Background()

	draft := routine.NewDraft()
	draft.AddExerciseStep("Squat", 3, 10, 100, 0)
	draft.AddRestStep(90)
	draft.AddExerciseStep("Lunges", 2, 12, 20, 0)

	var stored []routine.Routine
	storeMock.EXPECT().GetRoutines(gomock.Any()).Return(nil)
	storeMock.EXPECT().
		ReplaceRoutines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, routines []routine.Routine) error {
			stored = routines
			return nil
		})
	storeMock.EXPECT().
		AddExerciseNames(gomock.Any(), "Squat", "Lunges").
		Return(nil)

	committed, err := service.Commit(ctx, draft, "Leg Day")
	require.NoError(t, err)

	assert.Equal(t, draft.ID(), committed.ID)
	assert.Equal(t, "Leg Day", committed.Name)
	require.Len(t, stored, 1)
	assert.Equal(t, committed, stored[0])
}

func TestService_Commit_blankNameFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockroutinesStore(ctrl)
	service := routine.NewService(storeMock)

	draft := routine.NewDraft()
	draft.AddExerciseStep("Squat", 1, 10, 0, 0)

	storeMock.EXPECT().GetRoutines(gomock.Any()).Return(nil)
	storeMock.EXPECT().ReplaceRoutines(gomock.Any(), gomock.Any()).Return(nil)
	storeMock.EXPECT().AddExerciseNames(gomock.Any(), "Squat").Return(nil)

	committed, err := service.Commit(context.Background(), draft, "   ")
	require.NoError(t, err)
	assert.Equal(t, routine.DefaultName, committed.Name)
}

func TestService_Commit_idempotentUpsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockroutinesStore(ctrl)
	service := routine.NewService(storeMock)
	ctx := context.Background()

	draft := routine.NewDraft()
	draft.AddExerciseStep("Squat", 3, 10, 100, 0)

	var stored []routine.Routine
	storeMock.EXPECT().
		GetRoutines(gomock.Any()).
		DoAndReturn(func(context.Context) []routine.Routine {
			return routine.CloneAll(stored)
		}).
		Times(2)
	storeMock.EXPECT().
		ReplaceRoutines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, routines []routine.Routine) error {
			stored = routines
			return nil
		}).
		Times(2)
	storeMock.EXPECT().
		AddExerciseNames(gomock.Any(), "Squat").
		Return(nil).
		Times(2)

	_, err := service.Commit(ctx, draft, "Leg Day")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	// second commit with the same draft id updates in place
	_, err = service.Commit(ctx, draft, "Leg Day v2")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Leg Day v2", stored[0].Name)
}

func TestService_Commit_persistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockroutinesStore(ctrl)
	service := routine.NewService(storeMock)

	draft := routine.NewDraft()
	draft.AddExerciseStep("Squat", 1, 10, 0, 0)

	persistErr := errors.New("disk full")
	storeMock.EXPECT().GetRoutines(gomock.Any()).Return(nil)
	storeMock.EXPECT().ReplaceRoutines(gomock.Any(), gomock.Any()).Return(persistErr)

	_, err := service.Commit(context.Background(), draft, "Leg Day")
	assert.ErrorIs(t, err, persistErr)
}

func TestService_GetAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockroutinesStore(ctrl)
	service := routine.NewService(storeMock)
	ctx := context.Background()

	routines := []routine.Routine{
		{ID: "r1", Name: "Push"},
		{ID: "r2", Name: "Pull"},
	}
	storeMock.EXPECT().GetRoutines(gomock.Any()).Return(routines).Times(3)

	assert.Len(t, service.List(ctx), 2)

	found, err := service.Get(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, "Pull", found.Name)

	_, err = service.Get(ctx, "no-such-id")
	assert.ErrorIs(t, err, routine.ErrRoutineNotFound)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	storeMock := NewMockroutinesStore(ctrl)
	service := routine.NewService(storeMock)
	ctx := context.Background()

	routines := []routine.Routine{
		{ID: "r1", Name: "Push"},
		{ID: "r2", Name: "Pull"},
	}

	storeMock.EXPECT().GetRoutines(gomock.Any()).Return(routine.CloneAll(routines)).Times(2)
	storeMock.EXPECT().
		ReplaceRoutines(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, remaining []routine.Routine) error {
			require.Len(t, remaining, 1)
			assert.Equal(t, "r2", remaining[0].ID)
			return nil
		})

	require.NoError(t, service.Delete(ctx, "r1"))
	assert.ErrorIs(t, service.Delete(ctx, "no-such-id"), routine.ErrRoutineNotFound)
}
