package workout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/repsmash/repsmash/internal/routine"
	"github.com/repsmash/repsmash/internal/telemetry/tracing"
	"github.com/repsmash/repsmash/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type sessionManager interface {
	StartSession(ctx context.Context, routineID string) (Status, error)
	QuickStart(ctx context.Context) (Status, error)
	CompleteSet(ctx context.Context, reps int, weight float64) (Status, *Summary, error)
	SkipSet(ctx context.Context) (Status, *Summary, error)
	SkipRest(ctx context.Context) (Status, error)
	TogglePause(ctx context.Context) (bool, error)
	Exit(ctx context.Context) error
	Status(ctx context.Context) (Status, error)
}

type workoutsLister interface {
	GetWorkouts(ctx context.Context) []Log
}

type StartSessionRequest struct {
	RoutineID string `json:"routineId"`
}

type CompleteSetRequest struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// SessionResponse carries the refreshed session view after every
// session operation; Summary is set only when the operation completed
// the session.
type SessionResponse struct {
	Status  Status   `json:"status"`
	Summary *Summary `json:"summary,omitempty"`
}

type PauseResponse struct {
	Paused bool `json:"paused"`
}

type ListWorkoutsResponse struct {
	Workouts []Log `json:"workouts"`
	Total    int   `json:"total"`
}

type Handler struct {
	manager  sessionManager
	workouts workoutsLister
}

func NewHandler(manager sessionManager, workouts workoutsLister) *Handler {
	return &Handler{
		manager:  manager,
		workouts: workouts,
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.start")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("start session, unmarshal json params: %s", err)
		http.Error(w, "start session failed", http.StatusBadRequest)
		return
	}
	if req.RoutineID == "" {
		http.Error(w, "error, routine id empty", http.StatusBadRequest)
		return
	}

	status, err := handler.manager.StartSession(ctx, req.RoutineID)
	if err != nil {
		handler.writeSessionErr(w, "start session", err)
		return
	}

	handler.writeSession(w, SessionResponse{Status: status}, http.StatusCreated)
}

func (handler *Handler) HandleQuickStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.quickStart")
	defer span.End()

	status, err := handler.manager.QuickStart(ctx)
	if err != nil {
		if errors.Is(err, ErrNoWorkoutHistory) {
			http.Error(w, "no workouts to quick-start from", http.StatusNotFound)
			return
		}
		handler.writeSessionErr(w, "quick-start session", err)
		return
	}

	handler.writeSession(w, SessionResponse{Status: status}, http.StatusCreated)
}

func (handler *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.status")
	defer span.End()

	status, err := handler.manager.Status(ctx)
	if err != nil {
		handler.writeSessionErr(w, "get session", err)
		return
	}

	handler.writeSession(w, SessionResponse{Status: status}, http.StatusOK)
}

func (handler *Handler) HandleCompleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.completeSet")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CompleteSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("complete set, unmarshal json params: %s", err)
		http.Error(w, "complete set failed", http.StatusBadRequest)
		return
	}

	status, summary, err := handler.manager.CompleteSet(ctx, req.Reps, req.Weight)
	if err != nil {
		handler.writeSessionErr(w, "complete set", err)
		return
	}

	handler.writeSession(w, SessionResponse{Status: status, Summary: summary}, http.StatusOK)
}

func (handler *Handler) HandleSkipSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.skipSet")
	defer span.End()

	status, summary, err := handler.manager.SkipSet(ctx)
	if err != nil {
		handler.writeSessionErr(w, "skip set", err)
		return
	}

	handler.writeSession(w, SessionResponse{Status: status, Summary: summary}, http.StatusOK)
}

func (handler *Handler) HandleSkipRest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.skipRest")
	defer span.End()

	status, err := handler.manager.SkipRest(ctx)
	if err != nil {
		handler.writeSessionErr(w, "skip rest", err)
		return
	}

	handler.writeSession(w, SessionResponse{Status: status}, http.StatusOK)
}

func (handler *Handler) HandlePause(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.pause")
	defer span.End()

	paused, err := handler.manager.TogglePause(ctx)
	if err != nil {
		handler.writeSessionErr(w, "toggle pause", err)
		return
	}

	respBytes, err := json.Marshal(PauseResponse{Paused: paused})
	if err != nil {
		log.Errorf("failed to marshal pause response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func (handler *Handler) HandleExit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.exit")
	defer span.End()

	if err := handler.manager.Exit(ctx); err != nil {
		handler.writeSessionErr(w, "exit session", err)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.JSON, `{"exited":true}`, http.StatusOK)
}

// HandleList returns all logged workouts, newest first.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.list")
	defer span.End()

	workouts := handler.workouts.GetWorkouts(ctx)
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date.After(workouts[j].Date)
	})

	respBytes, err := json.Marshal(ListWorkoutsResponse{
		Workouts: workouts,
		Total:    len(workouts),
	})
	if err != nil {
		log.Errorf("failed to marshal workouts list: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

// HandleGet returns one logged workout by its position in the
// newest-first listing.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workout.get")
	defer span.End()

	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil || index < 0 {
		http.Error(w, "invalid workout index", http.StatusBadRequest)
		return
	}

	workouts := handler.workouts.GetWorkouts(ctx)
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Date.After(workouts[j].Date)
	})
	if index >= len(workouts) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}

	respBytes, err := json.Marshal(workouts[index])
	if err != nil {
		log.Errorf("failed to marshal workout: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func (handler *Handler) writeSession(w http.ResponseWriter, resp SessionResponse, status int) {
	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal session response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, status)
}

// writeSessionErr maps session errors to status codes shared by all
// session endpoints.
func (handler *Handler) writeSessionErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNoActiveSession):
		http.Error(w, "no active session", http.StatusNotFound)
	case errors.Is(err, ErrSessionInProgress):
		http.Error(w, "a session is already in progress", http.StatusConflict)
	case errors.Is(err, ErrSessionNotActive), errors.Is(err, ErrSessionNotResting),
		errors.Is(err, ErrSessionFinished), errors.Is(err, ErrAlreadyStarted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrEmptyRoutine):
		http.Error(w, "routine has no exercise steps", http.StatusBadRequest)
	case errors.Is(err, routine.ErrRoutineNotFound):
		http.Error(w, "routine not found", http.StatusNotFound)
	default:
		log.Errorf("failed to %s: %s", op, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
