package routine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/repsmash/repsmash/internal/telemetry/metrics"
	"github.com/repsmash/repsmash/internal/telemetry/tracing"
	"github.com/repsmash/repsmash/pkg"
)

type Handler struct {
	service        *Service
	metricsManager *metrics.Manager
}

func NewHandler(service *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

// CommitRequest is the payload for creating or updating a routine. The
// client always submits the full draft; an empty id means a new routine.
type CommitRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

type DeleteRoutineResponse struct {
	DeletedID string `json:"deletedId"`
}

type ListResponse struct {
	Routines []Routine `json:"routines"`
	Total    int       `json:"total"`
}

func (handler *Handler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.commit")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("commit routine, unmarshal json params: %s", err)
		http.Error(w, "commit routine failed", http.StatusBadRequest)
		return
	}

	if id := mux.Vars(r)["id"]; id != "" {
		req.ID = id
	}

	draft := handler.draftFromRequest(ctx, req)
	committed, err := handler.service.Commit(ctx, draft, req.Name)
	if err != nil {
		log.Errorf("failed to commit routine [%s]: %s", req.Name, err)
		http.Error(w, "error, failed to commit routine", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterRoutinesCommitted.Inc()
	}

	committedJson, err := json.Marshal(committed)
	if err != nil {
		log.Errorf("failed to marshal committed routine: %s", err)
		http.Error(w, "error, failed to commit routine", http.StatusInternalServerError)
		return
	}

	log.Debugf("routine committed: [%s] %s", committed.ID, committed.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, committedJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	routine, err := handler.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get routine %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("failed to marshal routine: %s", err)
		http.Error(w, "failed to marshal routine", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, routineJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	routines := handler.service.List(ctx)
	listResponseJson, err := json.Marshal(ListResponse{
		Routines: routines,
		Total:    len(routines),
	})
	if err != nil {
		log.Errorf("marshal routines error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			log.Debugf("routine %s not found", id)
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete routine %s: %s", id, err)
		http.Error(w, "routine not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteRoutineResponse{DeletedID: id})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleExerciseNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.exercisenames")
	defer span.End()

	names := handler.service.KnownExerciseNames(ctx)
	if names == nil {
		names = []string{}
	}

	namesJson, err := json.Marshal(names)
	if err != nil {
		log.Errorf("failed to marshal exercise names: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, namesJson, http.StatusOK)
}

// draftFromRequest replays the submitted steps onto a fresh draft so
// every step passes through the same normalization as builder edits.
func (handler *Handler) draftFromRequest(ctx context.Context, req CommitRequest) *Draft {
	var draft *Draft
	if req.ID != "" {
		if existing, err := handler.service.Get(ctx, req.ID); err == nil {
			draft = NewDraftFrom(existing)
			for _, step := range draft.Steps() {
				_ = draft.RemoveStep(step.ID)
			}
		}
	}
	if draft == nil {
		draft = NewDraft()
		if req.ID != "" {
			draft.routine.ID = req.ID
		}
	}

	for _, step := range req.Steps {
		normalized := step.Normalize()
		draft.routine.Steps = append(draft.routine.Steps, normalized)
	}
	return draft
}
