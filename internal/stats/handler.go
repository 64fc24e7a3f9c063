package stats

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/repsmash/repsmash/internal/telemetry/tracing"
	"github.com/repsmash/repsmash/pkg"
)

type Handler struct {
	analyzer *Analyzer
}

func NewHandler(analyzer *Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.overview")
	defer span.End()

	overview, err := handler.analyzer.Overview(ctx)
	if err != nil {
		log.Errorf("failed to get stats overview: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, overview)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.summary")
	defer span.End()

	summaries, err := handler.analyzer.Summary(ctx)
	if err != nil {
		log.Errorf("failed to get stats summary: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if summaries == nil {
		summaries = []NameSummary{}
	}
	handler.writeJSON(w, summaries)
}

func (handler *Handler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.records")
	defer span.End()

	name := mux.Vars(r)["name"]
	if name == "" {
		http.Error(w, "error, routine name empty", http.StatusBadRequest)
		return
	}

	records, err := handler.analyzer.Records(ctx, name)
	if err != nil {
		log.Errorf("failed to get records for %q: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, records)
}

func (handler *Handler) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calendar")
	defer span.End()

	windowDays := DefaultCalendarWindowDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		days, err := strconv.Atoi(daysParam)
		if err != nil || days <= 0 {
			http.Error(w, "invalid days param", http.StatusBadRequest)
			return
		}
		windowDays = days
	}

	days, err := handler.analyzer.Calendar(ctx, windowDays)
	if err != nil {
		log.Errorf("failed to get activity calendar: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	handler.writeJSON(w, days)
}

func (handler *Handler) writeJSON(w http.ResponseWriter, val any) {
	respBytes, err := json.Marshal(val)
	if err != nil {
		log.Errorf("failed to marshal stats response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}
