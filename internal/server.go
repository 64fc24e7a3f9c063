package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/repsmash/repsmash/internal/config"
	"github.com/repsmash/repsmash/internal/kvstore"
	"github.com/repsmash/repsmash/internal/middleware"
	"github.com/repsmash/repsmash/internal/routine"
	"github.com/repsmash/repsmash/internal/stats"
	"github.com/repsmash/repsmash/internal/store"
	"github.com/repsmash/repsmash/internal/telemetry/metrics"
	"github.com/repsmash/repsmash/internal/telemetry/tracing"
	"github.com/repsmash/repsmash/internal/workout"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config         *config.Config
	domainStore    *store.Store
	routineService *routine.Service
	sessionManager *workout.Manager
	statsAnalyzer  *stats.Analyzer

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config      *config.Config
	VersionInfo string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("repsmash", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	otelShutdown, err := tracing.Setup(params.Config.TracingEnabled)
	if err != nil {
		return nil, fmt.Errorf("tracing setup: %w", err)
	}

	fileStore, err := kvstore.NewFileStore(params.Config.DataDir)
	if err != nil {
		return nil, fmt.Errorf("new file store: %w", err)
	}

	domainStore, err := store.NewStore(ctx, fileStore, metricsManager)
	if err != nil {
		return nil, fmt.Errorf("new domain store: %w", err)
	}

	routineService := routine.NewService(domainStore)
	sessionManager := workout.NewManager(
		domainStore,
		routineService,
		metricsManager,
		workout.WithDefaultRestSeconds(params.Config.DefaultRestSeconds),
	)

	return &Server{
		config:         params.Config,
		versionInfo:    params.VersionInfo,
		domainStore:    domainStore,
		routineService: routineService,
		sessionManager: sessionManager,
		statsAnalyzer:  stats.NewAnalyzer(domainStore),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("repsmash-router"))

	routinesHandler := routine.NewHandler(s.routineService, s.metricsManager)
	r.HandleFunc("/routines", routinesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	r.HandleFunc("/routines", routinesHandler.HandleCommit).Methods("POST", "OPTIONS").Name("new-routine")
	r.HandleFunc("/routines/{id}", routinesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-routine")
	r.HandleFunc("/routines/{id}", routinesHandler.HandleCommit).Methods("PUT", "OPTIONS").Name("update-routine")
	r.HandleFunc("/routines/{id}", routinesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-routine")
	r.HandleFunc("/exercises/names", routinesHandler.HandleExerciseNames).Methods("GET", "OPTIONS").Name("exercise-names")

	workoutsHandler := workout.NewHandler(s.sessionManager, s.domainStore)
	r.HandleFunc("/sessions", workoutsHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-session")
	r.HandleFunc("/sessions/quick", workoutsHandler.HandleQuickStart).Methods("POST", "OPTIONS").Name("quick-start-session")
	r.HandleFunc("/sessions/current", workoutsHandler.HandleStatus).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/sessions/current", workoutsHandler.HandleExit).Methods("DELETE", "OPTIONS").Name("exit-session")
	r.HandleFunc("/sessions/current/complete-set", workoutsHandler.HandleCompleteSet).Methods("POST", "OPTIONS").Name("complete-set")
	r.HandleFunc("/sessions/current/skip-set", workoutsHandler.HandleSkipSet).Methods("POST", "OPTIONS").Name("skip-set")
	r.HandleFunc("/sessions/current/skip-rest", workoutsHandler.HandleSkipRest).Methods("POST", "OPTIONS").Name("skip-rest")
	r.HandleFunc("/sessions/current/pause", workoutsHandler.HandlePause).Methods("POST", "OPTIONS").Name("pause-session")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{index}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")

	statsHandler := stats.NewHandler(s.statsAnalyzer)
	r.HandleFunc("/stats", statsHandler.HandleOverview).Methods("GET", "OPTIONS").Name("stats-overview")
	r.HandleFunc("/stats/summary", statsHandler.HandleSummary).Methods("GET", "OPTIONS").Name("stats-summary")
	r.HandleFunc("/stats/records/{name}", statsHandler.HandleRecords).Methods("GET", "OPTIONS").Name("stats-records")
	r.HandleFunc("/stats/calendar", statsHandler.HandleCalendar).Methods("GET", "OPTIONS").Name("stats-calendar")

	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(s.versionInfo)); err != nil {
			log.Errorf("failed to write version response: %s", err)
		}
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.sessionManager.Close()
	log.Trace("session manager shut down ...")

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
