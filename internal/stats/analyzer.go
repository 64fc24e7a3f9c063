package stats

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=stats_test

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/repsmash/repsmash/internal/routine"
	"github.com/repsmash/repsmash/internal/telemetry/tracing"
	"github.com/repsmash/repsmash/internal/workout"
)

const (
	oneHour           = 60 * 60
	statsCacheExpire  = oneHour * 1
	statsCacheMaxSize = 10 * 1024 * 1024
)

type statsStore interface {
	GetRoutines(ctx context.Context) []routine.Routine
	GetWorkouts(ctx context.Context) []workout.Log
}

// Overview bundles the headline numbers shown on the stats screen.
type Overview struct {
	Streak             int     `json:"streak"`
	Totals             Totals  `json:"totals"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
}

// Analyzer answers statistics queries over the stored collections. The
// engine itself is pure; the analyzer adds the store access, tracing
// and a short-lived response cache keyed by the workouts snapshot.
type Analyzer struct {
	store statsStore
	cache *freecache.Cache
	now   func() time.Time
}

type AnalyzerOption func(*Analyzer)

// WithNow replaces the wall clock, used by tests.
func WithNow(now func() time.Time) AnalyzerOption {
	return func(a *Analyzer) {
		a.now = now
	}
}

func NewAnalyzer(store statsStore, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		store: store,
		cache: freecache.NewCache(statsCacheMaxSize),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Analyzer) Overview(ctx context.Context) (Overview, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.overview")
	defer span.End()

	workouts := a.store.GetWorkouts(ctx)
	today := a.now()

	cacheKey := a.cacheKey("overview", today, workouts)
	var overview Overview
	if a.cacheGet(cacheKey, &overview) {
		return overview, nil
	}

	overview = Overview{
		Streak:             CurrentStreak(workouts, today),
		Totals:             ComputeTotals(workouts),
		AvgDurationMinutes: AverageDuration(workouts),
	}
	a.cacheSet(cacheKey, overview)
	return overview, nil
}

func (a *Analyzer) Summary(ctx context.Context) ([]NameSummary, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.summary")
	defer span.End()

	workouts := a.store.GetWorkouts(ctx)
	routines := a.store.GetRoutines(ctx)

	cacheKey := a.cacheKey("summary", a.now(), workouts)
	var summaries []NameSummary
	if a.cacheGet(cacheKey, &summaries) {
		return summaries, nil
	}

	summaries = PerNameSummary(workouts, routines)
	a.cacheSet(cacheKey, summaries)
	return summaries, nil
}

func (a *Analyzer) Records(ctx context.Context, routineName string) (PersonalRecords, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.records")
	defer span.End()

	workouts := a.store.GetWorkouts(ctx)
	routines := a.store.GetRoutines(ctx)

	cacheKey := a.cacheKey("records::"+routineName, a.now(), workouts)
	var records PersonalRecords
	if a.cacheGet(cacheKey, &records) {
		return records, nil
	}

	records = ComputePersonalRecords(workouts, routines, routineName)
	a.cacheSet(cacheKey, records)
	return records, nil
}

func (a *Analyzer) Calendar(ctx context.Context, windowDays int) ([]CalendarDay, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.calendar")
	defer span.End()

	workouts := a.store.GetWorkouts(ctx)
	today := a.now()

	cacheKey := a.cacheKey(fmt.Sprintf("calendar::%d", windowDays), today, workouts)
	var days []CalendarDay
	if a.cacheGet(cacheKey, &days) {
		return days, nil
	}

	days = ActivityCalendar(workouts, today, windowDays)
	a.cacheSet(cacheKey, days)
	return days, nil
}

// cacheKey versions cached responses by the workouts snapshot (length
// plus most recent date) and the current calendar day, so a new logged
// session or a day rollover invalidates all stale entries.
func (a *Analyzer) cacheKey(op string, today time.Time, workouts []workout.Log) []byte {
	var last time.Time
	for _, w := range workouts {
		if w.Date.After(last) {
			last = w.Date
		}
	}
	return []byte(fmt.Sprintf(
		"%s::%s::%d::%d",
		op, today.Format("2006-01-02"), len(workouts), last.UnixMilli(),
	))
}

func (a *Analyzer) cacheGet(key []byte, dst any) bool {
	cached, err := a.cache.Get(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cached, dst); err != nil {
		log.Errorf("failed to unmarshal cached stats for %s: %s", key, err)
		return false
	}
	log.Tracef("stats cache hit: %s", key)
	return true
}

func (a *Analyzer) cacheSet(key []byte, val any) {
	valBytes, err := json.Marshal(val)
	if err != nil {
		log.Errorf("failed to marshal stats for cache %s: %s", key, err)
		return
	}
	if err := a.cache.Set(key, valBytes, statsCacheExpire); err != nil {
		log.Debugf("failed to cache stats for %s: %s", key, err)
	}
}
