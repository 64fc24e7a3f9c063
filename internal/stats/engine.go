package stats

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/repsmash/repsmash/internal/routine"
	"github.com/repsmash/repsmash/internal/workout"
)

// PlaceholderName labels sessions whose routine reference dangles and
// whose own name is empty.
const PlaceholderName = "Workout"

// DefaultCalendarWindowDays covers seven full weeks.
const DefaultCalendarWindowDays = 49

type Totals struct {
	Sessions     int     `json:"sessions"`
	Sets         int     `json:"sets"`
	WeightVolume float64 `json:"weightVolume"`
	Calories     int     `json:"calories"`
}

type NameSummary struct {
	Name               string    `json:"name"`
	Sessions           int       `json:"sessions"`
	AvgDurationMinutes int       `json:"avgDurationMinutes"`
	AvgCalories        int       `json:"avgCalories"`
	ExerciseCount      int       `json:"exerciseCount"`
	LastDate           time.Time `json:"lastDate"`
}

type ExerciseRecord struct {
	Name      string  `json:"name"`
	MaxReps   int     `json:"maxReps"`
	MaxWeight float64 `json:"maxWeight"`
}

type BestSession struct {
	Date          time.Time `json:"date"`
	RepsPerMinute float64   `json:"repsPerMinute"`
	TotalReps     int       `json:"totalReps"`
}

type PersonalRecords struct {
	RoutineName string           `json:"routineName"`
	Exercises   []ExerciseRecord `json:"exercises"`
	BestSession *BestSession     `json:"bestSession,omitempty"`
}

type CalendarDay struct {
	Date   time.Time `json:"date"`
	Active bool      `json:"active"`
}

// CurrentStreak walks distinct session calendar days backwards from
// today, counting days while each next most recent day is at most one
// day behind the running cursor.
func CurrentStreak(workouts []workout.Log, today time.Time) int {
	if len(workouts) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(workouts))
	var days []time.Time
	for _, w := range workouts {
		day := calendarDay(w.Date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	streak := 0
	cursor := calendarDay(today)
	for _, day := range days {
		diff := int(cursor.Sub(day).Hours() / 24)
		if diff < 0 || diff > 1 {
			break
		}
		streak++
		cursor = day
	}
	return streak
}

// ComputeTotals sums sessions, completed sets, weight volume and
// calories over all logged workouts. A record without an explicit
// calorie figure falls back to a reps-based estimate.
func ComputeTotals(workouts []workout.Log) Totals {
	totals := Totals{Sessions: len(workouts)}
	var calories float64
	for _, w := range workouts {
		for _, rec := range w.ExerciseRecords() {
			totals.Sets++
			totals.WeightVolume += rec.Weight * float64(rec.Reps)
			calories += recordCalories(rec)
		}
	}
	totals.Calories = int(math.Round(calories))
	return totals
}

func recordCalories(rec workout.StepRecord) float64 {
	if rec.Calories > 0 {
		return rec.Calories
	}
	return math.Round(float64(rec.Reps) * 0.5)
}

// AverageDuration is the mean session duration in minutes, 0 when no
// sessions were logged.
func AverageDuration(workouts []workout.Log) float64 {
	if len(workouts) == 0 {
		return 0
	}
	total := 0
	for _, w := range workouts {
		total += w.DurationMinutes
	}
	return float64(total) / float64(len(workouts))
}

// PerNameSummary groups sessions by resolved routine name. Averages
// are folded in incrementally, session by session in date order, the
// same way a running display would accumulate them.
func PerNameSummary(workouts []workout.Log, routines []routine.Routine) []NameSummary {
	ordered := make([]workout.Log, len(workouts))
	copy(ordered, workouts)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	byName := make(map[string]*NameSummary)
	var order []string
	for _, w := range ordered {
		name := ResolveName(w, routines)
		summary, ok := byName[name]
		if !ok {
			summary = &NameSummary{Name: name}
			byName[name] = summary
			order = append(order, name)
		}

		sessionCalories := 0.0
		for _, rec := range w.ExerciseRecords() {
			sessionCalories += recordCalories(rec)
		}

		summary.AvgDurationMinutes = foldAverage(
			summary.AvgDurationMinutes, summary.Sessions, w.DurationMinutes)
		summary.AvgCalories = foldAverage(
			summary.AvgCalories, summary.Sessions, int(math.Round(sessionCalories)))
		summary.Sessions++
		summary.ExerciseCount = w.ExerciseCount
		if w.Date.After(summary.LastDate) {
			summary.LastDate = w.Date
		}
	}

	summaries := make([]NameSummary, 0, len(order))
	for _, name := range order {
		summaries = append(summaries, *byName[name])
	}
	return summaries
}

// foldAverage folds one more value into a running average, rounding at
// every step.
func foldAverage(oldAvg, oldCount, value int) int {
	return int(math.Round(
		(float64(oldAvg)*float64(oldCount) + float64(value)) / float64(oldCount+1),
	))
}

// ResolveName maps a workout to its display name: the referenced
// routine's name when it still exists, otherwise the name recorded on
// the workout itself, with quick-start suffixes stripped. A workout
// with no resolvable name gets the placeholder.
func ResolveName(w workout.Log, routines []routine.Routine) string {
	name := ""
	for _, r := range routines {
		if r.ID == w.RoutineID {
			name = r.Name
			break
		}
	}
	if name == "" {
		name = w.Name
	}
	name = stripSuffixes(name)
	if name == "" {
		return PlaceholderName
	}
	return name
}

func stripSuffixes(name string) string {
	name = strings.TrimSuffix(name, " (Quick)")
	name = strings.TrimSuffix(name, " (Started)")
	return strings.TrimSpace(name)
}

// ComputePersonalRecords collects, over all sessions resolving to the
// given routine name, the max reps and max weight ever logged per
// exercise, plus the single best session by reps per minute. A zero
// duration session rates 0, never infinite.
func ComputePersonalRecords(workouts []workout.Log, routines []routine.Routine, routineName string) PersonalRecords {
	records := PersonalRecords{RoutineName: routineName}

	byExercise := make(map[string]*ExerciseRecord)
	var order []string
	var best *BestSession

	for _, w := range workouts {
		if ResolveName(w, routines) != routineName {
			continue
		}

		totalReps := 0
		for _, rec := range w.ExerciseRecords() {
			totalReps += rec.Reps

			exRec, ok := byExercise[rec.Name]
			if !ok {
				exRec = &ExerciseRecord{Name: rec.Name}
				byExercise[rec.Name] = exRec
				order = append(order, rec.Name)
			}
			if rec.Reps > exRec.MaxReps {
				exRec.MaxReps = rec.Reps
			}
			if rec.Weight > exRec.MaxWeight {
				exRec.MaxWeight = rec.Weight
			}
		}

		rate := 0.0
		if w.DurationMinutes > 0 {
			rate = float64(totalReps) / float64(w.DurationMinutes)
		}
		if best == nil || rate > best.RepsPerMinute {
			best = &BestSession{
				Date:          w.Date,
				RepsPerMinute: rate,
				TotalReps:     totalReps,
			}
		}
	}

	for _, name := range order {
		records.Exercises = append(records.Exercises, *byExercise[name])
	}
	records.BestSession = best
	return records
}

// ActivityCalendar reports, for each day of the trailing window ending
// today, whether at least one session was logged on that day.
func ActivityCalendar(workouts []workout.Log, today time.Time, windowDays int) []CalendarDay {
	if windowDays <= 0 {
		windowDays = DefaultCalendarWindowDays
	}

	active := make(map[time.Time]struct{}, len(workouts))
	for _, w := range workouts {
		active[calendarDay(w.Date)] = struct{}{}
	}

	end := calendarDay(today)
	days := make([]CalendarDay, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		day := end.AddDate(0, 0, -offset)
		_, ok := active[day]
		days = append(days, CalendarDay{Date: day, Active: ok})
	}
	return days
}

func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
