package reports

import (
	"sort"
	"time"

	"github.com/2beens/gymtracker/internal/history"
)

type HistoryEntry struct {
	history.Record
	Volume        float64 `json:"volume"`
	CompletedSets int     `json:"completedSets"`
	TotalSets     int     `json:"totalSets"`
}

func newHistoryEntry(r history.Record) HistoryEntry {
	entry := HistoryEntry{
		Record: r,
		Volume: ComputeVolume(r.Exercises),
	}
	for _, ex := range r.Exercises {
		entry.TotalSets += len(ex.Sets)
		for _, set := range ex.Sets {
			if set.Completed {
				entry.CompletedSets++
			}
		}
	}
	return entry
}

// NewestFirst reverses the chronological history and annotates every workout with its volume.
func NewestFirst(records []history.Record) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		entries = append(entries, newHistoryEntry(records[i]))
	}
	return entries
}

type WorkoutDay struct {
	Day       int      `json:"day"`
	Count     int      `json:"count"`
	PlanNames []string `json:"planNames"`
}

// WorkoutDays lists the days of the month that have at least one workout, in the given location.
func WorkoutDays(records []history.Record, year int, month time.Month, loc *time.Location) []WorkoutDay {
	if loc == nil {
		loc = time.UTC
	}

	byDay := map[int]*WorkoutDay{}
	for _, r := range records {
		date := r.Date.In(loc)
		if date.Year() != year || date.Month() != month {
			continue
		}
		wd, ok := byDay[date.Day()]
		if !ok {
			wd = &WorkoutDay{Day: date.Day()}
			byDay[date.Day()] = wd
		}
		wd.Count++
		wd.PlanNames = append(wd.PlanNames, r.PlanName)
	}

	days := make([]WorkoutDay, 0, len(byDay))
	for _, wd := range byDay {
		days = append(days, *wd)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day < days[j].Day
	})
	return days
}

type Summary struct {
	TotalWorkouts  int           `json:"totalWorkouts"`
	TotalMinutes   int           `json:"totalMinutes"`
	AverageMinutes float64       `json:"averageMinutes"`
	TotalVolume    float64       `json:"totalVolume"`
	WorkoutsLast7D int           `json:"workoutsLast7Days"`
	LastWorkout    *HistoryEntry `json:"lastWorkout,omitempty"`
	MostUsedPlan   string        `json:"mostUsedPlan,omitempty"`
}

func Summarize(records []history.Record, now time.Time) Summary {
	summary := Summary{
		TotalWorkouts: len(records),
	}
	if len(records) == 0 {
		return summary
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	planCounts := map[string]int{}
	for _, r := range records {
		summary.TotalMinutes += r.DurationMinutes
		summary.TotalVolume += ComputeVolume(r.Exercises)
		if r.Date.After(weekAgo) && !r.Date.After(now) {
			summary.WorkoutsLast7D++
		}
		planCounts[r.PlanName]++
	}
	summary.AverageMinutes = float64(summary.TotalMinutes) / float64(len(records))

	last := newHistoryEntry(records[len(records)-1])
	summary.LastWorkout = &last

	// ties go to the plan used most recently
	bestCount := 0
	for i := len(records) - 1; i >= 0; i-- {
		name := records[i].PlanName
		if planCounts[name] > bestCount {
			bestCount = planCounts[name]
			summary.MostUsedPlan = name
		}
	}

	return summary
}

type ExerciseProgressPoint struct {
	Date          time.Time `json:"date"`
	PlanName      string    `json:"planName"`
	MaxWeight     float64   `json:"maxWeight"`
	CompletedReps int       `json:"completedReps"`
	CompletedSets int       `json:"completedSets"`
	Volume        float64   `json:"volume"`
}

// ExerciseProgress follows one exercise across all workouts, oldest first. Only completed sets count.
func ExerciseProgress(records []history.Record, exerciseName string) []ExerciseProgressPoint {
	points := []ExerciseProgressPoint{}
	for _, r := range records {
		for _, ex := range r.Exercises {
			if ex.Name != exerciseName {
				continue
			}
			point := ExerciseProgressPoint{
				Date:     r.Date,
				PlanName: r.PlanName,
				Volume:   exerciseVolume(ex),
			}
			for _, set := range ex.Sets {
				if !set.Completed {
					continue
				}
				point.CompletedSets++
				point.CompletedReps += set.Reps
				if set.Weight > point.MaxWeight {
					point.MaxWeight = set.Weight
				}
			}
			points = append(points, point)
		}
	}
	return points
}
