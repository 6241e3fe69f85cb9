package reports

import (
	"time"

	"github.com/2beens/gymtracker/internal/history"
)

// ComputeVolume sums weight*reps over completed sets. Sets not marked completed never count.
func ComputeVolume(exercises []history.ExerciseRecord) float64 {
	volume := 0.0
	for _, ex := range exercises {
		volume += exerciseVolume(ex)
	}
	return volume
}

func exerciseVolume(ex history.ExerciseRecord) float64 {
	volume := 0.0
	for _, set := range ex.Sets {
		if set.Completed {
			volume += set.Weight * float64(set.Reps)
		}
	}
	return volume
}

type SeriesPoint struct {
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	Volume          float64   `json:"volume"`
}

// SeriesForCharting maps the last windowSize records (chronological input) to chart points, oldest first.
func SeriesForCharting(records []history.Record, windowSize int) []SeriesPoint {
	if windowSize <= 0 || len(records) == 0 {
		return []SeriesPoint{}
	}

	start := len(records) - windowSize
	if start < 0 {
		start = 0
	}

	points := make([]SeriesPoint, 0, len(records)-start)
	for _, r := range records[start:] {
		points = append(points, SeriesPoint{
			Date:            r.Date,
			DurationMinutes: r.DurationMinutes,
			Volume:          ComputeVolume(r.Exercises),
		})
	}
	return points
}
