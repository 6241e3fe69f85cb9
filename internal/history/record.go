package history

import (
	"errors"
	"time"
)

var ErrRecordNotFound = errors.New("history record not found")

type SetRecord struct {
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

// ExerciseRecord holds the logged sets of one exercise; the set count is fixed when the session starts.
type ExerciseRecord struct {
	Name string      `json:"name"`
	Sets []SetRecord `json:"sets"`
}

// Record is one finished workout. It keeps a copy of the plan name, never the plan id.
type Record struct {
	ID              string           `json:"id"`
	Date            time.Time        `json:"date"`
	PlanName        string           `json:"planName"`
	DurationMinutes int              `json:"durationMinutes"`
	Exercises       []ExerciseRecord `json:"exercises"`
}

// Exercise returns the first exercise with the given name.
func (r *Record) Exercise(name string) (*ExerciseRecord, bool) {
	for i := range r.Exercises {
		if r.Exercises[i].Name == name {
			return &r.Exercises[i], true
		}
	}
	return nil, false
}

func (e ExerciseRecord) Clone() ExerciseRecord {
	sets := make([]SetRecord, len(e.Sets))
	copy(sets, e.Sets)
	return ExerciseRecord{
		Name: e.Name,
		Sets: sets,
	}
}

func CloneExercises(exercises []ExerciseRecord) []ExerciseRecord {
	if exercises == nil {
		return nil
	}
	cloned := make([]ExerciseRecord, len(exercises))
	for i := range exercises {
		cloned[i] = exercises[i].Clone()
	}
	return cloned
}
