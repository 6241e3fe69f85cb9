package session

import (
	"time"

	"github.com/2beens/gymtracker/internal/history"
)

type ExerciseView struct {
	Name       string              `json:"name"`
	TargetSets int                 `json:"targetSets"`
	TargetReps int                 `json:"targetReps"`
	Sets       []history.SetRecord `json:"sets"`
	// Previous is the result of the same exercise in the last workout of this plan.
	Previous *history.ExerciseRecord `json:"previous,omitempty"`
}

// View is what the client renders for an active workout.
type View struct {
	Status         Status         `json:"status"`
	PlanID         string         `json:"planId,omitempty"`
	PlanName       string         `json:"planName,omitempty"`
	StartedAt      time.Time      `json:"startedAt"`
	ElapsedSeconds int64          `json:"elapsedSeconds"`
	CurrentIndex   int            `json:"currentIndex"`
	Exercises      []ExerciseView `json:"exercises"`
}

func NewView(s *State, now time.Time) View {
	v := View{
		Status:         s.Status(),
		StartedAt:      s.StartedAt(),
		ElapsedSeconds: int64(s.Elapsed(now) / time.Second),
		CurrentIndex:   s.CurrentIndex(),
		Exercises:      []ExerciseView{},
	}
	plan := s.Plan()
	if plan != nil {
		v.PlanID = plan.ID
		v.PlanName = plan.Name
	}

	for i, ex := range s.Exercises() {
		ev := ExerciseView{
			Name: ex.Name,
			Sets: ex.Sets,
		}
		if plan != nil && i < len(plan.Exercises) {
			ev.TargetSets = plan.Exercises[i].Sets
			ev.TargetReps = plan.Exercises[i].Reps
		}
		if prev, ok := s.Previous(i); ok {
			ev.Previous = &prev
		}
		v.Exercises = append(v.Exercises, ev)
	}

	return v
}
