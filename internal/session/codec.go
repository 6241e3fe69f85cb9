package session

import (
	"encoding/json"
	"time"

	"github.com/2beens/gymtracker/internal/history"
	"github.com/2beens/gymtracker/internal/plans"
)

type stateJSON struct {
	Status    Status                    `json:"status"`
	Plan      *plans.Plan               `json:"plan,omitempty"`
	Exercises []history.ExerciseRecord  `json:"exercises"`
	Previous  []*history.ExerciseRecord `json:"previous"`
	Current   int                       `json:"current"`
	StartedAt time.Time                 `json:"startedAt"`
}

func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Status:    s.status,
		Plan:      s.plan,
		Exercises: s.exercises,
		Previous:  s.previous,
		Current:   s.current,
		StartedAt: s.startedAt,
	})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var sj stateJSON
	if err := json.Unmarshal(data, &sj); err != nil {
		return err
	}

	s.status = sj.Status
	s.plan = sj.Plan
	s.exercises = sj.Exercises
	s.previous = sj.Previous
	s.current = sj.Current
	s.startedAt = sj.StartedAt
	return nil
}
