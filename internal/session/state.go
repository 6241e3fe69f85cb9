package session

import (
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/history"
	"github.com/2beens/gymtracker/internal/plans"

	"github.com/google/uuid"
)

type Status int

const (
	StatusUninitialized Status = iota
	StatusActive
	StatusFinalized
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinalized:
		return "finalized"
	default:
		return "uninitialized"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "uninitialized":
		*s = StatusUninitialized
	case "active":
		*s = StatusActive
	case "finalized":
		*s = StatusFinalized
	default:
		return fmt.Errorf("unknown session status %q", text)
	}
	return nil
}

type Direction string

const (
	DirectionPrevious Direction = "previous"
	DirectionNext     Direction = "next"
)

type Field string

const (
	FieldWeight Field = "weight"
	FieldReps   Field = "reps"
)

// State is a single workout in progress. It is owned by one caller and is not safe for concurrent use.
// The zero State is uninitialized and rejects every operation.
type State struct {
	status    Status
	plan      *plans.Plan
	exercises []history.ExerciseRecord
	// previous[i] is the same-named exercise from the matched prior workout, nil if none
	previous  []*history.ExerciseRecord
	current   int
	startedAt time.Time
}

// Initialize builds an active session for the plan, seeding every set from the most recent
// workout of a plan with the same name. userHistory must be in chronological order.
func Initialize(plan *plans.Plan, userHistory []history.Record, now time.Time) *State {
	s := &State{
		status:    StatusActive,
		startedAt: now,
	}
	if plan == nil {
		return s
	}

	planCopy := *plan
	planCopy.Exercises = append([]plans.Exercise(nil), plan.Exercises...)
	s.plan = &planCopy

	prior := mostRecentByPlanName(userHistory, plan.Name)

	s.exercises = make([]history.ExerciseRecord, 0, len(plan.Exercises))
	s.previous = make([]*history.ExerciseRecord, 0, len(plan.Exercises))
	for _, planned := range plan.Exercises {
		var priorExercise *history.ExerciseRecord
		if prior != nil {
			if ex, ok := prior.Exercise(planned.Name); ok {
				cloned := ex.Clone()
				priorExercise = &cloned
			}
		}

		sets := make([]history.SetRecord, planned.Sets)
		for i := range sets {
			if priorExercise != nil && i < len(priorExercise.Sets) {
				sets[i] = history.SetRecord{
					Weight: priorExercise.Sets[i].Weight,
					Reps:   priorExercise.Sets[i].Reps,
				}
			} else {
				sets[i] = history.SetRecord{
					Weight: 0,
					Reps:   planned.Reps,
				}
			}
		}

		s.exercises = append(s.exercises, history.ExerciseRecord{
			Name: planned.Name,
			Sets: sets,
		})
		s.previous = append(s.previous, priorExercise)
	}

	return s
}

func mostRecentByPlanName(userHistory []history.Record, planName string) *history.Record {
	for i := len(userHistory) - 1; i >= 0; i-- {
		if userHistory[i].PlanName == planName {
			return &userHistory[i]
		}
	}
	return nil
}

func (s *State) ensureActive() error {
	if s.status != StatusActive {
		return fmt.Errorf("%w: session is %s", ErrInvalidState, s.status)
	}
	return nil
}

func (s *State) Navigate(direction Direction) error {
	if err := s.ensureActive(); err != nil {
		return err
	}

	switch direction {
	case DirectionPrevious:
		if s.current > 0 {
			s.current--
		}
	case DirectionNext:
		if s.current < len(s.exercises)-1 {
			s.current++
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirection, direction)
	}
	return nil
}

func (s *State) setAt(exerciseIndex, setIndex int) (*history.SetRecord, error) {
	if exerciseIndex < 0 || exerciseIndex >= len(s.exercises) {
		return nil, fmt.Errorf("%w: exercise %d", ErrIndexOutOfRange, exerciseIndex)
	}
	sets := s.exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return nil, fmt.Errorf("%w: exercise %d set %d", ErrIndexOutOfRange, exerciseIndex, setIndex)
	}
	return &sets[setIndex], nil
}

// UpdateSet replaces one field of a set. Values are not range checked; reps are truncated to an int.
func (s *State) UpdateSet(exerciseIndex, setIndex int, field Field, value float64) error {
	if err := s.ensureActive(); err != nil {
		return err
	}
	if field != FieldWeight && field != FieldReps {
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	set, err := s.setAt(exerciseIndex, setIndex)
	if err != nil {
		return err
	}

	if field == FieldWeight {
		set.Weight = value
	} else {
		set.Reps = int(value)
	}
	return nil
}

func (s *State) ToggleSetComplete(exerciseIndex, setIndex int) error {
	if err := s.ensureActive(); err != nil {
		return err
	}

	set, err := s.setAt(exerciseIndex, setIndex)
	if err != nil {
		return err
	}
	set.Completed = !set.Completed
	return nil
}

func (s *State) buildRecord(now time.Time) (history.Record, error) {
	if err := s.ensureActive(); err != nil {
		return history.Record{}, err
	}
	if s.plan == nil {
		return history.Record{}, ErrMissingPlan
	}

	return history.Record{
		ID:              uuid.NewString(),
		Date:            now,
		PlanName:        s.plan.Name,
		DurationMinutes: durationMinutes(s.startedAt, now),
		Exercises:       history.CloneExercises(s.exercises),
	}, nil
}

// Finalize produces the history record of the workout and ends the session.
// The session performs no storage; see FinalizeWith.
func (s *State) Finalize(now time.Time) (history.Record, error) {
	record, err := s.buildRecord(now)
	if err != nil {
		return history.Record{}, err
	}
	s.status = StatusFinalized
	return record, nil
}

// FinalizeWith hands the record to appendFn and ends the session only if appendFn succeeds.
// On failure the session stays active so the user can retry.
func (s *State) FinalizeWith(now time.Time, appendFn func(record history.Record) error) (history.Record, error) {
	record, err := s.buildRecord(now)
	if err != nil {
		return history.Record{}, err
	}
	if err := appendFn(record); err != nil {
		return history.Record{}, &CollaboratorError{Op: "append history", Err: err}
	}
	s.status = StatusFinalized
	return record, nil
}

func durationMinutes(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

func (s *State) Status() Status {
	return s.status
}

func (s *State) CurrentIndex() int {
	return s.current
}

func (s *State) StartedAt() time.Time {
	return s.startedAt
}

func (s *State) Elapsed(now time.Time) time.Duration {
	if s.status == StatusUninitialized {
		return 0
	}
	return now.Sub(s.startedAt)
}

// Plan returns the plan the session was started from, nil if none.
func (s *State) Plan() *plans.Plan {
	return s.plan
}

// Exercises returns a copy of the logged exercises.
func (s *State) Exercises() []history.ExerciseRecord {
	return history.CloneExercises(s.exercises)
}

// Previous returns the prior result for exercise i, if the matched workout had that exercise.
func (s *State) Previous(i int) (history.ExerciseRecord, bool) {
	if i < 0 || i >= len(s.previous) || s.previous[i] == nil {
		return history.ExerciseRecord{}, false
	}
	return s.previous[i].Clone(), true
}
