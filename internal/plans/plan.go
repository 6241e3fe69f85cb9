package plans

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrInvalidPlan  = errors.New("invalid plan")
)

const (
	DefaultSets = 3
	DefaultReps = 10
)

// Exercise is a single planned exercise with its set/rep targets.
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

type Plan struct {
	ID        string     `json:"id"`
	UserID    string     `json:"-"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Normalize trims names and fills in the default targets for unset (zero) sets and reps.
func (p *Plan) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	for i := range p.Exercises {
		ex := &p.Exercises[i]
		ex.Name = strings.TrimSpace(ex.Name)
		if ex.Sets == 0 {
			ex.Sets = DefaultSets
		}
		if ex.Reps == 0 {
			ex.Reps = DefaultReps
		}
	}
}

func (p *Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: plan name empty", ErrInvalidPlan)
	}
	if len(p.Exercises) == 0 {
		return fmt.Errorf("%w: plan has no exercises", ErrInvalidPlan)
	}
	for i, ex := range p.Exercises {
		if ex.Name == "" {
			return fmt.Errorf("%w: exercise %d has no name", ErrInvalidPlan, i)
		}
		if ex.Sets <= 0 || ex.Reps <= 0 {
			return fmt.Errorf("%w: exercise %q sets and reps must be positive", ErrInvalidPlan, ex.Name)
		}
	}
	return nil
}
