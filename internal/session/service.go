package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymtracker/internal/history"
	"github.com/2beens/gymtracker/internal/plans"
	"github.com/2beens/gymtracker/internal/telemetry/metrics"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=session_test

type plansGetter interface {
	Get(ctx context.Context, userID, planID string) (*plans.Plan, error)
}

type historyStore interface {
	List(ctx context.Context, userID string) ([]history.Record, error)
	Append(ctx context.Context, userID string, record history.Record) error
}

type activeStore interface {
	Load(ctx context.Context, userID string) (*State, error)
	Save(ctx context.Context, userID string, state *State) error
	Delete(ctx context.Context, userID string) error
}

type FinishResult struct {
	Record history.Record `json:"record"`
	// History is the refreshed history after the append; nil when the refresh failed.
	History []history.Record `json:"history,omitempty"`
}

// Service runs one active workout per user on top of the plan, history and active session stores.
type Service struct {
	plans          plansGetter
	history        historyStore
	store          activeStore
	metricsManager *metrics.Manager
	NowFunc        func() time.Time
}

func NewService(
	plans plansGetter,
	history historyStore,
	store activeStore,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		plans:          plans,
		history:        history,
		store:          store,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

// Start begins a workout of the given plan, replacing any active one.
func (s *Service) Start(ctx context.Context, userID, planID string) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	plan, err := s.plans.Get(ctx, userID, planID)
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			return nil, err
		}
		return nil, &CollaboratorError{Op: "find plan", Err: err}
	}

	userHistory, err := s.history.List(ctx, userID)
	if err != nil {
		return nil, &CollaboratorError{Op: "list history", Err: err}
	}

	state := Initialize(plan, userHistory, s.NowFunc())
	if err := s.store.Save(ctx, userID, state); err != nil {
		return nil, fmt.Errorf("save active session: %w", err)
	}

	s.metricsManager.CounterSessionsStarted.Inc()
	log.Debugf("user %s started workout [%s] with %d exercises", userID, plan.Name, len(plan.Exercises))
	return state, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*State, error) {
	return s.store.Load(ctx, userID)
}

func (s *Service) Navigate(ctx context.Context, userID string, direction Direction) (*State, error) {
	return s.apply(ctx, userID, "service.session.navigate", func(state *State) error {
		return state.Navigate(direction)
	})
}

func (s *Service) UpdateSet(ctx context.Context, userID string, exerciseIndex, setIndex int, field Field, value float64) (*State, error) {
	return s.apply(ctx, userID, "service.session.update_set", func(state *State) error {
		return state.UpdateSet(exerciseIndex, setIndex, field, value)
	})
}

func (s *Service) ToggleSetComplete(ctx context.Context, userID string, exerciseIndex, setIndex int) (*State, error) {
	return s.apply(ctx, userID, "service.session.toggle_set", func(state *State) error {
		return state.ToggleSetComplete(exerciseIndex, setIndex)
	})
}

func (s *Service) apply(ctx context.Context, userID, spanName string, mutate func(state *State) error) (_ *State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := mutate(state); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, userID, state); err != nil {
		return nil, fmt.Errorf("save active session: %w", err)
	}
	return state, nil
}

// Finish saves the workout to history. If the append fails the active workout is kept as it was.
// The history refresh that follows a successful append is best effort.
func (s *Service) Finish(ctx context.Context, userID string) (_ *FinishResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	record, err := state.FinalizeWith(s.NowFunc(), func(record history.Record) error {
		return s.history.Append(ctx, userID, record)
	})
	if err != nil {
		var collaboratorErr *CollaboratorError
		if errors.As(err, &collaboratorErr) {
			s.metricsManager.CounterFinishFailures.Inc()
		}
		return nil, err
	}

	s.metricsManager.CounterHistoryAppended.Inc()
	s.metricsManager.CounterSessionsFinished.Inc()
	s.metricsManager.HistogramSessionMinutes.Observe(float64(record.DurationMinutes))
	span.SetAttributes(attribute.String("history.id", record.ID))

	if err := s.store.Delete(ctx, userID); err != nil && !errors.Is(err, ErrNoActiveSession) {
		log.Errorf("finish: workout %s saved, but failed to delete active session of user %s: %s", record.ID, userID, err)
		// the stored copy must not stay active, or the next finish appends the same workout again
		if saveErr := s.store.Save(ctx, userID, state); saveErr != nil {
			log.Errorf("finish: failed to store finalized session of user %s: %s", userID, saveErr)
		}
	}

	result := &FinishResult{
		Record: record,
	}
	refreshed, err := s.history.List(ctx, userID)
	if err != nil {
		log.Errorf("finish: workout %s saved, history refresh failed: %s", record.ID, err)
		return result, nil
	}
	result.History = refreshed

	return result, nil
}

// Cancel drops the active workout without writing history.
func (s *Service) Cancel(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.session.cancel")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := s.store.Delete(ctx, userID); err != nil {
		return err
	}
	s.metricsManager.CounterSessionsCancelled.Inc()
	return nil
}
