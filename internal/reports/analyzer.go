package reports

import (
	"context"
	"time"

	"github.com/2beens/gymtracker/internal/history"
	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=reports_test

type historyLister interface {
	List(ctx context.Context, userID string) ([]history.Record, error)
}

// Analyzer computes the reports of a single user from the history store.
type Analyzer struct {
	history historyLister
	NowFunc func() time.Time
}

func NewAnalyzer(history historyLister) *Analyzer {
	return &Analyzer{
		history: history,
		NowFunc: time.Now,
	}
}

func (a *Analyzer) Series(ctx context.Context, userID string, windowSize int) (_ []SeriesPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.reports.series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("window", windowSize))

	records, err := a.history.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SeriesForCharting(records, windowSize), nil
}

func (a *Analyzer) Summary(ctx context.Context, userID string) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.reports.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := a.history.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(records, a.NowFunc())
	return &summary, nil
}

func (a *Analyzer) History(ctx context.Context, userID string) (_ []HistoryEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.reports.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := a.history.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return NewestFirst(records), nil
}

func (a *Analyzer) Calendar(ctx context.Context, userID string, year int, month time.Month, loc *time.Location) (_ []WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.reports.calendar")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("year", year), attribute.Int("month", int(month)))

	records, err := a.history.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return WorkoutDays(records, year, month, loc), nil
}

func (a *Analyzer) ExerciseProgress(ctx context.Context, userID, exerciseName string) (_ []ExerciseProgressPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.reports.exercise_progress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exerciseName))

	records, err := a.history.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ExerciseProgress(records, exerciseName), nil
}
