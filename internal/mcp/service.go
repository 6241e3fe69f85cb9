package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/gymtracker/internal/catalog"
	"github.com/2beens/gymtracker/internal/plans"
	"github.com/2beens/gymtracker/internal/reports"
)

var ErrNoUser = errors.New("no user in context")

type plansLister interface {
	List(ctx context.Context, userID string) ([]plans.Plan, error)
}

type catalogLister interface {
	List(ctx context.Context, params catalog.ListParams) ([]catalog.Entry, error)
}

type reportsAnalyzer interface {
	Series(ctx context.Context, userID string, windowSize int) ([]reports.SeriesPoint, error)
	Summary(ctx context.Context, userID string) (*reports.Summary, error)
	History(ctx context.Context, userID string) ([]reports.HistoryEntry, error)
	ExerciseProgress(ctx context.Context, userID, exerciseName string) ([]reports.ExerciseProgressPoint, error)
}

// contextService is what the tool handlers read from.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]reports.HistoryEntry, error)
	GetVolumeSeries(ctx context.Context, userID string, window int) ([]reports.SeriesPoint, error)
	GetSummary(ctx context.Context, userID string) (*reports.Summary, error)
	GetExerciseProgress(ctx context.Context, userID, exerciseName string) ([]reports.ExerciseProgressPoint, error)
	GetExerciseCatalog(ctx context.Context, params catalog.ListParams) ([]catalog.Entry, error)
	GetPlans(ctx context.Context, userID string) ([]plans.Plan, error)
}

// ContextService implements the read-only gymtracker context for MCP clients.
type ContextService struct {
	schema   SchemaRepo
	plans    plansLister
	catalog  catalogLister
	analyzer reportsAnalyzer
}

func NewContextService(
	schemaRepo SchemaRepo,
	plansRepo plansLister,
	catalogRepo catalogLister,
	analyzer reportsAnalyzer,
) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		plans:    plansRepo,
		catalog:  catalogRepo,
		analyzer: analyzer,
	}
}

// GetSchema returns the gymtracker tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Gymtracker DB Schema\n\nNo gymtracker tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Gymtracker DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(gymtrackerTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// GetHistory returns the newest limit workouts with their volume; limit <= 0 returns all.
func (s *ContextService) GetHistory(ctx context.Context, userID string, limit int) ([]reports.HistoryEntry, error) {
	entries, err := s.analyzer.History(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *ContextService) GetVolumeSeries(ctx context.Context, userID string, window int) ([]reports.SeriesPoint, error) {
	return s.analyzer.Series(ctx, userID, window)
}

func (s *ContextService) GetSummary(ctx context.Context, userID string) (*reports.Summary, error) {
	return s.analyzer.Summary(ctx, userID)
}

func (s *ContextService) GetExerciseProgress(ctx context.Context, userID, exerciseName string) ([]reports.ExerciseProgressPoint, error) {
	return s.analyzer.ExerciseProgress(ctx, userID, exerciseName)
}

func (s *ContextService) GetExerciseCatalog(ctx context.Context, params catalog.ListParams) ([]catalog.Entry, error) {
	return s.catalog.List(ctx, params)
}

func (s *ContextService) GetPlans(ctx context.Context, userID string) ([]plans.Plan, error) {
	return s.plans.List(ctx, userID)
}
