package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Append stores a finished workout for the user. It is a single insert and is never retried here.
func (r *Repo) Append(ctx context.Context, userID string, record Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("history.id", record.ID))

	exercisesJson, err := json.Marshal(record.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO history (id, user_id, date, plan_name, duration_minutes, exercises)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		record.ID, userID, record.Date, record.PlanName, record.DurationMinutes, exercisesJson,
	)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}

	return nil
}

// List returns the user's history in append order, oldest first.
func (r *Repo) List(ctx context.Context, userID string) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, plan_name, duration_minutes, exercises
			FROM history
			WHERE user_id = $1
			ORDER BY seq ASC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("history.count", len(records)))

	return records, nil
}

func (r *Repo) Get(ctx context.Context, userID, recordID string) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.history.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("history.id", recordID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, date, plan_name, duration_minutes, exercises
			FROM history
			WHERE user_id = $1 AND id = $2;`,
		userID, recordID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, ErrRecordNotFound
	}

	return &records[0], nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]Record, error) {
	var records []Record
	for rows.Next() {
		var record Record
		var exercisesJson []byte
		if err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.PlanName,
			&record.DurationMinutes,
			&exercisesJson,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(exercisesJson, &record.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal exercises of %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
