package plans

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
	"github.com/2beens/gymtracker/pkg"

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

func (r *Repo) Add(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID))

	exercisesJson, err := json.Marshal(plan.Exercises)
	if err != nil {
		return nil, fmt.Errorf("marshal exercises: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO plans (id, user_id, name, exercises, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		plan.ID, plan.UserID, plan.Name, exercisesJson, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	return &plan, nil
}

func (r *Repo) Get(ctx context.Context, userID, planID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, exercises, created_at, updated_at
			FROM plans
			WHERE user_id = $1 AND id = $2;`,
		userID, planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}

	return &plans[0], nil
}

// List returns all plans of a user, oldest first.
func (r *Repo) List(ctx context.Context, userID string) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, exercises, created_at, updated_at
			FROM plans
			WHERE user_id = $1
			ORDER BY created_at, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2plans(rows)
}

// Update replaces the name and the whole exercise list of an existing plan.
func (r *Repo) Update(ctx context.Context, plan Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", plan.ID))

	exercisesJson, err := json.Marshal(plan.Exercises)
	if err != nil {
		return fmt.Errorf("marshal exercises: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE plans SET name = $1, exercises = $2, updated_at = $3 WHERE user_id = $4 AND id = $5;`,
		plan.Name, exercisesJson, plan.UpdatedAt, plan.UserID, plan.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, planID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM plans WHERE user_id = $1 AND id = $2;`,
		userID, planID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]Plan, error) {
	var plans []Plan
	for rows.Next() {
		var p Plan
		var exercisesJson []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &exercisesJson, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(exercisesJson, &p.Exercises); err != nil {
			return nil, fmt.Errorf("unmarshal plan %s exercises: %w", p.ID, err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

// IsUserMissing reports whether an insert failed because the owning user does not exist.
func IsUserMissing(err error) bool {
	return pkg.IsForeignKeyViolationError(err)
}
