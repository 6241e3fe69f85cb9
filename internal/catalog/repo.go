package catalog

import (
	"context"
	"errors"
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

func (r *Repo) ListAll(ctx context.Context) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT name, category, url FROM exercise_catalog ORDER BY name;`,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog [query]: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Category, &e.URL); err != nil {
			return nil, fmt.Errorf("catalog [scan]: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("catalog.count", len(entries)))

	return entries, nil
}

func (r *Repo) Get(ctx context.Context, name string) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Entry
	err = r.db.QueryRow(
		ctx,
		`SELECT name, category, url FROM exercise_catalog WHERE name = $1;`,
		name,
	).Scan(&e.Name, &e.Category, &e.URL)
	if err != nil {
		if pkg.IsNoRowsError(err) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("catalog entry [query row]: %w", err)
	}

	return &e, nil
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise_catalog;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("catalog count: %w", err)
	}
	return count, nil
}

// ReplaceAll swaps the whole catalog for the given entries in one transaction.
func (r *Repo) ReplaceAll(ctx context.Context, entries []Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.replace_all")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("catalog.count", len(entries)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rbErr)
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM exercise_catalog;`); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}

	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{e.Name, string(e.Category), e.URL})
	}
	if _, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"exercise_catalog"},
		[]string{"name", "category", "url"},
		pgx.CopyFromRows(rows),
	); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return fmt.Errorf("insert catalog: duplicate name: %w", err)
		}
		return fmt.Errorf("insert catalog: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit catalog: %w", err)
	}
	return nil
}

// UpsertURLs sets the url of every given entry, inserting the entries that are missing.
func (r *Repo) UpsertURLs(ctx context.Context, entries []Entry) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.upsert_urls")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(
			`INSERT INTO exercise_catalog (name, category, url)
				VALUES ($1, $2, $3)
				ON CONFLICT (name) DO UPDATE SET url = EXCLUDED.url;`,
			e.Name, string(e.Category), e.URL,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer func() {
		if closeErr := results.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	updated := 0
	for range entries {
		tag, err := results.Exec()
		if err != nil {
			return updated, fmt.Errorf("upsert url: %w", err)
		}
		updated += int(tag.RowsAffected())
	}

	return updated, nil
}
