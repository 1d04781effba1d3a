package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRecordNotFound = errors.New("analysis record not found")

type RecordParams struct {
	From *time.Time
	To   *time.Time
}

type ListParams struct {
	RecordParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the record. A record with an already known ID overwrites
// the stored one instead of creating a duplicate.
func (r *Repo) Add(ctx context.Context, record AnalysisRecord) (_ *AnalysisRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("record.id", record.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO meal_analysis
				(id, item_name, calories, protein, fat, carbs, health_score, coach_comment, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE SET
				item_name = EXCLUDED.item_name,
				calories = EXCLUDED.calories,
				protein = EXCLUDED.protein,
				fat = EXCLUDED.fat,
				carbs = EXCLUDED.carbs,
				health_score = EXCLUDED.health_score,
				coach_comment = EXCLUDED.coach_comment,
				created_at = EXCLUDED.created_at;`,
		record.ID, record.ItemName, record.Calories, record.Protein, record.Fat,
		record.Carbs, record.HealthScore, record.CoachComment, record.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	return &record, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *AnalysisRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("record.id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, item_name, calories, protein, fat, carbs, health_score, coach_comment, created_at
			FROM meal_analysis WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	recs, err := r.rows2records(rows)
	if err != nil {
		return nil, err
	}

	if len(recs) != 1 {
		return nil, ErrRecordNotFound
	}

	return &recs[0], nil
}

// ListAll returns all records, optionally narrowed to a time window,
// newest first.
func (r *Repo) ListAll(ctx context.Context, params RecordParams) (_ []AnalysisRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, item_name, calories, protein, fat, carbs, health_score, coach_comment, created_at
			FROM meal_analysis
			WHERE ($1::timestamp IS NULL OR created_at >= $1)
			AND ($2::timestamp IS NULL OR created_at <= $2)
			ORDER BY created_at DESC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	recs, err := r.rows2records(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2records: %w", err)
	}
	return recs, nil
}

// ListForDay returns all records whose timestamp falls on the given calendar day.
func (r *Repo) ListForDay(ctx context.Context, day time.Time) ([]AnalysisRecord, error) {
	dayStart := day.Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)
	return r.ListAll(ctx, RecordParams{From: &dayStart, To: &dayEnd})
}

// List is like ListAll, but returns the specific PAGE of records,
// i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []AnalysisRecord, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.Count(ctx, params.RecordParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, item_name, calories, protein, fat, carbs, health_score, coach_comment, created_at
			FROM meal_analysis
			WHERE ($1::timestamp IS NULL OR created_at >= $1)
			AND ($2::timestamp IS NULL OR created_at <= $2)
			ORDER BY created_at DESC
			LIMIT $3
			OFFSET $4;`,
		params.From, params.To, limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	recs, err := r.rows2records(rows)
	if err != nil {
		return nil, -1, err
	}
	return recs, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params RecordParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM meal_analysis
			WHERE ($1::timestamp IS NULL OR created_at >= $1)
			AND ($2::timestamp IS NULL OR created_at <= $2);`,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get records count")
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("record.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM meal_analysis WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *Repo) rows2records(rows pgx.Rows) ([]AnalysisRecord, error) {
	var recs []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		if err := rows.Scan(
			&rec.ID, &rec.ItemName, &rec.Calories, &rec.Protein, &rec.Fat,
			&rec.Carbs, &rec.HealthScore, &rec.CoachComment, &rec.Timestamp,
		); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if recs == nil {
		recs = make([]AnalysisRecord, 0)
	}

	return recs, nil
}
