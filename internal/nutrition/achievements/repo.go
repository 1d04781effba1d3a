package achievements

import (
	"context"
	"fmt"

	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"

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

func (r *Repo) GetUnlocked(ctx context.Context) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.getunlocked")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT achievement_id, title, description, icon, category, points, unlocked_at
			FROM achievement ORDER BY unlocked_at ASC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	unlocked := make([]Achievement, 0)
	for rows.Next() {
		a := Achievement{IsUnlocked: true}
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Icon, &a.Category, &a.Points, &a.UnlockedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		unlocked = append(unlocked, a)
	}

	return unlocked, nil
}

// PersistNewlyUnlocked stores freshly unlocked achievements. An id already
// stored is left untouched, so unlocks stay monotonic even when two
// evaluations race.
func (r *Repo) PersistNewlyUnlocked(ctx context.Context, newlyUnlocked []Achievement) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.persist")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("count", len(newlyUnlocked)))

	for _, a := range newlyUnlocked {
		_, err := r.db.Exec(
			ctx,
			`INSERT INTO achievement
					(achievement_id, title, description, icon, category, points, unlocked_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (achievement_id) DO NOTHING;`,
			a.ID, a.Title, a.Description, a.Icon, a.Category, a.Points, a.UnlockedAt,
		)
		if err != nil {
			return fmt.Errorf("insert achievement %s: %w", a.ID, err)
		}
	}

	return nil
}
