package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrGoalsNotSet = errors.New("no active nutrition goals")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetActive returns the single active goals record,
// or ErrGoalsNotSet when none was ever saved.
func (r *Repo) GetActive(ctx context.Context) (_ *NutritionGoals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.getactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT daily_calorie_goal, protein_goal, fat_goal, carbs_goal, fiber_goal, activity_level, updated_at
			FROM nutrition_goals WHERE id = 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrGoalsNotSet
	}

	var g NutritionGoals
	if err := rows.Scan(
		&g.DailyCalorieGoal, &g.ProteinGoal, &g.FatGoal, &g.CarbsGoal,
		&g.FiberGoal, &g.ActivityLevel, &g.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	return &g, nil
}

// SetActive replaces the whole active goals record (no partial updates).
func (r *Repo) SetActive(ctx context.Context, g NutritionGoals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.setactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_goals
				(id, daily_calorie_goal, protein_goal, fat_goal, carbs_goal, fiber_goal, activity_level, updated_at)
				VALUES (1, $1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				daily_calorie_goal = EXCLUDED.daily_calorie_goal,
				protein_goal = EXCLUDED.protein_goal,
				fat_goal = EXCLUDED.fat_goal,
				carbs_goal = EXCLUDED.carbs_goal,
				fiber_goal = EXCLUDED.fiber_goal,
				activity_level = EXCLUDED.activity_level,
				updated_at = EXCLUDED.updated_at;`,
		g.DailyCalorieGoal, g.ProteinGoal, g.FatGoal, g.CarbsGoal,
		g.FiberGoal, g.ActivityLevel, g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert goals: %w", err)
	}

	return nil
}
