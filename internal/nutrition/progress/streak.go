package progress

import (
	"context"
	"time"
)

// MaxStreakDays bounds the backward scan, so very old accounts
// do not cause unbounded day-by-day walks.
const MaxStreakDays = 365

// CurrentStreak counts consecutive days with activity, scanning backward
// starting at the reference date itself. A reference day without activity
// yields 0 no matter what happened before it.
func CurrentStreak(
	ctx context.Context,
	hasActivity func(ctx context.Context, day time.Time) (bool, error),
	from time.Time,
) (int, error) {
	day := from.Truncate(24 * time.Hour)

	streak := 0
	for streak < MaxStreakDays {
		active, err := hasActivity(ctx, day)
		if err != nil {
			return 0, err
		}
		if !active {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak, nil
}
