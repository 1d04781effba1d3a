package progress

import (
	"context"
	"errors"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/goals"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/records"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=progress_test

type recordsSource interface {
	ListForDay(ctx context.Context, day time.Time) ([]records.AnalysisRecord, error)
}

type goalsSource interface {
	GetActive(ctx context.Context) (*goals.NutritionGoals, error)
}

type Aggregator struct {
	records recordsSource
	goals   goalsSource
	cache   *Cache // optional

	NowFunc func() time.Time
}

func NewAggregator(recordsSrc recordsSource, goalsSrc goalsSource, cache *Cache) *Aggregator {
	return &Aggregator{
		records: recordsSrc,
		goals:   goalsSrc,
		cache:   cache,
		NowFunc: time.Now,
	}
}

func ratio(total, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	return total / goal
}

// AggregateDay folds the records falling on the given calendar day into a
// DailyProgress. Ratios stay raw (not capped at 1.0); a missing or zero
// goal yields a zero ratio. Total over empty input.
func AggregateDay(
	day time.Time,
	recs []records.AnalysisRecord,
	g *goals.NutritionGoals,
	now time.Time,
) DailyProgress {
	day = day.Truncate(24 * time.Hour)

	dp := DailyProgress{
		Date:        day,
		RecordIDs:   make([]string, 0, len(recs)),
		GoalsSet:    g != nil,
		LastUpdated: now,
	}

	for _, rec := range recs {
		if !rec.Day().Equal(day) {
			continue
		}
		dp.RecordIDs = append(dp.RecordIDs, rec.ID)
		dp.TotalCalories += rec.Calories
		dp.TotalProtein += rec.Protein
		dp.TotalFat += rec.Fat
		dp.TotalCarbs += rec.Carbs
	}

	if g != nil {
		dp.CalorieRatio = ratio(float64(dp.TotalCalories), float64(g.DailyCalorieGoal))
		dp.ProteinRatio = ratio(dp.TotalProtein, g.ProteinGoal)
		dp.FatRatio = ratio(dp.TotalFat, g.FatGoal)
		dp.CarbsRatio = ratio(dp.TotalCarbs, g.CarbsGoal)
	}

	return dp
}

// AggregateWeek folds up to 7 daily progresses into a WeeklyProgress.
// The calorie average always divides by 7, not by days with data.
func AggregateWeek(weekStart time.Time, dailies []DailyProgress, g *goals.NutritionGoals) WeeklyProgress {
	wp := WeeklyProgress{
		WeekStart: weekStart.Truncate(24 * time.Hour),
		Dailies:   dailies,
	}

	for _, dp := range dailies {
		wp.TotalCalories += dp.TotalCalories
		wp.TotalProtein += dp.TotalProtein
		wp.TotalFat += dp.TotalFat
		wp.TotalCarbs += dp.TotalCarbs
	}

	wp.AverageCalories = float64(wp.TotalCalories) / 7

	if g != nil {
		wp.GoalCompletionRate = completionRate(
			wp.TotalCalories, wp.TotalProtein, wp.TotalFat, wp.TotalCarbs, g, 7,
		)
	}

	return wp
}

// AggregateMonth folds the month's week windows into a MonthlyProgress.
// The calorie average divides by the month's actual day count.
func AggregateMonth(monthStart time.Time, weeks []WeeklyProgress, g *goals.NutritionGoals) MonthlyProgress {
	monthStart = StartOfMonth(monthStart)
	daysInMonth := monthStart.AddDate(0, 1, 0).Sub(monthStart).Hours() / 24

	mp := MonthlyProgress{
		MonthStart: monthStart,
		Weeks:      weeks,
	}

	for _, wp := range weeks {
		mp.TotalCalories += wp.TotalCalories
		mp.TotalProtein += wp.TotalProtein
		mp.TotalFat += wp.TotalFat
		mp.TotalCarbs += wp.TotalCarbs
	}

	mp.AverageCalories = float64(mp.TotalCalories) / daysInMonth

	if g != nil {
		mp.GoalCompletionRate = completionRate(
			mp.TotalCalories, mp.TotalProtein, mp.TotalFat, mp.TotalCarbs, g, int(daysInMonth),
		)
	}

	return mp
}

// completionRate is the mean of the four period-total / (goal * days) ratios.
func completionRate(calories int, protein, fat, carbs float64, g *goals.NutritionGoals, days int) float64 {
	d := float64(days)
	return (ratio(float64(calories), float64(g.DailyCalorieGoal)*d) +
		ratio(protein, g.ProteinGoal*d) +
		ratio(fat, g.FatGoal*d) +
		ratio(carbs, g.CarbsGoal*d)) / 4
}

// DailyProgress computes (or serves from cache) the progress for a day.
func (a *Aggregator) DailyProgress(ctx context.Context, day time.Time) (_ *DailyProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progress.daily")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	day = day.Truncate(24 * time.Hour)
	span.SetAttributes(attribute.String("day", day.Format("2006-01-02")))

	if a.cache != nil {
		if cached, ok := a.cache.Get(day); ok {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return cached, nil
		}
	}

	recs, err := a.records.ListForDay(ctx, day)
	if err != nil {
		return nil, err
	}

	g, err := a.goals.GetActive(ctx)
	if err != nil {
		if !errors.Is(err, goals.ErrGoalsNotSet) {
			return nil, err
		}
		// advisory only: progress without goals has all ratios at zero
		log.Tracef("daily progress for %s: no active goals", day.Format("2006-01-02"))
		g = nil
	}

	dp := AggregateDay(day, recs, g, a.NowFunc())

	if a.cache != nil {
		a.cache.Set(day, &dp)
	}

	return &dp, nil
}

// WeeklyProgress computes the progress for the ISO week containing the given date.
func (a *Aggregator) WeeklyProgress(ctx context.Context, date time.Time) (_ *WeeklyProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progress.weekly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	weekStart := StartOfISOWeek(date)
	span.SetAttributes(attribute.String("week_start", weekStart.Format("2006-01-02")))

	dailies := make([]DailyProgress, 0, 7)
	for i := 0; i < 7; i++ {
		dp, err := a.DailyProgress(ctx, weekStart.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		dailies = append(dailies, *dp)
	}

	g, err := a.activeGoals(ctx)
	if err != nil {
		return nil, err
	}

	wp := AggregateWeek(weekStart, dailies, g)
	return &wp, nil
}

// MonthlyProgress computes the progress for the calendar month containing
// the given date, folded over week windows anchored at the month's first day.
func (a *Aggregator) MonthlyProgress(ctx context.Context, date time.Time) (_ *MonthlyProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progress.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	monthStart := StartOfMonth(date)
	nextMonth := monthStart.AddDate(0, 1, 0)
	span.SetAttributes(attribute.String("month_start", monthStart.Format("2006-01-02")))

	g, err := a.activeGoals(ctx)
	if err != nil {
		return nil, err
	}

	var weeks []WeeklyProgress
	for weekStart := monthStart; weekStart.Before(nextMonth); weekStart = weekStart.AddDate(0, 0, 7) {
		var dailies []DailyProgress
		for day := weekStart; day.Before(nextMonth) && day.Before(weekStart.AddDate(0, 0, 7)); day = day.AddDate(0, 0, 1) {
			dp, err := a.DailyProgress(ctx, day)
			if err != nil {
				return nil, err
			}
			dailies = append(dailies, *dp)
		}
		weeks = append(weeks, AggregateWeek(weekStart, dailies, g))
	}

	mp := AggregateMonth(monthStart, weeks, g)
	return &mp, nil
}

// HasActivity reports whether the given day has at least one logged record.
func (a *Aggregator) HasActivity(ctx context.Context, day time.Time) (bool, error) {
	dp, err := a.DailyProgress(ctx, day)
	if err != nil {
		return false, err
	}
	return dp.HasActivity(), nil
}

// CurrentStreak scans backward from the reference date, through the daily cache.
func (a *Aggregator) CurrentStreak(ctx context.Context, from time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.progress.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return CurrentStreak(ctx, a.HasActivity, from)
}

// Invalidate drops the cached progress for a day. Call after any record
// write which touches it.
func (a *Aggregator) Invalidate(day time.Time) {
	if a.cache != nil {
		a.cache.Invalidate(day)
	}
}

// ClearCache drops every cached day. Call after a goals change, which
// shifts the ratios of all days at once.
func (a *Aggregator) ClearCache() {
	if a.cache != nil {
		a.cache.Clear()
	}
}

func (a *Aggregator) activeGoals(ctx context.Context) (*goals.NutritionGoals, error) {
	g, err := a.goals.GetActive(ctx)
	if err != nil {
		if errors.Is(err, goals.ErrGoalsNotSet) {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}
