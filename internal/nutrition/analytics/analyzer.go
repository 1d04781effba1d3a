package analytics

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/progress"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/records"
	"github.com/vladamisici/food-analyzer-sub000/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analytics_mocks_test.go -package=analytics_test

type analyticsRepo interface {
	ListAll(ctx context.Context, params records.RecordParams) ([]records.AnalysisRecord, error)
}

type FoodFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TrendPoint struct {
	Date     time.Time `json:"date"`
	Calories int       `json:"calories"`
}

type MacroBreakdown struct {
	ProteinPct float64 `json:"proteinPct"`
	FatPct     float64 `json:"fatPct"`
	CarbsPct   float64 `json:"carbsPct"`
}

type WeeklyStats struct {
	TotalCalories   int     `json:"totalCalories"`
	AverageCalories float64 `json:"averageCalories"`
	TotalProtein    float64 `json:"totalProtein"`
	TotalFat        float64 `json:"totalFat"`
	TotalCarbs      float64 `json:"totalCarbs"`
	// average health score of the trailing 7 days minus the 7 days before
	// that; 0 when either window is empty
	HealthScoreDelta float64 `json:"healthScoreDelta"`
}

// AnalyticsData is fully derived, recomputed per request.
type AnalyticsData struct {
	TotalAnalyses      int             `json:"totalAnalyses"`
	AverageCalories    float64         `json:"averageCalories"`
	AverageProtein     float64         `json:"averageProtein"`
	AverageFat         float64         `json:"averageFat"`
	AverageCarbs       float64         `json:"averageCarbs"`
	AverageHealthScore float64         `json:"averageHealthScore"`
	MostFrequentFoods  []FoodFrequency `json:"mostFrequentFoods"`
	CalorieTrend       []TrendPoint    `json:"calorieTrend"`
	MacroBreakdown     MacroBreakdown  `json:"macroBreakdown"`
	WeeklyStats        WeeklyStats     `json:"weeklyStats"`
}

type Analyzer struct {
	repo analyticsRepo

	NowFunc func() time.Time
}

func NewAnalyzer(repo analyticsRepo) *Analyzer {
	return &Analyzer{
		repo:    repo,
		NowFunc: time.Now,
	}
}

const topFoodsCount = 5

// Analyze computes the aggregate statistics over the records falling in
// the window. Empty input yields the canonical zero result, never an error.
func (a *Analyzer) Analyze(ctx context.Context, window progress.DateRange) (_ *AnalyticsData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("window.start", window.Start.String()))
	span.SetAttributes(attribute.String("window.end", window.End.String()))

	allRecords, err := a.repo.ListAll(ctx, records.RecordParams{})
	if err != nil {
		return nil, err
	}

	now := a.NowFunc()

	// oldest first, so "first seen" is chronological
	sort.Slice(allRecords, func(i, j int) bool {
		return allRecords[i].Timestamp.Before(allRecords[j].Timestamp)
	})

	var filtered []records.AnalysisRecord
	for _, rec := range allRecords {
		if window.Contains(rec.Timestamp) {
			filtered = append(filtered, rec)
		}
	}

	data := &AnalyticsData{
		MostFrequentFoods: make([]FoodFrequency, 0),
		CalorieTrend:      make([]TrendPoint, 0),
	}
	data.WeeklyStats = a.weeklyStats(allRecords, now)

	if len(filtered) == 0 {
		return data, nil
	}

	data.TotalAnalyses = len(filtered)

	var calories int
	var protein, fat, carbs, healthScore float64
	for _, rec := range filtered {
		calories += rec.Calories
		protein += rec.Protein
		fat += rec.Fat
		carbs += rec.Carbs
		healthScore += HealthScoreValue(rec.HealthScore)
	}
	n := float64(len(filtered))
	data.AverageCalories = float64(calories) / n
	data.AverageProtein = protein / n
	data.AverageFat = fat / n
	data.AverageCarbs = carbs / n
	data.AverageHealthScore = healthScore / n

	data.MostFrequentFoods = mostFrequentFoods(filtered)
	data.CalorieTrend = calorieTrend(filtered, now)
	data.MacroBreakdown = macroBreakdown(data.AverageProtein, data.AverageFat, data.AverageCarbs)

	return data, nil
}

// mostFrequentFoods groups by case-insensitive item name and returns the
// top entries by count, ties broken by first-seen order.
func mostFrequentFoods(recs []records.AnalysisRecord) []FoodFrequency {
	type foodCount struct {
		name      string // as first seen
		count     int
		firstSeen int
	}

	counts := make(map[string]*foodCount)
	for i, rec := range recs {
		key := strings.ToLower(strings.TrimSpace(rec.ItemName))
		if fc, ok := counts[key]; ok {
			fc.count++
		} else {
			counts[key] = &foodCount{name: rec.ItemName, count: 1, firstSeen: i}
		}
	}

	ordered := make([]*foodCount, 0, len(counts))
	for _, fc := range counts {
		ordered = append(ordered, fc)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].firstSeen < ordered[j].firstSeen
	})

	if len(ordered) > topFoodsCount {
		ordered = ordered[:topFoodsCount]
	}

	top := make([]FoodFrequency, 0, len(ordered))
	for _, fc := range ordered {
		top = append(top, FoodFrequency{Name: fc.name, Count: fc.count})
	}
	return top
}

// calorieTrend buckets the last 30 days of records by calendar day.
// The series is sparse: days without records are absent, not zero-filled.
func calorieTrend(recs []records.AnalysisRecord, now time.Time) []TrendPoint {
	trendWindow := progress.RangeLast30Days(now)

	day2calories := make(map[time.Time]int)
	for _, rec := range recs {
		if !trendWindow.Contains(rec.Timestamp) {
			continue
		}
		day2calories[rec.Day()] += rec.Calories
	}

	trend := make([]TrendPoint, 0, len(day2calories))
	for day, cal := range day2calories {
		trend = append(trend, TrendPoint{Date: day, Calories: cal})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})
	return trend
}

// macroBreakdown expresses each macro average as a percentage of the
// combined macro mass.
func macroBreakdown(avgProtein, avgFat, avgCarbs float64) MacroBreakdown {
	total := avgProtein + avgFat + avgCarbs
	if total <= 0 {
		return MacroBreakdown{}
	}
	return MacroBreakdown{
		ProteinPct: twoDecimals(avgProtein / total * 100),
		FatPct:     twoDecimals(avgFat / total * 100),
		CarbsPct:   twoDecimals(avgCarbs / total * 100),
	}
}

// leave only 2 decimals
func twoDecimals(v float64) float64 {
	return float64(int(v*100)) / 100
}

func (a *Analyzer) weeklyStats(recs []records.AnalysisRecord, now time.Time) WeeklyStats {
	thisWeek := progress.DateRange{Start: now.AddDate(0, 0, -7), End: now}
	prevWeek := progress.DateRange{Start: now.AddDate(0, 0, -14), End: now.AddDate(0, 0, -7)}

	var stats WeeklyStats
	var thisWeekCount, prevWeekCount int
	var thisWeekScore, prevWeekScore float64
	for _, rec := range recs {
		if thisWeek.Contains(rec.Timestamp) {
			stats.TotalCalories += rec.Calories
			stats.TotalProtein += rec.Protein
			stats.TotalFat += rec.Fat
			stats.TotalCarbs += rec.Carbs
			thisWeekScore += HealthScoreValue(rec.HealthScore)
			thisWeekCount++
		}
		if prevWeek.Contains(rec.Timestamp) {
			prevWeekScore += HealthScoreValue(rec.HealthScore)
			prevWeekCount++
		}
	}

	stats.AverageCalories = float64(stats.TotalCalories) / 7

	if thisWeekCount > 0 && prevWeekCount > 0 {
		stats.HealthScoreDelta = thisWeekScore/float64(thisWeekCount) - prevWeekScore/float64(prevWeekCount)
	}

	return stats
}

// HealthScoreValue extracts the numeric part of a free-text health score:
// "8/10" and "7.5" both parse, anything non-numeric scores 0.
func HealthScoreValue(score string) float64 {
	score = strings.TrimSpace(score)
	if idx := strings.IndexByte(score, '/'); idx >= 0 {
		score = score[:idx]
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(score), 64)
	if err != nil {
		return 0
	}
	return value
}
