package achievements

import (
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/progress"
	"github.com/vladamisici/food-analyzer-sub000/internal/nutrition/records"
)

// State is the snapshot a rule predicate looks at. The engine never
// mutates it.
type State struct {
	GoalsSet      bool
	TotalAnalyses int
	AnalysesToday int
	DailyProgress *progress.DailyProgress
	Streak        int
	LastRecord    *records.AnalysisRecord
}

// Rule is one catalog entry: fixed metadata plus the unlock predicate.
type Rule struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    Category
	Points      int
	Unlocks     func(s State) bool
}

const (
	highProteinMealGrams = 20.0

	// a meal is balanced when each macro's share of the combined macro
	// mass sits inside this band
	balancedShareMin = 0.2
	balancedShareMax = 0.5
)

func isBalancedMeal(rec *records.AnalysisRecord) bool {
	if rec == nil {
		return false
	}
	total := rec.Protein + rec.Fat + rec.Carbs
	if total <= 0 {
		return false
	}
	for _, macro := range []float64{rec.Protein, rec.Fat, rec.Carbs} {
		share := macro / total
		if share < balancedShareMin || share > balancedShareMax {
			return false
		}
	}
	return true
}

// Catalog returns the full achievement rule set. Rules are data: adding a
// new achievement means adding an entry here, not touching the engine.
func Catalog() []Rule {
	return []Rule{
		{
			ID:          "first_goal_set",
			Title:       "Goal Getter",
			Description: "Save your first nutrition goals",
			Icon:        "target",
			Category:    CategoryGoals,
			Points:      10,
			Unlocks: func(s State) bool {
				return s.GoalsSet
			},
		},
		{
			ID:          "first_analysis",
			Title:       "First Bite",
			Description: "Log your first analyzed meal",
			Icon:        "fork.knife",
			Category:    CategoryAnalysis,
			Points:      10,
			Unlocks: func(s State) bool {
				return s.TotalAnalyses == 1
			},
		},
		{
			ID:          "three_meals_day",
			Title:       "Full Day",
			Description: "Log three meals in a single day",
			Icon:        "sun.max",
			Category:    CategoryProgress,
			Points:      20,
			Unlocks: func(s State) bool {
				return s.AnalysesToday >= 3
			},
		},
		{
			ID:          "daily_goal_met",
			Title:       "On Point",
			Description: "Hit your daily nutrition goals",
			Icon:        "checkmark.circle",
			Category:    CategoryGoals,
			Points:      30,
			Unlocks: func(s State) bool {
				return s.DailyProgress != nil && s.DailyProgress.IsGoalMet()
			},
		},
		{
			ID:          "three_day_streak",
			Title:       "Warming Up",
			Description: "Track three days in a row",
			Icon:        "flame",
			Category:    CategoryStreaks,
			Points:      20,
			Unlocks: func(s State) bool {
				return s.Streak >= 3
			},
		},
		{
			ID:          "week_streak",
			Title:       "Week Strong",
			Description: "Track seven days in a row",
			Icon:        "flame.fill",
			Category:    CategoryStreaks,
			Points:      50,
			Unlocks: func(s State) bool {
				return s.Streak >= 7
			},
		},
		{
			ID:          "month_streak",
			Title:       "Habit Formed",
			Description: "Track thirty days in a row",
			Icon:        "crown",
			Category:    CategoryStreaks,
			Points:      100,
			Unlocks: func(s State) bool {
				return s.Streak >= 30
			},
		},
		{
			ID:          "high_protein_meal",
			Title:       "Protein Punch",
			Description: "Log a meal with at least 20g of protein",
			Icon:        "bolt",
			Category:    CategoryAnalysis,
			Points:      15,
			Unlocks: func(s State) bool {
				return s.LastRecord != nil && s.LastRecord.Protein >= highProteinMealGrams
			},
		},
		{
			ID:          "balanced_meal",
			Title:       "Well Balanced",
			Description: "Log a meal with a balanced macro split",
			Icon:        "scalemass",
			Category:    CategoryAnalysis,
			Points:      15,
			Unlocks: func(s State) bool {
				return isBalancedMeal(s.LastRecord)
			},
		},
	}
}
