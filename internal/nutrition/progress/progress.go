package progress

import (
	"time"
)

// DailyProgress is derived fresh from the day's analysis records plus the
// active goals. It is never edited independently.
type DailyProgress struct {
	Date      time.Time `json:"date"`
	RecordIDs []string  `json:"recordIds"`

	TotalCalories int     `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFat      float64 `json:"totalFat"`
	TotalCarbs    float64 `json:"totalCarbs"`

	// progress ratios are raw (total / goal), deliberately NOT capped at 1.0,
	// so an exceeded goal stays observable; clamp at display sites if needed
	CalorieRatio float64 `json:"calorieRatio"`
	ProteinRatio float64 `json:"proteinRatio"`
	FatRatio     float64 `json:"fatRatio"`
	CarbsRatio   float64 `json:"carbsRatio"`

	GoalsSet    bool      `json:"goalsSet"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// HasActivity reports whether at least one record was logged on this day.
func (dp *DailyProgress) HasActivity() bool {
	return len(dp.RecordIDs) > 0
}

// IsGoalMet: calories within 10% of the goal, all three macros at least at 90%.
func (dp *DailyProgress) IsGoalMet() bool {
	if !dp.GoalsSet {
		return false
	}
	return dp.CalorieRatio >= 0.9 && dp.CalorieRatio <= 1.1 &&
		dp.ProteinRatio >= 0.9 &&
		dp.FatRatio >= 0.9 &&
		dp.CarbsRatio >= 0.9
}

type WeeklyProgress struct {
	WeekStart time.Time       `json:"weekStart"`
	Dailies   []DailyProgress `json:"dailies"`

	TotalCalories int     `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFat      float64 `json:"totalFat"`
	TotalCarbs    float64 `json:"totalCarbs"`

	// total calories over 7, regardless of how many days have data
	AverageCalories float64 `json:"averageCalories"`
	// mean of the four period-total / (goal * 7) ratios
	GoalCompletionRate float64 `json:"goalCompletionRate"`
}

type MonthlyProgress struct {
	MonthStart time.Time        `json:"monthStart"`
	Weeks      []WeeklyProgress `json:"weeks"`

	TotalCalories int     `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFat      float64 `json:"totalFat"`
	TotalCarbs    float64 `json:"totalCarbs"`

	// total calories over the month's actual day count
	AverageCalories    float64 `json:"averageCalories"`
	GoalCompletionRate float64 `json:"goalCompletionRate"`
}
