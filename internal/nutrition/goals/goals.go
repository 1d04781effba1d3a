package goals

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightlyActive"
	ActivityModeratelyActive ActivityLevel = "moderatelyActive"
	ActivityVeryActive       ActivityLevel = "veryActive"
	ActivityExtremelyActive  ActivityLevel = "extremelyActive"
)

// activityMultipliers is the single source of truth for valid activity
// levels and their TDEE multipliers.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:        1.2,
	ActivityLightlyActive:    1.375,
	ActivityModeratelyActive: 1.55,
	ActivityVeryActive:       1.725,
	ActivityExtremelyActive:  1.9,
}

type GoalType string

const (
	GoalWeightLoss  GoalType = "weightLoss"
	GoalWeightGain  GoalType = "weightGain"
	GoalMaintenance GoalType = "maintenance"
	GoalMuscleGain  GoalType = "muscleGain"
	GoalEndurance   GoalType = "endurance"
)

var calorieAdjustments = map[GoalType]float64{
	GoalWeightLoss:  0.85,
	GoalWeightGain:  1.15,
	GoalMaintenance: 1.00,
	GoalMuscleGain:  1.10,
	GoalEndurance:   1.05,
}

var proteinPerKg = map[GoalType]float64{
	GoalWeightLoss:  1.2,
	GoalWeightGain:  1.6,
	GoalMuscleGain:  1.6,
	GoalMaintenance: 1.0,
	GoalEndurance:   1.0,
}

var fatFractions = map[GoalType]float64{
	GoalWeightLoss:  0.25,
	GoalMaintenance: 0.25,
	GoalWeightGain:  0.30,
	GoalMuscleGain:  0.30,
	GoalEndurance:   0.20,
}

// UserProfile is the goal recommendation input, supplied by the caller
// from the setup form. It is not persisted.
type UserProfile struct {
	Age           int           `json:"age"`    // years
	Weight        float64       `json:"weight"` // kg
	Height        float64       `json:"height"` // cm
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	GoalType      GoalType      `json:"goalType"`
}

type NutritionGoals struct {
	DailyCalorieGoal int           `json:"dailyCalorieGoal"` // kcal
	ProteinGoal      float64       `json:"proteinGoal"`      // grams
	FatGoal          float64       `json:"fatGoal"`          // grams
	CarbsGoal        float64       `json:"carbsGoal"`        // grams
	FiberGoal        float64       `json:"fiberGoal"`        // grams
	ActivityLevel    ActivityLevel `json:"activityLevel"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
