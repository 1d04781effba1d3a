package goals

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidProfile = errors.New("invalid profile")

const (
	proteinFloorGrams = 50.0
	fatFloorGrams     = 30.0
	carbsFloorGrams   = 50.0
	fiberGoalGrams    = 25.0
)

// CalculateGoals derives recommended nutrition goals from a user profile:
// Mifflin-St Jeor BMR, TDEE by activity multiplier, calorie goal adjusted
// by goal type, macros by the remainder method. Pure, no side effects.
func CalculateGoals(profile UserProfile, now time.Time) (*NutritionGoals, error) {
	if profile.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrInvalidProfile)
	}
	if profile.Weight <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidProfile)
	}
	if profile.Height <= 0 {
		return nil, fmt.Errorf("%w: height must be positive", ErrInvalidProfile)
	}
	if profile.Gender != GenderMale && profile.Gender != GenderFemale {
		return nil, fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, profile.Gender)
	}

	activityMultiplier, ok := activityMultipliers[profile.ActivityLevel]
	if !ok {
		return nil, fmt.Errorf("%w: unknown activity level %q", ErrInvalidProfile, profile.ActivityLevel)
	}
	calorieAdjustment, ok := calorieAdjustments[profile.GoalType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown goal type %q", ErrInvalidProfile, profile.GoalType)
	}

	// Mifflin-St Jeor
	bmr := 10*profile.Weight + 6.25*profile.Height - 5*float64(profile.Age)
	if profile.Gender == GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultiplier
	calorieGoal := int(tdee * calorieAdjustment)

	proteinGoal := profile.Weight * proteinPerKg[profile.GoalType]
	fatGoal := float64(calorieGoal) * fatFractions[profile.GoalType] / 9

	// carbs get whatever calories remain after protein and fat
	carbsGoal := (float64(calorieGoal) - proteinGoal*4 - fatGoal*9) / 4

	if proteinGoal < proteinFloorGrams {
		proteinGoal = proteinFloorGrams
	}
	if fatGoal < fatFloorGrams {
		fatGoal = fatFloorGrams
	}
	if carbsGoal < carbsFloorGrams {
		carbsGoal = carbsFloorGrams
	}

	return &NutritionGoals{
		DailyCalorieGoal: calorieGoal,
		ProteinGoal:      proteinGoal,
		FatGoal:          fatGoal,
		CarbsGoal:        carbsGoal,
		FiberGoal:        fiberGoalGrams,
		ActivityLevel:    profile.ActivityLevel,
		UpdatedAt:        now,
	}, nil
}
