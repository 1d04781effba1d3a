package achievements

import "time"

type Category string

const (
	CategoryGoals    Category = "goals"
	CategoryProgress Category = "progress"
	CategoryStreaks  Category = "streaks"
	CategoryAnalysis Category = "analysis"
	CategorySocial   Category = "social"
)

// Achievement is permanent once unlocked: never re-locked, never duplicated.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    Category  `json:"category"`
	Points      int       `json:"points"`
	UnlockedAt  time.Time `json:"unlockedAt"`
	IsUnlocked  bool      `json:"isUnlocked"`
}

// Progress is a derived summary, recomputed on demand and never persisted.
type Progress struct {
	Total         int `json:"total"`
	Unlocked      int `json:"unlocked"`
	TotalPoints   int `json:"totalPoints"`
	CurrentStreak int `json:"currentStreak"`
	Level         int `json:"level"`
}

// Summarize builds the achievement progress summary.
// Level is floor(points/100) + 1.
func Summarize(catalogSize int, unlocked []Achievement, streak int) Progress {
	points := 0
	for _, a := range unlocked {
		points += a.Points
	}
	return Progress{
		Total:         catalogSize,
		Unlocked:      len(unlocked),
		TotalPoints:   points,
		CurrentStreak: streak,
		Level:         points/100 + 1,
	}
}
