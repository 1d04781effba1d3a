package achievements

import (
	"time"
)

// Engine evaluates the rule catalog against a state snapshot. It holds no
// mutable state itself; idempotency comes from the alreadyUnlocked set the
// caller passes in, and the caller must serialize evaluate-then-persist
// (see the tracker's single-writer lock).
type Engine struct {
	catalog []Rule
}

func NewEngine(catalog []Rule) *Engine {
	return &Engine{
		catalog: catalog,
	}
}

func (e *Engine) CatalogSize() int {
	return len(e.catalog)
}

// Evaluate returns only the newly unlocked achievements: rules whose
// predicate holds and whose id is not in alreadyUnlocked. Re-running with
// unchanged state returns an empty slice.
func (e *Engine) Evaluate(s State, alreadyUnlocked map[string]bool, now time.Time) []Achievement {
	newlyUnlocked := make([]Achievement, 0)
	for _, rule := range e.catalog {
		if alreadyUnlocked[rule.ID] {
			continue
		}
		if !rule.Unlocks(s) {
			continue
		}
		newlyUnlocked = append(newlyUnlocked, Achievement{
			ID:          rule.ID,
			Title:       rule.Title,
			Description: rule.Description,
			Icon:        rule.Icon,
			Category:    rule.Category,
			Points:      rule.Points,
			UnlockedAt:  now,
			IsUnlocked:  true,
		})
	}
	return newlyUnlocked
}
