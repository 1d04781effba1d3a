package records

import "time"

// AnalysisRecord is a single analyzed meal, as returned by the
// food-recognition service.
type AnalysisRecord struct {
	ID           string    `json:"id"`
	ItemName     string    `json:"itemName"`
	Calories     int       `json:"calories"`
	Protein      float64   `json:"protein"`
	Fat          float64   `json:"fat"`
	Carbs        float64   `json:"carbs"`
	HealthScore  string    `json:"healthScore"`
	CoachComment string    `json:"coachComment"`
	Timestamp    time.Time `json:"timestamp"`
}

// Day returns the calendar day (UTC midnight) the record belongs to.
func (r AnalysisRecord) Day() time.Time {
	return r.Timestamp.Truncate(24 * time.Hour)
}
