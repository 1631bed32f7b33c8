package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GuestEmail is recorded when an activity arrives without an email
const GuestEmail = "guest"

// ActivityType names a tracked user action
type ActivityType string

const (
	ActivityCompanyPrepPlan   ActivityType = "company_prep_plan"
	ActivityReportCard        ActivityType = "report_card"
	ActivityInterviewAnalysis ActivityType = "interview_analysis"
	ActivityResumeSummary     ActivityType = "resume_summary"
	ActivityHREmail           ActivityType = "hr_email"
)

// Activity is one entry of a user's activity history
type Activity struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Email     string          `json:"email" db:"email"`
	Type      ActivityType    `json:"type" db:"type"`
	Details   json.RawMessage `json:"details" db:"details"` // JSONB
	Timestamp time.Time       `json:"timestamp" db:"created_at"`
}

// NewActivity creates a new Activity for email, falling back to the guest identity
func NewActivity(email string, activityType ActivityType) *Activity {
	return &Activity{
		ID:        uuid.New(),
		Email:     NormalizeEmail(email),
		Type:      activityType,
		Details:   json.RawMessage("{}"),
		Timestamp: time.Now().UTC(),
	}
}

// WithDetails sets the details
func (a *Activity) WithDetails(details interface{}) *Activity {
	if data, err := json.Marshal(details); err == nil && string(data) != "null" {
		a.Details = data
	}
	return a
}

// NormalizeEmail trims and lowercases email; blank becomes GuestEmail
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return GuestEmail
	}
	return email
}

// ActivitySummary condenses a history for report generation
type ActivitySummary struct {
	TotalActivities    int         `json:"total_activities"`
	RecentActions      []*Activity `json:"recent_actions"`
	UniqueFeaturesUsed []string    `json:"unique_features_used"`
}

// ActivityTotals counts the whole history of one email
type ActivityTotals struct {
	Total int

	// Features lists each activity type once, in order of first use
	Features []ActivityType
}

// TotalsOf counts history, which is expected in chronological order
func TotalsOf(history []*Activity) ActivityTotals {
	totals := ActivityTotals{Total: len(history), Features: []ActivityType{}}

	seen := make(map[ActivityType]bool)
	for _, a := range history {
		if seen[a.Type] {
			continue
		}
		seen[a.Type] = true
		totals.Features = append(totals.Features, a.Type)
	}
	return totals
}

// Summarize builds an ActivitySummary from whole-history totals and the most recent entries
func Summarize(totals ActivityTotals, recent []*Activity) ActivitySummary {
	summary := ActivitySummary{
		TotalActivities:    totals.Total,
		RecentActions:      append([]*Activity{}, recent...),
		UniqueFeaturesUsed: make([]string, 0, len(totals.Features)),
	}
	for _, feature := range totals.Features {
		summary.UniqueFeaturesUsed = append(summary.UniqueFeaturesUsed, string(feature))
	}
	return summary
}
