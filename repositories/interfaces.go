package repositories

import (
	"context"

	"github.com/upb/career-advisor/models"
)

// DefaultHistoryLimit caps ListByEmail when the caller passes a non-positive limit
const DefaultHistoryLimit = 100

// ActivityRepository stores the per-email activity history
type ActivityRepository interface {
	// Record appends an activity. An empty email is stored as models.GuestEmail.
	Record(ctx context.Context, activity *models.Activity) error

	// ListByEmail returns the newest limit activities for email in chronological order
	ListByEmail(ctx context.Context, email string, limit int) ([]*models.Activity, error)

	// TotalsByEmail counts every activity of email and the distinct types used,
	// independent of any list limit
	TotalsByEmail(ctx context.Context, email string) (models.ActivityTotals, error)
}

// Repositories holds all repository instances
type Repositories struct {
	Activities ActivityRepository
}
