// Package memory keeps the activity log in process memory for deployments
// without a database. History is lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/upb/career-advisor/models"
	"github.com/upb/career-advisor/repositories"
)

// ActivityRepository is a mutex guarded map of email to history
type ActivityRepository struct {
	mu      sync.RWMutex
	byEmail map[string][]*models.Activity
}

// NewActivityRepository creates an empty in-memory activity log
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{byEmail: make(map[string][]*models.Activity)}
}

var _ repositories.ActivityRepository = (*ActivityRepository)(nil)

// Record appends a copy of activity
func (r *ActivityRepository) Record(ctx context.Context, activity *models.Activity) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	activity.Email = models.NormalizeEmail(activity.Email)
	stored := *activity
	stored.Details = append([]byte(nil), activity.Details...)

	r.mu.Lock()
	r.byEmail[stored.Email] = append(r.byEmail[stored.Email], &stored)
	r.mu.Unlock()
	return nil
}

// ListByEmail returns copies of the newest limit entries, oldest first
func (r *ActivityRepository) ListByEmail(ctx context.Context, email string, limit int) ([]*models.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = repositories.DefaultHistoryLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.byEmail[models.NormalizeEmail(email)]
	start := len(history) - limit
	if start < 0 {
		start = 0
	}

	out := make([]*models.Activity, 0, len(history)-start)
	for _, a := range history[start:] {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

// TotalsByEmail counts the full history of email
func (r *ActivityRepository) TotalsByEmail(ctx context.Context, email string) (models.ActivityTotals, error) {
	if err := ctx.Err(); err != nil {
		return models.ActivityTotals{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return models.TotalsOf(r.byEmail[models.NormalizeEmail(email)]), nil
}
