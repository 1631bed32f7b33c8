package postgres

import (
	"context"
	"fmt"

	"github.com/upb/career-advisor/models"
	"github.com/upb/career-advisor/repositories"
	"go.uber.org/zap"
)

// ActivityRepository implements the repositories.ActivityRepository interface
type ActivityRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *DB, logger *zap.Logger) repositories.ActivityRepository {
	return &ActivityRepository{
		db:     db,
		logger: logger,
	}
}

// Record inserts a new activity entry
func (r *ActivityRepository) Record(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (id, email, type, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	details := activity.Details
	if len(details) == 0 {
		details = []byte("{}")
	}

	email := models.NormalizeEmail(activity.Email)
	_, err := r.db.ExecContext(ctx, query,
		activity.ID,
		email,
		string(activity.Type),
		[]byte(details),
		activity.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	activity.Email = email
	r.logger.Debug("activity recorded",
		zap.String("id", activity.ID.String()),
		zap.String("type", string(activity.Type)))
	return nil
}

// ListByEmail retrieves the newest activities for email, oldest first
func (r *ActivityRepository) ListByEmail(ctx context.Context, email string, limit int) ([]*models.Activity, error) {
	if limit <= 0 {
		limit = repositories.DefaultHistoryLimit
	}

	query := `
		SELECT id, email, type, details, created_at
		FROM (
			SELECT id, email, type, details, created_at
			FROM activities
			WHERE email = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, models.NormalizeEmail(email), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.Activity{}
	for rows.Next() {
		activity := &models.Activity{}
		var activityType string
		var details []byte
		if err := rows.Scan(
			&activity.ID,
			&activity.Email,
			&activityType,
			&details,
			&activity.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activity.Type = models.ActivityType(activityType)
		activity.Details = details
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

// TotalsByEmail counts all activities of email per type, ordered by first use
func (r *ActivityRepository) TotalsByEmail(ctx context.Context, email string) (models.ActivityTotals, error) {
	query := `
		SELECT type, COUNT(*)
		FROM activities
		WHERE email = $1
		GROUP BY type
		ORDER BY MIN(created_at) ASC
	`

	rows, err := r.db.QueryContext(ctx, query, models.NormalizeEmail(email))
	if err != nil {
		return models.ActivityTotals{}, fmt.Errorf("failed to count activities: %w", err)
	}
	defer rows.Close()

	totals := models.ActivityTotals{Features: []models.ActivityType{}}
	for rows.Next() {
		var activityType string
		var count int
		if err := rows.Scan(&activityType, &count); err != nil {
			return models.ActivityTotals{}, fmt.Errorf("failed to scan activity count: %w", err)
		}
		totals.Total += count
		totals.Features = append(totals.Features, models.ActivityType(activityType))
	}

	if err := rows.Err(); err != nil {
		return models.ActivityTotals{}, fmt.Errorf("error iterating activity counts: %w", err)
	}

	return totals, nil
}
