package activity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/upb/career-advisor/models"
	"github.com/upb/career-advisor/repositories"
	"go.uber.org/zap"
)

var (
	// ErrNotStarted is returned when recording before Start or after Stop
	ErrNotStarted = errors.New("activity service not started")

	// ErrBufferFull is returned when the event buffer cannot take another entry
	ErrBufferFull = errors.New("activity buffer full")
)

// Service records user activities asynchronously and serves their history
type Service struct {
	repo        repositories.ActivityRepository
	logger      *zap.Logger
	events      chan *models.Activity
	workerCount int
	bufferSize  int
	wg          sync.WaitGroup
	started     bool
	mu          sync.Mutex
}

// Config holds configuration for the Service
type Config struct {
	BufferSize  int // Size of the event buffer channel
	WorkerCount int // Number of concurrent workers
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		BufferSize:  1000,
		WorkerCount: 2,
	}
}

// NewService creates a new Service instance
func NewService(repo repositories.ActivityRepository, logger *zap.Logger, config Config) *Service {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultConfig().BufferSize
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultConfig().WorkerCount
	}

	return &Service{
		repo:        repo,
		logger:      logger,
		events:      make(chan *models.Activity, config.BufferSize),
		workerCount: config.WorkerCount,
		bufferSize:  config.BufferSize,
	}
}

// Start starts the background workers
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("activity service already started")
	}

	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.started = true
	s.logger.Info("started activity service",
		zap.Int("worker_count", s.workerCount),
		zap.Int("buffer_size", s.bufferSize))

	return nil
}

// Stop drains pending events and stops the workers
func (s *Service) Stop(timeout time.Duration) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.started = false
	s.logger.Info("stopping activity service", zap.Int("pending_events", len(s.events)))
	close(s.events)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("activity service stopped gracefully")
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("activity service stop timeout after %v", timeout)
	}
}

// Record queues an activity without blocking the caller
func (s *Service) Record(email string, activityType models.ActivityType, details interface{}) error {
	activity := models.NewActivity(email, activityType).WithDetails(details)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ErrNotStarted
	}

	select {
	case s.events <- activity:
		return nil
	default:
		s.logger.Warn("activity channel full, dropping event",
			zap.String("type", string(activity.Type)))
		return ErrBufferFull
	}
}

// History returns the recorded activities for email, oldest first
func (s *Service) History(ctx context.Context, email string, limit int) ([]*models.Activity, error) {
	history, err := s.repo.ListByEmail(ctx, email, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity history: %w", err)
	}
	return history, nil
}

// Totals counts every activity of email and lists the features used
func (s *Service) Totals(ctx context.Context, email string) (models.ActivityTotals, error) {
	totals, err := s.repo.TotalsByEmail(ctx, email)
	if err != nil {
		return models.ActivityTotals{}, fmt.Errorf("failed to count activity history: %w", err)
	}
	return totals, nil
}

func (s *Service) worker(id int) {
	defer s.wg.Done()

	s.logger.Debug("activity worker started", zap.Int("worker_id", id))

	for activity := range s.events {
		if err := s.persist(activity); err != nil {
			s.logger.Error("failed to record activity",
				zap.Int("worker_id", id),
				zap.Error(err),
				zap.String("type", string(activity.Type)))
		}
	}

	s.logger.Debug("activity worker stopped", zap.Int("worker_id", id))
}

func (s *Service) persist(activity *models.Activity) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.repo.Record(ctx, activity)
}

// GetStats returns statistics about the service
func (s *Service) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		BufferSize:    s.bufferSize,
		PendingEvents: len(s.events),
		WorkerCount:   s.workerCount,
		Started:       s.started,
	}
}

// Stats represents activity service statistics
type Stats struct {
	BufferSize    int
	PendingEvents int
	WorkerCount   int
	Started       bool
}
