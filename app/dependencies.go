package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/upb/career-advisor/config"
	"github.com/upb/career-advisor/handlers"
	"github.com/upb/career-advisor/repositories"
	"github.com/upb/career-advisor/repositories/memory"
	"github.com/upb/career-advisor/repositories/postgres"
	"github.com/upb/career-advisor/services/activity"
	"github.com/upb/career-advisor/services/advisor"
	"github.com/upb/career-advisor/services/providers"
	"github.com/upb/career-advisor/services/providers/gemini"
	"github.com/upb/career-advisor/services/resilience"
	"go.uber.org/zap"
)

// activityStopTimeout bounds how long Close waits for queued activities to drain
const activityStopTimeout = 10 * time.Second

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repositories
	Repositories repositories.Repositories

	// Services
	Activities   *activity.Service
	Provider     providers.Client
	Orchestrator *resilience.Orchestrator
	Advisor      *advisor.Service

	// Handlers
	AdvisorHandler *handlers.AdvisorHandler
	HealthHandler  *handlers.HealthHandler
}

// Option customizes NewDependencies
type Option func(*Dependencies)

// WithProvider replaces the Gemini adapter, mainly for tests
func WithProvider(client providers.Client) Option {
	return func(d *Dependencies) {
		d.Provider = client
	}
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...Option) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}
	for _, opt := range opts {
		opt(deps)
	}

	if err := deps.initRepositories(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := deps.initActivities(); err != nil {
		_ = deps.closeDB()
		return nil, fmt.Errorf("failed to start activity service: %w", err)
	}

	deps.initResilience(cfg)
	deps.initHandlers(cfg)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initRepositories selects PostgreSQL when configured and the in-memory store otherwise
func (d *Dependencies) initRepositories(ctx context.Context, cfg *config.Config) error {
	if !cfg.Database.Enabled() {
		d.Repositories = repositories.Repositories{Activities: memory.NewActivityRepository()}
		d.Logger.Warn("database not configured, activity history kept in memory")
		return nil
	}

	db, err := postgres.NewDB(cfg.Database, d.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.InitSchema(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	d.DB = db
	d.Repositories = repositories.Repositories{Activities: postgres.NewActivityRepository(db, d.Logger)}
	return nil
}

func (d *Dependencies) initActivities() error {
	d.Activities = activity.NewService(d.Repositories.Activities, d.Logger, activity.DefaultConfig())
	return d.Activities.Start()
}

// initResilience builds the provider client, credential pool and orchestrator
func (d *Dependencies) initResilience(cfg *config.Config) {
	if d.Provider == nil {
		d.Provider = gemini.NewAdapter(gemini.Config{
			BaseURL: cfg.AI.BaseURL,
			Timeout: cfg.AI.Timeout,
		})
	}

	if !cfg.AI.HasCredentials() {
		d.Logger.Warn("no AI credentials configured, AI endpoints will serve fallbacks")
	}

	pool := resilience.NewCredentialPool(cfg.AI.APIKeys)
	policy := resilience.Policy{
		MaxRetries: cfg.AI.MaxRetries,
		Backoff:    cfg.AI.RetryBackoff,
	}

	d.Orchestrator = resilience.NewOrchestrator(
		d.Provider,
		pool,
		resilience.NewModelPriorityList(cfg.AI.Models),
		policy,
		resilience.WithLogger(d.Logger),
	)

	d.Logger.Info("resilience layer initialized",
		zap.String("provider", d.Provider.Name()),
		zap.Int("credentials", pool.Len()),
		zap.Strings("models", cfg.AI.Models),
		zap.Int("max_retries", policy.MaxRetries),
		zap.Duration("retry_backoff", policy.Backoff))
}

func (d *Dependencies) initHandlers(cfg *config.Config) {
	d.Advisor = advisor.NewService(d.Orchestrator, d.Activities, advisor.NewQuestionBank(nil), d.Logger)
	d.AdvisorHandler = handlers.NewAdvisorHandler(d.Advisor, d.Logger)
	d.HealthHandler = handlers.NewHealthHandler(d.SQLDB(), d.Orchestrator, d.Activities, cfg.Environment, d.Logger)
}

// SQLDB returns the underlying database handle, or nil when running without PostgreSQL
func (d *Dependencies) SQLDB() *sql.DB {
	if d.DB == nil {
		return nil
	}
	return d.DB.DB
}

func (d *Dependencies) closeDB() error {
	if d.DB == nil {
		return nil
	}
	err := d.DB.Close()
	d.DB = nil
	return err
}

// Close gracefully shuts down all dependencies
func (d *Dependencies) Close(ctx context.Context) error {
	d.Logger.Info("shutting down dependencies")

	var errs []error

	// Drain queued activities before the database goes away
	if d.Activities != nil {
		timeout := activityStopTimeout
		if deadline, ok := ctx.Deadline(); ok {
			timeout = time.Until(deadline)
		}
		if err := d.Activities.Stop(timeout); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop activity service: %w", err))
		}
	}

	if err := d.closeDB(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}

	// Sync logger
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during shutdown: %v", errs)
	}

	return nil
}
