package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/upb/career-advisor/services/activity"
	"github.com/upb/career-advisor/utils"
	"go.uber.org/zap"
)

// Version is reported by the status endpoint; overridden at build time with -ldflags
var Version = "dev"

const (
	checkHealthy       = "healthy"
	checkUnhealthy     = "unhealthy"
	checkDisabled      = "disabled"
	checkConfigured    = "configured"
	checkNoCredentials = "none_configured"
	checkRunning       = "running"
	checkStopped       = "stopped"
)

// AIStatus exposes the read-only configuration of the generation layer
type AIStatus interface {
	CredentialCount() int
	Models() []string
}

// ActivityStats exposes the state of the asynchronous activity recorder
type ActivityStats interface {
	GetStats() activity.Stats
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
	Models    int               `json:"models,omitempty"`
}

// StatusResponse describes the running service
type StatusResponse struct {
	Service     string   `json:"service"`
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Credentials int             `json:"credentials"`
	Models      []string        `json:"models"`
	Activity    *ActivityStatus `json:"activity,omitempty"`
}

// ActivityStatus reports the activity recorder queue
type ActivityStatus struct {
	Running       bool `json:"running"`
	Workers       int  `json:"workers"`
	BufferSize    int  `json:"buffer_size"`
	PendingEvents int  `json:"pending_events"`
}

// HealthHandler handles health-related HTTP requests
type HealthHandler struct {
	db          *sql.DB
	ai          AIStatus
	activities  ActivityStats
	environment string
	logger      *zap.Logger
}

// NewHealthHandler creates a new HealthHandler. db may be nil when the activity
// log is kept in memory.
func NewHealthHandler(db *sql.DB, ai AIStatus, activities ActivityStats, environment string, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:          db,
		ai:          ai,
		activities:  activities,
		environment: environment,
		logger:      logger,
	}
}

// HandleHealth handles GET /healthz
// Basic health check - always returns 200 if service is running
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    checkHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	_ = utils.WriteOK(w, response)
}

// HandleReadiness handles GET /readyz
// A missing credential pool degrades the service but does not make it unready:
// every AI endpoint still answers with its fallback.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	allHealthy := true

	switch {
	case h.db == nil:
		checks["database"] = checkDisabled
	default:
		if err := h.checkDatabase(ctx); err != nil {
			h.logger.Warn("database health check failed", zap.Error(err))
			checks["database"] = checkUnhealthy
			allHealthy = false
		} else {
			checks["database"] = checkHealthy
		}
	}

	models := 0
	if h.ai != nil {
		if h.ai.CredentialCount() > 0 {
			checks["ai_credentials"] = checkConfigured
		} else {
			checks["ai_credentials"] = checkNoCredentials
		}
		models = len(h.ai.Models())
	}

	// A stopped recorder drops every activity, so the instance is draining
	if h.activities != nil {
		if h.activities.GetStats().Started {
			checks["activity_log"] = checkRunning
		} else {
			checks["activity_log"] = checkStopped
			allHealthy = false
		}
	}

	status := checkHealthy
	httpStatus := http.StatusOK
	if !allHealthy {
		status = checkUnhealthy
		httpStatus = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Models:    models,
	}

	if err := utils.WriteJSON(w, httpStatus, utils.SuccessResponse{Data: response}); err != nil {
		h.logger.Error("failed to write readiness response", zap.Error(err))
	}
}

// HandleStatus handles GET /api/v1/status
func (h *HealthHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	response := StatusResponse{
		Service:     "career-advisor",
		Version:     Version,
		Environment: h.environment,
		Models:      []string{},
	}
	if h.ai != nil {
		response.Credentials = h.ai.CredentialCount()
		response.Models = h.ai.Models()
	}
	if h.activities != nil {
		stats := h.activities.GetStats()
		response.Activity = &ActivityStatus{
			Running:       stats.Started,
			Workers:       stats.WorkerCount,
			BufferSize:    stats.BufferSize,
			PendingEvents: stats.PendingEvents,
		}
	}

	_ = utils.WriteOK(w, response)
}

// checkDatabase checks database connectivity
func (h *HealthHandler) checkDatabase(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return err
	}

	var result int
	if err := h.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return err
	}

	return nil
}
