package handlers

import (
	"context"
	"net/http"

	"github.com/upb/career-advisor/internal/observability"
	"github.com/upb/career-advisor/services/advisor"
	"github.com/upb/career-advisor/utils"
	"go.uber.org/zap"
)

// AdvisorService defines the career advice operations served over HTTP
type AdvisorService interface {
	ChatQuery(ctx context.Context, query string) (any, error)
	AptitudeQuestion(ctx context.Context, role string) any
	TechnicalQuestion(ctx context.Context, role string) any
	CodingProblem(ctx context.Context, role string) any
	InterviewQuestion(ctx context.Context, role string) any
	AnalyzeInterview(ctx context.Context, role string, history []advisor.InterviewRound, email string) any
	PrepRoadmap(role, timeFrame string) advisor.Roadmap
	CompanyPrepPlan(ctx context.Context, req advisor.CompanyPrepRequest) (advisor.CompanyPrepResult, error)
	ReportCard(ctx context.Context, reportData any) any
	ReportFromHistory(ctx context.Context, email string) (any, error)
	HREmail(ctx context.Context, req advisor.HREmailRequest) any
	ProfessionalSummary(ctx context.Context, req advisor.SummaryRequest) (advisor.SummaryResult, error)
}

// ChatQueryRequest is the body of POST /api/chat-query
type ChatQueryRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}

// PrepRequest is the body of the /api/prep question endpoints
type PrepRequest struct {
	Role    string                   `json:"role" validate:"max=200"`
	History []advisor.InterviewRound `json:"history"`
	Email   string                   `json:"email,omitempty" validate:"omitempty,email"`
}

// RoadmapRequest is the body of POST /api/prep/roadmap
type RoadmapRequest struct {
	TimeFrame string `json:"time_frame" validate:"required,max=50"`
	Role      string `json:"role" validate:"required,max=200"`
}

// CompanyPrepRequest is the body of POST /api/company-prep
type CompanyPrepRequest struct {
	CompanyType string `json:"company_type" validate:"required,max=50"`
	CompanyName string `json:"company_name" validate:"required,max=200"`
	TimePeriod  string `json:"time_period,omitempty" validate:"max=50"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// ReportCardRequest is the body of POST /api/report/analyze
type ReportCardRequest struct {
	ReportData map[string]interface{} `json:"report_data" validate:"required"`
}

// HistoryReportRequest is the body of POST /api/report/generate-from-history
type HistoryReportRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HREmailGenerateRequest is the body of POST /api/hr-emailer/generate-email
type HREmailGenerateRequest struct {
	HRName     string   `json:"hr_name" validate:"required,max=200"`
	Company    string   `json:"company" validate:"required,max=200"`
	UserName   string   `json:"user_name" validate:"required,max=200"`
	Skills     []string `json:"skills" validate:"required,min=1,max=50,dive,required"`
	TargetRole string   `json:"target_role" validate:"required,max=200"`
	Email      string   `json:"email,omitempty" validate:"omitempty,email"`
}

// SummaryRequest is the body of POST /api/resume/summary
type SummaryRequest struct {
	Role   string   `json:"role" validate:"max=200"`
	Skills []string `json:"skills" validate:"required,min=1,max=50,dive,required"`
	Email  string   `json:"email,omitempty" validate:"omitempty,email"`
}

// AdvisorHandler handles the career advice endpoints
type AdvisorHandler struct {
	service AdvisorService
	logger  *zap.Logger
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(service AdvisorService, logger *zap.Logger) *AdvisorHandler {
	return &AdvisorHandler{
		service: service,
		logger:  logger,
	}
}

// decode reads and validates the body, writing a 400 on failure
func (h *AdvisorHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		HandleValidationError(w, err, h.logger)
		return false
	}
	if err := utils.ValidateStruct(dst); err != nil {
		HandleValidationError(w, err, h.logger)
		return false
	}
	return true
}

// respond writes data as the bare response body; browser clients read the fields directly
func (h *AdvisorHandler) respond(w http.ResponseWriter, r *http.Request, data interface{}) {
	if err := utils.WriteJSON(w, http.StatusOK, data); err != nil {
		observability.FromContext(r.Context(), h.logger).Error("failed to write response", zap.Error(err))
	}
}

// HandleChatQuery handles POST /api/chat-query
func (h *AdvisorHandler) HandleChatQuery(w http.ResponseWriter, r *http.Request) {
	var req ChatQueryRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.ChatQuery(r.Context(), req.Query)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	h.respond(w, r, result)
}

// HandleAptitude handles POST /api/prep/aptitude
func (h *AdvisorHandler) HandleAptitude(w http.ResponseWriter, r *http.Request) {
	var req PrepRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, h.service.AptitudeQuestion(r.Context(), req.Role))
}

// HandleTechnical handles POST /api/prep/technical
func (h *AdvisorHandler) HandleTechnical(w http.ResponseWriter, r *http.Request) {
	var req PrepRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, h.service.TechnicalQuestion(r.Context(), req.Role))
}

// HandleCoding handles POST /api/prep/coding
func (h *AdvisorHandler) HandleCoding(w http.ResponseWriter, r *http.Request) {
	var req PrepRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, h.service.CodingProblem(r.Context(), req.Role))
}

// HandleInterview handles POST /api/prep/interview
func (h *AdvisorHandler) HandleInterview(w http.ResponseWriter, r *http.Request) {
	var req PrepRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, h.service.InterviewQuestion(r.Context(), req.Role))
}

// HandleAnalyzeInterview handles POST /api/prep/interview/analyze
func (h *AdvisorHandler) HandleAnalyzeInterview(w http.ResponseWriter, r *http.Request) {
	var req PrepRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, h.service.AnalyzeInterview(r.Context(), req.Role, req.History, req.Email))
}

// HandleRoadmap handles POST /api/prep/roadmap
func (h *AdvisorHandler) HandleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req RoadmapRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, h.service.PrepRoadmap(req.Role, req.TimeFrame))
}

// HandleCompanyPrep handles POST /api/company-prep
func (h *AdvisorHandler) HandleCompanyPrep(w http.ResponseWriter, r *http.Request) {
	var req CompanyPrepRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.CompanyPrepPlan(r.Context(), advisor.CompanyPrepRequest{
		CompanyType: req.CompanyType,
		CompanyName: req.CompanyName,
		TimePeriod:  req.TimePeriod,
		Email:       req.Email,
	})
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	h.respond(w, r, result)
}

// HandleReportAnalyze handles POST /api/report/analyze
func (h *AdvisorHandler) HandleReportAnalyze(w http.ResponseWriter, r *http.Request) {
	var req ReportCardRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, r, h.service.ReportCard(r.Context(), req.ReportData))
}

// HandleReportFromHistory handles POST /api/report/generate-from-history
func (h *AdvisorHandler) HandleReportFromHistory(w http.ResponseWriter, r *http.Request) {
	var req HistoryReportRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.service.ReportFromHistory(r.Context(), req.Email)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	h.respond(w, r, report)
}

// HandleHREmail handles POST /api/hr-emailer/generate-email
func (h *AdvisorHandler) HandleHREmail(w http.ResponseWriter, r *http.Request) {
	var req HREmailGenerateRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.respond(w, r, h.service.HREmail(r.Context(), advisor.HREmailRequest{
		HRName:     req.HRName,
		Company:    req.Company,
		UserName:   req.UserName,
		Skills:     req.Skills,
		TargetRole: req.TargetRole,
		Email:      req.Email,
	}))
}

// HandleSummary handles POST /api/resume/summary
func (h *AdvisorHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.service.ProfessionalSummary(r.Context(), advisor.SummaryRequest{
		Role:   req.Role,
		Skills: req.Skills,
		Email:  req.Email,
	})
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}
	h.respond(w, r, result)
}
