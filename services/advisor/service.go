package advisor

import (
	"context"
	"strings"

	"github.com/upb/career-advisor/internal/prompt"
	"github.com/upb/career-advisor/models"
	"github.com/upb/career-advisor/services"
	"github.com/upb/career-advisor/services/decoder"
	"github.com/upb/career-advisor/services/resilience"
	"go.uber.org/zap"
)

const (
	structuredTemperature = 0.5
	creativeTemperature   = 0.7

	// recentActivityCount is how much history feeds a report card
	recentActivityCount = 10
)

// Generator is the resilient AI entry point; *resilience.Orchestrator implements it
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float64, fallback string) string
	GenerateStructured(ctx context.Context, prompt string, temperature float64, fallback any) any
	GenerateValidated(ctx context.Context, prompt string, temperature float64, schema *decoder.Schema, fallback any) any
}

// ActivityLog records and reads the per-email activity history
type ActivityLog interface {
	Record(email string, activityType models.ActivityType, details interface{}) error
	History(ctx context.Context, email string, limit int) ([]*models.Activity, error)
	Totals(ctx context.Context, email string) (models.ActivityTotals, error)
}

// Service builds career-advice prompts and their offline fallbacks
type Service struct {
	generator  Generator
	activities ActivityLog
	bank       *QuestionBank
	logger     *zap.Logger
}

// NewService creates a new advisor service
func NewService(generator Generator, activities ActivityLog, bank *QuestionBank, logger *zap.Logger) *Service {
	if bank == nil {
		bank = NewQuestionBank(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		generator:  generator,
		activities: activities,
		bank:       bank,
		logger:     logger,
	}
}

func roleOrDefault(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return DefaultRole
	}
	return role
}

// record logs an activity when an email is present; failures never fail the request
func (s *Service) record(email string, activityType models.ActivityType, details interface{}) {
	if strings.TrimSpace(email) == "" || s.activities == nil {
		return
	}
	if err := s.activities.Record(email, activityType, details); err != nil {
		s.logger.Warn("failed to record activity",
			zap.String("type", string(activityType)),
			zap.Error(err))
	}
}

// ChatQuery answers a free-form career question
func (s *Service) ChatQuery(ctx context.Context, query string) (any, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, services.WrapFieldValidation("query", "query is required", services.ErrEmptyPrompt)
	}
	if err := prompt.Guard(query); err != nil {
		s.logger.Warn("chat query rejected", zap.Error(err))
		return nil, services.WrapFieldValidation("query", "query rejected", services.ErrUnsafePrompt)
	}
	if prompt.ContainsPII(query) {
		s.logger.Info("redacting contact details from chat query")
		query = prompt.RedactPII(query)
	}
	return s.generator.GenerateValidated(ctx, chatPrompt(query), creativeTemperature, chatSchema, chatFallback()), nil
}

// AptitudeQuestion returns one aptitude multiple choice question
func (s *Service) AptitudeQuestion(ctx context.Context, role string) any {
	return s.generator.GenerateValidated(ctx, aptitudePrompt(roleOrDefault(role)), structuredTemperature,
		multipleChoiceSchema, s.bank.RandomAptitude())
}

// TechnicalQuestion returns one technical multiple choice question
func (s *Service) TechnicalQuestion(ctx context.Context, role string) any {
	return s.generator.GenerateValidated(ctx, technicalPrompt(roleOrDefault(role)), structuredTemperature,
		multipleChoiceSchema, s.bank.RandomTechnical())
}

// CodingProblem returns one coding problem statement
func (s *Service) CodingProblem(ctx context.Context, role string) any {
	return s.generator.GenerateValidated(ctx, codingPrompt(roleOrDefault(role)), structuredTemperature,
		codingSchema, map[string]any{"problem": s.bank.RandomCoding()})
}

// InterviewQuestion returns one behavioral interview question
func (s *Service) InterviewQuestion(ctx context.Context, role string) any {
	return s.generator.GenerateValidated(ctx, interviewPrompt(roleOrDefault(role)), structuredTemperature,
		interviewQuestionSchema, map[string]any{"question": s.bank.RandomInterview()})
}

// AnalyzeInterview turns a finished mock assessment into a performance report
func (s *Service) AnalyzeInterview(ctx context.Context, role string, history []InterviewRound, email string) any {
	role = roleOrDefault(role)
	report := s.generator.GenerateValidated(ctx, interviewAnalysisPrompt(role, history), structuredTemperature,
		interviewReportSchema, interviewReportFallback(s.bank))

	s.record(email, models.ActivityInterviewAnalysis, map[string]any{"role": role, "rounds": len(history)})
	return report
}

// PrepRoadmap returns the static roadmap for a time frame such as "1 month"
func (s *Service) PrepRoadmap(role, timeFrame string) Roadmap {
	role = roleOrDefault(role)
	return Roadmap{Roadmap: roadmapFor(role, timeFrame), Role: role}
}

// CompanyPrepPlan builds a study plan tailored to one company
func (s *Service) CompanyPrepPlan(ctx context.Context, req CompanyPrepRequest) (CompanyPrepResult, error) {
	name := strings.TrimSpace(req.CompanyName)
	if name == "" {
		return CompanyPrepResult{}, services.WrapFieldValidation("company_name", "company_name is required", services.ErrInvalidInput)
	}
	period := strings.TrimSpace(req.TimePeriod)
	if period == "" {
		period = DefaultPrepPeriod
	}

	s.record(req.Email, models.ActivityCompanyPrepPlan, map[string]string{
		"company": name,
		"type":    req.CompanyType,
	})

	plan := s.generator.GenerateValidated(ctx, companyPrepPrompt(req.CompanyType, name, period), creativeTemperature,
		companyPlanSchema, companyPlanFallback(name))

	if plan == nil {
		return CompanyPrepResult{Success: false, Message: "Empty response from AI."}, nil
	}
	if m, ok := plan.(map[string]any); ok {
		if reason, failed := m["error"]; failed {
			message := PlanFailedMessage
			if text, ok := reason.(string); ok && text != "" && !resilience.IsQuotaExceeded(m) {
				message = text
			}
			return CompanyPrepResult{Success: false, Message: message}, nil
		}
	}
	return CompanyPrepResult{Success: true, Plan: plan}, nil
}

// ReportCard analyses arbitrary activity data into a readiness report
func (s *Service) ReportCard(ctx context.Context, reportData any) any {
	if reportData == nil {
		reportData = map[string]any{}
	}
	return s.generator.GenerateValidated(ctx, reportCardPrompt(reportData), creativeTemperature,
		reportCardSchema, reportCardFallback())
}

// ReportFromHistory builds a readiness report from the stored activity history of email
func (s *Service) ReportFromHistory(ctx context.Context, email string) (any, error) {
	if strings.TrimSpace(email) == "" {
		return nil, services.WrapFieldValidation("email", "email is required", services.ErrInvalidEmail)
	}
	if s.activities == nil {
		return nil, services.ErrActivityStoreUnavailable
	}

	totals, err := s.activities.Totals(ctx, email)
	if err != nil {
		return nil, services.WrapExternal("failed to load activity history", err)
	}
	recent, err := s.activities.History(ctx, email, recentActivityCount)
	if err != nil {
		return nil, services.WrapExternal("failed to load activity history", err)
	}

	report := s.ReportCard(ctx, models.Summarize(totals, recent))
	s.record(email, models.ActivityReportCard, map[string]int{"activities": totals.Total})
	return report, nil
}

// HREmail drafts a job application email
func (s *Service) HREmail(ctx context.Context, req HREmailRequest) any {
	email := s.generator.GenerateValidated(ctx, hrEmailPrompt(req), creativeTemperature,
		hrEmailSchema, hrEmailFallback(req))

	s.record(req.Email, models.ActivityHREmail, map[string]string{
		"company": req.Company,
		"role":    req.TargetRole,
	})
	return email
}

// ProfessionalSummary writes a short resume summary as plain text.
// With every model unavailable the busy message is returned.
func (s *Service) ProfessionalSummary(ctx context.Context, req SummaryRequest) (SummaryResult, error) {
	if len(req.Skills) == 0 {
		return SummaryResult{}, services.WrapFieldValidation("skills", "at least one skill is required", services.ErrInvalidInput)
	}
	role := roleOrDefault(req.Role)

	text := s.generator.Generate(ctx, summaryPrompt(role, req.Skills), creativeTemperature, "")

	s.record(req.Email, models.ActivityResumeSummary, map[string]any{"role": role, "skills": len(req.Skills)})
	return SummaryResult{Summary: strings.TrimSpace(text)}, nil
}

