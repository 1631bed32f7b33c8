package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/upb/career-advisor/services"
	"github.com/upb/career-advisor/services/advisor"
	"go.uber.org/zap"
)

// MockAdvisorService is a mock implementation of AdvisorService
type MockAdvisorService struct {
	mock.Mock
}

func (m *MockAdvisorService) ChatQuery(ctx context.Context, query string) (any, error) {
	args := m.Called(ctx, query)
	return args.Get(0), args.Error(1)
}

func (m *MockAdvisorService) AptitudeQuestion(ctx context.Context, role string) any {
	return m.Called(ctx, role).Get(0)
}

func (m *MockAdvisorService) TechnicalQuestion(ctx context.Context, role string) any {
	return m.Called(ctx, role).Get(0)
}

func (m *MockAdvisorService) CodingProblem(ctx context.Context, role string) any {
	return m.Called(ctx, role).Get(0)
}

func (m *MockAdvisorService) InterviewQuestion(ctx context.Context, role string) any {
	return m.Called(ctx, role).Get(0)
}

func (m *MockAdvisorService) AnalyzeInterview(ctx context.Context, role string, history []advisor.InterviewRound, email string) any {
	return m.Called(ctx, role, history, email).Get(0)
}

func (m *MockAdvisorService) PrepRoadmap(role, timeFrame string) advisor.Roadmap {
	return m.Called(role, timeFrame).Get(0).(advisor.Roadmap)
}

func (m *MockAdvisorService) CompanyPrepPlan(ctx context.Context, req advisor.CompanyPrepRequest) (advisor.CompanyPrepResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(advisor.CompanyPrepResult), args.Error(1)
}

func (m *MockAdvisorService) ReportCard(ctx context.Context, reportData any) any {
	return m.Called(ctx, reportData).Get(0)
}

func (m *MockAdvisorService) ReportFromHistory(ctx context.Context, email string) (any, error) {
	args := m.Called(ctx, email)
	return args.Get(0), args.Error(1)
}

func (m *MockAdvisorService) HREmail(ctx context.Context, req advisor.HREmailRequest) any {
	return m.Called(ctx, req).Get(0)
}

func (m *MockAdvisorService) ProfessionalSummary(ctx context.Context, req advisor.SummaryRequest) (advisor.SummaryResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(advisor.SummaryResult), args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response
}

func TestHandleChatQuery(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful query", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)

		mockService.On("ChatQuery", mock.Anything, "which roles fit me?").
			Return(map[string]any{"response": "Try backend roles", "roles": []any{}}, nil)

		w := postJSON(t, handler.HandleChatQuery, "/api/chat-query", ChatQueryRequest{Query: "which roles fit me?"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		data := decodeBody(t, w)
		assert.Equal(t, "Try backend roles", data["response"])
		mockService.AssertExpectations(t)
	})

	t.Run("missing query", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)

		w := postJSON(t, handler.HandleChatQuery, "/api/chat-query", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decodeError(t, w)
		assert.Equal(t, "bad_request", response["error"])
		details := response["details"].(map[string]interface{})
		assert.Equal(t, "query is required", details["query"])
		mockService.AssertNotCalled(t, "ChatQuery", mock.Anything, mock.Anything)
	})

	t.Run("invalid json", func(t *testing.T) {
		handler := NewAdvisorHandler(new(MockAdvisorService), logger)

		w := postJSON(t, handler.HandleChatQuery, "/api/chat-query", `{"query":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		handler := NewAdvisorHandler(new(MockAdvisorService), logger)

		w := postJSON(t, handler.HandleChatQuery, "/api/chat-query", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "request body is empty", decodeError(t, w)["message"])
	})

	t.Run("service validation error", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)

		mockService.On("ChatQuery", mock.Anything, "   ").
			Return(nil, services.WrapFieldValidation("query", "query is required", services.ErrEmptyPrompt))

		w := postJSON(t, handler.HandleChatQuery, "/api/chat-query", ChatQueryRequest{Query: "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]interface{}{"field": "query"}, decodeError(t, w)["details"])
	})
}

func TestHandlePrepQuestions(t *testing.T) {
	logger := zap.NewNop()
	question := map[string]any{"q": "2+2?", "options": []any{"3", "4"}, "correct": "4"}

	tests := []struct {
		name    string
		method  string
		handler func(h *AdvisorHandler) http.HandlerFunc
		reply   any
		field   string
	}{
		{"aptitude", "AptitudeQuestion", func(h *AdvisorHandler) http.HandlerFunc { return h.HandleAptitude }, question, "q"},
		{"technical", "TechnicalQuestion", func(h *AdvisorHandler) http.HandlerFunc { return h.HandleTechnical }, question, "q"},
		{"coding", "CodingProblem", func(h *AdvisorHandler) http.HandlerFunc { return h.HandleCoding }, map[string]any{"problem": "Reverse a list"}, "problem"},
		{"interview", "InterviewQuestion", func(h *AdvisorHandler) http.HandlerFunc { return h.HandleInterview }, map[string]any{"question": "Tell me about yourself"}, "question"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAdvisorService)
			handler := NewAdvisorHandler(mockService, logger)
			mockService.On(tt.method, mock.Anything, "Data Analyst").Return(tt.reply)

			w := postJSON(t, tt.handler(handler), "/api/prep/"+tt.name, PrepRequest{Role: "Data Analyst"})

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, decodeBody(t, w), tt.field)
			mockService.AssertExpectations(t)
		})
	}

	t.Run("struct fallback is encoded", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)
		mockService.On("AptitudeQuestion", mock.Anything, "").
			Return(advisor.MultipleChoice{Question: "Next in 2, 6, 12?", Options: []string{"20", "24"}, Correct: "20"})

		w := postJSON(t, handler.HandleAptitude, "/api/prep/aptitude", map[string]string{})

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)
		assert.Equal(t, "Next in 2, 6, 12?", data["q"])
		assert.Equal(t, "20", data["correct"])
	})
}

func TestHandleAnalyzeInterview(t *testing.T) {
	mockService := new(MockAdvisorService)
	handler := NewAdvisorHandler(mockService, zap.NewNop())

	mockService.On("AnalyzeInterview", mock.Anything, "SDE", mock.MatchedBy(func(h []advisor.InterviewRound) bool {
		return len(h) == 2 && h[0].Round == "Aptitude" && h[0].IsCorrect != nil && *h[0].IsCorrect
	}), "a@b.com").Return(map[string]any{"status": "Hired", "score": 88})

	body := `{"role":"SDE","email":"a@b.com","history":[{"round":"Aptitude","isCorrect":true},{"round":"Coding","problem":"p","solution":"s"}]}`
	w := postJSON(t, handler.HandleAnalyzeInterview, "/api/prep/interview/analyze", body)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)
	assert.Equal(t, "Hired", data["status"])
	mockService.AssertExpectations(t)
}

func TestHandleRoadmap(t *testing.T) {
	mockService := new(MockAdvisorService)
	handler := NewAdvisorHandler(mockService, zap.NewNop())

	mockService.On("PrepRoadmap", "SDE", "1 month").Return(advisor.Roadmap{
		Role:    "SDE",
		Roadmap: []advisor.RoadmapWeek{{Week: "Week 1", Focus: "Foundations", Tasks: []string{"Resume"}}},
	})

	w := postJSON(t, handler.HandleRoadmap, "/api/prep/roadmap", RoadmapRequest{TimeFrame: "1 month", Role: "SDE"})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)
	assert.Equal(t, "SDE", data["role"])
	assert.Len(t, data["roadmap"], 1)

	w = postJSON(t, handler.HandleRoadmap, "/api/prep/roadmap", map[string]string{"role": "SDE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCompanyPrep(t *testing.T) {
	logger := zap.NewNop()

	t.Run("plan generated", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)

		expected := advisor.CompanyPrepRequest{CompanyType: "Product", CompanyName: "Google", TimePeriod: "2 Weeks", Email: "a@b.com"}
		mockService.On("CompanyPrepPlan", mock.Anything, expected).
			Return(advisor.CompanyPrepResult{Success: true, Plan: map[string]any{"weeks": []any{}}}, nil)

		w := postJSON(t, handler.HandleCompanyPrep, "/api/company-prep", CompanyPrepRequest{
			CompanyType: "Product", CompanyName: "Google", TimePeriod: "2 Weeks", Email: "a@b.com",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)
		assert.Equal(t, true, data["success"])
		assert.Contains(t, data, "plan")
		mockService.AssertExpectations(t)
	})

	t.Run("plan failed is still 200", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)

		mockService.On("CompanyPrepPlan", mock.Anything, mock.Anything).
			Return(advisor.CompanyPrepResult{Success: false, Message: advisor.PlanFailedMessage}, nil)

		w := postJSON(t, handler.HandleCompanyPrep, "/api/company-prep", CompanyPrepRequest{CompanyType: "Service", CompanyName: "TCS"})

		assert.Equal(t, http.StatusOK, w.Code)
		data := decodeBody(t, w)
		assert.Equal(t, false, data["success"])
		assert.Equal(t, advisor.PlanFailedMessage, data["message"])
		assert.NotContains(t, data, "plan")
	})

	t.Run("invalid email", func(t *testing.T) {
		handler := NewAdvisorHandler(new(MockAdvisorService), logger)

		w := postJSON(t, handler.HandleCompanyPrep, "/api/company-prep", CompanyPrepRequest{
			CompanyType: "Service", CompanyName: "TCS", Email: "not-an-email",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		details := decodeError(t, w)["details"].(map[string]interface{})
		assert.Equal(t, "email must be a valid email", details["email"])
	})
}

func TestHandleReportAnalyze(t *testing.T) {
	mockService := new(MockAdvisorService)
	handler := NewAdvisorHandler(mockService, zap.NewNop())

	mockService.On("ReportCard", mock.Anything, map[string]interface{}{"resume_score": float64(80)}).
		Return(map[string]any{"readiness_score": 72})

	w := postJSON(t, handler.HandleReportAnalyze, "/api/report/analyze", `{"report_data":{"resume_score":80}}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(72), decodeBody(t, w)["readiness_score"])
	mockService.AssertExpectations(t)

	w = postJSON(t, handler.HandleReportAnalyze, "/api/report/analyze", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleReportFromHistory(t *testing.T) {
	logger := zap.NewNop()

	t.Run("report generated", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)
		mockService.On("ReportFromHistory", mock.Anything, "a@b.com").Return(map[string]any{"readiness_score": 50}, nil)

		w := postJSON(t, handler.HandleReportFromHistory, "/api/report/generate-from-history", HistoryReportRequest{Email: "a@b.com"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("store unavailable", func(t *testing.T) {
		mockService := new(MockAdvisorService)
		handler := NewAdvisorHandler(mockService, logger)
		mockService.On("ReportFromHistory", mock.Anything, "a@b.com").
			Return(nil, services.WrapExternal("failed to load activity history", services.ErrActivityStoreUnavailable))

		w := postJSON(t, handler.HandleReportFromHistory, "/api/report/generate-from-history", HistoryReportRequest{Email: "a@b.com"})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "bad_gateway", decodeError(t, w)["error"])
	})

	t.Run("email required", func(t *testing.T) {
		handler := NewAdvisorHandler(new(MockAdvisorService), logger)

		w := postJSON(t, handler.HandleReportFromHistory, "/api/report/generate-from-history", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleHREmail(t *testing.T) {
	mockService := new(MockAdvisorService)
	handler := NewAdvisorHandler(mockService, zap.NewNop())

	mockService.On("HREmail", mock.Anything, advisor.HREmailRequest{
		HRName: "Ms. Rao", Company: "Infosys", UserName: "Priya", Skills: []string{"Go"}, TargetRole: "SDE",
	}).Return(map[string]any{"email_content": "Hello Ms. Rao"})

	w := postJSON(t, handler.HandleHREmail, "/api/hr-emailer/generate-email", HREmailGenerateRequest{
		HRName: "Ms. Rao", Company: "Infosys", UserName: "Priya", Skills: []string{"Go"}, TargetRole: "SDE",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello Ms. Rao", decodeBody(t, w)["email_content"])
	mockService.AssertExpectations(t)

	w = postJSON(t, handler.HandleHREmail, "/api/hr-emailer/generate-email", HREmailGenerateRequest{
		HRName: "Ms. Rao", Company: "Infosys", UserName: "Priya", TargetRole: "SDE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSummary(t *testing.T) {
	mockService := new(MockAdvisorService)
	handler := NewAdvisorHandler(mockService, zap.NewNop())

	mockService.On("ProfessionalSummary", mock.Anything, advisor.SummaryRequest{Role: "SDE", Skills: []string{"Go", "SQL"}}).
		Return(advisor.SummaryResult{Summary: "Backend engineer."}, nil)

	w := postJSON(t, handler.HandleSummary, "/api/resume/summary", SummaryRequest{Role: "SDE", Skills: []string{"Go", "SQL"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Backend engineer.", decodeBody(t, w)["summary"])

	w = postJSON(t, handler.HandleSummary, "/api/resume/summary", `{"skills":["Go",""]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "skills"))
}
