package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/upb/career-advisor/app"
	"github.com/upb/career-advisor/middleware"
	"github.com/upb/career-advisor/utils"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(deps.Config.Server.RequestTimeout))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           deps.Config.CORS.MaxAge,
	}))

	health := deps.HealthHandler
	advisor := deps.AdvisorHandler

	// Health check endpoints
	r.Get("/healthz", health.HandleHealth)
	r.Get("/readyz", health.HandleReadiness)

	r.Route("/api", func(r chi.Router) {
		r.Get("/v1/status", health.HandleStatus)

		r.Post("/chat-query", advisor.HandleChatQuery)

		r.Route("/prep", func(r chi.Router) {
			r.Post("/aptitude", advisor.HandleAptitude)
			r.Post("/technical", advisor.HandleTechnical)
			r.Post("/coding", advisor.HandleCoding)
			r.Post("/interview", advisor.HandleInterview)
			r.Post("/interview/analyze", advisor.HandleAnalyzeInterview)
			r.Post("/roadmap", advisor.HandleRoadmap)
		})

		r.Post("/company-prep", advisor.HandleCompanyPrep)

		r.Route("/report", func(r chi.Router) {
			r.Post("/analyze", advisor.HandleReportAnalyze)
			r.Post("/generate-from-history", advisor.HandleReportFromHistory)
		})

		r.Post("/hr-emailer/generate-email", advisor.HandleHREmail)
		r.Post("/resume/summary", advisor.HandleSummary)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteNotFound(w, "endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.WriteError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
	})

	return r
}
