/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/employees/*      Directory, attendance, goals, achievements
  /api/leaves/*         Leave request decisions
  /api/goals/*          Goal mutations
  /api/admin/*          Summary, exports, sheets sync

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)

			// Attendance
			r.Post("/{id}/check-in", h.CheckIn)
			r.Post("/{id}/check-out", h.CheckOut)
			r.Post("/{id}/breaks/start", h.StartBreak)
			r.Post("/{id}/breaks/end", h.EndBreak)
			r.Post("/{id}/notes", h.AddNote)
			r.Get("/{id}/today", h.GetToday)
			r.Get("/{id}/records", h.GetRecords)
			r.Get("/{id}/stats", h.GetStats)
			r.Get("/{id}/short-leave", h.GetShortLeave)

			// Leave, goals, achievements
			r.Get("/{id}/leaves", h.ListLeaves)
			r.Post("/{id}/leaves", h.SubmitLeave)
			r.Get("/{id}/goals", h.ListGoals)
			r.Post("/{id}/goals", h.AddGoal)
			r.Get("/{id}/achievements", h.ListAchievements)
		})

		// Leave decision routes
		r.Route("/leaves", func(r chi.Router) {
			r.Get("/pending", h.ListPendingLeaves)
			r.Post("/{id}/approve", h.ApproveLeave)
			r.Post("/{id}/reject", h.RejectLeave)
			r.Delete("/{id}", h.DeleteLeave)
		})

		// Goal mutation routes
		r.Route("/goals", func(r chi.Router) {
			r.Put("/{id}/progress", h.UpdateGoalProgress)
			r.Delete("/{id}", h.DeleteGoal)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Get("/summary", h.AdminSummary)
			r.Get("/export.csv", h.ExportCSV)
			r.Get("/export.xlsx", h.ExportXLSX)

			r.Route("/sheets", func(r chi.Router) {
				r.Get("/config", h.GetSheetsConfig)
				r.Put("/config", h.PutSheetsConfig)
				r.Post("/test", h.TestSheets)
				r.Post("/sync", h.SyncSheets)
				r.Get("/status", h.SheetsStatus)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	return r
}
