/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

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
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/records/*   Attendance record CRUD
  /api/settings    Pay-rule configuration
  /api/salary/*    Daily breakdowns and monthly summaries
  /api/document    Snapshot export/import for remote sync

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
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
		// Record routes
		r.Route("/records", func(r chi.Router) {
			r.Get("/", h.ListRecords)
			r.Put("/", h.UpsertRecord)
			r.Post("/", h.UpsertRecord) // upsert either way
			r.Get("/{date}", h.GetRecord)
			r.Delete("/{date}", h.DeleteRecord)
		})

		// Settings routes
		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.PutSettings)

		// Salary routes
		r.Route("/salary", func(r chi.Router) {
			r.Get("/daily/{date}", h.GetDailyBreakdown)
			r.Get("/months", h.ListMonths)
			r.Get("/month/{month}", h.GetMonthlySummary)
		})

		// Document snapshot routes
		r.Get("/document", h.ExportDocument)
		r.Put("/document", h.ImportDocument)
	})

	return r
}
