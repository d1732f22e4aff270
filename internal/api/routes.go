package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures the router: health plus the intake API.
// corsOrigins is the explicit browser-origin allow list; the registration
// form is served from a different origin than this API.
func SetupRoutes(h *Handlers, hc *HealthChecker, corsOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", hc.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.HandleRegister)
		r.Get("/check-registration", h.HandleCheckRegistration)
		r.Post("/orders", h.HandleCreateOrder)
	})

	return r
}
