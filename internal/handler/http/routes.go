package http

import (
	"net/http"

	"github.com/MKhiriev/go-fleet-drivers/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		if h.authMode == config.AuthModeToken {
			r.Get("/testToken", h.issueTestToken)
		}
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authMiddleware())

		r.Post("/api/drivers", h.createDriver)
		r.Get("/drivers", h.listDrivers)
		r.Put("/drivers/{driverId}", h.updateDriver)
		r.Delete("/drivers/{driverId}", h.deleteDriver)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// authMiddleware picks the authentication middleware of the configured mode.
func (h *Handler) authMiddleware() func(http.Handler) http.Handler {
	if h.authMode == config.AuthModeToken {
		return h.auth
	}
	return h.apiKeyAuth
}
