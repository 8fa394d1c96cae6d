package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler builds the router. Middleware runs outermost first: panic
// recovery, request id, logging, metrics.
func (s *HTTPServer) Handler() http.Handler {
	root := chi.NewRouter()

	root.Use(
		s.recoverer,
		requestID,
		s.logging,
		s.metrics.middleware,
	)

	root.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", "not found")
	})
	root.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	root.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	root.Route("/api", s.registerRoutes)

	return root
}

func (s *HTTPServer) registerRoutes(r chi.Router) {
	r.Get("/ping", s.ping)

	// auth
	r.Post("/auth/register", s.register)
	r.Post("/auth/login", s.login)
	r.Post("/auth/refreshtoken", s.refreshToken)
	r.Post("/auth/logout", s.logout)

	// catalog
	r.Get("/packages", s.listPackages)
	r.Get("/packages/{id}", s.getPackage)

	// bearer access token required
	r.Group(func(r chi.Router) {
		r.Use(s.accessToken)
		r.Get("/auth/me", s.me)
		r.Post("/orders", s.placeOrder)
		r.Get("/orders", s.listOrders)
	})
}
