package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/waytopg/accommodation-service/internal/application"
	"github.com/waytopg/accommodation-service/internal/domain"
)

// Handler is the HTTP adapter entrypoint. Keeping only the application
// dependency here preserves clean adapter boundaries.
type Handler struct {
	service *application.Service
}

// NewHandler constructs an HTTP handler bound to the application service.
func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

// NewRouter registers all routes and the shared middleware stack.
// Centralizing routes here keeps auth composition visible in one place:
// protected groups stack sessionMiddleware then requireRole.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(corsMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", handler.signup)
			r.Post("/login", handler.login)
			// Logout endpoints verify the token themselves instead of going
			// through sessionMiddleware: a second logout with the same token
			// must still succeed after the first removed it from the list.
			r.Post("/logout", handler.logout)
			r.Post("/logout-all", handler.logoutAll)
		})

		r.Get("/accommodations", handler.listAccommodations)
		r.Get("/accommodations/{id}", handler.getAccommodation)

		r.Route("/admin", func(r chi.Router) {
			r.Use(handler.sessionMiddleware)
			r.Use(requireRole(domain.RoleAdmin))
			r.Get("/users", handler.listUsers)
			r.Post("/approve-owner/{id}", handler.approveOwner)
		})

		r.Route("/owner", func(r chi.Router) {
			r.Use(handler.sessionMiddleware)
			r.Use(requireRole(domain.RoleOwner))
			r.Post("/accommodations", handler.createAccommodation)
			r.Get("/accommodations", handler.listOwnerAccommodations)
		})

		r.Route("/student", func(r chi.Router) {
			r.Use(handler.sessionMiddleware)
			r.Use(requireRole(domain.RoleStudent))
			r.Post("/book", handler.createBooking)
			r.Get("/bookings", handler.listBookings)
		})
	})

	return r
}
