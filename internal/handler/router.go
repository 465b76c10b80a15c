package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Shivanand-hulikatti/event-management/internal/auth"
)

// NewRouter builds the full route table. Every event and registration
// route sits behind the authenticator and a permission gate matching the
// role-permission table.
func NewRouter(tokens *auth.TokenIssuer, events *EventHandler, authH *AuthHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // structured access log
	r.Use(CORS)

	r.Get("/health", HealthCheck)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(Authenticator(tokens))

		r.Route("/events", func(r chi.Router) {
			r.With(RequirePermission(auth.PermReadEvent)).Get("/", events.ListEvents)
			r.With(RequirePermission(auth.PermReadEvent)).Get("/{id}", events.GetEvent)
			r.With(RequirePermission(auth.PermCreateEvent)).Post("/", events.CreateEvent)
			r.With(RequirePermission(auth.PermUpdateEvent)).Put("/{id}", events.UpdateEvent)
			r.With(RequirePermission(auth.PermDeleteEvent)).Delete("/{id}", events.DeleteEvent)

			r.With(RequirePermission(auth.PermCreateRegistration)).Post("/{id}/registrations", events.Register)
			r.With(RequirePermission(auth.PermReadEventRegistrations)).Get("/{id}/registrations", events.ListRegistrations)
		})

		r.With(RequirePermission(auth.PermDeleteRegistration)).Delete("/registrations/{id}", events.DeleteRegistration)
	})

	return r
}
