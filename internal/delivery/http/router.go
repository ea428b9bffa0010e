package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"sportevents/internal/delivery/http/controllers"
	"sportevents/internal/delivery/http/middleware"
	"sportevents/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth      *controllers.AuthController
	Dashboard *controllers.DashboardController
	Event     *controllers.EventController
	Venue     *controllers.VenueController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/logout", c.Auth.Logout)

	// Dashboard
	mux.HandleFunc("GET /dashboard", auth(c.Dashboard.Dashboard))
	mux.HandleFunc("DELETE /dashboard/toast", auth(c.Dashboard.ClearToast))

	// Events
	mux.HandleFunc("GET /events", auth(c.Event.ListEvents))
	mux.HandleFunc("POST /events", auth(c.Event.CreateEvent))
	mux.HandleFunc("GET /events/{eventID}", auth(c.Event.GetEvent))
	mux.HandleFunc("PUT /events/{eventID}", auth(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", auth(c.Event.DeleteEvent))

	// Venues
	mux.HandleFunc("GET /venues", auth(c.Venue.ListVenues))
	mux.HandleFunc("POST /venues", auth(c.Venue.CreateVenue))
	mux.HandleFunc("GET /venues/search", auth(c.Venue.SearchVenues))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
