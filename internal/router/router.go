package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-ticket-sales/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/movie-ticket-sales/internal/middleware" // import middleware for JWT authentication
)

// Handlers collects every handler the API mounts. All fields must be
// non-nil.
type Handlers struct {
	Auth         *handler.AuthHandler
	Theaters     *handler.TheaterHandler
	Movies       *handler.MovieHandler
	Performances *handler.PerformanceHandler
	Tickets      *handler.TicketHandler
	Admin        *handler.AdminHandler
}

// RegisterRoutes registers the full HTTP surface on the provided Echo
// instance. Everything except the per-user ticket history is open:
// booking itself authenticates per request with the customer's
// credentials, while the history route requires a Bearer token issued
// by login, validated with jwtSecret.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string) {
	// Health check used by load balancers and the test harness.
	e.GET("/ping", handler.Ping)
	// Full reset to the baseline theater set; test isolation only.
	e.POST("/reset", h.Admin.Reset)

	// Customer registry and login.
	e.POST("/users", h.Auth.Register)
	e.POST("/users/login", h.Auth.Login)

	// Theater registry. Capacity is fixed at creation; screenings
	// inherit it.
	e.POST("/theaters", h.Theaters.CreateTheater)
	e.GET("/theaters", h.Theaters.ListTheaters)

	// Movie registry.
	e.POST("/movies", h.Movies.CreateMovie)
	e.GET("/movies", h.Movies.ListMovies)
	e.GET("/movies/:imdbKey", h.Movies.GetMovie)

	// Screenings ("performances" on the wire).
	e.POST("/performances", h.Performances.CreatePerformance)
	e.GET("/performances", h.Performances.ListPerformances)
	e.GET("/performances/:id/seats", h.Performances.GetRemainingSeats)

	// Booking carries credentials in the request body, so it needs no
	// token middleware.
	e.POST("/tickets", h.Tickets.CreateTicket)

	// The ticket history exposes per-user data and is the one route
	// behind JWT auth.
	history := e.Group("/users/:username/tickets")
	history.Use(middleware.JWTAuth(jwtSecret))
	history.GET("", h.Tickets.ListUserTickets)
}
