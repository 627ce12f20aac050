package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/expo-event-management/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/expo-event-management/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Used by load balancers and monitoring to verify the service is up.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication‑related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout does not require JWT authentication: a valid refresh token in
	// the body is enough to terminate that session, and a bearer token with
	// no body token terminates every session for the account.
	g.POST("/logout", a.Logout)

	// Any authenticated role can ask who it is.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints.  Guests can
// inspect venues, booth layouts and session schedules before signing up.
// The response cache is mounted here and nowhere else: these responses are
// identical for every caller, while the authenticated listings under
// /v1/tickets and friends are per-account and must never be replayed
// across users.
func RegisterPublic(e *echo.Echo, v *handler.VenueHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/venues")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("", v.List)
	g.GET("/:id", v.Get)
	// Booth grid with per-cell price and occupancy, derived from the
	// rental ledger.
	g.GET("/:id/layout", v.Layout)
	g.GET("/:id/sessions", v.SessionsByVenue)
}
