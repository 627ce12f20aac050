package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/handler"
	"github.com/iliyamo/expo-event-management/internal/middleware"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// RegisterExhibitor registers exhibitor-scoped endpoints under /v1.
// All routes require a valid JWT and the EXHIBITOR role.  Exhibitors
// rent and release booth cells and schedule presentation sessions at
// venues where they hold a booth.
func RegisterExhibitor(e *echo.Echo, b *handler.BoothHandler, s *handler.SessionHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(repository.RoleExhibitor),
	)
	// Booth rental works on (venue, cell) pairs carried in the body; a
	// refund flags the ledger row rather than deleting it.
	g.POST("/booths", b.Book)
	g.GET("/booths", b.List)
	g.POST("/booths/refund", b.Refund)

	g.POST("/sessions", s.Schedule)
	g.GET("/sessions", s.ListMine)
	g.PUT("/sessions/:id", s.Update)
	g.PATCH("/sessions/:id", s.Update)
	g.DELETE("/sessions/:id", s.Delete)
}
