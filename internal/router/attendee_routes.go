package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/handler"
	"github.com/iliyamo/expo-event-management/internal/middleware"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// RegisterAttendee registers attendee-scoped endpoints under /v1.  All
// routes require a valid JWT and the ATTENDEE role.  Attendees buy and
// refund tickets and leave event feedback; the notice board is shared
// across roles and registered by RegisterNotices.
func RegisterAttendee(e *echo.Echo, t *handler.TicketHandler, fb *handler.FeedbackHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(repository.RoleAttendee),
	)
	g.POST("/tickets", t.Purchase)
	g.GET("/tickets", t.List)
	g.DELETE("/tickets/:id", t.Refund)

	g.POST("/feedback", fb.Submit)
}
