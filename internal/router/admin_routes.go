package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/handler"
	"github.com/iliyamo/expo-event-management/internal/middleware"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1.  Admins
// register venue shells, open and close events, pull per-venue reports,
// run the notice board and moderate feedback.
func RegisterAdmin(e *echo.Echo, v *handler.VenueHandler, an *handler.AnnouncementHandler, fb *handler.FeedbackHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(repository.RoleAdmin),
	)

	// ---- Venues and events ----
	g.POST("/venues", v.Register)
	g.POST("/venues/:id/event", v.OpenEvent)
	g.DELETE("/venues/:id/event", v.CloseEvent)
	g.GET("/venues/:id/report", v.Report)

	// ---- Notice board ----
	g.POST("/announcements", an.Create)
	g.PUT("/announcements/:index", an.Update)
	g.DELETE("/announcements/:index", an.Delete)

	// ---- Feedback moderation ----
	g.GET("/feedback", fb.List)
	g.DELETE("/feedback", fb.Delete)
}

// RegisterNotices registers the notice-board read endpoint shared by all
// authenticated roles.  The handler filters entries by the caller's
// audience, so one route serves attendees, exhibitors and admins.
func RegisterNotices(e *echo.Echo, an *handler.AnnouncementHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	g.GET("/announcements", an.List)
}
