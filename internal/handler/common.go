package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/engine"
	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// userEmail returns the authenticated account email stored by the JWT
// middleware, or "" when the route is unprotected.
func userEmail(c echo.Context) string {
	if v, ok := c.Get("email").(string); ok {
		return v
	}
	return ""
}

// userRole returns the authenticated role stored by the JWT middleware.
func userRole(c echo.Context) string {
	if v, ok := c.Get("role").(string); ok {
		return v
	}
	return ""
}

// bookingError maps domain sentinels to HTTP responses.  Validation
// failures are 400, missing resources 404, business conflicts 409,
// anything else 500.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, model.ErrInvalidFormat), errors.Is(err, model.ErrInvalidRange):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrVenueNotFound),
		errors.Is(err, repository.ErrTicketNotFound),
		errors.Is(err, repository.ErrBoothNotFound),
		errors.Is(err, repository.ErrSessionNotFound),
		errors.Is(err, repository.ErrAnnouncementNotFound),
		errors.Is(err, repository.ErrFeedbackNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, engine.ErrCapacityExceeded),
		errors.Is(err, engine.ErrAlreadyOccupied),
		errors.Is(err, engine.ErrVenueOccupied),
		errors.Is(err, engine.ErrOverlap),
		errors.Is(err, engine.ErrNoActiveEvent),
		errors.Is(err, engine.ErrNoBooth):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
