package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/engine"
)

// SessionHandler serves exhibitor session scheduling.  An exhibitor
// must hold a booth at the venue to schedule, and may hold at most one
// session per venue.
type SessionHandler struct {
	Sessions *engine.SessionScheduler
}

func NewSessionHandler(s *engine.SessionScheduler) *SessionHandler {
	return &SessionHandler{Sessions: s}
}

type scheduleReq struct {
	VenueID  string `json:"venue_id"`
	Topic    string `json:"topic"`
	TimeSlot string `json:"time_slot"` // HH:MM-HH:MM
}

type updateSessionReq struct {
	Topic    string `json:"topic"`     // empty keeps the current topic
	TimeSlot string `json:"time_slot"` // empty keeps the current slot
}

// Schedule books a presentation slot at a venue the caller exhibits at.
func (h *SessionHandler) Schedule(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s, err := h.Sessions.Schedule(strings.TrimSpace(req.VenueID), userEmail(c),
		strings.TrimSpace(req.Topic), strings.TrimSpace(req.TimeSlot))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, toSessionResp(s))
}

// Update changes the topic and/or slot of the caller's session.
func (h *SessionHandler) Update(c echo.Context) error {
	var req updateSessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	s, err := h.Sessions.Update(c.Param("id"), userEmail(c),
		strings.TrimSpace(req.Topic), strings.TrimSpace(req.TimeSlot))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, toSessionResp(s))
}

// Delete removes the caller's session.
func (h *SessionHandler) Delete(c echo.Context) error {
	if err := h.Sessions.Delete(c.Param("id"), userEmail(c)); err != nil {
		return bookingError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMine returns the caller's sessions across all venues.
func (h *SessionHandler) ListMine(c echo.Context) error {
	ss, err := h.Sessions.ListByOwner(userEmail(c))
	if err != nil {
		return bookingError(c, err)
	}
	out := make([]sessionResp, 0, len(ss))
	for _, s := range ss {
		out = append(out, toSessionResp(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"sessions": out})
}
