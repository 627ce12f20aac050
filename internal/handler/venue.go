package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/engine"
	"github.com/iliyamo/expo-event-management/internal/model"
)

// VenueHandler serves venue browsing for everyone and venue/event
// administration for admins.
type VenueHandler struct {
	Venues   *engine.VenueEngine
	Booths   *engine.BoothEngine
	Sessions *engine.SessionScheduler
	Reports  *engine.Reporter
}

func NewVenueHandler(v *engine.VenueEngine, b *engine.BoothEngine, s *engine.SessionScheduler, r *engine.Reporter) *VenueHandler {
	return &VenueHandler{Venues: v, Booths: b, Sessions: s, Reports: r}
}

// ----- DTOs -----

type ticketTypeSpec struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

type openEventReq struct {
	EventName   string           `json:"event_name"`
	Rows        int              `json:"rows"`
	Columns     int              `json:"columns"`
	BoothPrice  float64          `json:"booth_price"`
	TicketTypes []ticketTypeSpec `json:"ticket_types"`
}

type ticketTypeResp struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Capacity  int     `json:"capacity"`
	Sold      int     `json:"sold"`
	Remaining int     `json:"remaining"`
}

type venueResp struct {
	ID          string           `json:"id"`
	EventName   string           `json:"event_name,omitempty"`
	Rows        int              `json:"rows"`
	Columns     int              `json:"columns"`
	Available   bool             `json:"available"`
	TicketTypes []ticketTypeResp `json:"ticket_types,omitempty"`
}

func toVenueResp(v model.Venue) venueResp {
	out := venueResp{
		ID:        v.ID,
		EventName: v.EventName,
		Rows:      v.Rows,
		Columns:   v.Columns,
		Available: v.Available,
	}
	for _, t := range v.TicketTypes {
		out.TicketTypes = append(out.TicketTypes, ticketTypeResp{
			Name:      t.Name,
			Price:     t.Price,
			Capacity:  t.Capacity,
			Sold:      t.Sold,
			Remaining: t.Remaining(),
		})
	}
	return out
}

type sessionResp struct {
	ID             string `json:"id"`
	VenueID        string `json:"venue_id"`
	ExhibitorEmail string `json:"exhibitor_email"`
	Topic          string `json:"topic"`
	TimeSlot       string `json:"time_slot"`
}

func toSessionResp(s model.Session) sessionResp {
	return sessionResp{
		ID:             s.ID,
		VenueID:        s.VenueID,
		ExhibitorEmail: s.ExhibitorEmail,
		Topic:          s.Topic,
		TimeSlot:       s.Slot.String(),
	}
}

// ----- Public browsing -----

// List returns every venue with its current event, if any.
func (h *VenueHandler) List(c echo.Context) error {
	vs, err := h.Venues.List()
	if err != nil {
		return bookingError(c, err)
	}
	out := make([]venueResp, 0, len(vs))
	for _, v := range vs {
		out = append(out, toVenueResp(v))
	}
	return c.JSON(http.StatusOK, echo.Map{"venues": out})
}

// Get returns one venue by ID.
func (h *VenueHandler) Get(c echo.Context) error {
	v, err := h.Venues.Get(c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, toVenueResp(v))
}

// Layout renders the venue's booth grid with per-cell price and occupancy.
func (h *VenueHandler) Layout(c echo.Context) error {
	grid, err := h.Booths.Layout(c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"venue_id": c.Param("id"), "layout": grid})
}

// SessionsByVenue lists the scheduled sessions at one venue.
func (h *VenueHandler) SessionsByVenue(c echo.Context) error {
	ss, err := h.Sessions.ListByVenue(c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	out := make([]sessionResp, 0, len(ss))
	for _, s := range ss {
		out = append(out, toSessionResp(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"sessions": out})
}

// ----- Admin -----

// Register creates an empty venue shell that an event can later be
// opened at.
func (h *VenueHandler) Register(c echo.Context) error {
	v, err := h.Venues.Register()
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, toVenueResp(v))
}

// OpenEvent books a free venue for an event: grid dimensions, booth
// price and ticket types all land in one write.
func (h *VenueHandler) OpenEvent(c echo.Context) error {
	var req openEventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	spec := engine.EventSpec{
		EventName:  strings.TrimSpace(req.EventName),
		Rows:       req.Rows,
		Columns:    req.Columns,
		BoothPrice: req.BoothPrice,
	}
	for _, t := range req.TicketTypes {
		spec.TicketTypes = append(spec.TicketTypes, model.TicketType{
			Name:     strings.TrimSpace(t.Name),
			Price:    t.Price,
			Capacity: t.Capacity,
		})
	}
	v, err := h.Venues.OpenEvent(c.Param("id"), spec)
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, toVenueResp(v))
}

// CloseEvent ends the venue's event and cascades away its tickets,
// booth rentals and sessions.
func (h *VenueHandler) CloseEvent(c echo.Context) error {
	if err := h.Venues.CloseEvent(c.Param("id")); err != nil {
		return bookingError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Report returns the monitoring rollup for one venue's event: ticket
// sales per type, booth occupancy and revenue, scheduled sessions.
func (h *VenueHandler) Report(c echo.Context) error {
	rep, err := h.Reports.Report(c.Param("id"))
	if err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}
