package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/engine"
	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/queue"
	queue_publisher "github.com/iliyamo/expo-event-management/internal/service"
)

// BoothHandler serves exhibitor booth rental, listing and refunds.
type BoothHandler struct {
	Booths *engine.BoothEngine
	Venues *engine.VenueEngine
}

func NewBoothHandler(b *engine.BoothEngine, v *engine.VenueEngine) *BoothHandler {
	return &BoothHandler{Booths: b, Venues: v}
}

type bookBoothReq struct {
	VenueID string `json:"venue_id"`
	CellID  string `json:"cell_id"`
}

type boothResp struct {
	VenueID string  `json:"venue_id"`
	CellID  string  `json:"cell_id"`
	Rented  bool    `json:"rented"`
	Amount  float64 `json:"amount"`
}

func toBoothResp(b model.Booth) boothResp {
	return boothResp{VenueID: b.VenueID, CellID: b.CellID, Rented: b.Rented, Amount: b.Amount}
}

// eventNameAt looks up the venue's active event name for activity
// events; best-effort only.
func (h *BoothHandler) eventNameAt(venueID string) string {
	v, err := h.Venues.Get(venueID)
	if err != nil {
		return ""
	}
	return v.EventName
}

// Book rents one grid cell at a venue's active event for the caller.
func (h *BoothHandler) Book(c echo.Context) error {
	var req bookBoothReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := userEmail(c)
	b, err := h.Booths.Book(strings.TrimSpace(req.VenueID), strings.TrimSpace(req.CellID), email)
	if err != nil {
		return bookingError(c, err)
	}

	_ = queue_publisher.PublishBookingActivity(c.Request().Context(), queue.BookingActivityEvent{
		Kind:       queue.KindBoothBooked,
		OwnerEmail: email,
		VenueID:    b.VenueID,
		EventName:  h.eventNameAt(b.VenueID),
		CellID:     b.CellID,
		Amount:     b.Amount,
	})

	return c.JSON(http.StatusCreated, toBoothResp(b))
}

// List returns the caller's booth rentals, refunded ones included.
func (h *BoothHandler) List(c echo.Context) error {
	booths, err := h.Booths.ListByOwner(userEmail(c))
	if err != nil {
		return bookingError(c, err)
	}
	out := make([]boothResp, 0, len(booths))
	for _, b := range booths {
		out = append(out, toBoothResp(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"booths": out})
}

// Refund releases one of the caller's rented cells.  The ledger row
// stays behind flagged not-rented; the audit log records the refund
// first.
func (h *BoothHandler) Refund(c echo.Context) error {
	var req bookBoothReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := userEmail(c)
	b, err := h.Booths.Refund(strings.TrimSpace(req.VenueID), strings.TrimSpace(req.CellID), email)
	if err != nil {
		return bookingError(c, err)
	}

	_ = queue_publisher.PublishBookingActivity(c.Request().Context(), queue.BookingActivityEvent{
		Kind:       queue.KindBoothRefunded,
		OwnerEmail: email,
		VenueID:    b.VenueID,
		EventName:  h.eventNameAt(b.VenueID),
		CellID:     b.CellID,
		Amount:     b.Amount,
	})

	return c.JSON(http.StatusOK, echo.Map{"refunded": toBoothResp(b)})
}
