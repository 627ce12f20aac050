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

// TicketHandler serves attendee ticket purchase, listing and refunds.
type TicketHandler struct {
	Tickets *engine.TicketEngine
}

func NewTicketHandler(t *engine.TicketEngine) *TicketHandler {
	return &TicketHandler{Tickets: t}
}

type purchaseReq struct {
	VenueID  string `json:"venue_id"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type ticketResp struct {
	ID        string  `json:"id"`
	EventName string  `json:"event_name"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
}

func toTicketResp(t model.Ticket) ticketResp {
	return ticketResp{ID: t.ID, EventName: t.EventName, Type: t.TypeName, Amount: t.Amount}
}

// Purchase buys quantity tickets of one type at a venue's active event.
// All-or-nothing: if capacity cannot cover the full quantity, nothing is
// sold.
func (h *TicketHandler) Purchase(c echo.Context) error {
	var req purchaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := userEmail(c)
	tickets, err := h.Tickets.Purchase(strings.TrimSpace(req.VenueID), strings.TrimSpace(req.Type), req.Quantity, email)
	if err != nil {
		return bookingError(c, err)
	}

	out := make([]ticketResp, 0, len(tickets))
	ids := make([]string, 0, len(tickets))
	total := 0.0
	for _, t := range tickets {
		out = append(out, toTicketResp(t))
		ids = append(ids, t.ID)
		total += t.Amount
	}

	// Activity events are best-effort; a broker outage never fails a sale.
	_ = queue_publisher.PublishBookingActivity(c.Request().Context(), queue.BookingActivityEvent{
		Kind:       queue.KindTicketPurchased,
		OwnerEmail: email,
		VenueID:    req.VenueID,
		EventName:  tickets[0].EventName,
		TicketType: tickets[0].TypeName,
		TicketIDs:  ids,
		Amount:     total,
	})

	return c.JSON(http.StatusCreated, echo.Map{"tickets": out})
}

// List returns the caller's tickets.
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.Tickets.ListByOwner(userEmail(c))
	if err != nil {
		return bookingError(c, err)
	}
	out := make([]ticketResp, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResp(t))
	}
	return c.JSON(http.StatusOK, echo.Map{"tickets": out})
}

// Refund cancels one of the caller's tickets.  The ledger row is removed
// and the refund is recorded in the audit log before any money-facing
// state changes.
func (h *TicketHandler) Refund(c echo.Context) error {
	email := userEmail(c)
	t, err := h.Tickets.Refund(c.Param("id"), email)
	if err != nil {
		return bookingError(c, err)
	}

	_ = queue_publisher.PublishBookingActivity(c.Request().Context(), queue.BookingActivityEvent{
		Kind:       queue.KindTicketRefunded,
		OwnerEmail: email,
		EventName:  t.EventName,
		TicketType: t.TypeName,
		TicketIDs:  []string{t.ID},
		Amount:     t.Amount,
	})

	return c.JSON(http.StatusOK, echo.Map{"refunded": toTicketResp(t)})
}
