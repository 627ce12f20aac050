// Package queue defines message payloads exchanged over the message broker.
package queue

// Activity kinds published on the booking.activity queue.
const (
	KindTicketPurchased = "ticket.purchased"
	KindTicketRefunded  = "ticket.refunded"
	KindBoothBooked     = "booth.booked"
	KindBoothRefunded   = "booth.refunded"
)

// BookingActivityEvent is published whenever a ticket or booth changes
// hands.  It carries enough information for downstream consumers to log,
// notify, or feed analytics without re-reading the ledgers.
type BookingActivityEvent struct {
	Kind       string  `json:"kind"`                  // one of the Kind* constants
	OwnerEmail string  `json:"owner_email"`           // account the booking belongs to
	VenueID    string  `json:"venue_id,omitempty"`    // V-prefixed venue identifier
	EventName  string  `json:"event_name,omitempty"`  // active event at the venue
	TicketType string  `json:"ticket_type,omitempty"` // set for ticket activity
	TicketIDs  []string `json:"ticket_ids,omitempty"` // T-prefixed ids touched
	CellID     string  `json:"cell_id,omitempty"`     // set for booth activity
	Amount     float64 `json:"amount"`                // money moved by this activity
	At         string  `json:"at"`                    // RFC3339 UTC timestamp
}
