package model

import (
	"fmt"
	"strconv"
)

// Ticket is one ledger row in ticket.txt.  Each purchased unit gets its
// own row so that every ticket is individually refundable.  Amount is the
// price copied from the ticket type at purchase time; later price changes
// never affect issued tickets.
//
// Persisted layout: ownerEmail,ticketID,eventName,ticketTypeName,amount
type Ticket struct {
	OwnerEmail string
	ID         string // "T<n>", allocated max-suffix+1, never reused
	EventName  string
	TypeName   string
	Amount     float64
}

// EncodeTicket flattens a ticket ledger row.
func EncodeTicket(t Ticket) []string {
	return []string{t.OwnerEmail, t.ID, t.EventName, t.TypeName, formatPrice(t.Amount)}
}

// DecodeTicket parses a ticket ledger row.
func DecodeTicket(fields []string) (Ticket, error) {
	if len(fields) != 5 {
		return Ticket{}, fmt.Errorf("ticket record has %d fields, want 5", len(fields))
	}
	amount, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Ticket{}, fmt.Errorf("ticket amount: %w", err)
	}
	return Ticket{
		OwnerEmail: fields[0],
		ID:         fields[1],
		EventName:  fields[2],
		TypeName:   fields[3],
		Amount:     amount,
	}, nil
}
