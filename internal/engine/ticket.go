package engine

import (
	"fmt"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// TicketEngine sells and refunds tickets against a venue's ticket type
// capacities.
type TicketEngine struct {
	venues  *repository.VenueRepo
	tickets *repository.TicketRepo
	refunds *repository.TicketRefundLog
	locks   *VenueLocks
}

// NewTicketEngine wires the ticket engine to its stores.
func NewTicketEngine(venues *repository.VenueRepo, tickets *repository.TicketRepo, refunds *repository.TicketRefundLog, locks *VenueLocks) *TicketEngine {
	if venues == nil || tickets == nil || refunds == nil || locks == nil {
		panic("nil dependency passed to NewTicketEngine")
	}
	return &TicketEngine{venues: venues, tickets: tickets, refunds: refunds, locks: locks}
}

// Purchase sells quantity tickets of one type to the buyer.  Each unit
// becomes its own ledger row with its own sequential T<n> ID so it can
// be refunded individually; the type's sold counter moves by quantity in
// the same operation.  The ticket ledger is written before the venue
// store; a crash between the two writes leaves sold undercounting the
// ledger, the documented gap of the whole-file-rewrite strategy.
func (e *TicketEngine) Purchase(venueID, typeName string, quantity int, buyerEmail string) ([]model.Ticket, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", model.ErrInvalidRange)
	}

	unlock := e.locks.Lock(venueID)
	defer unlock()

	vs, err := e.venues.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load venues: %w", err)
	}
	idx := -1
	for i := range vs {
		if vs[i].ID == venueID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, repository.ErrVenueNotFound
	}
	if vs[idx].Available {
		return nil, ErrNoActiveEvent
	}
	tt := vs[idx].TicketType(typeName)
	if tt == nil {
		return nil, fmt.Errorf("%w: no ticket type %q", repository.ErrTicketNotFound, typeName)
	}
	if quantity > tt.Remaining() {
		return nil, fmt.Errorf("%w: %d requested, %d remaining", ErrCapacityExceeded, quantity, tt.Remaining())
	}

	ledger, err := e.tickets.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	ids := make([]string, 0, len(ledger))
	for _, t := range ledger {
		ids = append(ids, t.ID)
	}
	issued := make([]model.Ticket, 0, quantity)
	for i := 0; i < quantity; i++ {
		t := model.Ticket{
			OwnerEmail: buyerEmail,
			ID:         nextID("T", ids),
			EventName:  vs[idx].EventName,
			TypeName:   tt.Name,
			Amount:     tt.Price,
		}
		ids = append(ids, t.ID)
		issued = append(issued, t)
	}
	tt.Sold += quantity

	if err := e.tickets.SaveAll(append(ledger, issued...)); err != nil {
		return nil, fmt.Errorf("save tickets: %w", err)
	}
	if err := e.venues.SaveAll(vs); err != nil {
		return nil, fmt.Errorf("save venues: %w", err)
	}
	return issued, nil
}

// ListByOwner returns the buyer's tickets.
func (e *TicketEngine) ListByOwner(ownerEmail string) ([]model.Ticket, error) {
	ledger, err := e.tickets.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}
	var mine []model.Ticket
	for _, t := range ledger {
		if t.OwnerEmail == ownerEmail {
			mine = append(mine, t)
		}
	}
	return mine, nil
}

// Refund reverses one purchase unit: the audit row is appended first,
// then the ledger row is deleted outright and the type's sold counter
// decremented (floored at zero; the capacity invariant means it never
// actually hits the floor).  Ticket rows vanish on refund while booth
// rows survive with a cleared flag; the asymmetry is inherited behaviour
// kept deliberately.
func (e *TicketEngine) Refund(ticketID, ownerEmail string) (model.Ticket, error) {
	ledger, err := e.tickets.LoadAll()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("load tickets: %w", err)
	}
	found := -1
	for i, t := range ledger {
		if t.ID == ticketID && t.OwnerEmail == ownerEmail {
			found = i
			break
		}
	}
	if found < 0 {
		return model.Ticket{}, repository.ErrTicketNotFound
	}
	refunded := ledger[found]

	// The ticket row does not carry the venue ID, so resolve it through
	// the event name before taking the venue lock.
	vs, err := e.venues.LoadAll()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("load venues: %w", err)
	}
	venueID := ""
	for i := range vs {
		if !vs[i].Available && vs[i].EventName == refunded.EventName {
			venueID = vs[i].ID
			break
		}
	}

	unlock := e.locks.Lock(venueID)
	defer unlock()

	// Reload under the lock; another refund may have raced us up to here.
	ledger, err = e.tickets.LoadAll()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("load tickets: %w", err)
	}
	found = -1
	for i, t := range ledger {
		if t.ID == ticketID && t.OwnerEmail == ownerEmail {
			found = i
			break
		}
	}
	if found < 0 {
		return model.Ticket{}, repository.ErrTicketNotFound
	}
	refunded = ledger[found]

	if err := e.refunds.Append(repository.TicketRefundAudit{
		OwnerEmail: refunded.OwnerEmail,
		TicketID:   refunded.ID,
		EventName:  refunded.EventName,
		TypeName:   refunded.TypeName,
		Amount:     refunded.Amount,
	}); err != nil {
		return model.Ticket{}, fmt.Errorf("append refund audit: %w", err)
	}

	ledger = append(ledger[:found], ledger[found+1:]...)
	if err := e.tickets.SaveAll(ledger); err != nil {
		return model.Ticket{}, fmt.Errorf("save tickets: %w", err)
	}

	vs, err = e.venues.LoadAll()
	if err != nil {
		return model.Ticket{}, fmt.Errorf("load venues: %w", err)
	}
	for i := range vs {
		if vs[i].Available || vs[i].EventName != refunded.EventName {
			continue
		}
		if tt := vs[i].TicketType(refunded.TypeName); tt != nil && tt.Sold > 0 {
			tt.Sold--
		}
		if err := e.venues.SaveAll(vs); err != nil {
			return model.Ticket{}, fmt.Errorf("save venues: %w", err)
		}
		break
	}
	return refunded, nil
}
