package engine

import (
	"fmt"

	"github.com/iliyamo/expo-event-management/internal/repository"
)

// Reporter produces read-only rollups over the four stores for one
// venue.  It never mutates anything and takes no locks; a report is a
// point-in-time view and a torn read across two store loads is
// acceptable for monitoring.
type Reporter struct {
	venues   *repository.VenueRepo
	tickets  *repository.TicketRepo
	booths   *repository.BoothRepo
	sessions *repository.SessionRepo
}

// NewReporter wires the reporter to its stores.
func NewReporter(venues *repository.VenueRepo, tickets *repository.TicketRepo, booths *repository.BoothRepo, sessions *repository.SessionRepo) *Reporter {
	if venues == nil || tickets == nil || booths == nil || sessions == nil {
		panic("nil dependency passed to NewReporter")
	}
	return &Reporter{venues: venues, tickets: tickets, booths: booths, sessions: sessions}
}

// TicketTypeReport summarizes sales of one ticket type.
type TicketTypeReport struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Capacity  int     `json:"capacity"`
	Sold      int     `json:"sold"`
	Remaining int     `json:"remaining"`
	Revenue   float64 `json:"revenue"`
}

// SessionReport summarizes one scheduled session.
type SessionReport struct {
	ID             string `json:"id"`
	ExhibitorEmail string `json:"exhibitor_email"`
	Topic          string `json:"topic"`
	TimeSlot       string `json:"time_slot"`
}

// VenueReport is the full monitoring rollup for one venue's event.
type VenueReport struct {
	VenueID       string             `json:"venue_id"`
	EventName     string             `json:"event_name"`
	TicketTypes   []TicketTypeReport `json:"ticket_types"`
	TicketRevenue float64            `json:"ticket_revenue"`
	TotalCells    int                `json:"total_cells"`
	RentedCells   int                `json:"rented_cells"`
	BoothRevenue  float64            `json:"booth_revenue"`
	Sessions      []SessionReport    `json:"sessions"`
}

// Report assembles the rollup for one venue.  Ticket revenue comes from
// the ledger (amounts frozen at purchase time), not sold×current-price,
// so price edits never rewrite history.  Booth occupancy likewise comes
// from the ledger.
func (r *Reporter) Report(venueID string) (VenueReport, error) {
	v, err := r.venues.GetByID(venueID)
	if err != nil {
		return VenueReport{}, err
	}
	if v.Available {
		return VenueReport{}, ErrNoActiveEvent
	}

	rep := VenueReport{
		VenueID:    v.ID,
		EventName:  v.EventName,
		TotalCells: v.Rows * v.Columns,
	}

	tickets, err := r.tickets.LoadAll()
	if err != nil {
		return VenueReport{}, fmt.Errorf("load tickets: %w", err)
	}
	revenueByType := make(map[string]float64)
	for _, t := range tickets {
		if t.EventName == v.EventName {
			revenueByType[t.TypeName] += t.Amount
			rep.TicketRevenue += t.Amount
		}
	}
	for _, tt := range v.TicketTypes {
		rep.TicketTypes = append(rep.TicketTypes, TicketTypeReport{
			Name:      tt.Name,
			Price:     tt.Price,
			Capacity:  tt.Capacity,
			Sold:      tt.Sold,
			Remaining: tt.Remaining(),
			Revenue:   revenueByType[tt.Name],
		})
	}

	booths, err := r.booths.LoadAll()
	if err != nil {
		return VenueReport{}, fmt.Errorf("load booths: %w", err)
	}
	for _, b := range booths {
		if b.VenueID == venueID && b.Rented {
			rep.RentedCells++
			rep.BoothRevenue += b.Amount
		}
	}

	sessions, err := r.sessions.LoadAll()
	if err != nil {
		return VenueReport{}, fmt.Errorf("load sessions: %w", err)
	}
	for _, s := range sessions {
		if s.VenueID == venueID {
			rep.Sessions = append(rep.Sessions, SessionReport{
				ID:             s.ID,
				ExhibitorEmail: s.ExhibitorEmail,
				Topic:          s.Topic,
				TimeSlot:       s.Slot.String(),
			})
		}
	}
	return rep, nil
}
