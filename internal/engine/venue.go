package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// Venue grid bounds.  A booth grid is at most 10x10; columns map onto
// the letters A..J.
const (
	MinGridDim = 1
	MaxGridDim = 10
)

// venueRegistryKey serializes operations that span the venue population
// itself (registering a new venue) rather than a single venue.
const venueRegistryKey = "\x00registry"

// CellID builds the canonical booth cell identifier for a zero-based
// grid position: the column letter followed by the one-based row number,
// so cell (0,0) is "A1" and cell (2,1) is "B3".
func CellID(row, col int) string {
	return string(rune('A'+col)) + strconv.Itoa(row+1)
}

// ValidateCell checks a candidate cell ID against a venue's grid.  A
// malformed ID (not letter-then-digits) is ErrInvalidFormat; a
// well-formed ID outside the grid is ErrInvalidRange.
func ValidateCell(v model.Venue, cellID string) error {
	if len(cellID) < 2 || cellID[0] < 'A' || cellID[0] > 'Z' {
		return fmt.Errorf("%w: booth cell must be a letter followed by a row number", model.ErrInvalidFormat)
	}
	num, err := strconv.Atoi(cellID[1:])
	if err != nil {
		return fmt.Errorf("%w: booth cell must be a letter followed by a row number", model.ErrInvalidFormat)
	}
	if int(cellID[0]-'A') >= v.Columns {
		return fmt.Errorf("%w: column %c is beyond the venue grid", model.ErrInvalidRange, cellID[0])
	}
	if num < 1 || num > v.Rows {
		return fmt.Errorf("%w: row %d is beyond the venue grid", model.ErrInvalidRange, num)
	}
	return nil
}

// validateText rejects values that would corrupt the comma-delimited
// stores.  Records contain no embedded commas by design.
func validateText(field, s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s must not be empty", model.ErrInvalidFormat, field)
	}
	if strings.ContainsAny(s, ",\n") {
		return fmt.Errorf("%w: %s must not contain commas or newlines", model.ErrInvalidFormat, field)
	}
	return nil
}

// VenueEngine owns the venue & capacity model: registering venue shells,
// opening an event on a free venue and closing it again with the full
// ledger cascade.
type VenueEngine struct {
	venues   *repository.VenueRepo
	tickets  *repository.TicketRepo
	booths   *repository.BoothRepo
	sessions *repository.SessionRepo
	locks    *VenueLocks
}

// NewVenueEngine wires the venue engine to its stores.
func NewVenueEngine(venues *repository.VenueRepo, tickets *repository.TicketRepo, booths *repository.BoothRepo, sessions *repository.SessionRepo, locks *VenueLocks) *VenueEngine {
	if venues == nil || tickets == nil || booths == nil || sessions == nil || locks == nil {
		panic("nil dependency passed to NewVenueEngine")
	}
	return &VenueEngine{venues: venues, tickets: tickets, booths: booths, sessions: sessions, locks: locks}
}

// List returns every venue record.
func (e *VenueEngine) List() ([]model.Venue, error) { return e.venues.LoadAll() }

// Get returns one venue or repository.ErrVenueNotFound.
func (e *VenueEngine) Get(venueID string) (model.Venue, error) { return e.venues.GetByID(venueID) }

// Register mints a new free venue shell with the next V<n> identifier.
func (e *VenueEngine) Register() (model.Venue, error) {
	unlock := e.locks.Lock(venueRegistryKey)
	defer unlock()

	vs, err := e.venues.LoadAll()
	if err != nil {
		return model.Venue{}, fmt.Errorf("load venues: %w", err)
	}
	ids := make([]string, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, v.ID)
	}
	v := model.Venue{ID: nextID("V", ids), Available: true}
	if err := e.venues.SaveAll(append(vs, v)); err != nil {
		return model.Venue{}, fmt.Errorf("save venues: %w", err)
	}
	return v, nil
}

// EventSpec carries everything an admin supplies when borrowing a venue
// for a new event.  One booth price applies uniformly to every generated
// grid cell; the data model keeps a price per cell regardless.
type EventSpec struct {
	EventName   string
	Rows        int
	Columns     int
	BoothPrice  float64
	TicketTypes []model.TicketType
}

// OpenEvent books a free venue for an event: it validates the whole
// spec, generates the booth grid, installs the ticket types with zeroed
// sold counters and clears the availability flag, all in one venue-store
// write.  Any invalid field aborts with no partial state written.
func (e *VenueEngine) OpenEvent(venueID string, spec EventSpec) (model.Venue, error) {
	if err := validateText("event name", spec.EventName); err != nil {
		return model.Venue{}, err
	}
	if spec.Rows < MinGridDim || spec.Rows > MaxGridDim {
		return model.Venue{}, fmt.Errorf("%w: rows must be between %d and %d", model.ErrInvalidRange, MinGridDim, MaxGridDim)
	}
	if spec.Columns < MinGridDim || spec.Columns > MaxGridDim {
		return model.Venue{}, fmt.Errorf("%w: columns must be between %d and %d", model.ErrInvalidRange, MinGridDim, MaxGridDim)
	}
	if spec.BoothPrice <= 0 {
		return model.Venue{}, fmt.Errorf("%w: booth price must be positive", model.ErrInvalidRange)
	}
	if len(spec.TicketTypes) == 0 {
		return model.Venue{}, fmt.Errorf("%w: at least one ticket type is required", model.ErrInvalidRange)
	}
	for _, t := range spec.TicketTypes {
		if err := validateText("ticket type name", t.Name); err != nil {
			return model.Venue{}, err
		}
		if t.Price <= 0 {
			return model.Venue{}, fmt.Errorf("%w: ticket type %s price must be positive", model.ErrInvalidRange, t.Name)
		}
		if t.Capacity < 0 {
			return model.Venue{}, fmt.Errorf("%w: ticket type %s capacity must not be negative", model.ErrInvalidRange, t.Name)
		}
	}

	unlock := e.locks.Lock(venueID)
	defer unlock()

	vs, err := e.venues.LoadAll()
	if err != nil {
		return model.Venue{}, fmt.Errorf("load venues: %w", err)
	}
	idx := -1
	for i := range vs {
		if vs[i].ID == venueID {
			idx = i
		}
		if vs[i].ID != venueID && !vs[i].Available && vs[i].EventName == spec.EventName {
			// Event names key the ticket ledger; two live events
			// sharing one would cross-wire purchase and closure.
			return model.Venue{}, fmt.Errorf("%w: event name %q is already in use", ErrAlreadyOccupied, spec.EventName)
		}
	}
	if idx < 0 {
		return model.Venue{}, repository.ErrVenueNotFound
	}
	if !vs[idx].Available {
		return model.Venue{}, ErrVenueOccupied
	}

	booked := model.Venue{
		ID:        venueID,
		EventName: spec.EventName,
		Rows:      spec.Rows,
		Columns:   spec.Columns,
		Available: false,
	}
	for _, t := range spec.TicketTypes {
		t.Sold = 0
		booked.TicketTypes = append(booked.TicketTypes, t)
	}
	for row := 0; row < spec.Rows; row++ {
		for col := 0; col < spec.Columns; col++ {
			booked.BoothTypes = append(booked.BoothTypes, model.BoothType{
				CellID: CellID(row, col),
				Price:  spec.BoothPrice,
			})
		}
	}
	vs[idx] = booked
	if err := e.venues.SaveAll(vs); err != nil {
		return model.Venue{}, fmt.Errorf("save venues: %w", err)
	}
	return booked, nil
}

// CloseEvent ends a venue's event: every ticket row for the event, every
// booth row for the venue and every session at the venue is deleted, and
// the venue record is reset to an available shell.  The ledgers are
// rewritten before the venue record; a crash in between leaves orphan-
// free ledgers and a still-booked venue, which a retry of CloseEvent
// resolves.
func (e *VenueEngine) CloseEvent(venueID string) error {
	unlock := e.locks.Lock(venueID)
	defer unlock()

	vs, err := e.venues.LoadAll()
	if err != nil {
		return fmt.Errorf("load venues: %w", err)
	}
	idx := -1
	for i := range vs {
		if vs[i].ID == venueID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return repository.ErrVenueNotFound
	}
	if vs[idx].Available {
		return ErrNoActiveEvent
	}
	eventName := vs[idx].EventName

	tickets, err := e.tickets.LoadAll()
	if err != nil {
		return fmt.Errorf("load tickets: %w", err)
	}
	keptTickets := tickets[:0]
	for _, t := range tickets {
		if t.EventName != eventName {
			keptTickets = append(keptTickets, t)
		}
	}
	if err := e.tickets.SaveAll(keptTickets); err != nil {
		return fmt.Errorf("save tickets: %w", err)
	}

	booths, err := e.booths.LoadAll()
	if err != nil {
		return fmt.Errorf("load booths: %w", err)
	}
	keptBooths := booths[:0]
	for _, b := range booths {
		if b.VenueID != venueID {
			keptBooths = append(keptBooths, b)
		}
	}
	if err := e.booths.SaveAll(keptBooths); err != nil {
		return fmt.Errorf("save booths: %w", err)
	}

	sessions, err := e.sessions.LoadAll()
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	keptSessions := sessions[:0]
	for _, s := range sessions {
		if s.VenueID != venueID {
			keptSessions = append(keptSessions, s)
		}
	}
	if err := e.sessions.SaveAll(keptSessions); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}

	vs[idx] = model.Venue{ID: venueID, Available: true}
	if err := e.venues.SaveAll(vs); err != nil {
		return fmt.Errorf("save venues: %w", err)
	}
	return nil
}
