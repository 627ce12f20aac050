package model

import (
	"fmt"
	"strconv"
)

// TicketType is a priced admission category scoped to a venue's current
// event.  Sold is the running sales counter and must stay within
// [0, Capacity] at all times.
//
// Fields:
//  Name     - category name (e.g. "Standard", "VIP").
//  Price    - unit price charged at purchase time.
//  Capacity - maximum number of tickets that may be sold.
//  Sold     - number of tickets sold so far.
type TicketType struct {
	Name     string
	Price    float64
	Capacity int
	Sold     int
}

// Remaining returns how many tickets of this type can still be sold.
func (t TicketType) Remaining() int { return t.Capacity - t.Sold }

// BoothType describes one cell of a venue's booth grid.  The cell ID is
// `<Letter><Number>` where the letter addresses the column and the number
// the row.  The Rented flag is a cached view of occupancy; the booth
// ledger is the authoritative source (see model.Booth).
type BoothType struct {
	CellID string
	Price  float64
	Rented bool
}

// Venue is a bookable physical space with a fixed booth grid, hosting at
// most one event at a time.  When Available is true the venue is free:
// EventName is empty and both type lists are empty.  Opening an event
// populates all four facts atomically; closing resets them atomically.
//
// Fields:
//  ID          - unique venue identifier (e.g. "V1").
//  EventName   - name of the active event, empty when the venue is free.
//  Rows        - booth grid rows, 0 when free, 1-10 when booked.
//  Columns     - booth grid columns, 0 when free, 1-10 when booked.
//  Available   - true when no event occupies the venue.
//  TicketTypes - admission categories of the active event.
//  BoothTypes  - one entry per grid cell (Rows x Columns) when booked.
type Venue struct {
	ID          string
	EventName   string
	Rows        int
	Columns     int
	Available   bool
	TicketTypes []TicketType
	BoothTypes  []BoothType
}

// TicketType returns the venue's ticket type with the given name, or nil.
func (v *Venue) TicketType(name string) *TicketType {
	for i := range v.TicketTypes {
		if v.TicketTypes[i].Name == name {
			return &v.TicketTypes[i]
		}
	}
	return nil
}

// BoothType returns the venue's booth cell entry with the given ID, or nil.
func (v *Venue) BoothType(cellID string) *BoothType {
	for i := range v.BoothTypes {
		if v.BoothTypes[i].CellID == cellID {
			return &v.BoothTypes[i]
		}
	}
	return nil
}

// EncodeVenue flattens a venue into its persisted fields:
//
//	venueID,eventName,rows,columns,ticketTypeCount,boothTypeCount,availableFlag
//	[,type,price,capacity,sold]* [,boothID,price,rentedFlag]*
func EncodeVenue(v Venue) []string {
	fields := []string{
		v.ID,
		v.EventName,
		strconv.Itoa(v.Rows),
		strconv.Itoa(v.Columns),
		strconv.Itoa(len(v.TicketTypes)),
		strconv.Itoa(len(v.BoothTypes)),
		encodeFlag(v.Available),
	}
	for _, t := range v.TicketTypes {
		fields = append(fields, t.Name, formatPrice(t.Price), strconv.Itoa(t.Capacity), strconv.Itoa(t.Sold))
	}
	for _, b := range v.BoothTypes {
		fields = append(fields, b.CellID, formatPrice(b.Price), encodeFlag(b.Rented))
	}
	return fields
}

// DecodeVenue parses the persisted venue fields.  The field count must
// match the embedded type counts exactly; anything else is a corrupt row.
func DecodeVenue(fields []string) (Venue, error) {
	if len(fields) < 7 {
		return Venue{}, fmt.Errorf("venue record has %d fields, want at least 7", len(fields))
	}
	rows, err := strconv.Atoi(fields[2])
	if err != nil {
		return Venue{}, fmt.Errorf("venue rows: %w", err)
	}
	cols, err := strconv.Atoi(fields[3])
	if err != nil {
		return Venue{}, fmt.Errorf("venue columns: %w", err)
	}
	tCount, err := strconv.Atoi(fields[4])
	if err != nil {
		return Venue{}, fmt.Errorf("venue ticket type count: %w", err)
	}
	bCount, err := strconv.Atoi(fields[5])
	if err != nil {
		return Venue{}, fmt.Errorf("venue booth type count: %w", err)
	}
	avail, err := decodeFlag(fields[6])
	if err != nil {
		return Venue{}, fmt.Errorf("venue available flag: %w", err)
	}
	want := 7 + tCount*4 + bCount*3
	if len(fields) != want {
		return Venue{}, fmt.Errorf("venue record has %d fields, want %d", len(fields), want)
	}
	v := Venue{
		ID:        fields[0],
		EventName: fields[1],
		Rows:      rows,
		Columns:   cols,
		Available: avail,
	}
	pos := 7
	for i := 0; i < tCount; i++ {
		price, err := strconv.ParseFloat(fields[pos+1], 64)
		if err != nil {
			return Venue{}, fmt.Errorf("ticket type price: %w", err)
		}
		capacity, err := strconv.Atoi(fields[pos+2])
		if err != nil {
			return Venue{}, fmt.Errorf("ticket type capacity: %w", err)
		}
		sold, err := strconv.Atoi(fields[pos+3])
		if err != nil {
			return Venue{}, fmt.Errorf("ticket type sold: %w", err)
		}
		v.TicketTypes = append(v.TicketTypes, TicketType{
			Name:     fields[pos],
			Price:    price,
			Capacity: capacity,
			Sold:     sold,
		})
		pos += 4
	}
	for i := 0; i < bCount; i++ {
		price, err := strconv.ParseFloat(fields[pos+1], 64)
		if err != nil {
			return Venue{}, fmt.Errorf("booth type price: %w", err)
		}
		rented, err := decodeFlag(fields[pos+2])
		if err != nil {
			return Venue{}, fmt.Errorf("booth type rented flag: %w", err)
		}
		v.BoothTypes = append(v.BoothTypes, BoothType{
			CellID: fields[pos],
			Price:  price,
			Rented: rented,
		})
		pos += 3
	}
	return v, nil
}

func encodeFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func decodeFlag(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, fmt.Errorf("flag must be 0 or 1, got %q", s)
}

// formatPrice writes prices with two decimals, the amount format used
// across every store.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
