package model

import "fmt"

// Session is an exhibitor-owned scheduled time block within a venue.
// Within one venue no two sessions may overlap, and an exhibitor holds at
// most one session per venue.
//
// Persisted layout: sessionID,venueID,exhibitorEmail,topic,timeSlot
type Session struct {
	ID             string // "S<n>", allocated max-suffix+1, never reused
	VenueID        string
	ExhibitorEmail string
	Topic          string
	Slot           TimeSlot
}

// EncodeSession flattens a session row.
func EncodeSession(s Session) []string {
	return []string{s.ID, s.VenueID, s.ExhibitorEmail, s.Topic, s.Slot.String()}
}

// DecodeSession parses a session row.
func DecodeSession(fields []string) (Session, error) {
	if len(fields) != 5 {
		return Session{}, fmt.Errorf("session record has %d fields, want 5", len(fields))
	}
	slot, err := ParseTimeSlot(fields[4])
	if err != nil {
		return Session{}, fmt.Errorf("session time slot: %w", err)
	}
	return Session{
		ID:             fields[0],
		VenueID:        fields[1],
		ExhibitorEmail: fields[2],
		Topic:          fields[3],
		Slot:           slot,
	}, nil
}
