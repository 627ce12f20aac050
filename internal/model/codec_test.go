package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueCodecRoundTrip(t *testing.T) {
	v := Venue{
		ID:        "V3",
		EventName: "TechExpo 2026",
		Rows:      2,
		Columns:   3,
		Available: false,
		TicketTypes: []TicketType{
			{Name: "VIP", Price: 150, Capacity: 20, Sold: 5},
			{Name: "Standard", Price: 49.5, Capacity: 200, Sold: 137},
		},
		BoothTypes: []BoothType{
			{CellID: "A1", Price: 300, Rented: true},
			{CellID: "B1", Price: 300, Rented: false},
		},
	}
	got, err := DecodeVenue(EncodeVenue(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestVenueCodecFreeShell(t *testing.T) {
	v := Venue{ID: "V1", Available: true}
	got, err := DecodeVenue(EncodeVenue(v))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestDecodeVenueRejectsBadRows(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
	}{
		{name: "too few fields", fields: []string{"V1", "", "0"}},
		{name: "count mismatch", fields: []string{"V1", "Expo", "1", "1", "2", "0", "false", "VIP", "10.00", "5", "0"}},
		{name: "bad flag", fields: []string{"V1", "", "0", "0", "0", "0", "maybe"}},
		{name: "bad number", fields: []string{"V1", "", "x", "0", "0", "0", "true"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeVenue(tc.fields)
			assert.Error(t, err)
		})
	}
}

func TestTicketCodecRoundTrip(t *testing.T) {
	tk := Ticket{OwnerEmail: "ana@example.com", ID: "T12", EventName: "TechExpo 2026", TypeName: "VIP", Amount: 150}
	got, err := DecodeTicket(EncodeTicket(tk))
	require.NoError(t, err)
	assert.Equal(t, tk, got)

	_, err = DecodeTicket([]string{"too", "short"})
	assert.Error(t, err)
}

func TestBoothCodecRoundTrip(t *testing.T) {
	b := Booth{OwnerEmail: "corp@example.com", VenueID: "V2", CellID: "C4", Rented: true, Amount: 420.5}
	got, err := DecodeBooth(EncodeBooth(b))
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestSessionCodecRoundTrip(t *testing.T) {
	s := Session{
		ID:             "S7",
		VenueID:        "V2",
		ExhibitorEmail: "corp@example.com",
		Topic:          "Edge inference in practice",
		Slot:           TimeSlot{Start: 9 * 60, End: 10*60 + 30},
	}
	got, err := DecodeSession(EncodeSession(s))
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestAnnouncementVisibility(t *testing.T) {
	a := Announcement{Index: 1, Audience: AudienceAttendee, Title: "Doors open", Content: "Hall opens at nine"}
	assert.True(t, a.VisibleTo(AudienceAttendee))
	assert.False(t, a.VisibleTo(AudienceExhibitor))
	assert.True(t, a.VisibleTo(AudienceBoth))

	both := Announcement{Index: 2, Audience: AudienceBoth}
	assert.True(t, both.VisibleTo(AudienceAttendee))
	assert.True(t, both.VisibleTo(AudienceExhibitor))
}
