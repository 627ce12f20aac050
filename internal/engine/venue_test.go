package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

func TestRegisterMintsSequentialVenueIDs(t *testing.T) {
	r := newTestRig(t)
	v1, err := r.venueEngine.Register()
	require.NoError(t, err)
	v2, err := r.venueEngine.Register()
	require.NoError(t, err)

	assert.Equal(t, "V1", v1.ID)
	assert.Equal(t, "V2", v2.ID)
	assert.True(t, v1.Available)
	assert.Empty(t, v1.EventName)
}

func TestCellID(t *testing.T) {
	assert.Equal(t, "A1", CellID(0, 0))
	assert.Equal(t, "B3", CellID(2, 1))
	assert.Equal(t, "J10", CellID(9, 9))
}

func TestValidateCell(t *testing.T) {
	v := model.Venue{Rows: 1, Columns: 1}
	tests := []struct {
		name    string
		cell    string
		wantErr error
	}{
		{name: "valid corner", cell: "A1"},
		{name: "column out of grid", cell: "B1", wantErr: model.ErrInvalidRange},
		{name: "row out of grid", cell: "A2", wantErr: model.ErrInvalidRange},
		{name: "digit first", cell: "1A", wantErr: model.ErrInvalidFormat},
		{name: "lowercase", cell: "a1", wantErr: model.ErrInvalidFormat},
		{name: "no row number", cell: "A", wantErr: model.ErrInvalidFormat},
		{name: "row zero", cell: "A0", wantErr: model.ErrInvalidRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCell(v, tc.cell)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestOpenEventBuildsGridRowMajor(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())

	assert.False(t, v.Available)
	assert.Equal(t, "TechExpo", v.EventName)
	require.Len(t, v.BoothTypes, 4)
	ids := []string{v.BoothTypes[0].CellID, v.BoothTypes[1].CellID, v.BoothTypes[2].CellID, v.BoothTypes[3].CellID}
	assert.Equal(t, []string{"A1", "B1", "A2", "B2"}, ids)
	for _, b := range v.BoothTypes {
		assert.Equal(t, 100.0, b.Price)
		assert.False(t, b.Rented)
	}
	for _, tt := range v.TicketTypes {
		assert.Zero(t, tt.Sold)
	}
}

func TestOpenEventValidation(t *testing.T) {
	r := newTestRig(t)
	shell, err := r.venueEngine.Register()
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*EventSpec)
		wantErr error
	}{
		{name: "empty name", mutate: func(s *EventSpec) { s.EventName = " " }, wantErr: model.ErrInvalidFormat},
		{name: "comma in name", mutate: func(s *EventSpec) { s.EventName = "a,b" }, wantErr: model.ErrInvalidFormat},
		{name: "rows too small", mutate: func(s *EventSpec) { s.Rows = 0 }, wantErr: model.ErrInvalidRange},
		{name: "rows too big", mutate: func(s *EventSpec) { s.Rows = 11 }, wantErr: model.ErrInvalidRange},
		{name: "columns too big", mutate: func(s *EventSpec) { s.Columns = 11 }, wantErr: model.ErrInvalidRange},
		{name: "free booths", mutate: func(s *EventSpec) { s.BoothPrice = 0 }, wantErr: model.ErrInvalidRange},
		{name: "no ticket types", mutate: func(s *EventSpec) { s.TicketTypes = nil }, wantErr: model.ErrInvalidRange},
		{name: "negative capacity", mutate: func(s *EventSpec) { s.TicketTypes[0].Capacity = -1 }, wantErr: model.ErrInvalidRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := basicSpec()
			tc.mutate(&spec)
			_, err := r.venueEngine.OpenEvent(shell.ID, spec)
			assert.ErrorIs(t, err, tc.wantErr)

			// Nothing was written: the shell is still free.
			got, err := r.venueEngine.Get(shell.ID)
			require.NoError(t, err)
			assert.True(t, got.Available)
		})
	}
}

func TestOpenEventRejectsOccupiedVenue(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())

	spec := basicSpec()
	spec.EventName = "OtherExpo"
	_, err := r.venueEngine.OpenEvent(v.ID, spec)
	assert.ErrorIs(t, err, ErrVenueOccupied)
}

func TestOpenEventRejectsDuplicateLiveEventName(t *testing.T) {
	r := newTestRig(t)
	r.openVenue(t, basicSpec())
	shell, err := r.venueEngine.Register()
	require.NoError(t, err)

	_, err = r.venueEngine.OpenEvent(shell.ID, basicSpec())
	assert.ErrorIs(t, err, ErrAlreadyOccupied)
}

func TestOpenEventUnknownVenue(t *testing.T) {
	r := newTestRig(t)
	_, err := r.venueEngine.OpenEvent("V9", basicSpec())
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)
}

func TestCloseEventCascades(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())

	_, err := r.ticketEngine.Purchase(v.ID, "VIP", 2, "ana@example.com")
	require.NoError(t, err)
	_, err = r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)
	_, err = r.scheduler.Schedule(v.ID, "corp@example.com", "Live demo", "10:00-11:00")
	require.NoError(t, err)

	require.NoError(t, r.venueEngine.CloseEvent(v.ID))

	got, err := r.venueEngine.Get(v.ID)
	require.NoError(t, err)
	assert.True(t, got.Available)
	assert.Empty(t, got.EventName)
	assert.Empty(t, got.TicketTypes)
	assert.Empty(t, got.BoothTypes)

	tickets, err := r.tickets.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, tickets)
	booths, err := r.booths.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, booths)
	sessions, err := r.sessions.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestCloseEventKeepsOtherVenuesData(t *testing.T) {
	r := newTestRig(t)
	v1 := r.openVenue(t, basicSpec())
	spec := basicSpec()
	spec.EventName = "FoodFair"
	v2 := r.openVenue(t, spec)

	_, err := r.ticketEngine.Purchase(v2.ID, "VIP", 1, "ana@example.com")
	require.NoError(t, err)
	_, err = r.boothEngine.Book(v2.ID, "A1", "corp@example.com")
	require.NoError(t, err)

	require.NoError(t, r.venueEngine.CloseEvent(v1.ID))

	tickets, err := r.tickets.LoadAll()
	require.NoError(t, err)
	assert.Len(t, tickets, 1)
	booths, err := r.booths.LoadAll()
	require.NoError(t, err)
	assert.Len(t, booths, 1)
}

func TestCloseEventOnFreeVenue(t *testing.T) {
	r := newTestRig(t)
	shell, err := r.venueEngine.Register()
	require.NoError(t, err)
	assert.ErrorIs(t, r.venueEngine.CloseEvent(shell.ID), ErrNoActiveEvent)
}
