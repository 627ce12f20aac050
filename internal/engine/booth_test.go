package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

func TestBookBoothWritesLedgerAndCache(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())

	b, err := r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.Booth{
		OwnerEmail: "corp@example.com",
		VenueID:    v.ID,
		CellID:     "A1",
		Rented:     true,
		Amount:     100,
	}, b)

	got, err := r.venueEngine.Get(v.ID)
	require.NoError(t, err)
	assert.True(t, got.BoothType("A1").Rented)
	assert.False(t, got.BoothType("B1").Rented)
}

func TestBookBoothRejections(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())
	shell, err := r.venueEngine.Register()
	require.NoError(t, err)

	tests := []struct {
		name    string
		venueID string
		cell    string
		wantErr error
	}{
		{name: "unknown venue", venueID: "V9", cell: "A1", wantErr: repository.ErrVenueNotFound},
		{name: "free venue", venueID: shell.ID, cell: "A1", wantErr: ErrNoActiveEvent},
		{name: "malformed cell", venueID: v.ID, cell: "1A", wantErr: model.ErrInvalidFormat},
		{name: "cell out of grid", venueID: v.ID, cell: "C1", wantErr: model.ErrInvalidRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.boothEngine.Book(tc.venueID, tc.cell, "corp@example.com")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestDoubleBookingLeavesLedgerUntouched(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())
	_, err := r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)

	_, err = r.boothEngine.Book(v.ID, "A1", "rival@example.com")
	assert.ErrorIs(t, err, ErrAlreadyOccupied)

	ledger, err := r.booths.LoadAll()
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "corp@example.com", ledger[0].OwnerEmail)
}

func TestBoothRefundFlagsRowInPlace(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())
	_, err := r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)

	refunded, err := r.boothEngine.Refund(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)
	assert.False(t, refunded.Rented)
	assert.Equal(t, 100.0, refunded.Amount)

	// Unlike ticket refunds, the row survives with a cleared flag.
	ledger, err := r.booths.LoadAll()
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.False(t, ledger[0].Rented)

	// The venue's cached flag is cleared too.
	got, err := r.venueEngine.Get(v.ID)
	require.NoError(t, err)
	assert.False(t, got.BoothType("A1").Rented)

	// And the audit log captured the release.
	raw, err := os.ReadFile(filepath.Join(r.dir, repository.BoothRefundFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "corp@example.com,V1,A1,0,100.00,REFUNDED", lines[0])
}

func TestRefundedCellCanBeRebooked(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())
	_, err := r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)
	_, err = r.boothEngine.Refund(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)

	b, err := r.boothEngine.Book(v.ID, "A1", "rival@example.com")
	require.NoError(t, err)
	assert.True(t, b.Rented)

	ledger, err := r.booths.LoadAll()
	require.NoError(t, err)
	assert.Len(t, ledger, 2) // old refunded row plus the new rental
}

func TestBoothRefundChecksOwnership(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())
	_, err := r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)

	_, err = r.boothEngine.Refund(v.ID, "A1", "rival@example.com")
	assert.ErrorIs(t, err, repository.ErrBoothNotFound)
	_, err = r.boothEngine.Refund(v.ID, "B1", "corp@example.com")
	assert.ErrorIs(t, err, repository.ErrBoothNotFound)
}

func TestLayoutDerivesOccupancyFromLedger(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())
	_, err := r.boothEngine.Book(v.ID, "B2", "corp@example.com")
	require.NoError(t, err)

	grid, err := r.boothEngine.Layout(v.ID)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 2)
	assert.Equal(t, "A1", grid[0][0].CellID)
	assert.Equal(t, "B2", grid[1][1].CellID)
	assert.True(t, grid[1][1].Occupied)
	assert.False(t, grid[0][0].Occupied)
	assert.Equal(t, 100.0, grid[0][1].Price)
}

func TestLayoutOnFreeVenue(t *testing.T) {
	r := newTestRig(t)
	shell, err := r.venueEngine.Register()
	require.NoError(t, err)
	_, err = r.boothEngine.Layout(shell.ID)
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}
