package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/expo-event-management/internal/repository"
)

func TestReportRollsUpLedgers(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())

	_, err := r.ticketEngine.Purchase(v.ID, "VIP", 2, "ana@example.com")
	require.NoError(t, err)
	_, err = r.ticketEngine.Purchase(v.ID, "Standard", 3, "bo@example.com")
	require.NoError(t, err)
	_, err = r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)
	_, err = r.boothEngine.Book(v.ID, "B2", "corp2@example.com")
	require.NoError(t, err)
	_, err = r.scheduler.Schedule(v.ID, "corp@example.com", "Live demo", "10:00-11:00")
	require.NoError(t, err)

	rep, err := r.reporter.Report(v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, rep.VenueID)
	assert.Equal(t, "TechExpo", rep.EventName)

	require.Len(t, rep.TicketTypes, 2)
	vip := rep.TicketTypes[0]
	assert.Equal(t, "VIP", vip.Name)
	assert.Equal(t, 2, vip.Sold)
	assert.Equal(t, 3, vip.Remaining)
	assert.Equal(t, 100.0, vip.Revenue)
	assert.Equal(t, 160.0, rep.TicketRevenue) // 2*50 + 3*20

	assert.Equal(t, 4, rep.TotalCells)
	assert.Equal(t, 2, rep.RentedCells)
	assert.Equal(t, 200.0, rep.BoothRevenue)

	require.Len(t, rep.Sessions, 1)
	assert.Equal(t, "Live demo", rep.Sessions[0].Topic)
	assert.Equal(t, "10:00-11:00", rep.Sessions[0].TimeSlot)
}

func TestReportRevenueSurvivesRefunds(t *testing.T) {
	r := newTestRig(t)
	v := r.openVenue(t, basicSpec())

	issued, err := r.ticketEngine.Purchase(v.ID, "VIP", 2, "ana@example.com")
	require.NoError(t, err)
	_, err = r.ticketEngine.Refund(issued[0].ID, "ana@example.com")
	require.NoError(t, err)
	_, err = r.boothEngine.Book(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)
	_, err = r.boothEngine.Refund(v.ID, "A1", "corp@example.com")
	require.NoError(t, err)

	rep, err := r.reporter.Report(v.ID)
	require.NoError(t, err)
	// Refunded tickets leave the ledger, so their revenue is gone.
	assert.Equal(t, 50.0, rep.TicketRevenue)
	assert.Equal(t, 1, rep.TicketTypes[0].Sold)
	// A refunded booth row stays in the ledger flagged not-rented.
	assert.Equal(t, 0, rep.RentedCells)
}

func TestReportErrors(t *testing.T) {
	r := newTestRig(t)
	_, err := r.reporter.Report("V9")
	assert.ErrorIs(t, err, repository.ErrVenueNotFound)

	shell, err := r.venueEngine.Register()
	require.NoError(t, err)
	_, err = r.reporter.Report(shell.ID)
	assert.ErrorIs(t, err, ErrNoActiveEvent)
}
