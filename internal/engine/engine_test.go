package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// testRig wires every engine over one temp data dir, the way main does
// in production.
type testRig struct {
	dir      string
	venues   *repository.VenueRepo
	tickets  *repository.TicketRepo
	booths   *repository.BoothRepo
	sessions *repository.SessionRepo

	venueEngine  *VenueEngine
	ticketEngine *TicketEngine
	boothEngine  *BoothEngine
	scheduler    *SessionScheduler
	reporter     *Reporter
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	dir := t.TempDir()
	r := &testRig{
		dir:      dir,
		venues:   repository.NewVenueRepo(dir),
		tickets:  repository.NewTicketRepo(dir),
		booths:   repository.NewBoothRepo(dir),
		sessions: repository.NewSessionRepo(dir),
	}
	locks := NewVenueLocks()
	r.venueEngine = NewVenueEngine(r.venues, r.tickets, r.booths, r.sessions, locks)
	r.ticketEngine = NewTicketEngine(r.venues, r.tickets, repository.NewTicketRefundLog(dir), locks)
	r.boothEngine = NewBoothEngine(r.venues, r.booths, repository.NewBoothRefundLog(dir), locks)
	r.scheduler = NewSessionScheduler(r.venues, r.booths, r.sessions, locks)
	r.reporter = NewReporter(r.venues, r.tickets, r.booths, r.sessions)
	return r
}

// openVenue registers a shell and opens an event on it with a small
// standard spec; individual tests override via the spec argument.
func (r *testRig) openVenue(t *testing.T, spec EventSpec) model.Venue {
	t.Helper()
	shell, err := r.venueEngine.Register()
	require.NoError(t, err)
	v, err := r.venueEngine.OpenEvent(shell.ID, spec)
	require.NoError(t, err)
	return v
}

func basicSpec() EventSpec {
	return EventSpec{
		EventName:  "TechExpo",
		Rows:       2,
		Columns:    2,
		BoothPrice: 100,
		TicketTypes: []model.TicketType{
			{Name: "VIP", Price: 50, Capacity: 5},
			{Name: "Standard", Price: 20, Capacity: 100},
		},
	}
}
