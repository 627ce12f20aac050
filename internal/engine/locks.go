package engine

import "sync"

// VenueLocks serializes every load-validate-mutate-persist sequence.
// Two guards are involved: a per-venue mutex that orders operations on
// the same venue, and a store-wide mutex held for the duration of the
// critical section.  The store guard is what actually protects the
// files: ticket.txt, booth.txt, sessions.txt and venue.txt each hold
// rows for every venue and are rewritten whole on save, so operations
// at different venues still conflict at the file level.  Per-venue
// mutexes are kept as the outer granule so the ordering is stable if
// the stores ever become per-venue files.  Locks are created on first
// use and never freed; the venue population is tiny and long-lived.
type VenueLocks struct {
	mu    sync.Mutex
	store sync.Mutex
	locks map[string]*sync.Mutex
}

// NewVenueLocks returns an empty lock registry.
func NewVenueLocks() *VenueLocks {
	return &VenueLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the venue lock for venueID (creating it if needed) and
// then the store-wide lock.  The returned function releases both in
// reverse order.  Acquisition order is always venue then store, and no
// operation holds two venue locks, so the pair cannot deadlock.
func (v *VenueLocks) Lock(venueID string) func() {
	v.mu.Lock()
	l, ok := v.locks[venueID]
	if !ok {
		l = &sync.Mutex{}
		v.locks[venueID] = l
	}
	v.mu.Unlock()
	l.Lock()
	v.store.Lock()
	return func() {
		v.store.Unlock()
		l.Unlock()
	}
}
