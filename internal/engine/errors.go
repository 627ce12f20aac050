// Package engine implements the booking core: the venue & capacity
// model, the ticket and booth booking engines, the session scheduler and
// the report aggregator.  Every operation follows the same shape: take
// the venue lock, load the relevant stores fresh, validate against
// current state, mutate in memory, persist the full store.  Validation
// failures come back as sentinels from this package, the model package
// (format/range) or the repository package (not found); anything else is
// a store I/O failure wrapped with %w.
package engine

import "errors"

// ErrCapacityExceeded is returned when a purchase asks for more tickets
// than the type has remaining.  The sold counter is left untouched.
var ErrCapacityExceeded = errors.New("ticket capacity exceeded")

// ErrAlreadyOccupied is returned when a booth cell is already rented, or
// when an exhibitor already holds a session in the venue.
var ErrAlreadyOccupied = errors.New("already occupied")

// ErrOverlap is returned when a session time slot clashes with an
// existing session at the same venue.
var ErrOverlap = errors.New("time slot overlaps an existing session")

// ErrNoActiveEvent is returned when an operation needs an event at the
// venue but the venue is free.
var ErrNoActiveEvent = errors.New("venue has no active event")

// ErrVenueOccupied is returned when an admin tries to open an event at a
// venue that already hosts one.
var ErrVenueOccupied = errors.New("venue already hosts an event")

// ErrNoBooth is returned when an exhibitor without a booth at the venue
// tries to schedule a session; booth presence is the entitlement.
var ErrNoBooth = errors.New("exhibitor holds no booth at venue")
