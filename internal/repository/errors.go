// Package repository binds each persisted entity to its flat store (or,
// for accounts, to MySQL) and defines the not-found sentinels shared by
// the engines and handlers.  These sentinels let callers distinguish "no
// such record" from an I/O failure: handlers translate the former into a
// 404 and the latter into a 500.
package repository

import "errors"

// ErrVenueNotFound is returned when no venue record carries the given ID.
var ErrVenueNotFound = errors.New("venue not found")

// ErrTicketNotFound is returned when no ticket with the given ID is owned
// by the given email.  An ID that exists under a different owner is
// still not found; refunds never disclose other owners' tickets.
var ErrTicketNotFound = errors.New("ticket not found")

// ErrBoothNotFound is returned when no rented booth row matches the
// venue, cell and owner triple.
var ErrBoothNotFound = errors.New("booth rental not found")

// ErrSessionNotFound is returned when no session with the given ID is
// owned by the given exhibitor.
var ErrSessionNotFound = errors.New("session not found")

// ErrAnnouncementNotFound is returned when no announcement carries the
// given index.
var ErrAnnouncementNotFound = errors.New("announcement not found")

// ErrFeedbackNotFound is returned when a feedback index is out of range.
var ErrFeedbackNotFound = errors.New("feedback not found")
