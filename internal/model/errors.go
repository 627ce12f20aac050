// Package model defines the persisted record types of every flat store
// together with their strict codecs, plus the validation sentinels shared
// by everything that parses user-supplied values (time slots, booth cell
// IDs, grid dimensions).
package model

import "errors"

// ErrInvalidFormat is returned when a value does not match its required
// shape, such as a time slot that is not HH:MM-HH:MM or a booth cell ID
// that does not start with a letter.  Handlers translate this into a 400.
var ErrInvalidFormat = errors.New("invalid format")

// ErrInvalidRange is returned when a well-formed value falls outside its
// allowed range: hours/minutes off the clock, a slot that ends before it
// starts, grid dimensions outside [1,10], or a cell beyond the grid.
// Handlers translate this into a 400 as well.
var ErrInvalidRange = errors.New("value out of range")
