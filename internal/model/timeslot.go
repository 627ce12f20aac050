package model

import "fmt"

// TimeSlot is a half-open interval within one day, stored as minutes
// since midnight.  Start is inclusive, End exclusive: a slot ending at
// 10:00 does not clash with one starting at 10:00.
type TimeSlot struct {
	Start int
	End   int
}

// ParseTimeSlot parses the exact form HH:MM-HH:MM.  Both halves must be
// two-digit 24-hour clock times and the start must be strictly before the
// end.  Shape violations return ErrInvalidFormat, clock or ordering
// violations return ErrInvalidRange.
func ParseTimeSlot(s string) (TimeSlot, error) {
	if len(s) != 11 || s[5] != '-' {
		return TimeSlot{}, fmt.Errorf("%w: time slot must be HH:MM-HH:MM", ErrInvalidFormat)
	}
	start, err := parseClock(s[:5])
	if err != nil {
		return TimeSlot{}, err
	}
	end, err := parseClock(s[6:])
	if err != nil {
		return TimeSlot{}, err
	}
	if start >= end {
		return TimeSlot{}, fmt.Errorf("%w: start time must be before end time", ErrInvalidRange)
	}
	return TimeSlot{Start: start, End: end}, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: clock time must be HH:MM", ErrInvalidFormat)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: clock time must be HH:MM", ErrInvalidFormat)
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, fmt.Errorf("%w: clock time %s is not on a 24-hour clock", ErrInvalidRange, s)
	}
	return hh*60 + mm, nil
}

// Overlaps reports whether two slots share any instant, using the
// half-open intersection test.  Back-to-back slots do not overlap.
func (a TimeSlot) Overlaps(b TimeSlot) bool {
	return a.Start < b.End && b.Start < a.End
}

// String renders the slot back to HH:MM-HH:MM.
func (a TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", a.Start/60, a.Start%60, a.End/60, a.End%60)
}
