package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr error
		start   int
		end     int
	}{
		{name: "valid slot", in: "09:30-11:00", start: 9*60 + 30, end: 11 * 60},
		{name: "midnight start", in: "00:00-01:00", start: 0, end: 60},
		{name: "missing dash", in: "09:30 11:00", wantErr: ErrInvalidFormat},
		{name: "too short", in: "9:30-11:00", wantErr: ErrInvalidFormat},
		{name: "letters in clock", in: "ab:30-11:00", wantErr: ErrInvalidFormat},
		{name: "hour out of range", in: "25:00-26:00", wantErr: ErrInvalidRange},
		{name: "minute out of range", in: "09:61-11:00", wantErr: ErrInvalidRange},
		{name: "start equals end", in: "09:30-09:30", wantErr: ErrInvalidRange},
		{name: "start after end", in: "11:00-09:30", wantErr: ErrInvalidRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := ParseTimeSlot(tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.start, slot.Start)
			assert.Equal(t, tc.end, slot.End)
			// String renders back to the canonical form.
			assert.Equal(t, tc.in, slot.String())
		})
	}
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := TimeSlot{Start: 10 * 60, End: 11 * 60} // 10:00-11:00
	tests := []struct {
		name  string
		other TimeSlot
		want  bool
	}{
		{name: "identical", other: TimeSlot{Start: 10 * 60, End: 11 * 60}, want: true},
		{name: "partial overlap", other: TimeSlot{Start: 10*60 + 30, End: 11*60 + 30}, want: true},
		{name: "contained", other: TimeSlot{Start: 10*60 + 15, End: 10*60 + 45}, want: true},
		{name: "back to back after", other: TimeSlot{Start: 11 * 60, End: 12 * 60}, want: false},
		{name: "back to back before", other: TimeSlot{Start: 9 * 60, End: 10 * 60}, want: false},
		{name: "disjoint", other: TimeSlot{Start: 13 * 60, End: 14 * 60}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}
