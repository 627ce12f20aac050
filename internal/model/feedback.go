package model

import (
	"fmt"
	"strconv"
)

// Feedback is an attendee rating for an event, 1 to 5 stars with a free
// text comment.
//
// Persisted layout: email,eventName,rating,comment
type Feedback struct {
	Email     string
	EventName string
	Rating    int
	Comment   string
}

// EncodeFeedback flattens a feedback row.
func EncodeFeedback(f Feedback) []string {
	return []string{f.Email, f.EventName, strconv.Itoa(f.Rating), f.Comment}
}

// DecodeFeedback parses a feedback row.
func DecodeFeedback(fields []string) (Feedback, error) {
	if len(fields) != 4 {
		return Feedback{}, fmt.Errorf("feedback record has %d fields, want 4", len(fields))
	}
	rating, err := strconv.Atoi(fields[2])
	if err != nil {
		return Feedback{}, fmt.Errorf("feedback rating: %w", err)
	}
	return Feedback{
		Email:     fields[0],
		EventName: fields[1],
		Rating:    rating,
		Comment:   fields[3],
	}, nil
}
