package model

import (
	"fmt"
	"strconv"
)

// Audience values an announcement can target.
const (
	AudienceAttendee  = "Attendee"
	AudienceExhibitor = "Exhibitor"
	AudienceBoth      = "Both"
)

// Announcement is an admin-posted notice shown to attendees, exhibitors
// or both.  Titles are capped at 20 characters and content at 50, limits
// carried over from the original system.
//
// Persisted layout: index,userType,title,content
type Announcement struct {
	Index    int
	Audience string
	Title    string
	Content  string
}

// VisibleTo reports whether the announcement targets the given audience.
func (a Announcement) VisibleTo(audience string) bool {
	return a.Audience == audience || a.Audience == AudienceBoth || audience == AudienceBoth
}

// EncodeAnnouncement flattens an announcement row.
func EncodeAnnouncement(a Announcement) []string {
	return []string{strconv.Itoa(a.Index), a.Audience, a.Title, a.Content}
}

// DecodeAnnouncement parses an announcement row.
func DecodeAnnouncement(fields []string) (Announcement, error) {
	if len(fields) != 4 {
		return Announcement{}, fmt.Errorf("announcement record has %d fields, want 4", len(fields))
	}
	idx, err := strconv.Atoi(fields[0])
	if err != nil {
		return Announcement{}, fmt.Errorf("announcement index: %w", err)
	}
	return Announcement{
		Index:    idx,
		Audience: fields[1],
		Title:    fields[2],
		Content:  fields[3],
	}, nil
}
