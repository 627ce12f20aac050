package engine

import (
	"fmt"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// SessionScheduler validates and stores exhibitor sessions.  Within one
// venue no two sessions may share an instant (half-open intervals, so
// back-to-back is fine) and an exhibitor holds at most one session.
// Holding a booth at the venue is the entitlement to schedule there.
type SessionScheduler struct {
	venues   *repository.VenueRepo
	booths   *repository.BoothRepo
	sessions *repository.SessionRepo
	locks    *VenueLocks
}

// NewSessionScheduler wires the scheduler to its stores.
func NewSessionScheduler(venues *repository.VenueRepo, booths *repository.BoothRepo, sessions *repository.SessionRepo, locks *VenueLocks) *SessionScheduler {
	if venues == nil || booths == nil || sessions == nil || locks == nil {
		panic("nil dependency passed to NewSessionScheduler")
	}
	return &SessionScheduler{venues: venues, booths: booths, sessions: sessions, locks: locks}
}

// Schedule books a time slot for an exhibitor at a venue.
func (s *SessionScheduler) Schedule(venueID, exhibitorEmail, topic, timeSlot string) (model.Session, error) {
	if err := validateText("topic", topic); err != nil {
		return model.Session{}, err
	}
	slot, err := model.ParseTimeSlot(timeSlot)
	if err != nil {
		return model.Session{}, err
	}

	unlock := s.locks.Lock(venueID)
	defer unlock()

	v, err := s.venues.GetByID(venueID)
	if err != nil {
		return model.Session{}, err
	}
	if v.Available {
		return model.Session{}, ErrNoActiveEvent
	}

	booths, err := s.booths.LoadAll()
	if err != nil {
		return model.Session{}, fmt.Errorf("load booths: %w", err)
	}
	entitled := false
	for _, b := range booths {
		if b.VenueID == venueID && b.OwnerEmail == exhibitorEmail && b.Rented {
			entitled = true
			break
		}
	}
	if !entitled {
		return model.Session{}, ErrNoBooth
	}

	sessions, err := s.sessions.LoadAll()
	if err != nil {
		return model.Session{}, fmt.Errorf("load sessions: %w", err)
	}
	ids := make([]string, 0, len(sessions))
	for _, other := range sessions {
		ids = append(ids, other.ID)
		if other.VenueID != venueID {
			continue
		}
		if other.ExhibitorEmail == exhibitorEmail {
			return model.Session{}, fmt.Errorf("%w: one session per exhibitor per venue", ErrAlreadyOccupied)
		}
		if other.Slot.Overlaps(slot) {
			return model.Session{}, fmt.Errorf("%w: clashes with session %s (%s)", ErrOverlap, other.ID, other.Slot)
		}
	}

	sess := model.Session{
		ID:             nextID("S", ids),
		VenueID:        venueID,
		ExhibitorEmail: exhibitorEmail,
		Topic:          topic,
		Slot:           slot,
	}
	if err := s.sessions.SaveAll(append(sessions, sess)); err != nil {
		return model.Session{}, fmt.Errorf("save sessions: %w", err)
	}
	return sess, nil
}

// Update edits an owned session.  An empty topic keeps the current one;
// an empty time slot keeps the current slot, otherwise the new slot is
// re-validated against every other session at the venue.
func (s *SessionScheduler) Update(sessionID, exhibitorEmail, newTopic, newTimeSlot string) (model.Session, error) {
	sessions, err := s.sessions.LoadAll()
	if err != nil {
		return model.Session{}, fmt.Errorf("load sessions: %w", err)
	}
	found := -1
	for i, sess := range sessions {
		if sess.ID == sessionID && sess.ExhibitorEmail == exhibitorEmail {
			found = i
			break
		}
	}
	if found < 0 {
		return model.Session{}, repository.ErrSessionNotFound
	}

	unlock := s.locks.Lock(sessions[found].VenueID)
	defer unlock()

	// Reload under the venue lock so the overlap check sees current state.
	sessions, err = s.sessions.LoadAll()
	if err != nil {
		return model.Session{}, fmt.Errorf("load sessions: %w", err)
	}
	found = -1
	for i, sess := range sessions {
		if sess.ID == sessionID && sess.ExhibitorEmail == exhibitorEmail {
			found = i
			break
		}
	}
	if found < 0 {
		return model.Session{}, repository.ErrSessionNotFound
	}
	edited := sessions[found]

	if newTopic != "" {
		if err := validateText("topic", newTopic); err != nil {
			return model.Session{}, err
		}
		edited.Topic = newTopic
	}
	if newTimeSlot != "" {
		slot, err := model.ParseTimeSlot(newTimeSlot)
		if err != nil {
			return model.Session{}, err
		}
		for i, other := range sessions {
			if i == found || other.VenueID != edited.VenueID {
				continue
			}
			if other.Slot.Overlaps(slot) {
				return model.Session{}, fmt.Errorf("%w: clashes with session %s (%s)", ErrOverlap, other.ID, other.Slot)
			}
		}
		edited.Slot = slot
	}

	sessions[found] = edited
	if err := s.sessions.SaveAll(sessions); err != nil {
		return model.Session{}, fmt.Errorf("save sessions: %w", err)
	}
	return edited, nil
}

// Delete removes an owned session outright.  Caller confirmation is the
// handler's job; by the time the scheduler runs the decision is final.
func (s *SessionScheduler) Delete(sessionID, exhibitorEmail string) error {
	sessions, err := s.sessions.LoadAll()
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	found := -1
	for i, sess := range sessions {
		if sess.ID == sessionID && sess.ExhibitorEmail == exhibitorEmail {
			found = i
			break
		}
	}
	if found < 0 {
		return repository.ErrSessionNotFound
	}

	unlock := s.locks.Lock(sessions[found].VenueID)
	defer unlock()

	sessions, err = s.sessions.LoadAll()
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}
	kept := sessions[:0]
	removed := false
	for _, sess := range sessions {
		if sess.ID == sessionID && sess.ExhibitorEmail == exhibitorEmail {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	if !removed {
		return repository.ErrSessionNotFound
	}
	if err := s.sessions.SaveAll(kept); err != nil {
		return fmt.Errorf("save sessions: %w", err)
	}
	return nil
}

// ListByVenue returns every session scheduled at a venue.
func (s *SessionScheduler) ListByVenue(venueID string) ([]model.Session, error) {
	sessions, err := s.sessions.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	var at []model.Session
	for _, sess := range sessions {
		if sess.VenueID == venueID {
			at = append(at, sess)
		}
	}
	return at, nil
}

// ListByOwner returns every session owned by an exhibitor.
func (s *SessionScheduler) ListByOwner(exhibitorEmail string) ([]model.Session, error) {
	sessions, err := s.sessions.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	var mine []model.Session
	for _, sess := range sessions {
		if sess.ExhibitorEmail == exhibitorEmail {
			mine = append(mine, sess)
		}
	}
	return mine, nil
}
