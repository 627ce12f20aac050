package repository

import (
	"path/filepath"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/store"
)

// VenueFile is the flat store holding every venue record.
const VenueFile = "venue.txt"

// VenueRepo persists venues in venue.txt.  Every mutation rewrites the
// whole file; engines load fresh, mutate in memory and save back.
type VenueRepo struct {
	store *store.Store[model.Venue]
}

// NewVenueRepo returns a venue repository rooted at dataDir.
func NewVenueRepo(dataDir string) *VenueRepo {
	return &VenueRepo{store: store.New(filepath.Join(dataDir, VenueFile), model.EncodeVenue, model.DecodeVenue)}
}

// LoadAll returns every venue record.
func (r *VenueRepo) LoadAll() ([]model.Venue, error) { return r.store.LoadAll() }

// SaveAll rewrites the venue store with exactly the given records.
func (r *VenueRepo) SaveAll(vs []model.Venue) error { return r.store.SaveAll(vs) }

// GetByID returns the venue with the given ID or ErrVenueNotFound.
func (r *VenueRepo) GetByID(id string) (model.Venue, error) {
	vs, err := r.LoadAll()
	if err != nil {
		return model.Venue{}, err
	}
	for _, v := range vs {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Venue{}, ErrVenueNotFound
}
