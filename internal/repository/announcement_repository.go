package repository

import (
	"path/filepath"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/store"
)

// AnnouncementFile is the flat store holding announcements.
const AnnouncementFile = "announcements.txt"

// AnnouncementRepo persists announcements in announcements.txt.
type AnnouncementRepo struct {
	store *store.Store[model.Announcement]
}

// NewAnnouncementRepo returns an announcement repository rooted at dataDir.
func NewAnnouncementRepo(dataDir string) *AnnouncementRepo {
	return &AnnouncementRepo{store: store.New(
		filepath.Join(dataDir, AnnouncementFile),
		model.EncodeAnnouncement,
		model.DecodeAnnouncement,
	)}
}

// LoadAll returns every announcement.
func (r *AnnouncementRepo) LoadAll() ([]model.Announcement, error) { return r.store.LoadAll() }

// SaveAll rewrites the announcement store with exactly the given rows.
func (r *AnnouncementRepo) SaveAll(as []model.Announcement) error { return r.store.SaveAll(as) }
