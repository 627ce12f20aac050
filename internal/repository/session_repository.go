package repository

import (
	"path/filepath"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/store"
)

// SessionFile is the flat store holding scheduled sessions.
const SessionFile = "sessions.txt"

// SessionRepo persists scheduled sessions in sessions.txt.
type SessionRepo struct {
	store *store.Store[model.Session]
}

// NewSessionRepo returns a session repository rooted at dataDir.
func NewSessionRepo(dataDir string) *SessionRepo {
	return &SessionRepo{store: store.New(filepath.Join(dataDir, SessionFile), model.EncodeSession, model.DecodeSession)}
}

// LoadAll returns every session row.
func (r *SessionRepo) LoadAll() ([]model.Session, error) { return r.store.LoadAll() }

// SaveAll rewrites the session store with exactly the given rows.
func (r *SessionRepo) SaveAll(ss []model.Session) error { return r.store.SaveAll(ss) }
