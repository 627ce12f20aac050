package repository

import (
	"path/filepath"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/store"
)

// FeedbackFile is the flat store holding attendee feedback.
const FeedbackFile = "feedback.txt"

// FeedbackRepo persists attendee feedback in feedback.txt.  Submissions
// append; admin deletion rewrites the file.
type FeedbackRepo struct {
	store *store.Store[model.Feedback]
}

// NewFeedbackRepo returns a feedback repository rooted at dataDir.
func NewFeedbackRepo(dataDir string) *FeedbackRepo {
	return &FeedbackRepo{store: store.New(
		filepath.Join(dataDir, FeedbackFile),
		model.EncodeFeedback,
		model.DecodeFeedback,
	)}
}

// LoadAll returns every feedback row.
func (r *FeedbackRepo) LoadAll() ([]model.Feedback, error) { return r.store.LoadAll() }

// SaveAll rewrites the feedback store with exactly the given rows.
func (r *FeedbackRepo) SaveAll(fs []model.Feedback) error { return r.store.SaveAll(fs) }

// Append adds one feedback row without rewriting existing ones.
func (r *FeedbackRepo) Append(f model.Feedback) error { return r.store.Append(f) }
