package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// FeedbackHandler lets attendees rate events and admins review or
// moderate what came in.
type FeedbackHandler struct {
	Repo *repository.FeedbackRepo
}

func NewFeedbackHandler(r *repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{Repo: r}
}

type feedbackReq struct {
	EventName string `json:"event_name"`
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
}

type feedbackResp struct {
	Email     string `json:"email"`
	EventName string `json:"event_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func toFeedbackResp(f model.Feedback) feedbackResp {
	return feedbackResp{Email: f.Email, EventName: f.EventName, Rating: f.Rating, Comment: f.Comment}
}

// Submit appends one feedback row for the caller.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.EventName = strings.TrimSpace(req.EventName)
	req.Comment = strings.TrimSpace(req.Comment)
	if req.EventName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "event_name required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be 1-5"})
	}
	if strings.ContainsAny(req.EventName+req.Comment, ",\n") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "commas and newlines are not allowed"})
	}

	f := model.Feedback{
		Email:     userEmail(c),
		EventName: req.EventName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.Repo.Append(f); err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, toFeedbackResp(f))
}

// List returns all feedback, optionally filtered by ?event=.
func (h *FeedbackHandler) List(c echo.Context) error {
	fs, err := h.Repo.LoadAll()
	if err != nil {
		return bookingError(c, err)
	}
	event := strings.TrimSpace(c.QueryParam("event"))
	out := make([]feedbackResp, 0, len(fs))
	for _, f := range fs {
		if event != "" && f.EventName != event {
			continue
		}
		out = append(out, toFeedbackResp(f))
	}
	return c.JSON(http.StatusOK, echo.Map{"feedback": out})
}

// Delete removes every feedback row a user left for an event.  Used by
// admins to moderate abusive entries.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	event := strings.TrimSpace(c.QueryParam("event"))
	if email == "" || event == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and event query params required"})
	}
	fs, err := h.Repo.LoadAll()
	if err != nil {
		return bookingError(c, err)
	}
	kept := fs[:0]
	removed := 0
	for _, f := range fs {
		if strings.EqualFold(f.Email, email) && f.EventName == event {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	if removed == 0 {
		return bookingError(c, repository.ErrFeedbackNotFound)
	}
	if err := h.Repo.SaveAll(kept); err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": removed})
}
