package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-event-management/internal/model"
	"github.com/iliyamo/expo-event-management/internal/repository"
)

// Caps carried over from the original notice board.
const (
	maxAnnouncementTitle   = 20
	maxAnnouncementContent = 50
)

// AnnouncementHandler serves the admin-run notice board.  Admins manage
// notices; attendees and exhibitors see the ones targeting them.
type AnnouncementHandler struct {
	Repo *repository.AnnouncementRepo
}

func NewAnnouncementHandler(r *repository.AnnouncementRepo) *AnnouncementHandler {
	return &AnnouncementHandler{Repo: r}
}

type announcementReq struct {
	Audience string `json:"audience"` // Attendee | Exhibitor | Both
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type announcementResp struct {
	Index    int    `json:"index"`
	Audience string `json:"audience"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

func toAnnouncementResp(a model.Announcement) announcementResp {
	return announcementResp{Index: a.Index, Audience: a.Audience, Title: a.Title, Content: a.Content}
}

func validAnnouncement(req announcementReq) string {
	switch req.Audience {
	case model.AudienceAttendee, model.AudienceExhibitor, model.AudienceBoth:
	default:
		return "audience must be Attendee, Exhibitor or Both"
	}
	if req.Title == "" || len(req.Title) > maxAnnouncementTitle {
		return "title must be 1-20 characters"
	}
	if req.Content == "" || len(req.Content) > maxAnnouncementContent {
		return "content must be 1-50 characters"
	}
	if strings.ContainsAny(req.Title+req.Content, ",\n") {
		return "commas and newlines are not allowed"
	}
	return ""
}

// Create posts a notice.  Indexes are allocated max+1 and never reused.
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req announcementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if msg := validAnnouncement(req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	as, err := h.Repo.LoadAll()
	if err != nil {
		return bookingError(c, err)
	}
	next := 1
	for _, a := range as {
		if a.Index >= next {
			next = a.Index + 1
		}
	}
	a := model.Announcement{Index: next, Audience: req.Audience, Title: req.Title, Content: req.Content}
	if err := h.Repo.SaveAll(append(as, a)); err != nil {
		return bookingError(c, err)
	}
	return c.JSON(http.StatusCreated, toAnnouncementResp(a))
}

// Update replaces a notice in place, keeping its index.
func (h *AnnouncementHandler) Update(c echo.Context) error {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid index"})
	}
	var req announcementReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	if msg := validAnnouncement(req); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	as, err := h.Repo.LoadAll()
	if err != nil {
		return bookingError(c, err)
	}
	for i := range as {
		if as[i].Index == idx {
			as[i].Audience = req.Audience
			as[i].Title = req.Title
			as[i].Content = req.Content
			if err := h.Repo.SaveAll(as); err != nil {
				return bookingError(c, err)
			}
			return c.JSON(http.StatusOK, toAnnouncementResp(as[i]))
		}
	}
	return bookingError(c, repository.ErrAnnouncementNotFound)
}

// Delete removes a notice by index.
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid index"})
	}
	as, err := h.Repo.LoadAll()
	if err != nil {
		return bookingError(c, err)
	}
	for i := range as {
		if as[i].Index == idx {
			as = append(as[:i], as[i+1:]...)
			if err := h.Repo.SaveAll(as); err != nil {
				return bookingError(c, err)
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
	return bookingError(c, repository.ErrAnnouncementNotFound)
}

// List returns the notices visible to the caller.  Admins see all of
// them; attendees and exhibitors see notices targeting their audience
// or Both.
func (h *AnnouncementHandler) List(c echo.Context) error {
	as, err := h.Repo.LoadAll()
	if err != nil {
		return bookingError(c, err)
	}
	audience := model.AudienceBoth // admins
	switch userRole(c) {
	case repository.RoleAttendee:
		audience = model.AudienceAttendee
	case repository.RoleExhibitor:
		audience = model.AudienceExhibitor
	}
	out := make([]announcementResp, 0, len(as))
	for _, a := range as {
		if a.VisibleTo(audience) {
			out = append(out, toAnnouncementResp(a))
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"announcements": out})
}
