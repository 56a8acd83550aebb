package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/service"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// AnnouncementHandler serves the admin announcement management pages.
type AnnouncementHandler struct {
	service *service.AnnouncementService
	logger  *zap.Logger
}

// NewAnnouncementHandler creates the handler.
func NewAnnouncementHandler(svc *service.AnnouncementService, logger *zap.Logger) *AnnouncementHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementHandler{service: svc, logger: logger}
}

// List shows all announcements.
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list announcements", zap.Error(err))
		flashError(c, "Could not load announcements.")
	}
	render(c, http.StatusOK, "admin_announcements.html", gin.H{
		"Announcements": announcements,
	})
}

// AddForm renders the empty announcement form.
func (h *AnnouncementHandler) AddForm(c *gin.Context) {
	render(c, http.StatusOK, "admin_announcement_form.html", gin.H{
		"Announcement": nil,
	})
}

// Add creates a new announcement from the submitted form.
func (h *AnnouncementHandler) Add(c *gin.Context) {
	form := announcementForm(c)
	up, err := optionalUpload(c, "image")
	if err != nil {
		flashError(c, "Could not read the uploaded file.")
		c.Redirect(http.StatusFound, "/admin/announcements/add")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), form, up); err != nil {
		h.flashFailure(c, err, "Could not add the announcement.")
		c.Redirect(http.StatusFound, "/admin/announcements/add")
		return
	}

	flashSuccess(c, "Announcement added successfully!")
	c.Redirect(http.StatusFound, "/admin/announcements")
}

// EditForm renders the form pre-filled with an existing announcement.
func (h *AnnouncementHandler) EditForm(c *gin.Context) {
	announcement, err := h.service.Get(c.Request.Context(), models.RecordID(c.Param("id")))
	if err != nil {
		flashError(c, "Announcement not found.")
		c.Redirect(http.StatusFound, "/admin/announcements")
		return
	}
	render(c, http.StatusOK, "admin_announcement_form.html", gin.H{
		"Announcement": announcement,
	})
}

// Edit updates an existing announcement in place.
func (h *AnnouncementHandler) Edit(c *gin.Context) {
	id := models.RecordID(c.Param("id"))
	form := announcementForm(c)
	up, err := optionalUpload(c, "image")
	if err != nil {
		flashError(c, "Could not read the uploaded file.")
		c.Redirect(http.StatusFound, "/admin/announcements/edit/"+id.String())
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, form, up); err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			flashError(c, "Announcement not found.")
			c.Redirect(http.StatusFound, "/admin/announcements")
			return
		}
		h.flashFailure(c, err, "Could not update the announcement.")
		c.Redirect(http.StatusFound, "/admin/announcements/edit/"+id.String())
		return
	}

	flashSuccess(c, "Announcement updated successfully!")
	c.Redirect(http.StatusFound, "/admin/announcements")
}

// Delete removes an announcement.
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	removed, err := h.service.Delete(c.Request.Context(), models.RecordID(c.Param("id")))
	switch {
	case err != nil:
		h.logger.Error("failed to delete announcement", zap.Error(err))
		flashError(c, "Could not delete the announcement.")
	case removed:
		flashSuccess(c, "Announcement deleted successfully!")
	default:
		flashError(c, "Announcement not found.")
	}
	c.Redirect(http.StatusFound, "/admin/announcements")
}

func (h *AnnouncementHandler) flashFailure(c *gin.Context, err error, fallback string) {
	appErr := appErrors.FromError(err)
	switch appErr.Code {
	case appErrors.ErrValidation.Code, appErrors.ErrInvalidExtension.Code,
		appErrors.ErrPayloadTooLarge.Code, appErrors.ErrStorageUnavailable.Code:
		flashError(c, appErr.Message)
	default:
		h.logger.Error("announcement operation failed", zap.Error(err))
		flashError(c, fallback)
	}
}

func announcementForm(c *gin.Context) models.AnnouncementForm {
	return models.AnnouncementForm{
		Title:    c.PostForm("title"),
		Excerpt:  c.PostForm("excerpt"),
		Category: c.PostForm("category"),
		Featured: c.PostForm("featured") == "on",
	}
}
