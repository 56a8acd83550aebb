package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/service"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// StaffHandler serves the admin staff management pages.
type StaffHandler struct {
	service *service.StaffService
	logger  *zap.Logger
}

// NewStaffHandler creates the handler.
func NewStaffHandler(svc *service.StaffService, logger *zap.Logger) *StaffHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffHandler{service: svc, logger: logger}
}

// List shows all staff members grouped by role.
func (h *StaffHandler) List(c *gin.Context) {
	staff, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list staff", zap.Error(err))
		flashError(c, "Could not load staff members.")
	}
	leadership, programStaff := models.PartitionStaff(staff)
	render(c, http.StatusOK, "admin_staff.html", gin.H{
		"Staff":        staff,
		"Leadership":   leadership,
		"ProgramStaff": programStaff,
	})
}

// AddForm renders the empty staff form.
func (h *StaffHandler) AddForm(c *gin.Context) {
	render(c, http.StatusOK, "admin_staff_form.html", gin.H{
		"Member": nil,
	})
}

// Add creates a new staff member from the submitted form.
func (h *StaffHandler) Add(c *gin.Context) {
	form := staffForm(c)
	up, err := optionalUpload(c, "image")
	if err != nil {
		flashError(c, "Could not read the uploaded file.")
		c.Redirect(http.StatusFound, "/admin/staff/add")
		return
	}

	if _, err := h.service.Create(c.Request.Context(), form, up); err != nil {
		h.flashFailure(c, err, "Could not add the staff member.")
		c.Redirect(http.StatusFound, "/admin/staff/add")
		return
	}

	flashSuccess(c, "Staff member added successfully!")
	c.Redirect(http.StatusFound, "/admin/staff")
}

// EditForm renders the form pre-filled with an existing member.
func (h *StaffHandler) EditForm(c *gin.Context) {
	member, err := h.service.Get(c.Request.Context(), models.RecordID(c.Param("id")))
	if err != nil {
		flashError(c, "Staff member not found.")
		c.Redirect(http.StatusFound, "/admin/staff")
		return
	}
	render(c, http.StatusOK, "admin_staff_form.html", gin.H{
		"Member": member,
	})
}

// Edit updates an existing staff member in place.
func (h *StaffHandler) Edit(c *gin.Context) {
	id := models.RecordID(c.Param("id"))
	form := staffForm(c)
	up, err := optionalUpload(c, "image")
	if err != nil {
		flashError(c, "Could not read the uploaded file.")
		c.Redirect(http.StatusFound, "/admin/staff/edit/"+id.String())
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, form, up); err != nil {
		if errors.Is(err, appErrors.ErrNotFound) {
			flashError(c, "Staff member not found.")
			c.Redirect(http.StatusFound, "/admin/staff")
			return
		}
		h.flashFailure(c, err, "Could not update the staff member.")
		c.Redirect(http.StatusFound, "/admin/staff/edit/"+id.String())
		return
	}

	flashSuccess(c, "Staff member updated successfully!")
	c.Redirect(http.StatusFound, "/admin/staff")
}

// Delete removes a staff member.
func (h *StaffHandler) Delete(c *gin.Context) {
	removed, err := h.service.Delete(c.Request.Context(), models.RecordID(c.Param("id")))
	switch {
	case err != nil:
		h.logger.Error("failed to delete staff member", zap.Error(err))
		flashError(c, "Could not delete the staff member.")
	case removed:
		flashSuccess(c, "Staff member deleted successfully!")
	default:
		flashError(c, "Staff member not found.")
	}
	c.Redirect(http.StatusFound, "/admin/staff")
}

// Export streams the staff directory as a PDF or CSV download. The
// format comes from the "format" query parameter and defaults to pdf.
func (h *StaffHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "pdf")
	data, contentType, err := h.service.ExportDirectory(c.Request.Context(), format)
	if err != nil {
		h.logger.Error("failed to export staff directory", zap.Error(err))
		flashError(c, "Could not export the staff directory.")
		c.Redirect(http.StatusFound, "/admin/staff")
		return
	}

	filename := fmt.Sprintf("staff_directory_%s.%s", time.Now().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *StaffHandler) flashFailure(c *gin.Context, err error, fallback string) {
	appErr := appErrors.FromError(err)
	switch appErr.Code {
	case appErrors.ErrValidation.Code, appErrors.ErrInvalidExtension.Code,
		appErrors.ErrPayloadTooLarge.Code, appErrors.ErrStorageUnavailable.Code:
		flashError(c, appErr.Message)
	default:
		h.logger.Error("staff operation failed", zap.Error(err))
		flashError(c, fallback)
	}
}

func staffForm(c *gin.Context) models.StaffForm {
	return models.StaffForm{
		Name:        c.PostForm("name"),
		Title:       c.PostForm("title"),
		Bio:         c.PostForm("bio"),
		Role:        c.PostForm("role"),
		Email:       c.PostForm("email"),
		LinkedInURL: c.PostForm("linkedin_url"),
		Department:  c.PostForm("department"),
	}
}
