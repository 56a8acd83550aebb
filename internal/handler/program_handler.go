package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/service"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// ProgramHandler serves the admin program pages. The program set is
// fixed; only the images are editable.
type ProgramHandler struct {
	service *service.ProgramService
	logger  *zap.Logger
}

// NewProgramHandler creates the handler.
func NewProgramHandler(svc *service.ProgramService, logger *zap.Logger) *ProgramHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramHandler{service: svc, logger: logger}
}

// List shows all programs with their current images.
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list programs", zap.Error(err))
		flashError(c, "Could not load programs.")
	}
	render(c, http.StatusOK, "admin_programs.html", gin.H{
		"Programs": programs,
	})
}

// EditImageForm renders the image replacement form for one program.
func (h *ProgramHandler) EditImageForm(c *gin.Context) {
	program, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		flashError(c, "Program not found.")
		c.Redirect(http.StatusFound, "/admin/programs")
		return
	}
	render(c, http.StatusOK, "admin_program_form.html", gin.H{
		"Program": program,
	})
}

// EditImage replaces a program's image with the uploaded file.
func (h *ProgramHandler) EditImage(c *gin.Context) {
	id := c.Param("id")

	up, ok, err := requireUpload(c, "image")
	if err != nil {
		flashError(c, "Could not read the uploaded file.")
		c.Redirect(http.StatusFound, "/admin/programs/edit/"+id)
		return
	}
	if !ok {
		flashError(c, "No file selected.")
		c.Redirect(http.StatusFound, "/admin/programs/edit/"+id)
		return
	}

	program, err := h.service.UpdateImage(c.Request.Context(), id, up)
	if err != nil {
		appErr := appErrors.FromError(err)
		switch appErr.Code {
		case appErrors.ErrNotFound.Code:
			flashError(c, "Program not found.")
			c.Redirect(http.StatusFound, "/admin/programs")
		case appErrors.ErrInvalidExtension.Code, appErrors.ErrPayloadTooLarge.Code,
			appErrors.ErrStorageUnavailable.Code:
			flashError(c, appErr.Message)
			c.Redirect(http.StatusFound, "/admin/programs/edit/"+id)
		default:
			h.logger.Error("failed to update program image", zap.Error(err))
			flashError(c, "Could not update the program image.")
			c.Redirect(http.StatusFound, "/admin/programs/edit/"+id)
		}
		return
	}

	flashSuccess(c, program.Name+" image updated successfully!")
	c.Redirect(http.StatusFound, "/admin/programs")
}
