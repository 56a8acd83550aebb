package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/service"
	appErrors "github.com/mochwana/aesi-web/pkg/errors"
)

// PageCategories maps the admin page slugs to their image buckets.
var PageCategories = map[string]models.ImageCategory{
	"home":     models.CategoryHero,
	"about":    models.CategoryAbout,
	"programs": models.CategoryPrograms,
}

// ImageHandler serves the admin image galleries: the general uploads
// library plus the page-scoped buckets.
type ImageHandler struct {
	service *service.ImageService
	logger  *zap.Logger
}

// NewImageHandler creates the handler.
func NewImageHandler(svc *service.ImageService, logger *zap.Logger) *ImageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageHandler{service: svc, logger: logger}
}

// List shows the general uploads gallery.
func (h *ImageHandler) List(c *gin.Context) {
	images, err := h.service.List(c.Request.Context(), models.CategoryUploads)
	if err != nil {
		h.logger.Error("failed to list uploads", zap.Error(err))
		flashError(c, "Could not load images.")
	}
	render(c, http.StatusOK, "admin_images.html", gin.H{
		"Images": images,
	})
}

// Upload stores a file into the general uploads gallery.
func (h *ImageHandler) Upload(c *gin.Context) {
	h.upload(c, models.CategoryUploads, "/admin/images")
}

// Delete removes an image from the general uploads gallery.
func (h *ImageHandler) Delete(c *gin.Context) {
	h.delete(c, c.Param("id"), "/admin/images")
}

// PageList shows the gallery of one page bucket.
func (h *ImageHandler) PageList(page string, category models.ImageCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := h.service.List(c.Request.Context(), category)
		if err != nil {
			h.logger.Error("failed to list page images",
				zap.String("page", page), zap.Error(err))
			flashError(c, "Could not load images.")
		}
		render(c, http.StatusOK, "admin_page_images.html", gin.H{
			"Page":   page,
			"Images": images,
		})
	}
}

// PageUpload stores a file into one page bucket.
func (h *ImageHandler) PageUpload(page string, category models.ImageCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.upload(c, category, "/admin/images/"+page)
	}
}

// PageReplace swaps an existing page image for a fresh upload.
func (h *ImageHandler) PageReplace(page string, category models.ImageCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		target := "/admin/images/" + page

		record, err := h.service.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			flashError(c, "Image not found.")
			c.Redirect(http.StatusFound, target)
			return
		}

		up, ok, err := requireUpload(c, "image")
		if err != nil {
			flashError(c, "Could not read the uploaded file.")
			c.Redirect(http.StatusFound, target)
			return
		}
		if !ok {
			flashError(c, "No file selected.")
			c.Redirect(http.StatusFound, target)
			return
		}

		if _, err := h.service.Replace(c.Request.Context(), category, record.Filename, up); err != nil {
			h.flashFailure(c, err, "Could not replace the image.")
			c.Redirect(http.StatusFound, target)
			return
		}

		flashSuccess(c, "Image replaced successfully!")
		c.Redirect(http.StatusFound, target)
	}
}

// PageDelete removes an image from one page bucket.
func (h *ImageHandler) PageDelete(page string, category models.ImageCategory) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.delete(c, c.Param("id"), "/admin/images/"+page)
	}
}

func (h *ImageHandler) upload(c *gin.Context, category models.ImageCategory, target string) {
	up, ok, err := requireUpload(c, "image")
	if err != nil {
		flashError(c, "Could not read the uploaded file.")
		c.Redirect(http.StatusFound, target)
		return
	}
	if !ok {
		flashError(c, "No file selected.")
		c.Redirect(http.StatusFound, target)
		return
	}

	if _, err := h.service.Upload(c.Request.Context(), category, up); err != nil {
		h.flashFailure(c, err, "Could not upload the image.")
		c.Redirect(http.StatusFound, target)
		return
	}

	flashSuccess(c, "Image uploaded successfully!")
	c.Redirect(http.StatusFound, target)
}

func (h *ImageHandler) delete(c *gin.Context, id, target string) {
	removed, err := h.service.Delete(c.Request.Context(), id)
	switch {
	case err != nil:
		h.logger.Error("failed to delete image", zap.Error(err))
		flashError(c, "Could not delete the image.")
	case removed:
		flashSuccess(c, "Image deleted successfully!")
	default:
		flashError(c, "Image not found.")
	}
	c.Redirect(http.StatusFound, target)
}

func (h *ImageHandler) flashFailure(c *gin.Context, err error, fallback string) {
	appErr := appErrors.FromError(err)
	switch appErr.Code {
	case appErrors.ErrInvalidExtension.Code, appErrors.ErrPayloadTooLarge.Code,
		appErrors.ErrStorageUnavailable.Code:
		flashError(c, appErr.Message)
	default:
		h.logger.Error("image operation failed", zap.Error(err))
		flashError(c, fallback)
	}
}
