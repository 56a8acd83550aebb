package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/service"
)

// PublicHandler renders the visitor-facing pages.
type PublicHandler struct {
	announcements *service.AnnouncementService
	staff         *service.StaffService
	programs      *service.ProgramService
	images        *service.ImageService
	logger        *zap.Logger
}

// NewPublicHandler creates the handler.
func NewPublicHandler(
	announcements *service.AnnouncementService,
	staff *service.StaffService,
	programs *service.ProgramService,
	images *service.ImageService,
	logger *zap.Logger,
) *PublicHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PublicHandler{
		announcements: announcements,
		staff:         staff,
		programs:      programs,
		images:        images,
		logger:        logger,
	}
}

// Home shows the hero slideshow and program cards.
func (h *PublicHandler) Home(c *gin.Context) {
	heroImages, err := h.images.List(c.Request.Context(), models.CategoryHero)
	if err != nil {
		h.logger.Warn("failed to list hero images", zap.Error(err))
		heroImages = nil
	}
	programs, err := h.programs.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	render(c, http.StatusOK, "index.html", gin.H{
		"CurrentPage": "home",
		"HeroImages":  heroImages,
		"Programs":    programs,
	})
}

// About shows the leadership team only.
func (h *PublicHandler) About(c *gin.Context) {
	staff, err := h.staff.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	leadership, _ := models.PartitionStaff(staff)
	render(c, http.StatusOK, "about.html", gin.H{
		"CurrentPage": "about",
		"Leadership":  leadership,
	})
}

// Programs lists the fixed offerings.
func (h *PublicHandler) Programs(c *gin.Context) {
	programs, err := h.programs.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	render(c, http.StatusOK, "programs.html", gin.H{
		"CurrentPage": "programs",
		"Programs":    programs,
	})
}

// Staff shows the full team partitioned by role.
func (h *PublicHandler) Staff(c *gin.Context) {
	staff, err := h.staff.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	leadership, programStaff := models.PartitionStaff(staff)
	render(c, http.StatusOK, "staff.html", gin.H{
		"CurrentPage":  "staff",
		"Leadership":   leadership,
		"ProgramStaff": programStaff,
	})
}

// Announcements shows the featured subset plus the full list.
func (h *PublicHandler) Announcements(c *gin.Context) {
	announcements, err := h.announcements.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	render(c, http.StatusOK, "announcements.html", gin.H{
		"CurrentPage":           "announcements",
		"FeaturedAnnouncements": models.FeaturedAnnouncements(announcements),
		"AllAnnouncements":      announcements,
	})
}

// Contact renders the static contact page.
func (h *PublicHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", gin.H{
		"CurrentPage": "contact",
	})
}

func (h *PublicHandler) renderError(c *gin.Context, err error) {
	h.logger.Error("failed to render public page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	render(c, http.StatusInternalServerError, "error.html", gin.H{"CurrentPage": ""})
}
