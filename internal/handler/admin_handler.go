package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/models"
	"github.com/mochwana/aesi-web/internal/service"
)

// AdminHandler renders the dashboard overview.
type AdminHandler struct {
	announcements *service.AnnouncementService
	staff         *service.StaffService
	logger        *zap.Logger
}

// NewAdminHandler creates the handler.
func NewAdminHandler(announcements *service.AnnouncementService, staff *service.StaffService, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{announcements: announcements, staff: staff, logger: logger}
}

// Dashboard shows the collection counts.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	announcements, err := h.announcements.List(ctx)
	if err != nil {
		h.logger.Error("failed to load announcements for dashboard", zap.Error(err))
	}
	staff, err := h.staff.List(ctx)
	if err != nil {
		h.logger.Error("failed to load staff for dashboard", zap.Error(err))
	}
	leadership, programStaff := models.PartitionStaff(staff)

	render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Stats": gin.H{
			"Announcements": len(announcements),
			"Staff":         len(staff),
			"Leadership":    len(leadership),
			"ProgramStaff":  len(programStaff),
		},
	})
}
