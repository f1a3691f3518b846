package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/internet-kid/notes-api/internal/errors"
	"github.com/internet-kid/notes-api/internal/middleware"
	"github.com/internet-kid/notes-api/internal/services"
)

// ExportHandler coordinates the notes export endpoint.
type ExportHandler struct {
	exportService *services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// RequestExport queues an export of the current user's visible notes and
// acknowledges immediately.
func (h *ExportHandler) RequestExport(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type ExportRequest struct {
		TargetEmail string `json:"target_email" binding:"required,email"`
	}

	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", bindingDetails(err))
		return
	}

	jobID, err := h.exportService.RequestExport(userID, req.TargetEmail)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTargetEmail) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to queue export")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Export request queued",
		"job_id":  jobID,
	})
}
