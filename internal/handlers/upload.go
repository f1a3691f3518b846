package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/internet-kid/notes-api/internal/constants"
	apierrors "github.com/internet-kid/notes-api/internal/errors"
	"github.com/internet-kid/notes-api/internal/services"
)

// UploadHandler coordinates the image upload endpoint.
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// UploadImage stores a multipart image upload and returns its public
// location.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("data")
	if err != nil {
		apierrors.BadRequest(c, "Image file is required")
		return
	}

	if fileHeader.Size > constants.MaxUploadSize {
		apierrors.BadRequest(c, "Image exceeds the maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		apierrors.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	location, err := h.uploadService.UploadImage(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImageType) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to store image")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"file_location": location,
	})
}
