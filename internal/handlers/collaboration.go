package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/internet-kid/notes-api/internal/errors"
	"github.com/internet-kid/notes-api/internal/middleware"
	"github.com/internet-kid/notes-api/internal/services"
)

// CollaborationHandler coordinates collaborator HTTP handlers.
type CollaborationHandler struct {
	collabService *services.CollaborationService
}

// NewCollaborationHandler creates a new CollaborationHandler.
func NewCollaborationHandler(collabService *services.CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{
		collabService: collabService,
	}
}

// CollaborationRequest names the note and the target user.
type CollaborationRequest struct {
	NoteID uint64 `json:"note_id" binding:"required"`
	UserID uint64 `json:"user_id" binding:"required"`
}

// Create adds a collaborator to a note. Owner only.
func (h *CollaborationHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req CollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", bindingDetails(err))
		return
	}

	collab, err := h.collabService.AddCollaborator(userID, req.NoteID, req.UserID)
	if err != nil {
		respondCollaborationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"collaboration_id": collab.ID,
	})
}

// Delete removes a collaborator from a note. Owner only.
func (h *CollaborationHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req CollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", bindingDetails(err))
		return
	}

	if err := h.collabService.RemoveCollaborator(userID, req.NoteID, req.UserID); err != nil {
		respondCollaborationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Collaboration removed successfully",
	})
}

func respondCollaborationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSelfCollaboration):
		apierrors.InvalidOperation(c, err.Error())
	case errors.Is(err, services.ErrCollaborationExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNoteNotFound),
		errors.Is(err, services.ErrCollaboratorNotFound),
		errors.Is(err, services.ErrCollaborationNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotNoteOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
