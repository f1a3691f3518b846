package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/internet-kid/notes-api/internal/dto"
	apierrors "github.com/internet-kid/notes-api/internal/errors"
	"github.com/internet-kid/notes-api/internal/middleware"
	"github.com/internet-kid/notes-api/internal/services"
)

// NoteHandler coordinates note HTTP handlers.
type NoteHandler struct {
	noteService *services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// NoteRequest is the payload for creating or updating a note.
type NoteRequest struct {
	Title string   `json:"title" binding:"required,max=255"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

// Create creates a new note owned by the current user.
func (h *NoteHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", bindingDetails(err))
		return
	}

	note, err := h.noteService.CreateNote(services.CreateNoteInput{
		OwnerID: userID,
		Title:   req.Title,
		Body:    req.Body,
		Tags:    req.Tags,
	})
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"note_id": note.ID,
	})
}

// List returns the current user's visible notes.
func (h *NoteHandler) List(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notes, err := h.noteService.ListVisibleNotes(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": dto.ToNoteDTOs(notes),
	})
}

// Get returns a single visible note.
func (h *NoteHandler) Get(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	note, err := h.noteService.GetNote(userID, noteID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note": dto.ToNoteDTO(*note),
	})
}

// Update replaces the content of a visible note.
func (h *NoteHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", bindingDetails(err))
		return
	}

	note, err := h.noteService.UpdateNote(userID, noteID, services.UpdateNoteInput{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	})
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note": dto.ToNoteDTO(*note),
	})
}

// Delete removes a note. Owner only.
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	if err := h.noteService.DeleteNote(userID, noteID); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note deleted successfully",
	})
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotNoteOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
