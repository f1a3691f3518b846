package dto

import (
	"time"

	"github.com/internet-kid/notes-api/internal/models"
)

// NoteDTO represents a note in API responses
type NoteDTO struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Tags          []string  `json:"tags"`
	Collaborators []uint64  `json:"collaborators,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	dto := NoteDTO{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Body:      note.Body,
		Tags:      note.Tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}

	// Include collaborators if preloaded
	for _, collab := range note.Collaborations {
		dto.Collaborators = append(dto.Collaborators, collab.UserID)
	}

	return dto
}

// ToNoteDTOs converts a list of Note models
func ToNoteDTOs(notes []models.Note) []NoteDTO {
	dtos := make([]NoteDTO, len(notes))
	for i, note := range notes {
		dtos[i] = ToNoteDTO(note)
	}
	return dtos
}
