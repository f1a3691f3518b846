package repository

import (
	"github.com/internet-kid/notes-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindByID finds a note by ID with optional preloading
func (r *GormNoteRepository) FindByID(id uint64, preload ...string) (*models.Note, error) {
	var note models.Note
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&note, id).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

// VisibleTo lists the notes a user owns or collaborates on. A note never
// appears twice: owners cannot also be collaborators.
func (r *GormNoteRepository) VisibleTo(userID uint64) ([]models.Note, error) {
	var notes []models.Note

	collabSubQuery := r.db.Model(&models.Collaboration{}).
		Select("1").
		Where("collaborations.note_id = notes.id").
		Where("collaborations.user_id = ?", userID)

	err := r.db.Model(&models.Note{}).
		Where("notes.user_id = ? OR EXISTS (?)", userID, collabSubQuery).
		Order("notes.created_at DESC, notes.id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Update updates a note
func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// Delete deletes a note and cascades its collaboration links
func (r *GormNoteRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", id).Delete(&models.Collaboration{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Note{}, id).Error
	})
}
