package repository

import (
	"github.com/internet-kid/notes-api/internal/models"
	"gorm.io/gorm"
)

// GormCollaborationRepository is a GORM implementation of CollaborationRepository
type GormCollaborationRepository struct {
	db *gorm.DB
}

// NewCollaborationRepository creates a new CollaborationRepository
func NewCollaborationRepository(db *gorm.DB) CollaborationRepository {
	return &GormCollaborationRepository{db: db}
}

// Create creates a collaboration link. A concurrent duplicate loses at the
// unique (note_id, user_id) index and gets gorm.ErrDuplicatedKey.
func (r *GormCollaborationRepository) Create(collab *models.Collaboration) error {
	return r.db.Create(collab).Error
}

// Find finds the link for a (note, user) pair
func (r *GormCollaborationRepository) Find(noteID, userID uint64) (*models.Collaboration, error) {
	var collab models.Collaboration
	if err := r.db.Where("note_id = ? AND user_id = ?", noteID, userID).
		First(&collab).Error; err != nil {
		return nil, err
	}
	return &collab, nil
}

// Delete removes the link for a (note, user) pair; reports whether a link
// existed
func (r *GormCollaborationRepository) Delete(noteID, userID uint64) (bool, error) {
	result := r.db.Where("note_id = ? AND user_id = ?", noteID, userID).
		Delete(&models.Collaboration{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
