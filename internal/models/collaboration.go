package models

import "time"

// Collaboration grants a non-owner user read/update access to a note.
// The (note_id, user_id) pair is unique; duplicates surface as a key
// conflict even when two creates race.
type Collaboration struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	NoteID    uint64    `gorm:"not null;uniqueIndex:idx_collaborations_note_user" json:"note_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_collaborations_note_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Note Note `gorm:"foreignKey:NoteID" json:"note,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
