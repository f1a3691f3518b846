package repository

import (
	"github.com/internet-kid/notes-api/internal/models"
	"github.com/internet-kid/notes-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByRefreshToken finds the user holding the given refresh token
	FindByRefreshToken(token string) (*models.User, error)

	// SearchByUsername lists users whose username contains the fragment
	SearchByUsername(fragment string) ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *models.Note) error

	// FindByID finds a note by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Note, error)

	// VisibleTo lists the notes a user owns or collaborates on
	VisibleTo(userID uint64) ([]models.Note, error)

	// Update updates a note
	Update(note *models.Note) error

	// Delete deletes a note and cascades its collaboration links
	Delete(id uint64) error
}

// CollaborationRepository defines the interface for collaboration data access
type CollaborationRepository interface {
	// Create creates a collaboration link
	Create(collab *models.Collaboration) error

	// Find finds the link for a (note, user) pair
	Find(noteID, userID uint64) (*models.Collaboration, error)

	// Delete removes the link for a (note, user) pair; reports whether a
	// link existed
	Delete(noteID, userID uint64) (bool, error)
}

// ContactFilter holds filtering options for searching contacts
type ContactFilter struct {
	Name  string
	Email string
	Phone string
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByID finds a contact by ID with its addresses
	FindByID(id uint64) (*models.Contact, error)

	// Search lists a user's contacts matching the filter, paginated
	Search(userID uint64, filter ContactFilter, params utils.PaginationParams) ([]models.Contact, int64, error)

	// Update updates a contact
	Update(contact *models.Contact) error

	// Delete deletes a contact and cascades its addresses
	Delete(id uint64) error
}
