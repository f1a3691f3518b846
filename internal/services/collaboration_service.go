package services

import (
	"errors"
	"fmt"

	"github.com/internet-kid/notes-api/internal/authz"
	"github.com/internet-kid/notes-api/internal/cache"
	"github.com/internet-kid/notes-api/internal/models"
	"github.com/internet-kid/notes-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSelfCollaboration     = errors.New("the note owner cannot be added as a collaborator")
	ErrCollaborationExists   = errors.New("user is already a collaborator on this note")
	ErrCollaborationNotFound = errors.New("collaboration not found")
	ErrCollaboratorNotFound  = errors.New("target user not found")
)

// CollaborationService manages collaborator links on notes. Both operations
// are owner-only and keep the cache coherent: the target user's visible set
// and the note entry (whose payload embeds the collaborator list) are
// invalidated after every change.
type CollaborationService struct {
	collabRepo repository.CollaborationRepository
	noteRepo   repository.NoteRepository
	userRepo   repository.UserRepository
	notes      *cache.NoteCache
}

// NewCollaborationService creates a new CollaborationService
func NewCollaborationService(
	collabRepo repository.CollaborationRepository,
	noteRepo repository.NoteRepository,
	userRepo repository.UserRepository,
	notes *cache.NoteCache,
) *CollaborationService {
	return &CollaborationService{
		collabRepo: collabRepo,
		noteRepo:   noteRepo,
		userRepo:   userRepo,
		notes:      notes,
	}
}

// AddCollaborator grants targetUserID access to the note and returns the new
// link. Races between duplicate adds are settled by the unique index; the
// loser sees ErrCollaborationExists.
func (s *CollaborationService) AddCollaborator(actorID, noteID, targetUserID uint64) (*models.Collaboration, error) {
	note, err := s.loadOwnedNote(actorID, noteID)
	if err != nil {
		return nil, err
	}

	if targetUserID == note.UserID {
		return nil, ErrSelfCollaboration
	}

	if _, err := s.userRepo.FindByID(targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollaboratorNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.collabRepo.Find(noteID, targetUserID); err == nil {
		return nil, ErrCollaborationExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check collaboration: %w", err)
	}

	collab := &models.Collaboration{
		NoteID: noteID,
		UserID: targetUserID,
	}

	if err := s.collabRepo.Create(collab); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCollaborationExists
		}
		return nil, fmt.Errorf("failed to create collaboration: %w", err)
	}

	if err := s.invalidate(noteID, targetUserID); err != nil {
		return nil, err
	}

	return collab, nil
}

// RemoveCollaborator revokes targetUserID's access to the note.
func (s *CollaborationService) RemoveCollaborator(actorID, noteID, targetUserID uint64) error {
	if _, err := s.loadOwnedNote(actorID, noteID); err != nil {
		return err
	}

	existed, err := s.collabRepo.Delete(noteID, targetUserID)
	if err != nil {
		return fmt.Errorf("failed to delete collaboration: %w", err)
	}
	if !existed {
		return ErrCollaborationNotFound
	}

	return s.invalidate(noteID, targetUserID)
}

// loadOwnedNote loads the note and enforces the owner-only management rule:
// a stranger is told the note does not exist, a collaborator is told access
// is denied.
func (s *CollaborationService) loadOwnedNote(actorID, noteID uint64) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(noteID, "Collaborations")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	if !authz.CanView(actorID, note) {
		return nil, ErrNoteNotFound
	}
	if decision := authz.Decide(actorID, note, authz.ActionManageCollaborators); !decision.Allowed {
		return nil, ErrNotNoteOwner
	}

	return note, nil
}

func (s *CollaborationService) invalidate(noteID, targetUserID uint64) error {
	if err := s.notes.InvalidateNote(noteID); err != nil {
		return fmt.Errorf("failed to invalidate note cache: %w", err)
	}
	if err := s.notes.InvalidateUsers(targetUserID); err != nil {
		return fmt.Errorf("failed to invalidate visible-set cache: %w", err)
	}
	return nil
}
