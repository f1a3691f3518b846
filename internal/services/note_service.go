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
	ErrNoteNotFound  = errors.New("note not found")
	ErrNotNoteOwner  = errors.New("only the note owner can perform this action")
	ErrTitleRequired = errors.New("title is required")
)

// NoteService handles note business logic: guarded CRUD, the visible-set
// query, and keeping the read-through cache coherent with every mutation.
type NoteService struct {
	noteRepo repository.NoteRepository
	notes    *cache.NoteCache
}

// NewNoteService creates a new NoteService
func NewNoteService(noteRepo repository.NoteRepository, notes *cache.NoteCache) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
		notes:    notes,
	}
}

// CreateNoteInput represents input for creating a note
type CreateNoteInput struct {
	OwnerID uint64
	Title   string
	Body    string
	Tags    []string
}

// UpdateNoteInput represents input for updating a note
type UpdateNoteInput struct {
	Title string
	Body  string
	Tags  []string
}

// CreateNote persists a note owned by the actor and invalidates the owner's
// visible-set entry.
func (s *NoteService) CreateNote(input CreateNoteInput) (*models.Note, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	note := &models.Note{
		UserID: input.OwnerID,
		Title:  input.Title,
		Body:   input.Body,
		Tags:   models.TagList(input.Tags),
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if err := s.notes.InvalidateUsers(input.OwnerID); err != nil {
		return nil, fmt.Errorf("failed to invalidate cache: %w", err)
	}

	return note, nil
}

// ListVisibleNotes returns the actor's visible set (owned plus collaborated),
// served from the cache when fresh.
func (s *NoteService) ListVisibleNotes(actorID uint64) ([]models.Note, error) {
	return s.notes.GetVisibleSet(actorID, func() ([]models.Note, error) {
		return s.noteRepo.VisibleTo(actorID)
	})
}

// GetNote returns a single note if the actor may view it. A note outside the
// actor's visible set is reported as not found, so its existence is never
// leaked.
func (s *NoteService) GetNote(actorID, noteID uint64) (*models.Note, error) {
	note, err := s.notes.GetNote(noteID, func() (*models.Note, error) {
		return s.noteRepo.FindByID(noteID, "Collaborations")
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	if !authz.CanView(actorID, note) {
		return nil, ErrNoteNotFound
	}

	return note, nil
}

// UpdateNote applies the new content if the actor is the owner or a
// collaborator, then invalidates the single-note entry and the visible-set
// entries of the owner and every collaborator before returning. The
// visible-set payloads embed note content, so every list containing this
// note must go.
func (s *NoteService) UpdateNote(actorID, noteID uint64, input UpdateNoteInput) (*models.Note, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}

	// The collaborator set drives both the guard and the invalidation fanout,
	// so it is always loaded fresh from the store, never from the cache.
	note, err := s.noteRepo.FindByID(noteID, "Collaborations")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	if decision := authz.Decide(actorID, note, authz.ActionUpdate); !decision.Allowed {
		return nil, ErrNoteNotFound
	}

	note.Title = input.Title
	note.Body = input.Body
	note.Tags = models.TagList(input.Tags)

	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	if err := s.invalidate(note); err != nil {
		return nil, err
	}

	return note, nil
}

// DeleteNote removes the note, cascading its collaboration links, and
// invalidates every entry that could still mention it. Owner-only: a
// collaborator gets a permission error, a stranger gets not-found.
func (s *NoteService) DeleteNote(actorID, noteID uint64) error {
	note, err := s.noteRepo.FindByID(noteID, "Collaborations")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to find note: %w", err)
	}

	if !authz.CanView(actorID, note) {
		return ErrNoteNotFound
	}
	if decision := authz.Decide(actorID, note, authz.ActionDelete); !decision.Allowed {
		return ErrNotNoteOwner
	}

	if err := s.noteRepo.Delete(noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return s.invalidate(note)
}

// invalidate drops the note entry and the visible-set entries of the owner
// and every collaborator recorded on the note.
func (s *NoteService) invalidate(note *models.Note) error {
	if err := s.notes.InvalidateNote(note.ID); err != nil {
		return fmt.Errorf("failed to invalidate note cache: %w", err)
	}

	userIDs := make([]uint64, 0, len(note.Collaborations)+1)
	userIDs = append(userIDs, note.UserID)
	for _, collab := range note.Collaborations {
		userIDs = append(userIDs, collab.UserID)
	}

	if err := s.notes.InvalidateUsers(userIDs...); err != nil {
		return fmt.Errorf("failed to invalidate visible-set cache: %w", err)
	}

	return nil
}
