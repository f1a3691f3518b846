package services

import (
	"errors"
	"fmt"

	"github.com/internet-kid/notes-api/internal/models"
	"github.com/internet-kid/notes-api/internal/repository"
	"github.com/internet-kid/notes-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound   = errors.New("contact not found")
	ErrFirstNameRequired = errors.New("first name is required")
)

// ContactService handles contact business logic. Contacts are strictly
// per-user: another user's contact is reported as not found.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// ContactInput holds the editable contact fields.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// CreateContact persists a contact owned by the actor.
func (s *ContactService) CreateContact(actorID uint64, input ContactInput) (*models.Contact, error) {
	if input.FirstName == "" {
		return nil, ErrFirstNameRequired
	}

	contact := &models.Contact{
		UserID:    actorID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// GetContact returns the actor's contact with its addresses.
func (s *ContactService) GetContact(actorID, contactID uint64) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	if contact.UserID != actorID {
		return nil, ErrContactNotFound
	}

	return contact, nil
}

// SearchContacts lists the actor's contacts matching the filter, paginated.
func (s *ContactService) SearchContacts(actorID uint64, filter repository.ContactFilter, params utils.PaginationParams) ([]models.Contact, int64, error) {
	contacts, total, err := s.contactRepo.Search(actorID, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search contacts: %w", err)
	}
	return contacts, total, nil
}

// UpdateContact applies the new fields to the actor's contact.
func (s *ContactService) UpdateContact(actorID, contactID uint64, input ContactInput) (*models.Contact, error) {
	if input.FirstName == "" {
		return nil, ErrFirstNameRequired
	}

	contact, err := s.GetContact(actorID, contactID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.Phone = input.Phone

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact removes the actor's contact and its addresses.
func (s *ContactService) DeleteContact(actorID, contactID uint64) error {
	if _, err := s.GetContact(actorID, contactID); err != nil {
		return err
	}

	if err := s.contactRepo.Delete(contactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}
