package dto

import (
	"time"

	"github.com/internet-kid/notes-api/internal/models"
)

// AddressDTO represents an address in API responses
type AddressDTO struct {
	ID         uint64 `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code,omitempty"`
}

// ContactDTO represents a contact in API responses
type ContactDTO struct {
	ID        uint64       `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name,omitempty"`
	Email     string       `json:"email,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	Addresses []AddressDTO `json:"addresses,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ToContactDTO converts a Contact model to ContactDTO
func ToContactDTO(contact models.Contact) ContactDTO {
	dto := ContactDTO{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}

	for _, address := range contact.Addresses {
		dto.Addresses = append(dto.Addresses, AddressDTO{
			ID:         address.ID,
			Street:     address.Street,
			City:       address.City,
			Province:   address.Province,
			Country:    address.Country,
			PostalCode: address.PostalCode,
		})
	}

	return dto
}

// ToContactDTOs converts a list of Contact models
func ToContactDTOs(contacts []models.Contact) []ContactDTO {
	dtos := make([]ContactDTO, len(contacts))
	for i, contact := range contacts {
		dtos[i] = ToContactDTO(contact)
	}
	return dtos
}
