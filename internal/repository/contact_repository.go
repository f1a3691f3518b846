package repository

import (
	"github.com/internet-kid/notes-api/internal/database"
	"github.com/internet-kid/notes-api/internal/models"
	"github.com/internet-kid/notes-api/internal/utils"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID finds a contact by ID with its addresses
func (r *GormContactRepository) FindByID(id uint64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.Preload("Addresses").First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// Search lists a user's contacts matching the filter, paginated
func (r *GormContactRepository) Search(userID uint64, filter ContactFilter, params utils.PaginationParams) ([]models.Contact, int64, error) {
	var contacts []models.Contact

	query := r.db.Model(&models.Contact{}).Where("user_id = ?", userID)

	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}
	if filter.Email != "" {
		query = query.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("contacts.created_at DESC, contacts.id DESC").
		Scopes(database.Paginate(params)).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// Update updates a contact
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete deletes a contact and cascades its addresses
func (r *GormContactRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&models.Address{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Contact{}, id).Error
	})
}
