package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/internet-kid/notes-api/internal/dto"
	apierrors "github.com/internet-kid/notes-api/internal/errors"
	"github.com/internet-kid/notes-api/internal/middleware"
	"github.com/internet-kid/notes-api/internal/repository"
	"github.com/internet-kid/notes-api/internal/services"
	"github.com/internet-kid/notes-api/internal/utils"
)

// ContactHandler coordinates contact HTTP handlers.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactRequest is the payload for creating or updating a contact.
type ContactRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Email     string `json:"email" binding:"omitempty,email,max=200"`
	Phone     string `json:"phone" binding:"max=20"`
}

// Create creates a new contact.
func (h *ContactHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", bindingDetails(err))
		return
	}

	contact, err := h.contactService.CreateContact(userID, services.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"contact_id": contact.ID,
	})
}

// Search lists the current user's contacts with filters and pagination.
func (h *ContactHandler) Search(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)
	filter := repository.ContactFilter{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
	}

	contacts, total, err := h.contactService.SearchContacts(userID, filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to search contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": dto.ToContactDTOs(contacts),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Get returns a single contact with its addresses.
func (h *ContactHandler) Get(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact ID")
		return
	}

	contact, err := h.contactService.GetContact(userID, contactID)
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contact": dto.ToContactDTO(*contact),
	})
}

// Update replaces a contact's fields.
func (h *ContactHandler) Update(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact ID")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", bindingDetails(err))
		return
	}

	contact, err := h.contactService.UpdateContact(userID, contactID, services.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contact": dto.ToContactDTO(*contact),
	})
}

// Delete removes a contact and its addresses.
func (h *ContactHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	contactID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid contact ID")
		return
	}

	if err := h.contactService.DeleteContact(userID, contactID); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact deleted successfully",
	})
}

func respondContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFirstNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrContactNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
