package handlers

import (
	"errors"
	"net/http"

	"petshop/middleware"
	"petshop/models"
	"petshop/services/pet"

	"github.com/gin-gonic/gin"
)

// PetHandler serves member pet profiles and the public pets-for-sale registry.
type PetHandler struct {
	Svc pet.PetService
}

// NewPetHandler creates a pet handler.
func NewPetHandler(svc pet.PetService) *PetHandler {
	return &PetHandler{Svc: svc}
}

// CreatePetHandler adds a pet profile for the caller.
// POST /api/pets
func (h *PetHandler) CreatePetHandler(c *gin.Context) {
	var p models.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	ident := middleware.CallerIdentity(c)
	created, err := h.Svc.CreateProfile(ident.UserID, &p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPetsHandler lists the caller's pet profiles.
// GET /api/pets
func (h *PetHandler) ListPetsHandler(c *gin.Context) {
	ident := middleware.CallerIdentity(c)
	pets, err := h.Svc.ListProfiles(ident.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

// UpdatePetHandler edits one of the caller's pet profiles.
// PUT /api/pets/:id
func (h *PetHandler) UpdatePetHandler(c *gin.Context) {
	var p models.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")
	ident := middleware.CallerIdentity(c)
	updated, err := h.Svc.UpdateProfile(ident.UserID, &p)
	if err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePetHandler removes one of the caller's pet profiles.
// DELETE /api/pets/:id
func (h *PetHandler) DeletePetHandler(c *gin.Context) {
	ident := middleware.CallerIdentity(c)
	if err := h.Svc.DeleteProfile(ident.UserID, c.Param("id")); err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListSalePetsHandler returns the public pets-for-sale listings.
// GET /api/sale-pets
func (h *PetHandler) ListSalePetsHandler(c *gin.Context) {
	includeSold := c.Query("includeSold") == "true"
	pets, err := h.Svc.ListSalePets(includeSold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets})
}

// GetSalePetHandler returns one listing.
// GET /api/sale-pets/:id
func (h *PetHandler) GetSalePetHandler(c *gin.Context) {
	p, err := h.Svc.GetSalePet(c.Param("id"))
	if err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateSalePetHandler adds a listing (admin).
// POST /api/admin/sale-pets
func (h *PetHandler) CreateSalePetHandler(c *gin.Context) {
	var p models.SalePet
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Svc.CreateSalePet(&p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSalePetHandler edits a listing, including marking it sold (admin).
// PUT /api/admin/sale-pets/:id
func (h *PetHandler) UpdateSalePetHandler(c *gin.Context) {
	var p models.SalePet
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	p.ID = c.Param("id")
	updated, err := h.Svc.UpdateSalePet(&p)
	if err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSalePetHandler removes a listing (admin).
// DELETE /api/admin/sale-pets/:id
func (h *PetHandler) DeleteSalePetHandler(c *gin.Context) {
	if err := h.Svc.DeleteSalePet(c.Param("id")); err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
