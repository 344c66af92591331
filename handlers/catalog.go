package handlers

import (
	"errors"
	"net/http"

	catalogRepo "petshop/database/repository/catalog"
	"petshop/models"
	"petshop/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public catalog and the admin catalog management
// endpoints.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// ListServicesHandler returns all bookable services.
// GET /api/services
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Svc.ListServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetServiceHandler returns one service definition.
// GET /api/services/:id
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListDayCareOptionsHandler returns the day-care price list.
// GET /api/daycare
func (h *CatalogHandler) ListDayCareOptionsHandler(c *gin.Context) {
	options, err := h.Svc.ListDayCareOptions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

// CreateServiceHandler adds a service definition (admin).
// POST /api/admin/services
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.ServiceDefinition
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.CreateService(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler replaces a service definition (admin).
// PUT /api/admin/services/:id
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.ServiceDefinition
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	if err := h.Svc.UpdateService(&svc); err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler removes a service definition (admin). Existing
// appointments keep their frozen duration and price.
// DELETE /api/admin/services/:id
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Svc.DeleteService(c.Param("id")); err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// UpdateDayCareOptionHandler upserts a day-care price (admin).
// PUT /api/admin/daycare/:type
func (h *CatalogHandler) UpdateDayCareOptionHandler(c *gin.Context) {
	var opt models.DayCareOption
	if err := c.ShouldBindJSON(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	opt.Type = c.Param("type")
	if err := h.Svc.UpdateDayCareOption(&opt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, opt)
}

// GetSettingsHandler returns the effective appointment settings (admin).
// GET /api/admin/settings
func (h *CatalogHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Svc.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettingsHandler stores a new global per-slot cap (admin). Existing
// appointments are untouched; the cap constrains new reservations only.
// PUT /api/admin/settings
func (h *CatalogHandler) UpdateSettingsHandler(c *gin.Context) {
	var input struct {
		MaxBookingsPerTimeSlot int `json:"maxBookingsPerTimeSlot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	settings, err := h.Svc.UpdateSettings(input.MaxBookingsPerTimeSlot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
