package handlers

import (
	"net/http"

	"petshop/models"
	"petshop/services/shop"

	"github.com/gin-gonic/gin"
)

// ShopHandler serves the public shop-information page.
type ShopHandler struct {
	Svc shop.ShopService
}

// NewShopHandler creates a shop handler.
func NewShopHandler(svc shop.ShopService) *ShopHandler {
	return &ShopHandler{Svc: svc}
}

// GetShopInfoHandler returns the shop information.
// GET /api/shop
func (h *ShopHandler) GetShopInfoHandler(c *gin.Context) {
	info, err := h.Svc.GetInfo()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpdateShopInfoHandler stores the shop information (admin).
// PUT /api/admin/shop
func (h *ShopHandler) UpdateShopInfoHandler(c *gin.Context) {
	var info models.ShopInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.Svc.UpdateInfo(&info)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
