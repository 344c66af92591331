package handlers

import (
	"errors"
	"net/http"

	"petshop/middleware"
	"petshop/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler serves registration, login and profile endpoints.
type UserHandler struct {
	Svc user.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Svc: svc}
}

// RegisterHandler creates a member account.
// POST /api/users/register
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u, token, err := h.Svc.Register(input.Name, input.Email, input.Phone, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
}

// LoginHandler authenticates a member.
// POST /api/users/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	u, token, err := h.Svc.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// AdminLoginHandler authenticates the back-office admin.
// POST /api/admin/login
func (h *UserHandler) AdminLoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	token, err := h.Svc.AuthenticateAdmin(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetProfileHandler returns the caller's own account.
// GET /api/users/me
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	ident := middleware.CallerIdentity(c)
	u, err := h.Svc.GetProfile(ident.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler updates the caller's name and phone.
// PUT /api/users/me
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	ident := middleware.CallerIdentity(c)
	u, err := h.Svc.UpdateProfile(ident.UserID, input.Name, input.Phone)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteProfileHandler removes the caller's own account.
// DELETE /api/users/me
func (h *UserHandler) DeleteProfileHandler(c *gin.Context) {
	ident := middleware.CallerIdentity(c)
	if err := h.Svc.DeleteProfile(ident.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
