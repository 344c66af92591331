package user

import (
	"errors"
	"fmt"
	"time"

	"petshop/config"
	userRepo "petshop/database/repository/user"
	"petshop/models"
	"petshop/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors surfaced to handlers.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"

	tokenLifetime = 72 * time.Hour
)

// UserService manages member accounts and sessions.
type UserService interface {
	// Register creates a member account and returns it with a session token.
	Register(name, email, phone, password string) (*models.User, string, error)
	// Authenticate verifies credentials and returns the user with a token.
	Authenticate(email, password string) (*models.User, string, error)
	// AuthenticateAdmin verifies the configured admin credentials and returns
	// an admin token.
	AuthenticateAdmin(email, password string) (string, error)
	// GetProfile fetches a member account by id.
	GetProfile(id string) (*models.User, error)
	// UpdateProfile updates name and phone on a member account.
	UpdateProfile(id, name, phone string) (*models.User, error)
	// DeleteProfile removes a member account.
	DeleteProfile(id string) error
	// ExistsByEmail reports whether a member account exists for the email.
	ExistsByEmail(email string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// NewDefaultUserService creates a user service over the given repository.
func NewDefaultUserService(repo userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{Repo: repo}
}

// Register creates a member account. The email is the natural key; a second
// registration with the same address fails.
func (s *DefaultUserService) Register(name, email, phone, password string) (*models.User, string, error) {
	if name == "" || email == "" {
		return nil, "", fmt.Errorf("name and email are required")
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, RoleMember, tokenLifetime)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate verifies member credentials.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(u.ID, u.Email, RoleMember, tokenLifetime)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// AuthenticateAdmin checks the back-office credentials from configuration.
// There is one admin identity; it is not a member account.
func (s *DefaultUserService) AuthenticateAdmin(email, password string) (string, error) {
	cfg := config.AppConfig
	if cfg.AdminEmail == "" || email != cfg.AdminEmail || password != cfg.AdminPassword {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateToken("admin", email, RoleAdmin, tokenLifetime)
}

// GetProfile fetches a member account by id.
func (s *DefaultUserService) GetProfile(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile updates the mutable profile fields.
func (s *DefaultUserService) UpdateProfile(id, name, phone string) (*models.User, error) {
	u, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		u.Name = name
	}
	u.Phone = phone
	u.UpdatedAt = time.Now()
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteProfile removes a member account. Existing appointments are kept;
// they carry their own contact snapshot and simply stop resolving to an
// account.
func (s *DefaultUserService) DeleteProfile(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ExistsByEmail reports whether a member account exists for the email.
func (s *DefaultUserService) ExistsByEmail(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}
