package notification

import (
	"time"

	notificationRepo "petshop/database/repository/notification"
	"petshop/models"

	"github.com/google/uuid"
)

// NotificationService stores and serves in-app member notifications.
type NotificationService interface {
	// Notify records a notification for a member.
	Notify(userID, notifType, title, body string) error
	// ListForUser returns a member's notifications, newest first.
	ListForUser(userID string) ([]models.Notification, error)
	// MarkRead flags one of the member's notifications as read.
	MarkRead(id, userID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// NewDefaultNotificationService creates a notification service over the
// given repository.
func NewDefaultNotificationService(repo notificationRepo.NotificationRepository) *DefaultNotificationService {
	return &DefaultNotificationService{Repo: repo}
}

// Notify records a notification for a member.
func (s *DefaultNotificationService) Notify(userID, notifType, title, body string) error {
	return s.Repo.Create(&models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      notifType,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	})
}

// ListForUser returns a member's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.Repo.FindByUser(userID)
}

// MarkRead flags one of the member's notifications as read.
func (s *DefaultNotificationService) MarkRead(id, userID string) error {
	return s.Repo.MarkRead(id, userID)
}
