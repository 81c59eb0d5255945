package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rollnconnect/backend/internal/model"
	"github.com/rollnconnect/backend/internal/repository"
)

var (
	ErrInvalidNotification = errors.New("notification body must be a JSON document")
)

type NotificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ByUser(userID string) ([]*model.Notification, error) {
	return s.repo.ByUser(userID)
}

// Push stores a note for the user and returns the updated list newest first,
// mirroring what the client renders after posting.
func (s *NotificationService) Push(userID string, doc json.RawMessage) ([]*model.Notification, error) {
	if !json.Valid(doc) {
		return nil, ErrInvalidNotification
	}

	notification := &model.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Data:      doc,
		CreatedAt: time.Now().UnixMilli(),
	}

	err := s.repo.Create(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to push notification: %w", err)
	}

	return s.repo.ByUser(userID)
}
