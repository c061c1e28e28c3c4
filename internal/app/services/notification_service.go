package services

import (
	"context"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
)

// NotificationService handles staff announcements
type NotificationService struct {
	notificationRepo repositories.INotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo repositories.INotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// Create publishes an announcement. Staff only.
func (s *NotificationService) Create(ctx context.Context, identity models.Identity, req *dto.NotificationRequest) (*models.Notification, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	notification := &models.Notification{
		Title:     req.Title,
		Message:   req.Message,
		CreatedBy: &identity.UserID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// List retrieves all announcements, newest first
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.notificationRepo.List(ctx)
}

// Get retrieves a single announcement
func (s *NotificationService) Get(ctx context.Context, id int64) (*models.Notification, error) {
	return s.notificationRepo.GetByID(ctx, id)
}

// Update replaces the title and message of an announcement. Staff only.
func (s *NotificationService) Update(ctx context.Context, identity models.Identity, id int64, req *dto.NotificationRequest) (*models.Notification, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	notification, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	notification.Title = req.Title
	notification.Message = req.Message

	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// Delete removes an announcement. Staff only.
func (s *NotificationService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if !identity.IsStaff() {
		return apperrors.ErrPermissionDenied
	}
	return s.notificationRepo.Delete(ctx, id)
}
