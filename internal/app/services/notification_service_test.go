package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
)

func TestNotificationCreate(t *testing.T) {
	ctx := context.Background()
	req := &dto.NotificationRequest{Title: "Placement drive", Message: "Initech visits on Friday"}

	t.Run("students cannot publish notifications", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := services.NewNotificationService(repo)

		_, err := svc.Create(ctx, studentIdentity, req)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("staff create records the author", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := services.NewNotificationService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*models.Notification")).Return(nil)

		notification, err := svc.Create(ctx, staffIdentity, req)
		require.NoError(t, err)
		assert.Equal(t, req.Title, notification.Title)
		require.NotNil(t, notification.CreatedBy)
		assert.Equal(t, staffIdentity.UserID, *notification.CreatedBy)
	})
}

func TestNotificationReadSurface(t *testing.T) {
	ctx := context.Background()

	repo := new(MockNotificationRepo)
	svc := services.NewNotificationService(repo)

	repo.On("List", ctx).Return([]models.Notification{{ID: 2}, {ID: 1}}, nil)
	repo.On("GetByID", ctx, int64(2)).Return(&models.Notification{ID: 2, Title: "Placement drive"}, nil)

	notifications, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notifications, 2)

	notification, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Placement drive", notification.Title)
}

func TestNotificationMutationsAreStaffOnly(t *testing.T) {
	ctx := context.Background()
	req := &dto.NotificationRequest{Title: "Updated", Message: "New venue"}

	t.Run("student update is denied", func(t *testing.T) {
		svc := services.NewNotificationService(new(MockNotificationRepo))
		_, err := svc.Update(ctx, studentIdentity, 1, req)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("student delete is denied", func(t *testing.T) {
		svc := services.NewNotificationService(new(MockNotificationRepo))
		err := svc.Delete(ctx, studentIdentity, 1)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("staff update replaces title and message", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := services.NewNotificationService(repo)

		existing := &models.Notification{ID: 1, Title: "Old", Message: "Old venue"}
		repo.On("GetByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*models.Notification")).Return(nil)

		notification, err := svc.Update(ctx, staffIdentity, existing.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "Updated", notification.Title)
		assert.Equal(t, "New venue", notification.Message)
	})

	t.Run("staff delete goes through", func(t *testing.T) {
		repo := new(MockNotificationRepo)
		svc := services.NewNotificationService(repo)

		repo.On("Delete", ctx, int64(1)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, staffIdentity, 1))
	})
}
