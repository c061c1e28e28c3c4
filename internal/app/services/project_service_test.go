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

func TestProjectCreate(t *testing.T) {
	ctx := context.Background()
	req := &dto.CreateProjectRequest{Title: "Course Planner"}

	t.Run("staff accounts do not hold portfolios", func(t *testing.T) {
		svc := services.NewProjectService(new(MockProjectRepo))
		_, err := svc.Create(ctx, staffIdentity, req)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("project is attached to the caller", func(t *testing.T) {
		repo := new(MockProjectRepo)
		svc := services.NewProjectService(repo)

		repo.On("Create", ctx, mock.AnythingOfType("*models.Project")).Return(nil)

		project, err := svc.Create(ctx, studentIdentity, req)
		require.NoError(t, err)
		assert.Equal(t, studentIdentity.UserID, project.UserID)
		assert.Equal(t, req.Title, project.Title)
	})
}

func TestProjectList(t *testing.T) {
	ctx := context.Background()

	t.Run("student list ignores a foreign filter", func(t *testing.T) {
		repo := new(MockProjectRepo)
		svc := services.NewProjectService(repo)

		repo.On("List", ctx, &studentIdentity.UserID).Return([]models.Project{}, nil)

		other := int64(42)
		_, err := svc.List(ctx, studentIdentity, &other)
		require.NoError(t, err)
		repo.AssertCalled(t, "List", ctx, &studentIdentity.UserID)
	})

	t.Run("staff list without filter sees everything", func(t *testing.T) {
		repo := new(MockProjectRepo)
		svc := services.NewProjectService(repo)

		repo.On("List", ctx, (*int64)(nil)).Return([]models.Project{{ID: 1}, {ID: 2}}, nil)

		projects, err := svc.List(ctx, staffIdentity, nil)
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})
}

func TestProjectDelete(t *testing.T) {
	ctx := context.Background()
	owned := &models.Project{ID: 3, UserID: studentIdentity.UserID}

	t.Run("owner can delete", func(t *testing.T) {
		repo := new(MockProjectRepo)
		svc := services.NewProjectService(repo)

		repo.On("GetByID", ctx, owned.ID).Return(owned, nil)
		repo.On("Delete", ctx, owned.ID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, studentIdentity, owned.ID))
	})

	t.Run("staff can delete any project", func(t *testing.T) {
		repo := new(MockProjectRepo)
		svc := services.NewProjectService(repo)

		repo.On("GetByID", ctx, owned.ID).Return(owned, nil)
		repo.On("Delete", ctx, owned.ID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, staffIdentity, owned.ID))
	})

	t.Run("other students cannot delete", func(t *testing.T) {
		repo := new(MockProjectRepo)
		svc := services.NewProjectService(repo)

		foreign := &models.Project{ID: 3, UserID: 99}
		repo.On("GetByID", ctx, foreign.ID).Return(foreign, nil)

		err := svc.Delete(ctx, studentIdentity, foreign.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown project surfaces not found", func(t *testing.T) {
		repo := new(MockProjectRepo)
		svc := services.NewProjectService(repo)

		repo.On("GetByID", ctx, int64(404)).Return(nil, apperrors.ErrProjectNotFound)

		err := svc.Delete(ctx, studentIdentity, 404)
		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
	})
}
