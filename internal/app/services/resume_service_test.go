package services_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
)

func TestResumeUpload(t *testing.T) {
	ctx := context.Background()
	file := &multipart.FileHeader{Filename: "resume.pdf"}

	t.Run("staff accounts cannot upload resumes", func(t *testing.T) {
		svc := services.NewResumeService(new(MockResumeRepo), new(MockFileStorage))
		_, err := svc.Upload(ctx, staffIdentity, file)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("first upload becomes the default", func(t *testing.T) {
		repo := new(MockResumeRepo)
		storage := new(MockFileStorage)
		svc := services.NewResumeService(repo, storage)

		repo.On("CountByUser", ctx, studentIdentity.UserID).Return(0, nil)
		storage.On("SaveFileWithPath", file, "resumes").Return("/uploads/resumes/abc.pdf", nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Resume")).Return(nil)

		resume, err := svc.Upload(ctx, studentIdentity, file)
		require.NoError(t, err)
		assert.True(t, resume.IsDefault)
		assert.Equal(t, studentIdentity.UserID, resume.UserID)
		assert.Equal(t, "/uploads/resumes/abc.pdf", resume.FileURL)
		repo.AssertExpectations(t)
	})

	t.Run("later uploads are not default", func(t *testing.T) {
		repo := new(MockResumeRepo)
		storage := new(MockFileStorage)
		svc := services.NewResumeService(repo, storage)

		repo.On("CountByUser", ctx, studentIdentity.UserID).Return(2, nil)
		storage.On("SaveFileWithPath", file, "resumes").Return("/uploads/resumes/def.pdf", nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Resume")).Return(nil)

		resume, err := svc.Upload(ctx, studentIdentity, file)
		require.NoError(t, err)
		assert.False(t, resume.IsDefault)
	})

	t.Run("upload is rejected at the cap", func(t *testing.T) {
		repo := new(MockResumeRepo)
		svc := services.NewResumeService(repo, new(MockFileStorage))

		repo.On("CountByUser", ctx, studentIdentity.UserID).Return(models.MaxResumesPerUser, nil)

		_, err := svc.Upload(ctx, studentIdentity, file)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResumeLimitReached)

		var customErr *apperrors.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, models.MaxResumesPerUser, customErr.Details["max"])
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResumeList(t *testing.T) {
	ctx := context.Background()

	t.Run("students see their own resumes", func(t *testing.T) {
		repo := new(MockResumeRepo)
		svc := services.NewResumeService(repo, new(MockFileStorage))

		repo.On("ListByUser", ctx, studentIdentity.UserID).Return([]models.Resume{{ID: 1}}, nil)

		resumes, err := svc.List(ctx, studentIdentity)
		require.NoError(t, err)
		assert.Len(t, resumes, 1)
		repo.AssertNotCalled(t, "ListDefaults", mock.Anything)
	})

	t.Run("staff see every user's default", func(t *testing.T) {
		repo := new(MockResumeRepo)
		svc := services.NewResumeService(repo, new(MockFileStorage))

		repo.On("ListDefaults", ctx).Return([]models.Resume{{ID: 1, IsDefault: true}, {ID: 5, IsDefault: true}}, nil)

		resumes, err := svc.List(ctx, staffIdentity)
		require.NoError(t, err)
		assert.Len(t, resumes, 2)
		repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})
}

func TestResumeUpdate(t *testing.T) {
	ctx := context.Background()
	owned := &models.Resume{ID: 10, UserID: studentIdentity.UserID, FileURL: "/uploads/resumes/abc.pdf"}

	t.Run("promoting to default goes through SetDefault", func(t *testing.T) {
		repo := new(MockResumeRepo)
		svc := services.NewResumeService(repo, new(MockFileStorage))

		isDefault := true
		repo.On("GetByID", ctx, owned.ID).Return(owned, nil)
		repo.On("SetDefault", ctx, owned.UserID, owned.ID).Return(nil)

		_, err := svc.Update(ctx, studentIdentity, owned.ID, &dto.UpdateResumeRequest{IsDefault: &isDefault})
		require.NoError(t, err)
		repo.AssertCalled(t, "SetDefault", ctx, owned.UserID, owned.ID)
		repo.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything)
	})

	t.Run("demoting clears the default flag only", func(t *testing.T) {
		repo := new(MockResumeRepo)
		svc := services.NewResumeService(repo, new(MockFileStorage))

		isDefault := false
		repo.On("GetByID", ctx, owned.ID).Return(owned, nil)
		repo.On("ClearDefault", ctx, owned.ID).Return(nil)

		_, err := svc.Update(ctx, studentIdentity, owned.ID, &dto.UpdateResumeRequest{IsDefault: &isDefault})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("other students cannot touch the resume", func(t *testing.T) {
		repo := new(MockResumeRepo)
		svc := services.NewResumeService(repo, new(MockFileStorage))

		foreign := &models.Resume{ID: 10, UserID: 99}
		isDefault := true
		repo.On("GetByID", ctx, foreign.ID).Return(foreign, nil)

		_, err := svc.Update(ctx, studentIdentity, foreign.ID, &dto.UpdateResumeRequest{IsDefault: &isDefault})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestResumeDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner delete removes row and stored file", func(t *testing.T) {
		repo := new(MockResumeRepo)
		storage := new(MockFileStorage)
		svc := services.NewResumeService(repo, storage)

		resume := &models.Resume{ID: 3, UserID: studentIdentity.UserID, FileURL: "/uploads/resumes/old.pdf", IsDefault: true}
		repo.On("GetByID", ctx, resume.ID).Return(resume, nil)
		repo.On("Delete", ctx, resume.ID).Return(nil)
		storage.On("DeleteFile", resume.FileURL).Return(nil)

		require.NoError(t, svc.Delete(ctx, studentIdentity, resume.ID))
		// No other resume is promoted when the default goes away.
		repo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure after row delete is tolerated", func(t *testing.T) {
		repo := new(MockResumeRepo)
		storage := new(MockFileStorage)
		svc := services.NewResumeService(repo, storage)

		resume := &models.Resume{ID: 3, UserID: studentIdentity.UserID, FileURL: "/uploads/resumes/old.pdf"}
		repo.On("GetByID", ctx, resume.ID).Return(resume, nil)
		repo.On("Delete", ctx, resume.ID).Return(nil)
		storage.On("DeleteFile", resume.FileURL).Return(errors.New("disk gone"))

		assert.NoError(t, svc.Delete(ctx, studentIdentity, resume.ID))
	})

	t.Run("unknown resume surfaces not found", func(t *testing.T) {
		repo := new(MockResumeRepo)
		svc := services.NewResumeService(repo, new(MockFileStorage))

		repo.On("GetByID", ctx, int64(404)).Return(nil, apperrors.ErrResumeNotFound)

		err := svc.Delete(ctx, studentIdentity, 404)
		assert.ErrorIs(t, err, apperrors.ErrResumeNotFound)
	})
}
