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

func strPtr(s string) *string { return &s }

func TestGetUserDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("detail merges academic and education records", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		user := &models.User{ID: 7, Email: "student@college.edu", FullName: "Jane Doe", Role: models.RoleStudent}
		academic := &models.AcademicDetail{UserID: 7, RollNumber: "2023CS042", CPI: 8.4}
		repo.On("GetByID", ctx, user.ID).Return(user, nil)
		repo.On("GetAcademicDetail", ctx, user.ID).Return(academic, nil)
		repo.On("GetEducationDetail", ctx, user.ID).Return(nil, nil)

		detail, err := svc.GetUserDetail(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, detail.Email)
		require.NotNil(t, detail.AcademicDetail)
		assert.Equal(t, "2023CS042", detail.AcademicDetail.RollNumber)
		assert.Nil(t, detail.EducationDetail)
	})

	t.Run("unknown user surfaces not found", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		repo.On("GetByID", ctx, int64(404)).Return(nil, apperrors.ErrUserNotFound)

		_, err := svc.GetUserDetail(ctx, 404)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	freshUser := func() *models.User {
		return &models.User{ID: studentIdentity.UserID, Email: studentIdentity.Email, FullName: "Jane Doe", Role: models.RoleStudent, IsActive: true}
	}

	t.Run("nil fields preserve existing values", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		user := freshUser()
		user.PhoneNumber = strPtr("9876543210")
		repo.On("GetByID", ctx, user.ID).Return(user, nil)
		repo.On("UpdateProfile", ctx, mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
			updated := args.Get(1).(*models.User)
			assert.Equal(t, "Jane Q. Doe", updated.FullName)
			require.NotNil(t, updated.PhoneNumber)
			assert.Equal(t, "9876543210", *updated.PhoneNumber)
		})
		repo.On("GetAcademicDetail", ctx, user.ID).Return(nil, nil)
		repo.On("GetEducationDetail", ctx, user.ID).Return(nil, nil)

		_, err := svc.UpdateProfile(ctx, studentIdentity, &dto.UpdateProfileRequest{FullName: strPtr("Jane Q. Doe")}, nil)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("short phone number is rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		repo.On("GetByID", ctx, studentIdentity.UserID).Return(freshUser(), nil)

		_, err := svc.UpdateProfile(ctx, studentIdentity, &dto.UpdateProfileRequest{PhoneNumber: strPtr("12345")}, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("schemeless github link is rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		repo.On("GetByID", ctx, studentIdentity.UserID).Return(freshUser(), nil)

		_, err := svc.UpdateProfile(ctx, studentIdentity, &dto.UpdateProfileRequest{GithubLink: strPtr("github.com/janedoe")}, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("malformed alternate email is rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		repo.On("GetByID", ctx, studentIdentity.UserID).Return(freshUser(), nil)

		_, err := svc.UpdateProfile(ctx, studentIdentity, &dto.UpdateProfileRequest{AlternateEmail: strPtr("not-an-email")}, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("malformed birth date is rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		repo.On("GetByID", ctx, studentIdentity.UserID).Return(freshUser(), nil)

		_, err := svc.UpdateProfile(ctx, studentIdentity, &dto.UpdateProfileRequest{BirthDate: strPtr("15-01-2002")}, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})

	t.Run("nested academic detail is upserted for the caller", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		user := freshUser()
		repo.On("GetByID", ctx, user.ID).Return(user, nil)
		repo.On("UpdateProfile", ctx, mock.AnythingOfType("*models.User")).Return(nil)
		repo.On("UpsertAcademicDetail", ctx, mock.AnythingOfType("*models.AcademicDetail")).Return(nil).Run(func(args mock.Arguments) {
			detail := args.Get(1).(*models.AcademicDetail)
			assert.Equal(t, studentIdentity.UserID, detail.UserID)
			assert.Equal(t, "2023CS042", detail.RollNumber)
		})
		repo.On("GetAcademicDetail", ctx, user.ID).Return(nil, nil)
		repo.On("GetEducationDetail", ctx, user.ID).Return(nil, nil)

		req := &dto.UpdateProfileRequest{
			AcademicDetail: &dto.AcademicDetailRequest{
				RollNumber: "2023CS042",
				Degree:     "B.Tech",
				Branch:     "CSE",
				Semester:   "6",
				Batch:      "2023",
				CPI:        8.4,
			},
		}
		_, err := svc.UpdateProfile(ctx, studentIdentity, req, nil)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestListStudents(t *testing.T) {
	ctx := context.Background()

	t.Run("students cannot list the roster", func(t *testing.T) {
		svc := services.NewUserService(new(MockUserRepo), new(MockFileStorage))
		_, err := svc.ListStudents(ctx, studentIdentity)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("staff listing joins details per student", func(t *testing.T) {
		repo := new(MockUserRepo)
		svc := services.NewUserService(repo, new(MockFileStorage))

		students := []models.User{
			{ID: 7, Email: "a@college.edu", Role: models.RoleStudent},
			{ID: 8, Email: "b@college.edu", Role: models.RoleStudent},
		}
		academics := map[int64]*models.AcademicDetail{7: {UserID: 7, RollNumber: "2023CS042"}}
		repo.On("ListStudents", ctx).Return(students, nil)
		repo.On("ListAcademicDetails", ctx).Return(academics, nil)
		repo.On("ListEducationDetails", ctx).Return(map[int64]*models.EducationDetail{}, nil)

		resp, err := svc.ListStudents(ctx, staffIdentity)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Count)
		require.NotNil(t, resp.Students[0].AcademicDetail)
		assert.Nil(t, resp.Students[1].AcademicDetail)
	})
}
