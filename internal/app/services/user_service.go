package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/filestorage"
	"github.com/tpcell/launchpad/internal/pkg/logger"
	"github.com/tpcell/launchpad/internal/pkg/validation"
)

const profilePhotoDir = "profile_photos"

// UserService handles profile reads, self-service updates, and the staff
// student listing
type UserService struct {
	userRepo repositories.IUserRepository
	storage  filestorage.FileStorage
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, storage filestorage.FileStorage) *UserService {
	return &UserService{
		userRepo: userRepo,
		storage:  storage,
	}
}

// GetUserDetail retrieves a user merged with its academic and education
// records. Sub-objects are nil when the user has not filled them in.
func (s *UserService) GetUserDetail(ctx context.Context, id int64) (*dto.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	academic, err := s.userRepo.GetAcademicDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	education, err := s.userRepo.GetEducationDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	return dto.NewUserDetail(user, academic, education), nil
}

// UpdateProfile applies the allow-listed profile fields for the caller.
// Fields left nil in the request are preserved.
func (s *UserService) UpdateProfile(
	ctx context.Context,
	identity models.Identity,
	req *dto.UpdateProfileRequest,
	photo *multipart.FileHeader,
) (*dto.UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		if err := validation.PhoneNumber("phone_number", *req.PhoneNumber); err != nil {
			return nil, err
		}
		user.PhoneNumber = req.PhoneNumber
	}
	if req.FatherName != nil {
		user.FatherName = req.FatherName
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidationError("dob", "must be a date in YYYY-MM-DD format")
		}
		user.BirthDate = &birthDate
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.AlternateEmail != nil {
		if *req.AlternateEmail != "" && !validation.ValidEmail(*req.AlternateEmail) {
			return nil, apperrors.NewValidationError("alternate_email", "must be a valid email address")
		}
		user.AlternateEmail = req.AlternateEmail
	}
	if req.GithubLink != nil {
		if err := validation.WebLink("github_link", *req.GithubLink); err != nil {
			return nil, err
		}
		user.GithubLink = req.GithubLink
	}
	if req.LinkedinLink != nil {
		if err := validation.WebLink("linkedin_link", *req.LinkedinLink); err != nil {
			return nil, err
		}
		user.LinkedinLink = req.LinkedinLink
	}

	if photo != nil {
		photoURL, err := s.storage.SaveFileWithPath(photo, profilePhotoDir)
		if err != nil {
			logger.Error().Err(err).Int64("userID", identity.UserID).Msg("Failed to store profile photo")
			return nil, err
		}
		user.ProfilePhotoURL = &photoURL
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	if req.AcademicDetail != nil {
		detail := &models.AcademicDetail{
			UserID:     identity.UserID,
			RollNumber: req.AcademicDetail.RollNumber,
			Degree:     req.AcademicDetail.Degree,
			Branch:     req.AcademicDetail.Branch,
			Semester:   req.AcademicDetail.Semester,
			Batch:      req.AcademicDetail.Batch,
			CPI:        req.AcademicDetail.CPI,
		}
		if err := s.userRepo.UpsertAcademicDetail(ctx, detail); err != nil {
			return nil, err
		}
	}
	if req.EducationDetail != nil {
		detail := &models.EducationDetail{
			UserID:                  identity.UserID,
			MatriculationSchoolName: req.EducationDetail.MatriculationSchoolName,
			MatriculationBoard:      req.EducationDetail.MatriculationBoard,
			MatriculationYear:       req.EducationDetail.MatriculationYear,
			MatriculationPercentage: req.EducationDetail.MatriculationPercentage,
			IntermediateSchoolName:  req.EducationDetail.IntermediateSchoolName,
			IntermediateBoard:       req.EducationDetail.IntermediateBoard,
			IntermediateYear:        req.EducationDetail.IntermediateYear,
			IntermediatePercentage:  req.EducationDetail.IntermediatePercentage,
			DiplomaDetails:          req.EducationDetail.DiplomaDetails,
		}
		if err := s.userRepo.UpsertEducationDetail(ctx, detail); err != nil {
			return nil, err
		}
	}

	return s.GetUserDetail(ctx, identity.UserID)
}

// ListStudents retrieves every student account with details. Staff only.
func (s *UserService) ListStudents(ctx context.Context, identity models.Identity) (*dto.StudentListResponse, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	academics, err := s.userRepo.ListAcademicDetails(ctx)
	if err != nil {
		return nil, err
	}
	educations, err := s.userRepo.ListEducationDetails(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]*dto.UserDetail, 0, len(students))
	for i := range students {
		student := &students[i]
		details = append(details, dto.NewUserDetail(student, academics[student.ID], educations[student.ID]))
	}

	return &dto.StudentListResponse{
		Count:    len(details),
		Students: details,
	}, nil
}
