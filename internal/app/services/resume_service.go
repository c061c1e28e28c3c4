package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/filestorage"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

const resumeDir = "resumes"

// ResumeService handles resume uploads and the single-default invariant
type ResumeService struct {
	resumeRepo repositories.IResumeRepository
	storage    filestorage.FileStorage
}

// NewResumeService creates a new ResumeService
func NewResumeService(resumeRepo repositories.IResumeRepository, storage filestorage.FileStorage) *ResumeService {
	return &ResumeService{
		resumeRepo: resumeRepo,
		storage:    storage,
	}
}

// Upload stores a resume file for the calling student. The first resume a
// user uploads becomes the default automatically.
func (s *ResumeService) Upload(ctx context.Context, identity models.Identity, file *multipart.FileHeader) (*models.Resume, error) {
	if identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	count, err := s.resumeRepo.CountByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxResumesPerUser {
		return nil, apperrors.NewCustomError(
			apperrors.ErrResumeLimitReached,
			fmt.Sprintf("you already have %d resumes; at most %d are allowed", count, models.MaxResumesPerUser),
		).WithDetails(map[string]interface{}{
			"current": count,
			"max":     models.MaxResumesPerUser,
		})
	}

	fileURL, err := s.storage.SaveFileWithPath(file, resumeDir)
	if err != nil {
		logger.Error().Err(err).Int64("userID", identity.UserID).Msg("Failed to store resume file")
		return nil, err
	}

	resume := &models.Resume{
		UserID:    identity.UserID,
		FileURL:   fileURL,
		IsDefault: count == 0,
	}
	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// List retrieves resumes. Students see their own; staff see every user's
// default resume.
func (s *ResumeService) List(ctx context.Context, identity models.Identity) ([]models.Resume, error) {
	if identity.IsStaff() {
		return s.resumeRepo.ListDefaults(ctx)
	}
	return s.resumeRepo.ListByUser(ctx, identity.UserID)
}

// Get retrieves a single resume, owner or staff only
func (s *ResumeService) Get(ctx context.Context, identity models.Identity, id int64) (*models.Resume, error) {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume.UserID != identity.UserID && !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}
	return resume, nil
}

// Update applies the mutable resume fields. Promoting a resume to default
// demotes the owner's previous default in the same transaction.
func (s *ResumeService) Update(ctx context.Context, identity models.Identity, id int64, req *dto.UpdateResumeRequest) (*models.Resume, error) {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resume.UserID != identity.UserID && !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.IsDefault != nil {
		if *req.IsDefault {
			err = s.resumeRepo.SetDefault(ctx, resume.UserID, id)
		} else {
			err = s.resumeRepo.ClearDefault(ctx, id)
		}
		if err != nil {
			return nil, err
		}
	}

	return s.resumeRepo.GetByID(ctx, id)
}

// Delete removes a resume and its stored file. No other resume is promoted
// when the default is deleted.
func (s *ResumeService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	resume, err := s.resumeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if resume.UserID != identity.UserID && !identity.IsStaff() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.resumeRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteFile(resume.FileURL); err != nil {
		logger.Warn().Err(err).Int64("resumeID", id).Msg("Failed to remove resume file from storage")
	}
	return nil
}
