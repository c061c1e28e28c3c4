package services

import (
	"context"
	"mime/multipart"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/filestorage"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

const (
	certificateDir      = "internship_certificates"
	experienceLetterDir = "experience_letters"
)

// InternshipService handles internship records and the staff approval flow
type InternshipService struct {
	internshipRepo repositories.IInternshipRepository
	storage        filestorage.FileStorage
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(internshipRepo repositories.IInternshipRepository, storage filestorage.FileStorage) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		storage:        storage,
	}
}

// Create records an internship for the calling student in the pending state
func (s *InternshipService) Create(
	ctx context.Context,
	identity models.Identity,
	req *dto.CreateInternshipRequest,
	certificate, experienceLetter *multipart.FileHeader,
) (*models.Internship, error) {
	if identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	internship := &models.Internship{
		UserID:           identity.UserID,
		OrganizationName: req.OrganizationName,
		Domain:           req.Domain,
		Duration:         req.Duration,
		Description:      req.Description,
		ApprovalStatus:   models.ApprovalPending,
	}

	if certificate != nil {
		url, err := s.storage.SaveFileWithPath(certificate, certificateDir)
		if err != nil {
			logger.Error().Err(err).Int64("userID", identity.UserID).Msg("Failed to store internship certificate")
			return nil, err
		}
		internship.CertificateURL = &url
	}
	if experienceLetter != nil {
		url, err := s.storage.SaveFileWithPath(experienceLetter, experienceLetterDir)
		if err != nil {
			logger.Error().Err(err).Int64("userID", identity.UserID).Msg("Failed to store experience letter")
			return nil, err
		}
		internship.ExperienceLetterURL = &url
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// List retrieves internships. Students see their own; staff see all, or a
// single student's when a user filter is supplied.
func (s *InternshipService) List(ctx context.Context, identity models.Identity, userFilter *int64) ([]models.Internship, error) {
	if !identity.IsStaff() {
		userFilter = &identity.UserID
	}
	return s.internshipRepo.List(ctx, userFilter)
}

// Get retrieves a single internship, owner or staff only
func (s *InternshipService) Get(ctx context.Context, identity models.Identity, id int64) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship.UserID != identity.UserID && !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}
	return internship, nil
}

// Update applies the owner-editable internship fields. Fields left nil in
// the request are preserved. The approval state is not touched here.
func (s *InternshipService) Update(
	ctx context.Context,
	identity models.Identity,
	id int64,
	req *dto.UpdateInternshipRequest,
	certificate, experienceLetter *multipart.FileHeader,
) (*models.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship.UserID != identity.UserID && !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.OrganizationName != nil {
		internship.OrganizationName = *req.OrganizationName
	}
	if req.Domain != nil {
		internship.Domain = *req.Domain
	}
	if req.Duration != nil {
		internship.Duration = *req.Duration
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}

	if certificate != nil {
		url, err := s.storage.SaveFileWithPath(certificate, certificateDir)
		if err != nil {
			return nil, err
		}
		internship.CertificateURL = &url
	}
	if experienceLetter != nil {
		url, err := s.storage.SaveFileWithPath(experienceLetter, experienceLetterDir)
		if err != nil {
			return nil, err
		}
		internship.ExperienceLetterURL = &url
	}

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Approve records the staff decision on a pending internship. The supplied
// status must be Approved or Rejected.
func (s *InternshipService) Approve(ctx context.Context, identity models.Identity, id int64, req *dto.ApproveInternshipRequest) (*models.Internship, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	if req.ApprovalStatus == "" {
		return nil, apperrors.NewValidationError("approval_status", "approval_status is required")
	}
	status := models.ApprovalStatus(req.ApprovalStatus)
	if status != models.ApprovalApproved && status != models.ApprovalRejected {
		return nil, apperrors.NewValidationError("approval_status", "must be Approved or Rejected")
	}

	if _, err := s.internshipRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := s.internshipRepo.SetApproval(ctx, id, status, identity.UserID); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("internshipID", id).
		Int64("approvedBy", identity.UserID).
		Str("status", string(status)).
		Msg("Internship approval recorded")

	return s.internshipRepo.GetByID(ctx, id)
}

// Delete removes an internship, owner or staff only
func (s *InternshipService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if internship.UserID != identity.UserID && !identity.IsStaff() {
		return apperrors.ErrPermissionDenied
	}
	return s.internshipRepo.Delete(ctx, id)
}
