package services

import (
	"context"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// ApplicationService handles student job applications
type ApplicationService struct {
	applicationRepo repositories.IApplicationRepository
	jobPostRepo     repositories.IJobPostRepository
	resumeRepo      repositories.IResumeRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	jobPostRepo repositories.IJobPostRepository,
	resumeRepo repositories.IResumeRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobPostRepo:     jobPostRepo,
		resumeRepo:      resumeRepo,
	}
}

// Create submits an application from the caller to a job post. The job post
// and the optional resume reference must both resolve.
func (s *ApplicationService) Create(ctx context.Context, identity models.Identity, req *dto.CreateApplicationRequest) (*models.JobApplication, error) {
	if _, err := s.jobPostRepo.GetByID(ctx, req.JobPostID); err != nil {
		return nil, err
	}
	if req.ResumeID != nil {
		if _, err := s.resumeRepo.GetByID(ctx, *req.ResumeID); err != nil {
			return nil, err
		}
	}

	application := &models.JobApplication{
		JobPostID: req.JobPostID,
		UserID:    identity.UserID,
		ResumeID:  req.ResumeID,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("jobPostID", req.JobPostID).
		Int64("userID", identity.UserID).
		Msg("Job application submitted")
	return application, nil
}

// List retrieves applications. Students see their own; staff see all.
func (s *ApplicationService) List(ctx context.Context, identity models.Identity) ([]models.JobApplication, error) {
	var userFilter *int64
	if !identity.IsStaff() {
		userFilter = &identity.UserID
	}
	return s.applicationRepo.List(ctx, userFilter)
}
