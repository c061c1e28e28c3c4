package services

import (
	"context"
	"time"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

const deadlineLayout = "2006-01-02"

// JobPostService handles the staff-authored job board
type JobPostService struct {
	jobPostRepo repositories.IJobPostRepository
}

// NewJobPostService creates a new JobPostService
func NewJobPostService(jobPostRepo repositories.IJobPostRepository) *JobPostService {
	return &JobPostService{jobPostRepo: jobPostRepo}
}

func parseDeadline(value string) (time.Time, error) {
	deadline, err := time.Parse(deadlineLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("applicationDeadline", "must be a date in YYYY-MM-DD format")
	}
	return deadline, nil
}

// Create publishes a job post authored by the calling staff member
func (s *JobPostService) Create(ctx context.Context, identity models.Identity, req *dto.JobPostRequest) (*models.JobPost, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	post := &models.JobPost{
		CompanyName:         req.CompanyName,
		JobDescription:      req.JobDescription,
		OfferedPosition:     req.OfferedPosition,
		Venue:               req.Venue,
		ApplicationDeadline: deadline,
		JobType:             req.JobType,
		Eligibility:         req.Eligibility,
		SkillsRequired:      req.SkillsRequired,
		IsActive:            isActive,
		CreatedBy:           &identity.UserID,
	}
	if err := s.jobPostRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	logger.Info().Int64("jobPostID", post.ID).Str("company", post.CompanyName).Msg("Job post published")
	return post, nil
}

// List retrieves every job post. Public.
func (s *JobPostService) List(ctx context.Context) ([]models.JobPost, error) {
	return s.jobPostRepo.List(ctx)
}

// Get retrieves a single job post
func (s *JobPostService) Get(ctx context.Context, id int64) (*models.JobPost, error) {
	return s.jobPostRepo.GetByID(ctx, id)
}

// Update replaces all editable fields of a job post. Staff only.
func (s *JobPostService) Update(ctx context.Context, identity models.Identity, id int64, req *dto.JobPostRequest) (*models.JobPost, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	post, err := s.jobPostRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		return nil, err
	}

	post.CompanyName = req.CompanyName
	post.JobDescription = req.JobDescription
	post.OfferedPosition = req.OfferedPosition
	post.Venue = req.Venue
	post.ApplicationDeadline = deadline
	post.JobType = req.JobType
	post.Eligibility = req.Eligibility
	post.SkillsRequired = req.SkillsRequired
	if req.IsActive != nil {
		post.IsActive = *req.IsActive
	}

	if err := s.jobPostRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a job post. Staff only.
func (s *JobPostService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if !identity.IsStaff() {
		return apperrors.ErrPermissionDenied
	}
	return s.jobPostRepo.Delete(ctx, id)
}
