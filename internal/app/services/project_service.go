package services

import (
	"context"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// ProjectService handles student portfolio projects
type ProjectService struct {
	projectRepo repositories.IProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repositories.IProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// Create attaches a project to the calling student. Staff accounts do not
// hold portfolios.
func (s *ProjectService) Create(ctx context.Context, identity models.Identity, req *dto.CreateProjectRequest) (*models.Project, error) {
	if identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	project := &models.Project{
		UserID:         identity.UserID,
		Title:          req.Title,
		WebLink:        req.WebLink,
		GithubLink:     req.GithubLink,
		Summary:        req.Summary,
		SkillsInvolved: req.SkillsInvolved,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// List retrieves projects. Students see their own; staff see all, or a
// single student's when a user filter is supplied.
func (s *ProjectService) List(ctx context.Context, identity models.Identity, userFilter *int64) ([]models.Project, error) {
	if !identity.IsStaff() {
		userFilter = &identity.UserID
	}
	return s.projectRepo.List(ctx, userFilter)
}

// Delete removes a project. Owners and staff may delete.
func (s *ProjectService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project.UserID != identity.UserID && !identity.IsStaff() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("projectID", id).Int64("deletedBy", identity.UserID).Msg("Project deleted")
	return nil
}
