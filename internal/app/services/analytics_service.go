package services

import (
	"context"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
)

// AnalyticsService assembles the staff dashboard rollup
type AnalyticsService struct {
	analyticsRepo repositories.IAnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo repositories.IAnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analyticsRepo: analyticsRepo}
}

// GetDashboard runs every rollup query and returns the combined response.
// Staff only. A failure in any sub-query fails the whole aggregate.
func (s *AnalyticsService) GetDashboard(ctx context.Context, identity models.Identity) (*dto.AnalyticsResponse, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	cpi, err := s.analyticsRepo.CPIDistribution(ctx)
	if err != nil {
		return nil, err
	}
	domains, err := s.analyticsRepo.InternshipDomains(ctx)
	if err != nil {
		return nil, err
	}
	resumeStats, err := s.analyticsRepo.ResumeUploadStats(ctx)
	if err != nil {
		return nil, err
	}
	githubComplete, err := s.analyticsRepo.GithubCompleteCount(ctx)
	if err != nil {
		return nil, err
	}
	linkedinComplete, err := s.analyticsRepo.LinkedinCompleteCount(ctx)
	if err != nil {
		return nil, err
	}
	trend, err := s.analyticsRepo.ApplicationTrend(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		CPIDistribution:      cpi,
		InternshipDomains:    domains,
		ResumeUploadsStats:   resumeStats,
		GithubComplete:       githubComplete,
		LinkedinComplete:     linkedinComplete,
		JobApplicationsTrend: trend,
	}, nil
}
