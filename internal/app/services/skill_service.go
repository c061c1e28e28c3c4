package services

import (
	"context"

	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/repositories"
)

// SkillService handles student skill records
type SkillService struct {
	skillRepo repositories.ISkillRepository
}

// NewSkillService creates a new SkillService
func NewSkillService(skillRepo repositories.ISkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

// Create attaches a skill to the caller regardless of role
func (s *SkillService) Create(ctx context.Context, identity models.Identity, req *dto.CreateSkillRequest) (*models.Skill, error) {
	skill := &models.Skill{
		UserID: identity.UserID,
		Name:   req.Name,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// List retrieves skills. Students always see their own; staff see all, or a
// single student's when a user filter is supplied.
func (s *SkillService) List(ctx context.Context, identity models.Identity, userFilter *int64) ([]models.Skill, error) {
	if !identity.IsStaff() {
		userFilter = &identity.UserID
	}
	return s.skillRepo.List(ctx, userFilter)
}
