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
)

func TestSkillCreate(t *testing.T) {
	ctx := context.Background()

	repo := new(MockSkillRepo)
	svc := services.NewSkillService(repo)

	repo.On("Create", ctx, mock.AnythingOfType("*models.Skill")).Return(nil)

	skill, err := svc.Create(ctx, studentIdentity, &dto.CreateSkillRequest{Name: "Go"})
	require.NoError(t, err)
	assert.Equal(t, studentIdentity.UserID, skill.UserID)
	assert.Equal(t, "Go", skill.Name)
}

func TestSkillList(t *testing.T) {
	ctx := context.Background()

	t.Run("students only see their own skills", func(t *testing.T) {
		repo := new(MockSkillRepo)
		svc := services.NewSkillService(repo)

		repo.On("List", ctx, &studentIdentity.UserID).Return([]models.Skill{{ID: 1, Name: "Go"}}, nil)

		other := int64(42)
		skills, err := svc.List(ctx, studentIdentity, &other)
		require.NoError(t, err)
		assert.Len(t, skills, 1)
		repo.AssertCalled(t, "List", ctx, &studentIdentity.UserID)
	})

	t.Run("staff see all skills without a filter", func(t *testing.T) {
		repo := new(MockSkillRepo)
		svc := services.NewSkillService(repo)

		repo.On("List", ctx, (*int64)(nil)).Return([]models.Skill{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

		skills, err := svc.List(ctx, staffIdentity, nil)
		require.NoError(t, err)
		assert.Len(t, skills, 3)
	})
}
