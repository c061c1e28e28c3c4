package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/app/services"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
)

func TestAnalyticsDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("students cannot read the dashboard", func(t *testing.T) {
		svc := services.NewAnalyticsService(new(MockAnalyticsRepo))
		_, err := svc.GetDashboard(ctx, studentIdentity)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("empty data still yields every rollup key", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := services.NewAnalyticsService(repo)

		repo.On("CPIDistribution", ctx).Return([]dto.CPIBucket{}, nil)
		repo.On("InternshipDomains", ctx).Return([]dto.DomainBucket{}, nil)
		repo.On("ResumeUploadStats", ctx).Return([]dto.ResumeCountBucket{}, nil)
		repo.On("GithubCompleteCount", ctx).Return(int64(0), nil)
		repo.On("LinkedinCompleteCount", ctx).Return(int64(0), nil)
		repo.On("ApplicationTrend", ctx).Return([]dto.ApplicationTrendPoint{}, nil)

		resp, err := svc.GetDashboard(ctx, staffIdentity)
		require.NoError(t, err)
		assert.NotNil(t, resp.CPIDistribution)
		assert.NotNil(t, resp.InternshipDomains)
		assert.NotNil(t, resp.ResumeUploadsStats)
		assert.NotNil(t, resp.JobApplicationsTrend)
		assert.Zero(t, resp.GithubComplete)
		assert.Zero(t, resp.LinkedinComplete)
	})

	t.Run("populated rollups pass through", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := services.NewAnalyticsService(repo)

		repo.On("CPIDistribution", ctx).Return([]dto.CPIBucket{{CPI: 8.4, Count: 3}}, nil)
		repo.On("InternshipDomains", ctx).Return([]dto.DomainBucket{{Domain: "Backend", Count: 5}}, nil)
		repo.On("ResumeUploadStats", ctx).Return([]dto.ResumeCountBucket{{Total: 2, Count: 4}}, nil)
		repo.On("GithubCompleteCount", ctx).Return(int64(12), nil)
		repo.On("LinkedinCompleteCount", ctx).Return(int64(9), nil)
		repo.On("ApplicationTrend", ctx).Return([]dto.ApplicationTrendPoint{{Date: "2026-08-30", Count: 7}}, nil)

		resp, err := svc.GetDashboard(ctx, staffIdentity)
		require.NoError(t, err)
		assert.Equal(t, int64(12), resp.GithubComplete)
		assert.Len(t, resp.CPIDistribution, 1)
		assert.Equal(t, "2026-08-30", resp.JobApplicationsTrend[0].Date)
	})

	t.Run("a failing sub-query fails the whole aggregate", func(t *testing.T) {
		repo := new(MockAnalyticsRepo)
		svc := services.NewAnalyticsService(repo)

		repo.On("CPIDistribution", ctx).Return([]dto.CPIBucket{}, nil)
		repo.On("InternshipDomains", ctx).Return(nil, errors.New("query timeout"))

		_, err := svc.GetDashboard(ctx, staffIdentity)
		assert.Error(t, err)
	})
}
