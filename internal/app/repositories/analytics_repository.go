package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/models/dto"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// IAnalyticsRepository defines the staff dashboard rollup queries
type IAnalyticsRepository interface {
	CPIDistribution(ctx context.Context) ([]dto.CPIBucket, error)
	InternshipDomains(ctx context.Context) ([]dto.DomainBucket, error)
	ResumeUploadStats(ctx context.Context) ([]dto.ResumeCountBucket, error)
	GithubCompleteCount(ctx context.Context) (int64, error)
	LinkedinCompleteCount(ctx context.Context) (int64, error)
	ApplicationTrend(ctx context.Context) ([]dto.ApplicationTrendPoint, error)
}

// AnalyticsRepository runs aggregate queries across student data
type AnalyticsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CPIDistribution groups students by performance index value
func (r *AnalyticsRepository) CPIDistribution(ctx context.Context) ([]dto.CPIBucket, error) {
	sql, args, err := r.sb.Select("cpi", "COUNT(*)").
		From("academic_details").
		GroupBy("cpi").
		OrderBy("cpi").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build cpi distribution query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying cpi distribution")
		return nil, fmt.Errorf("error querying cpi distribution: %w", err)
	}
	defer rows.Close()

	buckets := []dto.CPIBucket{}
	for rows.Next() {
		var b dto.CPIBucket
		if err := rows.Scan(&b.CPI, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan cpi bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// InternshipDomains groups approved internships by domain
func (r *AnalyticsRepository) InternshipDomains(ctx context.Context) ([]dto.DomainBucket, error) {
	sql, args, err := r.sb.Select("domain", "COUNT(*)").
		From("internships").
		Where(squirrel.Eq{"approval_status": models.ApprovalApproved}).
		GroupBy("domain").
		OrderBy("COUNT(*) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build internship domains query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying internship domains")
		return nil, fmt.Errorf("error querying internship domains: %w", err)
	}
	defer rows.Close()

	buckets := []dto.DomainBucket{}
	for rows.Next() {
		var b dto.DomainBucket
		if err := rows.Scan(&b.Domain, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan domain bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// ResumeUploadStats groups users by how many resumes they hold
func (r *AnalyticsRepository) ResumeUploadStats(ctx context.Context) ([]dto.ResumeCountBucket, error) {
	const query = `
		SELECT per_user.total, COUNT(*)
		FROM (
			SELECT user_id, COUNT(*) AS total
			FROM resumes
			GROUP BY user_id
		) per_user
		GROUP BY per_user.total
		ORDER BY per_user.total`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying resume upload stats")
		return nil, fmt.Errorf("error querying resume upload stats: %w", err)
	}
	defer rows.Close()

	buckets := []dto.ResumeCountBucket{}
	for rows.Next() {
		var b dto.ResumeCountBucket
		if err := rows.Scan(&b.Total, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan resume count bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// linkCompleteQuery counts users whose link column is filled in, regardless
// of role.
func (r *AnalyticsRepository) linkCompleteQuery(column string) (string, []interface{}, error) {
	return r.sb.Select("COUNT(*)").
		From("users").
		Where(squirrel.NotEq{column: nil}).
		Where(squirrel.NotEq{column: ""}).
		ToSql()
}

func (r *AnalyticsRepository) countUsersWithLink(ctx context.Context, column string) (int64, error) {
	sql, args, err := r.linkCompleteQuery(column)
	if err != nil {
		return 0, fmt.Errorf("failed to build %s completeness query: %w", column, err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("column", column).Msg("Error counting profile link completeness")
		return 0, fmt.Errorf("error counting %s completeness: %w", column, err)
	}
	return count, nil
}

// GithubCompleteCount counts users whose profile carries a GitHub link
func (r *AnalyticsRepository) GithubCompleteCount(ctx context.Context) (int64, error) {
	return r.countUsersWithLink(ctx, "github_link")
}

// LinkedinCompleteCount counts users whose profile carries a LinkedIn link
func (r *AnalyticsRepository) LinkedinCompleteCount(ctx context.Context) (int64, error) {
	return r.countUsersWithLink(ctx, "linkedin_link")
}

// ApplicationTrend counts job applications per calendar day
func (r *AnalyticsRepository) ApplicationTrend(ctx context.Context) ([]dto.ApplicationTrendPoint, error) {
	const query = `
		SELECT DATE(created_at), COUNT(*)
		FROM job_applications
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at)`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying application trend")
		return nil, fmt.Errorf("error querying application trend: %w", err)
	}
	defer rows.Close()

	points := []dto.ApplicationTrendPoint{}
	for rows.Next() {
		var day time.Time
		var count int64
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan application trend point: %w", err)
		}
		points = append(points, dto.ApplicationTrendPoint{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
	}
	return points, rows.Err()
}
