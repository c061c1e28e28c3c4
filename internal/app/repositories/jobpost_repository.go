package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// IJobPostRepository defines job post database operations
type IJobPostRepository interface {
	Create(ctx context.Context, post *models.JobPost) error
	GetByID(ctx context.Context, id int64) (*models.JobPost, error)
	List(ctx context.Context) ([]models.JobPost, error)
	Update(ctx context.Context, post *models.JobPost) error
	Delete(ctx context.Context, id int64) error
}

// JobPostRepository handles job_posts rows
type JobPostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewJobPostRepository creates a new JobPostRepository
func NewJobPostRepository(db *pgxpool.Pool) *JobPostRepository {
	return &JobPostRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var jobPostColumns = []string{
	"id", "company_name", "job_description", "offered_position", "venue",
	"application_deadline", "job_type", "eligibility", "skills_required",
	"is_active", "created_by", "created_at", "updated_at",
}

func scanJobPost(row pgx.Row) (*models.JobPost, error) {
	var p models.JobPost
	err := row.Scan(
		&p.ID, &p.CompanyName, &p.JobDescription, &p.OfferedPosition, &p.Venue,
		&p.ApplicationDeadline, &p.JobType, &p.Eligibility, &p.SkillsRequired,
		&p.IsActive, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a job post
func (r *JobPostRepository) Create(ctx context.Context, post *models.JobPost) error {
	sql, args, err := r.sb.Insert("job_posts").
		Columns("company_name", "job_description", "offered_position", "venue",
			"application_deadline", "job_type", "eligibility", "skills_required",
			"is_active", "created_by").
		Values(post.CompanyName, post.JobDescription, post.OfferedPosition, post.Venue,
			post.ApplicationDeadline, post.JobType, post.Eligibility, post.SkillsRequired,
			post.IsActive, post.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create job post query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Str("company", post.CompanyName).Msg("Error creating job post")
		return fmt.Errorf("error creating job post: %w", err)
	}
	return nil
}

// GetByID retrieves a job post by id
func (r *JobPostRepository) GetByID(ctx context.Context, id int64) (*models.JobPost, error) {
	sql, args, err := r.sb.Select(jobPostColumns...).
		From("job_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get job post query: %w", err)
	}

	post, err := scanJobPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobPostNotFound
		}
		logger.Error().Err(err).Int64("jobPostID", id).Msg("Error scanning job post row")
		return nil, fmt.Errorf("error retrieving job post: %w", err)
	}
	return post, nil
}

// List retrieves all job posts, newest first
func (r *JobPostRepository) List(ctx context.Context) ([]models.JobPost, error) {
	sql, args, err := r.sb.Select(jobPostColumns...).
		From("job_posts").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list job posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list job posts query")
		return nil, fmt.Errorf("error listing job posts: %w", err)
	}
	defer rows.Close()

	var posts []models.JobPost
	for rows.Next() {
		post, err := scanJobPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job post row: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// Update persists all editable fields of a job post
func (r *JobPostRepository) Update(ctx context.Context, post *models.JobPost) error {
	sql, args, err := r.sb.Update("job_posts").
		Set("company_name", post.CompanyName).
		Set("job_description", post.JobDescription).
		Set("offered_position", post.OfferedPosition).
		Set("venue", post.Venue).
		Set("application_deadline", post.ApplicationDeadline).
		Set("job_type", post.JobType).
		Set("eligibility", post.Eligibility).
		Set("skills_required", post.SkillsRequired).
		Set("is_active", post.IsActive).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update job post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobPostID", post.ID).Msg("Error updating job post")
		return fmt.Errorf("error updating job post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobPostNotFound
	}
	return nil
}

// Delete removes a job post by id
func (r *JobPostRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("job_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete job post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("jobPostID", id).Msg("Error deleting job post")
		return fmt.Errorf("error deleting job post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobPostNotFound
	}
	return nil
}
