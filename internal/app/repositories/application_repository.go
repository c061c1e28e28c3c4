package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/dberrors"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// IApplicationRepository defines job application database operations
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.JobApplication) error
	List(ctx context.Context, userID *int64) ([]models.JobApplication, error)
}

// ApplicationRepository handles job_applications rows
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var applicationColumns = []string{"id", "job_post_id", "user_id", "resume_id", "created_at", "updated_at"}

func scanApplication(row pgx.Row) (*models.JobApplication, error) {
	var a models.JobApplication
	err := row.Scan(&a.ID, &a.JobPostID, &a.UserID, &a.ResumeID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a job application
func (r *ApplicationRepository) Create(ctx context.Context, application *models.JobApplication) error {
	sql, args, err := r.sb.Insert("job_applications").
		Columns("job_post_id", "user_id", "resume_id").
		Values(application.JobPostID, application.UserID, application.ResumeID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrJobPostNotFound
		}
		logger.Error().Err(err).Int64("userID", application.UserID).Msg("Error creating job application")
		return fmt.Errorf("error creating job application: %w", err)
	}
	return nil
}

// List retrieves job applications, optionally restricted to one applicant
func (r *ApplicationRepository) List(ctx context.Context, userID *int64) ([]models.JobApplication, error) {
	query := r.sb.Select(applicationColumns...).
		From("job_applications").
		OrderBy("id")
	if userID != nil {
		query = query.Where(squirrel.Eq{"user_id": *userID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list applications query")
		return nil, fmt.Errorf("error listing job applications: %w", err)
	}
	defer rows.Close()

	var applications []models.JobApplication
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		applications = append(applications, *application)
	}
	return applications, rows.Err()
}
