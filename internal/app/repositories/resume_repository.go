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
	"github.com/tpcell/launchpad/internal/db"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// IResumeRepository defines resume database operations
type IResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	GetByID(ctx context.Context, id int64) (*models.Resume, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Resume, error)
	ListDefaults(ctx context.Context) ([]models.Resume, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	SetDefault(ctx context.Context, userID, resumeID int64) error
	ClearDefault(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// ResumeRepository handles resumes rows
type ResumeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResumeRepository creates a new ResumeRepository
func NewResumeRepository(db *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var resumeColumns = []string{"id", "user_id", "file_url", "is_default", "created_at", "updated_at"}

func scanResume(row pgx.Row) (*models.Resume, error) {
	var res models.Resume
	err := row.Scan(&res.ID, &res.UserID, &res.FileURL, &res.IsDefault, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserts a resume row
func (r *ResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	sql, args, err := r.sb.Insert("resumes").
		Columns("user_id", "file_url", "is_default").
		Values(resume.UserID, resume.FileURL, resume.IsDefault).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create resume query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&resume.ID, &resume.CreatedAt, &resume.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", resume.UserID).Msg("Error creating resume")
		return fmt.Errorf("error creating resume: %w", err)
	}
	return nil
}

// GetByID retrieves a resume by id
func (r *ResumeRepository) GetByID(ctx context.Context, id int64) (*models.Resume, error) {
	sql, args, err := r.sb.Select(resumeColumns...).
		From("resumes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get resume query: %w", err)
	}

	resume, err := scanResume(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResumeNotFound
		}
		logger.Error().Err(err).Int64("resumeID", id).Msg("Error scanning resume row")
		return nil, fmt.Errorf("error retrieving resume: %w", err)
	}
	return resume, nil
}

// ListByUser retrieves all resumes held by a user
func (r *ResumeRepository) ListByUser(ctx context.Context, userID int64) ([]models.Resume, error) {
	sql, args, err := r.sb.Select(resumeColumns...).
		From("resumes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list resumes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list resumes query")
		return nil, fmt.Errorf("error listing resumes: %w", err)
	}
	defer rows.Close()

	var resumes []models.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

// ListDefaults retrieves every user's default resume
func (r *ResumeRepository) ListDefaults(ctx context.Context) ([]models.Resume, error) {
	sql, args, err := r.sb.Select(resumeColumns...).
		From("resumes").
		Where(squirrel.Eq{"is_default": true}).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list default resumes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list default resumes query")
		return nil, fmt.Errorf("error listing default resumes: %w", err)
	}
	defer rows.Close()

	var resumes []models.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		resumes = append(resumes, *resume)
	}
	return resumes, rows.Err()
}

// CountByUser counts resumes held by a user
func (r *ResumeRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("resumes").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count resumes query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error counting resumes")
		return 0, fmt.Errorf("error counting resumes: %w", err)
	}
	return count, nil
}

// SetDefault promotes one resume to the user's default. Clearing the previous
// default and setting the new one happen in a single transaction so no state
// with two defaults is ever visible.
func (r *ResumeRepository) SetDefault(ctx context.Context, userID, resumeID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		clearSQL, clearArgs, err := r.sb.Update("resumes").
			Set("is_default", false).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"user_id": userID, "is_default": true}).
			Where(squirrel.NotEq{"id": resumeID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build clear default query: %w", err)
		}
		if _, err := tx.Exec(ctx, clearSQL, clearArgs...); err != nil {
			logger.Error().Err(err).Int64("userID", userID).Msg("Error clearing previous default resume")
			return fmt.Errorf("error clearing previous default resume: %w", err)
		}

		setSQL, setArgs, err := r.sb.Update("resumes").
			Set("is_default", true).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"id": resumeID, "user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build set default query: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, setSQL, setArgs...)
		if err != nil {
			logger.Error().Err(err).Int64("resumeID", resumeID).Msg("Error setting default resume")
			return fmt.Errorf("error setting default resume: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrResumeNotFound
		}
		return nil
	})
}

// ClearDefault demotes a single resume from default
func (r *ResumeRepository) ClearDefault(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("resumes").
		Set("is_default", false).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear default query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resumeID", id).Msg("Error clearing default resume")
		return fmt.Errorf("error clearing default resume: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResumeNotFound
	}
	return nil
}

// Delete removes a resume by id
func (r *ResumeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("resumes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete resume query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("resumeID", id).Msg("Error deleting resume")
		return fmt.Errorf("error deleting resume: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResumeNotFound
	}
	return nil
}
