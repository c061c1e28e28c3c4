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

// IInternshipRepository defines internship database operations
type IInternshipRepository interface {
	Create(ctx context.Context, internship *models.Internship) error
	GetByID(ctx context.Context, id int64) (*models.Internship, error)
	List(ctx context.Context, userID *int64) ([]models.Internship, error)
	Update(ctx context.Context, internship *models.Internship) error
	SetApproval(ctx context.Context, id int64, status models.ApprovalStatus, approvedBy int64) error
	Delete(ctx context.Context, id int64) error
}

// InternshipRepository handles internships rows
type InternshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var internshipColumns = []string{
	"id", "user_id", "organization_name", "domain", "duration", "description",
	"certificate_url", "experience_letter_url", "approval_status", "approved_by",
	"created_at", "updated_at",
}

func scanInternship(row pgx.Row) (*models.Internship, error) {
	var i models.Internship
	err := row.Scan(
		&i.ID, &i.UserID, &i.OrganizationName, &i.Domain, &i.Duration, &i.Description,
		&i.CertificateURL, &i.ExperienceLetterURL, &i.ApprovalStatus, &i.ApprovedBy,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create inserts an internship record in the pending state
func (r *InternshipRepository) Create(ctx context.Context, internship *models.Internship) error {
	sql, args, err := r.sb.Insert("internships").
		Columns("user_id", "organization_name", "domain", "duration", "description",
			"certificate_url", "experience_letter_url", "approval_status").
		Values(internship.UserID, internship.OrganizationName, internship.Domain,
			internship.Duration, internship.Description, internship.CertificateURL,
			internship.ExperienceLetterURL, internship.ApprovalStatus).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create internship query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&internship.ID, &internship.CreatedAt, &internship.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", internship.UserID).Msg("Error creating internship")
		return fmt.Errorf("error creating internship: %w", err)
	}
	return nil
}

// GetByID retrieves an internship by id
func (r *InternshipRepository) GetByID(ctx context.Context, id int64) (*models.Internship, error) {
	sql, args, err := r.sb.Select(internshipColumns...).
		From("internships").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get internship query: %w", err)
	}

	internship, err := scanInternship(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInternshipNotFound
		}
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error scanning internship row")
		return nil, fmt.Errorf("error retrieving internship: %w", err)
	}
	return internship, nil
}

// List retrieves internships, optionally restricted to a single owner
func (r *InternshipRepository) List(ctx context.Context, userID *int64) ([]models.Internship, error) {
	query := r.sb.Select(internshipColumns...).
		From("internships").
		OrderBy("id")
	if userID != nil {
		query = query.Where(squirrel.Eq{"user_id": *userID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list internships query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list internships query")
		return nil, fmt.Errorf("error listing internships: %w", err)
	}
	defer rows.Close()

	var internships []models.Internship
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan internship row: %w", err)
		}
		internships = append(internships, *internship)
	}
	return internships, rows.Err()
}

// Update persists the student-editable fields of an internship
func (r *InternshipRepository) Update(ctx context.Context, internship *models.Internship) error {
	sql, args, err := r.sb.Update("internships").
		Set("organization_name", internship.OrganizationName).
		Set("domain", internship.Domain).
		Set("duration", internship.Duration).
		Set("description", internship.Description).
		Set("certificate_url", internship.CertificateURL).
		Set("experience_letter_url", internship.ExperienceLetterURL).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": internship.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update internship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", internship.ID).Msg("Error updating internship")
		return fmt.Errorf("error updating internship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// SetApproval records the staff approval decision
func (r *InternshipRepository) SetApproval(ctx context.Context, id int64, status models.ApprovalStatus, approvedBy int64) error {
	sql, args, err := r.sb.Update("internships").
		Set("approval_status", status).
		Set("approved_by", approvedBy).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set approval query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error setting internship approval")
		return fmt.Errorf("error setting internship approval: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}

// Delete removes an internship by id
func (r *InternshipRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("internships").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete internship query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("internshipID", id).Msg("Error deleting internship")
		return fmt.Errorf("error deleting internship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}
