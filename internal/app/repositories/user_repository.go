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
	"github.com/tpcell/launchpad/internal/pkg/dberrors"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// IUserRepository defines user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	ListStudents(ctx context.Context) ([]models.User, error)

	GetAcademicDetail(ctx context.Context, userID int64) (*models.AcademicDetail, error)
	GetEducationDetail(ctx context.Context, userID int64) (*models.EducationDetail, error)
	UpsertAcademicDetail(ctx context.Context, detail *models.AcademicDetail) error
	UpsertEducationDetail(ctx context.Context, detail *models.EducationDetail) error
	ListAcademicDetails(ctx context.Context) (map[int64]*models.AcademicDetail, error)
	ListEducationDetails(ctx context.Context) (map[int64]*models.EducationDetail, error)
}

// UserRepository handles user, academic-detail, and education-detail rows
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var userColumns = []string{
	"id", "email", "password", "full_name", "phone_number", "father_name",
	"profile_photo_url", "birth_date", "gender", "alternate_email",
	"github_link", "linkedin_link", "role", "is_active", "is_verified",
	"created_at", "updated_at",
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FullName, &u.PhoneNumber, &u.FatherName,
		&u.ProfilePhotoURL, &u.BirthDate, &u.Gender, &u.AlternateEmail,
		&u.GithubLink, &u.LinkedinLink, &u.Role, &u.IsActive, &u.IsVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("email", "password", "full_name", "role", "is_active", "is_verified").
		Values(user.Email, user.Password, user.FullName, user.Role, user.IsActive, user.IsVerified).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by email query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// EmailExists checks whether an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateProfile persists the self-service profile fields of the user row.
// Identifier, role, and flag columns are deliberately not touched.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		Set("full_name", user.FullName).
		Set("phone_number", user.PhoneNumber).
		Set("father_name", user.FatherName).
		Set("profile_photo_url", user.ProfilePhotoURL).
		Set("birth_date", user.BirthDate).
		Set("gender", user.Gender).
		Set("alternate_email", user.AlternateEmail).
		Set("github_link", user.GithubLink).
		Set("linkedin_link", user.LinkedinLink).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing update profile query")
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ListStudents retrieves all users with the student role
func (r *UserRepository) ListStudents(ctx context.Context) ([]models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": models.RoleStudent}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, *user)
	}
	return students, rows.Err()
}

var academicColumns = []string{
	"id", "user_id", "roll_number", "degree", "branch", "semester", "batch",
	"cpi", "created_at", "updated_at",
}

func scanAcademicDetail(row pgx.Row) (*models.AcademicDetail, error) {
	var d models.AcademicDetail
	err := row.Scan(
		&d.ID, &d.UserID, &d.RollNumber, &d.Degree, &d.Branch, &d.Semester,
		&d.Batch, &d.CPI, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetAcademicDetail retrieves a user's academic record. Returns nil without
// error when the user has none.
func (r *UserRepository) GetAcademicDetail(ctx context.Context, userID int64) (*models.AcademicDetail, error) {
	sql, args, err := r.sb.Select(academicColumns...).
		From("academic_details").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get academic detail query: %w", err)
	}

	detail, err := scanAcademicDetail(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning academic detail row")
		return nil, fmt.Errorf("error retrieving academic detail: %w", err)
	}
	return detail, nil
}

// UpsertAcademicDetail creates or replaces a user's academic record
func (r *UserRepository) UpsertAcademicDetail(ctx context.Context, detail *models.AcademicDetail) error {
	sql, args, err := r.sb.Insert("academic_details").
		Columns("user_id", "roll_number", "degree", "branch", "semester", "batch", "cpi").
		Values(detail.UserID, detail.RollNumber, detail.Degree, detail.Branch, detail.Semester, detail.Batch, detail.CPI).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			roll_number = EXCLUDED.roll_number,
			degree = EXCLUDED.degree,
			branch = EXCLUDED.branch,
			semester = EXCLUDED.semester,
			batch = EXCLUDED.batch,
			cpi = EXCLUDED.cpi,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert academic detail query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&detail.ID, &detail.CreatedAt, &detail.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "academic_details_roll_number_key") {
			return apperrors.ErrRollNumberExists
		}
		logger.Error().Err(err).Int64("userID", detail.UserID).Msg("Error upserting academic detail")
		return fmt.Errorf("error upserting academic detail: %w", err)
	}
	return nil
}

// ListAcademicDetails retrieves all academic records keyed by user id
func (r *UserRepository) ListAcademicDetails(ctx context.Context) (map[int64]*models.AcademicDetail, error) {
	sql, args, err := r.sb.Select(academicColumns...).
		From("academic_details").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list academic details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing academic details: %w", err)
	}
	defer rows.Close()

	details := make(map[int64]*models.AcademicDetail)
	for rows.Next() {
		detail, err := scanAcademicDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan academic detail row: %w", err)
		}
		details[detail.UserID] = detail
	}
	return details, rows.Err()
}

var educationColumns = []string{
	"id", "user_id", "matriculation_school_name", "matriculation_board",
	"matriculation_year", "matriculation_percentage", "intermediate_school_name",
	"intermediate_board", "intermediate_year", "intermediate_percentage",
	"diploma_details", "created_at", "updated_at",
}

func scanEducationDetail(row pgx.Row) (*models.EducationDetail, error) {
	var d models.EducationDetail
	err := row.Scan(
		&d.ID, &d.UserID, &d.MatriculationSchoolName, &d.MatriculationBoard,
		&d.MatriculationYear, &d.MatriculationPercentage, &d.IntermediateSchoolName,
		&d.IntermediateBoard, &d.IntermediateYear, &d.IntermediatePercentage,
		&d.DiplomaDetails, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetEducationDetail retrieves a user's education record. Returns nil without
// error when the user has none.
func (r *UserRepository) GetEducationDetail(ctx context.Context, userID int64) (*models.EducationDetail, error) {
	sql, args, err := r.sb.Select(educationColumns...).
		From("education_details").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get education detail query: %w", err)
	}

	detail, err := scanEducationDetail(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error scanning education detail row")
		return nil, fmt.Errorf("error retrieving education detail: %w", err)
	}
	return detail, nil
}

// UpsertEducationDetail creates or replaces a user's education record
func (r *UserRepository) UpsertEducationDetail(ctx context.Context, detail *models.EducationDetail) error {
	sql, args, err := r.sb.Insert("education_details").
		Columns("user_id", "matriculation_school_name", "matriculation_board",
			"matriculation_year", "matriculation_percentage", "intermediate_school_name",
			"intermediate_board", "intermediate_year", "intermediate_percentage", "diploma_details").
		Values(detail.UserID, detail.MatriculationSchoolName, detail.MatriculationBoard,
			detail.MatriculationYear, detail.MatriculationPercentage, detail.IntermediateSchoolName,
			detail.IntermediateBoard, detail.IntermediateYear, detail.IntermediatePercentage, detail.DiplomaDetails).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			matriculation_school_name = EXCLUDED.matriculation_school_name,
			matriculation_board = EXCLUDED.matriculation_board,
			matriculation_year = EXCLUDED.matriculation_year,
			matriculation_percentage = EXCLUDED.matriculation_percentage,
			intermediate_school_name = EXCLUDED.intermediate_school_name,
			intermediate_board = EXCLUDED.intermediate_board,
			intermediate_year = EXCLUDED.intermediate_year,
			intermediate_percentage = EXCLUDED.intermediate_percentage,
			diploma_details = EXCLUDED.diploma_details,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert education detail query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&detail.ID, &detail.CreatedAt, &detail.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", detail.UserID).Msg("Error upserting education detail")
		return fmt.Errorf("error upserting education detail: %w", err)
	}
	return nil
}

// ListEducationDetails retrieves all education records keyed by user id
func (r *UserRepository) ListEducationDetails(ctx context.Context) (map[int64]*models.EducationDetail, error) {
	sql, args, err := r.sb.Select(educationColumns...).
		From("education_details").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list education details query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing education details: %w", err)
	}
	defer rows.Close()

	details := make(map[int64]*models.EducationDetail)
	for rows.Next() {
		detail, err := scanEducationDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan education detail row: %w", err)
		}
		details[detail.UserID] = detail
	}
	return details, rows.Err()
}
