package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// IProjectRepository defines project database operations
type IProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context, userID *int64) ([]models.Project, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository handles projects rows
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var projectColumns = []string{
	"id", "user_id", "title", "web_link", "github_link", "summary",
	"skills_involved", "created_at", "updated_at",
}

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.WebLink, &p.GithubLink, &p.Summary,
		&p.SkillsInvolved, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a project attached to its owner
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	sql, args, err := r.sb.Insert("projects").
		Columns("user_id", "title", "web_link", "github_link", "summary", "skills_involved").
		Values(project.UserID, project.Title, project.WebLink, project.GithubLink,
			project.Summary, project.SkillsInvolved).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create project query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", project.UserID).Msg("Error creating project")
		return fmt.Errorf("error creating project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by id
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	project, err := scanProject(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Error scanning project row")
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}
	return project, nil
}

// List retrieves projects, optionally restricted to a single owner
func (r *ProjectRepository) List(ctx context.Context, userID *int64) ([]models.Project, error) {
	query := r.sb.Select(projectColumns...).
		From("projects").
		OrderBy("id")
	if userID != nil {
		query = query.Where(squirrel.Eq{"user_id": *userID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list projects query")
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, *project)
	}
	return projects, rows.Err()
}

// Delete removes a project by id
func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete project query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error deleting project")
		return fmt.Errorf("error deleting project: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}
