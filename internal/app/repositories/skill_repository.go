package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/pkg/logger"
)

// ISkillRepository defines skill database operations
type ISkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	List(ctx context.Context, userID *int64) ([]models.Skill, error)
}

// SkillRepository handles skills rows
type SkillRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a skill attached to its owner
func (r *SkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	sql, args, err := r.sb.Insert("skills").
		Columns("user_id", "skill_name").
		Values(skill.UserID, skill.Name).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create skill query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt); err != nil {
		logger.Error().Err(err).Int64("userID", skill.UserID).Msg("Error creating skill")
		return fmt.Errorf("error creating skill: %w", err)
	}
	return nil
}

// List retrieves skills, optionally restricted to a single owner
func (r *SkillRepository) List(ctx context.Context, userID *int64) ([]models.Skill, error) {
	query := r.sb.Select("id", "user_id", "skill_name", "created_at", "updated_at").
		From("skills").
		OrderBy("id")
	if userID != nil {
		query = query.Where(squirrel.Eq{"user_id": *userID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list skills query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list skills query")
		return nil, fmt.Errorf("error listing skills: %w", err)
	}
	defer rows.Close()

	var skills []models.Skill
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan skill row: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}
