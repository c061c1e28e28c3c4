package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/app/repositories"
	"github.com/tpcell/launchpad/internal/pkg/apperrors"
	"github.com/tpcell/launchpad/internal/pkg/auth"
)

const (
	defaultStaffEmail    = "placement-cell@launchpad.local"
	defaultStaffPassword = "ChangeMe123!"
)

// CreateDefaultData makes sure a staff account exists so the placement cell
// can log in on a fresh install. The password must be rotated afterwards.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, defaultStaffEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default staff account")
		return err
	}
	if exists {
		return nil
	}

	lgr.Info().Str("email", defaultStaffEmail).Msg("Creating default staff account")

	hashedPassword, err := auth.HashPassword(defaultStaffPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default staff password")
		return err
	}

	staff := &models.User{
		Email:      defaultStaffEmail,
		Password:   hashedPassword,
		FullName:   "Placement Cell",
		Role:       models.RoleStaff,
		IsActive:   true,
		IsVerified: true,
	}
	if _, err := userRepo.Create(ctx, staff); err != nil {
		// A concurrent boot may have created it first
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default staff account")
		return err
	}

	return nil
}
