package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/app/repositories"
	"github.com/cankurt/commune/internal/pkg/apperrors"
)

// CreateDefaultRoles ensures the built-in roles exist. Community
// creation depends on Community Admin being present, so this runs at
// startup before the server accepts requests.
func CreateDefaultRoles(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	roleRepo := repositories.NewRoleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default roles...")

	var finalErr error
	for _, name := range []string{models.RoleCommunityAdmin, models.RoleCommunityModerator} {
		now := time.Now()
		role := &models.Role{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := roleRepo.Create(ctx, role)
		switch {
		case err == nil:
			lgr.Info().Str("role", name).Msg("Default role created")
		case errors.Is(err, apperrors.ErrRoleAlreadyExists):
			lgr.Debug().Str("role", name).Msg("Default role already exists")
		default:
			lgr.Error().Err(err).Str("role", name).Msg("Error creating default role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
