package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/helpers"
)

// RoleService defines the interface for role registry operations
type RoleService interface {
	CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error)
	GetAllRoles(ctx context.Context, page int) (dto.PageMeta, []dto.RoleResponse, error)
}

type roleServiceImpl struct {
	roleRepo RoleRepository
	logger   zerolog.Logger
}

// NewRoleService creates a new RoleService
func NewRoleService(roleRepo RoleRepository, logger zerolog.Logger) RoleService {
	return &roleServiceImpl{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// CreateRole creates a new named role. Names are unique.
func (s *roleServiceImpl) CreateRole(ctx context.Context, req *dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	now := time.Now()
	role := &models.Role{
		ID:        uuid.New().String(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info().Str("roleID", role.ID).Str("name", role.Name).Msg("Role created")

	return &dto.RoleResponse{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}, nil
}

// GetAllRoles retrieves a page of roles.
func (s *roleServiceImpl) GetAllRoles(ctx context.Context, page int) (dto.PageMeta, []dto.RoleResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page)

	roles, err := s.roleRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	total, err := s.roleRepo.Count(ctx)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	responses := make([]dto.RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, dto.RoleResponse{
			ID:        role.ID,
			Name:      role.Name,
			CreatedAt: role.CreatedAt,
			UpdatedAt: role.UpdatedAt,
		})
	}

	return helpers.NewPageMeta(total, page), responses, nil
}
