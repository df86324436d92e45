package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/helpers"
	"github.com/cankurt/commune/internal/pkg/validation"
)

// CommunityService defines the interface for community operations
type CommunityService interface {
	CreateCommunity(ctx context.Context, ownerID string, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error)
	GetAllCommunities(ctx context.Context, page int) (dto.PageMeta, []dto.CommunityExpandedResponse, error)
	GetCommunityMembers(ctx context.Context, communityID string, page int) (dto.PageMeta, []dto.MemberResponse, error)
	GetOwnedCommunities(ctx context.Context, ownerID string, page int) (dto.PageMeta, []dto.CommunityResponse, error)
	GetJoinedCommunities(ctx context.Context, userID string, page int) (dto.PageMeta, []dto.CommunityExpandedResponse, error)
}

type communityServiceImpl struct {
	communityRepo CommunityRepository
	memberRepo    MemberRepository
	roleRepo      RoleRepository
	txRunner      TxRunner
	logger        zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(
	communityRepo CommunityRepository,
	memberRepo MemberRepository,
	roleRepo RoleRepository,
	txRunner TxRunner,
	logger zerolog.Logger,
) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		roleRepo:      roleRepo,
		txRunner:      txRunner,
		logger:        logger,
	}
}

// CreateCommunity creates a community and its owner's Community Admin
// membership as one all-or-nothing unit. A crash between the two writes
// can never leave a community without an admin.
func (s *communityServiceImpl) CreateCommunity(ctx context.Context, ownerID string, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error) {
	adminRole, err := s.roleRepo.FindByName(ctx, models.RoleCommunityAdmin)
	if err != nil {
		return nil, fmt.Errorf("community admin role unavailable: %w", err)
	}

	now := time.Now()
	community := &models.Community{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Slug:      validation.Slugify(req.Name),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ownerMember := &models.Member{
		ID:          uuid.New().String(),
		CommunityID: community.ID,
		UserID:      ownerID,
		RoleID:      adminRole.ID,
		CreatedAt:   now,
	}

	err = s.txRunner.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := s.communityRepo.CreateTx(ctx, tx, community); err != nil {
			return err
		}
		return s.memberRepo.CreateTx(ctx, tx, ownerMember)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("communityID", community.ID).
		Str("slug", community.Slug).
		Str("ownerID", ownerID).
		Msg("Community created with owner membership")

	return &dto.CommunityResponse{
		ID:        community.ID,
		Name:      community.Name,
		Slug:      community.Slug,
		Owner:     community.OwnerID,
		CreatedAt: community.CreatedAt,
		UpdatedAt: community.UpdatedAt,
	}, nil
}

// GetAllCommunities retrieves a page of communities, owners expanded.
func (s *communityServiceImpl) GetAllCommunities(ctx context.Context, page int) (dto.PageMeta, []dto.CommunityExpandedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page)

	communities, err := s.communityRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	total, err := s.communityRepo.Count(ctx)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	return helpers.NewPageMeta(total, page), toExpandedResponses(communities), nil
}

// GetCommunityMembers retrieves a page of a community's membership records.
func (s *communityServiceImpl) GetCommunityMembers(ctx context.Context, communityID string, page int) (dto.PageMeta, []dto.MemberResponse, error) {
	if _, err := s.communityRepo.FindByID(ctx, communityID); err != nil {
		return dto.PageMeta{}, nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page)

	members, err := s.memberRepo.FindByCommunity(ctx, communityID, offset, limit)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	total, err := s.memberRepo.CountByCommunity(ctx, communityID)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, dto.MemberResponse{
			ID:        m.ID,
			Community: m.CommunityID,
			User:      dto.IDRef{ID: m.UserID},
			Role:      dto.IDRef{ID: m.RoleID},
			CreatedAt: m.CreatedAt,
		})
	}

	return helpers.NewPageMeta(total, page), responses, nil
}

// GetOwnedCommunities retrieves a page of communities owned by the caller.
func (s *communityServiceImpl) GetOwnedCommunities(ctx context.Context, ownerID string, page int) (dto.PageMeta, []dto.CommunityResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page)

	communities, err := s.communityRepo.FindByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	total, err := s.communityRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	responses := make([]dto.CommunityResponse, 0, len(communities))
	for _, c := range communities {
		responses = append(responses, dto.CommunityResponse{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			Owner:     c.OwnerID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}

	return helpers.NewPageMeta(total, page), responses, nil
}

// GetJoinedCommunities retrieves a page of communities the caller is a
// member of, owners expanded.
func (s *communityServiceImpl) GetJoinedCommunities(ctx context.Context, userID string, page int) (dto.PageMeta, []dto.CommunityExpandedResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page)

	communities, err := s.communityRepo.FindJoinedByUser(ctx, userID, offset, limit)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	total, err := s.communityRepo.CountJoinedByUser(ctx, userID)
	if err != nil {
		return dto.PageMeta{}, nil, err
	}

	return helpers.NewPageMeta(total, page), toExpandedResponses(communities), nil
}

func toExpandedResponses(communities []models.Community) []dto.CommunityExpandedResponse {
	responses := make([]dto.CommunityExpandedResponse, 0, len(communities))
	for _, c := range communities {
		owner := dto.OwnerResponse{ID: c.OwnerID}
		if c.Owner != nil {
			owner.Username = c.Owner.Username
		}
		responses = append(responses, dto.CommunityExpandedResponse{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			Owner:     owner,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return responses
}
