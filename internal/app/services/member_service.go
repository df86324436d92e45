package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/apperrors"
)

// MemberService decides who may add or remove community members and
// mutates the membership store accordingly.
//
// The policy is deliberately asymmetric: only the community owner can add
// members, while removal is open to anyone holding Community Admin or
// Community Moderator within that same community.
type MemberService interface {
	AddMember(ctx context.Context, requesterID string, req *dto.AddMemberRequest) (*dto.MemberResponse, error)
	RemoveMember(ctx context.Context, requesterID, memberID string) error
}

type memberServiceImpl struct {
	communityRepo CommunityRepository
	memberRepo    MemberRepository
	roleRepo      RoleRepository
	userRepo      UserRepository
	logger        zerolog.Logger
}

// NewMemberService creates a new MemberService
func NewMemberService(
	communityRepo CommunityRepository,
	memberRepo MemberRepository,
	roleRepo RoleRepository,
	userRepo UserRepository,
	logger zerolog.Logger,
) MemberService {
	return &memberServiceImpl{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		roleRepo:      roleRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// AddMember adds a user to a community under a role. The requester must
// be the community owner; roles held anywhere else grant nothing here.
func (s *memberServiceImpl) AddMember(ctx context.Context, requesterID string, req *dto.AddMemberRequest) (*dto.MemberResponse, error) {
	community, err := s.communityRepo.FindByID(ctx, req.Community)
	if err != nil {
		return nil, err
	}

	if community.OwnerID != requesterID {
		s.logger.Warn().
			Str("requesterID", requesterID).
			Str("communityID", community.ID).
			Msg("Member addition denied: requester is not the community owner")
		return nil, apperrors.ErrNotCommunityOwner
	}

	role, err := s.roleRepo.FindByID(ctx, req.Role)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, req.User); err != nil {
		return nil, err
	}

	// Fast-path duplicate check; the unique constraint on
	// (community_id, user_id) closes the remaining race.
	existing, err := s.memberRepo.FindByCommunityAndUser(ctx, community.ID, req.User)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrMemberAlreadyExists
	}

	member := &models.Member{
		ID:          uuid.New().String(),
		CommunityID: community.ID,
		UserID:      req.User,
		RoleID:      role.ID,
		CreatedAt:   time.Now(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("memberID", member.ID).
		Str("communityID", community.ID).
		Str("userID", member.UserID).
		Str("roleID", member.RoleID).
		Msg("Member added to community")

	return &dto.MemberResponse{
		ID:        member.ID,
		Community: member.CommunityID,
		User:      dto.IDRef{ID: member.UserID},
		Role:      dto.IDRef{ID: member.RoleID},
		CreatedAt: member.CreatedAt,
	}, nil
}

// RemoveMember deletes a membership record. The requester must hold
// Community Admin or Community Moderator in the membership's own
// community; the community owner qualifies implicitly.
func (s *memberServiceImpl) RemoveMember(ctx context.Context, requesterID, memberID string) error {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return err
	}

	allowed, err := s.canRemove(ctx, requesterID, member.CommunityID)
	if err != nil {
		return err
	}
	if !allowed {
		s.logger.Warn().
			Str("requesterID", requesterID).
			Str("memberID", memberID).
			Str("communityID", member.CommunityID).
			Msg("Member removal denied: no qualifying role in this community")
		return apperrors.ErrNotAllowedAccess
	}

	if err := s.memberRepo.Delete(ctx, member.ID); err != nil {
		return err
	}

	s.logger.Info().
		Str("memberID", member.ID).
		Str("communityID", member.CommunityID).
		Msg("Member removed from community")

	return nil
}

// canRemove resolves the requester's standing within one specific
// community. The membership lookup is scoped to that community's id, so a
// role held elsewhere can never authorize removal here.
func (s *memberServiceImpl) canRemove(ctx context.Context, requesterID, communityID string) (bool, error) {
	community, err := s.communityRepo.FindByID(ctx, communityID)
	if err != nil {
		return false, err
	}

	// The owner holds the Community Admin capability even without an
	// explicit membership row.
	if community.OwnerID == requesterID {
		return true, nil
	}

	membership, err := s.memberRepo.FindByCommunityAndUser(ctx, communityID, requesterID)
	if err != nil {
		return false, err
	}
	if membership == nil || membership.Role == nil {
		return false, nil
	}

	return membership.Role.GrantsRemoval(), nil
}
