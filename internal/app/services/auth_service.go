package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/apperrors"
	"github.com/cankurt/commune/internal/pkg/auth"
	"github.com/cankurt/commune/internal/pkg/validation"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(user *models.User) (accessToken string, expiresIn int, err error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, string, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.UserResponse, string, error)
	Me(ctx context.Context, userID string) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	userRepo UserRepository
	tokens   TokenIssuer
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepository, tokens TokenIssuer, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignUp registers a new user and issues an access token.
func (s *authServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, string, error) {
	if !validation.IsValidPassword(req.Password) {
		return nil, "", apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"password must be 3-30 alphanumeric characters")
	}

	email := strings.ToLower(req.Email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	accessToken, _, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("userID", user.ID).Str("email", user.Email).Msg("User signed up")

	return toUserResponse(user), accessToken, nil
}

// SignIn authenticates a user by email and password. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *authServiceImpl) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.UserResponse, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	accessToken, _, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("userID", user.ID).Msg("User signed in")

	return toUserResponse(user), accessToken, nil
}

// Me returns the caller's profile.
func (s *authServiceImpl) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
