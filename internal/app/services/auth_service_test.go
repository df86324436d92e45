package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/apperrors"
)

type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) GenerateToken(user *models.User) (string, int, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return "token-for-" + user.ID, 3600, nil
}

func newAuthService() (*fakeUserRepo, AuthService) {
	repo := newFakeUserRepo()
	return repo, NewAuthService(repo, &fakeTokenIssuer{}, testLogger())
}

func TestSignUp(t *testing.T) {
	repo, service := newAuthService()

	user, token, err := service.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice",
		Email:    "Alice@Commune.app",
		Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@commune.app", user.Email, "email is stored lowercased")
	assert.Equal(t, "token-for-"+user.ID, token)

	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "sup3rsecret", stored.Password, "password must be stored hashed")
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	_, service := newAuthService()

	_, _, err := service.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Email: "alice@commune.app", Password: "sup3rsecret",
	})
	require.NoError(t, err)

	_, _, err = service.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice2", Email: "ALICE@commune.app", Password: "sup3rsecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignUp_InvalidPassword(t *testing.T) {
	_, service := newAuthService()

	_, _, err := service.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Email: "alice@commune.app", Password: "a b",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSignIn(t *testing.T) {
	_, service := newAuthService()

	signedUp, _, err := service.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Email: "alice@commune.app", Password: "sup3rsecret",
	})
	require.NoError(t, err)

	user, token, err := service.SignIn(context.Background(), &dto.SignInRequest{
		Email: "alice@commune.app", Password: "sup3rsecret",
	})

	require.NoError(t, err)
	assert.Equal(t, signedUp.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestSignIn_WrongPassword(t *testing.T) {
	_, service := newAuthService()

	_, _, err := service.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Email: "alice@commune.app", Password: "sup3rsecret",
	})
	require.NoError(t, err)

	_, _, err = service.SignIn(context.Background(), &dto.SignInRequest{
		Email: "alice@commune.app", Password: "wr0ngpass",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	_, service := newAuthService()

	_, _, err := service.SignIn(context.Background(), &dto.SignInRequest{
		Email: "nobody@commune.app", Password: "sup3rsecret",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	_, service := newAuthService()

	signedUp, _, err := service.SignUp(context.Background(), &dto.SignUpRequest{
		Username: "alice", Email: "alice@commune.app", Password: "sup3rsecret",
	})
	require.NoError(t, err)

	user, err := service.Me(context.Background(), signedUp.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = service.Me(context.Background(), "user-missing")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
