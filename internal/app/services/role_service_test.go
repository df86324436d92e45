package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/apperrors"
)

func TestCreateRole(t *testing.T) {
	repo := &fakeRoleRepo{}
	service := NewRoleService(repo, testLogger())

	resp, err := service.CreateRole(context.Background(), &dto.CreateRoleRequest{Name: "Event Host"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Event Host", resp.Name)
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateRole_DuplicateNameRejected(t *testing.T) {
	repo := &fakeRoleRepo{}
	service := NewRoleService(repo, testLogger())

	_, err := service.CreateRole(context.Background(), &dto.CreateRoleRequest{Name: "Event Host"})
	require.NoError(t, err)

	_, err = service.CreateRole(context.Background(), &dto.CreateRoleRequest{Name: "Event Host"})
	assert.ErrorIs(t, err, apperrors.ErrRoleAlreadyExists)
}

func TestGetAllRoles_Pagination(t *testing.T) {
	repo := &fakeRoleRepo{}
	service := NewRoleService(repo, testLogger())
	for i := 0; i < 12; i++ {
		_, err := service.CreateRole(context.Background(), &dto.CreateRoleRequest{
			Name: fmt.Sprintf("Role %02d", i),
		})
		require.NoError(t, err)
	}

	meta, roles, err := service.GetAllRoles(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(12), meta.Total)
	assert.Equal(t, 2, meta.Pages)
	assert.Equal(t, 2, meta.Page)
	assert.Len(t, roles, 2)
}
