package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/app/models/dto"
	"github.com/cankurt/commune/internal/pkg/apperrors"
)

type communityFixture struct {
	users       *fakeUserRepo
	roles       *fakeRoleRepo
	communities *fakeCommunityRepo
	members     *fakeMemberRepo
	service     CommunityService

	adminRole models.Role
	owner     models.User
}

func newCommunityFixture(t *testing.T) *communityFixture {
	t.Helper()

	f := &communityFixture{
		users: newFakeUserRepo(),
		roles: &fakeRoleRepo{},
	}
	f.communities = &fakeCommunityRepo{users: f.users}
	f.members = &fakeMemberRepo{roles: f.roles}

	f.adminRole = models.Role{ID: "role-admin", Name: models.RoleCommunityAdmin, CreatedAt: time.Now().UTC()}
	f.roles.roles = []models.Role{f.adminRole}

	f.owner = models.User{ID: "user-owner", Username: "owner", Email: "owner@commune.app"}
	cp := f.owner
	f.users.users[f.owner.ID] = &cp

	txRunner := &fakeTxRunner{communities: f.communities, members: f.members}
	f.service = NewCommunityService(f.communities, f.members, f.roles, txRunner, testLogger())
	return f
}

func TestCreateCommunity_CreatesOwnerAdminMembership(t *testing.T) {
	f := newCommunityFixture(t)

	resp, err := f.service.CreateCommunity(context.Background(), f.owner.ID, &dto.CreateCommunityRequest{
		Name: "Dev Guild",
	})

	require.NoError(t, err)
	assert.Equal(t, "Dev Guild", resp.Name)
	assert.Equal(t, "dev-guild", resp.Slug)
	assert.Equal(t, f.owner.ID, resp.Owner)

	require.Len(t, f.communities.communities, 1)
	require.Len(t, f.members.members, 1)
	membership := f.members.members[0]
	assert.Equal(t, resp.ID, membership.CommunityID)
	assert.Equal(t, f.owner.ID, membership.UserID)
	assert.Equal(t, f.adminRole.ID, membership.RoleID)
}

func TestCreateCommunity_SlugKeepsTrailingHyphen(t *testing.T) {
	f := newCommunityFixture(t)

	resp, err := f.service.CreateCommunity(context.Background(), f.owner.ID, &dto.CreateCommunityRequest{
		Name: "Dev Guild ",
	})

	require.NoError(t, err)
	assert.Equal(t, "dev-guild-", resp.Slug)
}

func TestCreateCommunity_MembershipFailureRollsBackCommunity(t *testing.T) {
	f := newCommunityFixture(t)
	f.members.failCreate = true

	_, err := f.service.CreateCommunity(context.Background(), f.owner.ID, &dto.CreateCommunityRequest{
		Name: "Dev Guild",
	})

	require.Error(t, err)
	assert.Empty(t, f.communities.communities, "community must not survive a failed owner membership")
	assert.Empty(t, f.members.members)
}

func TestCreateCommunity_AdminRoleMissing(t *testing.T) {
	f := newCommunityFixture(t)
	f.roles.roles = nil

	_, err := f.service.CreateCommunity(context.Background(), f.owner.ID, &dto.CreateCommunityRequest{
		Name: "Dev Guild",
	})

	assert.ErrorIs(t, err, apperrors.ErrRoleNotFound)
	assert.Empty(t, f.communities.communities)
}

func TestCreateCommunity_DuplicateSlugRejected(t *testing.T) {
	f := newCommunityFixture(t)

	_, err := f.service.CreateCommunity(context.Background(), f.owner.ID, &dto.CreateCommunityRequest{Name: "Dev Guild"})
	require.NoError(t, err)

	_, err = f.service.CreateCommunity(context.Background(), f.owner.ID, &dto.CreateCommunityRequest{Name: "dev guild"})
	assert.ErrorIs(t, err, apperrors.ErrSlugAlreadyExists)
	assert.Len(t, f.communities.communities, 1)
	assert.Len(t, f.members.members, 1)
}

func TestGetAllCommunities_Pagination(t *testing.T) {
	f := newCommunityFixture(t)
	for i := 0; i < 25; i++ {
		f.communities.communities = append(f.communities.communities, models.Community{
			ID:      fmt.Sprintf("community-%02d", i),
			Name:    fmt.Sprintf("Community %02d", i),
			Slug:    fmt.Sprintf("community-%02d", i),
			OwnerID: f.owner.ID,
		})
	}

	meta, page3, err := f.service.GetAllCommunities(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)
	assert.Equal(t, 3, meta.Page)
	assert.Len(t, page3, 5)

	meta, page1, err := f.service.GetAllCommunities(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.Page)
	assert.Len(t, page1, 10)
	assert.Equal(t, "owner", page1[0].Owner.Username)
}

func TestGetCommunityMembers_CommunityNotFound(t *testing.T) {
	f := newCommunityFixture(t)

	_, _, err := f.service.GetCommunityMembers(context.Background(), "community-missing", 1)

	assert.ErrorIs(t, err, apperrors.ErrCommunityNotFound)
}

func TestGetOwnedCommunities_FiltersByOwner(t *testing.T) {
	f := newCommunityFixture(t)
	f.communities.communities = []models.Community{
		{ID: "community-a", Name: "A", Slug: "a", OwnerID: f.owner.ID},
		{ID: "community-b", Name: "B", Slug: "b", OwnerID: "user-somebody-else"},
	}

	meta, owned, err := f.service.GetOwnedCommunities(context.Background(), f.owner.ID, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), meta.Total)
	require.Len(t, owned, 1)
	assert.Equal(t, "community-a", owned[0].ID)
}
