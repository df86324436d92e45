package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/db"
	"github.com/cankurt/commune/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

var errInsertFailed = errors.New("insert failed")

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeRoleRepo struct {
	roles []models.Role
}

func (f *fakeRoleRepo) Create(_ context.Context, role *models.Role) error {
	for _, r := range f.roles {
		if r.Name == role.Name {
			return apperrors.ErrRoleAlreadyExists
		}
	}
	f.roles = append(f.roles, *role)
	return nil
}

func (f *fakeRoleRepo) FindByID(_ context.Context, id string) (*models.Role, error) {
	for _, r := range f.roles {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, apperrors.ErrRoleNotFound
}

func (f *fakeRoleRepo) FindByName(_ context.Context, name string) (*models.Role, error) {
	for _, r := range f.roles {
		if r.Name == name {
			cp := r
			return &cp, nil
		}
	}
	return nil, apperrors.ErrRoleNotFound
}

func (f *fakeRoleRepo) FindAll(_ context.Context, offset uint64, limit int) ([]models.Role, error) {
	return pageOf(f.roles, offset, limit), nil
}

func (f *fakeRoleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.roles)), nil
}

type fakeCommunityRepo struct {
	communities []models.Community
	users       *fakeUserRepo
	failCreate  bool
}

func (f *fakeCommunityRepo) CreateTx(_ context.Context, _ pgx.Tx, community *models.Community) error {
	if f.failCreate {
		return errInsertFailed
	}
	for _, c := range f.communities {
		if c.Slug == community.Slug {
			return apperrors.ErrSlugAlreadyExists
		}
	}
	f.communities = append(f.communities, *community)
	return nil
}

func (f *fakeCommunityRepo) FindByID(_ context.Context, id string) (*models.Community, error) {
	for _, c := range f.communities {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrCommunityNotFound
}

func (f *fakeCommunityRepo) FindAll(_ context.Context, offset uint64, limit int) ([]models.Community, error) {
	return f.expand(pageOf(f.communities, offset, limit)), nil
}

func (f *fakeCommunityRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.communities)), nil
}

func (f *fakeCommunityRepo) FindByOwner(_ context.Context, ownerID string, offset uint64, limit int) ([]models.Community, error) {
	owned := []models.Community{}
	for _, c := range f.communities {
		if c.OwnerID == ownerID {
			owned = append(owned, c)
		}
	}
	return pageOf(owned, offset, limit), nil
}

func (f *fakeCommunityRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for _, c := range f.communities {
		if c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCommunityRepo) FindJoinedByUser(ctx context.Context, userID string, offset uint64, limit int) ([]models.Community, error) {
	return nil, nil
}

func (f *fakeCommunityRepo) CountJoinedByUser(_ context.Context, userID string) (int64, error) {
	return 0, nil
}

func (f *fakeCommunityRepo) expand(communities []models.Community) []models.Community {
	if f.users == nil {
		return communities
	}
	for i := range communities {
		if u, ok := f.users.users[communities[i].OwnerID]; ok {
			cp := *u
			communities[i].Owner = &cp
		}
	}
	return communities
}

type fakeMemberRepo struct {
	members    []models.Member
	roles      *fakeRoleRepo
	failCreate bool
}

func (f *fakeMemberRepo) Create(_ context.Context, member *models.Member) error {
	return f.insert(member)
}

func (f *fakeMemberRepo) CreateTx(_ context.Context, _ pgx.Tx, member *models.Member) error {
	return f.insert(member)
}

func (f *fakeMemberRepo) insert(member *models.Member) error {
	if f.failCreate {
		return errInsertFailed
	}
	for _, m := range f.members {
		if m.CommunityID == member.CommunityID && m.UserID == member.UserID {
			return apperrors.ErrMemberAlreadyExists
		}
	}
	f.members = append(f.members, *member)
	return nil
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id string) (*models.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			cp := m
			return &cp, nil
		}
	}
	return nil, apperrors.ErrMemberNotFound
}

func (f *fakeMemberRepo) FindByCommunity(_ context.Context, communityID string, offset uint64, limit int) ([]models.Member, error) {
	matched := []models.Member{}
	for _, m := range f.members {
		if m.CommunityID == communityID {
			matched = append(matched, m)
		}
	}
	return pageOf(matched, offset, limit), nil
}

func (f *fakeMemberRepo) CountByCommunity(_ context.Context, communityID string) (int64, error) {
	var n int64
	for _, m := range f.members {
		if m.CommunityID == communityID {
			n++
		}
	}
	return n, nil
}

func (f *fakeMemberRepo) FindByCommunityAndUser(ctx context.Context, communityID, userID string) (*models.Member, error) {
	for _, m := range f.members {
		if m.CommunityID == communityID && m.UserID == userID {
			cp := m
			if f.roles != nil {
				if role, err := f.roles.FindByID(ctx, m.RoleID); err == nil {
					cp.Role = role
				}
			}
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMemberRepo) Delete(_ context.Context, id string) error {
	for i, m := range f.members {
		if m.ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrMemberNotFound
}

// fakeTxRunner mimics transactional semantics: on error it restores the
// repositories to their pre-transaction state.
type fakeTxRunner struct {
	communities *fakeCommunityRepo
	members     *fakeMemberRepo
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	var communitySnapshot []models.Community
	var memberSnapshot []models.Member
	if f.communities != nil {
		communitySnapshot = append(communitySnapshot, f.communities.communities...)
	}
	if f.members != nil {
		memberSnapshot = append(memberSnapshot, f.members.members...)
	}

	if err := fn(ctx, nil); err != nil {
		if f.communities != nil {
			f.communities.communities = communitySnapshot
		}
		if f.members != nil {
			f.members.members = memberSnapshot
		}
		return err
	}
	return nil
}

func pageOf[T any](items []T, offset uint64, limit int) []T {
	if int(offset) >= len(items) {
		return []T{}
	}
	end := int(offset) + limit
	if end > len(items) {
		end = len(items)
	}
	return append([]T{}, items[offset:end]...)
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
