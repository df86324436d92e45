package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	RoleRepository      *RoleRepository
	CommunityRepository *CommunityRepository
	MemberRepository    *MemberRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		RoleRepository:      NewRoleRepository(db),
		CommunityRepository: NewCommunityRepository(db),
		MemberRepository:    NewMemberRepository(db),
	}
}
