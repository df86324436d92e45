package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/db"
)

// Repository contracts consumed by the services. The pgx-backed
// implementations live in the repositories package; tests substitute
// in-memory fakes.

// UserRepository stores user accounts
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// RoleRepository stores membership roles
type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	FindByID(ctx context.Context, id string) (*models.Role, error)
	FindByName(ctx context.Context, name string) (*models.Role, error)
	FindAll(ctx context.Context, offset uint64, limit int) ([]models.Role, error)
	Count(ctx context.Context) (int64, error)
}

// CommunityRepository stores communities
type CommunityRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, community *models.Community) error
	FindByID(ctx context.Context, id string) (*models.Community, error)
	FindAll(ctx context.Context, offset uint64, limit int) ([]models.Community, error)
	Count(ctx context.Context) (int64, error)
	FindByOwner(ctx context.Context, ownerID string, offset uint64, limit int) ([]models.Community, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	FindJoinedByUser(ctx context.Context, userID string, offset uint64, limit int) ([]models.Community, error)
	CountJoinedByUser(ctx context.Context, userID string) (int64, error)
}

// MemberRepository stores membership records
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	CreateTx(ctx context.Context, tx pgx.Tx, member *models.Member) error
	FindByID(ctx context.Context, id string) (*models.Member, error)
	FindByCommunity(ctx context.Context, communityID string, offset uint64, limit int) ([]models.Member, error)
	CountByCommunity(ctx context.Context, communityID string) (int64, error)
	FindByCommunityAndUser(ctx context.Context, communityID, userID string) (*models.Member, error)
	Delete(ctx context.Context, id string) error
}

// TxRunner executes a function within a database transaction
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}
