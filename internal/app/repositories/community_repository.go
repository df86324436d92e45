package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cankurt/commune/internal/app/models"
	"github.com/cankurt/commune/internal/pkg/apperrors"
	"github.com/cankurt/commune/internal/pkg/dberrors"
)

// CommunityRepository handles database operations for communities
type CommunityRepository struct {
	db *pgxpool.Pool
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// CreateTx inserts a new community within the given transaction. The
// owner membership insert shares the transaction, so both rows commit
// together or not at all.
func (r *CommunityRepository) CreateTx(ctx context.Context, tx pgx.Tx, community *models.Community) error {
	query := squirrel.Insert("communities").
		Columns("id", "name", "slug", "owner_id", "created_at", "updated_at").
		Values(community.ID, community.Name, community.Slug, community.OwnerID,
			community.CreatedAt, community.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "communities_slug_key") {
			return apperrors.ErrSlugAlreadyExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// FindByID retrieves a community by id
func (r *CommunityRepository) FindByID(ctx context.Context, id string) (*models.Community, error) {
	query := squirrel.Select("id", "name", "slug", "owner_id", "created_at", "updated_at").
		From("communities").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var community models.Community
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&community.ID,
		&community.Name,
		&community.Slug,
		&community.OwnerID,
		&community.CreatedAt,
		&community.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &community, nil
}

// FindAll retrieves communities newest first, each with its owner
// expanded to id and username.
func (r *CommunityRepository) FindAll(ctx context.Context, offset uint64, limit int) ([]models.Community, error) {
	return r.findExpanded(ctx, nil, offset, limit)
}

// Count returns the total number of communities
func (r *CommunityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM communities`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// FindByOwner retrieves communities owned by the given user, newest first.
func (r *CommunityRepository) FindByOwner(ctx context.Context, ownerID string, offset uint64, limit int) ([]models.Community, error) {
	return r.findExpanded(ctx, squirrel.Eq{"c.owner_id": ownerID}, offset, limit)
}

// CountByOwner returns the number of communities owned by the given user
func (r *CommunityRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM communities WHERE owner_id = $1`, ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// FindJoinedByUser retrieves communities in which the given user holds a
// membership, newest first.
func (r *CommunityRepository) FindJoinedByUser(ctx context.Context, userID string, offset uint64, limit int) ([]models.Community, error) {
	query := squirrel.Select(
		"c.id", "c.name", "c.slug", "c.owner_id", "c.created_at", "c.updated_at",
		"u.id", "u.username",
	).
		From("communities c").
		Join("members m ON m.community_id = c.id").
		Join("users u ON u.id = c.owner_id").
		Where(squirrel.Eq{"m.user_id": userID}).
		OrderBy("c.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryExpanded(ctx, query)
}

// CountJoinedByUser returns the number of communities the user has joined
func (r *CommunityRepository) CountJoinedByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM communities c JOIN members m ON m.community_id = c.id WHERE m.user_id = $1`,
		userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

func (r *CommunityRepository) findExpanded(ctx context.Context, pred interface{}, offset uint64, limit int) ([]models.Community, error) {
	query := squirrel.Select(
		"c.id", "c.name", "c.slug", "c.owner_id", "c.created_at", "c.updated_at",
		"u.id", "u.username",
	).
		From("communities c").
		Join("users u ON u.id = c.owner_id").
		OrderBy("c.created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if pred != nil {
		query = query.Where(pred)
	}

	return r.queryExpanded(ctx, query)
}

func (r *CommunityRepository) queryExpanded(ctx context.Context, query squirrel.SelectBuilder) ([]models.Community, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	communities := []models.Community{}
	for rows.Next() {
		var community models.Community
		var owner models.User
		err := rows.Scan(
			&community.ID,
			&community.Name,
			&community.Slug,
			&community.OwnerID,
			&community.CreatedAt,
			&community.UpdatedAt,
			&owner.ID,
			&owner.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		community.Owner = &owner
		communities = append(communities, community)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return communities, nil
}
