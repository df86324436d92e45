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

// MemberRepository handles database operations for membership records
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a new membership record
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	sql, args, err := r.insertQuery(member)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return r.mapInsertError(err)
}

// CreateTx inserts a new membership record within the given transaction
func (r *MemberRepository) CreateTx(ctx context.Context, tx pgx.Tx, member *models.Member) error {
	sql, args, err := r.insertQuery(member)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, sql, args...)
	return r.mapInsertError(err)
}

func (r *MemberRepository) insertQuery(member *models.Member) (string, []interface{}, error) {
	query := squirrel.Insert("members").
		Columns("id", "community_id", "user_id", "role_id", "created_at").
		Values(member.ID, member.CommunityID, member.UserID, member.RoleID, member.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("error building SQL: %w", err)
	}
	return sql, args, nil
}

func (r *MemberRepository) mapInsertError(err error) error {
	if err == nil {
		return nil
	}
	if dberrors.IsDuplicateConstraintError(err, "members_community_id_user_id_key") {
		return apperrors.ErrMemberAlreadyExists
	}
	return fmt.Errorf("error executing query: %w", err)
}

// FindByID retrieves a membership record by id
func (r *MemberRepository) FindByID(ctx context.Context, id string) (*models.Member, error) {
	query := squirrel.Select("id", "community_id", "user_id", "role_id", "created_at").
		From("members").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var member models.Member
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&member.ID,
		&member.CommunityID,
		&member.UserID,
		&member.RoleID,
		&member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &member, nil
}

// FindByCommunity retrieves membership records of a community, oldest first
func (r *MemberRepository) FindByCommunity(ctx context.Context, communityID string, offset uint64, limit int) ([]models.Member, error) {
	query := squirrel.Select("id", "community_id", "user_id", "role_id", "created_at").
		From("members").
		Where(squirrel.Eq{"community_id": communityID}).
		OrderBy("created_at ASC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var member models.Member
		err := rows.Scan(
			&member.ID,
			&member.CommunityID,
			&member.UserID,
			&member.RoleID,
			&member.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return members, nil
}

// CountByCommunity returns the number of members in a community
func (r *MemberRepository) CountByCommunity(ctx context.Context, communityID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM members WHERE community_id = $1`, communityID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// FindByCommunityAndUser retrieves the user's membership row within one
// specific community, with the role expanded. Returns nil without error
// when the user holds no membership there.
func (r *MemberRepository) FindByCommunityAndUser(ctx context.Context, communityID, userID string) (*models.Member, error) {
	query := squirrel.Select(
		"m.id", "m.community_id", "m.user_id", "m.role_id", "m.created_at",
		"r.id", "r.name", "r.created_at", "r.updated_at",
	).
		From("members m").
		Join("roles r ON r.id = m.role_id").
		Where(squirrel.Eq{"m.community_id": communityID, "m.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var member models.Member
	var role models.Role
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&member.ID,
		&member.CommunityID,
		&member.UserID,
		&member.RoleID,
		&member.CreatedAt,
		&role.ID,
		&role.Name,
		&role.CreatedAt,
		&role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	member.Role = &role
	return &member, nil
}

// Delete removes a membership record by id
func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	query := squirrel.Delete("members").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}
