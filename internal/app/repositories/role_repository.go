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

// RoleRepository handles database operations for membership roles
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// Create inserts a new role
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	query := squirrel.Insert("roles").
		Columns("id", "name", "created_at", "updated_at").
		Values(role.ID, role.Name, role.CreatedAt, role.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "roles_name_key") {
			return apperrors.ErrRoleAlreadyExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// FindByID retrieves a role by id
func (r *RoleRepository) FindByID(ctx context.Context, id string) (*models.Role, error) {
	return r.findOne(ctx, squirrel.Eq{"id": id})
}

// FindByName retrieves a role by its unique name
func (r *RoleRepository) FindByName(ctx context.Context, name string) (*models.Role, error) {
	return r.findOne(ctx, squirrel.Eq{"name": name})
}

// FindAll retrieves roles ordered by creation time
func (r *RoleRepository) FindAll(ctx context.Context, offset uint64, limit int) ([]models.Role, error) {
	query := squirrel.Select("id", "name", "created_at", "updated_at").
		From("roles").
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

	roles := []models.Role{}
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return roles, nil
}

// Count returns the total number of roles
func (r *RoleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

func (r *RoleRepository) findOne(ctx context.Context, pred squirrel.Eq) (*models.Role, error) {
	query := squirrel.Select("id", "name", "created_at", "updated_at").
		From("roles").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var role models.Role
	err = r.db.QueryRow(ctx, sql, args...).Scan(&role.ID, &role.Name, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &role, nil
}
