package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusnotes/internal/domain/repository"
	apperrors "campusnotes/pkg/errors"
)

type postgresRoleRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRoleRepository(pool *pgxpool.Pool) repository.RoleRepository {
	return &postgresRoleRepository{
		pool: pool,
	}
}

func (r *postgresRoleRepository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var has bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)",
		userID, role,
	).Scan(&has)
	if err != nil {
		return false, apperrors.Internal("Failed to check role", err)
	}

	return has, nil
}

func (r *postgresRoleRepository) FirstUserIDWithRole(ctx context.Context, role string) (string, error) {
	var userID string
	err := r.pool.QueryRow(ctx,
		"SELECT user_id FROM user_roles WHERE role = $1 ORDER BY user_id LIMIT 1",
		role,
	).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NotFound("Role holder", err)
		}
		return "", apperrors.Internal("Failed to look up role holders", err)
	}

	return userID, nil
}
