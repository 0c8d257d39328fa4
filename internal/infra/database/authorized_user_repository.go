package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type AuthorizedUserRepository struct {
	DB *sql.DB
}

func NewAuthorizedUserRepository(db *sql.DB) *AuthorizedUserRepository {
	return &AuthorizedUserRepository{DB: db}
}

func (r *AuthorizedUserRepository) Create(ctx context.Context, user *entity.AuthorizedUser) error {
	query := `
		INSERT INTO authorized_users (id, email, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.DB.ExecContext(ctx, query, user.ID, user.Email, user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to insert authorized user: %w", err)
	}

	return nil
}

// FindByEmail is the whitelist point lookup made on every protected request.
func (r *AuthorizedUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AuthorizedUser, error) {
	query := `SELECT id, email, created_at FROM authorized_users WHERE email = $1`

	var user entity.AuthorizedUser
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up authorized user: %w", err)
	}

	return &user, nil
}

func (r *AuthorizedUserRepository) FindByID(ctx context.Context, id string) (*entity.AuthorizedUser, error) {
	query := `SELECT id, email, created_at FROM authorized_users WHERE id = $1`

	var user entity.AuthorizedUser
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up authorized user: %w", err)
	}

	return &user, nil
}

func (r *AuthorizedUserRepository) FindAll(ctx context.Context) ([]*entity.AuthorizedUser, error) {
	query := `SELECT id, email, created_at FROM authorized_users ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authorized users: %w", err)
	}
	defer rows.Close()

	users := []*entity.AuthorizedUser{}
	for rows.Next() {
		var user entity.AuthorizedUser
		if err := rows.Scan(&user.ID, &user.Email, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

func (r *AuthorizedUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM authorized_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete authorized user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}

// DeleteByEmail is the compensating action of the approval saga.
func (r *AuthorizedUserRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM authorized_users WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("failed to delete authorized user by email: %w", err)
	}
	return nil
}
