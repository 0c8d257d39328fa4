package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type AccessRequestRepository struct {
	DB *sql.DB
}

func NewAccessRequestRepository(db *sql.DB) *AccessRequestRepository {
	return &AccessRequestRepository{DB: db}
}

func (r *AccessRequestRepository) Create(ctx context.Context, req *entity.AccessRequest) error {
	query := `
		INSERT INTO access_requests (id, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query, req.ID, req.Email, req.Status, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert access request: %w", err)
	}

	return nil
}

func (r *AccessRequestRepository) FindByID(ctx context.Context, id string) (*entity.AccessRequest, error) {
	query := `SELECT id, email, status, created_at, updated_at FROM access_requests WHERE id = $1`

	var req entity.AccessRequest
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.Email, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up access request: %w", err)
	}

	return &req, nil
}

func (r *AccessRequestRepository) FindAll(ctx context.Context) ([]*entity.AccessRequest, error) {
	query := `SELECT id, email, status, created_at, updated_at FROM access_requests ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query access requests: %w", err)
	}
	defer rows.Close()

	requests := []*entity.AccessRequest{}
	for rows.Next() {
		var req entity.AccessRequest
		if err := rows.Scan(&req.ID, &req.Email, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, &req)
	}

	return requests, rows.Err()
}

func (r *AccessRequestRepository) HasPendingForEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM access_requests WHERE email = $1 AND status = $2)`

	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, email, entity.RequestPending).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending requests: %w", err)
	}

	return exists, nil
}

func (r *AccessRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE access_requests SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update access request: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrRequestNotFound
	}

	return nil
}
