package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Access request status. Pending requests move to approved or rejected and
// stay there; requests are never deleted.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

var (
	ErrRequestNotFound   = errors.New("access request not found")
	ErrRequestNotPending = errors.New("access request already resolved")
	ErrDuplicateRequest  = errors.New("a pending request already exists for this email")
)

// AccessRequest is an unauthenticated visitor's request to be whitelisted.
type AccessRequest struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAccessRequest(email string) (*AccessRequest, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	return &AccessRequest{
		ID:        uuid.New().String(),
		Email:     email,
		Status:    RequestPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

func (r *AccessRequest) IsPending() bool {
	return r.Status == RequestPending
}

type AccessRequestRepositoryInterface interface {
	Create(ctx context.Context, req *AccessRequest) error
	FindByID(ctx context.Context, id string) (*AccessRequest, error)
	FindAll(ctx context.Context) ([]*AccessRequest, error)
	HasPendingForEmail(ctx context.Context, email string) (bool, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
