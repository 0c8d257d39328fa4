package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("authorized user not found")
	ErrEmailAlreadyExists   = errors.New("email already authorized")
	ErrAdminCannotBeRevoked = errors.New("the admin account cannot be revoked")
)

// AuthorizedUser is an email permitted to use protected routes. Presence of a
// row is the sole access-control predicate.
type AuthorizedUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewAuthorizedUser(email string) (*AuthorizedUser, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	return &AuthorizedUser{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}, nil
}

type AuthorizedUserRepositoryInterface interface {
	Create(ctx context.Context, user *AuthorizedUser) error
	FindByEmail(ctx context.Context, email string) (*AuthorizedUser, error)
	FindByID(ctx context.Context, id string) (*AuthorizedUser, error)
	FindAll(ctx context.Context) ([]*AuthorizedUser, error)
	Delete(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
}
