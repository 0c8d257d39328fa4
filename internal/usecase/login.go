package usecase

import (
	"context"
	"errors"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type LoginInput struct {
	Email string `json:"email"`
}

type LoginOutput struct {
	Token   string `json:"token"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// LoginUseCase exchanges a whitelisted email for a session token. There is
// no password: presence on the authorized_users whitelist is the sole
// access-control predicate.
type LoginUseCase struct {
	UserRepo   entity.AuthorizedUserRepositoryInterface
	Sessions   SessionStore
	AdminEmail string
}

func NewLoginUseCase(userRepo entity.AuthorizedUserRepositoryInterface, sessions SessionStore, adminEmail string) *LoginUseCase {
	return &LoginUseCase{
		UserRepo:   userRepo,
		Sessions:   sessions,
		AdminEmail: adminEmail,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if errs := ValidateEmail(input.Email); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	user, err := uc.UserRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, entity.ErrUserNotFound) {
		return nil, &DomainError{
			Code:    CodeNotAuthorized,
			Message: "this email is not authorized for the marketplace",
		}
	}
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	token, err := uc.Sessions.Create(ctx, user.Email)
	if err != nil {
		return nil, &TechnicalError{Code: CodeSession, Message: err.Error()}
	}

	return &LoginOutput{
		Token:   token,
		Email:   user.Email,
		IsAdmin: user.Email == uc.AdminEmail,
	}, nil
}

// Logout deletes the session key. Idempotent.
func (uc *LoginUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.Sessions.Delete(ctx, token); err != nil {
		return &TechnicalError{Code: CodeSession, Message: err.Error()}
	}
	return nil
}
