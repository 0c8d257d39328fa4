package usecase

import (
	"context"
	"errors"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

// ModerationUseCase covers the admin listing actions: approve, reject,
// delete. Every mutation is a direct field write against the store.
type ModerationUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewModerationUseCase(leadRepo entity.LeadRepositoryInterface) *ModerationUseCase {
	return &ModerationUseCase{LeadRepo: leadRepo}
}

func (uc *ModerationUseCase) Approve(ctx context.Context, leadID string) error {
	return uc.setStatus(ctx, leadID, entity.ModerationApproved)
}

func (uc *ModerationUseCase) Reject(ctx context.Context, leadID string) error {
	return uc.setStatus(ctx, leadID, entity.ModerationRejected)
}

func (uc *ModerationUseCase) Delete(ctx context.Context, leadID string) error {
	err := uc.LeadRepo.Delete(ctx, leadID)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return &DomainError{Code: CodeNotFound, Message: "lead not found"}
	}
	if err != nil {
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}
	return nil
}

func (uc *ModerationUseCase) setStatus(ctx context.Context, leadID, status string) error {
	err := uc.LeadRepo.UpdateModerationStatus(ctx, leadID, status)
	if errors.Is(err, entity.ErrLeadNotFound) {
		return &DomainError{Code: CodeNotFound, Message: "lead not found"}
	}
	if err != nil {
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}
	return nil
}

// RevokeUserUseCase removes an email from the whitelist. The configured
// admin identity can never be revoked, enforced here rather than in any
// client.
type RevokeUserUseCase struct {
	UserRepo   entity.AuthorizedUserRepositoryInterface
	AdminEmail string
}

func NewRevokeUserUseCase(userRepo entity.AuthorizedUserRepositoryInterface, adminEmail string) *RevokeUserUseCase {
	return &RevokeUserUseCase{UserRepo: userRepo, AdminEmail: adminEmail}
}

func (uc *RevokeUserUseCase) Execute(ctx context.Context, userID string) error {
	user, err := uc.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, entity.ErrUserNotFound) {
		return &DomainError{Code: CodeNotFound, Message: "user not found"}
	}
	if err != nil {
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	if user.Email == uc.AdminEmail {
		return &DomainError{
			Code:    CodeForbidden,
			Message: entity.ErrAdminCannotBeRevoked.Error(),
		}
	}

	if err := uc.UserRepo.Delete(ctx, userID); err != nil {
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return nil
}

// AddUserUseCase is the direct admin insert into the whitelist, bypassing the
// access-request flow.
type AddUserUseCase struct {
	UserRepo entity.AuthorizedUserRepositoryInterface
}

func NewAddUserUseCase(userRepo entity.AuthorizedUserRepositoryInterface) *AddUserUseCase {
	return &AddUserUseCase{UserRepo: userRepo}
}

func (uc *AddUserUseCase) Execute(ctx context.Context, email string) (*entity.AuthorizedUser, error) {
	if errs := ValidateEmail(email); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	user, err := entity.NewAuthorizedUser(email)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	err = uc.UserRepo.Create(ctx, user)
	if errors.Is(err, entity.ErrEmailAlreadyExists) {
		return nil, &DomainError{Code: CodeDuplicate, Message: "this email is already authorized"}
	}
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return user, nil
}
