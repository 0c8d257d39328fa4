package usecase

import (
	"context"
	"errors"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type RequestAccessInput struct {
	Email string `json:"email"`
}

type RequestAccessOutput struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// RequestAccessUseCase records an unauthenticated visitor's request to be
// whitelisted. Requests stay pending until an admin resolves them.
type RequestAccessUseCase struct {
	RequestRepo entity.AccessRequestRepositoryInterface
	UserRepo    entity.AuthorizedUserRepositoryInterface
}

func NewRequestAccessUseCase(requestRepo entity.AccessRequestRepositoryInterface, userRepo entity.AuthorizedUserRepositoryInterface) *RequestAccessUseCase {
	return &RequestAccessUseCase{
		RequestRepo: requestRepo,
		UserRepo:    userRepo,
	}
}

func (uc *RequestAccessUseCase) Execute(ctx context.Context, input RequestAccessInput) (*RequestAccessOutput, error) {
	if errs := ValidateEmail(input.Email); len(errs) > 0 {
		return nil, validationFailure(errs)
	}

	if _, err := uc.UserRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, &DomainError{
			Code:    CodeDuplicate,
			Message: "this email is already authorized",
		}
	} else if !errors.Is(err, entity.ErrUserNotFound) {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	pending, err := uc.RequestRepo.HasPendingForEmail(ctx, input.Email)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}
	if pending {
		return nil, &DomainError{
			Code:    CodeDuplicate,
			Message: entity.ErrDuplicateRequest.Error(),
		}
	}

	req, err := entity.NewAccessRequest(input.Email)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.RequestRepo.Create(ctx, req); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &RequestAccessOutput{
		ID:     req.ID,
		Status: req.Status,
		Msg:    "Access request received. You will be notified once reviewed.",
	}, nil
}
