package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type ResolveAccessRequestInput struct {
	RequestID string `json:"request_id"`
}

type ResolveAccessRequestOutput struct {
	RequestID string `json:"request_id"`
	Email     string `json:"email"`
	Status    string `json:"status"`
}

// AccessApprovalUseCase resolves pending access requests. Approval spans two
// tables, so it runs as a saga: insert into authorized_users, then flip the
// request status; if the status write fails, the freshly inserted user is
// deleted again so the whitelist and the request log never disagree.
type AccessApprovalUseCase struct {
	RequestRepo  entity.AccessRequestRepositoryInterface
	UserRepo     entity.AuthorizedUserRepositoryInterface
	EmailService EmailService
	Log          zerolog.Logger
}

func NewAccessApprovalUseCase(
	requestRepo entity.AccessRequestRepositoryInterface,
	userRepo entity.AuthorizedUserRepositoryInterface,
	emailService EmailService,
	log zerolog.Logger,
) *AccessApprovalUseCase {
	return &AccessApprovalUseCase{
		RequestRepo:  requestRepo,
		UserRepo:     userRepo,
		EmailService: emailService,
		Log:          log.With().Str("usecase", "access_approval").Logger(),
	}
}

func (uc *AccessApprovalUseCase) Approve(ctx context.Context, input ResolveAccessRequestInput) (*ResolveAccessRequestOutput, error) {
	req, err := uc.loadPending(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewAuthorizedUser(req.Email)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	txn := NewTransaction()
	txn.OnCompensationError = func(name string, compErr error) {
		uc.Log.Error().Err(compErr).Str("step", name).Str("email", req.Email).
			Msg("approval rollback failed, stores may disagree")
	}

	txn.AddOperation("authorize_user", func(ctx context.Context) error {
		return uc.UserRepo.Create(ctx, user)
	})
	txn.AddCompensation("revoke_user", func(ctx context.Context) error {
		return uc.UserRepo.DeleteByEmail(ctx, req.Email)
	})
	txn.AddOperation("mark_request_approved", func(ctx context.Context) error {
		return uc.RequestRepo.UpdateStatus(ctx, req.ID, entity.RequestApproved)
	})

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{
				Code:    CodeDuplicate,
				Message: "this email is already authorized",
			}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to approve access request: " + err.Error(),
		}
	}

	// Best effort: a lost mail never undoes an approval.
	if uc.EmailService != nil {
		go func(to string) {
			if err := uc.EmailService.SendAccessApproved(to); err != nil {
				uc.Log.Warn().Err(err).Str("email", to).Msg("approval mail not sent")
			}
		}(req.Email)
	}

	uc.Log.Info().Str("request_id", req.ID).Str("email", req.Email).Msg("access request approved")

	return &ResolveAccessRequestOutput{
		RequestID: req.ID,
		Email:     req.Email,
		Status:    entity.RequestApproved,
	}, nil
}

func (uc *AccessApprovalUseCase) Reject(ctx context.Context, input ResolveAccessRequestInput) (*ResolveAccessRequestOutput, error) {
	req, err := uc.loadPending(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}

	if err := uc.RequestRepo.UpdateStatus(ctx, req.ID, entity.RequestRejected); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	return &ResolveAccessRequestOutput{
		RequestID: req.ID,
		Email:     req.Email,
		Status:    entity.RequestRejected,
	}, nil
}

func (uc *AccessApprovalUseCase) loadPending(ctx context.Context, id string) (*entity.AccessRequest, error) {
	req, err := uc.RequestRepo.FindByID(ctx, id)
	if errors.Is(err, entity.ErrRequestNotFound) {
		return nil, &DomainError{Code: CodeNotFound, Message: "access request not found"}
	}
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	if !req.IsPending() {
		return nil, &DomainError{
			Code:    CodeDuplicate,
			Message: entity.ErrRequestNotPending.Error(),
		}
	}

	return req, nil
}
