package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

func pendingRequest() *entity.AccessRequest {
	return &entity.AccessRequest{
		ID:     "req-1",
		Email:  "dealer@example.com",
		Status: entity.RequestPending,
	}
}

func TestApproveAccessRequestSuccess(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)
	mockEmail := new(MockEmailService)

	mockRequestRepo.On("FindByID", ctx, "req-1").Return(pendingRequest(), nil)
	mockUserRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockRequestRepo.On("UpdateStatus", ctx, "req-1", entity.RequestApproved).Return(nil)
	mockEmail.On("SendAccessApproved", "dealer@example.com").Return(nil)

	uc := usecase.NewAccessApprovalUseCase(mockRequestRepo, mockUserRepo, mockEmail, zerolog.Nop())

	output, err := uc.Approve(ctx, usecase.ResolveAccessRequestInput{RequestID: "req-1"})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, entity.RequestApproved, output.Status)
	assert.Equal(t, "dealer@example.com", output.Email)

	mockUserRepo.AssertCalled(t, "Create", ctx, mock.Anything)
	mockRequestRepo.AssertCalled(t, "UpdateStatus", ctx, "req-1", entity.RequestApproved)
	mockUserRepo.AssertNotCalled(t, "DeleteByEmail", mock.Anything, mock.Anything)
}

func TestApproveAccessRequestStatusFailureCompensates(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	mockRequestRepo.On("FindByID", ctx, "req-1").Return(pendingRequest(), nil)
	// User row lands, but flipping the request fails.
	mockUserRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockRequestRepo.On("UpdateStatus", ctx, "req-1", entity.RequestApproved).Return(errors.New("connection reset"))
	mockUserRepo.On("DeleteByEmail", ctx, "dealer@example.com").Return(nil)

	uc := usecase.NewAccessApprovalUseCase(mockRequestRepo, mockUserRepo, nil, zerolog.Nop())

	output, err := uc.Approve(ctx, usecase.ResolveAccessRequestInput{RequestID: "req-1"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))

	// The freshly inserted user was rolled back.
	mockUserRepo.AssertCalled(t, "DeleteByEmail", ctx, "dealer@example.com")
}

func TestApproveAccessRequestEmailAlreadyAuthorized(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	mockRequestRepo.On("FindByID", ctx, "req-1").Return(pendingRequest(), nil)
	mockUserRepo.On("Create", ctx, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := usecase.NewAccessApprovalUseCase(mockRequestRepo, mockUserRepo, nil, zerolog.Nop())

	output, err := uc.Approve(ctx, usecase.ResolveAccessRequestInput{RequestID: "req-1"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, usecase.CodeDuplicate, err.(*usecase.DomainError).Code)

	// First operation never applied, so nothing to compensate or flip.
	mockRequestRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveAccessRequestAlreadyResolved(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	resolved := pendingRequest()
	resolved.Status = entity.RequestRejected
	mockRequestRepo.On("FindByID", ctx, "req-1").Return(resolved, nil)

	uc := usecase.NewAccessApprovalUseCase(mockRequestRepo, mockUserRepo, nil, zerolog.Nop())

	output, err := uc.Approve(ctx, usecase.ResolveAccessRequestInput{RequestID: "req-1"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRejectAccessRequest(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	mockRequestRepo.On("FindByID", ctx, "req-1").Return(pendingRequest(), nil)
	mockRequestRepo.On("UpdateStatus", ctx, "req-1", entity.RequestRejected).Return(nil)

	uc := usecase.NewAccessApprovalUseCase(mockRequestRepo, mockUserRepo, nil, zerolog.Nop())

	output, err := uc.Reject(ctx, usecase.ResolveAccessRequestInput{RequestID: "req-1"})

	assert.NoError(t, err)
	assert.Equal(t, entity.RequestRejected, output.Status)

	// Rejection never touches the whitelist.
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
