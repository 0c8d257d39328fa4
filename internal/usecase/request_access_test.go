package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

func TestRequestAccessCreatesPendingRequest(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	mockUserRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, entity.ErrUserNotFound)
	mockRequestRepo.On("HasPendingForEmail", ctx, "new@example.com").Return(false, nil)
	mockRequestRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRequestAccessUseCase(mockRequestRepo, mockUserRepo)

	output, err := uc.Execute(ctx, usecase.RequestAccessInput{Email: "new@example.com"})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, entity.RequestPending, output.Status)
}

func TestRequestAccessAlreadyAuthorized(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	user := &entity.AuthorizedUser{ID: "u-1", Email: "dealer@example.com"}
	mockUserRepo.On("FindByEmail", ctx, "dealer@example.com").Return(user, nil)

	uc := usecase.NewRequestAccessUseCase(mockRequestRepo, mockUserRepo)

	output, err := uc.Execute(ctx, usecase.RequestAccessInput{Email: "dealer@example.com"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, usecase.CodeDuplicate, err.(*usecase.DomainError).Code)
	mockRequestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestAccessDuplicatePending(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	mockUserRepo.On("FindByEmail", ctx, "new@example.com").Return(nil, entity.ErrUserNotFound)
	mockRequestRepo.On("HasPendingForEmail", ctx, "new@example.com").Return(true, nil)

	uc := usecase.NewRequestAccessUseCase(mockRequestRepo, mockUserRepo)

	output, err := uc.Execute(ctx, usecase.RequestAccessInput{Email: "new@example.com"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockRequestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRequestAccessInvalidEmail(t *testing.T) {
	ctx := context.Background()

	mockRequestRepo := new(MockAccessRequestRepository)
	mockUserRepo := new(MockAuthorizedUserRepository)

	uc := usecase.NewRequestAccessUseCase(mockRequestRepo, mockUserRepo)

	output, err := uc.Execute(ctx, usecase.RequestAccessInput{Email: ""})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockUserRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}
