package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

const adminEmail = "admin@luxemarket.com"

func TestLoginAuthorizedEmail(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockAuthorizedUserRepository)
	mockSessions := new(MockSessionStore)

	user := &entity.AuthorizedUser{ID: "u-1", Email: "dealer@example.com"}
	mockUserRepo.On("FindByEmail", ctx, "dealer@example.com").Return(user, nil)
	mockSessions.On("Create", ctx, "dealer@example.com").Return("tok-abc", nil)

	uc := usecase.NewLoginUseCase(mockUserRepo, mockSessions, adminEmail)

	output, err := uc.Execute(ctx, usecase.LoginInput{Email: "dealer@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, "tok-abc", output.Token)
	assert.Equal(t, "dealer@example.com", output.Email)
	assert.False(t, output.IsAdmin)
}

func TestLoginAdminEmail(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockAuthorizedUserRepository)
	mockSessions := new(MockSessionStore)

	user := &entity.AuthorizedUser{ID: "u-0", Email: adminEmail}
	mockUserRepo.On("FindByEmail", ctx, adminEmail).Return(user, nil)
	mockSessions.On("Create", ctx, adminEmail).Return("tok-admin", nil)

	uc := usecase.NewLoginUseCase(mockUserRepo, mockSessions, adminEmail)

	output, err := uc.Execute(ctx, usecase.LoginInput{Email: adminEmail})

	assert.NoError(t, err)
	assert.True(t, output.IsAdmin)
}

func TestLoginUnknownEmailRejected(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockAuthorizedUserRepository)
	mockSessions := new(MockSessionStore)

	mockUserRepo.On("FindByEmail", ctx, "stranger@example.com").Return(nil, entity.ErrUserNotFound)

	uc := usecase.NewLoginUseCase(mockUserRepo, mockSessions, adminEmail)

	output, err := uc.Execute(ctx, usecase.LoginInput{Email: "stranger@example.com"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Equal(t, usecase.CodeNotAuthorized, err.(*usecase.DomainError).Code)
	mockSessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginInvalidEmail(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockAuthorizedUserRepository)
	mockSessions := new(MockSessionStore)

	uc := usecase.NewLoginUseCase(mockUserRepo, mockSessions, adminEmail)

	output, err := uc.Execute(ctx, usecase.LoginInput{Email: "not-an-email"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockUserRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestLoginStoreFailure(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockAuthorizedUserRepository)
	mockSessions := new(MockSessionStore)

	user := &entity.AuthorizedUser{ID: "u-1", Email: "dealer@example.com"}
	mockUserRepo.On("FindByEmail", ctx, "dealer@example.com").Return(user, nil)
	mockSessions.On("Create", ctx, "dealer@example.com").Return("", errors.New("redis unreachable"))

	uc := usecase.NewLoginUseCase(mockUserRepo, mockSessions, adminEmail)

	output, err := uc.Execute(ctx, usecase.LoginInput{Email: "dealer@example.com"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
}

func TestLogoutIdempotent(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockAuthorizedUserRepository)
	mockSessions := new(MockSessionStore)
	mockSessions.On("Delete", ctx, "tok-abc").Return(nil)

	uc := usecase.NewLoginUseCase(mockUserRepo, mockSessions, adminEmail)

	assert.NoError(t, uc.Logout(ctx, "tok-abc"))
	assert.NoError(t, uc.Logout(ctx, ""))

	mockSessions.AssertNumberOfCalls(t, "Delete", 1)
}
