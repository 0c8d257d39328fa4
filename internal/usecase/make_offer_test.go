package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

func TestMakeOfferSnapshotsLead(t *testing.T) {
	ctx := context.Background()

	mockOfferRepo := new(MockOfferRepository)
	mockLeadRepo := new(MockLeadRepository)

	lead := availableLead()
	mockLeadRepo.On("FindByID", ctx, "lead-123").Return(lead, nil)

	var created *entity.Offer
	mockOfferRepo.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.Offer)
	}).Return(nil)

	uc := usecase.NewMakeOfferUseCase(mockOfferRepo, mockLeadRepo)

	output, err := uc.Execute(ctx, usecase.MakeOfferInput{
		LeadID:    "lead-123",
		Amount:    800,
		UserEmail: "buyer@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.OfferPending, output.Status)
	assert.Equal(t, lead.Title, output.LeadTitle)

	assert.NotNil(t, created)
	assert.Equal(t, "buyer@example.com", created.UserEmail)
	assert.Equal(t, 800.0, created.Amount)

	// An offer is a detached record; the lead row stays untouched.
	mockLeadRepo.AssertNotCalled(t, "MarkSoldExclusive", mock.Anything, mock.Anything)
	mockLeadRepo.AssertNotCalled(t, "UpdateModerationStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestMakeOfferUnknownLead(t *testing.T) {
	ctx := context.Background()

	mockOfferRepo := new(MockOfferRepository)
	mockLeadRepo := new(MockLeadRepository)

	mockLeadRepo.On("FindByID", ctx, "nope").Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewMakeOfferUseCase(mockOfferRepo, mockLeadRepo)

	output, err := uc.Execute(ctx, usecase.MakeOfferInput{
		LeadID:    "nope",
		Amount:    800,
		UserEmail: "buyer@example.com",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockOfferRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMakeOfferRejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()

	mockOfferRepo := new(MockOfferRepository)
	mockLeadRepo := new(MockLeadRepository)

	uc := usecase.NewMakeOfferUseCase(mockOfferRepo, mockLeadRepo)

	output, err := uc.Execute(ctx, usecase.MakeOfferInput{
		LeadID:    "lead-123",
		Amount:    0,
		UserEmail: "buyer@example.com",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	mockLeadRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestResolveOffer(t *testing.T) {
	ctx := context.Background()

	mockOfferRepo := new(MockOfferRepository)
	mockLeadRepo := new(MockLeadRepository)

	mockOfferRepo.On("UpdateStatus", ctx, "offer-1", entity.OfferAccepted).Return(nil)

	uc := usecase.NewMakeOfferUseCase(mockOfferRepo, mockLeadRepo)

	assert.NoError(t, uc.ResolveOffer(ctx, "offer-1", entity.OfferAccepted))
}

func TestResolveOfferInvalidStatus(t *testing.T) {
	ctx := context.Background()

	mockOfferRepo := new(MockOfferRepository)
	mockLeadRepo := new(MockLeadRepository)

	uc := usecase.NewMakeOfferUseCase(mockOfferRepo, mockLeadRepo)

	err := uc.ResolveOffer(ctx, "offer-1", "maybe")

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	mockOfferRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
